package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"github.com/twinkle-backend/internal/config"
	"github.com/twinkle-backend/internal/delivery/http/handler"
	"github.com/twinkle-backend/internal/delivery/http/middleware"
	"go.uber.org/zap"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	houseHandler       *handler.HouseHandler
	routeHandler       *handler.RouteHandler
	reviewHandler      *handler.ReviewHandler
	voteHandler        *handler.VoteHandler
	moderationHandler  *handler.ModerationHandler
	leaderboardHandler *handler.LeaderboardHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	houseHandler *handler.HouseHandler,
	routeHandler *handler.RouteHandler,
	reviewHandler *handler.ReviewHandler,
	voteHandler *handler.VoteHandler,
	moderationHandler *handler.ModerationHandler,
	leaderboardHandler *handler.LeaderboardHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Twinkle Backend",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:                app,
		config:             cfg,
		logger:             logger,
		houseHandler:       houseHandler,
		routeHandler:       routeHandler,
		reviewHandler:      reviewHandler,
		voteHandler:        voteHandler,
		moderationHandler:  moderationHandler,
		leaderboardHandler: leaderboardHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// House routes
	api.Get("/houses", s.houseHandler.List)
	api.Get("/houses/:id", s.houseHandler.GetByID)

	// Review routes
	api.Get("/houses/:id/reviews", s.reviewHandler.ListByHouse)
	api.Post("/houses/:id/reviews", s.reviewHandler.Create)

	// Route routes
	api.Post("/routes/generate", s.routeHandler.Generate)
	api.Post("/routes/share", s.routeHandler.Share)
	api.Get("/routes/:token", s.routeHandler.GetShared)

	// Leaderboard
	api.Get("/leaderboard", s.leaderboardHandler.Get)

	// Votes
	api.Post("/votes", s.voteHandler.Cast)

	// Moderation
	api.Post("/flags", s.moderationHandler.Flag)
	api.Get("/moderation/reviews", s.moderationHandler.FlaggedReviews)
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - кастомный обработчик ошибок
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
