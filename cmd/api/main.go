package main

// @title Twinkle Backend API
// @version 1.0.0
// @description Бэкенд для поиска домов с праздничной подсветкой. Предоставляет API для карты домов с фильтрацией, построения маршрутов просмотра, голосования, рейтингов и модерации отзывов.
// @description
// @description Основные возможности:
// @description - Дома на карте с фильтром по области, рейтингу и атрибутам инсталляции
// @description - Построение маршрута просмотра жадным алгоритмом ближайшего соседа
// @description - Голосование за дома (один голос в день) и рейтинги local/national
// @description - Жалобы на дома и отзывы с автоматическим скрытием по порогу

// @contact.name API Support
// @contact.email support@twinkle.app

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/twinkle-backend/docs/swagger"
	"github.com/twinkle-backend/internal/config"
	httpDelivery "github.com/twinkle-backend/internal/delivery/http"
	"github.com/twinkle-backend/internal/delivery/http/handler"
	"github.com/twinkle-backend/internal/domain/repository"
	"github.com/twinkle-backend/internal/pkg/logger"
	"github.com/twinkle-backend/internal/repository/cache"
	"github.com/twinkle-backend/internal/repository/fixture"
	"github.com/twinkle-backend/internal/repository/postgres"
	redisRepo "github.com/twinkle-backend/internal/repository/redis"
	"github.com/twinkle-backend/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, "twinkle-api")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Twinkle Backend")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("data_source", cfg.DataSource.Mode),
		zap.Int("season_year", cfg.Season.Year),
	)

	// 3. Connect to data source
	houseRepo, reviewRepo, flagRepo, voteRepo, dbClose := buildDataRepos(cfg, log)
	defer dbClose()

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 5. Health check
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}
	log.Info("All connections healthy")

	// 6. Initialize repositories
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)

	log.Info("Repositories initialized")

	// 7. Initialize use cases
	houseUC := usecase.NewHouseUseCase(
		houseRepo,
		log,
		cfg.Season.Year,
	)

	routeUC := usecase.NewRouteUseCase(
		houseRepo,
		cacheRepo,
		log,
		cfg.Season.Year,
		cfg.Cache.RouteShareTTL,
	)

	moderationUC := usecase.NewModerationUseCase(
		houseRepo,
		reviewRepo,
		flagRepo,
		log,
		cfg.Moderation.FlagThreshold,
	)

	voteUC := usecase.NewVoteUseCase(
		houseRepo,
		voteRepo,
		cacheRepo,
		streamRepo,
		log,
	)

	rankingUC := usecase.NewRankingUseCase(
		houseRepo,
		cacheRepo,
		log,
		cfg.Ranking.LocalZipCodes,
		cfg.Cache.LeaderboardTTL,
	)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP handlers
	houseHandler := handler.NewHouseHandler(houseUC, log)
	routeHandler := handler.NewRouteHandler(routeUC, log)
	reviewHandler := handler.NewReviewHandler(moderationUC, log)
	voteHandler := handler.NewVoteHandler(voteUC, log)
	moderationHandler := handler.NewModerationHandler(moderationUC, log)
	leaderboardHandler := handler.NewLeaderboardHandler(rankingUC, log)

	log.Info("HTTP handlers initialized")

	// 9. Initialize HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		houseHandler,
		routeHandler,
		reviewHandler,
		voteHandler,
		moderationHandler,
		leaderboardHandler,
	)

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}

// buildDataRepos подключает источник данных. В режиме postgres при
// недоступной базе сервис откатывается на fixture, чтобы карта и
// маршруты продолжали работать.
func buildDataRepos(cfg *config.Config, log *zap.Logger) (
	repository.HouseRepository,
	repository.ReviewRepository,
	repository.FlagRepository,
	repository.VoteRepository,
	func(),
) {
	if cfg.DataSource.Mode == config.DataSourcePostgres {
		db, err := postgres.New(&cfg.Database, log)
		if err == nil {
			return postgres.NewHouseRepository(db),
				postgres.NewReviewRepository(db),
				postgres.NewFlagRepository(db),
				postgres.NewVoteRepository(db),
				func() {
					if err := db.Close(); err != nil {
						log.Error("Failed to close PostgreSQL connection", zap.Error(err))
					}
				}
		}
		log.Warn("PostgreSQL unavailable, falling back to fixture data source", zap.Error(err))
	}

	src := fixture.NewSource(log, cfg.Season.Year)
	return src, src.Reviews(), src, src.Votes(), func() {}
}
