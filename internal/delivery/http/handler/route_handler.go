package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/twinkle-backend/internal/pkg/errors"
	"github.com/twinkle-backend/internal/pkg/utils"
	"github.com/twinkle-backend/internal/pkg/validator"
	"github.com/twinkle-backend/internal/usecase"
	"github.com/twinkle-backend/internal/usecase/dto"
	"go.uber.org/zap"
)

// RouteHandler - обработчик построения и шаринга маршрутов
type RouteHandler struct {
	routeUC *usecase.RouteUseCase
	logger  *zap.Logger
}

// NewRouteHandler - создание нового RouteHandler
func NewRouteHandler(routeUC *usecase.RouteUseCase, logger *zap.Logger) *RouteHandler {
	return &RouteHandler{
		routeUC: routeUC,
		logger:  logger,
	}
}

// Generate - построение маршрута по длительности и предпочтениям
// @Summary Построить маршрут
// @Tags routes
// @Accept json
// @Produce json
// @Param request body dto.GenerateRouteRequest true "Критерии маршрута"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /routes/generate [post]
func (h *RouteHandler) Generate(c *fiber.Ctx) error {
	var req dto.GenerateRouteRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	result, err := h.routeUC.Generate(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.StopCount,
	})
}

// Share - сохранение маршрута и выдача ссылки
// @Summary Поделиться маршрутом
// @Tags routes
// @Accept json
// @Produce json
// @Param request body dto.ShareRouteRequest true "Дома маршрута"
// @Success 200 {object} utils.SuccessResponse
// @Router /routes/share [post]
func (h *RouteHandler) Share(c *fiber.Ctx) error {
	var req dto.ShareRouteRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	result, err := h.routeUC.Share(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// GetShared - маршрут по токену из ссылки
// @Summary Маршрут по ссылке
// @Tags routes
// @Produce json
// @Param token path string true "Токен маршрута"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /routes/{token} [get]
func (h *RouteHandler) GetShared(c *fiber.Ctx) error {
	token := c.Params("token")

	route, err := h.routeUC.GetShared(c.Context(), token)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, route, &utils.Meta{
		Total: len(route.Stops),
	})
}
