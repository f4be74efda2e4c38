package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/twinkle-backend/internal/pkg/errors"
	"github.com/twinkle-backend/internal/pkg/utils"
	"github.com/twinkle-backend/internal/pkg/validator"
	"github.com/twinkle-backend/internal/usecase"
	"github.com/twinkle-backend/internal/usecase/dto"
	"go.uber.org/zap"
)

// HouseHandler - обработчик запросов по домам
type HouseHandler struct {
	houseUC *usecase.HouseUseCase
	logger  *zap.Logger
}

// NewHouseHandler - создание нового HouseHandler
func NewHouseHandler(houseUC *usecase.HouseUseCase, logger *zap.Logger) *HouseHandler {
	return &HouseHandler{
		houseUC: houseUC,
		logger:  logger,
	}
}

// List - дома для карты с фильтром по области, рейтингу и атрибутам
// @Summary Список домов
// @Tags houses
// @Produce json
// @Param ne_lat query number false "Северо-восточная широта"
// @Param ne_lng query number false "Северо-восточная долгота"
// @Param sw_lat query number false "Юго-западная широта"
// @Param sw_lng query number false "Юго-западная долгота"
// @Param min_rating query number false "Минимальный рейтинг"
// @Param features query []string false "Атрибуты (все должны присутствовать)"
// @Success 200 {object} utils.SuccessResponse
// @Router /houses [get]
func (h *HouseHandler) List(c *fiber.Ctx) error {
	var req dto.HouseListRequest
	if err := c.QueryParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	houses, err := h.houseUC.List(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{
		"houses": houses,
	}, &utils.Meta{
		Total: len(houses),
	})
}

// GetByID - дом по ID
// @Summary Дом по ID
// @Tags houses
// @Produce json
// @Param id path int true "ID дома"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /houses/{id} [get]
func (h *HouseHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	house, err := h.houseUC.GetByID(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, house, nil)
}
