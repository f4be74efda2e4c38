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

// ReviewHandler - обработчик отзывов о домах
type ReviewHandler struct {
	moderationUC *usecase.ModerationUseCase
	logger       *zap.Logger
}

// NewReviewHandler - создание нового ReviewHandler
func NewReviewHandler(moderationUC *usecase.ModerationUseCase, logger *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		moderationUC: moderationUC,
		logger:       logger,
	}
}

// ListByHouse - видимые отзывы дома (скрытые порогом жалоб не отдаются)
// @Summary Отзывы дома
// @Tags reviews
// @Produce json
// @Param id path int true "ID дома"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /houses/{id}/reviews [get]
func (h *ReviewHandler) ListByHouse(c *fiber.Ctx) error {
	houseID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	reviews, err := h.moderationUC.VisibleReviews(c.Context(), houseID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{
		"reviews": reviews,
	}, &utils.Meta{
		Total: len(reviews),
	})
}

// Create - новый отзыв о доме
// @Summary Создать отзыв
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path int true "ID дома"
// @Param request body dto.CreateReviewRequest true "Отзыв"
// @Success 201 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /houses/{id}/reviews [post]
func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	houseID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	var req dto.CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	review, err := h.moderationUC.CreateReview(c.Context(), houseID, req)
	if err != nil {
		return utils.SendError(c, err)
	}

	c.Status(fiber.StatusCreated)
	return utils.SendSuccess(c, review, nil)
}
