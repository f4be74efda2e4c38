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

// ModerationHandler - жалобы и очередь модерации
type ModerationHandler struct {
	moderationUC *usecase.ModerationUseCase
	logger       *zap.Logger
}

// NewModerationHandler - создание нового ModerationHandler
func NewModerationHandler(moderationUC *usecase.ModerationUseCase, logger *zap.Logger) *ModerationHandler {
	return &ModerationHandler{
		moderationUC: moderationUC,
		logger:       logger,
	}
}

// Flag - жалоба на дом или отзыв
// @Summary Пожаловаться
// @Tags moderation
// @Accept json
// @Produce json
// @Param request body dto.FlagRequest true "Жалоба"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /flags [post]
func (h *ModerationHandler) Flag(c *fiber.Ctx) error {
	var req dto.FlagRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	result, err := h.moderationUC.FlagTarget(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// FlaggedReviews - отзывы, скрытые порогом жалоб
// @Summary Очередь модерации
// @Tags moderation
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /moderation/reviews [get]
func (h *ModerationHandler) FlaggedReviews(c *fiber.Ctx) error {
	reviews, err := h.moderationUC.FlaggedQueue(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{
		"reviews": reviews,
	}, &utils.Meta{
		Total: len(reviews),
	})
}
