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

// VoteHandler - обработчик голосования за дома
type VoteHandler struct {
	voteUC *usecase.VoteUseCase
	logger *zap.Logger
}

// NewVoteHandler - создание нового VoteHandler
func NewVoteHandler(voteUC *usecase.VoteUseCase, logger *zap.Logger) *VoteHandler {
	return &VoteHandler{
		voteUC: voteUC,
		logger: logger,
	}
}

// Cast - голос за дом (один в календарный день на пользователя)
// @Summary Проголосовать за дом
// @Tags votes
// @Accept json
// @Produce json
// @Param request body dto.VoteRequest true "Голос"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /votes [post]
func (h *VoteHandler) Cast(c *fiber.Ctx) error {
	var req dto.VoteRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	result, err := h.voteUC.Cast(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}
