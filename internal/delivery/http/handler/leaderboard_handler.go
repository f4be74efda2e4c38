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

// LeaderboardHandler - рейтинги домов по голосам
type LeaderboardHandler struct {
	rankingUC *usecase.RankingUseCase
	logger    *zap.Logger
}

// NewLeaderboardHandler - создание нового LeaderboardHandler
func NewLeaderboardHandler(rankingUC *usecase.RankingUseCase, logger *zap.Logger) *LeaderboardHandler {
	return &LeaderboardHandler{
		rankingUC: rankingUC,
		logger:    logger,
	}
}

// Get - рейтинг домов для локальной или национальной области
// @Summary Рейтинг по голосам
// @Tags leaderboard
// @Produce json
// @Param scope query string true "Область: local или national"
// @Param zip query string false "Точный почтовый индекс для local"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /leaderboard [get]
func (h *LeaderboardHandler) Get(c *fiber.Ctx) error {
	req := dto.LeaderboardRequest{
		Scope: c.Query("scope", usecase.ScopeLocal),
		Zip:   c.Query("zip"),
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	result, cached, err := h.rankingUC.Leaderboard(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total:  len(result.Entries),
		Cached: cached,
	})
}
