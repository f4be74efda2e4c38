package usecase

import (
	"context"
	"time"

	"github.com/twinkle-backend/internal/domain"
	"github.com/twinkle-backend/internal/domain/repository"
	"github.com/twinkle-backend/internal/usecase/dto"
	"go.uber.org/zap"
)

// VoteUseCase - голосование за дома (один голос в день на пользователя)
type VoteUseCase struct {
	houseRepo  repository.HouseRepository
	voteRepo   repository.VoteRepository
	cacheRepo  repository.CacheRepository
	streamRepo repository.StreamRepository
	logger     *zap.Logger
}

func NewVoteUseCase(
	houseRepo repository.HouseRepository,
	voteRepo repository.VoteRepository,
	cacheRepo repository.CacheRepository,
	streamRepo repository.StreamRepository,
	logger *zap.Logger,
) *VoteUseCase {
	return &VoteUseCase{
		houseRepo:  houseRepo,
		voteRepo:   voteRepo,
		cacheRepo:  cacheRepo,
		streamRepo: streamRepo,
		logger:     logger,
	}
}

// Cast регистрирует голос. Лимит - один голос в календарный день
// на пользователя, независимо от дома. Повторный голос в тот же
// день - AlreadyVotedToday без ошибки.
func (uc *VoteUseCase) Cast(ctx context.Context, req dto.VoteRequest) (*dto.VoteResponse, error) {
	if _, err := uc.houseRepo.GetByID(ctx, req.HouseID); err != nil {
		return nil, err
	}

	castAt := time.Now()
	vote := &domain.Vote{
		UserID:    req.UserID,
		HouseID:   req.HouseID,
		VoteDate:  domain.VoteDay(castAt),
		CreatedAt: castAt,
	}

	inserted, err := uc.voteRepo.Insert(ctx, vote)
	if err != nil {
		uc.logger.Error("Failed to insert vote",
			zap.Int64("house_id", req.HouseID),
			zap.Error(err),
		)
		return nil, err
	}

	if !inserted {
		return &dto.VoteResponse{Voted: false, AlreadyVotedToday: true}, nil
	}

	uc.logger.Info("Vote cast",
		zap.Int64("house_id", req.HouseID),
		zap.String("vote_date", vote.VoteDate),
	)

	// Публикация события и сброс кэша - best effort: голос уже учтён
	event := domain.VoteCastEvent{
		HouseID:  req.HouseID,
		UserID:   req.UserID,
		VoteDate: vote.VoteDate,
		CastAt:   castAt,
	}
	if err := uc.streamRepo.PublishToStream(ctx, domain.StreamVoteCast, event); err != nil {
		uc.logger.Warn("Failed to publish vote event", zap.Error(err))
	}
	if err := uc.cacheRepo.InvalidateLeaderboards(ctx); err != nil {
		uc.logger.Warn("Failed to invalidate leaderboard cache", zap.Error(err))
	}

	return &dto.VoteResponse{Voted: true, AlreadyVotedToday: false}, nil
}
