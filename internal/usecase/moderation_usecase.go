package usecase

import (
	"context"
	"time"

	"github.com/twinkle-backend/internal/domain"
	"github.com/twinkle-backend/internal/domain/repository"
	"github.com/twinkle-backend/internal/pkg/errors"
	"github.com/twinkle-backend/internal/usecase/dto"
	"go.uber.org/zap"
)

// ModerationUseCase - отзывы, жалобы и скрытие по порогу жалоб
type ModerationUseCase struct {
	houseRepo     repository.HouseRepository
	reviewRepo    repository.ReviewRepository
	flagRepo      repository.FlagRepository
	logger        *zap.Logger
	flagThreshold int
}

func NewModerationUseCase(
	houseRepo repository.HouseRepository,
	reviewRepo repository.ReviewRepository,
	flagRepo repository.FlagRepository,
	logger *zap.Logger,
	flagThreshold int,
) *ModerationUseCase {
	if flagThreshold <= 0 {
		flagThreshold = domain.DefaultFlagThreshold
	}
	return &ModerationUseCase{
		houseRepo:     houseRepo,
		reviewRepo:    reviewRepo,
		flagRepo:      flagRepo,
		logger:        logger,
		flagThreshold: flagThreshold,
	}
}

// CreateReview создаёт отзыв к дому
func (uc *ModerationUseCase) CreateReview(ctx context.Context, houseID int64, req dto.CreateReviewRequest) (*domain.Review, error) {
	if _, err := uc.houseRepo.GetByID(ctx, houseID); err != nil {
		return nil, err
	}

	review := &domain.Review{
		HouseID:   houseID,
		UserID:    req.UserID,
		Body:      req.Body,
		CreatedAt: time.Now(),
	}

	if err := uc.reviewRepo.Create(ctx, review); err != nil {
		uc.logger.Error("Failed to create review",
			zap.Int64("house_id", houseID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.logger.Info("Review created",
		zap.Int64("review_id", review.ID),
		zap.Int64("house_id", houseID),
	)

	return review, nil
}

// VisibleReviews возвращает отзывы дома, не скрытые порогом жалоб
func (uc *ModerationUseCase) VisibleReviews(ctx context.Context, houseID int64) ([]domain.Review, error) {
	if _, err := uc.houseRepo.GetByID(ctx, houseID); err != nil {
		return nil, err
	}

	reviews, err := uc.reviewRepo.ListByHouse(ctx, houseID)
	if err != nil {
		uc.logger.Error("Failed to list reviews", zap.Int64("house_id", houseID), zap.Error(err))
		return nil, err
	}

	visible := make([]domain.Review, 0, len(reviews))
	for _, r := range reviews {
		if !r.Hidden(uc.flagThreshold) {
			visible = append(visible, r)
		}
	}
	return visible, nil
}

// FlagTarget регистрирует жалобу на дом или отзыв. Одна жалоба на
// пару пользователь+объект; повторная возвращает AlreadyFlagged
// без ошибки.
func (uc *ModerationUseCase) FlagTarget(ctx context.Context, req dto.FlagRequest) (*dto.FlagResponse, error) {
	targetType := domain.FlagTargetType(req.TargetType)
	if !targetType.Valid() {
		return nil, errors.ErrInvalidFlagTarget
	}
	reason := domain.FlagReason(req.Reason)
	if !reason.Valid() {
		return nil, errors.ErrInvalidFlagReason
	}

	switch targetType {
	case domain.FlagTargetHouse:
		if _, err := uc.houseRepo.GetByID(ctx, req.TargetID); err != nil {
			return nil, err
		}
	case domain.FlagTargetReview:
		if _, err := uc.reviewRepo.GetByID(ctx, req.TargetID); err != nil {
			return nil, err
		}
	}

	flag := &domain.Flag{
		TargetType: targetType,
		TargetID:   req.TargetID,
		UserID:     req.UserID,
		Reason:     reason,
		CreatedAt:  time.Now(),
	}

	inserted, err := uc.flagRepo.Insert(ctx, flag)
	if err != nil {
		uc.logger.Error("Failed to insert flag",
			zap.String("target_type", req.TargetType),
			zap.Int64("target_id", req.TargetID),
			zap.Error(err),
		)
		return nil, err
	}

	if inserted {
		uc.logger.Info("Flag registered",
			zap.String("target_type", req.TargetType),
			zap.Int64("target_id", req.TargetID),
			zap.String("reason", req.Reason),
		)
	}

	return &dto.FlagResponse{
		Flagged:        inserted,
		AlreadyFlagged: !inserted,
	}, nil
}

// FlaggedQueue возвращает отзывы, достигшие порога скрытия
func (uc *ModerationUseCase) FlaggedQueue(ctx context.Context) ([]domain.Review, error) {
	reviews, err := uc.reviewRepo.ListFlagged(ctx, uc.flagThreshold)
	if err != nil {
		uc.logger.Error("Failed to list flagged reviews", zap.Error(err))
		return nil, err
	}
	return reviews, nil
}
