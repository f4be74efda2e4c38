package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/twinkle-backend/internal/domain"
	"github.com/twinkle-backend/internal/domain/repository"
	"github.com/twinkle-backend/internal/pkg/errors"
	"go.uber.org/zap"
)

type reviewRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewReviewRepository(db *DB) repository.ReviewRepository {
	return &reviewRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *reviewRepository) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	query := `
		SELECT id, house_id, user_id, body, flag_count, created_at
		FROM reviews
		WHERE id = $1
	`

	var review domain.Review
	err := r.db.GetContext(ctx, &review, query, id)
	if err == sql.ErrNoRows {
		return nil, errors.ErrReviewNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get review by ID", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &review, nil
}

func (r *reviewRepository) ListByHouse(ctx context.Context, houseID int64) ([]domain.Review, error) {
	query := `
		SELECT id, house_id, user_id, body, flag_count, created_at
		FROM reviews
		WHERE house_id = $1
		ORDER BY created_at DESC, id DESC
	`

	reviews := make([]domain.Review, 0)
	if err := r.db.SelectContext(ctx, &reviews, query, houseID); err != nil {
		r.logger.Error("Failed to list reviews", zap.Int64("house_id", houseID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return reviews, nil
}

func (r *reviewRepository) Create(ctx context.Context, review *domain.Review) error {
	query := `
		INSERT INTO reviews (house_id, user_id, body, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		review.HouseID, review.UserID, review.Body, review.CreatedAt,
	).Scan(&review.ID)
	if err != nil {
		r.logger.Error("Failed to create review", zap.Int64("house_id", review.HouseID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *reviewRepository) ListFlagged(ctx context.Context, threshold int) ([]domain.Review, error) {
	query := `
		SELECT id, house_id, user_id, body, flag_count, created_at
		FROM reviews
		WHERE flag_count >= $1
		ORDER BY flag_count DESC, id
	`

	reviews := make([]domain.Review, 0)
	if err := r.db.SelectContext(ctx, &reviews, query, threshold); err != nil {
		r.logger.Error("Failed to list flagged reviews", zap.Int("threshold", threshold), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return reviews, nil
}
