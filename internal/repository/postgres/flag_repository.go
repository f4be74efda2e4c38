package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/twinkle-backend/internal/domain"
	"github.com/twinkle-backend/internal/domain/repository"
	"github.com/twinkle-backend/internal/pkg/errors"
	"go.uber.org/zap"
)

type flagRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewFlagRepository(db *DB) repository.FlagRepository {
	return &flagRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

// Insert регистрирует жалобу. Уникальный индекс по
// (target_type, target_id, user_id) с ON CONFLICT DO NOTHING делает
// проверку и вставку атомарными; повторная жалоба - не ошибка.
func (r *flagRepository) Insert(ctx context.Context, flag *domain.Flag) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.logger.Error("Failed to begin flag insert", zap.Error(err))
		return false, errors.ErrDatabaseError
	}
	defer tx.Rollback()

	insertQuery := `
		INSERT INTO flags (target_type, target_id, user_id, reason, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (target_type, target_id, user_id) DO NOTHING
	`

	res, err := tx.ExecContext(ctx, insertQuery,
		flag.TargetType, flag.TargetID, flag.UserID, flag.Reason, flag.CreatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to insert flag",
			zap.String("target_type", string(flag.TargetType)),
			zap.Int64("target_id", flag.TargetID),
			zap.Error(err),
		)
		return false, errors.ErrDatabaseError
	}

	inserted, err := res.RowsAffected()
	if err != nil {
		return false, errors.ErrDatabaseError
	}
	if inserted == 0 {
		return false, nil
	}

	// Счётчик жалоб отзыва растёт в той же транзакции, что и вставка
	if flag.TargetType == domain.FlagTargetReview {
		updateQuery := `UPDATE reviews SET flag_count = flag_count + 1 WHERE id = $1`
		if _, err := tx.ExecContext(ctx, updateQuery, flag.TargetID); err != nil {
			r.logger.Error("Failed to bump review flag count",
				zap.Int64("review_id", flag.TargetID),
				zap.Error(err),
			)
			return false, errors.ErrDatabaseError
		}
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Failed to commit flag insert", zap.Error(err))
		return false, errors.ErrDatabaseError
	}

	return true, nil
}
