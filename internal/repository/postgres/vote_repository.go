package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/twinkle-backend/internal/domain"
	"github.com/twinkle-backend/internal/domain/repository"
	"github.com/twinkle-backend/internal/pkg/errors"
	"go.uber.org/zap"
)

type voteRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewVoteRepository(db *DB) repository.VoteRepository {
	return &voteRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

// Insert регистрирует голос. Уникальный индекс по (user_id, vote_date)
// ограничивает пользователя одним голосом в день независимо от дома;
// ON CONFLICT DO NOTHING делает проверку и вставку атомарными.
func (r *voteRepository) Insert(ctx context.Context, vote *domain.Vote) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.logger.Error("Failed to begin vote insert", zap.Error(err))
		return false, errors.ErrDatabaseError
	}
	defer tx.Rollback()

	insertQuery := `
		INSERT INTO votes (user_id, house_id, vote_date, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, vote_date) DO NOTHING
	`

	res, err := tx.ExecContext(ctx, insertQuery,
		vote.UserID, vote.HouseID, vote.VoteDate, vote.CreatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to insert vote",
			zap.Int64("house_id", vote.HouseID),
			zap.String("vote_date", vote.VoteDate),
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

	updateQuery := `UPDATE houses SET votes = votes + 1, updated_at = NOW() WHERE id = $1`
	if _, err := tx.ExecContext(ctx, updateQuery, vote.HouseID); err != nil {
		r.logger.Error("Failed to bump house votes",
			zap.Int64("house_id", vote.HouseID),
			zap.Error(err),
		)
		return false, errors.ErrDatabaseError
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Failed to commit vote insert", zap.Error(err))
		return false, errors.ErrDatabaseError
	}

	return true, nil
}
