package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/twinkle-backend/internal/domain"
	"github.com/twinkle-backend/internal/domain/repository"
	"github.com/twinkle-backend/internal/pkg/errors"
	"go.uber.org/zap"
)

type houseRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewHouseRepository(db *DB) repository.HouseRepository {
	return &houseRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

const houseColumns = `
	id, address, lat, lng, zip_code, description, features,
	avg_rating, rating_count, votes, local_rank, national_rank,
	is_featured, is_active, season_year, created_at, updated_at
`

func (r *houseRepository) GetByID(ctx context.Context, id int64) (*domain.House, error) {
	query := `SELECT ` + houseColumns + ` FROM houses WHERE id = $1`

	house, err := scanHouse(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.ErrHouseNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get house by ID", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return house, nil
}

func (r *houseRepository) ListActive(ctx context.Context, seasonYear int) ([]domain.House, error) {
	query := `
		SELECT ` + houseColumns + `
		FROM houses
		WHERE is_active AND season_year = $1
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, seasonYear)
	if err != nil {
		r.logger.Error("Failed to list active houses", zap.Int("season_year", seasonYear), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	return r.collectHouses(rows)
}

func (r *houseRepository) ListAll(ctx context.Context) ([]domain.House, error) {
	query := `SELECT ` + houseColumns + ` FROM houses ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("Failed to list houses", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	return r.collectHouses(rows)
}

func (r *houseRepository) UpdateRanks(ctx context.Context, ranks []repository.HouseRank) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.logger.Error("Failed to begin rank update", zap.Error(err))
		return errors.ErrDatabaseError
	}
	defer tx.Rollback()

	query := `
		UPDATE houses
		SET local_rank = $2, national_rank = $3, updated_at = NOW()
		WHERE id = $1
	`

	for _, rank := range ranks {
		if _, err := tx.ExecContext(ctx, query, rank.HouseID, rank.LocalRank, rank.NationalRank); err != nil {
			r.logger.Error("Failed to update house rank",
				zap.Int64("house_id", rank.HouseID),
				zap.Error(err),
			)
			return errors.ErrDatabaseError
		}
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Failed to commit rank update", zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanHouse(row rowScanner) (*domain.House, error) {
	var h domain.House
	var features pq.StringArray

	err := row.Scan(
		&h.ID, &h.Address, &h.Lat, &h.Lng, &h.ZipCode, &h.Description, &features,
		&h.AvgRating, &h.RatingCount, &h.Votes, &h.LocalRank, &h.NationalRank,
		&h.IsFeatured, &h.IsActive, &h.SeasonYear, &h.CreatedAt, &h.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	h.Features = make([]domain.Feature, len(features))
	for i, f := range features {
		h.Features[i] = domain.Feature(f)
	}

	return &h, nil
}

func (r *houseRepository) collectHouses(rows *sql.Rows) ([]domain.House, error) {
	houses := make([]domain.House, 0)
	for rows.Next() {
		h, err := scanHouse(rows)
		if err != nil {
			r.logger.Error("Failed to scan house", zap.Error(err))
			continue
		}
		houses = append(houses, *h)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("House rows iteration failed", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return houses, nil
}
