package repository

import (
	"context"

	"github.com/twinkle-backend/internal/domain"
)

// HouseRank - пересчитанные места дома для сохранения
type HouseRank struct {
	HouseID      int64
	LocalRank    *int
	NationalRank *int
}

// HouseRepository определяет методы доступа к домам
type HouseRepository interface {
	// GetByID возвращает дом по ID
	GetByID(ctx context.Context, id int64) (*domain.House, error)

	// ListActive возвращает активные дома сезона в исходном порядке
	ListActive(ctx context.Context, seasonYear int) ([]domain.House, error)

	// ListAll возвращает все дома (для пересчёта рейтингов)
	ListAll(ctx context.Context) ([]domain.House, error)

	// UpdateRanks сохраняет пересчитанные места
	UpdateRanks(ctx context.Context, ranks []HouseRank) error
}
