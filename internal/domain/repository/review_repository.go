package repository

import (
	"context"

	"github.com/twinkle-backend/internal/domain"
)

// ReviewRepository определяет методы доступа к отзывам
type ReviewRepository interface {
	// GetByID возвращает отзыв по ID
	GetByID(ctx context.Context, id int64) (*domain.Review, error)

	// ListByHouse возвращает все отзывы дома, включая скрытые
	ListByHouse(ctx context.Context, houseID int64) ([]domain.Review, error)

	// Create сохраняет новый отзыв и проставляет ID
	Create(ctx context.Context, review *domain.Review) error

	// ListFlagged возвращает отзывы с количеством жалоб не ниже порога
	ListFlagged(ctx context.Context, threshold int) ([]domain.Review, error)
}
