package repository

import (
	"context"
	"time"

	"github.com/twinkle-backend/internal/domain"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу (nil при промахе)
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error

	// GetLeaderboard получает закешированный рейтинг (nil при промахе)
	GetLeaderboard(ctx context.Context, key string) ([]domain.LeaderboardEntry, error)

	// SetLeaderboard сохраняет рейтинг в кеше
	SetLeaderboard(ctx context.Context, key string, entries []domain.LeaderboardEntry, ttl time.Duration) error

	// InvalidateLeaderboards сбрасывает все закешированные рейтинги
	InvalidateLeaderboards(ctx context.Context) error

	// GetRoute получает сохранённый по ссылке маршрут (nil при промахе)
	GetRoute(ctx context.Context, token string) (*domain.Route, error)

	// SetRoute сохраняет маршрут для шаринга по ссылке
	SetRoute(ctx context.Context, token string, route *domain.Route, ttl time.Duration) error
}
