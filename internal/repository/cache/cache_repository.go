package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/twinkle-backend/internal/domain"
	"github.com/twinkle-backend/internal/domain/repository"
	"go.uber.org/zap"
)

const leaderboardKeyPattern = "leaderboard:*"

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

// GetLeaderboard получает закешированный рейтинг (nil при промахе)
func (r *cacheRepository) GetLeaderboard(ctx context.Context, key string) ([]domain.LeaderboardEntry, error) {
	data, err := r.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil // Cache miss
	}

	var entries []domain.LeaderboardEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		r.logger.Error("Failed to unmarshal leaderboard from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("unmarshal leaderboard: %w", err)
	}

	return entries, nil
}

// SetLeaderboard сохраняет рейтинг в кеше
func (r *cacheRepository) SetLeaderboard(ctx context.Context, key string, entries []domain.LeaderboardEntry, ttl time.Duration) error {
	data, err := json.Marshal(entries)
	if err != nil {
		r.logger.Error("Failed to marshal leaderboard", zap.Error(err))
		return fmt.Errorf("marshal leaderboard: %w", err)
	}

	return r.Set(ctx, key, data, ttl)
}

// InvalidateLeaderboards удаляет все закешированные рейтинги.
// SCAN вместо KEYS, чтобы не блокировать Redis на больших наборах.
func (r *cacheRepository) InvalidateLeaderboards(ctx context.Context) error {
	iter := r.client.Scan(ctx, 0, leaderboardKeyPattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := r.client.Del(ctx, iter.Val()).Err(); err != nil {
			r.logger.Error("Failed to delete leaderboard key",
				zap.String("key", iter.Val()),
				zap.Error(err),
			)
			return fmt.Errorf("cache delete error: %w", err)
		}
	}
	if err := iter.Err(); err != nil {
		r.logger.Error("Failed to scan leaderboard keys", zap.Error(err))
		return fmt.Errorf("cache scan error: %w", err)
	}

	r.logger.Debug("Leaderboard cache invalidated")
	return nil
}

// GetRoute получает сохранённый по токену маршрут (nil при промахе)
func (r *cacheRepository) GetRoute(ctx context.Context, token string) (*domain.Route, error) {
	data, err := r.Get(ctx, routeKey(token))
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil // Cache miss
	}

	var route domain.Route
	if err := json.Unmarshal(data, &route); err != nil {
		r.logger.Error("Failed to unmarshal route from cache", zap.String("token", token), zap.Error(err))
		return nil, fmt.Errorf("unmarshal route: %w", err)
	}

	return &route, nil
}

// SetRoute сохраняет маршрут для шаринга по ссылке
func (r *cacheRepository) SetRoute(ctx context.Context, token string, route *domain.Route, ttl time.Duration) error {
	data, err := json.Marshal(route)
	if err != nil {
		r.logger.Error("Failed to marshal route", zap.Error(err))
		return fmt.Errorf("marshal route: %w", err)
	}

	return r.Set(ctx, routeKey(token), data, ttl)
}

func routeKey(token string) string {
	return fmt.Sprintf("route:%s", token)
}
