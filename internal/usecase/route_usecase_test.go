package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/twinkle-backend/internal/domain"
	"github.com/twinkle-backend/internal/repository/fixture"
	"github.com/twinkle-backend/internal/usecase"
	"github.com/twinkle-backend/internal/usecase/dto"
)

func routeHouse(id int64, lat, lng, rating float64) domain.House {
	return domain.House{
		ID:        id,
		Lat:       lat,
		Lng:       lng,
		AvgRating: ptrFloat64(rating),
		Features:  []domain.Feature{domain.FeatureLights},
	}
}

func TestBuildRoute(t *testing.T) {
	t.Run("empty candidates give empty route", func(t *testing.T) {
		route := usecase.BuildRoute(nil, 60)
		assert.Empty(t, route.Stops)
		assert.Equal(t, 0.0, route.TotalDistanceKm)
	})

	t.Run("single candidate", func(t *testing.T) {
		route := usecase.BuildRoute([]domain.House{routeHouse(1, 32.78, -96.79, 4.0)}, 60)
		assert.Len(t, route.Stops, 1)
		assert.Equal(t, 0.0, route.TotalDistanceKm)
	})

	t.Run("stop count follows duration", func(t *testing.T) {
		houses := make([]domain.House, 20)
		for i := range houses {
			houses[i] = routeHouse(int64(i+1), 32.7+float64(i)*0.01, -96.79, 3.0)
		}

		// duration/15 + 1
		assert.Len(t, usecase.BuildRoute(houses, 0).Stops, 1)
		assert.Len(t, usecase.BuildRoute(houses, 14).Stops, 1)
		assert.Len(t, usecase.BuildRoute(houses, 15).Stops, 2)
		assert.Len(t, usecase.BuildRoute(houses, 60).Stops, 5)
		assert.Len(t, usecase.BuildRoute(houses, 119).Stops, 8)
	})

	t.Run("stop count capped at ten", func(t *testing.T) {
		houses := make([]domain.House, 30)
		for i := range houses {
			houses[i] = routeHouse(int64(i+1), 32.7+float64(i)*0.01, -96.79, 3.0)
		}
		route := usecase.BuildRoute(houses, 600)
		assert.Len(t, route.Stops, 10)
	})

	t.Run("stop count capped by candidate count", func(t *testing.T) {
		houses := []domain.House{
			routeHouse(1, 32.78, -96.79, 4.0),
			routeHouse(2, 32.79, -96.79, 3.5),
		}
		route := usecase.BuildRoute(houses, 600)
		assert.Len(t, route.Stops, 2)
	})

	t.Run("seed is the highest rated candidate", func(t *testing.T) {
		houses := []domain.House{
			routeHouse(1, 32.78, -96.79, 3.0),
			routeHouse(2, 32.90, -96.70, 4.9),
			routeHouse(3, 32.74, -96.82, 4.1),
		}
		route := usecase.BuildRoute(houses, 60)
		assert.Equal(t, int64(2), route.Stops[0].ID)
	})

	t.Run("rating tie picks the earlier candidate", func(t *testing.T) {
		houses := []domain.House{
			routeHouse(7, 32.78, -96.79, 4.5),
			routeHouse(3, 32.90, -96.70, 4.5),
		}
		route := usecase.BuildRoute(houses, 0)
		assert.Equal(t, int64(7), route.Stops[0].ID)
	})

	t.Run("deterministic for the same input", func(t *testing.T) {
		houses := []domain.House{
			routeHouse(1, 32.78, -96.79, 4.0),
			routeHouse(2, 32.83, -96.79, 4.8),
			routeHouse(3, 32.82, -96.80, 4.1),
			routeHouse(4, 32.74, -96.82, 4.3),
		}

		first := usecase.BuildRoute(houses, 60)
		for i := 0; i < 10; i++ {
			again := usecase.BuildRoute(houses, 60)
			assert.Equal(t, first.Stops, again.Stops)
			assert.Equal(t, first.TotalDistanceKm, again.TotalDistanceKm)
		}
	})

	t.Run("greedy picks nearest to last stop", func(t *testing.T) {
		// Старт в id=1, затем ближайший 2, от него ближайший 3
		houses := []domain.House{
			routeHouse(1, 32.7800, -96.7900, 5.0),
			routeHouse(3, 32.8200, -96.7900, 3.0),
			routeHouse(2, 32.7900, -96.7900, 3.0),
		}
		route := usecase.BuildRoute(houses, 30)
		ids := []int64{route.Stops[0].ID, route.Stops[1].ID, route.Stops[2].ID}
		assert.Equal(t, []int64{1, 2, 3}, ids)
	})

	t.Run("total distance sums consecutive legs", func(t *testing.T) {
		houses := []domain.House{
			routeHouse(1, 32.7800, -96.7900, 5.0),
			routeHouse(2, 32.7900, -96.7900, 3.0),
			routeHouse(3, 32.8000, -96.7900, 3.0),
		}
		route := usecase.BuildRoute(houses, 30)
		// Два плеча по ~1.11 км вдоль меридиана
		assert.InDelta(t, 2.22, route.TotalDistanceKm, 0.03)
	})
}

func TestSelectRouteCandidates(t *testing.T) {
	houses := []domain.House{
		{ID: 1, AvgRating: ptrFloat64(4.5), Features: []domain.Feature{domain.FeatureLights}},
		{ID: 2, AvgRating: ptrFloat64(3.0), Features: []domain.Feature{domain.FeatureLights, domain.FeatureMusic}},
		{ID: 3, AvgRating: ptrFloat64(4.8), Features: []domain.Feature{domain.FeatureMusic}},
		{ID: 4, Features: []domain.Feature{domain.FeatureLights}},
	}

	t.Run("rating threshold", func(t *testing.T) {
		got := usecase.SelectRouteCandidates(houses, domain.RouteCriteria{MinRating: 4.0})
		assert.Len(t, got, 2)
		assert.Equal(t, int64(1), got[0].ID)
		assert.Equal(t, int64(3), got[1].ID)
	})

	t.Run("feature preference is any-of", func(t *testing.T) {
		// Music-only дом проходит, хотя all-of фильтр карты его бы отсёк
		got := usecase.SelectRouteCandidates(houses, domain.RouteCriteria{
			FeaturePreference: []domain.Feature{domain.FeatureLights, domain.FeatureMusic},
		})
		assert.Len(t, got, 4)
	})

	t.Run("no criteria keeps everything", func(t *testing.T) {
		got := usecase.SelectRouteCandidates(houses, domain.RouteCriteria{})
		assert.Len(t, got, len(houses))
	})
}

func TestRouteUseCaseGenerate(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("fixture dataset end to end", func(t *testing.T) {
		seasonYear := time.Now().Year()
		src := fixture.NewSource(logger, seasonYear)
		mockCache := &MockCacheRepository{}

		uc := usecase.NewRouteUseCase(src, mockCache, logger, seasonYear, time.Hour)

		result, err := uc.Generate(ctx, dto.GenerateRouteRequest{
			DurationMinutes:   60,
			MinRating:         4.0,
			FeaturePreference: []string{"Lights", "Music"},
		})

		assert.NoError(t, err)
		assert.Equal(t, 5, result.StopCount)

		ids := make([]int64, len(result.Stops))
		for i, s := range result.Stops {
			ids[i] = s.ID
		}
		// Старт - лучший рейтинг (Preston Hollow), дальше ближайшие соседи
		assert.Equal(t, []int64{6, 18, 2, 3, 5}, ids)

		assert.Greater(t, result.TotalDistanceKm, 0.0)
		assert.InDelta(t, result.TotalDistanceKm*0.621371, result.TotalDistanceMi, 1e-9)
	})

	t.Run("share stores route and returns token", func(t *testing.T) {
		mockHouses := &MockHouseRepository{}
		mockCache := &MockCacheRepository{}

		house := routeHouse(1, 32.78, -96.79, 4.0)
		mockHouses.On("GetByID", ctx, int64(1)).Return(&house, nil)
		mockCache.On("SetRoute", ctx, mock.AnythingOfType("string"), mock.AnythingOfType("*domain.Route"), time.Hour).Return(nil)

		uc := usecase.NewRouteUseCase(mockHouses, mockCache, logger, 2025, time.Hour)

		result, err := uc.Share(ctx, dto.ShareRouteRequest{
			HouseIDs:        []int64{1},
			DurationMinutes: 30,
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, result.Token)
		assert.Contains(t, result.URL, result.Token)
		mockCache.AssertExpectations(t)
	})
}
