package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/twinkle-backend/internal/domain"
	"github.com/twinkle-backend/internal/pkg/errors"
	"github.com/twinkle-backend/internal/usecase"
	"github.com/twinkle-backend/internal/usecase/dto"
)

func TestHouseUseCaseList(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	houses := []domain.House{
		{ID: 1, Lat: 32.78, Lng: -96.79, AvgRating: ptrFloat64(4.8), Features: []domain.Feature{domain.FeatureLights, domain.FeatureMusic}},
		{ID: 2, Lat: 32.95, Lng: -96.70, AvgRating: ptrFloat64(4.5), Features: []domain.Feature{domain.FeatureLights}},
		{ID: 3, Lat: 32.80, Lng: -96.80, AvgRating: ptrFloat64(3.0), Features: []domain.Feature{domain.FeatureLights}},
	}

	t.Run("no filter returns the whole season", func(t *testing.T) {
		mockHouses := &MockHouseRepository{}
		mockHouses.On("ListActive", ctx, 2025).Return(houses, nil)

		uc := usecase.NewHouseUseCase(mockHouses, logger, 2025)
		got, err := uc.List(ctx, dto.HouseListRequest{})

		assert.NoError(t, err)
		assert.Len(t, got, 3)
	})

	t.Run("bounds and rating combine", func(t *testing.T) {
		mockHouses := &MockHouseRepository{}
		mockHouses.On("ListActive", ctx, 2025).Return(houses, nil)

		uc := usecase.NewHouseUseCase(mockHouses, logger, 2025)
		got, err := uc.List(ctx, dto.HouseListRequest{
			NELat:     ptrFloat64(32.85),
			NELng:     ptrFloat64(-96.75),
			SWLat:     ptrFloat64(32.75),
			SWLng:     ptrFloat64(-96.82),
			MinRating: 4.0,
		})

		assert.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Equal(t, int64(1), got[0].ID)
	})

	t.Run("partial bounds rejected", func(t *testing.T) {
		uc := usecase.NewHouseUseCase(&MockHouseRepository{}, logger, 2025)

		_, err := uc.List(ctx, dto.HouseListRequest{NELat: ptrFloat64(32.85)})
		assert.ErrorIs(t, err, errors.ErrInvalidBounds)
	})
}

func TestHouseUseCaseGetByID(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("found", func(t *testing.T) {
		mockHouses := &MockHouseRepository{}
		house := domain.House{ID: 6, Address: "777 North Pole Ct, Preston Hollow, TX"}
		mockHouses.On("GetByID", ctx, int64(6)).Return(&house, nil)

		uc := usecase.NewHouseUseCase(mockHouses, logger, 2025)
		got, err := uc.GetByID(ctx, 6)

		assert.NoError(t, err)
		assert.Equal(t, house.Address, got.Address)
	})

	t.Run("not found", func(t *testing.T) {
		mockHouses := &MockHouseRepository{}
		mockHouses.On("GetByID", ctx, int64(99)).Return(nil, errors.ErrHouseNotFound)

		uc := usecase.NewHouseUseCase(mockHouses, logger, 2025)
		_, err := uc.GetByID(ctx, 99)

		assert.ErrorIs(t, err, errors.ErrHouseNotFound)
	})
}
