package usecase

import (
	"context"

	"github.com/twinkle-backend/internal/domain"
	"github.com/twinkle-backend/internal/domain/repository"
	"github.com/twinkle-backend/internal/pkg/errors"
	"github.com/twinkle-backend/internal/usecase/dto"
	"go.uber.org/zap"
)

// HouseUseCase - фильтрация и выдача домов для карты
type HouseUseCase struct {
	houseRepo  repository.HouseRepository
	logger     *zap.Logger
	seasonYear int
}

func NewHouseUseCase(
	houseRepo repository.HouseRepository,
	logger *zap.Logger,
	seasonYear int,
) *HouseUseCase {
	return &HouseUseCase{
		houseRepo:  houseRepo,
		logger:     logger,
		seasonYear: seasonYear,
	}
}

// List возвращает активные дома сезона, удовлетворяющие фильтру.
// Все условия конъюнктивны; набор атрибутов проверяется как all-of.
func (uc *HouseUseCase) List(ctx context.Context, req dto.HouseListRequest) ([]domain.House, error) {
	filter, err := buildFilter(req)
	if err != nil {
		return nil, err
	}

	houses, err := uc.houseRepo.ListActive(ctx, uc.seasonYear)
	if err != nil {
		uc.logger.Error("Failed to list houses", zap.Error(err))
		return nil, err
	}

	return domain.FilterHouses(houses, *filter), nil
}

// GetByID возвращает дом по ID
func (uc *HouseUseCase) GetByID(ctx context.Context, id int64) (*domain.House, error) {
	house, err := uc.houseRepo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Error("Failed to get house", zap.Int64("house_id", id), zap.Error(err))
		return nil, err
	}
	return house, nil
}

// buildFilter собирает доменный фильтр из параметров запроса
func buildFilter(req dto.HouseListRequest) (*domain.HouseFilter, error) {
	filter := &domain.HouseFilter{
		MinRating: req.MinRating,
		Features:  toFeatures(req.Features),
	}

	corners := 0
	for _, c := range []*float64{req.NELat, req.NELng, req.SWLat, req.SWLng} {
		if c != nil {
			corners++
		}
	}
	switch corners {
	case 0:
		// Без границ - фильтр по области отключён
	case 4:
		filter.Bounds = &domain.BoundingBox{
			North: *req.NELat,
			South: *req.SWLat,
			East:  *req.NELng,
			West:  *req.SWLng,
		}
	default:
		return nil, errors.ErrInvalidBounds
	}

	return filter, nil
}

func toFeatures(names []string) []domain.Feature {
	if len(names) == 0 {
		return nil
	}
	features := make([]domain.Feature, len(names))
	for i, n := range names {
		features[i] = domain.Feature(n)
	}
	return features
}
