package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/twinkle-backend/internal/domain"
	"github.com/twinkle-backend/internal/domain/repository"
	"github.com/twinkle-backend/internal/pkg/errors"
	"github.com/twinkle-backend/internal/pkg/utils"
	"github.com/twinkle-backend/internal/usecase/dto"
	"go.uber.org/zap"
)

const (
	// stopIntervalMinutes - условное время на один дом
	stopIntervalMinutes = 15
	// maxRouteStops - жёсткий потолок длины маршрута
	maxRouteStops = 10

	shareURLFormat = "https://twinkle.app/route/%s"
)

// RouteUseCase - построение маршрутов по домам
type RouteUseCase struct {
	houseRepo  repository.HouseRepository
	cacheRepo  repository.CacheRepository
	logger     *zap.Logger
	seasonYear int
	shareTTL   time.Duration
}

func NewRouteUseCase(
	houseRepo repository.HouseRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	seasonYear int,
	shareTTL time.Duration,
) *RouteUseCase {
	return &RouteUseCase{
		houseRepo:  houseRepo,
		cacheRepo:  cacheRepo,
		logger:     logger,
		seasonYear: seasonYear,
		shareTTL:   shareTTL,
	}
}

// Generate строит маршрут жадным алгоритмом ближайшего соседа.
// Кандидаты отбираются по минимальному рейтингу и предпочтениям
// атрибутов (any-of - нарочно мягче, чем all-of фильтр карты).
func (uc *RouteUseCase) Generate(ctx context.Context, req dto.GenerateRouteRequest) (*dto.RouteResponse, error) {
	if req.DurationMinutes < 0 {
		return nil, errors.ErrInvalidDuration
	}

	houses, err := uc.houseRepo.ListActive(ctx, uc.seasonYear)
	if err != nil {
		uc.logger.Error("Failed to list houses for route", zap.Error(err))
		return nil, err
	}

	criteria := domain.RouteCriteria{
		DurationMinutes:   req.DurationMinutes,
		MinRating:         req.MinRating,
		FeaturePreference: toFeatures(req.FeaturePreference),
	}

	candidates := SelectRouteCandidates(houses, criteria)
	route := BuildRoute(candidates, req.DurationMinutes)
	route.Criteria = criteria

	uc.logger.Info("Route generated",
		zap.Int("duration_minutes", req.DurationMinutes),
		zap.Int("candidates", len(candidates)),
		zap.Int("stops", len(route.Stops)),
		zap.Float64("total_distance_km", route.TotalDistanceKm),
	)

	return &dto.RouteResponse{
		Stops:           route.Stops,
		StopCount:       len(route.Stops),
		DurationMinutes: req.DurationMinutes,
		TotalDistanceKm: route.TotalDistanceKm,
		TotalDistanceMi: utils.KmToMiles(route.TotalDistanceKm),
	}, nil
}

// Share сохраняет маршрут и возвращает непрозрачный токен для ссылки
func (uc *RouteUseCase) Share(ctx context.Context, req dto.ShareRouteRequest) (*dto.ShareRouteResponse, error) {
	stops := make([]domain.House, 0, len(req.HouseIDs))
	for _, id := range req.HouseIDs {
		house, err := uc.houseRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		stops = append(stops, *house)
	}

	route := &domain.Route{
		Stops:           stops,
		TotalDistanceKm: totalDistance(stops),
		Criteria: domain.RouteCriteria{
			DurationMinutes: req.DurationMinutes,
		},
	}

	token := uuid.New().String()
	if err := uc.cacheRepo.SetRoute(ctx, token, route, uc.shareTTL); err != nil {
		uc.logger.Error("Failed to store shared route", zap.Error(err))
		return nil, err
	}

	return &dto.ShareRouteResponse{
		Token: token,
		URL:   fmt.Sprintf(shareURLFormat, token),
	}, nil
}

// GetShared возвращает сохранённый по токену маршрут
func (uc *RouteUseCase) GetShared(ctx context.Context, token string) (*domain.Route, error) {
	route, err := uc.cacheRepo.GetRoute(ctx, token)
	if err != nil {
		uc.logger.Error("Failed to load shared route", zap.String("token", token), zap.Error(err))
		return nil, err
	}
	if route == nil {
		return nil, errors.ErrRouteNotFound
	}
	return route, nil
}

// SelectRouteCandidates отбирает дома для маршрута: рейтинг не ниже
// порога и хотя бы один предпочитаемый атрибут (any-of). Порядок
// входной коллекции сохраняется.
func SelectRouteCandidates(houses []domain.House, criteria domain.RouteCriteria) []domain.House {
	candidates := make([]domain.House, 0, len(houses))
	for i := range houses {
		h := &houses[i]
		if h.Rating() < criteria.MinRating {
			continue
		}
		if len(criteria.FeaturePreference) > 0 && !h.HasAnyFeature(criteria.FeaturePreference) {
			continue
		}
		candidates = append(candidates, *h)
	}
	return candidates
}

// BuildRoute строит маршрут жадным алгоритмом ближайшего соседа.
// Количество остановок: min(duration/15 + 1, кандидаты, 10).
// Старт - дом с максимальным рейтингом; при равенстве рейтингов и
// при равенстве дистанций побеждает более ранний в исходном порядке,
// поэтому результат детерминирован.
func BuildRoute(candidates []domain.House, durationMinutes int) domain.Route {
	if len(candidates) == 0 || durationMinutes < 0 {
		return domain.Route{Stops: []domain.House{}}
	}

	target := durationMinutes/stopIntervalMinutes + 1
	if target > len(candidates) {
		target = len(candidates)
	}
	if target > maxRouteStops {
		target = maxRouteStops
	}

	remaining := make([]domain.House, len(candidates))
	copy(remaining, candidates)

	// Стартуем с самого высокого рейтинга (stable: исходный порядок при равенстве)
	sort.SliceStable(remaining, func(i, j int) bool {
		return remaining[i].Rating() > remaining[j].Rating()
	})

	stops := make([]domain.House, 0, target)
	stops = append(stops, remaining[0])
	remaining = remaining[1:]

	// После выбора старта возвращаем кандидатам исходный порядок,
	// чтобы тай-брейк по дистанции был привязан к порядку коллекции
	remaining = withoutSeed(candidates, stops[0].ID)

	for len(stops) < target && len(remaining) > 0 {
		last := stops[len(stops)-1]

		best := 0
		bestDist := utils.HaversineDistance(last.Lat, last.Lng, remaining[0].Lat, remaining[0].Lng)
		for i := 1; i < len(remaining); i++ {
			d := utils.HaversineDistance(last.Lat, last.Lng, remaining[i].Lat, remaining[i].Lng)
			if d < bestDist {
				best = i
				bestDist = d
			}
		}

		stops = append(stops, remaining[best])
		remaining = append(remaining[:best], remaining[best+1:]...)
	}

	return domain.Route{
		Stops:           stops,
		TotalDistanceKm: totalDistance(stops),
	}
}

// totalDistance - сумма хаверсин-дистанций по сегментам маршрута
func totalDistance(stops []domain.House) float64 {
	var total float64
	for i := 1; i < len(stops); i++ {
		total += utils.HaversineDistance(
			stops[i-1].Lat, stops[i-1].Lng,
			stops[i].Lat, stops[i].Lng,
		)
	}
	return total
}

// withoutSeed возвращает кандидатов без выбранного старта,
// сохраняя порядок исходной коллекции
func withoutSeed(original []domain.House, seedID int64) []domain.House {
	rest := make([]domain.House, 0, len(original)-1)
	for i := range original {
		if original[i].ID != seedID {
			rest = append(rest, original[i])
		}
	}
	return rest
}
