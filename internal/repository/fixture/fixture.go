// Package fixture - статический набор домов в памяти. Используется
// как источник данных для разработки и как запасной вариант, когда
// PostgreSQL недоступен: карта и маршруты продолжают работать.
package fixture

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/twinkle-backend/internal/domain"
	"github.com/twinkle-backend/internal/domain/repository"
	"github.com/twinkle-backend/internal/pkg/errors"
	"go.uber.org/zap"
)

// Source - потокобезопасное хранилище в памяти. Реализует все
// репозитории данных; кеш и стримы остаются на Redis.
type Source struct {
	mu         sync.RWMutex
	logger     *zap.Logger
	houses     []domain.House
	reviews    map[int64]*domain.Review
	flags      map[string]struct{}
	votes      map[string]struct{}
	nextReview int64
}

func NewSource(logger *zap.Logger, seasonYear int) *Source {
	s := &Source{
		logger:  logger,
		houses:  seedHouses(seasonYear),
		reviews: make(map[int64]*domain.Review),
		flags:   make(map[string]struct{}),
		votes:   make(map[string]struct{}),
	}
	s.seedReviews()

	logger.Info("Fixture data source initialized",
		zap.Int("houses", len(s.houses)),
		zap.Int("reviews", len(s.reviews)),
		zap.Int("season_year", seasonYear),
	)
	return s
}

var (
	_ repository.HouseRepository  = (*Source)(nil)
	_ repository.FlagRepository   = (*Source)(nil)
	_ repository.ReviewRepository = reviewView{}
	_ repository.VoteRepository   = voteView{}
)

func (s *Source) GetByID(ctx context.Context, id int64) (*domain.House, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.houses {
		if s.houses[i].ID == id {
			h := s.houses[i]
			return &h, nil
		}
	}
	return nil, errors.ErrHouseNotFound
}

func (s *Source) ListActive(ctx context.Context, seasonYear int) ([]domain.House, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.House, 0, len(s.houses))
	for i := range s.houses {
		if s.houses[i].IsActive && s.houses[i].SeasonYear == seasonYear {
			result = append(result, s.houses[i])
		}
	}
	return result, nil
}

func (s *Source) ListAll(ctx context.Context) ([]domain.House, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.House, len(s.houses))
	copy(result, s.houses)
	return result, nil
}

func (s *Source) UpdateRanks(ctx context.Context, ranks []repository.HouseRank) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	byID := make(map[int64]repository.HouseRank, len(ranks))
	for _, r := range ranks {
		byID[r.HouseID] = r
	}
	for i := range s.houses {
		if r, ok := byID[s.houses[i].ID]; ok {
			s.houses[i].LocalRank = r.LocalRank
			s.houses[i].NationalRank = r.NationalRank
			s.houses[i].UpdatedAt = time.Now()
		}
	}
	return nil
}

func (s *Source) GetReviewByID(ctx context.Context, id int64) (*domain.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	review, ok := s.reviews[id]
	if !ok {
		return nil, errors.ErrReviewNotFound
	}
	r := *review
	return &r, nil
}

func (s *Source) ListByHouse(ctx context.Context, houseID int64) ([]domain.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Review, 0)
	for _, r := range s.reviews {
		if r.HouseID == houseID {
			result = append(result, *r)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID > result[j].ID
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (s *Source) Create(ctx context.Context, review *domain.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextReview++
	review.ID = s.nextReview
	stored := *review
	s.reviews[review.ID] = &stored
	return nil
}

func (s *Source) ListFlagged(ctx context.Context, threshold int) ([]domain.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Review, 0)
	for _, r := range s.reviews {
		if r.FlagCount >= threshold {
			result = append(result, *r)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].FlagCount == result[j].FlagCount {
			return result[i].ID < result[j].ID
		}
		return result[i].FlagCount > result[j].FlagCount
	})
	return result, nil
}

// Insert регистрирует жалобу; повторная от того же пользователя на
// тот же объект - false без ошибки
func (s *Source) Insert(ctx context.Context, flag *domain.Flag) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := fmt.Sprintf("%s:%d:%s", flag.TargetType, flag.TargetID, flag.UserID)
	if _, exists := s.flags[key]; exists {
		return false, nil
	}
	s.flags[key] = struct{}{}

	if flag.TargetType == domain.FlagTargetReview {
		if review, ok := s.reviews[flag.TargetID]; ok {
			review.FlagCount++
		}
	}
	return true, nil
}

// InsertVote регистрирует голос; повторный в тот же календарный
// день - false без ошибки
func (s *Source) InsertVote(ctx context.Context, vote *domain.Vote) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := fmt.Sprintf("%s:%s", vote.UserID, vote.VoteDate)
	if _, exists := s.votes[key]; exists {
		return false, nil
	}
	s.votes[key] = struct{}{}

	for i := range s.houses {
		if s.houses[i].ID == vote.HouseID {
			s.houses[i].Votes++
			s.houses[i].UpdatedAt = time.Now()
			break
		}
	}
	return true, nil
}

// Репозитории отзывов и голосов имеют пересекающиеся имена методов,
// поэтому отдаются отдельными обёртками.

// Reviews возвращает Source как ReviewRepository
func (s *Source) Reviews() repository.ReviewRepository {
	return reviewView{s}
}

// Votes возвращает Source как VoteRepository
func (s *Source) Votes() repository.VoteRepository {
	return voteView{s}
}

type reviewView struct{ *Source }

func (v reviewView) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	return v.GetReviewByID(ctx, id)
}

type voteView struct{ *Source }

func (v voteView) Insert(ctx context.Context, vote *domain.Vote) (bool, error) {
	return v.InsertVote(ctx, vote)
}
