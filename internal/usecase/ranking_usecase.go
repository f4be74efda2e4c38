package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/twinkle-backend/internal/domain"
	"github.com/twinkle-backend/internal/domain/repository"
	"github.com/twinkle-backend/internal/usecase/dto"
	"go.uber.org/zap"
)

const (
	ScopeLocal    = "local"
	ScopeNational = "national"
)

// RankingUseCase - рейтинги домов по голосам и их пересчёт
type RankingUseCase struct {
	houseRepo      repository.HouseRepository
	cacheRepo      repository.CacheRepository
	logger         *zap.Logger
	localZipCodes  map[string]struct{}
	leaderboardTTL time.Duration
}

func NewRankingUseCase(
	houseRepo repository.HouseRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	localZipCodes []string,
	leaderboardTTL time.Duration,
) *RankingUseCase {
	zips := make(map[string]struct{}, len(localZipCodes))
	for _, z := range localZipCodes {
		zips[z] = struct{}{}
	}
	return &RankingUseCase{
		houseRepo:      houseRepo,
		cacheRepo:      cacheRepo,
		logger:         logger,
		localZipCodes:  zips,
		leaderboardTTL: leaderboardTTL,
	}
}

// Leaderboard возвращает рейтинг по голосам для запрошенной области.
// Local без zip - дома из настроенных почтовых индексов; local с zip -
// только точное совпадение индекса; national - все дома.
func (uc *RankingUseCase) Leaderboard(ctx context.Context, req dto.LeaderboardRequest) (*dto.LeaderboardResponse, bool, error) {
	key := leaderboardCacheKey(req.Scope, req.Zip)

	if entries, err := uc.cacheRepo.GetLeaderboard(ctx, key); err != nil {
		uc.logger.Warn("Leaderboard cache read failed", zap.String("key", key), zap.Error(err))
	} else if entries != nil {
		return &dto.LeaderboardResponse{
			Scope:   req.Scope,
			Zip:     req.Zip,
			Entries: entries,
		}, true, nil
	}

	houses, err := uc.houseRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Error("Failed to list houses for leaderboard", zap.Error(err))
		return nil, false, err
	}

	scoped := uc.scopeHouses(houses, req.Scope, req.Zip)
	entries := RankByVotes(scoped)

	if err := uc.cacheRepo.SetLeaderboard(ctx, key, entries, uc.leaderboardTTL); err != nil {
		uc.logger.Warn("Leaderboard cache write failed", zap.String("key", key), zap.Error(err))
	}

	return &dto.LeaderboardResponse{
		Scope:   req.Scope,
		Zip:     req.Zip,
		Entries: entries,
	}, false, nil
}

// RecomputeRanks пересчитывает national и local места всех домов
// и сохраняет их. Вызывается воркером по событиям голосования.
func (uc *RankingUseCase) RecomputeRanks(ctx context.Context) error {
	houses, err := uc.houseRepo.ListAll(ctx)
	if err != nil {
		return err
	}

	national := RankByVotes(houses)
	local := RankByVotes(uc.scopeHouses(houses, ScopeLocal, ""))

	ranks := make(map[int64]*repository.HouseRank, len(houses))
	for i := range houses {
		ranks[houses[i].ID] = &repository.HouseRank{HouseID: houses[i].ID}
	}
	for _, e := range national {
		rank := e.Rank
		ranks[e.House.ID].NationalRank = &rank
	}
	for _, e := range local {
		rank := e.Rank
		ranks[e.House.ID].LocalRank = &rank
	}

	updates := make([]repository.HouseRank, 0, len(ranks))
	for i := range houses {
		updates = append(updates, *ranks[houses[i].ID])
	}

	if err := uc.houseRepo.UpdateRanks(ctx, updates); err != nil {
		uc.logger.Error("Failed to update ranks", zap.Error(err))
		return err
	}

	if err := uc.cacheRepo.InvalidateLeaderboards(ctx); err != nil {
		uc.logger.Warn("Failed to invalidate leaderboard cache", zap.Error(err))
	}

	uc.logger.Info("Ranks recomputed",
		zap.Int("houses", len(houses)),
		zap.Int("local", len(local)),
	)
	return nil
}

// scopeHouses отбирает дома для области рейтинга
func (uc *RankingUseCase) scopeHouses(houses []domain.House, scope, zip string) []domain.House {
	if scope == ScopeNational {
		return houses
	}

	scoped := make([]domain.House, 0, len(houses))
	for i := range houses {
		h := &houses[i]
		if h.ZipCode == nil {
			continue
		}
		if zip != "" {
			if *h.ZipCode == zip {
				scoped = append(scoped, *h)
			}
			continue
		}
		if _, ok := uc.localZipCodes[*h.ZipCode]; ok {
			scoped = append(scoped, *h)
		}
	}
	return scoped
}

// RankByVotes сортирует дома по убыванию голосов (stable: при
// равенстве сохраняется исходный порядок) и присваивает места с 1
func RankByVotes(houses []domain.House) []domain.LeaderboardEntry {
	ranked := make([]domain.House, len(houses))
	copy(ranked, houses)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Votes > ranked[j].Votes
	})

	entries := make([]domain.LeaderboardEntry, len(ranked))
	for i := range ranked {
		entries[i] = domain.LeaderboardEntry{
			Rank:  i + 1,
			House: ranked[i],
		}
	}
	return entries
}

func leaderboardCacheKey(scope, zip string) string {
	if zip == "" {
		zip = "all"
	}
	return fmt.Sprintf("leaderboard:%s:%s", scope, zip)
}
