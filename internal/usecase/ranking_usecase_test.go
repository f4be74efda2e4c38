package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/twinkle-backend/internal/domain"
	"github.com/twinkle-backend/internal/domain/repository"
	"github.com/twinkle-backend/internal/usecase"
	"github.com/twinkle-backend/internal/usecase/dto"
)

var localZips = []string{"75201", "75205", "75230"}

func rankedHouse(id int64, zip string, votes int) domain.House {
	return domain.House{ID: id, ZipCode: ptrString(zip), Votes: votes}
}

func TestRankByVotes(t *testing.T) {
	t.Run("descending by votes, ranks start at one", func(t *testing.T) {
		houses := []domain.House{
			rankedHouse(1, "75201", 10),
			rankedHouse(2, "75201", 340),
			rankedHouse(3, "75201", 95),
		}

		entries := usecase.RankByVotes(houses)

		assert.Len(t, entries, 3)
		assert.Equal(t, 1, entries[0].Rank)
		assert.Equal(t, int64(2), entries[0].House.ID)
		assert.Equal(t, 2, entries[1].Rank)
		assert.Equal(t, int64(3), entries[1].House.ID)
		assert.Equal(t, 3, entries[2].Rank)
		assert.Equal(t, int64(1), entries[2].House.ID)
	})

	t.Run("ties keep input order", func(t *testing.T) {
		houses := []domain.House{
			rankedHouse(5, "75201", 50),
			rankedHouse(9, "75201", 50),
			rankedHouse(2, "75201", 50),
		}

		entries := usecase.RankByVotes(houses)

		assert.Equal(t, int64(5), entries[0].House.ID)
		assert.Equal(t, int64(9), entries[1].House.ID)
		assert.Equal(t, int64(2), entries[2].House.ID)
	})

	t.Run("input slice untouched", func(t *testing.T) {
		houses := []domain.House{
			rankedHouse(1, "75201", 1),
			rankedHouse(2, "75201", 99),
		}
		usecase.RankByVotes(houses)
		assert.Equal(t, int64(1), houses[0].ID)
	})
}

func TestRankingUseCaseLeaderboard(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	houses := []domain.House{
		rankedHouse(1, "75201", 120), // local
		rankedHouse(2, "75205", 95),  // local
		rankedHouse(3, "75238", 150), // вне локального списка
		rankedHouse(4, "75230", 340), // local
	}

	t.Run("national scope ranks everything", func(t *testing.T) {
		mockHouses := &MockHouseRepository{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewRankingUseCase(mockHouses, mockCache, logger, localZips, time.Minute)

		mockCache.On("GetLeaderboard", ctx, "leaderboard:national:all").Return(nil, nil)
		mockHouses.On("ListAll", ctx).Return(houses, nil)
		mockCache.On("SetLeaderboard", ctx, "leaderboard:national:all", mock.Anything, time.Minute).Return(nil)

		result, cached, err := uc.Leaderboard(ctx, dto.LeaderboardRequest{Scope: "national"})

		assert.NoError(t, err)
		assert.False(t, cached)
		assert.Len(t, result.Entries, 4)
		assert.Equal(t, int64(4), result.Entries[0].House.ID)
		assert.Equal(t, int64(3), result.Entries[1].House.ID)
	})

	t.Run("local scope keeps configured zips only", func(t *testing.T) {
		mockHouses := &MockHouseRepository{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewRankingUseCase(mockHouses, mockCache, logger, localZips, time.Minute)

		mockCache.On("GetLeaderboard", ctx, "leaderboard:local:all").Return(nil, nil)
		mockHouses.On("ListAll", ctx).Return(houses, nil)
		mockCache.On("SetLeaderboard", ctx, "leaderboard:local:all", mock.Anything, time.Minute).Return(nil)

		result, _, err := uc.Leaderboard(ctx, dto.LeaderboardRequest{Scope: "local"})

		assert.NoError(t, err)
		assert.Len(t, result.Entries, 3)
		for _, e := range result.Entries {
			assert.NotEqual(t, int64(3), e.House.ID)
		}
		assert.Equal(t, 1, result.Entries[0].Rank)
		assert.Equal(t, int64(4), result.Entries[0].House.ID)
	})

	t.Run("local with zip narrows to the exact zip", func(t *testing.T) {
		mockHouses := &MockHouseRepository{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewRankingUseCase(mockHouses, mockCache, logger, localZips, time.Minute)

		mockCache.On("GetLeaderboard", ctx, "leaderboard:local:75205").Return(nil, nil)
		mockHouses.On("ListAll", ctx).Return(houses, nil)
		mockCache.On("SetLeaderboard", ctx, "leaderboard:local:75205", mock.Anything, time.Minute).Return(nil)

		result, _, err := uc.Leaderboard(ctx, dto.LeaderboardRequest{Scope: "local", Zip: "75205"})

		assert.NoError(t, err)
		assert.Len(t, result.Entries, 1)
		assert.Equal(t, int64(2), result.Entries[0].House.ID)
	})

	t.Run("cache hit skips the repository", func(t *testing.T) {
		mockHouses := &MockHouseRepository{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewRankingUseCase(mockHouses, mockCache, logger, localZips, time.Minute)

		cachedEntries := []domain.LeaderboardEntry{
			{Rank: 1, House: rankedHouse(4, "75230", 340)},
		}
		mockCache.On("GetLeaderboard", ctx, "leaderboard:national:all").Return(cachedEntries, nil)

		result, cached, err := uc.Leaderboard(ctx, dto.LeaderboardRequest{Scope: "national"})

		assert.NoError(t, err)
		assert.True(t, cached)
		assert.Equal(t, cachedEntries, result.Entries)
		mockHouses.AssertNotCalled(t, "ListAll", mock.Anything)
	})
}

func TestRankingUseCaseRecomputeRanks(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	houses := []domain.House{
		rankedHouse(1, "75201", 120),
		rankedHouse(2, "75205", 95),
		rankedHouse(3, "75238", 150),
		rankedHouse(4, "75230", 340),
	}

	mockHouses := &MockHouseRepository{}
	mockCache := &MockCacheRepository{}
	uc := usecase.NewRankingUseCase(mockHouses, mockCache, logger, localZips, time.Minute)

	mockHouses.On("ListAll", ctx).Return(houses, nil)
	mockHouses.On("UpdateRanks", ctx, mock.MatchedBy(func(ranks []repository.HouseRank) bool {
		byID := make(map[int64]repository.HouseRank, len(ranks))
		for _, r := range ranks {
			byID[r.HouseID] = r
		}
		// National: 4 > 3 > 1 > 2; local исключает дом 3
		if *byID[4].NationalRank != 1 || *byID[3].NationalRank != 2 ||
			*byID[1].NationalRank != 3 || *byID[2].NationalRank != 4 {
			return false
		}
		if *byID[4].LocalRank != 1 || *byID[1].LocalRank != 2 || *byID[2].LocalRank != 3 {
			return false
		}
		return byID[3].LocalRank == nil
	})).Return(nil)
	mockCache.On("InvalidateLeaderboards", ctx).Return(nil)

	err := uc.RecomputeRanks(ctx)

	assert.NoError(t, err)
	mockHouses.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}
