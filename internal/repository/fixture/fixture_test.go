package fixture_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/twinkle-backend/internal/domain"
	"github.com/twinkle-backend/internal/pkg/errors"
	"github.com/twinkle-backend/internal/repository/fixture"
)

func newSource(t *testing.T) *fixture.Source {
	t.Helper()
	return fixture.NewSource(zap.NewNop(), 2025)
}

func TestSourceHouses(t *testing.T) {
	ctx := context.Background()
	src := newSource(t)

	t.Run("seeded season", func(t *testing.T) {
		houses, err := src.ListActive(ctx, 2025)
		assert.NoError(t, err)
		assert.Len(t, houses, 18)
		// Порядок коллекции стабилен
		assert.Equal(t, int64(1), houses[0].ID)
		assert.Equal(t, int64(18), houses[17].ID)
	})

	t.Run("other season is empty", func(t *testing.T) {
		houses, err := src.ListActive(ctx, 2024)
		assert.NoError(t, err)
		assert.Empty(t, houses)
	})

	t.Run("get by id", func(t *testing.T) {
		house, err := src.GetByID(ctx, 6)
		assert.NoError(t, err)
		assert.Contains(t, house.Address, "Preston Hollow")
		assert.Equal(t, 5.0, house.Rating())

		_, err = src.GetByID(ctx, 999)
		assert.ErrorIs(t, err, errors.ErrHouseNotFound)
	})
}

func TestSourceVotes(t *testing.T) {
	ctx := context.Background()
	src := newSource(t)
	votes := src.Votes()

	before, _ := src.GetByID(ctx, 1)

	vote := &domain.Vote{
		UserID:    "7f1c9bba-43ce-4d21-a56a-5db11e4f6a1c",
		HouseID:   1,
		VoteDate:  domain.VoteDay(time.Now()),
		CreatedAt: time.Now(),
	}

	inserted, err := votes.Insert(ctx, vote)
	assert.NoError(t, err)
	assert.True(t, inserted)

	after, _ := src.GetByID(ctx, 1)
	assert.Equal(t, before.Votes+1, after.Votes)

	t.Run("same day duplicate ignored even for another house", func(t *testing.T) {
		dup := &domain.Vote{
			UserID:    vote.UserID,
			HouseID:   2,
			VoteDate:  vote.VoteDate,
			CreatedAt: time.Now(),
		}
		inserted, err := votes.Insert(ctx, dup)
		assert.NoError(t, err)
		assert.False(t, inserted)

		other, _ := src.GetByID(ctx, 2)
		assert.Equal(t, 95, other.Votes)
	})

	t.Run("next day allowed", func(t *testing.T) {
		tomorrow := &domain.Vote{
			UserID:    vote.UserID,
			HouseID:   1,
			VoteDate:  domain.VoteDay(time.Now().AddDate(0, 0, 1)),
			CreatedAt: time.Now(),
		}
		inserted, err := votes.Insert(ctx, tomorrow)
		assert.NoError(t, err)
		assert.True(t, inserted)
	})
}

func TestSourceFlags(t *testing.T) {
	ctx := context.Background()
	src := newSource(t)
	reviews := src.Reviews()

	// Свежий отзыв для счётчика жалоб
	review := &domain.Review{
		HouseID:   1,
		UserID:    "b3e8a2d4-11fa-4d0e-8de9-64cf3e6a7b55",
		Body:      "Nice lights",
		CreatedAt: time.Now(),
	}
	assert.NoError(t, reviews.Create(ctx, review))

	flag := &domain.Flag{
		TargetType: domain.FlagTargetReview,
		TargetID:   review.ID,
		UserID:     "0e2f4f4c-8a7e-4c83-9f51-2fb22a9dd901",
		Reason:     domain.FlagReasonSpam,
		CreatedAt:  time.Now(),
	}

	inserted, err := src.Insert(ctx, flag)
	assert.NoError(t, err)
	assert.True(t, inserted)

	stored, err := reviews.GetByID(ctx, review.ID)
	assert.NoError(t, err)
	assert.Equal(t, 1, stored.FlagCount)

	t.Run("duplicate flag ignored", func(t *testing.T) {
		inserted, err := src.Insert(ctx, flag)
		assert.NoError(t, err)
		assert.False(t, inserted)

		stored, _ := reviews.GetByID(ctx, review.ID)
		assert.Equal(t, 1, stored.FlagCount)
	})

	t.Run("another user counts", func(t *testing.T) {
		other := *flag
		other.UserID = "7f1c9bba-43ce-4d21-a56a-5db11e4f6a1c"
		inserted, err := src.Insert(ctx, &other)
		assert.NoError(t, err)
		assert.True(t, inserted)

		stored, _ := reviews.GetByID(ctx, review.ID)
		assert.Equal(t, 2, stored.FlagCount)
	})
}

func TestSourceFlaggedReviews(t *testing.T) {
	ctx := context.Background()
	src := newSource(t)
	reviews := src.Reviews()

	flagged, err := reviews.ListFlagged(ctx, domain.DefaultFlagThreshold)
	assert.NoError(t, err)
	// В наборе есть один отзыв, достигший порога
	assert.Len(t, flagged, 1)
	assert.GreaterOrEqual(t, flagged[0].FlagCount, domain.DefaultFlagThreshold)

	listed, err := reviews.ListByHouse(ctx, 3)
	assert.NoError(t, err)
	assert.Len(t, listed, 2)
}
