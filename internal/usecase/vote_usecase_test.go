package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/twinkle-backend/internal/domain"
	"github.com/twinkle-backend/internal/pkg/errors"
	"github.com/twinkle-backend/internal/usecase"
	"github.com/twinkle-backend/internal/usecase/dto"
)

func TestVoteUseCaseCast(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("first vote of the day", func(t *testing.T) {
		mockHouses := &MockHouseRepository{}
		mockVotes := &MockVoteRepository{}
		mockCache := &MockCacheRepository{}
		mockStream := &MockStreamRepository{}

		house := domain.House{ID: 6}
		mockHouses.On("GetByID", ctx, int64(6)).Return(&house, nil)
		mockVotes.On("Insert", ctx, mock.MatchedBy(func(v *domain.Vote) bool {
			return v.HouseID == 6 &&
				v.UserID == testUserID &&
				v.VoteDate == domain.VoteDay(time.Now())
		})).Return(true, nil)
		mockStream.On("PublishToStream", ctx, domain.StreamVoteCast, mock.AnythingOfType("domain.VoteCastEvent")).Return(nil).Once()
		mockCache.On("InvalidateLeaderboards", ctx).Return(nil).Once()

		uc := usecase.NewVoteUseCase(mockHouses, mockVotes, mockCache, mockStream, logger)

		result, err := uc.Cast(ctx, dto.VoteRequest{HouseID: 6, UserID: testUserID})

		assert.NoError(t, err)
		assert.True(t, result.Voted)
		assert.False(t, result.AlreadyVotedToday)
		mockStream.AssertExpectations(t)
		mockCache.AssertExpectations(t)
	})

	t.Run("second vote the same day is a no-op", func(t *testing.T) {
		mockHouses := &MockHouseRepository{}
		mockVotes := &MockVoteRepository{}
		mockCache := &MockCacheRepository{}
		mockStream := &MockStreamRepository{}

		house := domain.House{ID: 6}
		mockHouses.On("GetByID", ctx, int64(6)).Return(&house, nil)
		mockVotes.On("Insert", ctx, mock.AnythingOfType("*domain.Vote")).Return(false, nil)

		uc := usecase.NewVoteUseCase(mockHouses, mockVotes, mockCache, mockStream, logger)

		result, err := uc.Cast(ctx, dto.VoteRequest{HouseID: 6, UserID: testUserID})

		assert.NoError(t, err)
		assert.False(t, result.Voted)
		assert.True(t, result.AlreadyVotedToday)
		// Ни события, ни сброса кеша при повторном голосе
		mockStream.AssertNotCalled(t, "PublishToStream", mock.Anything, mock.Anything, mock.Anything)
		mockCache.AssertNotCalled(t, "InvalidateLeaderboards", mock.Anything)
	})

	t.Run("unknown house", func(t *testing.T) {
		mockHouses := &MockHouseRepository{}
		mockHouses.On("GetByID", ctx, int64(99)).Return(nil, errors.ErrHouseNotFound)

		uc := usecase.NewVoteUseCase(mockHouses, &MockVoteRepository{}, &MockCacheRepository{}, &MockStreamRepository{}, logger)

		_, err := uc.Cast(ctx, dto.VoteRequest{HouseID: 99, UserID: testUserID})
		assert.ErrorIs(t, err, errors.ErrHouseNotFound)
	})

	t.Run("vote survives publish failure", func(t *testing.T) {
		mockHouses := &MockHouseRepository{}
		mockVotes := &MockVoteRepository{}
		mockCache := &MockCacheRepository{}
		mockStream := &MockStreamRepository{}

		house := domain.House{ID: 6}
		mockHouses.On("GetByID", ctx, int64(6)).Return(&house, nil)
		mockVotes.On("Insert", ctx, mock.AnythingOfType("*domain.Vote")).Return(true, nil)
		mockStream.On("PublishToStream", ctx, domain.StreamVoteCast, mock.Anything).Return(assertError{})
		mockCache.On("InvalidateLeaderboards", ctx).Return(nil)

		uc := usecase.NewVoteUseCase(mockHouses, mockVotes, mockCache, mockStream, logger)

		result, err := uc.Cast(ctx, dto.VoteRequest{HouseID: 6, UserID: testUserID})

		assert.NoError(t, err)
		assert.True(t, result.Voted)
	})
}

type assertError struct{}

func (assertError) Error() string { return "stream unavailable" }
