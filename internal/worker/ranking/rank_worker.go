// Package ranking - воркер пересчёта мест домов по событиям
// голосования из Redis Streams.
package ranking

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/twinkle-backend/internal/domain"
	"github.com/twinkle-backend/internal/domain/repository"
	"github.com/twinkle-backend/internal/usecase"
	"github.com/twinkle-backend/internal/worker"
	"go.uber.org/zap"
)

const (
	defaultBatchSize = 20
	emptyQueueSleep  = 100 * time.Millisecond // пауза если очередь пуста
)

// RankWorker слушает события голосования и пересчитывает места.
// Batch событий схлопывается в один пересчёт: места зависят только
// от текущих счётчиков голосов, не от отдельных событий.
type RankWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	rankingUC    *usecase.RankingUseCase
	consumerName string
	batchSize    int
}

// NewRankWorker создает новый RankWorker
func NewRankWorker(
	streamRepo repository.StreamRepository,
	rankingUC *usecase.RankingUseCase,
	consumerGroup string,
	batchSize int,
	logger *zap.Logger,
) *RankWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	return &RankWorker{
		BaseWorker:   worker.NewBaseWorker("rank-recompute", consumerGroup, logger),
		streamRepo:   streamRepo,
		rankingUC:    rankingUC,
		consumerName: consumerName,
		batchSize:    batchSize,
	}
}

// Start запускает воркер
func (w *RankWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting RankWorker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName),
		zap.Int("batch_size", w.batchSize))

	// Создаем consumer group
	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamVoteCast, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	// Основной цикл обработки
	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		default:
			processed, err := w.processBatch(ctx)
			if err != nil {
				logger.Error("Failed to process batch", zap.Error(err))
				time.Sleep(time.Second) // пауза при ошибке
				continue
			}

			if processed == 0 {
				time.Sleep(emptyQueueSleep)
			}
		}
	}
}

// processBatch читает batch событий голосования, выполняет один
// пересчёт мест и подтверждает сообщения.
// Возвращает количество обработанных сообщений.
func (w *RankWorker) processBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	messages, err := w.streamRepo.ConsumeBatch(
		ctx,
		domain.StreamVoteCast,
		w.ConsumerGroup(),
		w.consumerName,
		w.batchSize,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to consume batch: %w", err)
	}

	if len(messages) == 0 {
		return 0, nil // очередь пуста
	}

	logger.Info("Processing vote events", zap.Int("message_count", len(messages)))

	// События разбираются только для логирования; пересчёт один на batch
	messageIDs := make([]string, 0, len(messages))
	for _, msg := range messages {
		var event domain.VoteCastEvent
		if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
			logger.Warn("Failed to unmarshal vote event",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			// Битое сообщение подтверждаем, чтобы не зациклиться
			messageIDs = append(messageIDs, msg.ID)
			continue
		}
		logger.Debug("Vote event received",
			zap.Int64("house_id", event.HouseID),
			zap.String("vote_date", event.VoteDate))
		messageIDs = append(messageIDs, msg.ID)
	}

	if err := w.rankingUC.RecomputeRanks(ctx); err != nil {
		// Без Ack: сообщения останутся pending и будут перечитаны
		return 0, fmt.Errorf("failed to recompute ranks: %w", err)
	}

	if err := w.streamRepo.AckMessages(ctx, domain.StreamVoteCast, w.ConsumerGroup(), messageIDs); err != nil {
		return 0, fmt.Errorf("failed to ack messages: %w", err)
	}

	return len(messages), nil
}
