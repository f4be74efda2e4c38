package repository

import (
	"context"

	"github.com/twinkle-backend/internal/domain"
)

// VoteRepository определяет методы доступа к голосам
type VoteRepository interface {
	// Insert атомарно сохраняет голос. Возвращает false без ошибки,
	// если пользователь уже голосовал в этот календарный день
	// (за любой дом). Успешная вставка инкрементирует счётчик голосов
	// дома ровно на единицу.
	Insert(ctx context.Context, vote *domain.Vote) (bool, error)
}
