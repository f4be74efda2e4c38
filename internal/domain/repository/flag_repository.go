package repository

import (
	"context"

	"github.com/twinkle-backend/internal/domain"
)

// FlagRepository определяет методы доступа к жалобам
type FlagRepository interface {
	// Insert атомарно сохраняет жалобу. Возвращает false без ошибки,
	// если пользователь уже жаловался на этот объект: повторная жалоба -
	// ожидаемый исход, а не сбой. Успешная вставка инкрементирует
	// счётчик жалоб объекта ровно на единицу.
	Insert(ctx context.Context, flag *domain.Flag) (bool, error)
}
