package domain

import "time"

// DefaultFlagThreshold - количество жалоб, при котором отзыв
// автоматически скрывается до решения модератора
const DefaultFlagThreshold = 15

// Review - отзыв пользователя о доме
type Review struct {
	ID        int64     `json:"id" db:"id"`
	HouseID   int64     `json:"house_id" db:"house_id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Body      string    `json:"body" db:"body"`
	FlagCount int       `json:"flag_count" db:"flag_count"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Hidden - скрыт ли отзыв по количеству жалоб
func (r *Review) Hidden(threshold int) bool {
	return r.FlagCount >= threshold
}

// FlagTargetType - тип объекта жалобы
type FlagTargetType string

const (
	FlagTargetHouse  FlagTargetType = "house"
	FlagTargetReview FlagTargetType = "review"
)

// Valid проверяет известность типа объекта
func (t FlagTargetType) Valid() bool {
	return t == FlagTargetHouse || t == FlagTargetReview
}

// FlagReason - причина жалобы из фиксированного списка.
// Причина сохраняется для модераторов и не влияет на подсчёт.
type FlagReason string

const (
	FlagReasonInappropriate FlagReason = "inappropriate"
	FlagReasonSpam          FlagReason = "spam"
	FlagReasonNotADisplay   FlagReason = "not_a_display"
	FlagReasonWrongLocation FlagReason = "wrong_location"
	FlagReasonOther         FlagReason = "other"
)

// Valid проверяет известность причины
func (r FlagReason) Valid() bool {
	switch r {
	case FlagReasonInappropriate, FlagReasonSpam, FlagReasonNotADisplay,
		FlagReasonWrongLocation, FlagReasonOther:
		return true
	}
	return false
}

// Flag - жалоба пользователя на дом или отзыв.
// Уникальна по (user_id, target_type, target_id).
type Flag struct {
	TargetType FlagTargetType `json:"target_type" db:"target_type"`
	TargetID   int64          `json:"target_id" db:"target_id"`
	UserID     string         `json:"user_id" db:"user_id"`
	Reason     FlagReason     `json:"reason" db:"reason"`
	CreatedAt  time.Time      `json:"created_at" db:"created_at"`
}
