package domain

import "time"

// Vote - голос пользователя за дом. Один голос в календарный день
// на пользователя, независимо от дома. Уникален по (user_id, vote_date).
type Vote struct {
	UserID    string    `json:"user_id" db:"user_id"`
	HouseID   int64     `json:"house_id" db:"house_id"`
	VoteDate  string    `json:"vote_date" db:"vote_date"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// VoteDay форматирует календарный день для ключа дедупликации голосов.
// Граница дня берётся по локальным часам сервера.
func VoteDay(t time.Time) string {
	return t.Format("2006-01-02")
}
