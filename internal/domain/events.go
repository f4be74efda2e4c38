package domain

import "time"

// Stream names (должны совпадать с воркером пересчёта рейтингов)
const (
	StreamVoteCast = "stream:votes:cast"
)

// VoteCastEvent - событие успешного голоса. Публикуется API после
// инкремента счётчика, потребляется воркером пересчёта рейтингов.
type VoteCastEvent struct {
	HouseID  int64     `json:"house_id"`
	UserID   string    `json:"user_id"`
	VoteDate string    `json:"vote_date"`
	CastAt   time.Time `json:"cast_at"`
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
