package dto

import "github.com/twinkle-backend/internal/domain"

// RouteResponse - построенный маршрут
type RouteResponse struct {
	Stops           []domain.House `json:"stops"`
	StopCount       int            `json:"stop_count"`
	DurationMinutes int            `json:"duration_minutes"`
	TotalDistanceKm float64        `json:"total_distance_km"`
	TotalDistanceMi float64        `json:"total_distance_mi"`
}

// ShareRouteResponse - ссылка на сохранённый маршрут
type ShareRouteResponse struct {
	Token string `json:"token"`
	URL   string `json:"url"`
}

// VoteResponse - результат голосования. Повторный голос за день -
// ожидаемый исход: Voted=false, без ошибки.
type VoteResponse struct {
	Voted             bool `json:"voted"`
	AlreadyVotedToday bool `json:"already_voted_today"`
}

// FlagResponse - результат жалобы. Повторная жалоба того же
// пользователя на тот же объект: Flagged=false, без ошибки.
type FlagResponse struct {
	Flagged        bool `json:"flagged"`
	AlreadyFlagged bool `json:"already_flagged"`
}

// LeaderboardResponse - рейтинг домов по голосам
type LeaderboardResponse struct {
	Scope   string                    `json:"scope"`
	Zip     string                    `json:"zip,omitempty"`
	Entries []domain.LeaderboardEntry `json:"entries"`
}
