package dto

// HouseListRequest - параметры фильтрации домов для карты.
// Границы области задаются либо все четыре, либо никакие.
type HouseListRequest struct {
	NELat     *float64 `query:"ne_lat" validate:"omitempty,min=-90,max=90"`
	NELng     *float64 `query:"ne_lng" validate:"omitempty,min=-180,max=180"`
	SWLat     *float64 `query:"sw_lat" validate:"omitempty,min=-90,max=90"`
	SWLng     *float64 `query:"sw_lng" validate:"omitempty,min=-180,max=180"`
	MinRating float64  `query:"min_rating" validate:"omitempty,min=0,max=5"`
	Features  []string `query:"features" validate:"omitempty,dive,oneof=Lights Music Strobes Animatronics Blowups"`
}

// GenerateRouteRequest - запрос на построение маршрута
type GenerateRouteRequest struct {
	DurationMinutes   int      `json:"duration_minutes" validate:"required,min=1,max=1440"`
	MinRating         float64  `json:"min_rating" validate:"omitempty,min=0,max=5"`
	FeaturePreference []string `json:"feature_preference,omitempty" validate:"omitempty,dive,oneof=Lights Music Strobes Animatronics Blowups"`
}

// ShareRouteRequest - запрос на сохранение маршрута для ссылки
type ShareRouteRequest struct {
	HouseIDs        []int64 `json:"house_ids" validate:"required,min=1,max=10"`
	DurationMinutes int     `json:"duration_minutes" validate:"required,min=1,max=1440"`
}

// CreateReviewRequest - запрос на создание отзыва
type CreateReviewRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
	Body   string `json:"body" validate:"required,min=3,max=2000"`
}

// VoteRequest - запрос на голос за дом
type VoteRequest struct {
	HouseID int64  `json:"house_id" validate:"required"`
	UserID  string `json:"user_id" validate:"required,uuid"`
}

// FlagRequest - жалоба на дом или отзыв
type FlagRequest struct {
	TargetType string `json:"target_type" validate:"required,oneof=house review"`
	TargetID   int64  `json:"target_id" validate:"required"`
	UserID     string `json:"user_id" validate:"required,uuid"`
	Reason     string `json:"reason" validate:"required,oneof=inappropriate spam not_a_display wrong_location other"`
}

// LeaderboardRequest - запрос рейтинга по голосам
type LeaderboardRequest struct {
	Scope string `query:"scope" validate:"required,oneof=local national"`
	Zip   string `query:"zip" validate:"omitempty,zip"`
}
