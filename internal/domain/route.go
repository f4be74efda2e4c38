package domain

// RouteCriteria - критерии подбора маршрута. FeaturePreference
// трактуется как any-of, в отличие от HouseFilter.Features.
type RouteCriteria struct {
	DurationMinutes   int       `json:"duration_minutes"`
	MinRating         float64   `json:"min_rating"`
	FeaturePreference []Feature `json:"feature_preference,omitempty"`
}

// Route - построенный маршрут: упорядоченный список домов без повторов
// и суммарная длина по сегментам в километрах
type Route struct {
	Stops           []House       `json:"stops"`
	TotalDistanceKm float64       `json:"total_distance_km"`
	Criteria        RouteCriteria `json:"criteria"`
}
