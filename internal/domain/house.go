package domain

import "time"

// Feature - атрибут новогодней инсталляции дома
type Feature string

const (
	FeatureLights       Feature = "Lights"
	FeatureMusic        Feature = "Music"
	FeatureStrobes      Feature = "Strobes"
	FeatureAnimatronics Feature = "Animatronics"
	FeatureBlowups      Feature = "Blowups"
)

// AllFeatures - полный список известных атрибутов
var AllFeatures = []Feature{
	FeatureLights,
	FeatureMusic,
	FeatureStrobes,
	FeatureAnimatronics,
	FeatureBlowups,
}

// House представляет дом с праздничной подсветкой
type House struct {
	ID           int64     `json:"id" db:"id"`
	Address      string    `json:"address" db:"address"`
	Lat          float64   `json:"lat" db:"lat"`
	Lng          float64   `json:"lng" db:"lng"`
	ZipCode      *string   `json:"zip_code,omitempty" db:"zip_code"`
	Description  *string   `json:"description,omitempty" db:"description"`
	Features     []Feature `json:"features" db:"features"`
	AvgRating    *float64  `json:"avg_rating,omitempty" db:"avg_rating"`
	RatingCount  int       `json:"rating_count" db:"rating_count"`
	Votes        int       `json:"votes" db:"votes"`
	LocalRank    *int      `json:"local_rank,omitempty" db:"local_rank"`
	NationalRank *int      `json:"national_rank,omitempty" db:"national_rank"`
	IsFeatured   bool      `json:"is_featured" db:"is_featured"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	SeasonYear   int       `json:"season_year" db:"season_year"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// Rating возвращает агрегированный рейтинг (0 если оценок нет)
func (h *House) Rating() float64 {
	if h.AvgRating == nil {
		return 0
	}
	return *h.AvgRating
}

// HasFeature проверяет наличие атрибута
func (h *House) HasFeature(f Feature) bool {
	for _, hf := range h.Features {
		if hf == f {
			return true
		}
	}
	return false
}

// HasAllFeatures - дом содержит каждый из перечисленных атрибутов.
// Семантика фильтра карты: конъюнкция.
func (h *House) HasAllFeatures(features []Feature) bool {
	for _, f := range features {
		if !h.HasFeature(f) {
			return false
		}
	}
	return true
}

// HasAnyFeature - дом содержит хотя бы один из перечисленных атрибутов.
// Семантика подбора маршрута: дизъюнкция, нарочно мягче фильтра карты.
func (h *House) HasAnyFeature(features []Feature) bool {
	for _, f := range features {
		if h.HasFeature(f) {
			return true
		}
	}
	return false
}

// BoundingBox - прямоугольная область карты (все границы включительно)
type BoundingBox struct {
	North float64 `json:"north"`
	South float64 `json:"south"`
	East  float64 `json:"east"`
	West  float64 `json:"west"`
}

// Contains проверяет попадание точки в область (границы включительно)
func (b BoundingBox) Contains(lat, lng float64) bool {
	return lat >= b.South && lat <= b.North &&
		lng >= b.West && lng <= b.East
}

// HouseFilter - критерии фильтрации домов. Все заданные условия
// применяются конъюнктивно; незаданное условие всегда истинно.
type HouseFilter struct {
	Bounds    *BoundingBox
	MinRating float64
	Features  []Feature // all-of
}

// Matches проверяет дом по всем заданным условиям фильтра
func (f HouseFilter) Matches(h *House) bool {
	if f.Bounds != nil && !f.Bounds.Contains(h.Lat, h.Lng) {
		return false
	}
	if f.MinRating > 0 && h.Rating() < f.MinRating {
		return false
	}
	if len(f.Features) > 0 && !h.HasAllFeatures(f.Features) {
		return false
	}
	return true
}

// FilterHouses возвращает подмножество домов, удовлетворяющих фильтру.
// Порядок входной коллекции сохраняется; пустой результат - не ошибка.
func FilterHouses(houses []House, f HouseFilter) []House {
	result := make([]House, 0, len(houses))
	for i := range houses {
		if f.Matches(&houses[i]) {
			result = append(result, houses[i])
		}
	}
	return result
}

// LeaderboardEntry - позиция дома в рейтинге по голосам
type LeaderboardEntry struct {
	Rank  int   `json:"rank"`
	House House `json:"house"`
}
