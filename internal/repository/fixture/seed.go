package fixture

import (
	"time"

	"github.com/twinkle-backend/internal/domain"
)

func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }

// seedHouse собирает дом с данными витрины
func seedHouse(
	id int64,
	address, zip string,
	lat, lng float64,
	features []domain.Feature,
	avgRating float64,
	ratingCount, votes int,
	description string,
	seasonYear int,
) domain.House {
	created := time.Date(seasonYear, time.December, 1, 0, 0, 0, 0, time.UTC)
	return domain.House{
		ID:          id,
		Address:     address,
		Lat:         lat,
		Lng:         lng,
		ZipCode:     strPtr(zip),
		Description: strPtr(description),
		Features:    features,
		AvgRating:   f64Ptr(avgRating),
		RatingCount: ratingCount,
		Votes:       votes,
		IsActive:    true,
		SeasonYear:  seasonYear,
		CreatedAt:   created,
		UpdatedAt:   created,
	}
}

// seedHouses - витрина из 18 домов Далласа
func seedHouses(seasonYear int) []domain.House {
	y := seasonYear
	return []domain.House{
		seedHouse(1, "1234 Candy Cane Ln, Dallas, TX", "75201", 32.7850, -96.7920,
			[]domain.Feature{domain.FeatureLights, domain.FeatureMusic, domain.FeatureAnimatronics},
			4.8, 42, 120, "Stunning synchronized light show with over 50,000 LEDs", y),
		seedHouse(2, "567 Snowflake Dr, Highland Park, TX", "75205", 32.8320, -96.7910,
			[]domain.Feature{domain.FeatureLights, domain.FeatureBlowups},
			4.5, 28, 95, "Giant inflatable wonderland with a 20ft Santa", y),
		seedHouse(3, "890 Reindeer Way, University Park, TX", "75205", 32.8260, -96.8050,
			[]domain.Feature{domain.FeatureLights, domain.FeatureMusic, domain.FeatureStrobes},
			4.9, 67, 210, "The legendary display — voted #1 in DFW three years running", y),
		seedHouse(4, "321 Tinsel Blvd, Lakewood, TX", "75214", 32.7920, -96.7500,
			[]domain.Feature{domain.FeatureLights},
			3.5, 12, 30, "Classic white lights and elegant wreaths", y),
		seedHouse(5, "444 Mistletoe Ave, Oak Lawn, TX", "75219", 32.8080, -96.8100,
			[]domain.Feature{domain.FeatureLights, domain.FeatureMusic},
			4.2, 19, 74, "Tasteful display with carols playing from 6-10pm", y),
		seedHouse(6, "777 North Pole Ct, Preston Hollow, TX", "75230", 32.8650, -96.8020,
			[]domain.Feature{domain.FeatureLights, domain.FeatureMusic, domain.FeatureAnimatronics, domain.FeatureBlowups},
			5.0, 89, 340, "Absolutely jaw-dropping — full animated village with fog machines", y),
		seedHouse(7, "159 Evergreen Terrace, Uptown, TX", "75201", 32.8000, -96.8000,
			[]domain.Feature{domain.FeatureLights, domain.FeatureStrobes},
			3.2, 8, 18, "Colorful strobing display — not for the faint of heart", y),
		seedHouse(8, "246 Holly St, East Dallas, TX", "75206", 32.7880, -96.7600,
			[]domain.Feature{domain.FeatureLights, domain.FeatureBlowups},
			3.8, 15, 33, "Fun collection of holiday inflatables", y),
		seedHouse(9, "802 Jingle Bell Rd, Lake Highlands, TX", "75238", 32.8800, -96.7500,
			[]domain.Feature{domain.FeatureLights, domain.FeatureMusic, domain.FeatureAnimatronics},
			4.6, 34, 150, "Moving reindeer and a real sleigh photo op", y),
		seedHouse(10, "963 Frost Ave, Oak Cliff, TX", "75203", 32.7400, -96.8200,
			[]domain.Feature{domain.FeatureLights},
			2.8, 5, 9, "Simple but charming roofline lights", y),
		seedHouse(11, "511 Nutcracker Ln, Greenville Ave, TX", "75206", 32.8150, -96.7700,
			[]domain.Feature{domain.FeatureLights, domain.FeatureMusic, domain.FeatureBlowups},
			4.3, 22, 88, "Nutcracker theme with march music", y),
		seedHouse(12, "128 Starlight Pl, Kessler Park, TX", "75208", 32.7550, -96.8400,
			[]domain.Feature{domain.FeatureLights, domain.FeatureAnimatronics},
			4.0, 17, 41, "Animated nativity scene with star projector", y),
		seedHouse(13, "675 Gingerbread Way, M Streets, TX", "75206", 32.8050, -96.7600,
			[]domain.Feature{domain.FeatureLights, domain.FeatureMusic, domain.FeatureStrobes, domain.FeatureBlowups},
			4.7, 51, 190, "Over-the-top display — every inch covered in lights", y),
		seedHouse(14, "349 Sleigh Ride Dr, Northwood Hills, TX", "75240", 32.8900, -96.7800,
			[]domain.Feature{domain.FeatureLights, domain.FeatureMusic},
			3.9, 11, 25, "Lovely neighborhood display with hot cocoa stand", y),
		seedHouse(15, "888 Angel Wings Ct, Lakewood Hills, TX", "75214", 32.7980, -96.7400,
			[]domain.Feature{domain.FeatureLights, domain.FeatureAnimatronics, domain.FeatureBlowups},
			4.4, 27, 97, "Angel-themed with floating lit wings", y),
		seedHouse(16, "222 Rudolph Run, White Rock, TX", "75218", 32.8200, -96.7300,
			[]domain.Feature{domain.FeatureLights, domain.FeatureMusic, domain.FeatureStrobes},
			4.1, 16, 56, "Laser light show synced to Trans-Siberian Orchestra", y),
		seedHouse(17, "456 Frosty Meadow, Bishop Arts, TX", "75211", 32.7450, -96.8300,
			[]domain.Feature{domain.FeatureLights, domain.FeatureBlowups},
			3.6, 9, 14, "Quirky display with a giant Frosty", y),
		seedHouse(18, "741 Silver Bells Dr, Devonshire, TX", "75209", 32.8500, -96.7700,
			[]domain.Feature{domain.FeatureLights, domain.FeatureMusic, domain.FeatureAnimatronics},
			4.8, 38, 165, "Musical bells and animated elves workshop", y),
	}
}

// seedReviews добавляет несколько отзывов, включая один, уже
// достигший порога скрытия
func (s *Source) seedReviews() {
	created := time.Date(time.Now().Year(), time.December, 5, 0, 0, 0, 0, time.UTC)
	seeded := []domain.Review{
		{
			HouseID:   3,
			UserID:    "7f1c9bba-43ce-4d21-a56a-5db11e4f6a1c",
			Body:      "Worth the drive across town, the strobe finale is unreal.",
			CreatedAt: created,
		},
		{
			HouseID:   3,
			UserID:    "0e2f4f4c-8a7e-4c83-9f51-2fb22a9dd901",
			Body:      "BUY CHEAP LIGHTS AT MY STORE!!! LINK IN BIO",
			FlagCount: 15,
			CreatedAt: created.Add(time.Hour),
		},
		{
			HouseID:   6,
			UserID:    "b3e8a2d4-11fa-4d0e-8de9-64cf3e6a7b55",
			Body:      "The fog machines make the whole street feel like a movie set.",
			CreatedAt: created.Add(2 * time.Hour),
		},
	}

	for i := range seeded {
		s.nextReview++
		seeded[i].ID = s.nextReview
		r := seeded[i]
		s.reviews[r.ID] = &r
	}
}
