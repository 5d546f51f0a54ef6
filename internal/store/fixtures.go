package store

import "RUMBLER_BACK-END/internal/models"

func strPtr(s string) *string { return &s }

// SampleFighters returns the seeded deck. A fresh slice is built on every call.
func SampleFighters() []models.Fighter {
	return []models.Fighter{
		{
			FighterID:   "ftr_001",
			Name:        "Kai Nakamura",
			Age:         27,
			Gender:      "male",
			Disciplines: []string{"Muay Thai", "Boxing"},
			WeightClass: "Lightweight",
			Experience:  "advanced",
			Record:      models.FighterRecord{Amateur: "12-3-0", Professional: strPtr("4-1-0")},
			DistanceKm:  5,
			AvatarURL:   strPtr("https://cdn.rumbler.example/fighters/kai.png"),
		},
		{
			FighterID:   "ftr_002",
			Name:        "Lola Reyes",
			Age:         25,
			Gender:      "female",
			Disciplines: []string{"BJJ", "Wrestling"},
			WeightClass: "Featherweight",
			Experience:  "advanced",
			Record:      models.FighterRecord{Amateur: "20-5-0"},
			DistanceKm:  11,
			AvatarURL:   strPtr("https://cdn.rumbler.example/fighters/lola.png"),
		},
		{
			FighterID:   "ftr_003",
			Name:        "Marcus Silva",
			Age:         31,
			Gender:      "male",
			Disciplines: []string{"MMA"},
			WeightClass: "Welterweight",
			Experience:  "pro",
			Record:      models.FighterRecord{Amateur: "15-3-1", Professional: strPtr("10-2-0")},
			DistanceKm:  2,
			AvatarURL:   strPtr("https://cdn.rumbler.example/fighters/marcus.png"),
		},
	}
}
