package models

// FighterRecord holds win-loss-draw strings such as "12-3-0"
type FighterRecord struct {
	Amateur      string  `json:"amateur"`
	Professional *string `json:"professional,omitempty"`
}

// Fighter is a candidate shown in the deck
type Fighter struct {
	FighterID   string        `json:"fighterId"`
	Name        string        `json:"name"`
	Age         int           `json:"age"`
	Gender      string        `json:"gender"`
	Disciplines []string      `json:"disciplines"`
	WeightClass string        `json:"weightClass"`
	Experience  string        `json:"experience"`
	Record      FighterRecord `json:"record"`
	DistanceKm  float64       `json:"distanceKm"`
	AvatarURL   *string       `json:"avatarUrl,omitempty"`
}

// DeckQuery is a normalized set of deck filters. Nil filters match everything.
type DeckQuery struct {
	Distance   float64 `json:"distance"`
	Discipline *string `json:"discipline,omitempty"`
	Experience *string `json:"experience,omitempty"`
	Gender     *string `json:"gender,omitempty"`
}
