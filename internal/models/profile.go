package models

import "time"

// Gender values accepted on a profile
const (
	GenderMale           = "male"
	GenderFemale         = "female"
	GenderNonbinary      = "nonbinary"
	GenderPreferNotToSay = "prefer_not_to_say"
)

// Experience levels accepted on a profile
const (
	ExperienceAmateur = "amateur"
	ExperiencePro     = "pro"
)

// Profile is a fighter's stored profile. It is only ever written whole,
// after validation, so every stored value has ProfileCompleted set.
type Profile struct {
	PhotoURL        *string  `json:"photoUrl,omitempty"`
	Gender          string   `json:"gender"`
	DOB             string   `json:"dob"`
	Disciplines     []string `json:"disciplines"`
	Stance          *string  `json:"stance,omitempty"`
	HeightCm        *int     `json:"heightCm,omitempty"`
	ReachCm         *int     `json:"reachCm,omitempty"`
	WeightClass     string   `json:"weightClass"`
	ExperienceLevel string   `json:"experienceLevel"`
	AmateurWins     int      `json:"amateurWins"`
	AmateurLosses   int      `json:"amateurLosses"`
	AmateurDraws    int      `json:"amateurDraws"`
	ProWins         int      `json:"proWins"`
	ProLosses       int      `json:"proLosses"`
	ProDraws        int      `json:"proDraws"`
	GymAffiliation  *string  `json:"gymAffiliation,omitempty"`
	Bio             *string  `json:"bio,omitempty"`
	Availability    []string `json:"availability"`

	ProfileCompleted bool      `json:"profileCompleted"`
	KYCVerified      bool      `json:"kycVerified"`
	UpdatedAt        time.Time `json:"updatedAt"`
}
