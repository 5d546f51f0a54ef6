package models

import "time"

// Match is a recorded mutual like between a subject and a fighter
type Match struct {
	FighterID string    `json:"fighterId"`
	CreatedAt time.Time `json:"createdAt"`
}

// MatchDecision is the outcome of the "did they like back" draw for one
// (subject, fighter) pair
type MatchDecision struct {
	Matched   bool      `json:"matched"`
	DecidedAt time.Time `json:"decidedAt"`
}
