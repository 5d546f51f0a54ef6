package dto

import "time"

// MatchInfo is the match created (or already held) by a like
type MatchInfo struct {
	FighterID string    `json:"fighterId" example:"ftr_001"`
	CreatedAt time.Time `json:"createdAt"`
}

// LikeResponse is returned by POST /deck/{fighterId}/like.
// Match is null when the fighter did not like back.
type LikeResponse struct {
	Liked bool       `json:"liked"`
	Match *MatchInfo `json:"match"`
}

// PassResponse is returned by POST /deck/{fighterId}/pass
type PassResponse struct {
	Passed bool `json:"passed"`
}

// MatchItem is one entry of the matches list
type MatchItem struct {
	FighterID   string    `json:"fighterId" example:"ftr_003"`
	LastMessage string    `json:"lastMessage"`
	MatchedAt   time.Time `json:"matchedAt"`
}

// MatchesResponse wraps the subject's matches
type MatchesResponse struct {
	Results []MatchItem `json:"results"`
}
