// Package store holds the swappable state behind the API: profiles, swipes
// and deck candidates. Every operation is scoped by the acting subject.
package store

import (
	"context"
	"errors"

	"RUMBLER_BACK-END/internal/models"
)

// ErrNotFound is returned by lookups that have nothing stored
var ErrNotFound = errors.New("not found")

// ProfileStore keeps one profile per subject
type ProfileStore interface {
	Get(ctx context.Context, userID string) (models.Profile, error)
	Put(ctx context.Context, userID string, p models.Profile) error
	Delete(ctx context.Context, userID string) error
}

// SwipeStore keeps like-sets, match decisions and match-sets per subject
type SwipeStore interface {
	AddLike(ctx context.Context, userID, fighterID string) error
	// RemoveLike is a no-op when the fighter is not liked
	RemoveLike(ctx context.Context, userID, fighterID string) error
	Likes(ctx context.Context, userID string) ([]string, error)

	// DecideOnce stores d unless a decision already exists for the pair and
	// returns whichever decision is stored afterwards.
	DecideOnce(ctx context.Context, userID, fighterID string, d models.MatchDecision) (models.MatchDecision, error)

	// AddMatch records a match. An existing match for the same fighter is kept
	// as is, and the stored match is returned.
	AddMatch(ctx context.Context, userID string, m models.Match) (models.Match, error)
	// Matches returns matches in creation order
	Matches(ctx context.Context, userID string) ([]models.Match, error)
}

// CandidateRepository serves deck candidates
type CandidateRepository interface {
	Query(ctx context.Context, q models.DeckQuery) ([]models.Fighter, error)
}

// Pinger is implemented by backends that can report readiness
type Pinger interface {
	Ping(ctx context.Context) error
}

// Stores bundles one backend's implementations
type Stores struct {
	Profiles   ProfileStore
	Swipes     SwipeStore
	Candidates CandidateRepository
	Pinger     Pinger
}
