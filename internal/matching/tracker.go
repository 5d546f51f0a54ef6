// Package matching tracks like/pass swipes and decides mutual matches.
//
// There is no real "other side" yet: whether a liked fighter likes back is a
// weighted coin flip. By default the flip happens once per (subject, fighter)
// and the outcome is remembered; Options.Reroll flips again on every like.
package matching

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"RUMBLER_BACK-END/internal/events"
	"RUMBLER_BACK-END/internal/models"
	"RUMBLER_BACK-END/internal/store"
)

// ErrCandidateRequired is returned when a swipe has no fighter ID
var ErrCandidateRequired = errors.New("fighterId required")

// DefaultProbability is the chance a liked fighter likes back
const DefaultProbability = 0.4

// PlaceholderMessage is shown as the last message of every match until chat exists
const PlaceholderMessage = "You both liked each other! Say hi and set up a session."

// Options tune a Tracker. Nil Rand, Now and Events fall back to the
// global source, the wall clock and a discarding sink.
type Options struct {
	Probability float64
	Reroll      bool
	// Rand returns a float in [0,1)
	Rand   func() float64
	Now    func() time.Time
	Events events.Publisher
}

// MatchSummary is a match as listed to the client
type MatchSummary struct {
	FighterID   string
	LastMessage string
	MatchedAt   time.Time
}

// Tracker applies swipes for a subject
type Tracker struct {
	swipes      store.SwipeStore
	probability float64
	reroll      bool
	rand        func() float64
	now         func() time.Time
	events      events.Publisher
}

// NewTracker creates a tracker over the given swipe store
func NewTracker(swipes store.SwipeStore, opts Options) *Tracker {
	t := &Tracker{
		swipes:      swipes,
		probability: opts.Probability,
		reroll:      opts.Reroll,
		rand:        opts.Rand,
		now:         opts.Now,
		events:      opts.Events,
	}
	if t.rand == nil {
		t.rand = rand.Float64
	}
	if t.now == nil {
		t.now = time.Now
	}
	if t.events == nil {
		t.events = events.NewNopPublisher()
	}
	return t
}

// Like adds fighterID to the subject's likes and returns the match if the
// fighter likes back, or nil otherwise.
func (t *Tracker) Like(ctx context.Context, userID, fighterID string) (*models.Match, error) {
	if strings.TrimSpace(fighterID) == "" {
		return nil, ErrCandidateRequired
	}
	if err := t.swipes.AddLike(ctx, userID, fighterID); err != nil {
		return nil, fmt.Errorf("add like: %w", err)
	}
	events.Emit(ctx, t.events, events.New(events.NameDeckSwiped, userID, map[string]any{
		"fighterId": fighterID,
		"direction": events.DirectionLike,
	}))

	now := t.timestamp()
	matched, err := t.decide(ctx, userID, fighterID, now)
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, nil
	}

	stored, err := t.swipes.AddMatch(ctx, userID, models.Match{FighterID: fighterID, CreatedAt: now})
	if err != nil {
		return nil, fmt.Errorf("add match: %w", err)
	}
	if stored.CreatedAt.Equal(now) {
		events.Emit(ctx, t.events, events.New(events.NameMatchCreated, userID, map[string]any{
			"fighterId": fighterID,
		}))
	}
	return &stored, nil
}

// Pass removes fighterID from the subject's likes. Matches are untouched.
func (t *Tracker) Pass(ctx context.Context, userID, fighterID string) error {
	if strings.TrimSpace(fighterID) == "" {
		return ErrCandidateRequired
	}
	if err := t.swipes.RemoveLike(ctx, userID, fighterID); err != nil {
		return fmt.Errorf("remove like: %w", err)
	}
	events.Emit(ctx, t.events, events.New(events.NameDeckSwiped, userID, map[string]any{
		"fighterId": fighterID,
		"direction": events.DirectionPass,
	}))
	return nil
}

// Matches lists the subject's matches in the order they were made
func (t *Tracker) Matches(ctx context.Context, userID string) ([]MatchSummary, error) {
	matches, err := t.swipes.Matches(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	out := make([]MatchSummary, 0, len(matches))
	for _, m := range matches {
		out = append(out, MatchSummary{
			FighterID:   m.FighterID,
			LastMessage: PlaceholderMessage,
			MatchedAt:   m.CreatedAt,
		})
	}
	return out, nil
}

// Likes returns the fighters the subject currently likes
func (t *Tracker) Likes(ctx context.Context, userID string) ([]string, error) {
	return t.swipes.Likes(ctx, userID)
}

func (t *Tracker) decide(ctx context.Context, userID, fighterID string, now time.Time) (bool, error) {
	draw := t.rand() < t.probability
	if t.reroll {
		return draw, nil
	}
	d, err := t.swipes.DecideOnce(ctx, userID, fighterID, models.MatchDecision{Matched: draw, DecidedAt: now})
	if err != nil {
		return false, fmt.Errorf("decide match: %w", err)
	}
	return d.Matched, nil
}

// timestamp is millisecond precision so it survives JSON and Postgres round trips
func (t *Tracker) timestamp() time.Time {
	return t.now().UTC().Truncate(time.Millisecond)
}
