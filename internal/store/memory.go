package store

import (
	"context"
	"slices"
	"strings"
	"sync"

	"RUMBLER_BACK-END/internal/models"
)

// MemoryStore keeps everything in process memory. It is safe for concurrent
// use and loses its contents on restart.
type MemoryStore struct {
	mu        sync.RWMutex
	profiles  map[string]models.Profile
	likes     map[string]map[string]struct{}
	decisions map[string]map[string]models.MatchDecision
	matches   map[string][]models.Match
	fighters  []models.Fighter
}

// NewMemoryStore creates an empty store serving the given fighters as its deck
func NewMemoryStore(fighters []models.Fighter) *MemoryStore {
	return &MemoryStore{
		profiles:  map[string]models.Profile{},
		likes:     map[string]map[string]struct{}{},
		decisions: map[string]map[string]models.MatchDecision{},
		matches:   map[string][]models.Match{},
		fighters:  slices.Clone(fighters),
	}
}

// Stores exposes the memory backend through the store interfaces
func (s *MemoryStore) Stores() Stores {
	return Stores{Profiles: s, Swipes: s, Candidates: s, Pinger: s}
}

// Ping always succeeds
func (s *MemoryStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

// ---------- profiles ----------

func (s *MemoryStore) Get(ctx context.Context, userID string) (models.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.profiles[userID]
	if !ok {
		return models.Profile{}, ErrNotFound
	}
	return cloneProfile(p), nil
}

func (s *MemoryStore) Put(ctx context.Context, userID string, p models.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[userID] = cloneProfile(p)
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.profiles, userID)
	return nil
}

// ---------- swipes ----------

func (s *MemoryStore) AddLike(ctx context.Context, userID, fighterID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	set, ok := s.likes[userID]
	if !ok {
		set = map[string]struct{}{}
		s.likes[userID] = set
	}
	set[fighterID] = struct{}{}
	return nil
}

func (s *MemoryStore) RemoveLike(ctx context.Context, userID, fighterID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if set, ok := s.likes[userID]; ok {
		delete(set, fighterID)
	}
	return nil
}

// Likes returns liked fighter IDs sorted for stable output
func (s *MemoryStore) Likes(ctx context.Context, userID string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.likes[userID]))
	for id := range s.likes[userID] {
		out = append(out, id)
	}
	slices.Sort(out)
	return out, nil
}

func (s *MemoryStore) DecideOnce(ctx context.Context, userID, fighterID string, d models.MatchDecision) (models.MatchDecision, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	byFighter, ok := s.decisions[userID]
	if !ok {
		byFighter = map[string]models.MatchDecision{}
		s.decisions[userID] = byFighter
	}
	if existing, ok := byFighter[fighterID]; ok {
		return existing, nil
	}
	byFighter[fighterID] = d
	return d, nil
}

func (s *MemoryStore) AddMatch(ctx context.Context, userID string, m models.Match) (models.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.matches[userID] {
		if existing.FighterID == m.FighterID {
			return existing, nil
		}
	}
	s.matches[userID] = append(s.matches[userID], m)
	return m, nil
}

func (s *MemoryStore) Matches(ctx context.Context, userID string) ([]models.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.matches[userID]), nil
}

// ---------- candidates ----------

func (s *MemoryStore) Query(ctx context.Context, q models.DeckQuery) ([]models.Fighter, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Fighter{}
	for _, f := range s.fighters {
		if MatchesQuery(f, q) {
			out = append(out, f)
		}
	}
	return out, nil
}

// MatchesQuery reports whether a fighter passes every set filter
func MatchesQuery(f models.Fighter, q models.DeckQuery) bool {
	if q.Distance > 0 && f.DistanceKm > q.Distance {
		return false
	}
	if q.Discipline != nil {
		found := false
		for _, d := range f.Disciplines {
			if strings.EqualFold(d, *q.Discipline) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if q.Experience != nil && f.Experience != *q.Experience {
		return false
	}
	if q.Gender != nil && f.Gender != *q.Gender {
		return false
	}
	return true
}

func cloneProfile(p models.Profile) models.Profile {
	p.Disciplines = slices.Clone(p.Disciplines)
	p.Availability = slices.Clone(p.Availability)
	return p
}
