package store

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"RUMBLER_BACK-END/internal/models"
)

func ptr(s string) *string { return &s }

func TestMemoryProfiles(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(nil)

	_, err := s.Get(ctx, "demo-user")
	assert.ErrorIs(t, err, ErrNotFound)

	p := models.Profile{Gender: "male", Disciplines: []string{"MMA"}, Availability: []string{}, ProfileCompleted: true}
	require.NoError(t, s.Put(ctx, "demo-user", p))

	got, err := s.Get(ctx, "demo-user")
	require.NoError(t, err)
	assert.Equal(t, p, got)

	// callers cannot mutate stored slices
	got.Disciplines[0] = "Boxing"
	again, err := s.Get(ctx, "demo-user")
	require.NoError(t, err)
	assert.Equal(t, "MMA", again.Disciplines[0])

	// other subjects are isolated
	_, err = s.Get(ctx, "someone-else")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Delete(ctx, "demo-user"))
	_, err = s.Get(ctx, "demo-user")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryLikes(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(nil)

	require.NoError(t, s.AddLike(ctx, "u1", "ftr_002"))
	require.NoError(t, s.AddLike(ctx, "u1", "ftr_001"))
	require.NoError(t, s.AddLike(ctx, "u1", "ftr_001"))

	likes, err := s.Likes(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"ftr_001", "ftr_002"}, likes)

	require.NoError(t, s.RemoveLike(ctx, "u1", "ftr_001"))
	require.NoError(t, s.RemoveLike(ctx, "u1", "ftr_001"))
	require.NoError(t, s.RemoveLike(ctx, "nobody", "ftr_001"))

	likes, err = s.Likes(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"ftr_002"}, likes)

	likes, err = s.Likes(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, likes)
}

func TestMemoryDecideOnce(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(nil)
	first := models.MatchDecision{Matched: true, DecidedAt: time.Unix(100, 0).UTC()}
	second := models.MatchDecision{Matched: false, DecidedAt: time.Unix(200, 0).UTC()}

	got, err := s.DecideOnce(ctx, "u1", "ftr_001", first)
	require.NoError(t, err)
	assert.Equal(t, first, got)

	got, err = s.DecideOnce(ctx, "u1", "ftr_001", second)
	require.NoError(t, err)
	assert.Equal(t, first, got)

	got, err = s.DecideOnce(ctx, "u2", "ftr_001", second)
	require.NoError(t, err)
	assert.Equal(t, second, got)
}

func TestMemoryMatchesKeepFirstCreation(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(nil)
	t1 := time.Unix(100, 0).UTC()
	t2 := time.Unix(200, 0).UTC()

	_, err := s.AddMatch(ctx, "u1", models.Match{FighterID: "ftr_003", CreatedAt: t1})
	require.NoError(t, err)
	_, err = s.AddMatch(ctx, "u1", models.Match{FighterID: "ftr_001", CreatedAt: t2})
	require.NoError(t, err)

	stored, err := s.AddMatch(ctx, "u1", models.Match{FighterID: "ftr_003", CreatedAt: t2})
	require.NoError(t, err)
	assert.Equal(t, t1, stored.CreatedAt)

	matches, err := s.Matches(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []models.Match{
		{FighterID: "ftr_003", CreatedAt: t1},
		{FighterID: "ftr_001", CreatedAt: t2},
	}, matches)
}

func TestMemoryConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(SampleFighters())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("ftr_%03d", i)
			_ = s.AddLike(ctx, "u1", id)
			_, _ = s.DecideOnce(ctx, "u1", "shared", models.MatchDecision{Matched: i%2 == 0})
			_, _ = s.AddMatch(ctx, "u1", models.Match{FighterID: id})
			_ = s.RemoveLike(ctx, "u1", id)
			_, _ = s.Query(ctx, models.DeckQuery{Distance: 25})
		}(i)
	}
	wg.Wait()

	matches, err := s.Matches(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, matches, 50)
	likes, err := s.Likes(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, likes)
}

func TestMemoryQueryFilters(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(SampleFighters())

	ids := func(fs []models.Fighter) []string {
		out := []string{}
		for _, f := range fs {
			out = append(out, f.FighterID)
		}
		return out
	}

	tests := []struct {
		name  string
		query models.DeckQuery
		want  []string
	}{
		{"default distance returns the whole deck", models.DeckQuery{Distance: 25}, []string{"ftr_001", "ftr_002", "ftr_003"}},
		{"distance cuts far fighters", models.DeckQuery{Distance: 5}, []string{"ftr_001", "ftr_003"}},
		{"discipline is case-insensitive", models.DeckQuery{Distance: 25, Discipline: ptr("bjj")}, []string{"ftr_002"}},
		{"experience", models.DeckQuery{Distance: 25, Experience: ptr("pro")}, []string{"ftr_003"}},
		{"gender", models.DeckQuery{Distance: 25, Gender: ptr("male")}, []string{"ftr_001", "ftr_003"}},
		{"no fighter matches", models.DeckQuery{Distance: 25, Gender: ptr("non-binary")}, []string{}},
		{"combined", models.DeckQuery{Distance: 10, Gender: ptr("male"), Experience: ptr("advanced")}, []string{"ftr_001"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Query(ctx, tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestSampleFightersAreIndependentCopies(t *testing.T) {
	a := SampleFighters()
	a[0].Name = "changed"
	assert.Equal(t, "Kai Nakamura", SampleFighters()[0].Name)
	assert.Len(t, SampleFighters(), 3)
}
