package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/gifsync/internal/domain"
)

func candidate(name, url string) domain.CandidateRecord {
	return domain.CandidateRecord{Name: name, URL: url, Provider: "test"}
}

func TestMatcher_PrefersMoreWordsFirstSeen(t *testing.T) {
	m := NewMatcher()
	entry := domain.CatalogEntry{ID: "chest_001", Terms: []string{"push up", "pushup"}}
	candidates := []domain.CandidateRecord{
		candidate("push up variation", "A"),
		candidate("standard pushup", "B"),
	}

	result, ok := m.Resolve(entry, candidates)

	require.True(t, ok)
	assert.Equal(t, "A", result.Candidate.URL)
	assert.Equal(t, 2, result.Score)
}

func TestMatcher_Deterministic(t *testing.T) {
	m := NewMatcher()
	entry := domain.CatalogEntry{ID: "legs_001", Terms: []string{"squat"}}
	candidates := []domain.CandidateRecord{
		candidate("sumo squat", "first"),
		candidate("air squat", "second"),
	}

	for i := 0; i < 5; i++ {
		result, ok := m.Resolve(entry, candidates)
		require.True(t, ok)
		assert.Equal(t, "first", result.Candidate.URL)
	}
}

func TestMatcher_HigherScoreFromLaterTermWins(t *testing.T) {
	m := NewMatcher()
	entry := domain.CatalogEntry{ID: "abs_005", Terms: []string{"bicycle", "bicycle crunch"}}
	candidates := []domain.CandidateRecord{
		candidate("stationary bicycle", "bike"),
		candidate("bicycle crunch", "crunch"),
	}

	result, ok := m.Resolve(entry, candidates)

	require.True(t, ok)
	assert.Equal(t, "crunch", result.Candidate.URL)
	assert.Equal(t, 2, result.Score)
}

func TestMatcher_ContainmentGate(t *testing.T) {
	m := NewMatcher()
	// every word appears but not the whole phrase
	entry := domain.CatalogEntry{ID: "legs_007", Terms: []string{"glute bridge"}}
	candidates := []domain.CandidateRecord{candidate("bridge for the glute", "x")}

	_, ok := m.Resolve(entry, candidates)

	assert.False(t, ok)
}

func TestMatcher_NormalizesCaseAndTitle(t *testing.T) {
	m := NewMatcher()
	entry := domain.CatalogEntry{ID: "crd_001", Terms: []string{"Jumping Jack"}}
	candidates := []domain.CandidateRecord{
		{Name: "cardio 12", Title: "JUMPING  JACK full", URL: "jj"},
	}

	result, ok := m.Resolve(entry, candidates)

	require.True(t, ok)
	assert.Equal(t, "jj", result.Candidate.URL)
}

func TestMatcher_NoMatch(t *testing.T) {
	m := NewMatcher()
	entry := domain.CatalogEntry{ID: "yoga_006", Terms: []string{"tree pose"}}

	_, ok := m.Resolve(entry, []domain.CandidateRecord{candidate("plank", "p")})
	assert.False(t, ok)

	_, ok = m.Resolve(entry, nil)
	assert.False(t, ok)
}

func TestMatcher_PinnedCandidate(t *testing.T) {
	m := NewMatcher()
	entry := domain.CatalogEntry{ID: "chest_005", Terms: []string{"dip"}}
	candidates := []domain.CandidateRecord{
		{Name: "chest 001", URL: "other", CatalogID: "chest_001"},
		{Name: "chest 005", URL: "pinned", CatalogID: "chest_005"},
	}

	result, ok := m.Resolve(entry, candidates)
	require.True(t, ok)
	assert.Equal(t, "pinned", result.Candidate.URL)

	// pinned candidates never match other entries by name
	_, ok = m.Resolve(domain.CatalogEntry{ID: "abs_001", Terms: []string{"chest"}}, candidates)
	assert.False(t, ok)
}
