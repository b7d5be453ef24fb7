package app

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/yourusername/gifsync/internal/domain"
)

// Matcher picks the candidate that best fits a catalog entry's search terms.
//
// A candidate is only considered for a term when its normalized display text
// contains the whole term; among those, the score is the number of the term's
// words found in the text. The first candidate reaching the best score wins.
type Matcher struct{}

// NewMatcher creates a new matcher
func NewMatcher() *Matcher {
	return &Matcher{}
}

// Resolve returns the best candidate for entry, or false when nothing scores above zero
func (m *Matcher) Resolve(entry domain.CatalogEntry, candidates []domain.CandidateRecord) (domain.MatchResult, bool) {
	for _, c := range candidates {
		if c.CatalogID != "" && c.CatalogID == entry.ID {
			return domain.MatchResult{Candidate: c, Score: 1}, true
		}
	}

	caser := cases.Lower(language.Und)
	normalize := func(s string) string {
		return strings.Join(strings.Fields(caser.String(s)), " ")
	}

	texts := make([]string, len(candidates))
	for i, c := range candidates {
		texts[i] = normalize(c.Text())
	}

	best := -1
	bestScore := 0
	for _, raw := range entry.Terms {
		term := normalize(raw)
		if term == "" {
			continue
		}
		words := strings.Fields(term)

		for i, text := range texts {
			if candidates[i].CatalogID != "" {
				continue
			}
			score := scoreTerm(term, words, text)
			if score > bestScore {
				bestScore = score
				best = i
			}
		}
	}

	if best < 0 {
		return domain.MatchResult{}, false
	}
	return domain.MatchResult{Candidate: candidates[best], Score: bestScore}, true
}

func scoreTerm(term string, words []string, text string) int {
	if !strings.Contains(text, term) {
		return 0
	}
	score := 0
	for _, w := range words {
		if strings.Contains(text, w) {
			score++
		}
	}
	return score
}
