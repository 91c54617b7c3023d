package quiz

import (
	"errors"
	"math/rand/v2"
)

// ErrNoCandidate is returned when no country in the dataset falls inside the
// requested level's population range.
var ErrNoCandidate = errors.New("no country matches difficulty level")

// Selector picks random countries constrained by a difficulty level.
// Candidates are bucketed once at construction, so a pick is a single uniform
// draw and an empty bucket fails fast instead of resampling indefinitely.
type Selector struct {
	buckets map[Level][]Country
}

// NewSelector buckets countries per level. The input slice is not retained.
func NewSelector(countries []Country) *Selector {
	s := &Selector{buckets: make(map[Level][]Country, 3)}
	for _, level := range Levels() {
		for _, c := range countries {
			if InRange(c.Population, level) {
				s.buckets[level] = append(s.buckets[level], c)
			}
		}
	}
	return s
}

// Pick returns a uniformly random country whose population falls inside the
// level's range.
func (s *Selector) Pick(level Level) (Country, error) {
	candidates := s.buckets[level]
	if len(candidates) == 0 {
		return Country{}, ErrNoCandidate
	}
	return candidates[rand.IntN(len(candidates))], nil
}

// CandidateCount reports how many countries are eligible at the given level.
func (s *Selector) CandidateCount(level Level) int {
	return len(s.buckets[level])
}
