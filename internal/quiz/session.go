package quiz

// Session is the mutable per-conversation state owned by the Engine. The
// zero value is a fresh session: no difficulty chosen, no round played.
//
// Score is paired with ScoreSet because "never played" and "score 0" are
// different states: the one-time rules message rides on the transition.
type Session struct {
	Level      Level   `json:"level,omitempty"`
	LevelSet   bool    `json:"levelSet,omitempty"`
	Score      int     `json:"score,omitempty"`
	ScoreSet   bool    `json:"scoreSet,omitempty"`
	Country    Country `json:"country"`
	HasCountry bool    `json:"hasCountry,omitempty"`
}

// Reset clears the session back to its fresh state. Called after a wrong
// answer; the next game starts from difficulty selection with a zero score.
func (s *Session) Reset() {
	*s = Session{}
}

// Empty reports whether the session holds no state worth persisting.
func (s *Session) Empty() bool {
	return !s.LevelSet && !s.ScoreSet && !s.HasCountry
}
