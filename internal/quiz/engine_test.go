package quiz

import (
	"fmt"
	"slices"
	"testing"
)

// fakeTexts returns recognizable markers so tests can assert which messages
// were emitted without depending on the locale package.
type fakeTexts struct{}

func (fakeTexts) Rules() string                   { return "[rules]" }
func (fakeTexts) Correct() string                 { return "[correct]" }
func (fakeTexts) Incorrect(capital string) string { return "[incorrect " + capital + "]" }
func (fakeTexts) Score(score int) string          { return fmt.Sprintf("[score %d]", score) }
func (fakeTexts) PlayAgain() string               { return "[play again]" }
func (fakeTexts) ChooseDifficulty() string        { return "[choose difficulty]" }
func (fakeTexts) DifficultyChosen(l Level) string { return "[level " + string(l) + "]" }
func (fakeTexts) NoCountries() string             { return "[no countries]" }
func (fakeTexts) LevelNames() []string            { return []string{"Easy", "Hard", "Insane"} }
func (fakeTexts) Yes() string                     { return "Yes" }
func (fakeTexts) No() string                      { return "No" }

var _ Texts = fakeTexts{}

func newTestEngine() *Engine {
	return NewEngine(NewSelector(testCountries), fakeTexts{})
}

func TestStartOrResumePromptsForDifficulty(t *testing.T) {
	e := newTestEngine()
	var s Session

	reply := e.StartOrResume(&s)

	if !slices.Contains(reply.Messages, "[choose difficulty]") {
		t.Errorf("expected difficulty prompt, got %v", reply.Messages)
	}
	if reply.Expect != ExpectDifficulty || reply.ExpectTurns != 2 {
		t.Errorf("expected ChooseDifficultyLevel context for 2 turns, got %q/%d", reply.Expect, reply.ExpectTurns)
	}
	if len(reply.Suggestions) != 3 {
		t.Errorf("expected 3 difficulty suggestions, got %v", reply.Suggestions)
	}
	if !s.Empty() {
		t.Errorf("prompting must not touch the session, got %+v", s)
	}
}

func TestStartOrResumeContinuesExistingGame(t *testing.T) {
	e := newTestEngine()
	s := Session{Level: LevelInsane, LevelSet: true}

	reply := e.StartOrResume(&s)

	if !slices.Contains(reply.Messages, "Iceland") {
		t.Errorf("expected a country prompt, got %v", reply.Messages)
	}
	if reply.Expect != ExpectAnswer {
		t.Errorf("expected Playing context, got %q", reply.Expect)
	}
}

func TestChooseDifficultyStartsRound(t *testing.T) {
	e := newTestEngine()
	var s Session

	reply := e.ChooseDifficulty(&s, LevelEasy)

	if s.Level != LevelEasy || !s.LevelSet {
		t.Fatalf("level not recorded: %+v", s)
	}
	if reply.Messages[0] != "[level easy]" {
		t.Errorf("expected level confirmation first, got %v", reply.Messages)
	}
	if !slices.Contains(reply.Messages, "Brazil") {
		t.Errorf("expected Brazil as the prompt, got %v", reply.Messages)
	}
}

func TestPlayRoundFirstRound(t *testing.T) {
	e := newTestEngine()
	s := Session{Level: LevelEasy, LevelSet: true}

	reply := e.PlayRound(&s)

	if s.Score != 0 || !s.ScoreSet {
		t.Errorf("first round: score = %d (set=%v), want 0 (set)", s.Score, s.ScoreSet)
	}
	if !s.HasCountry || s.Country.Name != "Brazil" {
		t.Errorf("first round: current country = %+v, want Brazil", s.Country)
	}
	if reply.Messages[0] != "[rules]" {
		t.Errorf("first round must open with the rules, got %v", reply.Messages)
	}
}

func TestPlayRoundIncrementsScoreWithoutRules(t *testing.T) {
	e := newTestEngine()
	s := Session{Level: LevelEasy, LevelSet: true}

	e.PlayRound(&s)
	for want := 1; want <= 3; want++ {
		reply := e.PlayRound(&s)
		if s.Score != want {
			t.Fatalf("round %d: score = %d", want+1, s.Score)
		}
		if slices.Contains(reply.Messages, "[rules]") {
			t.Fatal("rules message repeated after the first round")
		}
	}
}

func TestPlayRoundDefaultsToEasyWithoutLevel(t *testing.T) {
	e := newTestEngine()
	var s Session

	e.PlayRound(&s)

	if s.Country.Name != "Brazil" {
		t.Errorf("unset level should draw from easy, got %+v", s.Country)
	}
}

func TestPlayRoundNoCandidates(t *testing.T) {
	e := newTestEngine()
	s := Session{Level: LevelHard, LevelSet: true, Score: 3, ScoreSet: true}

	reply := e.PlayRound(&s)

	if !s.Empty() {
		t.Errorf("session should be cleared when no country fits, got %+v", s)
	}
	if reply.Messages[0] != "[no countries]" {
		t.Errorf("expected no-countries message, got %v", reply.Messages)
	}
	if reply.Expect != ExpectDifficulty {
		t.Errorf("expected difficulty re-prompt, got %q", reply.Expect)
	}
}

func TestSubmitAnswerCorrect(t *testing.T) {
	e := newTestEngine()
	s := Session{Level: LevelEasy, LevelSet: true}
	e.PlayRound(&s)

	reply := e.SubmitAnswer(&s, "brasilia")

	if reply.Messages[0] != "[correct]" {
		t.Errorf("expected praise first, got %v", reply.Messages)
	}
	if s.Score != 1 {
		t.Errorf("score after correct answer = %d, want 1", s.Score)
	}
	if s.Level != LevelEasy || !s.LevelSet {
		t.Errorf("difficulty must survive a correct answer, got %+v", s)
	}
	if reply.Expect != ExpectAnswer || reply.ExpectTurns != 7 {
		t.Errorf("expected Playing context for 7 turns, got %q/%d", reply.Expect, reply.ExpectTurns)
	}
}

func TestSubmitAnswerWrongClearsSession(t *testing.T) {
	e := newTestEngine()
	s := Session{Level: LevelEasy, LevelSet: true}
	e.PlayRound(&s)
	e.PlayRound(&s) // score 1

	reply := e.SubmitAnswer(&s, "Buenos Aires")

	if !s.Empty() {
		t.Errorf("wrong answer must clear the whole session, got %+v", s)
	}
	if reply.Messages[0] != "[incorrect Brasilia]" {
		t.Errorf("expected the correct capital revealed, got %v", reply.Messages)
	}
	if !slices.Contains(reply.Messages, "[score 1]") {
		t.Errorf("expected final score 1, got %v", reply.Messages)
	}
	if !slices.Contains(reply.Messages, "[play again]") {
		t.Errorf("expected play-again prompt, got %v", reply.Messages)
	}
	if reply.Expect != ExpectStartGame {
		t.Errorf("expected StartGame context, got %q", reply.Expect)
	}
}

func TestSubmitAnswerWithoutRoundFallsThrough(t *testing.T) {
	e := newTestEngine()
	s := Session{Level: LevelInsane, LevelSet: true}

	// No current country: the answer is ignored and a fresh round starts.
	reply := e.SubmitAnswer(&s, "anything")

	if !s.HasCountry {
		t.Fatal("expected a new round to start")
	}
	if slices.Contains(reply.Messages, "[correct]") {
		t.Errorf("no round in flight, nothing to praise: %v", reply.Messages)
	}
	if s.Score != 0 {
		t.Errorf("fall-through starts scoring at 0, got %d", s.Score)
	}
}

func TestFullGameScoreProgression(t *testing.T) {
	e := newTestEngine()
	var s Session

	e.ChooseDifficulty(&s, LevelInsane)
	if s.Score != 0 {
		t.Fatalf("round 1: score = %d, want 0", s.Score)
	}

	for round := 2; round <= 5; round++ {
		e.SubmitAnswer(&s, s.Country.Capital)
		if s.Score != round-1 {
			t.Fatalf("round %d: score = %d, want %d", round, s.Score, round-1)
		}
	}

	e.SubmitAnswer(&s, "wrong")
	if !s.Empty() {
		t.Fatalf("expected cleared session after the miss, got %+v", s)
	}
}
