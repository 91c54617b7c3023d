package quiz

// Texts supplies localized user-facing strings. The engine calls these purely
// for output formatting; no quiz logic lives behind them.
type Texts interface {
	Rules() string
	Correct() string
	Incorrect(capital string) string
	Score(score int) string
	PlayAgain() string
	ChooseDifficulty() string
	DifficultyChosen(level Level) string
	NoCountries() string
	LevelNames() []string
	Yes() string
	No() string
}

// Expectation names the next user action the conversation is armed for. The
// host's intent router uses it to decide which intent may fire next.
type Expectation string

const (
	ExpectNothing    Expectation = ""
	ExpectStartGame  Expectation = "StartGame"
	ExpectDifficulty Expectation = "ChooseDifficultyLevel"
	ExpectAnswer     Expectation = "Playing"
)

// Reply is the outcome of one engine operation: what to say, which quick
// replies to offer, and which conversational context to arm next.
type Reply struct {
	Messages    []string
	Suggestions []string
	Expect      Expectation
	ExpectTurns int
}

// Engine drives the round lifecycle for one conversation turn. It owns all
// session mutations; callers persist whatever comes back.
type Engine struct {
	selector *Selector
	texts    Texts
}

func NewEngine(selector *Selector, texts Texts) *Engine {
	return &Engine{selector: selector, texts: texts}
}

// StartOrResume begins a round when a difficulty is already chosen and asks
// for one otherwise.
func (e *Engine) StartOrResume(s *Session) Reply {
	if s.LevelSet {
		return e.PlayRound(s)
	}
	return e.promptDifficulty()
}

// ChooseDifficulty records the level and immediately starts a round,
// prefixed with a confirmation of the chosen level.
func (e *Engine) ChooseDifficulty(s *Session, level Level) Reply {
	s.Level = level
	s.LevelSet = true
	reply := e.PlayRound(s)
	reply.Messages = append([]string{e.texts.DifficultyChosen(level)}, reply.Messages...)
	return reply
}

// PlayRound draws a country for the session's level, stores it as the current
// question, and advances the score. The score reads 0 on the first round and
// grows by one on each later round; the rules message is spoken exactly once
// per session, on that first round.
func (e *Engine) PlayRound(s *Session) Reply {
	level := LevelEasy
	if s.LevelSet {
		level = s.Level
	}

	country, err := e.selector.Pick(level)
	if err != nil {
		// Dataset holds nothing for this level. Instead of retrying forever,
		// reset and send the user back to difficulty selection.
		s.Reset()
		reply := e.promptDifficulty()
		reply.Messages = append([]string{e.texts.NoCountries()}, reply.Messages...)
		return reply
	}

	s.Country = country
	s.HasCountry = true

	reply := Reply{
		Expect:      ExpectAnswer,
		ExpectTurns: 2,
	}
	if s.ScoreSet {
		s.Score++
		reply.Messages = []string{country.Name}
	} else {
		s.Score = 0
		s.ScoreSet = true
		reply.Messages = []string{e.texts.Rules(), country.Name}
	}
	return reply
}

// SubmitAnswer checks the user's guess against the current country's capital.
// A correct answer keeps the session and rolls straight into the next round;
// a wrong answer reveals the capital and the final score, clears the session,
// and offers a new game. A fresh or half-initialized session falls through to
// starting a new round instead of failing.
func (e *Engine) SubmitAnswer(s *Session, answer string) Reply {
	if !s.HasCountry || !s.ScoreSet {
		reply := e.PlayRound(s)
		reply.ExpectTurns = answerContextTurns
		return reply
	}

	if !AnswersMatch(s.Country.Capital, answer) {
		capital := s.Country.Capital
		score := s.Score
		s.Reset()
		return Reply{
			Messages: []string{
				e.texts.Incorrect(capital),
				e.texts.Score(score),
				e.texts.PlayAgain(),
			},
			Suggestions: []string{e.texts.Yes(), e.texts.No()},
			Expect:      ExpectStartGame,
			ExpectTurns: 2,
		}
	}

	reply := e.PlayRound(s)
	reply.Messages = append([]string{e.texts.Correct()}, reply.Messages...)
	reply.ExpectTurns = answerContextTurns
	return reply
}

// answerContextTurns keeps the answer context alive across a few unmatched
// utterances mid-game, so a mumbled reply doesn't drop the round.
const answerContextTurns = 7

func (e *Engine) promptDifficulty() Reply {
	return Reply{
		Messages:    []string{e.texts.ChooseDifficulty()},
		Suggestions: e.texts.LevelNames(),
		Expect:      ExpectDifficulty,
		ExpectTurns: 2,
	}
}
