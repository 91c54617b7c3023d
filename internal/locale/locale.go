// Package locale holds every user-facing string of the quiz in each supported
// language and resolves a BCP 47 tag to the right bundle.
package locale

import (
	"fmt"

	"golang.org/x/text/language"

	"github.com/quizworks/capitalquiz/internal/quiz"
)

// Bundle is the message table for one language. It implements quiz.Texts.
type Bundle struct {
	// DatasetLocale selects which partition of the country dataset this
	// language reads from ("en" or "ru").
	DatasetLocale string

	yes              string
	no               string
	initialWelcome   string
	bye              string
	noWorries        string
	askForAGame      string
	correct          string
	rules            string
	chooseDifficulty string
	playAgain        string
	noCountries      string

	welcomeFmt   string // verb: returning user greeting, %s = name
	thanksFmt    string // verb: thanks after name permission, %s = name
	incorrectFmt string // verb: reveal, %s = capital
	scoreFmt     string // verb: final score, %d = score
	levelFmt     string // verb: difficulty confirmation, %s = level name

	levelNames map[quiz.Level]string
}

func (b *Bundle) Yes() string              { return b.yes }
func (b *Bundle) No() string               { return b.no }
func (b *Bundle) InitialWelcome() string   { return b.initialWelcome }
func (b *Bundle) Bye() string              { return b.bye }
func (b *Bundle) NoWorries() string        { return b.noWorries }
func (b *Bundle) AskForAGame() string      { return b.askForAGame }
func (b *Bundle) Correct() string          { return b.correct }
func (b *Bundle) Rules() string            { return b.rules }
func (b *Bundle) ChooseDifficulty() string { return b.chooseDifficulty }
func (b *Bundle) PlayAgain() string        { return b.playAgain }
func (b *Bundle) NoCountries() string      { return b.noCountries }

func (b *Bundle) Welcome(name string) string      { return fmt.Sprintf(b.welcomeFmt, name) }
func (b *Bundle) Thanks(name string) string       { return fmt.Sprintf(b.thanksFmt, name) }
func (b *Bundle) Incorrect(capital string) string { return fmt.Sprintf(b.incorrectFmt, capital) }
func (b *Bundle) Score(score int) string          { return fmt.Sprintf(b.scoreFmt, score) }

func (b *Bundle) DifficultyChosen(l quiz.Level) string {
	return fmt.Sprintf(b.levelFmt, b.LevelName(l))
}

// LevelName returns the localized display name of a difficulty level.
func (b *Bundle) LevelName(l quiz.Level) string { return b.levelNames[l] }

// LevelNames returns display names for all levels, easiest first.
func (b *Bundle) LevelNames() []string {
	names := make([]string, 0, 3)
	for _, l := range quiz.Levels() {
		names = append(names, b.levelNames[l])
	}
	return names
}

var (
	supported = []language.Tag{language.English, language.Russian}
	matcher   = language.NewMatcher(supported)
)

// ForTag resolves a BCP 47 tag to a bundle. Any Russian tag ("ru", "ru-RU",
// ...) gets the Russian bundle; everything else, including unparseable tags,
// falls back to English.
func ForTag(tag string) *Bundle {
	t, err := language.Parse(tag)
	if err != nil {
		return English
	}
	if _, index, conf := matcher.Match(t); conf >= language.High && index == 1 {
		return Russian
	}
	return English
}
