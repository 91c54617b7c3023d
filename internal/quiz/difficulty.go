package quiz

import "fmt"

// Level buckets countries by population. Bounds are exclusive on both ends,
// so a population of exactly 10_000_000 or 40_000_000 matches no level.
type Level string

const (
	LevelEasy   Level = "easy"
	LevelHard   Level = "hard"
	LevelInsane Level = "insane"
)

// Levels returns all levels in display order, easiest first.
func Levels() []Level {
	return []Level{LevelEasy, LevelHard, LevelInsane}
}

// ParseLevel validates a level identifier as delivered by the intent router.
func ParseLevel(s string) (Level, error) {
	switch l := Level(s); l {
	case LevelEasy, LevelHard, LevelInsane:
		return l, nil
	}
	return "", fmt.Errorf("unknown difficulty level %q", s)
}

type populationRange struct {
	from int64 // exclusive lower bound
	to   int64 // exclusive upper bound
}

const maxPopulation = int64(1<<63 - 1)

var levelRanges = map[Level]populationRange{
	LevelEasy:   {from: 40_000_000, to: maxPopulation},
	LevelHard:   {from: 10_000_000, to: 40_000_000},
	LevelInsane: {from: 0, to: 10_000_000},
}

// InRange reports whether population falls inside the level's bucket.
// Unknown levels accept nothing.
func InRange(population int64, level Level) bool {
	r, ok := levelRanges[level]
	if !ok {
		return false
	}
	return population > r.from && population < r.to
}
