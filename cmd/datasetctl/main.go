// Command datasetctl imports a scraped country dataset into the quiz
// database. Run it offline after the scraper produces a new countries.json.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/quizworks/capitalquiz/internal/database"
	"github.com/quizworks/capitalquiz/internal/dataset"
	"github.com/quizworks/capitalquiz/internal/migrations"
	"github.com/quizworks/capitalquiz/internal/quiz"
)

func main() {
	var (
		dbPath = flag.String("db", "data/capitals.db", "path to the quiz database")
		input  = flag.String("input", "data/countries.json", "scraped dataset JSON file")
	)
	flag.Parse()

	if err := run(context.Background(), *dbPath, *input); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, dbPath, input string) error {
	db, err := database.Open(ctx, dbPath)
	if err != nil {
		return fmt.Errorf("connecting to sqlite: %w", err)
	}
	defer db.Close()

	if err := migrations.Run(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	store := dataset.NewStore(db)
	counts, err := store.ImportFile(ctx, input)
	if err != nil {
		return fmt.Errorf("importing %s: %w", input, err)
	}

	for locale, n := range counts {
		countries, err := store.Countries(ctx, locale)
		if err != nil {
			return fmt.Errorf("verifying %q: %w", locale, err)
		}
		selector := quiz.NewSelector(countries)
		fmt.Printf("%s: %d countries (easy %d, hard %d, insane %d)\n",
			locale, n,
			selector.CandidateCount(quiz.LevelEasy),
			selector.CandidateCount(quiz.LevelHard),
			selector.CandidateCount(quiz.LevelInsane),
		)

		// An empty bucket means that difficulty can never produce a question.
		for _, level := range quiz.Levels() {
			if selector.CandidateCount(level) == 0 {
				fmt.Printf("warning: %s has no countries at level %s\n", locale, level)
			}
		}
	}
	return nil
}
