package dataset

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/quizworks/capitalquiz/internal/quiz"
)

// rawRecord matches the scraper's output. Pointer fields because the scraper
// emits null when a wiki infobox was missing the value.
type rawRecord struct {
	CountryName *string `json:"countryName"`
	Capital     *string `json:"capital"`
	WikiURL     string  `json:"wikiUrl"`
	Population  *int64  `json:"population"`
}

// Import reads a scraper dataset document ({"en": [...], "ru": [...]}) and
// replaces the stored records per locale. Records without a country name or
// capital are dropped; a missing or negative population is coerced to 0.
// Returns record counts per locale.
func (s *Store) Import(ctx context.Context, r io.Reader) (map[string]int, error) {
	var doc map[string][]rawRecord
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding dataset: %w", err)
	}
	if len(doc) == 0 {
		return nil, fmt.Errorf("dataset holds no locales")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning import: %w", err)
	}
	defer tx.Rollback()

	counts := make(map[string]int, len(doc))
	for locale, records := range doc {
		countries := clean(records)
		if len(countries) == 0 {
			return nil, fmt.Errorf("locale %q has no usable records", locale)
		}
		if err := replaceLocale(ctx, tx, locale, countries); err != nil {
			return nil, err
		}
		counts[locale] = len(countries)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing import: %w", err)
	}
	return counts, nil
}

// ImportFile is Import on a file path.
func (s *Store) ImportFile(ctx context.Context, path string) (map[string]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset file: %w", err)
	}
	defer f.Close()
	return s.Import(ctx, f)
}

// clean filters raw scraper records down to usable countries and sorts them
// ascending by population, matching the contract the quiz inherits from the
// original pipeline.
func clean(records []rawRecord) []quiz.Country {
	countries := make([]quiz.Country, 0, len(records))
	for _, r := range records {
		if r.CountryName == nil || *r.CountryName == "" || r.Capital == nil || *r.Capital == "" {
			continue
		}
		c := quiz.Country{
			Name:    *r.CountryName,
			Capital: *r.Capital,
			WikiURL: r.WikiURL,
		}
		if r.Population != nil && *r.Population > 0 {
			c.Population = *r.Population
		}
		countries = append(countries, c)
	}
	slices.SortStableFunc(countries, func(a, b quiz.Country) int {
		return cmp.Compare(a.Population, b.Population)
	})
	return countries
}
