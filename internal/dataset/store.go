// Package dataset persists the scraped country data and serves it back as
// the in-memory slices the quiz engine samples from.
package dataset

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/quizworks/capitalquiz/internal/quiz"
)

// Store reads and writes the countries table.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Countries returns every country for a dataset locale, sorted ascending by
// population. The slice is freshly allocated; callers own it.
func (s *Store) Countries(ctx context.Context, locale string) ([]quiz.Country, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, capital, wiki_url, population
		FROM countries
		WHERE locale = ?
		ORDER BY population ASC
	`, locale)
	if err != nil {
		return nil, fmt.Errorf("querying countries for %q: %w", locale, err)
	}
	defer rows.Close()

	var countries []quiz.Country
	for rows.Next() {
		var c quiz.Country
		if err := rows.Scan(&c.Name, &c.Capital, &c.WikiURL, &c.Population); err != nil {
			return nil, fmt.Errorf("scanning country: %w", err)
		}
		countries = append(countries, c)
	}
	return countries, rows.Err()
}

// Locales lists the dataset partitions present in the store.
func (s *Store) Locales(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT locale FROM countries ORDER BY locale`)
	if err != nil {
		return nil, fmt.Errorf("querying locales: %w", err)
	}
	defer rows.Close()

	var locales []string
	for rows.Next() {
		var loc string
		if err := rows.Scan(&loc); err != nil {
			return nil, fmt.Errorf("scanning locale: %w", err)
		}
		locales = append(locales, loc)
	}
	return locales, rows.Err()
}

// Count reports how many records exist across all locales.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM countries`).Scan(&n)
	return n, err
}

// replaceLocale swaps the full record set of one locale inside tx.
func replaceLocale(ctx context.Context, tx *sql.Tx, locale string, countries []quiz.Country) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM countries WHERE locale = ?`, locale); err != nil {
		return fmt.Errorf("clearing locale %q: %w", locale, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO countries (locale, name, capital, wiki_url, population)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, c := range countries {
		if _, err := stmt.ExecContext(ctx, locale, c.Name, c.Capital, c.WikiURL, c.Population); err != nil {
			return fmt.Errorf("inserting %q: %w", c.Name, err)
		}
	}
	return nil
}
