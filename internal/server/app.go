package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/quizworks/capitalquiz/internal/dataset"
	"github.com/quizworks/capitalquiz/internal/quiz"
	"github.com/quizworks/capitalquiz/internal/session"
)

const defaultDatasetLocale = "en"

// App wires the quiz core to its collaborators: the dataset store, the
// session store, and the per-locale selectors built from the dataset.
type App struct {
	logger   *slog.Logger
	db       *sql.DB
	rdb      *redis.Client // nil when sessions are in-memory
	store    *dataset.Store
	sessions session.Store

	datasetPath       string
	adminPasswordHash string

	mu        sync.RWMutex
	selectors map[string]*quiz.Selector
}

type AppConfig struct {
	DB                *sql.DB
	Redis             *redis.Client
	Sessions          session.Store
	DatasetPath       string
	AdminPasswordHash string
}

func NewApp(logger *slog.Logger, cfg AppConfig) *App {
	return &App{
		logger:            logger,
		db:                cfg.DB,
		rdb:               cfg.Redis,
		store:             dataset.NewStore(cfg.DB),
		sessions:          cfg.Sessions,
		datasetPath:       cfg.DatasetPath,
		adminPasswordHash: cfg.AdminPasswordHash,
		selectors:         make(map[string]*quiz.Selector),
	}
}

// LoadSelectors builds one country selector per dataset locale. The English
// partition is required; it is the fallback for every unrecognized locale.
func (a *App) LoadSelectors(ctx context.Context) error {
	locales, err := a.store.Locales(ctx)
	if err != nil {
		return fmt.Errorf("listing dataset locales: %w", err)
	}

	selectors := make(map[string]*quiz.Selector, len(locales))
	for _, loc := range locales {
		countries, err := a.store.Countries(ctx, loc)
		if err != nil {
			return fmt.Errorf("loading countries for %q: %w", loc, err)
		}
		selectors[loc] = quiz.NewSelector(countries)
		a.logger.Info("dataset locale loaded", "locale", loc, "countries", len(countries))
	}

	if _, ok := selectors[defaultDatasetLocale]; !ok {
		return fmt.Errorf("dataset has no %q partition; import a dataset first", defaultDatasetLocale)
	}

	a.mu.Lock()
	a.selectors = selectors
	a.mu.Unlock()
	return nil
}

// selectorFor returns the selector for a dataset locale, falling back to the
// English partition.
func (a *App) selectorFor(locale string) *quiz.Selector {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if s, ok := a.selectors[locale]; ok {
		return s
	}
	return a.selectors[defaultDatasetLocale]
}
