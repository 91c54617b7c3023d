package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// HealthResponse maps dependency name to status ("ok" or "error").
type HealthResponse map[string]string

func handleHealth(logger *slog.Logger, app *App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		checks := HealthResponse{"sqlite": "ok"}
		status := http.StatusOK

		if err := app.db.PingContext(ctx); err != nil {
			logger.Error("health check failed", "name", "sqlite", "error", err)
			checks["sqlite"] = "error"
			status = http.StatusServiceUnavailable
		}

		if app.rdb != nil {
			checks["redis"] = "ok"
			if err := app.rdb.Ping(ctx).Err(); err != nil {
				logger.Error("health check failed", "name", "redis", "error", err)
				checks["redis"] = "error"
				status = http.StatusServiceUnavailable
			}
		}

		writeJSON(w, status, checks)
	}
}
