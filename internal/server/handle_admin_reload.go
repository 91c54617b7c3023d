package server

import (
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// ReloadResponse reports how many records each locale holds after a reload.
type ReloadResponse struct {
	Locales map[string]int `json:"locales"`
}

// handleAdminReload re-imports the dataset file and rebuilds the selectors,
// so a freshly scraped dataset can be rolled out without a restart. Guarded
// by the bcrypt password hash from config; disabled when none is set.
func handleAdminReload(logger *slog.Logger, app *App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if app.adminPasswordHash == "" {
			writeError(w, http.StatusNotFound, "not found")
			return
		}

		password, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !found || password == "" {
			writeError(w, http.StatusUnauthorized, "not authenticated")
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(app.adminPasswordHash), []byte(password)); err != nil {
			writeError(w, http.StatusUnauthorized, "not authenticated")
			return
		}

		counts, err := app.store.ImportFile(r.Context(), app.datasetPath)
		if err != nil {
			logger.Error("dataset reload failed", "error", err, "path", app.datasetPath)
			writeError(w, http.StatusInternalServerError, "dataset import failed")
			return
		}
		if err := app.LoadSelectors(r.Context()); err != nil {
			logger.Error("selector rebuild failed", "error", err)
			writeError(w, http.StatusInternalServerError, "selector rebuild failed")
			return
		}

		logger.Info("dataset reloaded", "locales", counts)
		writeJSON(w, http.StatusOK, ReloadResponse{Locales: counts})
	}
}
