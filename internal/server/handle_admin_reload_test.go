package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestAdminReload(t *testing.T) {
	r, app := newTestRouter(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("sesame"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hashing password: %v", err)
	}
	app.adminPasswordHash = string(hash)

	path := filepath.Join(t.TempDir(), "countries.json")
	doc := `{"en": [{"countryName": "France", "capital": "Paris", "wikiUrl": "", "population": 67000000}]}`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("writing dataset file: %v", err)
	}
	app.datasetPath = path

	// No token.
	req := httptest.NewRequest(http.MethodPost, "/api/admin/reload", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("no token: expected 401, got %d", w.Code)
	}

	// Wrong password.
	req = httptest.NewRequest(http.MethodPost, "/api/admin/reload", nil)
	req.Header.Set("Authorization", "Bearer opensesame")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("wrong password: expected 401, got %d", w.Code)
	}

	// Correct password swaps the dataset and rebuilds the selectors.
	req = httptest.NewRequest(http.MethodPost, "/api/admin/reload", nil)
	req.Header.Set("Authorization", "Bearer sesame")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp ReloadResponse
	json.NewDecoder(w.Body).Decode(&resp)
	if resp.Locales["en"] != 1 {
		t.Errorf("reload counts = %v, want en:1", resp.Locales)
	}

	if got := app.selectorFor("en").CandidateCount("easy"); got != 1 {
		t.Errorf("easy candidates after reload = %d, want 1", got)
	}
}

func TestAdminReloadDisabledWithoutHash(t *testing.T) {
	r, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/reload", nil)
	req.Header.Set("Authorization", "Bearer anything")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 when no hash configured, got %d", w.Code)
	}
}
