package session

import (
	"context"
	"testing"
	"time"

	"github.com/quizworks/capitalquiz/internal/quiz"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	state := quiz.Session{Level: quiz.LevelHard, LevelSet: true, Score: 2, ScoreSet: true}
	if err := store.Put(ctx, "conv-1", state); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := store.Get(ctx, "conv-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != state {
		t.Errorf("got %+v, want %+v", got, state)
	}
}

func TestMemoryStoreMissingIsFresh(t *testing.T) {
	store := NewMemoryStore(time.Hour)

	got, err := store.Get(context.Background(), "nope")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !got.Empty() {
		t.Errorf("missing session should be fresh, got %+v", got)
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	store.Put(ctx, "conv-1", quiz.Session{ScoreSet: true})
	store.Delete(ctx, "conv-1")

	got, _ := store.Get(ctx, "conv-1")
	if !got.Empty() {
		t.Errorf("deleted session should be fresh, got %+v", got)
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore(10 * time.Minute)
	ctx := context.Background()

	current := time.Unix(1_700_000_000, 0)
	store.now = func() time.Time { return current }

	store.Put(ctx, "conv-1", quiz.Session{ScoreSet: true})

	current = current.Add(11 * time.Minute)
	got, _ := store.Get(ctx, "conv-1")
	if !got.Empty() {
		t.Errorf("expired session should be fresh, got %+v", got)
	}

	// A write after expiry sweeps the stale entry out of the map.
	store.Put(ctx, "conv-2", quiz.Session{})
	store.mu.RLock()
	_, stale := store.sessions["conv-1"]
	store.mu.RUnlock()
	if stale {
		t.Error("expired entry not evicted on write")
	}
}
