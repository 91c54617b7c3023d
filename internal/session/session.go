// Package session stores per-conversation quiz state between webhook turns.
// The hosting platform serializes calls per conversation, so no store-level
// locking beyond map safety is needed.
package session

import (
	"context"

	"github.com/quizworks/capitalquiz/internal/quiz"
)

// Store keeps one quiz.Session per conversation ID. A missing record is not
// an error: Get returns a zero session, which the engine treats as fresh.
type Store interface {
	Get(ctx context.Context, id string) (quiz.Session, error)
	Put(ctx context.Context, id string, s quiz.Session) error
	Delete(ctx context.Context, id string) error
}
