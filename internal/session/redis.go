package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/quizworks/capitalquiz/internal/quiz"
)

// RedisStore keeps sessions in Redis so several webhook instances can share
// conversations. Entries expire via the key TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func key(id string) string { return "session:" + id }

func (s *RedisStore) Get(ctx context.Context, id string) (quiz.Session, error) {
	data, err := s.client.Get(ctx, key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return quiz.Session{}, nil
	}
	if err != nil {
		return quiz.Session{}, fmt.Errorf("fetching session %q: %w", id, err)
	}

	var state quiz.Session
	if err := json.Unmarshal(data, &state); err != nil {
		// A corrupt record behaves like a missing one: the user starts over.
		return quiz.Session{}, nil
	}
	return state, nil
}

func (s *RedisStore) Put(ctx context.Context, id string, state quiz.Session) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encoding session %q: %w", id, err)
	}
	if err := s.client.Set(ctx, key(id), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("storing session %q: %w", id, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, key(id)).Err(); err != nil {
		return fmt.Errorf("deleting session %q: %w", id, err)
	}
	return nil
}
