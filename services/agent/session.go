// File: services/agent/session.go
package agent

import (
	"context"
	"encoding/json"
	"time"

	"schedmate/models"

	"github.com/go-redis/redis/v8"
)

const sessionPrefix = "chat:slots:"

// SessionStore keeps the suggestion list last shown to a conversation, so a
// numeric reply resolves to the slot the user actually saw. Entries expire;
// an expired or missing entry means the orchestrator recomputes fresh.
type SessionStore interface {
	Get(ctx context.Context, conversationID string) (*models.SuggestionList, error)
	Set(ctx context.Context, conversationID string, list *models.SuggestionList) error
	Clear(ctx context.Context, conversationID string) error
}

type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: ttl}
}

// Get returns the stored list, or (nil, nil) when none exists.
func (s *RedisSessionStore) Get(ctx context.Context, conversationID string) (*models.SuggestionList, error) {
	key := sessionPrefix + conversationID
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var list models.SuggestionList
	if err := json.Unmarshal([]byte(data), &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (s *RedisSessionStore) Set(ctx context.Context, conversationID string, list *models.SuggestionList) error {
	key := sessionPrefix + conversationID
	b, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, b, s.ttl).Err()
}

func (s *RedisSessionStore) Clear(ctx context.Context, conversationID string) error {
	key := sessionPrefix + conversationID
	return s.client.Del(ctx, key).Err()
}
