package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"triage-chatbot/internal/model"
)

// StateCache stores per-conversation chat state between turns. A missing
// key is not an error: Get returns a fresh empty state so an expired
// conversation degrades gracefully instead of failing the turn.
type StateCache interface {
	Set(ctx context.Context, conversationID string, state *model.ChatState) error
	Get(ctx context.Context, conversationID string) (*model.ChatState, error)
	Delete(ctx context.Context, conversationID string) error
}

type stateCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStateCache creates a redis-backed state cache with the given TTL
func NewStateCache(client *redis.Client, ttl time.Duration) StateCache {
	return &stateCache{
		client: client,
		ttl:    ttl,
	}
}

func stateKey(conversationID string) string {
	return "chat_state:" + conversationID
}

func (c *stateCache) Set(ctx context.Context, conversationID string, state *model.ChatState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, stateKey(conversationID), data, c.ttl).Err()
}

func (c *stateCache) Get(ctx context.Context, conversationID string) (*model.ChatState, error) {
	data, err := c.client.Get(ctx, stateKey(conversationID)).Result()
	if errors.Is(err, redis.Nil) {
		return &model.ChatState{}, nil
	}
	if err != nil {
		return nil, err
	}
	var state model.ChatState
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return &model.ChatState{}, nil
	}
	return &state, nil
}

func (c *stateCache) Delete(ctx context.Context, conversationID string) error {
	return c.client.Del(ctx, stateKey(conversationID)).Err()
}
