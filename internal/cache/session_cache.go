package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"pawbody/internal/model"

	"github.com/redis/go-redis/v9"
)

// SessionCache handles Redis operations for in-progress survey sessions.
// One session per pet; abandoned sessions expire with the TTL.
type SessionCache interface {
	Set(ctx context.Context, session *model.SurveySession) error
	Get(ctx context.Context, petID string) (*model.SurveySession, error)
	Delete(ctx context.Context, petID string) error
}

type sessionCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionCache creates a new survey session cache
func NewSessionCache(client *redis.Client) SessionCache {
	return &sessionCache{
		client: client,
		ttl:    24 * time.Hour,
	}
}

func (c *sessionCache) key(petID string) string {
	return fmt.Sprintf("pet:%s:survey", petID)
}

func (c *sessionCache) Set(ctx context.Context, session *model.SurveySession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(session.PetID), data, c.ttl).Err()
}

func (c *sessionCache) Get(ctx context.Context, petID string) (*model.SurveySession, error) {
	data, err := c.client.Get(ctx, c.key(petID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var session model.SurveySession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *sessionCache) Delete(ctx context.Context, petID string) error {
	return c.client.Del(ctx, c.key(petID)).Err()
}
