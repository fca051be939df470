package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"pawbody/internal/model"

	"github.com/redis/go-redis/v9"
)

// SnapshotCache keeps the latest InBody report per pet for cheap dashboard
// reads. Overwritten when a survey completes, invalidated when the pet is
// deleted.
type SnapshotCache interface {
	SetLatest(ctx context.Context, petID string, report *model.InBodyReport) error
	GetLatest(ctx context.Context, petID string) (*model.InBodyReport, error)
	Invalidate(ctx context.Context, petID string) error
}

type snapshotCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSnapshotCache creates a new report snapshot cache
func NewSnapshotCache(client *redis.Client) SnapshotCache {
	return &snapshotCache{
		client: client,
		ttl:    time.Hour,
	}
}

func (c *snapshotCache) key(petID string) string {
	return fmt.Sprintf("pet:%s:report:latest", petID)
}

func (c *snapshotCache) SetLatest(ctx context.Context, petID string, report *model.InBodyReport) error {
	data, err := json.Marshal(report)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(petID), data, c.ttl).Err()
}

func (c *snapshotCache) GetLatest(ctx context.Context, petID string) (*model.InBodyReport, error) {
	data, err := c.client.Get(ctx, c.key(petID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var report model.InBodyReport
	if err := json.Unmarshal([]byte(data), &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (c *snapshotCache) Invalidate(ctx context.Context, petID string) error {
	return c.client.Del(ctx, c.key(petID)).Err()
}
