package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nmakarov/pickbot/internal/pkg/config"
	"github.com/nmakarov/pickbot/internal/pkg/models"
)

// SnapshotCache keeps one fetched odds snapshot per (sport, date) under a
// short TTL. The Odds API meters requests, so back-to-back /games and /predict
// calls for the same date should not each spend a request. This is a
// point-in-time cache, not a history of odds: a key holds only the latest
// snapshot and expires on its own.
type SnapshotCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSnapshotCache(cfg *config.RedisConfig) (*SnapshotCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Check connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &SnapshotCache{client: client, ttl: cfg.SnapshotTTL.Std()}, nil
}

func snapshotKey(sportKey, date string) string {
	return fmt.Sprintf("odds:snapshot:%s:%s", sportKey, date)
}

// Get returns the cached snapshot for (sportKey, date), or ok=false on a miss.
func (c *SnapshotCache) Get(ctx context.Context, sportKey, date string) ([]models.Event, bool, error) {
	data, err := c.client.Get(ctx, snapshotKey(sportKey, date)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var events []models.Event
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	return events, true, nil
}

// Put stores a snapshot under the configured TTL.
func (c *SnapshotCache) Put(ctx context.Context, sportKey, date string, events []models.Event) error {
	data, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	if err := c.client.Set(ctx, snapshotKey(sportKey, date), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store snapshot: %w", err)
	}
	return nil
}

func (c *SnapshotCache) Close() error {
	return c.client.Close()
}
