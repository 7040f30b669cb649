package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"task_planner/internal/models"
)

type Client struct {
	rdb *redis.Client
}

const (
	backupKey     = "backup:tasks"
	lastBackupKey = "backup:last"
	statsKey      = "cache:stats"
)

// ErrNotFound is returned when a key has no value (or has expired).
var ErrNotFound = errors.New("not found")

func Initialize(redisURL string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// Backup snapshots

// SetBackup stores a JSON snapshot of the full task collection and records
// the backup instant.
func (c *Client) SetBackup(tasks []models.Task, at time.Time) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("failed to marshal backup: %w", err)
	}

	if err := c.rdb.Set(ctx, backupKey, jsonData, 0).Err(); err != nil {
		return fmt.Errorf("failed to store backup: %w", err)
	}
	return c.rdb.Set(ctx, lastBackupKey, at.Format(time.RFC3339), 0).Err()
}

func (c *Client) GetBackup() ([]models.Task, error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, backupKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("backup: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get backup: %w", err)
	}

	var tasks []models.Task
	if err := json.Unmarshal([]byte(val), &tasks); err != nil {
		return nil, fmt.Errorf("failed to unmarshal backup: %w", err)
	}
	return tasks, nil
}

func (c *Client) LastBackupTime() (time.Time, error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, lastBackupKey).Result()
	if err != nil {
		if err == redis.Nil {
			return time.Time{}, fmt.Errorf("last backup: %w", ErrNotFound)
		}
		return time.Time{}, fmt.Errorf("failed to get last backup time: %w", err)
	}

	at, err := time.Parse(time.RFC3339, val)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse last backup time: %w", err)
	}
	return at, nil
}

// Analytics cache

func (c *Client) SetStatsCache(value interface{}, ttl time.Duration) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}
	return c.rdb.Set(ctx, statsKey, jsonData, ttl).Err()
}

func (c *Client) GetStatsCache(dest interface{}) error {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, statsKey).Result()
	if err != nil {
		if err == redis.Nil {
			return fmt.Errorf("stats cache: %w", ErrNotFound)
		}
		return fmt.Errorf("failed to get stats cache: %w", err)
	}
	return json.Unmarshal([]byte(val), dest)
}

func (c *Client) InvalidateStatsCache() error {
	ctx := context.Background()
	return c.rdb.Del(ctx, statsKey).Err()
}

// Close Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
