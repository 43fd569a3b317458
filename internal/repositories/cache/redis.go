// Package cache keeps short-lived JSON snapshots of the upstream
// datasets in Redis so a burst of dashboard loads does not hammer the
// reporting API. Snapshots expire on their own; nothing here is a
// source of truth.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"paydash/internal/models"
)

const (
	paymentsKey  = "snapshot:payments"
	merchantsKey = "snapshot:merchants"
)

// ErrMiss is returned when no snapshot is cached for a key.
var ErrMiss = redis.Nil

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

func NewRedisClient(cfg *RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// SnapshotCache stores dataset snapshots with a fixed TTL.
type SnapshotCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSnapshotCache(client *redis.Client, ttl time.Duration) *SnapshotCache {
	return &SnapshotCache{client: client, ttl: ttl}
}

func (c *SnapshotCache) GetPayments(ctx context.Context) ([]models.Payment, error) {
	val, err := c.client.Get(ctx, paymentsKey).Result()
	if err != nil {
		return nil, err
	}

	var payments []models.Payment
	err = json.Unmarshal([]byte(val), &payments)
	return payments, err
}

func (c *SnapshotCache) SetPayments(ctx context.Context, payments []models.Payment) error {
	data, err := json.Marshal(payments)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, paymentsKey, data, c.ttl).Err()
}

func (c *SnapshotCache) GetMerchants(ctx context.Context) ([]models.Merchant, error) {
	val, err := c.client.Get(ctx, merchantsKey).Result()
	if err != nil {
		return nil, err
	}

	var merchants []models.Merchant
	err = json.Unmarshal([]byte(val), &merchants)
	return merchants, err
}

func (c *SnapshotCache) SetMerchants(ctx context.Context, merchants []models.Merchant) error {
	data, err := json.Marshal(merchants)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, merchantsKey, data, c.ttl).Err()
}

// Invalidate drops both snapshots, forcing the next load upstream.
func (c *SnapshotCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, paymentsKey, merchantsKey).Err()
}

func (c *SnapshotCache) HealthCheck(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection failed: %w", err)
	}
	return nil
}

func (c *SnapshotCache) FlushAll(ctx context.Context) error {
	return c.client.FlushAll(ctx).Err()
}

func (c *SnapshotCache) Close() error {
	return c.client.Close()
}
