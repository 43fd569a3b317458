// Package repositories provides read access to the upstream datasets,
// fronting the API client with the Redis snapshot cache.
package repositories

import (
	"context"
	"errors"
	"log"

	"paydash/internal/models"
	"paydash/internal/observability/metrics"
	"paydash/internal/repositories/cache"
)

// Fetcher is the slice of the upstream client the repository needs.
type Fetcher interface {
	FetchPayments() ([]models.Payment, error)
	FetchMerchants() ([]models.Merchant, error)
}

// SnapshotRepository serves payment and merchant datasets, preferring
// the cached snapshot and falling back to a live fetch. A broken or
// absent Redis never fails a request; it only costs the cache.
type SnapshotRepository struct {
	fetcher Fetcher
	cache   *cache.SnapshotCache
}

func NewSnapshotRepository(fetcher Fetcher, c *cache.SnapshotCache) *SnapshotRepository {
	return &SnapshotRepository{fetcher: fetcher, cache: c}
}

// Payments returns the full payment feed.
func (r *SnapshotRepository) Payments(ctx context.Context) ([]models.Payment, error) {
	if r.cache != nil {
		payments, err := r.cache.GetPayments(ctx)
		if err == nil {
			metrics.SnapshotCacheHits.Inc()
			return payments, nil
		}
		if !errors.Is(err, cache.ErrMiss) {
			log.Printf("repositories: payments snapshot read failed: %v", err)
		}
	}
	metrics.SnapshotCacheMisses.Inc()

	payments, err := r.fetcher.FetchPayments()
	if err != nil {
		return nil, err
	}

	if r.cache != nil {
		if err := r.cache.SetPayments(ctx, payments); err != nil {
			log.Printf("repositories: payments snapshot write failed: %v", err)
		}
	}
	return payments, nil
}

// Merchants returns the full merchant list.
func (r *SnapshotRepository) Merchants(ctx context.Context) ([]models.Merchant, error) {
	if r.cache != nil {
		merchants, err := r.cache.GetMerchants(ctx)
		if err == nil {
			metrics.SnapshotCacheHits.Inc()
			return merchants, nil
		}
		if !errors.Is(err, cache.ErrMiss) {
			log.Printf("repositories: merchants snapshot read failed: %v", err)
		}
	}
	metrics.SnapshotCacheMisses.Inc()

	merchants, err := r.fetcher.FetchMerchants()
	if err != nil {
		return nil, err
	}

	if r.cache != nil {
		if err := r.cache.SetMerchants(ctx, merchants); err != nil {
			log.Printf("repositories: merchants snapshot write failed: %v", err)
		}
	}
	return merchants, nil
}
