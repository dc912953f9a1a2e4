package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"

	"github.com/wifi-on-ice/dashboard/internal/metrics"
	"github.com/wifi-on-ice/dashboard/models"
)

// CachedSource memoizes the measurement table per store query. The cached
// table is shared between callers and must be treated as read-only.
// Concurrent loads of the same query collapse into a single store call, and
// failed loads are never cached.
type CachedSource struct {
	store       MeasurementStore
	entries     *lru.Cache[string, []models.Measurement]
	group       singleflight.Group
	loadTimeout time.Duration
}

// NewCachedSource wraps store with a cache holding up to size tables.
// loadTimeout bounds a single store query; zero means no bound.
func NewCachedSource(store MeasurementStore, size int, loadTimeout time.Duration) (*CachedSource, error) {
	if size <= 0 {
		size = 1
	}
	entries, err := lru.New[string, []models.Measurement](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create source cache: %w", err)
	}
	return &CachedSource{
		store:       store,
		entries:     entries,
		loadTimeout: loadTimeout,
	}, nil
}

// Table returns the memoized measurement table, loading it on first use
func (c *CachedSource) Table(ctx context.Context) ([]models.Measurement, error) {
	key := c.store.QueryKey()
	if table, ok := c.entries.Get(key); ok {
		metrics.CacheHitsTotal.Inc()
		return table, nil
	}

	// The load outlives a cancelled caller so that others waiting on the
	// same key still get a result.
	result := c.group.DoChan(key, func() (interface{}, error) {
		if table, ok := c.entries.Get(key); ok {
			return table, nil
		}
		table, err := c.load(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		c.entries.Add(key, table)
		return table, nil
	})

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %w", ErrDataUnavailable, ctx.Err())
	case res := <-result:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]models.Measurement), nil
	}
}

func (c *CachedSource) load(ctx context.Context) ([]models.Measurement, error) {
	if c.loadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.loadTimeout)
		defer cancel()
	}

	metrics.SourceLoadsTotal.Inc()
	start := time.Now()
	table, err := c.store.LoadMeasurements(ctx)
	metrics.SourceLoadDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.SourceLoadErrors.Inc()
		log.Printf("Warning: measurement load failed: %v", err)
		return nil, err
	}

	metrics.SourceRows.Set(float64(len(table)))
	log.Printf("Loaded %d measurements in %v (%s)", len(table), time.Since(start), c.store.QueryKey())
	return table, nil
}

// Routes returns the sorted distinct routes of the cached table
func (c *CachedSource) Routes(ctx context.Context) ([]string, error) {
	table, err := c.Table(ctx)
	if err != nil {
		return nil, err
	}
	return ListRoutes(table), nil
}

// Ping checks store connectivity without touching the cache
func (c *CachedSource) Ping(ctx context.Context) error {
	return c.store.Ping(ctx)
}

// Invalidate drops every cached table; the next Table call queries the store
func (c *CachedSource) Invalidate() {
	c.entries.Purge()
	log.Println("Measurement cache invalidated")
}
