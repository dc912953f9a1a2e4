package repository

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/wifi-on-ice/dashboard/models"
)

type fakeStore struct {
	calls   atomic.Int32
	key     string
	delay   time.Duration
	mu      sync.Mutex
	err     error
	table   []models.Measurement
	pingErr error
}

func (f *fakeStore) LoadMeasurements(ctx context.Context) ([]models.Measurement, error) {
	f.calls.Add(1)
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.table, nil
}

func (f *fakeStore) Ping(ctx context.Context) error { return f.pingErr }

func (f *fakeStore) QueryKey() string {
	if f.key == "" {
		return "fake:wifi_on_ice"
	}
	return f.key
}

func (f *fakeStore) setErr(err error) {
	f.mu.Lock()
	f.err = err
	f.mu.Unlock()
}

func newFakeStore() *fakeStore {
	return &fakeStore{table: []models.Measurement{
		{Route: "B"}, {Route: "A"}, {Route: "B"},
	}}
}

func TestCachedSource_MemoizesTable(t *testing.T) {
	store := newFakeStore()
	source, err := NewCachedSource(store, 2, time.Second)
	if err != nil {
		t.Fatalf("NewCachedSource failed: %v", err)
	}

	ctx := context.Background()
	first, err := source.Table(ctx)
	if err != nil {
		t.Fatalf("Table failed: %v", err)
	}
	second, err := source.Table(ctx)
	if err != nil {
		t.Fatalf("Table failed: %v", err)
	}

	if store.calls.Load() != 1 {
		t.Errorf("store queried %d times, want 1", store.calls.Load())
	}
	if len(first) != 3 || &first[0] != &second[0] {
		t.Error("second call should return the cached table")
	}
}

func TestCachedSource_ConcurrentFirstLoadsCollapse(t *testing.T) {
	store := newFakeStore()
	store.delay = 50 * time.Millisecond
	source, _ := NewCachedSource(store, 1, time.Second)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := source.Table(context.Background()); err != nil {
				t.Errorf("Table failed: %v", err)
			}
		}()
	}
	wg.Wait()

	if store.calls.Load() != 1 {
		t.Errorf("store queried %d times, want 1", store.calls.Load())
	}
}

func TestCachedSource_FailedLoadNotCached(t *testing.T) {
	store := newFakeStore()
	store.setErr(ErrDataUnavailable)
	source, _ := NewCachedSource(store, 1, time.Second)

	ctx := context.Background()
	table, err := source.Table(ctx)
	if !errors.Is(err, ErrDataUnavailable) {
		t.Fatalf("error = %v, want ErrDataUnavailable", err)
	}
	if table != nil {
		t.Error("partial table returned with error")
	}

	store.setErr(nil)
	if _, err := source.Table(ctx); err != nil {
		t.Fatalf("retry after failure: %v", err)
	}
	if store.calls.Load() != 2 {
		t.Errorf("store queried %d times, want 2", store.calls.Load())
	}
}

func TestCachedSource_Invalidate(t *testing.T) {
	store := newFakeStore()
	source, _ := NewCachedSource(store, 1, time.Second)

	ctx := context.Background()
	source.Table(ctx)
	source.Invalidate()
	source.Table(ctx)

	if store.calls.Load() != 2 {
		t.Errorf("store queried %d times, want 2", store.calls.Load())
	}
}

func TestCachedSource_CallerCancelled(t *testing.T) {
	store := newFakeStore()
	store.delay = 200 * time.Millisecond
	source, _ := NewCachedSource(store, 1, time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if _, err := source.Table(ctx); !errors.Is(err, ErrDataUnavailable) || !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("error = %v, want ErrDataUnavailable wrapping DeadlineExceeded", err)
	}

	// The load keeps going for other callers and lands in the cache
	table, err := source.Table(context.Background())
	if err != nil {
		t.Fatalf("Table failed: %v", err)
	}
	if len(table) != 3 {
		t.Errorf("got %d rows, want 3", len(table))
	}
	if store.calls.Load() != 1 {
		t.Errorf("store queried %d times, want 1", store.calls.Load())
	}
}

func TestCachedSource_LoadTimeout(t *testing.T) {
	store := newFakeStore()
	store.delay = time.Second
	source, _ := NewCachedSource(store, 1, 20*time.Millisecond)

	if _, err := source.Table(context.Background()); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("error = %v, want DeadlineExceeded", err)
	}
}

func TestCachedSource_RoutesAndPing(t *testing.T) {
	store := newFakeStore()
	store.pingErr = ErrDataUnavailable
	source, _ := NewCachedSource(store, 0, 0)

	routes, err := source.Routes(context.Background())
	if err != nil {
		t.Fatalf("Routes failed: %v", err)
	}
	if len(routes) != 2 || routes[0] != "A" || routes[1] != "B" {
		t.Errorf("Routes = %v, want [A B]", routes)
	}

	if err := source.Ping(context.Background()); !errors.Is(err, ErrDataUnavailable) {
		t.Errorf("Ping error = %v, want ErrDataUnavailable", err)
	}
}

func TestCachedSource_WithSQLiteStore(t *testing.T) {
	sqliteDB := setupTestDB(t, defaultSeed())
	repo, _ := NewSQLiteMeasurementRepository(sqliteDB.GetDB(), "wifi_on_ice")
	source, _ := NewCachedSource(repo, 1, time.Second)

	ctx := context.Background()
	first, err := source.Table(ctx)
	if err != nil {
		t.Fatalf("Table failed: %v", err)
	}

	// Rows added after the first load are not visible until invalidation
	seedMeasurements(t, sqliteDB.GetDB(), []seedRow{
		{"Berlin Südkreuz (Vorortbahn) -> München-Laim Pbf", 60, 3, models.RateFast, models.Activity4KVideo, "#418FD8"},
	})

	cached, _ := source.Table(ctx)
	if len(cached) != len(first) {
		t.Errorf("cached table changed from %d to %d rows", len(first), len(cached))
	}

	source.Invalidate()
	fresh, _ := source.Table(ctx)
	if len(fresh) != len(first)+1 {
		t.Errorf("after invalidation got %d rows, want %d", len(fresh), len(first)+1)
	}
}
