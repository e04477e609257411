package otpstore

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestMemoryStore_SetGetDelete(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	store := NewMemoryStore(clock.Now)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, Record{Email: "a@example.com", Name: "Ann", CodeHash: "h"}, 5*time.Minute))

	rec, err := store.Get(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Ann", rec.Name)
	assert.Equal(t, clock.Now().Add(5*time.Minute), rec.ExpiresAt)

	require.NoError(t, store.Delete(ctx, "a@example.com"))
	_, err = store.Get(ctx, "a@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_SetOverwrites(t *testing.T) {
	store := NewMemoryStore(nil)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, Record{Email: "a@example.com", CodeHash: "first"}, time.Minute))
	require.NoError(t, store.Set(ctx, Record{Email: "a@example.com", CodeHash: "second"}, time.Minute))

	rec, err := store.Get(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, "second", rec.CodeHash)
	assert.Equal(t, 1, store.Len())
}

func TestMemoryStore_ExpiredRecordIsGone(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	store := NewMemoryStore(clock.Now)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, Record{Email: "a@example.com"}, 5*time.Minute))

	clock.Advance(5 * time.Minute)
	_, err := store.Get(ctx, "a@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 0, store.Len())
}

func TestMemoryStore_Sweep(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	store := NewMemoryStore(clock.Now)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, Record{Email: "old@example.com"}, time.Minute))
	require.NoError(t, store.Set(ctx, Record{Email: "new@example.com"}, 10*time.Minute))

	clock.Advance(2 * time.Minute)
	assert.Equal(t, 1, store.Sweep())
	assert.Equal(t, 1, store.Len())

	_, err := store.Get(ctx, "new@example.com")
	assert.NoError(t, err)
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	store := NewMemoryStore(nil)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Set(ctx, Record{Email: "race@example.com"}, time.Minute)
			_, _ = store.Get(ctx, "race@example.com")
			store.Sweep()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, store.Len())
}

func TestMemoryStore_StartSweeperRejectsBadSchedule(t *testing.T) {
	store := NewMemoryStore(nil)
	assert.Error(t, store.StartSweeper("whenever"))

	require.NoError(t, store.StartSweeper("@every 1m"))
	store.Stop()
}
