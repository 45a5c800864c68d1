package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mealbridge/mealbridge/internal/notify"
	"github.com/mealbridge/mealbridge/internal/storage"
)

type fakeClock struct {
	t time.Time
}

func (c fakeClock) Now() time.Time {
	return c.t
}

// fakeStore drives the sweeper against an in-memory listing set.
type fakeStore struct {
	mu sync.Mutex

	expirable []*storage.Listing
	fallbacks []*storage.Listing

	expired       []string
	applied       []string
	applyErr      error
	bannedCount   int
	fallbackCalls []time.Time
}

func (f *fakeStore) ExpirableListings(context.Context) ([]*storage.Listing, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.expirable, nil
}

func (f *fakeStore) FallbackCandidates(_ context.Context, cutoff time.Time) ([]*storage.Listing, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fallbackCalls = append(f.fallbackCalls, cutoff)
	return f.fallbacks, nil
}

func (f *fakeStore) ExpireListing(_ context.Context, listingID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.expired = append(f.expired, listingID)
	return true, nil
}

func (f *fakeStore) ApplyFallback(_ context.Context, listingID string, cp *storage.Checkpoint) (*storage.Listing, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.applyErr != nil {
		return nil, f.applyErr
	}
	f.applied = append(f.applied, listingID)
	return &storage.Listing{ID: listingID, Status: storage.StatusConfirmed}, nil
}

func (f *fakeStore) RunAutoBanSweep(context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.bannedCount, nil
}

type recordingNotifier struct {
	mu    sync.Mutex
	types []string
}

func (r *recordingNotifier) Notify(_ context.Context, n notify.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.types = append(r.types, n.Type)
}

func newTestSweeper(store *fakeStore, dir *fakeDirectory, notifier notify.Notifier, now time.Time) *Sweeper {
	if notifier == nil {
		notifier = notify.Nop{}
	}
	return NewSweeper(store, NewResolver(dir, 50000), notifier, fakeClock{now}, Config{
		SweepInterval:      time.Minute,
		ModerationInterval: 24 * time.Hour,
		FallbackDelay:      30 * time.Minute,
		Workers:            2,
	}, zap.NewNop())
}

func TestRunTick(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("expires overdue listings and notifies donors", func(t *testing.T) {
		store := &fakeStore{
			expirable: []*storage.Listing{
				{ID: "old-1", DonorID: "donor-1", Title: "Rice"},
				{ID: "old-2", DonorID: "donor-2", Title: "Bread"},
			},
		}
		notifier := &recordingNotifier{}
		s := newTestSweeper(store, &fakeDirectory{}, notifier, now)

		report := s.RunTick(ctx)

		assert.Equal(t, 2, report.Expired)
		assert.Equal(t, 0, report.Errors)
		assert.ElementsMatch(t, []string{"old-1", "old-2"}, store.expired)
		assert.Len(t, notifier.types, 2)
	})

	t.Run("routes stale unclaimed listings through their fallback order", func(t *testing.T) {
		fridge := &storage.Checkpoint{ID: "fridge-1", Name: "MG Road Fridge", Type: storage.CheckpointFridge}
		store := &fakeStore{
			fallbacks: []*storage.Listing{
				{ID: "stale-1", DonorID: "donor-1", Title: "Curry", FallbackOrder: storage.DefaultFallbackOrder},
			},
		}
		dir := &fakeDirectory{byType: map[storage.CheckpointType][]*storage.Checkpoint{
			storage.CheckpointFridge: {fridge},
		}}
		s := newTestSweeper(store, dir, nil, now)

		report := s.RunTick(ctx)

		assert.Equal(t, 1, report.FallbacksTriggered)
		assert.Equal(t, []string{"stale-1"}, store.applied)

		// candidate cutoff is the fallback delay before the tick
		require.Len(t, store.fallbackCalls, 1)
		assert.Equal(t, now.Add(-30*time.Minute), store.fallbackCalls[0])
	})

	t.Run("losing the race to a claim is not an error", func(t *testing.T) {
		store := &fakeStore{
			fallbacks: []*storage.Listing{
				{ID: "contested", DonorID: "donor-1", FallbackOrder: storage.DefaultFallbackOrder},
			},
			applyErr: storage.ErrInvalidTransition,
		}
		dir := &fakeDirectory{byType: map[storage.CheckpointType][]*storage.Checkpoint{
			storage.CheckpointFridge: {{ID: "fridge-1", Type: storage.CheckpointFridge}},
		}}
		s := newTestSweeper(store, dir, nil, now)

		report := s.RunTick(ctx)

		assert.Equal(t, 0, report.FallbacksTriggered)
		assert.Equal(t, 0, report.Errors)
	})

	t.Run("listing with no in-range checkpoint is retried later", func(t *testing.T) {
		store := &fakeStore{
			fallbacks: []*storage.Listing{
				{ID: "remote", DonorID: "donor-1", FallbackOrder: storage.DefaultFallbackOrder},
			},
		}
		s := newTestSweeper(store, &fakeDirectory{}, nil, now)

		report := s.RunTick(ctx)

		assert.Equal(t, 0, report.FallbacksTriggered)
		assert.Equal(t, 0, report.Errors)
		assert.Empty(t, store.applied)
	})

	t.Run("empty tick", func(t *testing.T) {
		store := &fakeStore{}
		s := newTestSweeper(store, &fakeDirectory{}, nil, now)

		report := s.RunTick(ctx)
		assert.Equal(t, TickReport{}, report)
	})
}

type steppedClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *steppedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *steppedClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

// lifecycleStore models listing status across ticks so consecutive sweeps
// see the effects of earlier ones, with the same candidate filters the
// database queries apply.
type lifecycleStore struct {
	mu       sync.Mutex
	clock    *steppedClock
	listings map[string]*storage.Listing
}

func (f *lifecycleStore) ExpirableListings(context.Context) ([]*storage.Listing, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	now := f.clock.Now()
	var out []*storage.Listing
	for _, l := range f.listings {
		if l.IsExpired {
			continue
		}
		if l.Status != storage.StatusAvailable && l.Status != storage.StatusClaimed {
			continue
		}
		if l.ExpiresAt.After(now) {
			continue
		}
		cp := *l
		out = append(out, &cp)
	}
	return out, nil
}

func (f *lifecycleStore) FallbackCandidates(_ context.Context, cutoff time.Time) ([]*storage.Listing, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*storage.Listing
	for _, l := range f.listings {
		if l.Status != storage.StatusAvailable || l.ClaimedBy != nil || l.FallbackTriggered {
			continue
		}
		if l.CreatedAt.After(cutoff) {
			continue
		}
		cp := *l
		out = append(out, &cp)
	}
	return out, nil
}

func (f *lifecycleStore) ExpireListing(_ context.Context, listingID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	l, ok := f.listings[listingID]
	if !ok {
		return false, storage.ErrNotFound
	}
	if l.Status != storage.StatusAvailable && l.Status != storage.StatusClaimed {
		return false, nil
	}
	l.Status = storage.StatusExpired
	l.IsExpired = true
	return true, nil
}

func (f *lifecycleStore) ApplyFallback(_ context.Context, listingID string, _ *storage.Checkpoint) (*storage.Listing, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	l, ok := f.listings[listingID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	if l.Status != storage.StatusAvailable || l.FallbackTriggered {
		return nil, storage.ErrInvalidTransition
	}
	now := f.clock.Now()
	l.Status = storage.StatusConfirmed
	l.FallbackTriggered = true
	l.FallbackAt = &now
	cp := *l
	return &cp, nil
}

func (f *lifecycleStore) RunAutoBanSweep(context.Context) (int, error) {
	return 0, nil
}

func TestSweepLifecycle(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := &steppedClock{t: createdAt}

	store := &lifecycleStore{
		clock: clock,
		listings: map[string]*storage.Listing{
			"meal-1": {
				ID:            "meal-1",
				DonorID:       "donor-1",
				Title:         "Dal",
				Status:        storage.StatusAvailable,
				FallbackOrder: storage.DefaultFallbackOrder,
				CreatedAt:     createdAt,
				ExpiresAt:     createdAt.Add(120 * time.Minute),
			},
		},
	}
	dir := &fakeDirectory{byType: map[storage.CheckpointType][]*storage.Checkpoint{
		storage.CheckpointFridge: {{ID: "fridge-1", Name: "MG Road Fridge", Type: storage.CheckpointFridge}},
	}}
	notifier := &recordingNotifier{}
	s := NewSweeper(store, NewResolver(dir, 50000), notifier, clock, Config{
		SweepInterval:      time.Minute,
		ModerationInterval: 24 * time.Hour,
		FallbackDelay:      30 * time.Minute,
		Workers:            2,
	}, zap.NewNop())

	// 30 minutes unclaimed: fallback routing fires, expiration does not.
	clock.Advance(30 * time.Minute)
	report := s.RunTick(ctx)
	assert.Equal(t, 1, report.FallbacksTriggered)
	assert.Equal(t, 0, report.Expired)

	routed := store.listings["meal-1"]
	assert.Equal(t, storage.StatusConfirmed, routed.Status)
	assert.True(t, routed.FallbackTriggered)
	require.NotNil(t, routed.FallbackAt)
	assert.Equal(t, createdAt.Add(30*time.Minute), *routed.FallbackAt)

	// Past the original deadline: the confirmed listing is no longer
	// expirable and must not be routed a second time.
	clock.Advance(90 * time.Minute)
	report = s.RunTick(ctx)
	assert.Equal(t, TickReport{}, report)
	assert.Equal(t, storage.StatusConfirmed, store.listings["meal-1"].Status)
	assert.False(t, store.listings["meal-1"].IsExpired)
	assert.Equal(t, []string{"fallback_triggered"}, notifier.types)
}

func TestSweeperShutdown(t *testing.T) {
	store := &fakeStore{}
	s := newTestSweeper(store, &fakeDirectory{}, nil, time.Now())

	done := make(chan struct{})
	go func() {
		s.Run(context.Background())
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	s.Shutdown()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop after Shutdown")
	}

	// Shutdown is safe to call twice.
	s.Shutdown()
}
