package cache

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/mealbridge/mealbridge/internal/metrics"
	"github.com/mealbridge/mealbridge/internal/storage"
)

type ActiveListingSource interface {
	ActiveListings(ctx context.Context) ([]*storage.Listing, error)
}

// ListingCache keeps active (non-terminal) listings in memory for cheap
// reads. Transitions into a terminal status evict.
type ListingCache struct {
	mu    sync.RWMutex
	cache map[string]*storage.Listing
}

func New() *ListingCache {
	return &ListingCache{cache: make(map[string]*storage.Listing)}
}

// Warmup loads currently active listings.
func (c *ListingCache) Warmup(ctx context.Context, source ActiveListingSource, logger *zap.Logger) error {
	listings, err := source.ActiveListings(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, l := range listings {
		copied := *l
		c.cache[l.ID] = &copied
	}
	metrics.ListingCacheItems.Set(float64(len(c.cache)))
	logger.Info("listing cache warmed up", zap.Int("count", len(c.cache)))
	return nil
}

func (c *ListingCache) Get(id string) (*storage.Listing, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	l, found := c.cache[id]
	if !found {
		return nil, false
	}
	copied := *l
	return &copied, true
}

func (c *ListingCache) Set(l *storage.Listing) {
	if l.Status.Terminal() {
		c.Delete(l.ID)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	copied := *l
	c.cache[l.ID] = &copied
	metrics.ListingCacheItems.Set(float64(len(c.cache)))
}

func (c *ListingCache) Delete(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, found := c.cache[id]; found {
		delete(c.cache, id)
		metrics.ListingCacheItems.Set(float64(len(c.cache)))
	}
}
