package scheduler

import (
	"context"
	"fmt"

	"github.com/mealbridge/mealbridge/internal/geo"
	"github.com/mealbridge/mealbridge/internal/storage"
)

// fallbackCheckpointType maps a listing's logical fallback target to the
// checkpoint type that absorbs it. "receiver" routes to community fridges;
// the other targets name their checkpoint type directly.
var fallbackCheckpointType = map[storage.FallbackTarget]storage.CheckpointType{
	storage.FallbackReceiver:   storage.CheckpointFridge,
	storage.FallbackAnimalFarm: storage.CheckpointAnimalFarm,
	storage.FallbackBiocompost: storage.CheckpointBiocompost,
}

type Directory interface {
	FindNearest(ctx context.Context, point geo.Point, checkpointType storage.CheckpointType, maxDistanceM float64, limit int) ([]*storage.Checkpoint, error)
}

// Resolver selects the checkpoint that receives an unclaimed listing.
// Priority order strictly dominates distance: the first fallback type with
// any in-range candidate wins, even if a later type has a closer one.
type Resolver struct {
	directory Directory
	radiusM   float64
}

func NewResolver(directory Directory, radiusM float64) *Resolver {
	return &Resolver{directory: directory, radiusM: radiusM}
}

// Resolve returns the destination checkpoint, or nil when no type in the
// listing's fallback order has an in-range active checkpoint (the listing is
// left untouched and retried next sweep).
func (r *Resolver) Resolve(ctx context.Context, l *storage.Listing) (*storage.Checkpoint, error) {
	for _, target := range l.FallbackOrder {
		checkpointType, ok := fallbackCheckpointType[target]
		if !ok {
			continue
		}

		checkpoints, err := r.directory.FindNearest(ctx, l.Location, checkpointType, r.radiusM, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve fallback type %s: %w", target, err)
		}
		if len(checkpoints) > 0 {
			return checkpoints[0], nil
		}
	}
	return nil, nil
}
