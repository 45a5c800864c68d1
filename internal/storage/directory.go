package storage

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/mealbridge/mealbridge/internal/geo"
	"github.com/mealbridge/mealbridge/internal/repository"
)

// Directory is the queryable set of fallback destinations. Capacity counters
// are advisory telemetry: the fallback sweep routes without checking
// current < maximum, matching the reference behavior.
type Directory struct {
	checkpoints CheckpointRepository
	clock       Clock
}

func NewDirectory(checkpoints CheckpointRepository, clock Clock) *Directory {
	return &Directory{checkpoints: checkpoints, clock: clock}
}

// FindNearest returns up to limit active checkpoints of the given type
// within maxDistanceM of the point, nearest first.
func (d *Directory) FindNearest(ctx context.Context, point geo.Point, checkpointType CheckpointType, maxDistanceM float64, limit int) ([]*Checkpoint, error) {
	rows, err := d.checkpoints.GetActiveByType(ctx, string(checkpointType))
	if err != nil {
		return nil, fmt.Errorf("failed to query checkpoints: %w", err)
	}

	type candidate struct {
		cp       *Checkpoint
		distance float64
	}
	candidates := make([]candidate, 0, len(rows))
	for _, row := range rows {
		cp := toDomainCheckpoint(row)
		dist := geo.DistanceM(point, cp.Location)
		if dist <= maxDistanceM {
			candidates = append(candidates, candidate{cp: cp, distance: dist})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].distance < candidates[j].distance
	})

	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}

	out := make([]*Checkpoint, len(candidates))
	for i, c := range candidates {
		out[i] = c.cp
	}
	return out, nil
}

type CreateCheckpointInput struct {
	Name            string
	Type            CheckpointType
	Location        geo.Point
	Address         string
	CapacityMaximum int
}

func (d *Directory) CreateCheckpoint(ctx context.Context, in CreateCheckpointInput) (*Checkpoint, error) {
	if in.Name == "" {
		return nil, validationf("checkpoint name is required")
	}
	if !ValidCheckpointType(in.Type) {
		return nil, validationf("unknown checkpoint type %q", in.Type)
	}
	if !in.Location.Valid() {
		return nil, validationf("invalid coordinates")
	}

	now := d.clock.Now()
	maximum := in.CapacityMaximum
	if maximum <= 0 {
		maximum = 100
	}

	row := &repository.Checkpoint{
		ID:              uuid.New().String(),
		Name:            in.Name,
		Type:            string(in.Type),
		Longitude:       in.Location.Longitude,
		Latitude:        in.Location.Latitude,
		Address:         in.Address,
		IsActive:        true,
		CapacityMaximum: maximum,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := d.checkpoints.Create(ctx, row); err != nil {
		return nil, fmt.Errorf("failed to create checkpoint: %w", err)
	}
	return toDomainCheckpoint(row), nil
}

type UpdateCheckpointInput struct {
	Name            *string
	IsActive        *bool
	CapacityCurrent *int
	CapacityMaximum *int
}

func (d *Directory) UpdateCheckpoint(ctx context.Context, id string, in UpdateCheckpointInput) (*Checkpoint, error) {
	row, err := d.checkpoints.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, fmt.Errorf("%w: checkpoint %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get checkpoint: %w", err)
	}

	if in.Name != nil {
		row.Name = *in.Name
	}
	if in.IsActive != nil {
		row.IsActive = *in.IsActive
	}
	if in.CapacityCurrent != nil {
		row.CapacityCurrent = *in.CapacityCurrent
	}
	if in.CapacityMaximum != nil {
		row.CapacityMaximum = *in.CapacityMaximum
	}
	row.UpdatedAt = d.clock.Now()

	if err := d.checkpoints.Update(ctx, row); err != nil {
		return nil, fmt.Errorf("failed to update checkpoint: %w", err)
	}
	return toDomainCheckpoint(row), nil
}

func (d *Directory) GetCheckpoint(ctx context.Context, id string) (*Checkpoint, error) {
	row, err := d.checkpoints.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, fmt.Errorf("%w: checkpoint %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get checkpoint: %w", err)
	}
	return toDomainCheckpoint(row), nil
}

func (d *Directory) ListCheckpoints(ctx context.Context) ([]*Checkpoint, error) {
	rows, err := d.checkpoints.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list checkpoints: %w", err)
	}
	out := make([]*Checkpoint, len(rows))
	for i, row := range rows {
		out[i] = toDomainCheckpoint(row)
	}
	return out, nil
}
