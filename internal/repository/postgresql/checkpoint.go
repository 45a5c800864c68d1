package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v4"

	"github.com/mealbridge/mealbridge/internal/db"
	"github.com/mealbridge/mealbridge/internal/repository"
)

type CheckpointRepo struct {
	db db.DB
}

func NewCheckpointRepo(db db.DB) *CheckpointRepo {
	return &CheckpointRepo{db: db}
}

func (r *CheckpointRepo) Create(ctx context.Context, c *repository.Checkpoint) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO checkpoints (
            id, name, type, longitude, latitude, address, is_active,
            capacity_current, capacity_maximum, total_received, total_kg_received,
            created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
    `, c.ID, c.Name, c.Type, c.Longitude, c.Latitude, c.Address, c.IsActive,
		c.CapacityCurrent, c.CapacityMaximum, c.TotalReceived, c.TotalKgReceived,
		c.CreatedAt, c.UpdatedAt)
	return err
}

func (r *CheckpointRepo) GetByID(ctx context.Context, id string) (*repository.Checkpoint, error) {
	var c repository.Checkpoint
	err := r.db.Get(ctx, &c, "SELECT * FROM checkpoints WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *CheckpointRepo) Update(ctx context.Context, c *repository.Checkpoint) error {
	_, err := r.db.Exec(ctx, `
        UPDATE checkpoints
        SET
            name = $1,
            type = $2,
            longitude = $3,
            latitude = $4,
            address = $5,
            is_active = $6,
            capacity_current = $7,
            capacity_maximum = $8,
            updated_at = $9
        WHERE id = $10
    `, c.Name, c.Type, c.Longitude, c.Latitude, c.Address, c.IsActive,
		c.CapacityCurrent, c.CapacityMaximum, c.UpdatedAt, c.ID)
	return err
}

func (r *CheckpointRepo) List(ctx context.Context) ([]*repository.Checkpoint, error) {
	var checkpoints []*repository.Checkpoint
	err := r.db.Select(ctx, &checkpoints, "SELECT * FROM checkpoints ORDER BY created_at ASC")
	return checkpoints, err
}

func (r *CheckpointRepo) GetActiveByType(ctx context.Context, checkpointType string) ([]*repository.Checkpoint, error) {
	var checkpoints []*repository.Checkpoint
	err := r.db.Select(ctx, &checkpoints,
		"SELECT * FROM checkpoints WHERE type = $1 AND is_active = true", checkpointType)
	return checkpoints, err
}

// AddReceivedTx bumps the routing stats inside the fallback transaction so a
// listing and its destination commit together.
func (r *CheckpointRepo) AddReceivedTx(ctx context.Context, tx db.Tx, id string, kg float64, now time.Time) error {
	_, err := tx.Exec(ctx, `
        UPDATE checkpoints
        SET
            total_received = total_received + 1,
            total_kg_received = total_kg_received + $1,
            updated_at = $2
        WHERE id = $3
    `, kg, now, id)
	return err
}
