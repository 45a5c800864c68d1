package storage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mealbridge/mealbridge/internal/repository"
	"github.com/mealbridge/mealbridge/internal/storage"
	mock_storage "github.com/mealbridge/mealbridge/internal/storage/mocks"
)

// Bangalore city center; the fixture checkpoints sit at known offsets north
// of it.
var origin = geoPoint(77.5946, 12.9716)

func fridgeRow(id string, latOffset float64) *repository.Checkpoint {
	return &repository.Checkpoint{
		ID:        id,
		Name:      "Fridge " + id,
		Type:      "fridge",
		Longitude: origin.Longitude,
		Latitude:  origin.Latitude + latOffset,
		IsActive:  true,
	}
}

func TestFindNearest(t *testing.T) {
	ctx := context.Background()

	t.Run("orders by distance and applies the limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mock_storage.NewMockCheckpointRepository(ctrl)
		d := storage.NewDirectory(repo, fixedClock{testNow})

		// roughly 11km, 2km and 6km away
		repo.EXPECT().GetActiveByType(gomock.Any(), "fridge").Return([]*repository.Checkpoint{
			fridgeRow("far", 0.10),
			fridgeRow("near", 0.02),
			fridgeRow("mid", 0.055),
		}, nil)

		got, err := d.FindNearest(ctx, origin, storage.CheckpointFridge, 50000, 2)
		require.NoError(t, err)

		require.Len(t, got, 2)
		assert.Equal(t, "near", got[0].ID)
		assert.Equal(t, "mid", got[1].ID)
	})

	t.Run("excludes checkpoints outside the radius", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mock_storage.NewMockCheckpointRepository(ctrl)
		d := storage.NewDirectory(repo, fixedClock{testNow})

		repo.EXPECT().GetActiveByType(gomock.Any(), "fridge").Return([]*repository.Checkpoint{
			fridgeRow("near", 0.02),
			fridgeRow("far", 0.60), // ~66km
		}, nil)

		got, err := d.FindNearest(ctx, origin, storage.CheckpointFridge, 50000, 0)
		require.NoError(t, err)

		require.Len(t, got, 1)
		assert.Equal(t, "near", got[0].ID)
	})

	t.Run("empty directory", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mock_storage.NewMockCheckpointRepository(ctrl)
		d := storage.NewDirectory(repo, fixedClock{testNow})

		repo.EXPECT().GetActiveByType(gomock.Any(), "animal_farm").Return(nil, nil)

		got, err := d.FindNearest(ctx, origin, storage.CheckpointAnimalFarm, 50000, 1)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestCreateCheckpoint(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults the maximum capacity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mock_storage.NewMockCheckpointRepository(ctrl)
		d := storage.NewDirectory(repo, fixedClock{testNow})

		var created *repository.Checkpoint
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c *repository.Checkpoint) error {
				created = c
				return nil
			})

		cp, err := d.CreateCheckpoint(ctx, storage.CreateCheckpointInput{
			Name:     "Community Fridge MG Road",
			Type:     storage.CheckpointFridge,
			Location: origin,
			Address:  "12 MG Road",
		})
		require.NoError(t, err)

		assert.Equal(t, 100, cp.CapacityMaximum)
		assert.True(t, cp.IsActive)
		require.NotNil(t, created)
		assert.Equal(t, cp.ID, created.ID)
	})

	t.Run("rejects unknown types", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mock_storage.NewMockCheckpointRepository(ctrl)
		d := storage.NewDirectory(repo, fixedClock{testNow})

		_, err := d.CreateCheckpoint(ctx, storage.CreateCheckpointInput{
			Name:     "Warehouse",
			Type:     "warehouse",
			Location: origin,
		})
		assert.ErrorIs(t, err, storage.ErrValidation)
	})
}

func TestUpdateCheckpoint(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_storage.NewMockCheckpointRepository(ctrl)
	d := storage.NewDirectory(repo, fixedClock{testNow})

	row := fridgeRow("cp-1", 0)
	repo.EXPECT().GetByID(gomock.Any(), "cp-1").Return(row, nil)
	repo.EXPECT().Update(gomock.Any(), row).Return(nil)

	inactive := false
	cp, err := d.UpdateCheckpoint(ctx, "cp-1", storage.UpdateCheckpointInput{
		IsActive: &inactive,
	})
	require.NoError(t, err)

	assert.False(t, cp.IsActive)
	assert.Equal(t, "Fridge cp-1", cp.Name)
}
