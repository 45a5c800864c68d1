package storage_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	mock_database "github.com/mealbridge/mealbridge/internal/db/mocks"
	"github.com/mealbridge/mealbridge/internal/geo"
	"github.com/mealbridge/mealbridge/internal/notify"
	"github.com/mealbridge/mealbridge/internal/repository"
	"github.com/mealbridge/mealbridge/internal/storage"
	mock_storage "github.com/mealbridge/mealbridge/internal/storage/mocks"
)

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time {
	return c.t
}

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func geoPoint(lon, lat float64) geo.Point {
	return geo.Point{Longitude: lon, Latitude: lat}
}

type marketplaceMocks struct {
	db          *mock_database.MockDB
	tx          *mock_database.MockTx
	listings    *mock_storage.MockListingRepository
	checkpoints *mock_storage.MockCheckpointRepository
	users       *mock_storage.MockUserRepository
	images      *mock_storage.MockImageReleaser
}

func newTestMarketplace(ctrl *gomock.Controller) (*storage.Marketplace, marketplaceMocks) {
	m := marketplaceMocks{
		db:          mock_database.NewMockDB(ctrl),
		tx:          mock_database.NewMockTx(ctrl),
		listings:    mock_storage.NewMockListingRepository(ctrl),
		checkpoints: mock_storage.NewMockCheckpointRepository(ctrl),
		users:       mock_storage.NewMockUserRepository(ctrl),
		images:      mock_storage.NewMockImageReleaser(ctrl),
	}

	mp := storage.NewMarketplace(
		m.db, m.listings, m.checkpoints, m.users,
		notify.Nop{}, m.images, nil,
		fixedClock{testNow},
		storage.Options{
			ListingTTL:             2 * time.Hour,
			AutoBanMinRatings:      5,
			AutoBanRatingThreshold: 2.0,
		},
		zap.NewNop(),
	)
	return mp, m
}

// expectTx arms the begin/rollback pair every transactional path runs.
func (m marketplaceMocks) expectTx() {
	m.db.EXPECT().BeginTx(gomock.Any()).Return(m.tx, nil)
	m.tx.EXPECT().Rollback(gomock.Any()).Return(nil).AnyTimes()
}

func availableRow(id string) *repository.Listing {
	return &repository.Listing{
		ID:                 id,
		DonorID:            "donor-1",
		Title:              "Leftover rice",
		FoodType:           "cooked",
		QuantityValue:      10,
		QuantityUnit:       "servings",
		EstimatedKg:        3.0,
		Longitude:          77.59,
		Latitude:           12.97,
		Status:             "available",
		FallbackPreference: "receiver",
		FallbackOrder:      []string{"receiver", "animal_farm", "biocompost"},
		ExpiresAt:          testNow.Add(time.Hour),
		CreatedAt:          testNow.Add(-time.Hour),
		UpdatedAt:          testNow.Add(-time.Hour),
	}
}

func TestCreateListing(t *testing.T) {
	ctx := context.Background()

	t.Run("success with defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mp, m := newTestMarketplace(ctrl)

		var created *repository.Listing
		m.listings.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, l *repository.Listing) error {
				created = l
				return nil
			})

		listing, err := mp.CreateListing(ctx, storage.CreateListingInput{
			DonorID:  "donor-1",
			Title:    "Leftover rice",
			Quantity: storage.Quantity{Value: 10, Unit: storage.UnitServings},
			Location: geoPoint(77.59, 12.97),
			Address:  "12 MG Road",
			Pickup: storage.PickupWindow{
				Start: testNow.Add(10 * time.Minute),
				End:   testNow.Add(90 * time.Minute),
			},
		})
		require.NoError(t, err)

		assert.Equal(t, storage.StatusAvailable, listing.Status)
		assert.Equal(t, storage.FoodMixed, listing.FoodType)
		assert.Equal(t, storage.FallbackReceiver, listing.FallbackPreference)
		assert.Equal(t, storage.DefaultFallbackOrder, listing.FallbackOrder)
		assert.InDelta(t, 3.0, listing.EstimatedKg, 1e-9)
		assert.Equal(t, testNow.Add(2*time.Hour), listing.ExpiresAt)
		require.NotNil(t, created)
		assert.Equal(t, listing.ID, created.ID)
	})

	t.Run("missing title", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mp, _ := newTestMarketplace(ctrl)

		_, err := mp.CreateListing(ctx, storage.CreateListingInput{
			DonorID:  "donor-1",
			Quantity: storage.Quantity{Value: 1, Unit: storage.UnitKg},
			Location: geoPoint(77.59, 12.97),
			Pickup: storage.PickupWindow{
				Start: testNow,
				End:   testNow.Add(time.Hour),
			},
		})
		assert.ErrorIs(t, err, storage.ErrValidation)
	})

	t.Run("invalid coordinates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mp, _ := newTestMarketplace(ctrl)

		_, err := mp.CreateListing(ctx, storage.CreateListingInput{
			DonorID:  "donor-1",
			Title:    "Bread",
			Quantity: storage.Quantity{Value: 1, Unit: storage.UnitKg},
			Location: geoPoint(200, 12.97),
			Pickup: storage.PickupWindow{
				Start: testNow,
				End:   testNow.Add(time.Hour),
			},
		})
		assert.ErrorIs(t, err, storage.ErrValidation)
	})
}

func TestClaimListing(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mp, m := newTestMarketplace(ctrl)
		m.expectTx()

		row := availableRow("listing-1")
		m.listings.EXPECT().GetByIDTx(gomock.Any(), m.tx, "listing-1").Return(row, nil)
		m.listings.EXPECT().UpdateTx(gomock.Any(), m.tx, row).Return(nil)
		m.tx.EXPECT().Commit(gomock.Any()).Return(nil)
		m.users.EXPECT().GetByID(gomock.Any(), "receiver-1").Return(&repository.User{ID: "receiver-1", Name: "Maya"}, nil)

		listing, err := mp.ClaimListing(ctx, "listing-1", "receiver-1")
		require.NoError(t, err)

		assert.Equal(t, storage.StatusClaimed, listing.Status)
		require.NotNil(t, listing.ClaimedBy)
		assert.Equal(t, "receiver-1", *listing.ClaimedBy)
		require.NotNil(t, listing.ClaimedAt)
		assert.Equal(t, testNow, *listing.ClaimedAt)
	})

	t.Run("past deadline expires the listing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mp, m := newTestMarketplace(ctrl)
		m.expectTx()

		row := availableRow("listing-1")
		row.ExpiresAt = testNow.Add(-time.Minute)
		m.listings.EXPECT().GetByIDTx(gomock.Any(), m.tx, "listing-1").Return(row, nil)
		m.listings.EXPECT().UpdateTx(gomock.Any(), m.tx, row).Return(nil)
		m.tx.EXPECT().Commit(gomock.Any()).Return(nil)

		_, err := mp.ClaimListing(ctx, "listing-1", "receiver-1")
		assert.ErrorIs(t, err, storage.ErrExpired)
		assert.Equal(t, "expired", row.Status)
		assert.True(t, row.IsExpired)
	})

	t.Run("already claimed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mp, m := newTestMarketplace(ctrl)
		m.expectTx()

		row := availableRow("listing-1")
		row.Status = "claimed"
		m.listings.EXPECT().GetByIDTx(gomock.Any(), m.tx, "listing-1").Return(row, nil)

		_, err := mp.ClaimListing(ctx, "listing-1", "receiver-2")
		assert.ErrorIs(t, err, storage.ErrInvalidTransition)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mp, m := newTestMarketplace(ctrl)
		m.expectTx()

		m.listings.EXPECT().GetByIDTx(gomock.Any(), m.tx, "missing").Return(nil, repository.ErrObjectNotFound)

		_, err := mp.ClaimListing(ctx, "missing", "receiver-1")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestConfirmClaim(t *testing.T) {
	ctx := context.Background()

	claimedRow := func() *repository.Listing {
		row := availableRow("listing-1")
		row.Status = "claimed"
		receiver := "receiver-1"
		claimedAt := testNow.Add(-10 * time.Minute)
		row.ClaimedBy = &receiver
		row.ClaimedAt = &claimedAt
		return row
	}

	t.Run("confirm", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mp, m := newTestMarketplace(ctrl)
		m.expectTx()

		row := claimedRow()
		m.listings.EXPECT().GetByIDTx(gomock.Any(), m.tx, "listing-1").Return(row, nil)
		m.listings.EXPECT().UpdateTx(gomock.Any(), m.tx, row).Return(nil)
		m.tx.EXPECT().Commit(gomock.Any()).Return(nil)
		m.users.EXPECT().GetByID(gomock.Any(), "donor-1").Return(&repository.User{ID: "donor-1", Name: "Ravi"}, nil)

		listing, err := mp.ConfirmClaim(ctx, "listing-1", "donor-1", storage.ActionConfirm)
		require.NoError(t, err)

		assert.Equal(t, storage.StatusConfirmed, listing.Status)
		require.NotNil(t, listing.ConfirmedAt)
		assert.Equal(t, testNow, *listing.ConfirmedAt)
	})

	t.Run("reject returns the listing to the pool", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mp, m := newTestMarketplace(ctrl)
		m.expectTx()

		row := claimedRow()
		originalDeadline := row.ExpiresAt
		m.listings.EXPECT().GetByIDTx(gomock.Any(), m.tx, "listing-1").Return(row, nil)
		m.listings.EXPECT().UpdateTx(gomock.Any(), m.tx, row).Return(nil)
		m.tx.EXPECT().Commit(gomock.Any()).Return(nil)

		listing, err := mp.ConfirmClaim(ctx, "listing-1", "donor-1", storage.ActionReject)
		require.NoError(t, err)

		assert.Equal(t, storage.StatusAvailable, listing.Status)
		assert.Nil(t, listing.ClaimedBy)
		assert.Nil(t, listing.ClaimedAt)
		// rejection must not buy the listing more time
		assert.Equal(t, originalDeadline, listing.ExpiresAt)
	})

	t.Run("only the owner may confirm", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mp, m := newTestMarketplace(ctrl)
		m.expectTx()

		row := claimedRow()
		m.listings.EXPECT().GetByIDTx(gomock.Any(), m.tx, "listing-1").Return(row, nil)

		_, err := mp.ConfirmClaim(ctx, "listing-1", "someone-else", storage.ActionConfirm)
		assert.ErrorIs(t, err, storage.ErrForbidden)
	})

	t.Run("unknown action", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mp, _ := newTestMarketplace(ctrl)

		_, err := mp.ConfirmClaim(ctx, "listing-1", "donor-1", "maybe")
		assert.ErrorIs(t, err, storage.ErrValidation)
	})
}

func TestCompleteListing(t *testing.T) {
	ctx := context.Background()

	confirmedRow := func() *repository.Listing {
		row := availableRow("listing-1")
		row.Status = "confirmed"
		row.EstimatedKg = 5.0
		receiver := "receiver-1"
		row.ClaimedBy = &receiver
		return row
	}

	t.Run("donor completes and earns points", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mp, m := newTestMarketplace(ctrl)
		m.expectTx()

		row := confirmedRow()
		m.listings.EXPECT().GetByIDTx(gomock.Any(), m.tx, "listing-1").Return(row, nil)
		m.listings.EXPECT().UpdateTx(gomock.Any(), m.tx, row).Return(nil)
		m.users.EXPECT().AddDonationStatsTx(gomock.Any(), m.tx, "donor-1", 50, 5.0, testNow).Return(nil)
		m.users.EXPECT().GetByID(gomock.Any(), "donor-1").Return(&repository.User{ID: "donor-1", Points: 0}, nil)
		m.users.EXPECT().AddBadgeTx(gomock.Any(), m.tx, gomock.Any()).Return(nil).Times(2) // 10 and 50 point badges
		m.users.EXPECT().IncrementReceivedTx(gomock.Any(), m.tx, "receiver-1", testNow).Return(nil)
		m.tx.EXPECT().Commit(gomock.Any()).Return(nil)

		listing, points, err := mp.CompleteListing(ctx, "listing-1", "donor-1")
		require.NoError(t, err)

		assert.Equal(t, storage.StatusCompleted, listing.Status)
		assert.Equal(t, 50, points)
	})

	t.Run("fallback routed listing has no receiver stats", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mp, m := newTestMarketplace(ctrl)
		m.expectTx()

		row := confirmedRow()
		row.ClaimedBy = nil
		row.FallbackTriggered = true
		m.listings.EXPECT().GetByIDTx(gomock.Any(), m.tx, "listing-1").Return(row, nil)
		m.listings.EXPECT().UpdateTx(gomock.Any(), m.tx, row).Return(nil)
		m.users.EXPECT().AddDonationStatsTx(gomock.Any(), m.tx, "donor-1", 50, 5.0, testNow).Return(nil)
		m.users.EXPECT().GetByID(gomock.Any(), "donor-1").Return(&repository.User{ID: "donor-1", Points: 100}, nil)
		m.users.EXPECT().AddBadgeTx(gomock.Any(), m.tx, gomock.Any()).Return(nil).Times(3)
		m.tx.EXPECT().Commit(gomock.Any()).Return(nil)

		_, points, err := mp.CompleteListing(ctx, "listing-1", "donor-1")
		require.NoError(t, err)
		assert.Equal(t, 50, points)
	})

	t.Run("stranger may not complete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mp, m := newTestMarketplace(ctrl)
		m.expectTx()

		row := confirmedRow()
		m.listings.EXPECT().GetByIDTx(gomock.Any(), m.tx, "listing-1").Return(row, nil)

		_, _, err := mp.CompleteListing(ctx, "listing-1", "someone-else")
		assert.ErrorIs(t, err, storage.ErrForbidden)
	})

	t.Run("must be confirmed first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mp, m := newTestMarketplace(ctrl)
		m.expectTx()

		row := confirmedRow()
		row.Status = "claimed"
		m.listings.EXPECT().GetByIDTx(gomock.Any(), m.tx, "listing-1").Return(row, nil)

		_, _, err := mp.CompleteListing(ctx, "listing-1", "donor-1")
		assert.ErrorIs(t, err, storage.ErrInvalidTransition)
	})
}

func TestCancelListing(t *testing.T) {
	ctx := context.Background()

	t.Run("owner cancels and images are released", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mp, m := newTestMarketplace(ctrl)
		m.expectTx()

		row := availableRow("listing-1")
		m.listings.EXPECT().GetByIDTx(gomock.Any(), m.tx, "listing-1").Return(row, nil)
		m.listings.EXPECT().UpdateTx(gomock.Any(), m.tx, row).Return(nil)
		m.tx.EXPECT().Commit(gomock.Any()).Return(nil)
		m.images.EXPECT().ReleaseImages(gomock.Any(), "listing-1").Return(nil)

		listing, err := mp.CancelListing(ctx, "listing-1", "donor-1")
		require.NoError(t, err)
		assert.Equal(t, storage.StatusCancelled, listing.Status)
	})

	t.Run("terminal listing cannot be cancelled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mp, m := newTestMarketplace(ctrl)
		m.expectTx()

		row := availableRow("listing-1")
		row.Status = "completed"
		m.listings.EXPECT().GetByIDTx(gomock.Any(), m.tx, "listing-1").Return(row, nil)

		_, err := mp.CancelListing(ctx, "listing-1", "donor-1")
		assert.ErrorIs(t, err, storage.ErrInvalidTransition)
	})

	t.Run("only the owner may cancel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mp, m := newTestMarketplace(ctrl)
		m.expectTx()

		row := availableRow("listing-1")
		m.listings.EXPECT().GetByIDTx(gomock.Any(), m.tx, "listing-1").Return(row, nil)

		_, err := mp.CancelListing(ctx, "listing-1", "someone-else")
		assert.ErrorIs(t, err, storage.ErrForbidden)
	})
}

func TestExpireListing(t *testing.T) {
	ctx := context.Background()

	t.Run("moves an overdue listing to expired", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mp, m := newTestMarketplace(ctrl)
		m.expectTx()

		row := availableRow("listing-1")
		row.ExpiresAt = testNow.Add(-time.Minute)
		m.listings.EXPECT().GetByIDTx(gomock.Any(), m.tx, "listing-1").Return(row, nil)
		m.listings.EXPECT().UpdateTx(gomock.Any(), m.tx, row).Return(nil)
		m.tx.EXPECT().Commit(gomock.Any()).Return(nil)

		expired, err := mp.ExpireListing(ctx, "listing-1")
		require.NoError(t, err)
		assert.True(t, expired)
		assert.Equal(t, "expired", row.Status)
	})

	t.Run("second call is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mp, m := newTestMarketplace(ctrl)
		m.expectTx()

		row := availableRow("listing-1")
		row.Status = "expired"
		row.IsExpired = true
		row.ExpiresAt = testNow.Add(-time.Minute)
		m.listings.EXPECT().GetByIDTx(gomock.Any(), m.tx, "listing-1").Return(row, nil)

		expired, err := mp.ExpireListing(ctx, "listing-1")
		require.NoError(t, err)
		assert.False(t, expired)
	})

	t.Run("listing still inside its deadline is left alone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mp, m := newTestMarketplace(ctrl)
		m.expectTx()

		row := availableRow("listing-1")
		m.listings.EXPECT().GetByIDTx(gomock.Any(), m.tx, "listing-1").Return(row, nil)

		expired, err := mp.ExpireListing(ctx, "listing-1")
		require.NoError(t, err)
		assert.False(t, expired)
	})
}

func TestApplyFallback(t *testing.T) {
	ctx := context.Background()

	fridge := &storage.Checkpoint{ID: "cp-1", Type: storage.CheckpointFridge}

	t.Run("routes an unclaimed listing into the checkpoint", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mp, m := newTestMarketplace(ctrl)
		m.expectTx()

		row := availableRow("listing-1")
		m.listings.EXPECT().GetByIDTx(gomock.Any(), m.tx, "listing-1").Return(row, nil)
		m.listings.EXPECT().UpdateTx(gomock.Any(), m.tx, row).Return(nil)
		m.checkpoints.EXPECT().AddReceivedTx(gomock.Any(), m.tx, "cp-1", 3.0, testNow).Return(nil)
		m.tx.EXPECT().Commit(gomock.Any()).Return(nil)

		listing, err := mp.ApplyFallback(ctx, "listing-1", fridge)
		require.NoError(t, err)

		assert.Equal(t, storage.StatusConfirmed, listing.Status)
		assert.True(t, listing.FallbackTriggered)
		require.NotNil(t, listing.FallbackAt)
	})

	t.Run("loses cleanly to a concurrent claim", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mp, m := newTestMarketplace(ctrl)
		m.expectTx()

		row := availableRow("listing-1")
		row.Status = "claimed"
		m.listings.EXPECT().GetByIDTx(gomock.Any(), m.tx, "listing-1").Return(row, nil)

		_, err := mp.ApplyFallback(ctx, "listing-1", fridge)
		assert.ErrorIs(t, err, storage.ErrInvalidTransition)
	})

	t.Run("never fires twice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mp, m := newTestMarketplace(ctrl)
		m.expectTx()

		row := availableRow("listing-1")
		row.FallbackTriggered = true
		m.listings.EXPECT().GetByIDTx(gomock.Any(), m.tx, "listing-1").Return(row, nil)

		_, err := mp.ApplyFallback(ctx, "listing-1", fridge)
		assert.ErrorIs(t, err, storage.ErrInvalidTransition)
	})
}
