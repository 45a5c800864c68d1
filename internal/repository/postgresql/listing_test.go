package postgresql_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	mock_database "github.com/mealbridge/mealbridge/internal/db/mocks"
	"github.com/mealbridge/mealbridge/internal/repository"
	"github.com/mealbridge/mealbridge/internal/repository/postgresql"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func testListing() *repository.Listing {
	return &repository.Listing{
		ID:                 "listing-123",
		DonorID:            "donor-456",
		Title:              "Leftover rice",
		FoodType:           "cooked",
		QuantityValue:      10,
		QuantityUnit:       "servings",
		EstimatedKg:        3.0,
		Longitude:          77.5946,
		Latitude:           12.9716,
		Address:            "12 MG Road",
		PickupStart:        testNow,
		PickupEnd:          testNow.Add(2 * time.Hour),
		Status:             "available",
		FallbackPreference: "receiver",
		FallbackOrder:      []string{"receiver", "animal_farm", "biocompost"},
		ExpiresAt:          testNow.Add(2 * time.Hour),
		CreatedAt:          testNow,
		UpdatedAt:          testNow,
	}
}

// insertMatchers covers the full 33-column insert argument list.
func insertMatchers() []any {
	args := make([]any, 33)
	for i := range args {
		args[i] = gomock.Any()
	}
	return args
}

func TestListingRepo_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewListingRepo(mockDB)

		l := testListing()
		args := insertMatchers()
		args[0] = gomock.Eq(l.ID)
		args[1] = gomock.Eq(l.DonorID)
		args[2] = gomock.Eq(l.Title)
		mockDB.EXPECT().Exec(gomock.Any(), gomock.Any(), args...).Return(nil, nil)

		err := repo.Create(ctx, l)
		assert.NoError(t, err)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewListingRepo(mockDB)

		expectedErr := errors.New("database error")
		mockDB.EXPECT().Exec(gomock.Any(), gomock.Any(), insertMatchers()...).Return(nil, expectedErr)

		err := repo.Create(ctx, testListing())
		assert.Equal(t, expectedErr, err)
	})
}

func TestListingRepo_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("listing found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewListingRepo(mockDB)

		expected := testListing()
		mockDB.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq(expected.ID)).
			DoAndReturn(func(_ context.Context, dest *repository.Listing, _ string, _ string) error {
				*dest = *expected
				return nil
			})

		got, err := repo.GetByID(ctx, expected.ID)
		assert.NoError(t, err)
		assert.Equal(t, expected, got)
	})

	t.Run("listing not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewListingRepo(mockDB)

		mockDB.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(pgx.ErrNoRows)

		got, err := repo.GetByID(ctx, "non-existent-id")
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
		assert.Nil(t, got)
	})
}

func TestListingRepo_GetByIDTx(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := mock_database.NewMockDB(ctrl)
	mockTx := mock_database.NewMockTx(ctrl)
	repo := postgresql.NewListingRepo(mockDB)

	expected := testListing()
	mockTx.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq(expected.ID)).
		DoAndReturn(func(_ context.Context, dest *repository.Listing, query string, _ string) error {
			assert.Contains(t, query, "FOR UPDATE")
			*dest = *expected
			return nil
		})

	got, err := repo.GetByIDTx(ctx, mockTx, expected.ID)
	assert.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestListingRepo_List(t *testing.T) {
	ctx := context.Background()

	t.Run("filters are appended only when set", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewListingRepo(mockDB)

		mockDB.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq("available"), gomock.Eq(50)).
			DoAndReturn(func(_ context.Context, dest *[]*repository.Listing, query string, _ ...interface{}) error {
				assert.Contains(t, query, "status = $1")
				assert.NotContains(t, query, "food_type")
				*dest = []*repository.Listing{testListing()}
				return nil
			})

		got, err := repo.List(ctx, "available", "", 50)
		assert.NoError(t, err)
		assert.Len(t, got, 1)
	})
}

func TestListingRepo_GetExpirable(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := mock_database.NewMockDB(ctrl)
	repo := postgresql.NewListingRepo(mockDB)

	mockDB.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq(testNow)).
		DoAndReturn(func(_ context.Context, dest *[]*repository.Listing, query string, _ ...interface{}) error {
			assert.Contains(t, query, "is_expired = false")
			*dest = nil
			return nil
		})

	got, err := repo.GetExpirable(ctx, testNow)
	assert.NoError(t, err)
	assert.Empty(t, got)
}
