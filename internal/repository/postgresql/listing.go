package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4"

	"github.com/mealbridge/mealbridge/internal/db"
	"github.com/mealbridge/mealbridge/internal/repository"
)

const listingColumns = `
        id, donor_id, title, description, food_type, quantity_value, quantity_unit,
        estimated_kg, longitude, latitude, address, pickup_start, pickup_end, status,
        claimed_by, claimed_at, confirmed_at, completed_at,
        fallback_preference, fallback_order, fallback_triggered, fallback_at,
        expires_at, is_expired,
        donor_rating, donor_feedback, donor_rated_at,
        receiver_rating, receiver_feedback, receiver_rated_at,
        views, created_at, updated_at`

type ListingRepo struct {
	db db.DB
}

func NewListingRepo(db db.DB) *ListingRepo {
	return &ListingRepo{db: db}
}

func (r *ListingRepo) Create(ctx context.Context, l *repository.Listing) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO listings (`+listingColumns+`)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
                $15, $16, $17, $18, $19, $20, $21, $22, $23, $24,
                $25, $26, $27, $28, $29, $30, $31, $32, $33)
    `, l.ID, l.DonorID, l.Title, l.Description, l.FoodType, l.QuantityValue, l.QuantityUnit,
		l.EstimatedKg, l.Longitude, l.Latitude, l.Address, l.PickupStart, l.PickupEnd, l.Status,
		l.ClaimedBy, l.ClaimedAt, l.ConfirmedAt, l.CompletedAt,
		l.FallbackPreference, l.FallbackOrder, l.FallbackTriggered, l.FallbackAt,
		l.ExpiresAt, l.IsExpired,
		l.DonorRating, l.DonorFeedback, l.DonorRatedAt,
		l.ReceiverRating, l.ReceiverFeedback, l.ReceiverRatedAt,
		l.Views, l.CreatedAt, l.UpdatedAt)
	return err
}

func (r *ListingRepo) GetByID(ctx context.Context, id string) (*repository.Listing, error) {
	var l repository.Listing
	err := r.db.Get(ctx, &l, "SELECT * FROM listings WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &l, nil
}

// GetByIDTx locks the listing row for the remainder of the transaction so
// status re-checks and the subsequent update are atomic.
func (r *ListingRepo) GetByIDTx(ctx context.Context, tx db.Tx, id string) (*repository.Listing, error) {
	var l repository.Listing
	err := tx.Get(ctx, &l, "SELECT * FROM listings WHERE id = $1 FOR UPDATE", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &l, nil
}

func (r *ListingRepo) UpdateTx(ctx context.Context, tx db.Tx, l *repository.Listing) error {
	_, err := tx.Exec(ctx, `
        UPDATE listings
        SET
            status = $1,
            claimed_by = $2,
            claimed_at = $3,
            confirmed_at = $4,
            completed_at = $5,
            fallback_triggered = $6,
            fallback_at = $7,
            is_expired = $8,
            donor_rating = $9,
            donor_feedback = $10,
            donor_rated_at = $11,
            receiver_rating = $12,
            receiver_feedback = $13,
            receiver_rated_at = $14,
            updated_at = $15
        WHERE id = $16
    `, l.Status, l.ClaimedBy, l.ClaimedAt, l.ConfirmedAt, l.CompletedAt,
		l.FallbackTriggered, l.FallbackAt, l.IsExpired,
		l.DonorRating, l.DonorFeedback, l.DonorRatedAt,
		l.ReceiverRating, l.ReceiverFeedback, l.ReceiverRatedAt,
		l.UpdatedAt, l.ID)
	return err
}

func (r *ListingRepo) IncrementViews(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, "UPDATE listings SET views = views + 1 WHERE id = $1", id)
	return err
}

// List returns listings filtered by status and food type, newest first.
// Empty filter values are ignored.
func (r *ListingRepo) List(ctx context.Context, status, foodType string, limit int) ([]*repository.Listing, error) {
	query := "SELECT * FROM listings WHERE is_expired = false"
	args := []interface{}{}

	if status != "" {
		args = append(args, status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if foodType != "" {
		args = append(args, foodType)
		query += fmt.Sprintf(" AND food_type = $%d", len(args))
	}

	query += " ORDER BY created_at DESC"

	if limit > 0 {
		args = append(args, limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	var listings []*repository.Listing
	err := r.db.Select(ctx, &listings, query, args...)
	return listings, err
}

func (r *ListingRepo) GetByDonorID(ctx context.Context, donorID string) ([]*repository.Listing, error) {
	var listings []*repository.Listing
	err := r.db.Select(ctx, &listings,
		"SELECT * FROM listings WHERE donor_id = $1 ORDER BY created_at DESC", donorID)
	return listings, err
}

func (r *ListingRepo) GetByClaimedBy(ctx context.Context, userID string) ([]*repository.Listing, error) {
	var listings []*repository.Listing
	err := r.db.Select(ctx, &listings,
		"SELECT * FROM listings WHERE claimed_by = $1 ORDER BY claimed_at DESC", userID)
	return listings, err
}

// GetExpirable selects listings due for the expiration pass.
func (r *ListingRepo) GetExpirable(ctx context.Context, now time.Time) ([]*repository.Listing, error) {
	var listings []*repository.Listing
	err := r.db.Select(ctx, &listings, `
        SELECT * FROM listings
        WHERE status = 'available' AND expires_at <= $1 AND is_expired = false
        ORDER BY expires_at ASC
    `, now)
	if err != nil {
		return nil, fmt.Errorf("failed to get expirable listings: %w", err)
	}
	return listings, nil
}

// GetFallbackCandidates selects unclaimed listings whose grace period elapsed
// before the cutoff and that have not been routed yet.
func (r *ListingRepo) GetFallbackCandidates(ctx context.Context, cutoff time.Time) ([]*repository.Listing, error) {
	var listings []*repository.Listing
	err := r.db.Select(ctx, &listings, `
        SELECT * FROM listings
        WHERE status = 'available'
          AND created_at <= $1
          AND fallback_triggered = false
          AND fallback_preference != 'none'
        ORDER BY created_at ASC
    `, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to get fallback candidates: %w", err)
	}
	return listings, nil
}

// GetCompletedRatedAsDonor returns the user's completed donations that carry
// a receiver rating (ratings the user received in the donor role).
func (r *ListingRepo) GetCompletedRatedAsDonor(ctx context.Context, userID string) ([]*repository.Listing, error) {
	var listings []*repository.Listing
	err := r.db.Select(ctx, &listings, `
        SELECT * FROM listings
        WHERE donor_id = $1 AND status = 'completed' AND receiver_rating IS NOT NULL
    `, userID)
	return listings, err
}

// GetCompletedRatedAsReceiver returns the user's completed claims that carry
// a donor rating (ratings the user received in the receiver role).
func (r *ListingRepo) GetCompletedRatedAsReceiver(ctx context.Context, userID string) ([]*repository.Listing, error) {
	var listings []*repository.Listing
	err := r.db.Select(ctx, &listings, `
        SELECT * FROM listings
        WHERE claimed_by = $1 AND status = 'completed' AND donor_rating IS NOT NULL
    `, userID)
	return listings, err
}

// GetAllActive returns listings in a non-terminal status, for cache warmup.
func (r *ListingRepo) GetAllActive(ctx context.Context) ([]*repository.Listing, error) {
	var listings []*repository.Listing
	err := r.db.Select(ctx, &listings, `
        SELECT * FROM listings
        WHERE status IN ('available', 'claimed', 'confirmed')
        ORDER BY created_at ASC
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to get active listings: %w", err)
	}
	return listings, nil
}
