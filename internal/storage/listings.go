package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mealbridge/mealbridge/internal/db"
	"github.com/mealbridge/mealbridge/internal/geo"
	"github.com/mealbridge/mealbridge/internal/metrics"
	"github.com/mealbridge/mealbridge/internal/notify"
	"github.com/mealbridge/mealbridge/internal/repository"
)

type CreateListingInput struct {
	DonorID            string
	Title              string
	Description        string
	FoodType           FoodType
	Quantity           Quantity
	Location           geo.Point
	Address            string
	Pickup             PickupWindow
	FallbackPreference FallbackTarget
	FallbackOrder      []FallbackTarget
}

func (in *CreateListingInput) validate() error {
	if in.Title == "" {
		return validationf("title is required")
	}
	if in.Quantity.Value <= 0 {
		return validationf("quantity value must be positive, got %v", in.Quantity.Value)
	}
	if !in.Location.Valid() {
		return validationf("invalid coordinates: longitude must be between -180 and 180, latitude between -90 and 90")
	}
	if in.Pickup.Start.IsZero() || in.Pickup.End.IsZero() || !in.Pickup.End.After(in.Pickup.Start) {
		return validationf("pickup window end must be after start")
	}
	if in.FoodType != "" && !ValidFoodType(in.FoodType) {
		return validationf("unknown food type %q", in.FoodType)
	}
	if in.FallbackPreference != "" && in.FallbackPreference != FallbackNone && !ValidFallbackTarget(in.FallbackPreference) {
		return validationf("unknown fallback preference %q", in.FallbackPreference)
	}
	for _, t := range in.FallbackOrder {
		if !ValidFallbackTarget(t) {
			return validationf("unknown fallback order entry %q", t)
		}
	}
	return nil
}

// CreateListing opens a new listing in status available, with the estimated
// mass derived from its quantity and the expiration deadline set from the
// configured TTL.
func (m *Marketplace) CreateListing(ctx context.Context, in CreateListingInput) (*Listing, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	now := m.clock.Now()

	foodType := in.FoodType
	if foodType == "" {
		foodType = FoodMixed
	}
	preference := in.FallbackPreference
	if preference == "" {
		preference = FallbackReceiver
	}
	order := in.FallbackOrder
	if len(order) == 0 {
		order = DefaultFallbackOrder
	}

	rawOrder := make([]string, len(order))
	for i, t := range order {
		rawOrder[i] = string(t)
	}

	row := &repository.Listing{
		ID:            uuid.New().String(),
		DonorID:       in.DonorID,
		Title:         in.Title,
		Description:   in.Description,
		FoodType:      string(foodType),
		QuantityValue: in.Quantity.Value,
		QuantityUnit:  string(in.Quantity.Unit),
		EstimatedKg:   EstimateKg(in.Quantity),
		Longitude:     in.Location.Longitude,
		Latitude:      in.Location.Latitude,
		Address:       in.Address,
		PickupStart:   in.Pickup.Start,
		PickupEnd:     in.Pickup.End,
		Status:        string(StatusAvailable),

		FallbackPreference: string(preference),
		FallbackOrder:      rawOrder,

		ExpiresAt: now.Add(m.opts.ListingTTL),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := m.listings.Create(ctx, row); err != nil {
		return nil, fmt.Errorf("failed to create listing: %w", err)
	}

	metrics.ListingsCreatedTotal.Inc()
	listing := toDomainListing(row)
	m.cacheSet(listing)
	return listing, nil
}

// GetListing fetches a listing and bumps its view counter (best-effort).
func (m *Marketplace) GetListing(ctx context.Context, id string) (*Listing, error) {
	row, err := m.listings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, fmt.Errorf("%w: listing %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}

	if err := m.listings.IncrementViews(ctx, id); err != nil {
		m.logger.Warn("failed to increment listing views", zap.String("listing_id", id), zap.Error(err))
	} else {
		row.Views++
	}

	return toDomainListing(row), nil
}

type ListFilter struct {
	Status   Status
	FoodType FoodType
	Near     *geo.Point
	RadiusM  float64
	Limit    int
}

// ListListings returns non-expired listings matching the filter. When Near is
// set, results are restricted to the radius (default 10 km).
func (m *Marketplace) ListListings(ctx context.Context, f ListFilter) ([]*Listing, error) {
	status := f.Status
	if status == "" {
		status = StatusAvailable
	}
	limit := f.Limit
	if limit <= 0 || limit > 100 {
		limit = 100
	}

	rows, err := m.listings.List(ctx, string(status), string(f.FoodType), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list listings: %w", err)
	}

	listings := toDomainListings(rows)
	if f.Near == nil {
		return listings, nil
	}

	radius := f.RadiusM
	if radius <= 0 {
		radius = 10000
	}
	filtered := listings[:0]
	for _, l := range listings {
		if geo.DistanceM(*f.Near, l.Location) <= radius {
			filtered = append(filtered, l)
		}
	}
	return filtered, nil
}

func (m *Marketplace) MyDonations(ctx context.Context, donorID string) ([]*Listing, error) {
	rows, err := m.listings.GetByDonorID(ctx, donorID)
	if err != nil {
		return nil, fmt.Errorf("failed to get donations: %w", err)
	}
	return toDomainListings(rows), nil
}

func (m *Marketplace) MyClaims(ctx context.Context, userID string) ([]*Listing, error) {
	rows, err := m.listings.GetByClaimedBy(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get claims: %w", err)
	}
	return toDomainListings(rows), nil
}

// ClaimListing moves an available, unexpired listing to claimed. A listing
// found past its deadline is marked expired in the same transaction and the
// claim fails with ErrExpired.
func (m *Marketplace) ClaimListing(ctx context.Context, listingID, receiverID string) (*Listing, error) {
	now := m.clock.Now()

	tx, err := m.db.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(context.Background()) }()

	row, err := m.listings.GetByIDTx(ctx, tx, listingID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, fmt.Errorf("%w: listing %s", ErrNotFound, listingID)
		}
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}

	if row.Status != string(StatusAvailable) {
		return nil, invalidTransitionf("listing is not available for claiming (status %s)", row.Status)
	}

	if !now.Before(row.ExpiresAt) {
		row.Status = string(StatusExpired)
		row.IsExpired = true
		row.UpdatedAt = now
		if err := m.listings.UpdateTx(ctx, tx, row); err != nil {
			return nil, fmt.Errorf("failed to expire listing: %w", err)
		}
		if err := tx.Commit(ctx); err != nil {
			return nil, fmt.Errorf("failed to commit expiration: %w", err)
		}
		m.cacheDelete(row.ID)
		return nil, fmt.Errorf("%w: listing %s", ErrExpired, listingID)
	}

	row.Status = string(StatusClaimed)
	row.ClaimedBy = &receiverID
	row.ClaimedAt = &now
	row.UpdatedAt = now

	if err := m.listings.UpdateTx(ctx, tx, row); err != nil {
		return nil, fmt.Errorf("failed to claim listing: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	metrics.ListingsClaimedTotal.Inc()
	listing := toDomainListing(row)
	m.cacheSet(listing)

	n := notify.ListingClaimed(m.userName(ctx, receiverID), row.Title)
	n.RecipientID = row.DonorID
	n.SenderID = receiverID
	n.ListingID = row.ID
	m.notifier.Notify(ctx, n)

	return listing, nil
}

type ConfirmAction string

const (
	ActionConfirm ConfirmAction = "confirm"
	ActionReject  ConfirmAction = "reject"
)

// ConfirmClaim lets the owning donor accept or reject a pending claim.
// Rejecting returns the listing to available without extending its deadline.
func (m *Marketplace) ConfirmClaim(ctx context.Context, listingID, donorID string, action ConfirmAction) (*Listing, error) {
	if action != ActionConfirm && action != ActionReject {
		return nil, validationf("unknown action %q", action)
	}

	now := m.clock.Now()

	tx, err := m.db.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(context.Background()) }()

	row, err := m.listings.GetByIDTx(ctx, tx, listingID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, fmt.Errorf("%w: listing %s", ErrNotFound, listingID)
		}
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}

	if row.DonorID != donorID {
		return nil, forbiddenf("only the listing owner may confirm or reject a claim")
	}
	if row.Status != string(StatusClaimed) {
		return nil, invalidTransitionf("listing is not in claimed status (status %s)", row.Status)
	}

	receiverID := ""
	if row.ClaimedBy != nil {
		receiverID = *row.ClaimedBy
	}

	if action == ActionConfirm {
		row.Status = string(StatusConfirmed)
		row.ConfirmedAt = &now
	} else {
		row.Status = string(StatusAvailable)
		row.ClaimedBy = nil
		row.ClaimedAt = nil
	}
	row.UpdatedAt = now

	if err := m.listings.UpdateTx(ctx, tx, row); err != nil {
		return nil, fmt.Errorf("failed to update listing: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit confirmation: %w", err)
	}

	listing := toDomainListing(row)
	m.cacheSet(listing)

	if receiverID != "" {
		var n notify.Notification
		if action == ActionConfirm {
			n = notify.ClaimConfirmed(m.userName(ctx, donorID), row.Title)
		} else {
			n = notify.ClaimRejected(row.Title)
		}
		n.RecipientID = receiverID
		n.SenderID = donorID
		n.ListingID = row.ID
		m.notifier.Notify(ctx, n)
	}

	return listing, nil
}

// CompleteListing closes out a confirmed pickup. The donor earns points and
// counters; badge thresholds are re-evaluated; the claiming receiver's
// received-count increments. A fallback-routed listing has no receiver, so
// the receiver-stats step is skipped.
func (m *Marketplace) CompleteListing(ctx context.Context, listingID, actorID string) (*Listing, int, error) {
	now := m.clock.Now()

	tx, err := m.db.BeginTx(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(context.Background()) }()

	row, err := m.listings.GetByIDTx(ctx, tx, listingID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, 0, fmt.Errorf("%w: listing %s", ErrNotFound, listingID)
		}
		return nil, 0, fmt.Errorf("failed to get listing: %w", err)
	}

	isDonor := row.DonorID == actorID
	isReceiver := row.ClaimedBy != nil && *row.ClaimedBy == actorID
	if !isDonor && !isReceiver {
		return nil, 0, forbiddenf("only the donor or the claiming receiver may complete a listing")
	}
	if row.Status != string(StatusConfirmed) {
		return nil, 0, invalidTransitionf("listing must be confirmed before completion (status %s)", row.Status)
	}

	row.Status = string(StatusCompleted)
	row.CompletedAt = &now
	row.UpdatedAt = now

	if err := m.listings.UpdateTx(ctx, tx, row); err != nil {
		return nil, 0, fmt.Errorf("failed to update listing: %w", err)
	}

	points := CompletionPoints(row.EstimatedKg)
	if err := m.users.AddDonationStatsTx(ctx, tx, row.DonorID, points, row.EstimatedKg, now); err != nil {
		return nil, 0, fmt.Errorf("failed to award donor points: %w", err)
	}
	if err := m.awardBadgesTx(ctx, tx, row.DonorID, points, now); err != nil {
		return nil, 0, err
	}

	if row.ClaimedBy != nil {
		if err := m.users.IncrementReceivedTx(ctx, tx, *row.ClaimedBy, now); err != nil {
			return nil, 0, fmt.Errorf("failed to update receiver stats: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, 0, fmt.Errorf("failed to commit completion: %w", err)
	}

	metrics.ListingsCompletedTotal.Inc()
	m.cacheDelete(row.ID)

	n := notify.ListingCompleted(row.Title, points)
	n.RecipientID = row.DonorID
	n.ListingID = row.ID
	m.notifier.Notify(ctx, n)

	return toDomainListing(row), points, nil
}

// CancelListing withdraws a listing from any non-terminal status. Hosted
// images are released best-effort after the transition commits.
func (m *Marketplace) CancelListing(ctx context.Context, listingID, donorID string) (*Listing, error) {
	now := m.clock.Now()

	tx, err := m.db.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(context.Background()) }()

	row, err := m.listings.GetByIDTx(ctx, tx, listingID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, fmt.Errorf("%w: listing %s", ErrNotFound, listingID)
		}
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}

	if row.DonorID != donorID {
		return nil, forbiddenf("only the listing owner may cancel it")
	}
	if Status(row.Status).Terminal() {
		return nil, invalidTransitionf("listing is already in terminal status %s", row.Status)
	}

	row.Status = string(StatusCancelled)
	row.UpdatedAt = now

	if err := m.listings.UpdateTx(ctx, tx, row); err != nil {
		return nil, fmt.Errorf("failed to cancel listing: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit cancellation: %w", err)
	}

	m.cacheDelete(row.ID)

	if m.images != nil {
		if err := m.images.ReleaseImages(ctx, row.ID); err != nil {
			m.logger.Warn("failed to release listing images", zap.String("listing_id", row.ID), zap.Error(err))
		}
	}

	return toDomainListing(row), nil
}

// ExpireListing runs the idempotent expiration transition: it returns true
// only when this call moved the listing from available to expired.
func (m *Marketplace) ExpireListing(ctx context.Context, listingID string) (bool, error) {
	now := m.clock.Now()

	tx, err := m.db.BeginTx(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(context.Background()) }()

	row, err := m.listings.GetByIDTx(ctx, tx, listingID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return false, fmt.Errorf("%w: listing %s", ErrNotFound, listingID)
		}
		return false, fmt.Errorf("failed to get listing: %w", err)
	}

	if row.Status != string(StatusAvailable) || now.Before(row.ExpiresAt) {
		return false, nil
	}

	row.Status = string(StatusExpired)
	row.IsExpired = true
	row.UpdatedAt = now

	if err := m.listings.UpdateTx(ctx, tx, row); err != nil {
		return false, fmt.Errorf("failed to expire listing: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("failed to commit expiration: %w", err)
	}

	metrics.ListingsExpiredTotal.Inc()
	m.cacheDelete(row.ID)
	return true, nil
}

// ApplyFallback auto-confirms a still-available listing into the given
// checkpoint, updating the checkpoint's intake stats in the same
// transaction. The status guard makes a sweep racing a user claim lose
// cleanly.
func (m *Marketplace) ApplyFallback(ctx context.Context, listingID string, cp *Checkpoint) (*Listing, error) {
	now := m.clock.Now()

	tx, err := m.db.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(context.Background()) }()

	row, err := m.listings.GetByIDTx(ctx, tx, listingID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, fmt.Errorf("%w: listing %s", ErrNotFound, listingID)
		}
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}

	if row.Status != string(StatusAvailable) || row.FallbackTriggered {
		return nil, invalidTransitionf("listing is no longer eligible for fallback (status %s)", row.Status)
	}

	row.Status = string(StatusConfirmed)
	row.FallbackTriggered = true
	row.FallbackAt = &now
	row.UpdatedAt = now

	if err := m.listings.UpdateTx(ctx, tx, row); err != nil {
		return nil, fmt.Errorf("failed to route listing: %w", err)
	}
	if err := m.checkpoints.AddReceivedTx(ctx, tx, cp.ID, row.EstimatedKg, now); err != nil {
		return nil, fmt.Errorf("failed to update checkpoint stats: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit fallback: %w", err)
	}

	metrics.FallbacksTriggeredTotal.WithLabelValues(string(cp.Type)).Inc()
	listing := toDomainListing(row)
	m.cacheSet(listing)
	return listing, nil
}

// ExpirableListings selects the candidates for the scheduler's expiration
// pass.
func (m *Marketplace) ExpirableListings(ctx context.Context) ([]*Listing, error) {
	rows, err := m.listings.GetExpirable(ctx, m.clock.Now())
	if err != nil {
		return nil, err
	}
	return toDomainListings(rows), nil
}

// FallbackCandidates selects listings unclaimed since before the cutoff.
func (m *Marketplace) FallbackCandidates(ctx context.Context, cutoff time.Time) ([]*Listing, error) {
	rows, err := m.listings.GetFallbackCandidates(ctx, cutoff)
	if err != nil {
		return nil, err
	}
	return toDomainListings(rows), nil
}

// ActiveListings is the cache warmup query.
func (m *Marketplace) ActiveListings(ctx context.Context) ([]*Listing, error) {
	rows, err := m.listings.GetAllActive(ctx)
	if err != nil {
		return nil, err
	}
	return toDomainListings(rows), nil
}

var badgeThresholds = []struct {
	Points int
	Name   string
	Icon   string
}{
	{10, "First Steps", "🌱"},
	{50, "Food Hero", "🦸"},
	{100, "Community Champion", "🏆"},
	{250, "Hunger Fighter", "⭐"},
	{500, "Legend", "👑"},
}

// awardBadgesTx grants every badge the donor's new point total reaches.
// Inserts are idempotent, so already-earned badges are untouched.
func (m *Marketplace) awardBadgesTx(ctx context.Context, tx db.Tx, donorID string, pointsDelta int, now time.Time) error {
	donor, err := m.users.GetByID(ctx, donorID)
	if err != nil {
		return fmt.Errorf("failed to get donor for badge evaluation: %w", err)
	}
	total := donor.Points + pointsDelta

	for _, b := range badgeThresholds {
		if total < b.Points {
			break
		}
		badge := &repository.Badge{
			UserID:   donorID,
			Name:     b.Name,
			Icon:     b.Icon,
			EarnedAt: now,
		}
		if err := m.users.AddBadgeTx(ctx, tx, badge); err != nil {
			return fmt.Errorf("failed to award badge %q: %w", b.Name, err)
		}
	}
	return nil
}

func (m *Marketplace) userName(ctx context.Context, userID string) string {
	u, err := m.users.GetByID(ctx, userID)
	if err != nil {
		m.logger.Debug("failed to resolve user name", zap.String("user_id", userID), zap.Error(err))
		return "A user"
	}
	return u.Name
}
