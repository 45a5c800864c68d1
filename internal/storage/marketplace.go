//go:generate mockgen -source ./marketplace.go -destination=./mocks/marketplace.go -package=mock_storage
package storage

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/mealbridge/mealbridge/internal/db"
	"github.com/mealbridge/mealbridge/internal/geo"
	"github.com/mealbridge/mealbridge/internal/notify"
	"github.com/mealbridge/mealbridge/internal/repository"
)

type ListingRepository interface {
	Create(ctx context.Context, l *repository.Listing) error
	GetByID(ctx context.Context, id string) (*repository.Listing, error)
	GetByIDTx(ctx context.Context, tx db.Tx, id string) (*repository.Listing, error)
	UpdateTx(ctx context.Context, tx db.Tx, l *repository.Listing) error
	IncrementViews(ctx context.Context, id string) error
	List(ctx context.Context, status, foodType string, limit int) ([]*repository.Listing, error)
	GetByDonorID(ctx context.Context, donorID string) ([]*repository.Listing, error)
	GetByClaimedBy(ctx context.Context, userID string) ([]*repository.Listing, error)
	GetExpirable(ctx context.Context, now time.Time) ([]*repository.Listing, error)
	GetFallbackCandidates(ctx context.Context, cutoff time.Time) ([]*repository.Listing, error)
	GetCompletedRatedAsDonor(ctx context.Context, userID string) ([]*repository.Listing, error)
	GetCompletedRatedAsReceiver(ctx context.Context, userID string) ([]*repository.Listing, error)
	GetAllActive(ctx context.Context) ([]*repository.Listing, error)
}

type CheckpointRepository interface {
	Create(ctx context.Context, c *repository.Checkpoint) error
	GetByID(ctx context.Context, id string) (*repository.Checkpoint, error)
	Update(ctx context.Context, c *repository.Checkpoint) error
	List(ctx context.Context) ([]*repository.Checkpoint, error)
	GetActiveByType(ctx context.Context, checkpointType string) ([]*repository.Checkpoint, error)
	AddReceivedTx(ctx context.Context, tx db.Tx, id string, kg float64, now time.Time) error
}

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*repository.User, error)
	AddDonationStatsTx(ctx context.Context, tx db.Tx, userID string, points int, kg float64, now time.Time) error
	IncrementReceivedTx(ctx context.Context, tx db.Tx, userID string, now time.Time) error
	UpdateRatingAggregate(ctx context.Context, userID string, average float64, count int, now time.Time) error
	Ban(ctx context.Context, userID, reason string, now time.Time) error
	GetBannableDonors(ctx context.Context, maxAverage float64, minRatings int) ([]*repository.User, error)
	AddBadgeTx(ctx context.Context, tx db.Tx, b *repository.Badge) error
}

// ImageReleaser detaches externally hosted images when a listing is
// cancelled. Best-effort: a release failure never blocks the cancellation.
type ImageReleaser interface {
	ReleaseImages(ctx context.Context, listingID string) error
}

// ListingCache is maintained alongside listing transitions; implementations
// must tolerate terminal statuses by evicting.
type ListingCache interface {
	Set(l *Listing)
	Delete(id string)
}

type Options struct {
	ListingTTL             time.Duration
	AutoBanMinRatings      int
	AutoBanRatingThreshold float64
}

// Marketplace is the listing lifecycle service: the claim/confirm state
// machine, ratings and auto-moderation, and the transition entry points the
// scheduler drives. All transitions re-check status under a row lock before
// mutating.
type Marketplace struct {
	db          db.DB
	listings    ListingRepository
	checkpoints CheckpointRepository
	users       UserRepository
	notifier    notify.Notifier
	images      ImageReleaser
	cache       ListingCache
	clock       Clock
	opts        Options
	logger      *zap.Logger
}

func NewMarketplace(
	database db.DB,
	listings ListingRepository,
	checkpoints CheckpointRepository,
	users UserRepository,
	notifier notify.Notifier,
	images ImageReleaser,
	cache ListingCache,
	clock Clock,
	opts Options,
	logger *zap.Logger,
) *Marketplace {
	return &Marketplace{
		db:          database,
		listings:    listings,
		checkpoints: checkpoints,
		users:       users,
		notifier:    notifier,
		images:      images,
		cache:       cache,
		clock:       clock,
		opts:        opts,
		logger:      logger,
	}
}

func (m *Marketplace) cacheSet(l *Listing) {
	if m.cache != nil {
		m.cache.Set(l)
	}
}

func (m *Marketplace) cacheDelete(id string) {
	if m.cache != nil {
		m.cache.Delete(id)
	}
}

func toDomainListing(l *repository.Listing) *Listing {
	order := make([]FallbackTarget, len(l.FallbackOrder))
	for i, t := range l.FallbackOrder {
		order[i] = FallbackTarget(t)
	}

	d := &Listing{
		ID:          l.ID,
		DonorID:     l.DonorID,
		Title:       l.Title,
		Description: l.Description,
		FoodType:    FoodType(l.FoodType),
		Quantity:    Quantity{Value: l.QuantityValue, Unit: Unit(l.QuantityUnit)},
		EstimatedKg: l.EstimatedKg,
		Location:    geo.Point{Longitude: l.Longitude, Latitude: l.Latitude},
		Address:     l.Address,
		Pickup:      PickupWindow{Start: l.PickupStart, End: l.PickupEnd},

		Status:      Status(l.Status),
		ClaimedBy:   l.ClaimedBy,
		ClaimedAt:   l.ClaimedAt,
		ConfirmedAt: l.ConfirmedAt,
		CompletedAt: l.CompletedAt,

		FallbackPreference: FallbackTarget(l.FallbackPreference),
		FallbackOrder:      order,
		FallbackTriggered:  l.FallbackTriggered,
		FallbackAt:         l.FallbackAt,

		ExpiresAt: l.ExpiresAt,
		IsExpired: l.IsExpired,

		Views:     l.Views,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}

	if l.DonorRating != nil {
		d.DonorRating = &Rating{Score: *l.DonorRating, RatedAt: derefTime(l.DonorRatedAt)}
		if l.DonorFeedback != nil {
			d.DonorRating.Feedback = *l.DonorFeedback
		}
	}
	if l.ReceiverRating != nil {
		d.ReceiverRating = &Rating{Score: *l.ReceiverRating, RatedAt: derefTime(l.ReceiverRatedAt)}
		if l.ReceiverFeedback != nil {
			d.ReceiverRating.Feedback = *l.ReceiverFeedback
		}
	}

	return d
}

func toDomainListings(rows []*repository.Listing) []*Listing {
	out := make([]*Listing, len(rows))
	for i, l := range rows {
		out[i] = toDomainListing(l)
	}
	return out
}

func toDomainCheckpoint(c *repository.Checkpoint) *Checkpoint {
	return &Checkpoint{
		ID:              c.ID,
		Name:            c.Name,
		Type:            CheckpointType(c.Type),
		Location:        geo.Point{Longitude: c.Longitude, Latitude: c.Latitude},
		Address:         c.Address,
		IsActive:        c.IsActive,
		CapacityCurrent: c.CapacityCurrent,
		CapacityMaximum: c.CapacityMaximum,
		TotalReceived:   c.TotalReceived,
		TotalKgReceived: c.TotalKgReceived,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

func toDomainUser(u *repository.User) *User {
	d := &User{
		ID:             u.ID,
		Username:       u.Username,
		Name:           u.Name,
		Role:           Role(u.Role),
		Points:         u.Points,
		TotalDonations: u.TotalDonations,
		TotalReceived:  u.TotalReceived,
		TotalKgShared:  u.TotalKgShared,
		AverageRating:  u.AverageRating,
		RatingsCount:   u.RatingsCount,
		IsBanned:       u.IsBanned,
		BannedAt:       u.BannedAt,
	}
	if u.BanReason != nil {
		d.BanReason = *u.BanReason
	}
	return d
}

func derefTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
