package storage

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/mealbridge/mealbridge/internal/metrics"
	"github.com/mealbridge/mealbridge/internal/notify"
	"github.com/mealbridge/mealbridge/internal/repository"
)

const autoBanReason = "Automatically banned due to consistently low ratings"

// RateListing records a 1-5 rating on a completed listing. Each party may
// rate the other exactly once; the rated user's aggregate is recomputed by a
// full re-scan and the donor auto-ban check runs inline.
func (m *Marketplace) RateListing(ctx context.Context, listingID, raterID string, score int, feedback string) (*Listing, error) {
	if score < 1 || score > 5 {
		return nil, validationf("rating must be between 1 and 5, got %d", score)
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

	if row.Status != string(StatusCompleted) {
		return nil, invalidTransitionf("only completed listings can be rated (status %s)", row.Status)
	}

	isDonor := row.DonorID == raterID
	isReceiver := row.ClaimedBy != nil && *row.ClaimedBy == raterID
	if !isDonor && !isReceiver {
		return nil, forbiddenf("only participants may rate this listing")
	}

	var ratedUserID string
	if isDonor {
		if row.ClaimedBy == nil {
			return nil, validationf("listing has no receiver to rate")
		}
		if row.DonorRating != nil {
			return nil, validationf("you have already rated this listing")
		}
		row.DonorRating = &score
		row.DonorFeedback = &feedback
		row.DonorRatedAt = &now
		ratedUserID = *row.ClaimedBy
	} else {
		if row.ReceiverRating != nil {
			return nil, validationf("you have already rated this listing")
		}
		row.ReceiverRating = &score
		row.ReceiverFeedback = &feedback
		row.ReceiverRatedAt = &now
		ratedUserID = row.DonorID
	}
	row.UpdatedAt = now

	if err := m.listings.UpdateTx(ctx, tx, row); err != nil {
		return nil, fmt.Errorf("failed to store rating: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit rating: %w", err)
	}

	if err := m.recomputeUserRating(ctx, ratedUserID); err != nil {
		m.logger.Error("failed to recompute user rating", zap.String("user_id", ratedUserID), zap.Error(err))
	}

	if isReceiver {
		if _, err := m.CheckAutoBan(ctx, ratedUserID); err != nil {
			m.logger.Error("auto-ban check failed", zap.String("user_id", ratedUserID), zap.Error(err))
		}
	}

	n := notify.RatingReceived(score)
	n.RecipientID = ratedUserID
	n.SenderID = raterID
	n.ListingID = row.ID
	m.notifier.Notify(ctx, n)

	return toDomainListing(row), nil
}

// recomputeUserRating re-derives the aggregate from every rating the user
// received across completed listings, in either role. Full re-scan rather
// than incremental: per-user rating volume is small.
func (m *Marketplace) recomputeUserRating(ctx context.Context, userID string) error {
	asDonor, err := m.listings.GetCompletedRatedAsDonor(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to scan donor ratings: %w", err)
	}
	asReceiver, err := m.listings.GetCompletedRatedAsReceiver(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to scan receiver ratings: %w", err)
	}

	total, count := 0, 0
	for _, l := range asDonor {
		if l.ReceiverRating != nil {
			total += *l.ReceiverRating
			count++
		}
	}
	for _, l := range asReceiver {
		if l.DonorRating != nil {
			total += *l.DonorRating
			count++
		}
	}

	if count == 0 {
		return nil
	}

	average := float64(total) / float64(count)
	return m.users.UpdateRatingAggregate(ctx, userID, average, count, m.clock.Now())
}

// CheckAutoBan applies the moderation rule to one user. Idempotent: an
// already-banned user is left untouched, reason and timestamp included.
func (m *Marketplace) CheckAutoBan(ctx context.Context, userID string) (bool, error) {
	user, err := m.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return false, fmt.Errorf("%w: user %s", ErrNotFound, userID)
		}
		return false, fmt.Errorf("failed to get user: %w", err)
	}

	if user.Role != string(RoleDonor) || user.IsBanned {
		return false, nil
	}
	if user.RatingsCount < m.opts.AutoBanMinRatings || user.AverageRating >= m.opts.AutoBanRatingThreshold {
		return false, nil
	}

	if err := m.banUser(ctx, user.ID); err != nil {
		return false, err
	}
	return true, nil
}

// RunAutoBanSweep is the periodic form of the ban check; it reaches the same
// fixed point as the inline check.
func (m *Marketplace) RunAutoBanSweep(ctx context.Context) (int, error) {
	users, err := m.users.GetBannableDonors(ctx, m.opts.AutoBanRatingThreshold, m.opts.AutoBanMinRatings)
	if err != nil {
		return 0, fmt.Errorf("failed to select bannable donors: %w", err)
	}

	banned := 0
	for _, u := range users {
		if err := m.banUser(ctx, u.ID); err != nil {
			m.logger.Error("failed to ban donor", zap.String("user_id", u.ID), zap.Error(err))
			continue
		}
		banned++
	}
	return banned, nil
}

func (m *Marketplace) banUser(ctx context.Context, userID string) error {
	if err := m.users.Ban(ctx, userID, autoBanReason, m.clock.Now()); err != nil {
		return fmt.Errorf("failed to ban user: %w", err)
	}

	metrics.UsersAutoBannedTotal.Inc()
	m.logger.Info("donor auto-banned for low ratings", zap.String("user_id", userID))

	n := notify.AccountBanned(autoBanReason)
	n.RecipientID = userID
	m.notifier.Notify(ctx, n)
	return nil
}

// GetUser exposes the public profile subset.
func (m *Marketplace) GetUser(ctx context.Context, userID string) (*User, error) {
	u, err := m.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, fmt.Errorf("%w: user %s", ErrNotFound, userID)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return toDomainUser(u), nil
}
