package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/mealbridge/mealbridge/internal/db"
	"github.com/mealbridge/mealbridge/internal/repository"
)

type UserRepo struct {
	db db.DB
}

func NewUserRepo(db db.DB) *UserRepo {
	return &UserRepo{db: db}
}

func (r *UserRepo) Create(ctx context.Context, u *repository.User, password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `
        INSERT INTO users (
            id, username, password, name, role, points,
            total_donations, total_received, total_kg_shared,
            average_rating, ratings_count, is_banned, created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
    `, u.ID, u.Username, string(hashedPassword), u.Name, u.Role, u.Points,
		u.TotalDonations, u.TotalReceived, u.TotalKgShared,
		u.AverageRating, u.RatingsCount, u.IsBanned, u.CreatedAt, u.UpdatedAt)
	return err
}

// ValidateUser checks basic-auth credentials and rejects banned accounts.
func (r *UserRepo) ValidateUser(ctx context.Context, username, password string) (bool, error) {
	var u repository.User
	err := r.db.Get(ctx, &u, "SELECT * FROM users WHERE username = $1", username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}

	if u.IsBanned {
		return false, nil
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return false, nil
	}
	return true, nil
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*repository.User, error) {
	var u repository.User
	err := r.db.Get(ctx, &u, "SELECT * FROM users WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*repository.User, error) {
	var u repository.User
	err := r.db.Get(ctx, &u, "SELECT * FROM users WHERE username = $1", username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &u, nil
}

// AddDonationStatsTx awards completion points and counters to the donor
// inside the completion transaction.
func (r *UserRepo) AddDonationStatsTx(ctx context.Context, tx db.Tx, userID string, points int, kg float64, now time.Time) error {
	_, err := tx.Exec(ctx, `
        UPDATE users
        SET
            points = points + $1,
            total_donations = total_donations + 1,
            total_kg_shared = total_kg_shared + $2,
            updated_at = $3
        WHERE id = $4
    `, points, kg, now, userID)
	return err
}

func (r *UserRepo) IncrementReceivedTx(ctx context.Context, tx db.Tx, userID string, now time.Time) error {
	_, err := tx.Exec(ctx, `
        UPDATE users
        SET total_received = total_received + 1, updated_at = $1
        WHERE id = $2
    `, now, userID)
	return err
}

func (r *UserRepo) UpdateRatingAggregate(ctx context.Context, userID string, average float64, count int, now time.Time) error {
	_, err := r.db.Exec(ctx, `
        UPDATE users
        SET average_rating = $1, ratings_count = $2, updated_at = $3
        WHERE id = $4
    `, average, count, now, userID)
	return err
}

// Ban marks the user banned. The WHERE guard keeps an existing ban's reason
// and timestamp intact.
func (r *UserRepo) Ban(ctx context.Context, userID, reason string, now time.Time) error {
	_, err := r.db.Exec(ctx, `
        UPDATE users
        SET is_banned = true, ban_reason = $1, banned_at = $2, updated_at = $2
        WHERE id = $3 AND is_banned = false
    `, reason, now, userID)
	return err
}

// GetBannableDonors selects donors whose aggregate rating breaches the
// auto-ban threshold and who are not banned yet. Admins are never returned.
func (r *UserRepo) GetBannableDonors(ctx context.Context, maxAverage float64, minRatings int) ([]*repository.User, error) {
	var users []*repository.User
	err := r.db.Select(ctx, &users, `
        SELECT * FROM users
        WHERE role = 'donor'
          AND average_rating < $1
          AND ratings_count >= $2
          AND is_banned = false
    `, maxAverage, minRatings)
	return users, err
}

func (r *UserRepo) GetBadges(ctx context.Context, userID string) ([]*repository.Badge, error) {
	var badges []*repository.Badge
	err := r.db.Select(ctx, &badges,
		"SELECT * FROM user_badges WHERE user_id = $1 ORDER BY earned_at ASC", userID)
	return badges, err
}

// AddBadgeTx records an earned badge; re-awarding is a no-op so badges are
// monotonic.
func (r *UserRepo) AddBadgeTx(ctx context.Context, tx db.Tx, b *repository.Badge) error {
	_, err := tx.Exec(ctx, `
        INSERT INTO user_badges (user_id, name, icon, earned_at)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (user_id, name) DO NOTHING
    `, b.UserID, b.Name, b.Icon, b.EarnedAt)
	return err
}
