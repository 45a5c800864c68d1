package repository

import (
	"errors"
	"time"
)

var ErrObjectNotFound = errors.New("not found")

type Listing struct {
	ID            string     `db:"id"`
	DonorID       string     `db:"donor_id"`
	Title         string     `db:"title"`
	Description   string     `db:"description"`
	FoodType      string     `db:"food_type"`
	QuantityValue float64    `db:"quantity_value"`
	QuantityUnit  string     `db:"quantity_unit"`
	EstimatedKg   float64    `db:"estimated_kg"`
	Longitude     float64    `db:"longitude"`
	Latitude      float64    `db:"latitude"`
	Address       string     `db:"address"`
	PickupStart   time.Time  `db:"pickup_start"`
	PickupEnd     time.Time  `db:"pickup_end"`
	Status        string     `db:"status"`
	ClaimedBy     *string    `db:"claimed_by"`
	ClaimedAt     *time.Time `db:"claimed_at"`
	ConfirmedAt   *time.Time `db:"confirmed_at"`
	CompletedAt   *time.Time `db:"completed_at"`

	FallbackPreference string     `db:"fallback_preference"`
	FallbackOrder      []string   `db:"fallback_order"`
	FallbackTriggered  bool       `db:"fallback_triggered"`
	FallbackAt         *time.Time `db:"fallback_at"`

	ExpiresAt time.Time `db:"expires_at"`
	IsExpired bool      `db:"is_expired"`

	DonorRating      *int       `db:"donor_rating"`
	DonorFeedback    *string    `db:"donor_feedback"`
	DonorRatedAt     *time.Time `db:"donor_rated_at"`
	ReceiverRating   *int       `db:"receiver_rating"`
	ReceiverFeedback *string    `db:"receiver_feedback"`
	ReceiverRatedAt  *time.Time `db:"receiver_rated_at"`

	Views     int       `db:"views"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type Checkpoint struct {
	ID              string    `db:"id"`
	Name            string    `db:"name"`
	Type            string    `db:"type"`
	Longitude       float64   `db:"longitude"`
	Latitude        float64   `db:"latitude"`
	Address         string    `db:"address"`
	IsActive        bool      `db:"is_active"`
	CapacityCurrent int       `db:"capacity_current"`
	CapacityMaximum int       `db:"capacity_maximum"`
	TotalReceived   int       `db:"total_received"`
	TotalKgReceived float64   `db:"total_kg_received"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

type User struct {
	ID             string     `db:"id"`
	Username       string     `db:"username"`
	Password       string     `db:"password"`
	Name           string     `db:"name"`
	Role           string     `db:"role"`
	Points         int        `db:"points"`
	TotalDonations int        `db:"total_donations"`
	TotalReceived  int        `db:"total_received"`
	TotalKgShared  float64    `db:"total_kg_shared"`
	AverageRating  float64    `db:"average_rating"`
	RatingsCount   int        `db:"ratings_count"`
	IsBanned       bool       `db:"is_banned"`
	BanReason      *string    `db:"ban_reason"`
	BannedAt       *time.Time `db:"banned_at"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
}

type Badge struct {
	UserID   string    `db:"user_id"`
	Name     string    `db:"name"`
	Icon     string    `db:"icon"`
	EarnedAt time.Time `db:"earned_at"`
}
