package storage

import (
	"time"

	"github.com/mealbridge/mealbridge/internal/geo"
)

type Status string

const (
	StatusAvailable Status = "available"
	StatusClaimed   Status = "claimed"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusExpired   Status = "expired"
	StatusCancelled Status = "cancelled"
)

// Terminal reports whether no further transition may leave the status.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusExpired || s == StatusCancelled
}

type FoodType string

const (
	FoodCooked     FoodType = "cooked"
	FoodRaw        FoodType = "raw"
	FoodPackaged   FoodType = "packaged"
	FoodFruits     FoodType = "fruits"
	FoodVegetables FoodType = "vegetables"
	FoodDairy      FoodType = "dairy"
	FoodBakery     FoodType = "bakery"
	FoodMixed      FoodType = "mixed"
)

func ValidFoodType(t FoodType) bool {
	switch t {
	case FoodCooked, FoodRaw, FoodPackaged, FoodFruits, FoodVegetables, FoodDairy, FoodBakery, FoodMixed:
		return true
	}
	return false
}

type Unit string

const (
	UnitKg       Unit = "kg"
	UnitServings Unit = "servings"
	UnitPieces   Unit = "pieces"
	UnitLiters   Unit = "liters"
)

type Quantity struct {
	Value float64 `json:"value"`
	Unit  Unit    `json:"unit"`
}

type PickupWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// FallbackTarget is the logical destination named in a listing's fallback
// order; it is remapped to a checkpoint type when resolving (see scheduler).
type FallbackTarget string

const (
	FallbackReceiver   FallbackTarget = "receiver"
	FallbackAnimalFarm FallbackTarget = "animal_farm"
	FallbackBiocompost FallbackTarget = "biocompost"
	FallbackNone       FallbackTarget = "none"
)

func ValidFallbackTarget(t FallbackTarget) bool {
	switch t {
	case FallbackReceiver, FallbackAnimalFarm, FallbackBiocompost:
		return true
	}
	return false
}

// DefaultFallbackOrder is applied at creation when the donor supplies none.
var DefaultFallbackOrder = []FallbackTarget{FallbackReceiver, FallbackAnimalFarm, FallbackBiocompost}

type CheckpointType string

const (
	CheckpointFridge     CheckpointType = "fridge"
	CheckpointAnimalFarm CheckpointType = "animal_farm"
	CheckpointBiocompost CheckpointType = "biocompost"
)

func ValidCheckpointType(t CheckpointType) bool {
	switch t {
	case CheckpointFridge, CheckpointAnimalFarm, CheckpointBiocompost:
		return true
	}
	return false
}

type Rating struct {
	Score    int       `json:"score"`
	Feedback string    `json:"feedback,omitempty"`
	RatedAt  time.Time `json:"rated_at"`
}

type Listing struct {
	ID          string       `json:"id"`
	DonorID     string       `json:"donor_id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	FoodType    FoodType     `json:"food_type"`
	Quantity    Quantity     `json:"quantity"`
	EstimatedKg float64      `json:"estimated_kg"`
	Location    geo.Point    `json:"location"`
	Address     string       `json:"address"`
	Pickup      PickupWindow `json:"pickup"`

	Status      Status     `json:"status"`
	ClaimedBy   *string    `json:"claimed_by,omitempty"`
	ClaimedAt   *time.Time `json:"claimed_at,omitempty"`
	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	FallbackPreference FallbackTarget   `json:"fallback_preference"`
	FallbackOrder      []FallbackTarget `json:"fallback_order"`
	FallbackTriggered  bool             `json:"fallback_triggered"`
	FallbackAt         *time.Time       `json:"fallback_at,omitempty"`

	ExpiresAt time.Time `json:"expires_at"`
	IsExpired bool      `json:"is_expired"`

	DonorRating    *Rating `json:"donor_rating,omitempty"`
	ReceiverRating *Rating `json:"receiver_rating,omitempty"`

	Views     int       `json:"views"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Checkpoint struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Type            CheckpointType `json:"type"`
	Location        geo.Point      `json:"location"`
	Address         string         `json:"address"`
	IsActive        bool           `json:"is_active"`
	CapacityCurrent int            `json:"capacity_current"`
	CapacityMaximum int            `json:"capacity_maximum"`
	TotalReceived   int            `json:"total_received"`
	TotalKgReceived float64        `json:"total_kg_received"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

type Role string

const (
	RoleDonor    Role = "donor"
	RoleReceiver Role = "receiver"
	RoleAdmin    Role = "admin"
)

type User struct {
	ID             string     `json:"id"`
	Username       string     `json:"username"`
	Name           string     `json:"name"`
	Role           Role       `json:"role"`
	Points         int        `json:"points"`
	TotalDonations int        `json:"total_donations"`
	TotalReceived  int        `json:"total_received"`
	TotalKgShared  float64    `json:"total_kg_shared"`
	AverageRating  float64    `json:"average_rating"`
	RatingsCount   int        `json:"ratings_count"`
	IsBanned       bool       `json:"is_banned"`
	BanReason      string     `json:"ban_reason,omitempty"`
	BannedAt       *time.Time `json:"banned_at,omitempty"`
}
