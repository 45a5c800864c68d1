package notify

import "context"

// Notification is one user-facing event. Delivery is fire-and-forget: a
// failed dispatch is logged and never propagated to the state-changing
// caller.
type Notification struct {
	RecipientID string
	SenderID    string
	ListingID   string
	Type        string
	Title       string
	Message     string
	Priority    string
}

type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// Nop discards notifications. Used where delivery is not wired.
type Nop struct{}

func (Nop) Notify(context.Context, Notification) {}
