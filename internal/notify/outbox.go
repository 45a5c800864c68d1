package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mealbridge/mealbridge/internal/db"
	"github.com/mealbridge/mealbridge/internal/repository"
)

type OutboxWriter interface {
	Create(ctx context.Context, db db.DB, task *repository.OutboxTask) error
}

// OutboxNotifier persists notifications as outbox tasks; the kafka publisher
// loop ships them asynchronously. Notify never returns an error: a write
// failure is logged and the triggering state change stands.
type OutboxNotifier struct {
	db      db.DB
	outbox  OutboxWriter
	topic   string
	timeout time.Duration
	logger  *zap.Logger
}

func NewOutboxNotifier(database db.DB, outbox OutboxWriter, topic string, timeout time.Duration, logger *zap.Logger) *OutboxNotifier {
	return &OutboxNotifier{
		db:      database,
		outbox:  outbox,
		topic:   topic,
		timeout: timeout,
		logger:  logger,
	}
}

func (o *OutboxNotifier) Notify(ctx context.Context, n Notification) {
	payload := repository.NotificationPayload{
		ID:          uuid.New().String(),
		RecipientID: n.RecipientID,
		SenderID:    n.SenderID,
		ListingID:   n.ListingID,
		Type:        n.Type,
		Title:       n.Title,
		Message:     n.Message,
		Priority:    n.Priority,
		CreatedAt:   time.Now().UTC(),
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		o.logger.Error("failed to marshal notification", zap.String("type", n.Type), zap.Error(err))
		return
	}

	// Bounded so a stuck write cannot stall the caller (or the next
	// scheduler tick).
	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), o.timeout)
	defer cancel()

	task := &repository.OutboxTask{
		Payload: raw,
		Topic:   o.topic,
	}
	if err := o.outbox.Create(writeCtx, o.db, task); err != nil {
		o.logger.Error("failed to enqueue notification",
			zap.String("type", n.Type),
			zap.String("recipient_id", n.RecipientID),
			zap.Error(err))
	}
}
