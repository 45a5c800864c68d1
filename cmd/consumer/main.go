package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/mealbridge/mealbridge/internal/logger"
	"github.com/mealbridge/mealbridge/internal/repository"
)

const groupID = "notification-consumer-group"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log := logger.New()
	defer log.Sync() //nolint:errcheck

	brokers := os.Getenv("KAFKA_BROKERS")
	if brokers == "" {
		brokers = "localhost:9092"
	}
	topic := os.Getenv("KAFKA_NOTIFICATIONS_TOPIC")
	if topic == "" {
		topic = "notifications"
	}

	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        []string{brokers},
		GroupID:        groupID,
		Topic:          topic,
		MinBytes:       10e3,
		MaxBytes:       10e6,
		CommitInterval: time.Second,
		MaxWait:        3 * time.Second,
	})
	defer func() {
		if err := r.Close(); err != nil {
			log.Error("close reader", zap.Error(err))
		}
	}()

	log.Info("notification consumer started",
		zap.String("brokers", brokers),
		zap.String("topic", topic))

	for {
		select {
		case <-ctx.Done():
			log.Info("shutdown signal received")
			return
		default:
			m, err := r.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				log.Error("read message", zap.Error(err))
				time.Sleep(5 * time.Second)
				continue
			}

			var payload repository.NotificationPayload
			if err := json.Unmarshal(m.Value, &payload); err != nil {
				log.Error("decode notification",
					zap.Int64("offset", m.Offset),
					zap.Error(err))
				continue
			}

			log.Info("notification delivered",
				zap.String("recipient_id", payload.RecipientID),
				zap.String("type", payload.Type),
				zap.String("title", payload.Title),
				zap.String("message", payload.Message),
				zap.Int("partition", m.Partition),
				zap.Int64("offset", m.Offset))
		}
	}
}
