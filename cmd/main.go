package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/mealbridge/mealbridge/internal/cache"
	"github.com/mealbridge/mealbridge/internal/config"
	"github.com/mealbridge/mealbridge/internal/db"
	"github.com/mealbridge/mealbridge/internal/images"
	"github.com/mealbridge/mealbridge/internal/kafka"
	"github.com/mealbridge/mealbridge/internal/logger"
	"github.com/mealbridge/mealbridge/internal/notify"
	"github.com/mealbridge/mealbridge/internal/repository/postgresql"
	"github.com/mealbridge/mealbridge/internal/scheduler"
	"github.com/mealbridge/mealbridge/internal/server"
	"github.com/mealbridge/mealbridge/internal/storage"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log := logger.New()
	defer log.Sync() //nolint:errcheck

	cfg := config.Load()

	database, err := db.NewDb(ctx)
	if err != nil {
		log.Fatal("database init", zap.Error(err))
	}
	defer database.GetPool().Close()

	listingRepo := postgresql.NewListingRepo(database)
	checkpointRepo := postgresql.NewCheckpointRepo(database)
	userRepo := postgresql.NewUserRepo(database)
	outboxRepo := postgresql.NewOutboxTaskRepo()

	notifier := notify.NewOutboxNotifier(database, outboxRepo, cfg.NotificationsTopic, cfg.NotificationTimeout, log)

	imageStore, err := images.NewFileStore(cfg.UploadDir, log)
	if err != nil {
		log.Fatal("image store init", zap.Error(err))
	}

	listingCache := cache.New()
	clock := storage.SystemClock{}

	marketplace := storage.NewMarketplace(
		database,
		listingRepo,
		checkpointRepo,
		userRepo,
		notifier,
		imageStore,
		listingCache,
		clock,
		storage.Options{
			ListingTTL:             cfg.ListingTTL,
			AutoBanMinRatings:      cfg.AutoBanMinRatings,
			AutoBanRatingThreshold: cfg.AutoBanRatingThreshold,
		},
		log,
	)

	if err := listingCache.Warmup(ctx, marketplace, log); err != nil {
		log.Warn("cache warmup", zap.Error(err))
	}

	directory := storage.NewDirectory(checkpointRepo, clock)
	resolver := scheduler.NewResolver(directory, cfg.FallbackRadiusM)

	sweeper := scheduler.NewSweeper(marketplace, resolver, notifier, clock, scheduler.Config{
		SweepInterval:      cfg.SweepInterval,
		ModerationInterval: cfg.ModerationInterval,
		FallbackDelay:      cfg.FallbackDelay,
	}, log)
	go sweeper.Run(ctx)

	var producer kafka.Producer
	if os.Getenv("KAFKA_DISABLED") == "true" {
		producer = kafka.NewConsoleProducer(log)
	} else {
		producer = kafka.NewProducer(cfg.KafkaBrokers, log)
	}
	publisher := kafka.NewPublisher(database, outboxRepo, producer, kafka.PublisherConfig{
		PollInterval: cfg.OutboxPollInterval,
		BatchSize:    cfg.OutboxBatchSize,
		MaxAttempts:  cfg.OutboxMaxAttempts,
	}, log)
	go publisher.Run(ctx)

	srv := server.New(marketplace, directory, userRepo, log)

	go func() {
		if err := srv.Run(cfg.HTTPPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("http server", zap.Error(err))
		}
	}()

	log.Info("service started", zap.String("port", cfg.HTTPPort))

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown", zap.Error(err))
	}
	sweeper.Shutdown()
	publisher.Shutdown()
	if err := producer.Close(); err != nil {
		log.Error("producer close", zap.Error(err))
	}

	log.Info("stopped")
}
