package scheduler

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mealbridge/mealbridge/internal/metrics"
	"github.com/mealbridge/mealbridge/internal/notify"
	"github.com/mealbridge/mealbridge/internal/storage"
)

type Store interface {
	ExpirableListings(ctx context.Context) ([]*storage.Listing, error)
	FallbackCandidates(ctx context.Context, cutoff time.Time) ([]*storage.Listing, error)
	ExpireListing(ctx context.Context, listingID string) (bool, error)
	ApplyFallback(ctx context.Context, listingID string, cp *storage.Checkpoint) (*storage.Listing, error)
	RunAutoBanSweep(ctx context.Context) (int, error)
}

type Config struct {
	SweepInterval      time.Duration
	ModerationInterval time.Duration
	FallbackDelay      time.Duration
	// Workers bounds per-listing parallelism within a pass.
	Workers int
}

type TickReport struct {
	Expired            int
	FallbacksTriggered int
	Errors             int
}

// Sweeper is the TTL and fallback scheduler: a recurring, stateless,
// idempotent sweep over listings. Each per-listing transition re-checks
// status under a row lock, so a tick racing a user action loses cleanly; the
// deployment still runs a single sweeper instance so listings are not
// processed twice within one logical tick.
type Sweeper struct {
	store    Store
	resolver *Resolver
	notifier notify.Notifier
	clock    storage.Clock
	cfg      Config
	logger   *zap.Logger

	wg             sync.WaitGroup
	shutdownSignal chan struct{}
	stopOnce       sync.Once
}

func NewSweeper(store Store, resolver *Resolver, notifier notify.Notifier, clock storage.Clock, cfg Config, logger *zap.Logger) *Sweeper {
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	return &Sweeper{
		store:          store,
		resolver:       resolver,
		notifier:       notifier,
		clock:          clock,
		cfg:            cfg,
		logger:         logger,
		shutdownSignal: make(chan struct{}),
	}
}

// Run drives RunTick on the sweep interval and the moderation sweep on its
// own, longer interval, until the context is cancelled or Shutdown is
// called.
func (s *Sweeper) Run(ctx context.Context) {
	s.logger.Info("starting scheduler",
		zap.Duration("sweep_interval", s.cfg.SweepInterval),
		zap.Duration("moderation_interval", s.cfg.ModerationInterval))

	s.wg.Add(1)
	defer s.wg.Done()

	sweepTicker := time.NewTicker(s.cfg.SweepInterval)
	defer sweepTicker.Stop()
	moderationTicker := time.NewTicker(s.cfg.ModerationInterval)
	defer moderationTicker.Stop()

	for {
		select {
		case <-sweepTicker.C:
			report := s.RunTick(ctx)
			if report.Expired > 0 || report.FallbacksTriggered > 0 || report.Errors > 0 {
				s.logger.Info("sweep tick finished",
					zap.Int("expired", report.Expired),
					zap.Int("fallbacks_triggered", report.FallbacksTriggered),
					zap.Int("errors", report.Errors))
			}
		case <-moderationTicker.C:
			banned, err := s.store.RunAutoBanSweep(ctx)
			if err != nil {
				s.logger.Error("moderation sweep failed", zap.Error(err))
				continue
			}
			if banned > 0 {
				s.logger.Info("moderation sweep finished", zap.Int("banned", banned))
			}
		case <-s.shutdownSignal:
			s.logger.Info("scheduler received shutdown signal, stopping")
			return
		case <-ctx.Done():
			s.logger.Info("scheduler context cancelled, stopping")
			return
		}
	}
}

func (s *Sweeper) Shutdown() {
	s.stopOnce.Do(func() {
		close(s.shutdownSignal)
		s.wg.Wait()
	})
}

// RunTick performs one sweep: Pass A expires stale listings, then Pass B
// routes unclaimed ones through their fallback order. A listing expired in
// Pass A is no longer available and therefore never considered by Pass B.
// Per-listing failures are logged and counted, never aborting the batch.
func (s *Sweeper) RunTick(ctx context.Context) TickReport {
	start := time.Now()
	defer func() {
		metrics.SweepDurationSeconds.Observe(time.Since(start).Seconds())
	}()

	var expired, triggered, failures int64

	s.runExpirationPass(ctx, &expired, &failures)
	s.runFallbackPass(ctx, &triggered, &failures)

	return TickReport{
		Expired:            int(atomic.LoadInt64(&expired)),
		FallbacksTriggered: int(atomic.LoadInt64(&triggered)),
		Errors:             int(atomic.LoadInt64(&failures)),
	}
}

func (s *Sweeper) runExpirationPass(ctx context.Context, expired, failures *int64) {
	listings, err := s.store.ExpirableListings(ctx)
	if err != nil {
		s.logger.Error("expiration pass: candidate query failed", zap.Error(err))
		metrics.SweepErrorsTotal.WithLabelValues("expiration").Inc()
		atomic.AddInt64(failures, 1)
		return
	}

	g := new(errgroup.Group)
	g.SetLimit(s.cfg.Workers)

	for _, l := range listings {
		l := l
		g.Go(func() error {
			ok, err := s.store.ExpireListing(ctx, l.ID)
			if err != nil {
				s.logger.Error("failed to expire listing", zap.String("listing_id", l.ID), zap.Error(err))
				metrics.SweepErrorsTotal.WithLabelValues("expiration").Inc()
				atomic.AddInt64(failures, 1)
				return nil
			}
			if !ok {
				// Lost the race to a claim or an earlier tick.
				return nil
			}

			atomic.AddInt64(expired, 1)
			s.logger.Debug("listing expired", zap.String("listing_id", l.ID))

			n := notify.ListingExpired(l.Title)
			n.RecipientID = l.DonorID
			n.ListingID = l.ID
			s.notifier.Notify(ctx, n)
			return nil
		})
	}
	_ = g.Wait()
}

func (s *Sweeper) runFallbackPass(ctx context.Context, triggered, failures *int64) {
	cutoff := s.clock.Now().Add(-s.cfg.FallbackDelay)
	listings, err := s.store.FallbackCandidates(ctx, cutoff)
	if err != nil {
		s.logger.Error("fallback pass: candidate query failed", zap.Error(err))
		metrics.SweepErrorsTotal.WithLabelValues("fallback").Inc()
		atomic.AddInt64(failures, 1)
		return
	}

	g := new(errgroup.Group)
	g.SetLimit(s.cfg.Workers)

	for _, l := range listings {
		l := l
		g.Go(func() error {
			cp, err := s.resolver.Resolve(ctx, l)
			if err != nil {
				s.logger.Error("failed to resolve fallback", zap.String("listing_id", l.ID), zap.Error(err))
				metrics.SweepErrorsTotal.WithLabelValues("fallback").Inc()
				atomic.AddInt64(failures, 1)
				return nil
			}
			if cp == nil {
				// No in-range checkpoint this cycle; retried next sweep.
				return nil
			}

			if _, err := s.store.ApplyFallback(ctx, l.ID, cp); err != nil {
				if errors.Is(err, storage.ErrInvalidTransition) {
					// Claimed or expired between the candidate query and
					// the guarded write.
					return nil
				}
				s.logger.Error("failed to apply fallback",
					zap.String("listing_id", l.ID),
					zap.String("checkpoint_id", cp.ID),
					zap.Error(err))
				metrics.SweepErrorsTotal.WithLabelValues("fallback").Inc()
				atomic.AddInt64(failures, 1)
				return nil
			}

			atomic.AddInt64(triggered, 1)
			s.logger.Info("fallback triggered",
				zap.String("listing_id", l.ID),
				zap.String("checkpoint_id", cp.ID),
				zap.String("checkpoint_type", string(cp.Type)))

			n := notify.FallbackTriggered(l.Title, cp.Name)
			n.RecipientID = l.DonorID
			n.ListingID = l.ID
			s.notifier.Notify(ctx, n)
			return nil
		})
	}
	_ = g.Wait()
}
