package sweeper

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/commercekit/event-delivery/internal/adapter"
	"github.com/commercekit/event-delivery/internal/logger"
	"github.com/commercekit/event-delivery/internal/store"
)

const (
	SWEEP_CYCLE_INTERVAL = 15 * time.Minute // Time to sleep between sweep cycles
)

// PayloadSweeperConfig holds configuration for the payload sweeper
type PayloadSweeperConfig struct {
	Interval          time.Duration // Time between sweep cycles
	DeliveryRetention time.Duration // Terminal deliveries older than this are deleted
}

// payloadSweeper implements the Sweeper interface for delivery storage
// maintenance: it deletes payload rows no delivery references anymore and
// expires terminal deliveries past the retention window.
type payloadSweeper struct {
	config    PayloadSweeperConfig
	store     store.Store
	clock     adapter.Clock
	running   atomic.Bool
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// NewPayloadSweeper creates a new payload sweeper. Zero config values fall
// back to a 15 minute interval and 14 day retention.
func NewPayloadSweeper(config PayloadSweeperConfig, st store.Store, clock adapter.Clock) Sweeper {
	if config.Interval == 0 {
		config.Interval = SWEEP_CYCLE_INTERVAL
	}
	if config.DeliveryRetention == 0 {
		config.DeliveryRetention = 14 * 24 * time.Hour
	}

	return &payloadSweeper{
		config:    config,
		store:     st,
		clock:     clock,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Name returns the sweeper's name
func (s *payloadSweeper) Name() string {
	return "payload-sweeper"
}

// Start begins the sweeper's main loop
func (s *payloadSweeper) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("sweeper already running")
	}
	defer func() {
		s.running.Store(false)
		close(s.stoppedCh) // Signal that we've stopped
	}()

	logger.InfoCtx(ctx, "Starting payload sweeper",
		zap.Duration("interval", s.config.Interval),
		zap.Duration("delivery_retention", s.config.DeliveryRetention),
	)

	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Payload sweeper stopping due to context cancellation", zap.Error(ctx.Err()))
			return nil
		case <-s.stopChan:
			logger.InfoCtx(ctx, "Payload sweeper stop requested")
			return nil
		default:
			if err := s.runSweepCycle(ctx); err != nil {
				if !errors.Is(err, context.Canceled) {
					logger.ErrorCtx(ctx, err)
				}
			}
			if !s.sleep(ctx, s.config.Interval) {
				return nil // Context canceled or stop requested during sleep
			}
		}
	}
}

// Stop gracefully stops the sweeper with timeout support
func (s *payloadSweeper) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return nil // Already stopped
	}

	logger.InfoCtx(ctx, "Stopping payload sweeper")

	// Signal stop to the main loop
	close(s.stopChan)

	// Wait for main loop to exit, but respect context cancellation
	select {
	case <-s.stoppedCh:
		logger.InfoCtx(ctx, "Payload sweeper stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Payload sweeper stop interrupted by context timeout")
		return ctx.Err()
	}
}

// runSweepCycle runs a single sweep cycle
func (s *payloadSweeper) runSweepCycle(ctx context.Context) error {
	startTime := s.clock.Now()
	logger.DebugCtx(ctx, "Starting sweep cycle")

	cutoff := s.clock.Now().Add(-s.config.DeliveryRetention)
	expired, err := s.store.DeleteDeliveriesOlderThan(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("failed to expire old deliveries: %w", err)
	}

	// Orphans second: expiring deliveries is what detaches most payloads
	orphaned, err := s.store.DeleteOrphanedPayloads(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete orphaned payloads: %w", err)
	}

	if expired > 0 || orphaned > 0 {
		logger.InfoCtx(ctx, "Sweep cycle completed",
			zap.Int64("expired_deliveries", expired),
			zap.Int64("orphaned_payloads", orphaned),
			zap.Duration("duration", s.clock.Since(startTime)),
		)
	}

	return nil
}

// sleep waits for the given duration, returning false when interrupted by
// context cancellation or a stop request
func (s *payloadSweeper) sleep(ctx context.Context, duration time.Duration) bool {
	timer := time.NewTimer(duration)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-s.stopChan:
		return false
	case <-timer.C:
		return true
	}
}
