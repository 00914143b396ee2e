// Package engine owns the processing window: pull one batch of marketplace
// events, apply them in delivery order against a fresh entity cache, flush
// the dirty entities in a single store call, then ack the batch. Nothing is
// acked before the flush commits, so a crash never loses events.
package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wearmarket/marketplace-indexer/internal/adapter"
	"github.com/wearmarket/marketplace-indexer/internal/cache"
	"github.com/wearmarket/marketplace-indexer/internal/domain"
	"github.com/wearmarket/marketplace-indexer/internal/logger"
	"github.com/wearmarket/marketplace-indexer/internal/messaging"
	"github.com/wearmarket/marketplace-indexer/internal/store"
)

//go:generate mockgen -source=engine.go -destination=../mocks/engine.go -package=mocks -mock_names=Tracker=MockTracker,Notifier=MockNotifier

// Tracker applies one marketplace event to the window's entity cache
type Tracker interface {
	Track(ctx context.Context, c *cache.Cache, event *domain.MarketplaceEvent) error
}

// Notifier publishes change notifications for a flushed window delta
type Notifier interface {
	Notify(ctx context.Context, delta *domain.WindowDelta) error
}

// Config holds the engine tunables
type Config struct {
	BatchSize  int
	RetryDelay time.Duration
}

// Engine drives the window loop. One engine instance processes one stream;
// events are never handled concurrently because sale-id sequencing and the
// cardinality counters are order dependent.
type Engine struct {
	subscriber messaging.Subscriber
	tracker    Tracker
	store      store.Store
	notifier   Notifier
	clock      adapter.Clock

	batchSize  int
	retryDelay time.Duration
}

// New creates a new engine
func New(cfg Config, subscriber messaging.Subscriber, tracker Tracker, st store.Store, notifier Notifier, clock adapter.Clock) *Engine {
	batchSize := cfg.BatchSize
	if batchSize <= 0 {
		batchSize = 100
	}
	retryDelay := cfg.RetryDelay
	if retryDelay == 0 {
		retryDelay = 5 * time.Second
	}

	return &Engine{
		subscriber: subscriber,
		tracker:    tracker,
		store:      st,
		notifier:   notifier,
		clock:      clock,
		batchSize:  batchSize,
		retryDelay: retryDelay,
	}
}

// Run processes windows until the context is cancelled or an invariant
// violation makes continuing unsafe
func (e *Engine) Run(ctx context.Context) error {
	logger.Info("engine started", zap.Int("batchSize", e.batchSize))

	for {
		select {
		case <-ctx.Done():
			logger.Info("engine stopped")
			return ctx.Err()
		default:
		}

		if err := e.processWindow(ctx); err != nil {
			if errors.Is(err, domain.ErrInvariantViolation) {
				return err
			}
			logger.Error(err)
			e.clock.Sleep(e.retryDelay)
		}
	}
}

// processWindow handles one fetch-aggregate-flush-ack cycle. Recoverable
// failures nak the whole batch without flushing, so the broker redelivers it
// and the window is rebuilt from scratch against durable state.
func (e *Engine) processWindow(ctx context.Context) error {
	events, err := e.subscriber.Fetch(ctx, e.batchSize)
	if err != nil {
		return fmt.Errorf("failed to fetch window batch: %w", err)
	}
	if len(events) == 0 {
		return nil
	}

	windowID := uuid.NewString()
	c := cache.New(e.store)

	processed := 0
	skipped := 0
	toAck := make([]messaging.Inbound, 0, len(events))
	terminated := make(map[int]bool)
	for i, inbound := range events {
		err := e.tracker.Track(ctx, c, inbound.Event())
		switch {
		case err == nil:
			processed++
			toAck = append(toAck, inbound)
		case errors.Is(err, domain.ErrMissingEntity):
			// the sequence slot stays consumed; skip and keep the window
			logger.Warn("sale references unknown entities",
				zap.String("windowID", windowID),
				zap.Error(err))
			skipped++
			toAck = append(toAck, inbound)
		case errors.Is(err, domain.ErrInvalidEvent):
			logger.Warn("dropping invalid event",
				zap.String("windowID", windowID),
				zap.Error(err))
			if termErr := inbound.Term(); termErr != nil {
				logger.Error(termErr, zap.String("windowID", windowID))
			}
			terminated[i] = true
		case errors.Is(err, domain.ErrInvariantViolation):
			// the cache holds corrupted arithmetic; drop the window unflushed
			// and stop, redelivery must wait for an operator
			e.nakAll(events, terminated, windowID)
			return fmt.Errorf("window %s aborted: %w", windowID, err)
		default:
			// owner-lookup and store failures are transient; the window is
			// retried whole so the unflushed sequence increments are rebuilt
			e.nakAll(events, terminated, windowID)
			return fmt.Errorf("window %s retried: %w", windowID, err)
		}
	}

	delta := c.Delta()
	if err := e.store.FlushWindow(ctx, delta); err != nil {
		e.nakAll(events, terminated, windowID)
		return fmt.Errorf("window %s flush failed: %w", windowID, err)
	}

	if err := e.notifier.Notify(ctx, delta); err != nil {
		// the gate did not advance; the affected entities are re-published
		// with the next delta they appear in
		logger.Error(err, zap.String("windowID", windowID))
	}

	for _, inbound := range toAck {
		if err := inbound.Ack(); err != nil {
			logger.Error(err, zap.String("windowID", windowID))
		}
	}

	logger.Info("window flushed",
		zap.String("windowID", windowID),
		zap.Int("events", len(events)),
		zap.Int("processed", processed),
		zap.Int("skipped", skipped),
		zap.Int("sales", len(delta.Sales)))

	return nil
}

// nakAll returns the window's undelivered messages to the broker. Terminated
// messages are already settled and must not be nak'd again.
func (e *Engine) nakAll(events []messaging.Inbound, terminated map[int]bool, windowID string) {
	for i, inbound := range events {
		if terminated[i] {
			continue
		}
		if err := inbound.Nak(); err != nil {
			logger.Error(err, zap.String("windowID", windowID))
		}
	}
}
