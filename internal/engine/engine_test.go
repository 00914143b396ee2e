package engine_test

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/wearmarket/marketplace-indexer/internal/domain"
	"github.com/wearmarket/marketplace-indexer/internal/engine"
	"github.com/wearmarket/marketplace-indexer/internal/logger"
	"github.com/wearmarket/marketplace-indexer/internal/messaging"
	"github.com/wearmarket/marketplace-indexer/internal/mocks"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

// testEngineMocks contains all the mocks needed for testing the engine
type testEngineMocks struct {
	ctrl       *gomock.Controller
	subscriber *mocks.MockSubscriber
	tracker    *mocks.MockTracker
	store      *mocks.MockStore
	notifier   *mocks.MockNotifier
	clock      *mocks.MockClock
	engine     *engine.Engine
}

func newTestEngine(t *testing.T) *testEngineMocks {
	ctrl := gomock.NewController(t)
	subscriber := mocks.NewMockSubscriber(ctrl)
	tracker := mocks.NewMockTracker(ctrl)
	st := mocks.NewMockStore(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)
	clock := mocks.NewMockClock(ctrl)

	return &testEngineMocks{
		ctrl:       ctrl,
		subscriber: subscriber,
		tracker:    tracker,
		store:      st,
		notifier:   notifier,
		clock:      clock,
		engine:     engine.New(engine.Config{BatchSize: 10}, subscriber, tracker, st, notifier, clock),
	}
}

func newTestEvent() *domain.MarketplaceEvent {
	return &domain.MarketplaceEvent{
		Kind:      domain.EventKindSale,
		Network:   domain.NetworkPolygon,
		Timestamp: 1_700_000_000,
		TxHash:    "0xabc",
		Sale: &domain.SaleEvent{
			Type:   domain.SaleTypeSecondary,
			Buyer:  "0x1111111111111111111111111111111111111111",
			Seller: "0x2222222222222222222222222222222222222222",
			NFTID:  "nft-1",
			Price:  big.NewInt(1),
		},
	}
}

// stopAfterWindow makes the next fetch cancel the run loop
func (m *testEngineMocks) stopAfterWindow(cancel context.CancelFunc) {
	m.subscriber.EXPECT().Fetch(gomock.Any(), 10).
		DoAndReturn(func(ctx context.Context, batch int) ([]messaging.Inbound, error) {
			cancel()
			return nil, nil
		})
}

func TestRun_FlushThenAck(t *testing.T) {
	m := newTestEngine(t)
	ctx, cancel := context.WithCancel(context.Background())

	event := newTestEvent()
	inbound := mocks.NewMockInbound(m.ctrl)
	inbound.EXPECT().Event().Return(event)

	m.subscriber.EXPECT().Fetch(gomock.Any(), 10).Return([]messaging.Inbound{inbound}, nil)
	m.tracker.EXPECT().Track(gomock.Any(), gomock.Any(), event).Return(nil)

	// the flush commits before the ack
	flushed := m.store.EXPECT().FlushWindow(gomock.Any(), gomock.Any()).Return(nil)
	m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)
	inbound.EXPECT().Ack().Return(nil).After(flushed)

	m.stopAfterWindow(cancel)

	err := m.engine.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_MissingEntitySkippedButAcked(t *testing.T) {
	m := newTestEngine(t)
	ctx, cancel := context.WithCancel(context.Background())

	event := newTestEvent()
	inbound := mocks.NewMockInbound(m.ctrl)
	inbound.EXPECT().Event().Return(event)

	m.subscriber.EXPECT().Fetch(gomock.Any(), 10).Return([]messaging.Inbound{inbound}, nil)
	m.tracker.EXPECT().Track(gomock.Any(), gomock.Any(), event).
		Return(fmt.Errorf("%w: item missing", domain.ErrMissingEntity))

	// the window still flushes; the consumed sequence slot must persist
	m.store.EXPECT().FlushWindow(gomock.Any(), gomock.Any()).Return(nil)
	m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)
	inbound.EXPECT().Ack().Return(nil)

	m.stopAfterWindow(cancel)

	err := m.engine.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_InvalidEventTerminated(t *testing.T) {
	m := newTestEngine(t)
	ctx, cancel := context.WithCancel(context.Background())

	event := newTestEvent()
	invalid := mocks.NewMockInbound(m.ctrl)
	invalid.EXPECT().Event().Return(event)

	m.subscriber.EXPECT().Fetch(gomock.Any(), 10).Return([]messaging.Inbound{invalid}, nil)
	m.tracker.EXPECT().Track(gomock.Any(), gomock.Any(), event).
		Return(fmt.Errorf("%w: bad kind", domain.ErrInvalidEvent))

	// terminated, never acked
	invalid.EXPECT().Term().Return(nil)
	m.store.EXPECT().FlushWindow(gomock.Any(), gomock.Any()).Return(nil)
	m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)

	m.stopAfterWindow(cancel)

	err := m.engine.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_TransientFailureNaksWholeWindow(t *testing.T) {
	m := newTestEngine(t)
	ctx, cancel := context.WithCancel(context.Background())

	event := newTestEvent()
	first := mocks.NewMockInbound(m.ctrl)
	second := mocks.NewMockInbound(m.ctrl)
	first.EXPECT().Event().Return(event)

	m.subscriber.EXPECT().Fetch(gomock.Any(), 10).Return([]messaging.Inbound{first, second}, nil)
	m.tracker.EXPECT().Track(gomock.Any(), gomock.Any(), event).
		Return(fmt.Errorf("%w: rpc timeout", domain.ErrOwnerResolution))

	// everything is redelivered, even events not yet tracked; nothing flushes
	first.EXPECT().Nak().Return(nil)
	second.EXPECT().Nak().Return(nil)
	m.clock.EXPECT().Sleep(5 * time.Second)

	m.stopAfterWindow(cancel)

	err := m.engine.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_TerminatedEventNotNaked(t *testing.T) {
	m := newTestEngine(t)
	ctx, cancel := context.WithCancel(context.Background())

	bad := newTestEvent()
	good := newTestEvent()
	inBad := mocks.NewMockInbound(m.ctrl)
	inGood := mocks.NewMockInbound(m.ctrl)
	inBad.EXPECT().Event().Return(bad)
	inGood.EXPECT().Event().Return(good)

	m.subscriber.EXPECT().Fetch(gomock.Any(), 10).Return([]messaging.Inbound{inBad, inGood}, nil)
	m.tracker.EXPECT().Track(gomock.Any(), gomock.Any(), bad).
		Return(fmt.Errorf("%w: bad kind", domain.ErrInvalidEvent))
	m.tracker.EXPECT().Track(gomock.Any(), gomock.Any(), good).
		Return(fmt.Errorf("%w: rpc timeout", domain.ErrOwnerResolution))

	// the terminated message is already settled; only the retriable one
	// goes back to the broker
	inBad.EXPECT().Term().Return(nil)
	inGood.EXPECT().Nak().Return(nil)
	m.clock.EXPECT().Sleep(5 * time.Second)

	m.stopAfterWindow(cancel)

	err := m.engine.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_InvariantViolationAborts(t *testing.T) {
	m := newTestEngine(t)

	event := newTestEvent()
	inbound := mocks.NewMockInbound(m.ctrl)
	inbound.EXPECT().Event().Return(event)

	m.subscriber.EXPECT().Fetch(gomock.Any(), 10).Return([]messaging.Inbound{inbound}, nil)
	m.tracker.EXPECT().Track(gomock.Any(), gomock.Any(), event).
		Return(fmt.Errorf("%w: cuts exceed price", domain.ErrInvariantViolation))
	inbound.EXPECT().Nak().Return(nil)

	err := m.engine.Run(context.Background())
	assert.ErrorIs(t, err, domain.ErrInvariantViolation)
}

func TestRun_FlushFailureNaksWindow(t *testing.T) {
	m := newTestEngine(t)
	ctx, cancel := context.WithCancel(context.Background())

	event := newTestEvent()
	inbound := mocks.NewMockInbound(m.ctrl)
	inbound.EXPECT().Event().Return(event)

	m.subscriber.EXPECT().Fetch(gomock.Any(), 10).Return([]messaging.Inbound{inbound}, nil)
	m.tracker.EXPECT().Track(gomock.Any(), gomock.Any(), event).Return(nil)
	m.store.EXPECT().FlushWindow(gomock.Any(), gomock.Any()).Return(errors.New("deadlock detected"))
	inbound.EXPECT().Nak().Return(nil)
	m.clock.EXPECT().Sleep(5 * time.Second)

	m.stopAfterWindow(cancel)

	err := m.engine.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_NotifyFailureStillAcks(t *testing.T) {
	m := newTestEngine(t)
	ctx, cancel := context.WithCancel(context.Background())

	event := newTestEvent()
	inbound := mocks.NewMockInbound(m.ctrl)
	inbound.EXPECT().Event().Return(event)

	m.subscriber.EXPECT().Fetch(gomock.Any(), 10).Return([]messaging.Inbound{inbound}, nil)
	m.tracker.EXPECT().Track(gomock.Any(), gomock.Any(), event).Return(nil)
	m.store.EXPECT().FlushWindow(gomock.Any(), gomock.Any()).Return(nil)

	// the flush committed; a failed notification never blocks the ack
	m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(errors.New("broker unavailable"))
	inbound.EXPECT().Ack().Return(nil)

	m.stopAfterWindow(cancel)

	err := m.engine.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_FetchFailureRetries(t *testing.T) {
	m := newTestEngine(t)
	ctx, cancel := context.WithCancel(context.Background())

	m.subscriber.EXPECT().Fetch(gomock.Any(), 10).Return(nil, errors.New("connection lost"))
	m.clock.EXPECT().Sleep(5 * time.Second)

	m.stopAfterWindow(cancel)

	err := m.engine.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_EventsTrackedInDeliveryOrder(t *testing.T) {
	m := newTestEngine(t)
	ctx, cancel := context.WithCancel(context.Background())

	first := newTestEvent()
	second := newTestEvent()
	second.Timestamp++

	inFirst := mocks.NewMockInbound(m.ctrl)
	inSecond := mocks.NewMockInbound(m.ctrl)
	inFirst.EXPECT().Event().Return(first)
	inSecond.EXPECT().Event().Return(second)

	m.subscriber.EXPECT().Fetch(gomock.Any(), 10).Return([]messaging.Inbound{inFirst, inSecond}, nil)
	gomock.InOrder(
		m.tracker.EXPECT().Track(gomock.Any(), gomock.Any(), first).Return(nil),
		m.tracker.EXPECT().Track(gomock.Any(), gomock.Any(), second).Return(nil),
	)
	m.store.EXPECT().FlushWindow(gomock.Any(), gomock.Any()).Return(nil)
	m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)
	inFirst.EXPECT().Ack().Return(nil)
	inSecond.EXPECT().Ack().Return(nil)

	m.stopAfterWindow(cancel)

	err := m.engine.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
