package jetstream

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/wearmarket/marketplace-indexer/internal/adapter"
	"github.com/wearmarket/marketplace-indexer/internal/domain"
	"github.com/wearmarket/marketplace-indexer/internal/logger"
	"github.com/wearmarket/marketplace-indexer/internal/messaging"
)

type inbound struct {
	event *domain.MarketplaceEvent
	msg   adapter.Message
}

func (i *inbound) Event() *domain.MarketplaceEvent { return i.event }
func (i *inbound) Ack() error                      { return i.msg.Ack() }
func (i *inbound) Nak() error                      { return i.msg.Nak() }
func (i *inbound) Term() error                     { return i.msg.Term() }

type subscriber struct {
	nc       adapter.NatsConn
	consumer adapter.Consumer
	json     adapter.JSON
	maxWait  time.Duration
}

// NewSubscriber creates a durable pull subscriber over the marketplace event
// stream. Pull consumption keeps batch boundaries and delivery order explicit,
// which the aggregation engine depends on.
func NewSubscriber(ctx context.Context, cfg Config, natsJS adapter.NatsJetStream, jsonAdapter adapter.JSON) (messaging.Subscriber, error) {
	nc, js, err := natsJS.Connect(cfg.URL, connectOptions(cfg)...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	consumer, err := js.CreateOrUpdateConsumer(ctx, cfg.StreamName, jetstream.ConsumerConfig{
		Durable:       cfg.ConsumerName,
		FilterSubject: fmt.Sprintf("%s.>", cfg.SubjectPrefix),
		AckPolicy:     jetstream.AckExplicitPolicy,
		DeliverPolicy: jetstream.DeliverAllPolicy,
	})
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to create consumer: %w", err)
	}

	return &subscriber{
		nc:       nc,
		consumer: consumer,
		json:     jsonAdapter,
		maxWait:  5 * time.Second,
	}, nil
}

// Fetch pulls up to batch events in delivery order. Messages that do not
// decode into a valid marketplace event are terminated and skipped.
func (s *subscriber) Fetch(_ context.Context, batch int) ([]messaging.Inbound, error) {
	msgs, err := s.consumer.Fetch(batch, jetstream.FetchMaxWait(s.maxWait))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch messages: %w", err)
	}

	events := make([]messaging.Inbound, 0, len(msgs))
	for _, msg := range msgs {
		var event domain.MarketplaceEvent
		if err := s.json.Unmarshal(msg.Data(), &event); err != nil {
			logger.Error(fmt.Errorf("%w: %v", domain.ErrInvalidEvent, err),
				zap.ByteString("data", msg.Data()))
			if err := msg.Term(); err != nil {
				logger.Error(err, zap.String("message", "failed to terminate undecodable message"))
			}
			continue
		}
		if !event.Valid() {
			logger.Error(domain.ErrInvalidEvent, zap.Any("event", event))
			if err := msg.Term(); err != nil {
				logger.Error(err, zap.String("message", "failed to terminate invalid event"))
			}
			continue
		}

		events = append(events, &inbound{event: &event, msg: msg})
	}

	return events, nil
}

// Close closes the NATS connection
func (s *subscriber) Close() {
	if s.nc == nil {
		return
	}

	s.nc.Close()
}
