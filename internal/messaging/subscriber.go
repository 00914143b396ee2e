package messaging

import (
	"context"

	"github.com/wearmarket/marketplace-indexer/internal/domain"
)

// Inbound is one consumed marketplace event together with its delivery
// controls. Ack confirms processing, Nak requests redelivery, Term drops the
// message permanently.
//
//go:generate mockgen -source=subscriber.go -destination=../mocks/subscriber.go -package=mocks -mock_names=Inbound=MockInbound,Subscriber=MockSubscriber
type Inbound interface {
	Event() *domain.MarketplaceEvent
	Ack() error
	Nak() error
	Term() error
}

// Subscriber pulls batches of marketplace events from the broker. Events
// within one batch preserve broker delivery order; the aggregation engine
// depends on that ordering.
type Subscriber interface {
	// Fetch pulls up to batch decodable events. Malformed messages are
	// terminated and skipped, they never surface as errors.
	Fetch(ctx context.Context, batch int) ([]Inbound, error)

	// Close closes the connection and cleans up resources
	Close()
}
