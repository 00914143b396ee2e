package messaging

import (
	"context"

	"github.com/wearmarket/marketplace-indexer/internal/domain"
)

// Publisher defines the interface for publishing entity-change notifications
// to the message broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishChange publishes one entity-change notification
	PublishChange(ctx context.Context, change *domain.ChangeEvent) error
	// Close closes the connection
	Close()
}
