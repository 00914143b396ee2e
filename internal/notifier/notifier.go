// Package notifier publishes out-of-band change notifications for NFTs and
// sales after a window flush. A persisted last-notified timestamp gates the
// stream: only entities updated after it are published, then the gate
// advances. Delivery is at-least-once; consumers dedupe on entity id.
package notifier

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/wearmarket/marketplace-indexer/internal/domain"
	"github.com/wearmarket/marketplace-indexer/internal/logger"
	"github.com/wearmarket/marketplace-indexer/internal/messaging"
)

// Checkpoints persists the last-notified timestamp per logical stream
//
//go:generate mockgen -source=notifier.go -destination=../mocks/notifier_checkpoints.go -package=mocks -mock_names=Checkpoints=MockCheckpoints
type Checkpoints interface {
	GetLastNotified(ctx context.Context, stream string) (int64, error)
	SetLastNotified(ctx context.Context, stream string, timestamp int64) error
}

// Notifier filters a flushed window delta against the stream gate and
// publishes one change event per entity that passed
type Notifier struct {
	checkpoints Checkpoints
	publisher   messaging.Publisher
	stream      string
}

// New creates a new notifier for the given logical stream
func New(checkpoints Checkpoints, publisher messaging.Publisher, stream string) *Notifier {
	return &Notifier{
		checkpoints: checkpoints,
		publisher:   publisher,
		stream:      stream,
	}
}

// Notify publishes change events for every NFT and sale in the delta updated
// after the stream's last-notified timestamp, then advances the gate. The
// gate only moves after every event published, so a failed publish causes
// re-publication, never a gap.
func (n *Notifier) Notify(ctx context.Context, delta *domain.WindowDelta) error {
	lastNotified, err := n.checkpoints.GetLastNotified(ctx, n.stream)
	if err != nil {
		return fmt.Errorf("failed to get last notified timestamp: %w", err)
	}

	maxUpdated := lastNotified
	published := 0

	for _, nft := range delta.NFTs {
		if nft.UpdatedAt <= lastNotified {
			continue
		}
		change := &domain.ChangeEvent{
			Kind:      domain.ChangeKindNFT,
			ID:        nft.ID,
			Network:   nft.Network,
			UpdatedAt: nft.UpdatedAt,
		}
		if err := n.publisher.PublishChange(ctx, change); err != nil {
			return fmt.Errorf("failed to publish nft change: %w", err)
		}
		published++
		if nft.UpdatedAt > maxUpdated {
			maxUpdated = nft.UpdatedAt
		}
	}

	for _, sale := range delta.Sales {
		if sale.UpdatedAt <= lastNotified {
			continue
		}
		change := &domain.ChangeEvent{
			Kind:      domain.ChangeKindSale,
			ID:        sale.ID,
			Network:   sale.Network,
			UpdatedAt: sale.UpdatedAt,
		}
		if err := n.publisher.PublishChange(ctx, change); err != nil {
			return fmt.Errorf("failed to publish sale change: %w", err)
		}
		published++
		if sale.UpdatedAt > maxUpdated {
			maxUpdated = sale.UpdatedAt
		}
	}

	if maxUpdated > lastNotified {
		if err := n.checkpoints.SetLastNotified(ctx, n.stream, maxUpdated); err != nil {
			return fmt.Errorf("failed to advance last notified timestamp: %w", err)
		}
	}

	if published > 0 {
		logger.Debug("published change events",
			zap.Int("count", published),
			zap.Int64("lastNotified", maxUpdated))
	}

	return nil
}
