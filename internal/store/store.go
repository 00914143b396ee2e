package store

import (
	"context"

	"github.com/wearmarket/marketplace-indexer/internal/domain"
)

// Reader seeds the entity cache from durable storage. Absent entities are
// returned as (nil, nil).
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore,Reader=MockReader
type Reader interface {
	// GetAccount retrieves an account by "{address}-{network}" id
	GetAccount(ctx context.Context, id string) (*domain.Account, error)
	// GetItem retrieves an item by id
	GetItem(ctx context.Context, id string) (*domain.Item, error)
	// GetNFT retrieves an NFT by id
	GetNFT(ctx context.Context, id string) (*domain.NFT, error)
	// GetCount retrieves the running totals row for a network id
	GetCount(ctx context.Context, id string) (*domain.Count, error)
	// GetAnalyticsDayData retrieves a global day bucket by "{dayIndex}-{network}" id
	GetAnalyticsDayData(ctx context.Context, id string) (*domain.AnalyticsDayData, error)
	// GetItemDayData retrieves an item day bucket by "{dayIndex}-{itemId}" id
	GetItemDayData(ctx context.Context, id string) (*domain.ItemDayData, error)
	// GetAccountDayData retrieves an account day bucket by "{dayIndex}-{address}-{network}" id
	GetAccountDayData(ctx context.Context, id string) (*domain.AccountDayData, error)
}

// SaleFilter narrows and pages the sale listing of the read API
type SaleFilter struct {
	Network domain.Network
	ItemID  string
	Buyer   string
	Limit   int
	Offset  int
}

// Store defines the interface for database operations
type Store interface {
	Reader

	// FlushWindow upserts every entity mutated during one processing window
	// in a single transaction
	FlushWindow(ctx context.Context, delta *domain.WindowDelta) error

	// GetLastNotified returns the last-notified timestamp for a logical
	// stream, 0 when the stream was never notified
	GetLastNotified(ctx context.Context, stream string) (int64, error)
	// SetLastNotified persists the last-notified timestamp for a stream
	SetLastNotified(ctx context.Context, stream string, timestamp int64) error

	// ListAnalyticsDayData returns the global day buckets of a network within
	// [fromDate, toDate], ordered by date
	ListAnalyticsDayData(ctx context.Context, network domain.Network, fromDate, toDate int64) ([]*domain.AnalyticsDayData, error)
	// ListItemDayData returns an item's day buckets within [fromDate, toDate]
	ListItemDayData(ctx context.Context, itemID string, fromDate, toDate int64) ([]*domain.ItemDayData, error)
	// ListAccountDayData returns an account's day buckets within
	// [fromDate, toDate]. An empty network lists the address across all
	// networks.
	ListAccountDayData(ctx context.Context, address string, network domain.Network, fromDate, toDate int64) ([]*domain.AccountDayData, error)
	// ListSales returns filtered sales ordered by descending timestamp plus
	// the total row count for pagination
	ListSales(ctx context.Context, filter SaleFilter) ([]*domain.Sale, int64, error)
}
