package domain

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// Network represents the marketplace network an event originated from
type Network string

const (
	NetworkEthereum Network = "ethereum"
	NetworkPolygon  Network = "polygon"
)

// IsValidNetwork checks if a network is supported
func IsValidNetwork(network Network) bool {
	return network == NetworkEthereum || network == NetworkPolygon
}

// SaleType distinguishes a primary (mint) sale from a resale
type SaleType string

const (
	SaleTypeMint      SaleType = "mint"
	SaleTypeSecondary SaleType = "secondary"
)

// Operation classifies the economic origin of a sale based on the paying address
type Operation string

const (
	OperationNative     Operation = "native"
	OperationFiat       Operation = "fiat"
	OperationCrossChain Operation = "cross_chain"
	OperationCredits    Operation = "credits"
)

// EventKind is the tag of the normalized marketplace event union
type EventKind string

const (
	EventKindSale  EventKind = "sale"
	EventKindOrder EventKind = "order"
)

// OrderStatus represents the lifecycle state carried by an order event
type OrderStatus string

const (
	OrderStatusCreated    OrderStatus = "created"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusSuccessful OrderStatus = "successful"
)

// SaleEvent carries the decoded payload of a sale-type chain event.
// Cuts are fixed-point rates over one million, amounts are in the smallest
// currency unit (wei-scale, integer exact).
type SaleEvent struct {
	Type                   SaleType `json:"type"`
	Buyer                  string   `json:"buyer"`
	Seller                 string   `json:"seller"`
	Beneficiary            string   `json:"beneficiary"`
	ItemID                 string   `json:"item_id"`
	NFTID                  string   `json:"nft_id"`
	Price                  *big.Int `json:"price"`
	FeesCollector          string   `json:"fees_collector"`
	FeesCutPerMillion      int64    `json:"fees_cut_per_million"`
	RoyaltiesCutPerMillion int64    `json:"royalties_cut_per_million"`
}

// OrderEvent carries the payload of an order-lifecycle event. Successful
// orders also carry the sale payload and are aggregated as secondary sales.
type OrderEvent struct {
	OrderID string      `json:"order_id"`
	Status  OrderStatus `json:"status"`
	NFTID   string      `json:"nft_id"`
	Sale    *SaleEvent  `json:"sale,omitempty"`
}

// MarketplaceEvent is the normalized, tagged event record the aggregation
// engine consumes. Exactly one of Sale or Order is set, matching Kind.
type MarketplaceEvent struct {
	Kind      EventKind   `json:"kind"`
	Network   Network     `json:"network"`
	Timestamp int64       `json:"timestamp"` // block timestamp, unix seconds
	TxHash    string      `json:"tx_hash"`
	Sale      *SaleEvent  `json:"sale,omitempty"`
	Order     *OrderEvent `json:"order,omitempty"`
}

// Valid checks structural validity of the event union
func (e *MarketplaceEvent) Valid() bool {
	if !IsValidNetwork(e.Network) || e.Timestamp <= 0 || e.TxHash == "" {
		return false
	}

	switch e.Kind {
	case EventKindSale:
		return e.Sale != nil && e.Order == nil && e.Sale.Valid()
	case EventKindOrder:
		if e.Order == nil || e.Sale != nil {
			return false
		}
		switch e.Order.Status {
		case OrderStatusCreated, OrderStatusCancelled:
			return e.Order.Sale == nil
		case OrderStatusSuccessful:
			return e.Order.Sale != nil && e.Order.Sale.Valid()
		default:
			return false
		}
	default:
		return false
	}
}

// SalePayload returns the sale payload of the event regardless of whether it
// arrived as a direct sale or as a successful order, nil otherwise.
func (e *MarketplaceEvent) SalePayload() *SaleEvent {
	switch e.Kind {
	case EventKindSale:
		return e.Sale
	case EventKindOrder:
		if e.Order != nil && e.Order.Status == OrderStatusSuccessful {
			return e.Order.Sale
		}
	}
	return nil
}

// Valid checks structural validity of a sale payload
func (s *SaleEvent) Valid() bool {
	if s.Type != SaleTypeMint && s.Type != SaleTypeSecondary {
		return false
	}
	if s.Buyer == "" || s.Seller == "" || s.NFTID == "" {
		return false
	}
	if s.Price == nil || s.Price.Sign() < 0 {
		return false
	}
	return s.FeesCutPerMillion >= 0 && s.RoyaltiesCutPerMillion >= 0
}

// NormalizeAddress normalizes an Ethereum-style address to its lowercase hex
// form. Allow-list membership and account identity both rely on this form.
func NormalizeAddress(address string) string {
	if strings.HasPrefix(address, "0x") {
		return strings.ToLower(common.HexToAddress(address).Hex())
	}
	return strings.ToLower(address)
}

// IsZeroAddress reports whether the address is empty or the zero address
func IsZeroAddress(address string) bool {
	return address == "" || NormalizeAddress(address) == ZeroAddress
}

// AccountID builds the cache/storage identity of an account, scoped by network
func AccountID(address string, network Network) string {
	return fmt.Sprintf("%s-%s", NormalizeAddress(address), network)
}

// SaleID builds the sale identity from the post-increment network sales total
func SaleID(sequence int64, network Network) string {
	return fmt.Sprintf("%d-%s", sequence, network)
}

// DayIndex maps a unix timestamp to its UTC day index (truncating division)
func DayIndex(timestamp int64) int64 {
	return timestamp / SecondsPerDay
}

// DayBucketID builds the identity of a day-bucket rollup for a dimension key
func DayBucketID(dayIndex int64, dimensionKey string) string {
	return fmt.Sprintf("%d-%s", dayIndex, dimensionKey)
}
