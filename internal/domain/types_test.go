package domain_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wearmarket/marketplace-indexer/internal/domain"
)

func validSale() *domain.SaleEvent {
	return &domain.SaleEvent{
		Type:                   domain.SaleTypeMint,
		Buyer:                  "0x1111111111111111111111111111111111111111",
		Seller:                 "0x2222222222222222222222222222222222222222",
		Beneficiary:            "0x1111111111111111111111111111111111111111",
		ItemID:                 "0xcontract-0",
		NFTID:                  "0xcontract-0-1",
		Price:                  big.NewInt(1_000_000),
		FeesCollector:          "0x3333333333333333333333333333333333333333",
		FeesCutPerMillion:      25_000,
		RoyaltiesCutPerMillion: 0,
	}
}

func TestMarketplaceEvent_Valid(t *testing.T) {
	tests := []struct {
		name  string
		event domain.MarketplaceEvent
		want  bool
	}{
		{
			name: "valid sale event",
			event: domain.MarketplaceEvent{
				Kind:      domain.EventKindSale,
				Network:   domain.NetworkPolygon,
				Timestamp: 1700000000,
				TxHash:    "0xabc",
				Sale:      validSale(),
			},
			want: true,
		},
		{
			name: "sale event without payload",
			event: domain.MarketplaceEvent{
				Kind:      domain.EventKindSale,
				Network:   domain.NetworkPolygon,
				Timestamp: 1700000000,
				TxHash:    "0xabc",
			},
			want: false,
		},
		{
			name: "unknown network",
			event: domain.MarketplaceEvent{
				Kind:      domain.EventKindSale,
				Network:   "solana",
				Timestamp: 1700000000,
				TxHash:    "0xabc",
				Sale:      validSale(),
			},
			want: false,
		},
		{
			name: "order created without sale payload",
			event: domain.MarketplaceEvent{
				Kind:      domain.EventKindOrder,
				Network:   domain.NetworkEthereum,
				Timestamp: 1700000000,
				TxHash:    "0xabc",
				Order:     &domain.OrderEvent{OrderID: "1", Status: domain.OrderStatusCreated, NFTID: "0xc-1"},
			},
			want: true,
		},
		{
			name: "successful order requires sale payload",
			event: domain.MarketplaceEvent{
				Kind:      domain.EventKindOrder,
				Network:   domain.NetworkEthereum,
				Timestamp: 1700000000,
				TxHash:    "0xabc",
				Order:     &domain.OrderEvent{OrderID: "1", Status: domain.OrderStatusSuccessful, NFTID: "0xc-1"},
			},
			want: false,
		},
		{
			name: "both payloads set",
			event: domain.MarketplaceEvent{
				Kind:      domain.EventKindOrder,
				Network:   domain.NetworkEthereum,
				Timestamp: 1700000000,
				TxHash:    "0xabc",
				Sale:      validSale(),
				Order:     &domain.OrderEvent{OrderID: "1", Status: domain.OrderStatusCreated},
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.event.Valid())
		})
	}
}

func TestSaleEvent_Valid_NegativePrice(t *testing.T) {
	sale := validSale()
	sale.Price = big.NewInt(-1)
	assert.False(t, sale.Valid())
}

func TestMarketplaceEvent_SalePayload(t *testing.T) {
	sale := validSale()

	direct := domain.MarketplaceEvent{Kind: domain.EventKindSale, Sale: sale}
	assert.Equal(t, sale, direct.SalePayload())

	successful := domain.MarketplaceEvent{
		Kind:  domain.EventKindOrder,
		Order: &domain.OrderEvent{Status: domain.OrderStatusSuccessful, Sale: sale},
	}
	assert.Equal(t, sale, successful.SalePayload())

	cancelled := domain.MarketplaceEvent{
		Kind:  domain.EventKindOrder,
		Order: &domain.OrderEvent{Status: domain.OrderStatusCancelled},
	}
	assert.Nil(t, cancelled.SalePayload())
}

func TestNormalizeAddress(t *testing.T) {
	assert.Equal(t,
		"0xed038688ecf1193f8d9717eb3930f0bf0d745cb4",
		domain.NormalizeAddress("0xED038688ECF1193F8d9717EB3930F0BF0d745CB4"))
	assert.Equal(t, domain.ZeroAddress, domain.NormalizeAddress("0x0"))
}

func TestIsZeroAddress(t *testing.T) {
	assert.True(t, domain.IsZeroAddress(""))
	assert.True(t, domain.IsZeroAddress(domain.ZeroAddress))
	assert.False(t, domain.IsZeroAddress("0x1111111111111111111111111111111111111111"))
}

func TestDayIndex_Boundary(t *testing.T) {
	// two sales one second apart across the UTC day boundary land in
	// adjacent buckets
	assert.Equal(t, int64(0), domain.DayIndex(86399))
	assert.Equal(t, int64(1), domain.DayIndex(86400))
	assert.Equal(t, domain.DayIndex(86399)+1, domain.DayIndex(86400))
}

func TestDayBucketID(t *testing.T) {
	assert.Equal(t, "19732-polygon", domain.DayBucketID(19732, "polygon"))
}

func TestSaleID(t *testing.T) {
	assert.Equal(t, "42-polygon", domain.SaleID(42, domain.NetworkPolygon))
}

func TestStringSet_CardinalityMatchesMembers(t *testing.T) {
	set := domain.NewStringSet()

	assert.True(t, set.Add("a"))
	assert.True(t, set.Add("b"))
	assert.False(t, set.Add("a")) // duplicate insert is a no-op

	assert.Equal(t, 2, set.Len())
	assert.Equal(t, []string{"a", "b"}, set.Values())
	assert.True(t, set.Has("b"))
	assert.False(t, set.Has("c"))
}

func TestNewAccount_ZeroValued(t *testing.T) {
	account := domain.NewAccount("0xAbC1111111111111111111111111111111111111", domain.NetworkPolygon)

	assert.Equal(t, "0xabc1111111111111111111111111111111111111-polygon", account.ID)
	assert.Zero(t, account.Purchases)
	assert.Zero(t, account.Spent.Sign())
	assert.Zero(t, account.Earned.Sign())
	assert.Equal(t, 0, account.UniqueCollectors.Len())
}

func TestNewAnalyticsDayData_BucketStart(t *testing.T) {
	bucket := domain.NewAnalyticsDayData(19732, domain.NetworkEthereum)

	assert.Equal(t, "19732-ethereum", bucket.ID)
	assert.Equal(t, int64(19732*86400), bucket.Date)
	assert.Zero(t, bucket.Volume.Sign())
}
