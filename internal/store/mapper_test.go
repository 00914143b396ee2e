package store

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wearmarket/marketplace-indexer/internal/domain"
)

func TestNumeric(t *testing.T) {
	// wei-scale values overflow int64; numeric(78,0) must keep full precision
	huge, ok := new(big.Int).SetString("115792089237316195423570985008687907853269984665640564039457", 10)
	require.True(t, ok)

	assert.Equal(t, "115792089237316195423570985008687907853269984665640564039457", numeric(huge))
	assert.Equal(t, "0", numeric(nil))
	assert.Equal(t, "0", numeric(new(big.Int)))
}

func TestBigFromNumeric(t *testing.T) {
	huge := "115792089237316195423570985008687907853269984665640564039457"
	assert.Equal(t, huge, bigFromNumeric(huge).String())

	// malformed column values read as zero instead of failing the row
	assert.Equal(t, int64(0), bigFromNumeric("").Int64())
	assert.Equal(t, int64(0), bigFromNumeric("not-a-number").Int64())
}

func TestSetToSlice_Sorted(t *testing.T) {
	set := domain.NewStringSet("0xcc", "0xaa", "0xbb")
	assert.Equal(t, []string{"0xaa", "0xbb", "0xcc"}, []string(setToSlice(set)))
}

func TestCountRoundTrip(t *testing.T) {
	count := domain.NewCount(domain.NetworkPolygon)
	count.OrdersTotal = 3
	count.SalesTotal = 7
	count.SalesManaTotal.SetString("123456789012345678901234567890", 10)
	count.PrimarySalesTotal = 2
	count.UpdatedAt = 1_700_000_000

	got := countFromSchema(countToSchema(count))
	assert.Equal(t, count, got)
}

func TestAccountRoundTrip(t *testing.T) {
	account := domain.NewAccount("0x1111111111111111111111111111111111111111", domain.NetworkPolygon)
	account.Purchases = 4
	account.Spent = big.NewInt(1_000_000)
	account.UniqueCollectors.Add("0xbb")
	account.UniqueCollectors.Add("0xaa")
	account.UniqueCollectorsTotal = 2
	account.UpdatedAt = 1_700_000_000

	got := accountFromSchema(accountToSchema(account))
	assert.Equal(t, account, got)
	assert.True(t, got.UniqueCollectors.Has("0xaa"))
}

func TestSaleRoundTrip(t *testing.T) {
	sale := &domain.Sale{
		ID:                 "1-polygon",
		Type:               domain.SaleTypeSecondary,
		Network:            domain.NetworkPolygon,
		RealBuyer:          "0x1111111111111111111111111111111111111111",
		Buyer:              "0x6666666666666666666666666666666666666666",
		Seller:             "0x2222222222222222222222222222222222222222",
		Operation:          domain.OperationFiat,
		Price:              big.NewInt(2_000_000),
		FeesCollector:      "0x5555555555555555555555555555555555555555",
		FeesCollectorCut:   big.NewInt(50_000),
		RoyaltiesCollector: "0x4444444444444444444444444444444444444444",
		RoyaltiesCut:       big.NewInt(100_000),
		ItemID:             "item-1",
		NFTID:              "nft-1",
		Timestamp:          1_700_000_000,
		TxHash:             "0xabc",
		UpdatedAt:          1_700_000_000,
	}
	got := saleFromSchema(saleToSchema(sale))
	assert.Equal(t, sale, got)
}
