package aggregator_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wearmarket/marketplace-indexer/internal/aggregator"
	"github.com/wearmarket/marketplace-indexer/internal/domain"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name             string
		price            int64
		feesCut          int64
		royaltiesCut     int64
		wantFeesCut      int64
		wantRoyaltiesCut int64
	}{
		{"mint with fees only", 1_000_000, 25_000, 0, 25_000, 0},
		{"secondary with both cuts", 2_000_000, 25_000, 50_000, 50_000, 100_000},
		{"truncating division", 999, 25_000, 0, 24, 0},
		{"price below rate resolution", 39, 25_000, 0, 0, 0},
		{"zero rates", 1_000_000, 0, 0, 0, 0},
		{"full price cut", 1_000_000, 1_000_000, 0, 1_000_000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fees, royalties := aggregator.Split(big.NewInt(tt.price), tt.feesCut, tt.royaltiesCut)
			assert.Equal(t, tt.wantFeesCut, fees.Int64())
			assert.Equal(t, tt.wantRoyaltiesCut, royalties.Int64())
		})
	}
}

func TestSplit_DoesNotMutatePrice(t *testing.T) {
	price := big.NewInt(1_000_000)
	aggregator.Split(price, 25_000, 50_000)
	assert.Equal(t, int64(1_000_000), price.Int64())
}

func TestRoyaltiesReceiver(t *testing.T) {
	tests := []struct {
		name        string
		beneficiary string
		creator     string
		want        string
	}{
		{"beneficiary wins", "0xBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBB", "0xcccccccccccccccccccccccccccccccccccccccc", "0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"},
		{"creator fallback", "", "0xcccccccccccccccccccccccccccccccccccccccc", "0xcccccccccccccccccccccccccccccccccccccccc"},
		{"zero beneficiary falls to creator", domain.ZeroAddress, "0xcccccccccccccccccccccccccccccccccccccccc", "0xcccccccccccccccccccccccccccccccccccccccc"},
		{"both empty", "", "", domain.ZeroAddress},
		{"both zero", domain.ZeroAddress, domain.ZeroAddress, domain.ZeroAddress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := &domain.Item{Beneficiary: tt.beneficiary, Creator: tt.creator}
			assert.Equal(t, tt.want, aggregator.RoyaltiesReceiver(item))
		})
	}
}
