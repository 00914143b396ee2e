package aggregator

import (
	"math/big"

	"github.com/wearmarket/marketplace-indexer/internal/domain"
)

var oneMillion = big.NewInt(domain.OneMillion)

// Split partitions a sale price into the fees-collector cut and the royalties
// cut. Rates are fixed-point numerators over one million; division truncates.
func Split(price *big.Int, feesCutPerMillion, royaltiesCutPerMillion int64) (feesCollectorCut, royaltiesCut *big.Int) {
	feesCollectorCut = new(big.Int).Mul(price, big.NewInt(feesCutPerMillion))
	feesCollectorCut.Quo(feesCollectorCut, oneMillion)

	royaltiesCut = new(big.Int).Mul(price, big.NewInt(royaltiesCutPerMillion))
	royaltiesCut.Quo(royaltiesCut, oneMillion)

	return feesCollectorCut, royaltiesCut
}

// RoyaltiesReceiver returns the address entitled to the royalties cut: the
// item beneficiary when set, else the item creator, else the zero address.
func RoyaltiesReceiver(item *domain.Item) string {
	if !domain.IsZeroAddress(item.Beneficiary) {
		return domain.NormalizeAddress(item.Beneficiary)
	}
	if !domain.IsZeroAddress(item.Creator) {
		return domain.NormalizeAddress(item.Creator)
	}
	return domain.ZeroAddress
}
