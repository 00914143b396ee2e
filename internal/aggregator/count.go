package aggregator

import (
	"context"
	"math/big"

	"github.com/wearmarket/marketplace-indexer/internal/cache"
	"github.com/wearmarket/marketplace-indexer/internal/domain"
)

func loadCount(ctx context.Context, c *cache.Cache, network domain.Network) (*domain.Count, error) {
	return c.Counts.GetOrCreate(ctx, string(network), func() *domain.Count {
		return domain.NewCount(network)
	})
}

func loadAccount(ctx context.Context, c *cache.Cache, address string, network domain.Network) (*domain.Account, error) {
	return c.Accounts.GetOrCreate(ctx, domain.AccountID(address, network), func() *domain.Account {
		return domain.NewAccount(address, network)
	})
}

// applySaleTotals adds the post-fold sale amounts to the network running
// totals. CreatorEarnings gets the full net price on a mint and only the
// royalties cut on a resale; DAOEarnings accrues on mints only.
func applySaleTotals(count *domain.Count, sale *domain.Sale, totalFees *big.Int) {
	count.SalesManaTotal.Add(count.SalesManaTotal, sale.Price)
	count.RoyaltiesManaTotal.Add(count.RoyaltiesManaTotal, totalFees)

	if sale.Type == domain.SaleTypeMint {
		earnings := new(big.Int).Sub(sale.Price, sale.FeesCollectorCut)
		count.CreatorEarningsManaTotal.Add(count.CreatorEarningsManaTotal, earnings)
		count.DAOEarningsManaTotal.Add(count.DAOEarningsManaTotal, sale.FeesCollectorCut)
	} else {
		count.CreatorEarningsManaTotal.Add(count.CreatorEarningsManaTotal, sale.RoyaltiesCut)
	}
}

func applyPrimarySale(count *domain.Count, price *big.Int) {
	count.PrimarySalesTotal++
	count.PrimarySalesManaTotal.Add(count.PrimarySalesManaTotal, price)
}

func applySecondarySale(count *domain.Count, price *big.Int) {
	count.SecondarySalesTotal++
	count.SecondarySalesManaTotal.Add(count.SecondarySalesManaTotal, price)
}
