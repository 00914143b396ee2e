package aggregator

import (
	"context"
	"math/big"

	"github.com/wearmarket/marketplace-indexer/internal/cache"
	"github.com/wearmarket/marketplace-indexer/internal/domain"
)

// Day buckets are create-then-merge: the first touch of a day+dimension
// creates a zero-valued bucket, every later touch within the same day
// accumulates into it. Buckets never merge across day boundaries.

func mergeAnalyticsDayData(ctx context.Context, c *cache.Cache, sale *domain.Sale) error {
	day := domain.DayIndex(sale.Timestamp)
	bucket, err := c.Analytics.GetOrCreate(ctx, domain.DayBucketID(day, string(sale.Network)), func() *domain.AnalyticsDayData {
		return domain.NewAnalyticsDayData(day, sale.Network)
	})
	if err != nil {
		return err
	}

	bucket.Sales++
	bucket.Volume.Add(bucket.Volume, sale.Price)
	if sale.Type == domain.SaleTypeMint {
		earnings := new(big.Int).Sub(sale.Price, sale.FeesCollectorCut)
		bucket.CreatorsEarnings.Add(bucket.CreatorsEarnings, earnings)
	} else {
		bucket.CreatorsEarnings.Add(bucket.CreatorsEarnings, sale.RoyaltiesCut)
	}
	bucket.DAOEarnings.Add(bucket.DAOEarnings, sale.FeesCollectorCut)
	bucket.UpdatedAt = sale.Timestamp

	c.Analytics.MarkDirty(bucket.ID)
	return nil
}

func mergeItemDayData(ctx context.Context, c *cache.Cache, sale *domain.Sale, item *domain.Item) error {
	day := domain.DayIndex(sale.Timestamp)
	bucket, err := c.ItemDays.GetOrCreate(ctx, domain.DayBucketID(day, item.ID), func() *domain.ItemDayData {
		return domain.NewItemDayData(day, item.ID)
	})
	if err != nil {
		return err
	}

	bucket.Sales++
	bucket.Volume.Add(bucket.Volume, sale.Price)
	bucket.SearchRarity = item.Rarity
	bucket.SearchCategory = item.Category
	bucket.UpdatedAt = sale.Timestamp

	c.ItemDays.MarkDirty(bucket.ID)
	return nil
}

func loadAccountDayData(ctx context.Context, c *cache.Cache, sale *domain.Sale, address string) (*domain.AccountDayData, error) {
	day := domain.DayIndex(sale.Timestamp)
	return c.AccountDays.GetOrCreate(ctx, domain.DayBucketID(day, domain.AccountID(address, sale.Network)), func() *domain.AccountDayData {
		return domain.NewAccountDayData(day, address, sale.Network)
	})
}

// mergeBuyerDayData accumulates the buyer side of a sale into the bucket of
// the address that owns the NFT after the sale
func mergeBuyerDayData(ctx context.Context, c *cache.Cache, sale *domain.Sale) error {
	bucket, err := loadAccountDayData(ctx, c, sale, sale.Buyer)
	if err != nil {
		return err
	}

	bucket.Purchases++
	bucket.Volume.Add(bucket.Volume, sale.Price)
	bucket.Spent.Add(bucket.Spent, sale.Price)
	bucket.UpdatedAt = sale.Timestamp

	c.AccountDays.MarkDirty(bucket.ID)
	return nil
}

// mergeCreatorDayData accumulates the creator's net earnings from a sale into
// the creator's bucket
func mergeCreatorDayData(ctx context.Context, c *cache.Cache, sale *domain.Sale, creator string, earnings *big.Int) error {
	bucket, err := loadAccountDayData(ctx, c, sale, creator)
	if err != nil {
		return err
	}

	bucket.Sales++
	bucket.Earned.Add(bucket.Earned, earnings)
	bucket.UpdatedAt = sale.Timestamp

	c.AccountDays.MarkDirty(bucket.ID)
	return nil
}
