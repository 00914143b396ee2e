package store

import (
	"math/big"

	"gorm.io/datatypes"

	"github.com/wearmarket/marketplace-indexer/internal/domain"
	"github.com/wearmarket/marketplace-indexer/internal/store/schema"
)

// numeric renders a big integer as its numeric(78,0) column value
func numeric(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}

// bigFromNumeric parses a numeric(78,0) column value. Empty or malformed
// values map to zero rather than poisoning the whole row.
func bigFromNumeric(s string) *big.Int {
	if s == "" {
		return new(big.Int)
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return new(big.Int)
	}
	return v
}

func setToSlice(s domain.StringSet) datatypes.JSONSlice[string] {
	return datatypes.NewJSONSlice(s.Values())
}

func accountToSchema(a *domain.Account) *schema.Account {
	return &schema.Account{
		ID:                        a.ID,
		Address:                   a.Address,
		Network:                   string(a.Network),
		Purchases:                 a.Purchases,
		Spent:                     numeric(a.Spent),
		Sales:                     a.Sales,
		Earned:                    numeric(a.Earned),
		Royalties:                 numeric(a.Royalties),
		PrimarySales:              a.PrimarySales,
		PrimarySalesEarned:        numeric(a.PrimarySalesEarned),
		UniqueCollectors:          setToSlice(a.UniqueCollectors),
		UniqueCollectorsTotal:     a.UniqueCollectorsTotal,
		CreatorsSupported:         setToSlice(a.CreatorsSupported),
		CreatorsSupportedTotal:    a.CreatorsSupportedTotal,
		UniqueAndMythicItems:      setToSlice(a.UniqueAndMythicItems),
		UniqueAndMythicItemsTotal: a.UniqueAndMythicItemsTotal,
		UpdatedAt:                 a.UpdatedAt,
	}
}

func accountFromSchema(a *schema.Account) *domain.Account {
	return &domain.Account{
		ID:                        a.ID,
		Address:                   a.Address,
		Network:                   domain.Network(a.Network),
		Purchases:                 a.Purchases,
		Spent:                     bigFromNumeric(a.Spent),
		Sales:                     a.Sales,
		Earned:                    bigFromNumeric(a.Earned),
		Royalties:                 bigFromNumeric(a.Royalties),
		PrimarySales:              a.PrimarySales,
		PrimarySalesEarned:        bigFromNumeric(a.PrimarySalesEarned),
		UniqueCollectors:          domain.NewStringSet(a.UniqueCollectors...),
		UniqueCollectorsTotal:     a.UniqueCollectorsTotal,
		CreatorsSupported:         domain.NewStringSet(a.CreatorsSupported...),
		CreatorsSupportedTotal:    a.CreatorsSupportedTotal,
		UniqueAndMythicItems:      domain.NewStringSet(a.UniqueAndMythicItems...),
		UniqueAndMythicItemsTotal: a.UniqueAndMythicItemsTotal,
		UpdatedAt:                 a.UpdatedAt,
	}
}

func itemToSchema(i *domain.Item) *schema.Item {
	return &schema.Item{
		ID:                    i.ID,
		BlockchainID:          i.BlockchainID,
		Network:               string(i.Network),
		Creator:               i.Creator,
		Beneficiary:           i.Beneficiary,
		Rarity:                i.Rarity,
		Category:              i.Category,
		Sales:                 i.Sales,
		Volume:                numeric(i.Volume),
		UniqueCollectors:      setToSlice(i.UniqueCollectors),
		UniqueCollectorsTotal: i.UniqueCollectorsTotal,
		SoldAt:                i.SoldAt,
		CreatedAt:             i.CreatedAt,
		UpdatedAt:             i.UpdatedAt,
	}
}

func itemFromSchema(i *schema.Item) *domain.Item {
	return &domain.Item{
		ID:                    i.ID,
		BlockchainID:          i.BlockchainID,
		Network:               domain.Network(i.Network),
		Creator:               i.Creator,
		Beneficiary:           i.Beneficiary,
		Rarity:                i.Rarity,
		Category:              i.Category,
		Sales:                 i.Sales,
		Volume:                bigFromNumeric(i.Volume),
		UniqueCollectors:      domain.NewStringSet(i.UniqueCollectors...),
		UniqueCollectorsTotal: i.UniqueCollectorsTotal,
		SoldAt:                i.SoldAt,
		CreatedAt:             i.CreatedAt,
		UpdatedAt:             i.UpdatedAt,
	}
}

func nftToSchema(n *domain.NFT) *schema.NFT {
	return &schema.NFT{
		ID:              n.ID,
		ContractAddress: n.ContractAddress,
		TokenID:         n.TokenID,
		ItemID:          n.ItemID,
		Category:        n.Category,
		Network:         string(n.Network),
		Sales:           n.Sales,
		Volume:          numeric(n.Volume),
		SoldAt:          n.SoldAt,
		UpdatedAt:       n.UpdatedAt,
	}
}

func nftFromSchema(n *schema.NFT) *domain.NFT {
	return &domain.NFT{
		ID:              n.ID,
		ContractAddress: n.ContractAddress,
		TokenID:         n.TokenID,
		ItemID:          n.ItemID,
		Category:        n.Category,
		Network:         domain.Network(n.Network),
		Sales:           n.Sales,
		Volume:          bigFromNumeric(n.Volume),
		SoldAt:          n.SoldAt,
		UpdatedAt:       n.UpdatedAt,
	}
}

func saleToSchema(s *domain.Sale) *schema.Sale {
	return &schema.Sale{
		ID:                    s.ID,
		Type:                  string(s.Type),
		Network:               string(s.Network),
		RealBuyer:             s.RealBuyer,
		Buyer:                 s.Buyer,
		Seller:                s.Seller,
		Beneficiary:           s.Beneficiary,
		Operation:             string(s.Operation),
		Price:                 numeric(s.Price),
		FeesCollector:         s.FeesCollector,
		FeesCollectorCut:      numeric(s.FeesCollectorCut),
		RoyaltiesCollector:    s.RoyaltiesCollector,
		RoyaltiesCut:          numeric(s.RoyaltiesCut),
		ItemID:                s.ItemID,
		NFTID:                 s.NFTID,
		Timestamp:             s.Timestamp,
		TxHash:                s.TxHash,
		SearchItemID:          s.SearchItemID,
		SearchTokenID:         s.SearchTokenID,
		SearchContractAddress: s.SearchContractAddress,
		SearchCategory:        s.SearchCategory,
		UpdatedAt:             s.UpdatedAt,
	}
}

func saleFromSchema(s *schema.Sale) *domain.Sale {
	return &domain.Sale{
		ID:                    s.ID,
		Type:                  domain.SaleType(s.Type),
		Network:               domain.Network(s.Network),
		RealBuyer:             s.RealBuyer,
		Buyer:                 s.Buyer,
		Seller:                s.Seller,
		Beneficiary:           s.Beneficiary,
		Operation:             domain.Operation(s.Operation),
		Price:                 bigFromNumeric(s.Price),
		FeesCollector:         s.FeesCollector,
		FeesCollectorCut:      bigFromNumeric(s.FeesCollectorCut),
		RoyaltiesCollector:    s.RoyaltiesCollector,
		RoyaltiesCut:          bigFromNumeric(s.RoyaltiesCut),
		ItemID:                s.ItemID,
		NFTID:                 s.NFTID,
		Timestamp:             s.Timestamp,
		TxHash:                s.TxHash,
		SearchItemID:          s.SearchItemID,
		SearchTokenID:         s.SearchTokenID,
		SearchContractAddress: s.SearchContractAddress,
		SearchCategory:        s.SearchCategory,
		UpdatedAt:             s.UpdatedAt,
	}
}

func countToSchema(c *domain.Count) *schema.Count {
	return &schema.Count{
		ID:                       c.ID,
		Network:                  string(c.Network),
		OrdersTotal:              c.OrdersTotal,
		SalesTotal:               c.SalesTotal,
		SalesManaTotal:           numeric(c.SalesManaTotal),
		RoyaltiesManaTotal:       numeric(c.RoyaltiesManaTotal),
		CreatorEarningsManaTotal: numeric(c.CreatorEarningsManaTotal),
		DAOEarningsManaTotal:     numeric(c.DAOEarningsManaTotal),
		PrimarySalesTotal:        c.PrimarySalesTotal,
		PrimarySalesManaTotal:    numeric(c.PrimarySalesManaTotal),
		SecondarySalesTotal:      c.SecondarySalesTotal,
		SecondarySalesManaTotal:  numeric(c.SecondarySalesManaTotal),
		UpdatedAt:                c.UpdatedAt,
	}
}

func countFromSchema(c *schema.Count) *domain.Count {
	return &domain.Count{
		ID:                       c.ID,
		Network:                  domain.Network(c.Network),
		OrdersTotal:              c.OrdersTotal,
		SalesTotal:               c.SalesTotal,
		SalesManaTotal:           bigFromNumeric(c.SalesManaTotal),
		RoyaltiesManaTotal:       bigFromNumeric(c.RoyaltiesManaTotal),
		CreatorEarningsManaTotal: bigFromNumeric(c.CreatorEarningsManaTotal),
		DAOEarningsManaTotal:     bigFromNumeric(c.DAOEarningsManaTotal),
		PrimarySalesTotal:        c.PrimarySalesTotal,
		PrimarySalesManaTotal:    bigFromNumeric(c.PrimarySalesManaTotal),
		SecondarySalesTotal:      c.SecondarySalesTotal,
		SecondarySalesManaTotal:  bigFromNumeric(c.SecondarySalesManaTotal),
		UpdatedAt:                c.UpdatedAt,
	}
}

func analyticsToSchema(a *domain.AnalyticsDayData) *schema.AnalyticsDayData {
	return &schema.AnalyticsDayData{
		ID:               a.ID,
		Date:             a.Date,
		Network:          string(a.Network),
		Sales:            a.Sales,
		Volume:           numeric(a.Volume),
		CreatorsEarnings: numeric(a.CreatorsEarnings),
		DAOEarnings:      numeric(a.DAOEarnings),
		UpdatedAt:        a.UpdatedAt,
	}
}

func analyticsFromSchema(a *schema.AnalyticsDayData) *domain.AnalyticsDayData {
	return &domain.AnalyticsDayData{
		ID:               a.ID,
		Date:             a.Date,
		Network:          domain.Network(a.Network),
		Sales:            a.Sales,
		Volume:           bigFromNumeric(a.Volume),
		CreatorsEarnings: bigFromNumeric(a.CreatorsEarnings),
		DAOEarnings:      bigFromNumeric(a.DAOEarnings),
		UpdatedAt:        a.UpdatedAt,
	}
}

func itemDayToSchema(d *domain.ItemDayData) *schema.ItemDayData {
	return &schema.ItemDayData{
		ID:             d.ID,
		Date:           d.Date,
		ItemID:         d.ItemID,
		Sales:          d.Sales,
		Volume:         numeric(d.Volume),
		SearchRarity:   d.SearchRarity,
		SearchCategory: d.SearchCategory,
		UpdatedAt:      d.UpdatedAt,
	}
}

func itemDayFromSchema(d *schema.ItemDayData) *domain.ItemDayData {
	return &domain.ItemDayData{
		ID:             d.ID,
		Date:           d.Date,
		ItemID:         d.ItemID,
		Sales:          d.Sales,
		Volume:         bigFromNumeric(d.Volume),
		SearchRarity:   d.SearchRarity,
		SearchCategory: d.SearchCategory,
		UpdatedAt:      d.UpdatedAt,
	}
}

func accountDayToSchema(d *domain.AccountDayData) *schema.AccountDayData {
	return &schema.AccountDayData{
		ID:        d.ID,
		Date:      d.Date,
		Address:   d.Address,
		Network:   string(d.Network),
		Sales:     d.Sales,
		Purchases: d.Purchases,
		Volume:    numeric(d.Volume),
		Spent:     numeric(d.Spent),
		Earned:    numeric(d.Earned),
		UpdatedAt: d.UpdatedAt,
	}
}

func accountDayFromSchema(d *schema.AccountDayData) *domain.AccountDayData {
	return &domain.AccountDayData{
		ID:        d.ID,
		Date:      d.Date,
		Address:   d.Address,
		Network:   domain.Network(d.Network),
		Sales:     d.Sales,
		Purchases: d.Purchases,
		Volume:    bigFromNumeric(d.Volume),
		Spent:     bigFromNumeric(d.Spent),
		Earned:    bigFromNumeric(d.Earned),
		UpdatedAt: d.UpdatedAt,
	}
}
