package rest

import (
	"math/big"

	"github.com/wearmarket/marketplace-indexer/internal/domain"
)

// Monetary values are serialized as decimal strings: they are wei-scale
// integers far beyond float64 precision.

// CountDTO is the read model of a per-network Count row
type CountDTO struct {
	Network                  domain.Network `json:"network"`
	OrdersTotal              int64          `json:"orders_total"`
	SalesTotal               int64          `json:"sales_total"`
	SalesManaTotal           string         `json:"sales_mana_total"`
	RoyaltiesManaTotal       string         `json:"royalties_mana_total"`
	CreatorEarningsManaTotal string         `json:"creator_earnings_mana_total"`
	DAOEarningsManaTotal     string         `json:"dao_earnings_mana_total"`
	PrimarySalesTotal        int64          `json:"primary_sales_total"`
	PrimarySalesManaTotal    string         `json:"primary_sales_mana_total"`
	SecondarySalesTotal      int64          `json:"secondary_sales_total"`
	SecondarySalesManaTotal  string         `json:"secondary_sales_mana_total"`
}

// AnalyticsDayDTO is the read model of a global analytics day bucket
type AnalyticsDayDTO struct {
	ID               string         `json:"id"`
	Date             int64          `json:"date"`
	Network          domain.Network `json:"network"`
	Sales            int64          `json:"sales"`
	Volume           string         `json:"volume"`
	CreatorsEarnings string         `json:"creators_earnings"`
	DAOEarnings      string         `json:"dao_earnings"`
}

// ItemDayDTO is the read model of a per-item day bucket
type ItemDayDTO struct {
	ID             string `json:"id"`
	Date           int64  `json:"date"`
	ItemID         string `json:"item_id"`
	Sales          int64  `json:"sales"`
	Volume         string `json:"volume"`
	SearchRarity   string `json:"search_rarity,omitempty"`
	SearchCategory string `json:"search_category,omitempty"`
}

// AccountDayDTO is the read model of a per-account day bucket
type AccountDayDTO struct {
	ID        string         `json:"id"`
	Date      int64          `json:"date"`
	Address   string         `json:"address"`
	Network   domain.Network `json:"network"`
	Sales     int64          `json:"sales"`
	Purchases int64          `json:"purchases"`
	Volume    string         `json:"volume"`
	Spent     string         `json:"spent"`
	Earned    string         `json:"earned"`
}

// SaleDTO is the read model of a sale record
type SaleDTO struct {
	ID                 string           `json:"id"`
	Type               domain.SaleType  `json:"type"`
	Network            domain.Network   `json:"network"`
	Operation          domain.Operation `json:"operation"`
	Buyer              string           `json:"buyer"`
	RealBuyer          string           `json:"real_buyer"`
	Seller             string           `json:"seller"`
	Price              string           `json:"price"`
	FeesCollectorCut   string           `json:"fees_collector_cut"`
	RoyaltiesCut       string           `json:"royalties_cut"`
	RoyaltiesCollector string           `json:"royalties_collector"`
	ItemID             string           `json:"item_id"`
	NFTID              string           `json:"nft_id"`
	Timestamp          int64            `json:"timestamp"`
	TxHash             string           `json:"tx_hash"`
}

// ListSalesResponse is the paginated sales listing
type ListSalesResponse struct {
	Total  int64     `json:"total"`
	Limit  int       `json:"limit"`
	Offset int       `json:"offset"`
	Sales  []SaleDTO `json:"sales"`
}

func bigString(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}

func countToDTO(count *domain.Count) CountDTO {
	return CountDTO{
		Network:                  count.Network,
		OrdersTotal:              count.OrdersTotal,
		SalesTotal:               count.SalesTotal,
		SalesManaTotal:           bigString(count.SalesManaTotal),
		RoyaltiesManaTotal:       bigString(count.RoyaltiesManaTotal),
		CreatorEarningsManaTotal: bigString(count.CreatorEarningsManaTotal),
		DAOEarningsManaTotal:     bigString(count.DAOEarningsManaTotal),
		PrimarySalesTotal:        count.PrimarySalesTotal,
		PrimarySalesManaTotal:    bigString(count.PrimarySalesManaTotal),
		SecondarySalesTotal:      count.SecondarySalesTotal,
		SecondarySalesManaTotal:  bigString(count.SecondarySalesManaTotal),
	}
}

func analyticsToDTO(bucket *domain.AnalyticsDayData) AnalyticsDayDTO {
	return AnalyticsDayDTO{
		ID:               bucket.ID,
		Date:             bucket.Date,
		Network:          bucket.Network,
		Sales:            bucket.Sales,
		Volume:           bigString(bucket.Volume),
		CreatorsEarnings: bigString(bucket.CreatorsEarnings),
		DAOEarnings:      bigString(bucket.DAOEarnings),
	}
}

func itemDayToDTO(bucket *domain.ItemDayData) ItemDayDTO {
	return ItemDayDTO{
		ID:             bucket.ID,
		Date:           bucket.Date,
		ItemID:         bucket.ItemID,
		Sales:          bucket.Sales,
		Volume:         bigString(bucket.Volume),
		SearchRarity:   bucket.SearchRarity,
		SearchCategory: bucket.SearchCategory,
	}
}

func accountDayToDTO(bucket *domain.AccountDayData) AccountDayDTO {
	return AccountDayDTO{
		ID:        bucket.ID,
		Date:      bucket.Date,
		Address:   bucket.Address,
		Network:   bucket.Network,
		Sales:     bucket.Sales,
		Purchases: bucket.Purchases,
		Volume:    bigString(bucket.Volume),
		Spent:     bigString(bucket.Spent),
		Earned:    bigString(bucket.Earned),
	}
}

func saleToDTO(sale *domain.Sale) SaleDTO {
	return SaleDTO{
		ID:                 sale.ID,
		Type:               sale.Type,
		Network:            sale.Network,
		Operation:          sale.Operation,
		Buyer:              sale.Buyer,
		RealBuyer:          sale.RealBuyer,
		Seller:             sale.Seller,
		Price:              bigString(sale.Price),
		FeesCollectorCut:   bigString(sale.FeesCollectorCut),
		RoyaltiesCut:       bigString(sale.RoyaltiesCut),
		RoyaltiesCollector: sale.RoyaltiesCollector,
		ItemID:             sale.ItemID,
		NFTID:              sale.NFTID,
		Timestamp:          sale.Timestamp,
		TxHash:             sale.TxHash,
	}
}
