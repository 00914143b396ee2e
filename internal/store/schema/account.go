package schema

import (
	"gorm.io/datatypes"
)

// Account represents the accounts table - cumulative marketplace statistics
// per address, scoped by network. Monetary columns are numeric(78,0) strings
// to keep wei-scale amounts integer exact.
type Account struct {
	// ID is "{address}-{network}"
	ID string `gorm:"column:id;primaryKey;type:text"`
	// Address is the lowercase hex address
	Address string `gorm:"column:address;not null;type:text;index:idx_accounts_address_network,priority:1"`
	// Network is the marketplace network this row is scoped to
	Network string `gorm:"column:network;not null;type:text;index:idx_accounts_address_network,priority:2"`
	// Purchases is the number of sales where this address bought
	Purchases int64 `gorm:"column:purchases;not null;default:0"`
	// Spent is the cumulative amount paid across purchases
	Spent string `gorm:"column:spent;not null;default:0;type:numeric(78,0)"`
	// Sales is the number of sales where this address sold
	Sales int64 `gorm:"column:sales;not null;default:0"`
	// Earned is the cumulative amount received net of fees
	Earned string `gorm:"column:earned;not null;default:0;type:numeric(78,0)"`
	// Royalties is the cumulative amount received as royalties or collected fees
	Royalties string `gorm:"column:royalties;not null;default:0;type:numeric(78,0)"`
	// PrimarySales is the number of mint sales of items created by this address
	PrimarySales int64 `gorm:"column:primary_sales;not null;default:0"`
	// PrimarySalesEarned is the cumulative creator take of those mint sales
	PrimarySalesEarned string `gorm:"column:primary_sales_earned;not null;default:0;type:numeric(78,0)"`
	// UniqueCollectors is the sorted set of addresses that bought from this seller
	UniqueCollectors datatypes.JSONSlice[string] `gorm:"column:unique_collectors"`
	// UniqueCollectorsTotal equals the cardinality of UniqueCollectors
	UniqueCollectorsTotal int64 `gorm:"column:unique_collectors_total;not null;default:0"`
	// CreatorsSupported is the sorted set of sellers this buyer purchased from
	CreatorsSupported datatypes.JSONSlice[string] `gorm:"column:creators_supported"`
	// CreatorsSupportedTotal equals the cardinality of CreatorsSupported
	CreatorsSupportedTotal int64 `gorm:"column:creators_supported_total;not null;default:0"`
	// UniqueAndMythicItems is the sorted set of unique/mythic item ids held
	UniqueAndMythicItems datatypes.JSONSlice[string] `gorm:"column:unique_and_mythic_items"`
	// UniqueAndMythicItemsTotal equals the cardinality of UniqueAndMythicItems
	UniqueAndMythicItemsTotal int64 `gorm:"column:unique_and_mythic_items_total;not null;default:0"`
	// UpdatedAt is the block timestamp of the last mutation, unix seconds
	UpdatedAt int64 `gorm:"column:updated_at;not null;default:0;index"`
}

// TableName specifies the table name for the Account model
func (Account) TableName() string {
	return "accounts"
}
