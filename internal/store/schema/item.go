package schema

import (
	"gorm.io/datatypes"
)

// Item represents the items table - a marketplace collection item
type Item struct {
	// ID is the item identity, "{contract}-{blockchainId}"
	ID string `gorm:"column:id;primaryKey;type:text"`
	// BlockchainID is the item index within its collection contract
	BlockchainID string `gorm:"column:blockchain_id;not null;type:text"`
	// Network is the marketplace network the item lives on
	Network string `gorm:"column:network;not null;type:text;index"`
	// Creator is the address that created the collection item
	Creator string `gorm:"column:creator;not null;type:text;index"`
	// Beneficiary is the royalty receiver configured on the item (zero address when unset)
	Beneficiary string `gorm:"column:beneficiary;not null;type:text"`
	// Rarity is the item rarity tier (common .. mythic, unique)
	Rarity string `gorm:"column:rarity;not null;type:text"`
	// Category is the item category (wearable, emote, ...)
	Category string `gorm:"column:category;not null;type:text"`
	// Sales is the cumulative number of sales of any NFT of this item
	Sales int64 `gorm:"column:sales;not null;default:0"`
	// Volume is the cumulative traded amount
	Volume string `gorm:"column:volume;not null;default:0;type:numeric(78,0)"`
	// UniqueCollectors is the sorted set of addresses that bought this item
	UniqueCollectors datatypes.JSONSlice[string] `gorm:"column:unique_collectors"`
	// UniqueCollectorsTotal equals the cardinality of UniqueCollectors
	UniqueCollectorsTotal int64 `gorm:"column:unique_collectors_total;not null;default:0"`
	// SoldAt is the block timestamp of the most recent sale, unix seconds
	SoldAt int64 `gorm:"column:sold_at;not null;default:0"`
	// CreatedAt is the block timestamp the item was added, unix seconds
	CreatedAt int64 `gorm:"column:created_at;not null;default:0"`
	// UpdatedAt is the block timestamp of the last mutation, unix seconds
	UpdatedAt int64 `gorm:"column:updated_at;not null;default:0;index"`
}

// TableName specifies the table name for the Item model
func (Item) TableName() string {
	return "items"
}
