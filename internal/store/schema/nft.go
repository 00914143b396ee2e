package schema

// NFT represents the nfts table - a minted token of an item
type NFT struct {
	// ID is the token identity, "{contract}-{tokenId}"
	ID string `gorm:"column:id;primaryKey;type:text"`
	// ContractAddress is the collection contract address
	ContractAddress string `gorm:"column:contract_address;not null;type:text;index:idx_nfts_contract_token,priority:1"`
	// TokenID is the token number within the contract
	TokenID string `gorm:"column:token_id;not null;type:text;index:idx_nfts_contract_token,priority:2"`
	// ItemID references the owning item; sales resolve the item through this
	// reference when the direct item lookup misses
	ItemID string `gorm:"column:item_id;not null;type:text;index"`
	// Category is denormalized from the item for search
	Category string `gorm:"column:category;not null;type:text"`
	// Network is the marketplace network the token lives on
	Network string `gorm:"column:network;not null;type:text;index"`
	// Sales is the cumulative number of sales of this token
	Sales int64 `gorm:"column:sales;not null;default:0"`
	// Volume is the cumulative traded amount
	Volume string `gorm:"column:volume;not null;default:0;type:numeric(78,0)"`
	// SoldAt is the block timestamp of the most recent sale, unix seconds
	SoldAt int64 `gorm:"column:sold_at;not null;default:0"`
	// UpdatedAt is the block timestamp of the last mutation, unix seconds
	UpdatedAt int64 `gorm:"column:updated_at;not null;default:0;index"`
}

// TableName specifies the table name for the NFT model
func (NFT) TableName() string {
	return "nfts"
}
