package schema

// Sale represents the sales table - one row per accepted sale event, keyed by
// "{sequence}-{network}" where sequence is the post-increment network sales
// total. Rows are immutable once written.
type Sale struct {
	// ID is "{sequence}-{network}"
	ID string `gorm:"column:id;primaryKey;type:text"`
	// Type is the sale type (mint, secondary)
	Type string `gorm:"column:type;not null;type:text"`
	// Network is the marketplace network the sale happened on
	Network string `gorm:"column:network;not null;type:text;index"`
	// RealBuyer is the address that paid for the NFT
	RealBuyer string `gorm:"column:real_buyer;not null;type:text"`
	// Buyer is the address that owns the NFT after the sale
	Buyer string `gorm:"column:buyer;not null;type:text;index"`
	// Seller is the address that sold the NFT
	Seller string `gorm:"column:seller;not null;type:text;index"`
	// Beneficiary is the address designated to receive the NFT
	Beneficiary string `gorm:"column:beneficiary;not null;type:text"`
	// Operation is the economic origin classification (native, fiat, cross_chain, credits)
	Operation string `gorm:"column:operation;not null;type:text"`
	// Price is the sale price in the smallest currency unit
	Price string `gorm:"column:price;not null;type:numeric(78,0)"`
	// FeesCollector is the marketplace fee collector address
	FeesCollector string `gorm:"column:fees_collector;not null;type:text"`
	// FeesCollectorCut is the post-fold marketplace fee amount
	FeesCollectorCut string `gorm:"column:fees_collector_cut;not null;default:0;type:numeric(78,0)"`
	// RoyaltiesCollector is the royalty receiver (zero address after the fold)
	RoyaltiesCollector string `gorm:"column:royalties_collector;not null;type:text"`
	// RoyaltiesCut is the post-fold royalty amount
	RoyaltiesCut string `gorm:"column:royalties_cut;not null;default:0;type:numeric(78,0)"`
	// ItemID references the sold item
	ItemID string `gorm:"column:item_id;not null;type:text;index"`
	// NFTID references the sold token
	NFTID string `gorm:"column:nft_id;not null;type:text;index"`
	// Timestamp is the block timestamp, unix seconds
	Timestamp int64 `gorm:"column:timestamp;not null;index"`
	// TxHash is the transaction hash of the sale
	TxHash string `gorm:"column:tx_hash;not null;type:text"`
	// SearchItemID is denormalized from the item for read efficiency
	SearchItemID string `gorm:"column:search_item_id;not null;type:text"`
	// SearchTokenID is denormalized from the NFT for read efficiency
	SearchTokenID string `gorm:"column:search_token_id;not null;type:text"`
	// SearchContractAddress is denormalized from the NFT for read efficiency
	SearchContractAddress string `gorm:"column:search_contract_address;not null;type:text"`
	// SearchCategory is denormalized from the NFT for read efficiency
	SearchCategory string `gorm:"column:search_category;not null;type:text"`
	// UpdatedAt is the block timestamp of the sale, unix seconds
	UpdatedAt int64 `gorm:"column:updated_at;not null;default:0"`
}

// TableName specifies the table name for the Sale model
func (Sale) TableName() string {
	return "sales"
}
