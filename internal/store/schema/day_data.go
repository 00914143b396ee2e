package schema

// AnalyticsDayData represents the analytics_day_data table - one row per UTC
// day and network, keyed by "{dayIndex}-{network}". Rows never merge across
// day boundaries.
type AnalyticsDayData struct {
	// ID is "{dayIndex}-{network}"
	ID string `gorm:"column:id;primaryKey;type:text"`
	// Date is the bucket start timestamp (dayIndex * 86400), unix seconds
	Date int64 `gorm:"column:date;not null;index"`
	// Network is the marketplace network this bucket is scoped to
	Network string `gorm:"column:network;not null;type:text;index"`
	// Sales is the number of sales merged into this bucket
	Sales int64 `gorm:"column:sales;not null;default:0"`
	// Volume is the sum of sale prices merged into this bucket
	Volume string `gorm:"column:volume;not null;default:0;type:numeric(78,0)"`
	// CreatorsEarnings is the creator take accumulated in this bucket
	CreatorsEarnings string `gorm:"column:creators_earnings;not null;default:0;type:numeric(78,0)"`
	// DAOEarnings is the fee-collector take accumulated in this bucket
	DAOEarnings string `gorm:"column:dao_earnings;not null;default:0;type:numeric(78,0)"`
	// UpdatedAt is the block timestamp of the last merge, unix seconds
	UpdatedAt int64 `gorm:"column:updated_at;not null;default:0"`
}

// TableName specifies the table name for the AnalyticsDayData model
func (AnalyticsDayData) TableName() string {
	return "analytics_day_data"
}

// ItemDayData represents the item_day_data table - per-item day buckets keyed
// by "{dayIndex}-{itemId}"
type ItemDayData struct {
	// ID is "{dayIndex}-{itemId}"
	ID string `gorm:"column:id;primaryKey;type:text"`
	// Date is the bucket start timestamp, unix seconds
	Date int64 `gorm:"column:date;not null;index"`
	// ItemID references the item dimension of this bucket
	ItemID string `gorm:"column:item_id;not null;type:text;index"`
	// Sales is the number of sales merged into this bucket
	Sales int64 `gorm:"column:sales;not null;default:0"`
	// Volume is the sum of sale prices merged into this bucket
	Volume string `gorm:"column:volume;not null;default:0;type:numeric(78,0)"`
	// SearchRarity is denormalized from the item for read-side filtering
	SearchRarity string `gorm:"column:search_rarity;not null;type:text"`
	// SearchCategory is denormalized from the item for read-side filtering
	SearchCategory string `gorm:"column:search_category;not null;type:text"`
	// UpdatedAt is the block timestamp of the last merge, unix seconds
	UpdatedAt int64 `gorm:"column:updated_at;not null;default:0"`
}

// TableName specifies the table name for the ItemDayData model
func (ItemDayData) TableName() string {
	return "item_day_data"
}

// AccountDayData represents the account_day_data table - per-account day
// buckets keyed by "{dayIndex}-{address}-{network}"
type AccountDayData struct {
	// ID is "{dayIndex}-{address}-{network}"
	ID string `gorm:"column:id;primaryKey;type:text"`
	// Date is the bucket start timestamp, unix seconds
	Date int64 `gorm:"column:date;not null;index"`
	// Address is the account dimension of this bucket
	Address string `gorm:"column:address;not null;type:text;index"`
	// Network is the marketplace network this bucket is scoped to
	Network string `gorm:"column:network;not null;type:text"`
	// Sales is the number of creator-side sales merged into this bucket
	Sales int64 `gorm:"column:sales;not null;default:0"`
	// Purchases is the number of buyer-side sales merged into this bucket
	Purchases int64 `gorm:"column:purchases;not null;default:0"`
	// Volume is the sum of sale prices merged into this bucket
	Volume string `gorm:"column:volume;not null;default:0;type:numeric(78,0)"`
	// Spent is the buyer-side amount accumulated in this bucket
	Spent string `gorm:"column:spent;not null;default:0;type:numeric(78,0)"`
	// Earned is the creator-side amount accumulated in this bucket
	Earned string `gorm:"column:earned;not null;default:0;type:numeric(78,0)"`
	// UpdatedAt is the block timestamp of the last merge, unix seconds
	UpdatedAt int64 `gorm:"column:updated_at;not null;default:0"`
}

// TableName specifies the table name for the AccountDayData model
func (AccountDayData) TableName() string {
	return "account_day_data"
}
