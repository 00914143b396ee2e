package schema

// Count represents the counts table - one row of monotonic running totals per
// network. The sales_total column doubles as the sale-id sequence generator
// and is never decremented.
type Count struct {
	// ID is the network name
	ID string `gorm:"column:id;primaryKey;type:text"`
	// Network is the marketplace network this row is scoped to
	Network string `gorm:"column:network;not null;type:text;uniqueIndex"`
	// OrdersTotal is the number of orders ever created
	OrdersTotal int64 `gorm:"column:orders_total;not null;default:0"`
	// SalesTotal is the number of accepted sales; also the sale-id sequence
	SalesTotal int64 `gorm:"column:sales_total;not null;default:0"`
	// SalesManaTotal is the cumulative traded amount
	SalesManaTotal string `gorm:"column:sales_mana_total;not null;default:0;type:numeric(78,0)"`
	// RoyaltiesManaTotal is the cumulative fees plus royalties amount
	RoyaltiesManaTotal string `gorm:"column:royalties_mana_total;not null;default:0;type:numeric(78,0)"`
	// CreatorEarningsManaTotal is the cumulative creator take
	CreatorEarningsManaTotal string `gorm:"column:creator_earnings_mana_total;not null;default:0;type:numeric(78,0)"`
	// DAOEarningsManaTotal is the cumulative DAO take from mint sales
	DAOEarningsManaTotal string `gorm:"column:dao_earnings_mana_total;not null;default:0;type:numeric(78,0)"`
	// PrimarySalesTotal is the number of mint sales
	PrimarySalesTotal int64 `gorm:"column:primary_sales_total;not null;default:0"`
	// PrimarySalesManaTotal is the cumulative mint sale amount
	PrimarySalesManaTotal string `gorm:"column:primary_sales_mana_total;not null;default:0;type:numeric(78,0)"`
	// SecondarySalesTotal is the number of secondary sales
	SecondarySalesTotal int64 `gorm:"column:secondary_sales_total;not null;default:0"`
	// SecondarySalesManaTotal is the cumulative secondary sale amount
	SecondarySalesManaTotal string `gorm:"column:secondary_sales_mana_total;not null;default:0;type:numeric(78,0)"`
	// UpdatedAt is the block timestamp of the last mutation, unix seconds
	UpdatedAt int64 `gorm:"column:updated_at;not null;default:0"`
}

// TableName specifies the table name for the Count model
func (Count) TableName() string {
	return "counts"
}
