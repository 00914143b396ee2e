package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/wearmarket/marketplace-indexer/internal/domain"
	"github.com/wearmarket/marketplace-indexer/internal/store/schema"
)

// flushBatchSize keeps bulk upserts under PostgreSQL's 65535-parameter limit
const flushBatchSize = 500

const lastNotifiedKeyPrefix = "last_notified:"

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool sets pool limits on the underlying sql.DB, applying
// defaults for zero values
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// getByID reads one row by primary key, mapping gorm.ErrRecordNotFound to
// (zero, nil) so callers can distinguish absence from failure
func getByID[S any](ctx context.Context, db *gorm.DB, id string) (*S, error) {
	var row S
	err := db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (s *pgStore) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	row, err := getByID[schema.Account](ctx, s.db, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	if row == nil {
		return nil, nil
	}
	return accountFromSchema(row), nil
}

func (s *pgStore) GetItem(ctx context.Context, id string) (*domain.Item, error) {
	row, err := getByID[schema.Item](ctx, s.db, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	if row == nil {
		return nil, nil
	}
	return itemFromSchema(row), nil
}

func (s *pgStore) GetNFT(ctx context.Context, id string) (*domain.NFT, error) {
	row, err := getByID[schema.NFT](ctx, s.db, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get nft: %w", err)
	}
	if row == nil {
		return nil, nil
	}
	return nftFromSchema(row), nil
}

func (s *pgStore) GetCount(ctx context.Context, id string) (*domain.Count, error) {
	row, err := getByID[schema.Count](ctx, s.db, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get count: %w", err)
	}
	if row == nil {
		return nil, nil
	}
	return countFromSchema(row), nil
}

func (s *pgStore) GetAnalyticsDayData(ctx context.Context, id string) (*domain.AnalyticsDayData, error) {
	row, err := getByID[schema.AnalyticsDayData](ctx, s.db, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get analytics day data: %w", err)
	}
	if row == nil {
		return nil, nil
	}
	return analyticsFromSchema(row), nil
}

func (s *pgStore) GetItemDayData(ctx context.Context, id string) (*domain.ItemDayData, error) {
	row, err := getByID[schema.ItemDayData](ctx, s.db, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get item day data: %w", err)
	}
	if row == nil {
		return nil, nil
	}
	return itemDayFromSchema(row), nil
}

func (s *pgStore) GetAccountDayData(ctx context.Context, id string) (*domain.AccountDayData, error) {
	row, err := getByID[schema.AccountDayData](ctx, s.db, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get account day data: %w", err)
	}
	if row == nil {
		return nil, nil
	}
	return accountDayFromSchema(row), nil
}

// upsertAll writes rows with ON CONFLICT (id) DO UPDATE, in batches
func upsertAll[S any](tx *gorm.DB, rows []*S) error {
	if len(rows) == 0 {
		return nil
	}
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).CreateInBatches(rows, flushBatchSize).Error
}

// FlushWindow upserts the window delta in one transaction. Sales are written
// with ON CONFLICT DO NOTHING: they are immutable, and skipping duplicates
// keeps a re-flushed window idempotent.
func (s *pgStore) FlushWindow(ctx context.Context, delta *domain.WindowDelta) error {
	if delta == nil || delta.Empty() {
		return nil
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		accounts := make([]*schema.Account, 0, len(delta.Accounts))
		for _, a := range delta.Accounts {
			accounts = append(accounts, accountToSchema(a))
		}
		if err := upsertAll(tx, accounts); err != nil {
			return fmt.Errorf("failed to flush accounts: %w", err)
		}

		items := make([]*schema.Item, 0, len(delta.Items))
		for _, i := range delta.Items {
			items = append(items, itemToSchema(i))
		}
		if err := upsertAll(tx, items); err != nil {
			return fmt.Errorf("failed to flush items: %w", err)
		}

		nfts := make([]*schema.NFT, 0, len(delta.NFTs))
		for _, n := range delta.NFTs {
			nfts = append(nfts, nftToSchema(n))
		}
		if err := upsertAll(tx, nfts); err != nil {
			return fmt.Errorf("failed to flush nfts: %w", err)
		}

		sales := make([]*schema.Sale, 0, len(delta.Sales))
		for _, sl := range delta.Sales {
			sales = append(sales, saleToSchema(sl))
		}
		if len(sales) > 0 {
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				DoNothing: true,
			}).CreateInBatches(sales, flushBatchSize).Error; err != nil {
				return fmt.Errorf("failed to flush sales: %w", err)
			}
		}

		counts := make([]*schema.Count, 0, len(delta.Counts))
		for _, c := range delta.Counts {
			counts = append(counts, countToSchema(c))
		}
		if err := upsertAll(tx, counts); err != nil {
			return fmt.Errorf("failed to flush counts: %w", err)
		}

		analytics := make([]*schema.AnalyticsDayData, 0, len(delta.Analytics))
		for _, a := range delta.Analytics {
			analytics = append(analytics, analyticsToSchema(a))
		}
		if err := upsertAll(tx, analytics); err != nil {
			return fmt.Errorf("failed to flush analytics day data: %w", err)
		}

		itemDays := make([]*schema.ItemDayData, 0, len(delta.ItemDays))
		for _, d := range delta.ItemDays {
			itemDays = append(itemDays, itemDayToSchema(d))
		}
		if err := upsertAll(tx, itemDays); err != nil {
			return fmt.Errorf("failed to flush item day data: %w", err)
		}

		accountDays := make([]*schema.AccountDayData, 0, len(delta.AccountDays))
		for _, d := range delta.AccountDays {
			accountDays = append(accountDays, accountDayToSchema(d))
		}
		if err := upsertAll(tx, accountDays); err != nil {
			return fmt.Errorf("failed to flush account day data: %w", err)
		}

		return nil
	})
}

func (s *pgStore) GetLastNotified(ctx context.Context, stream string) (int64, error) {
	var row schema.KeyValueStore
	err := s.db.WithContext(ctx).Where("key = ?", lastNotifiedKeyPrefix+stream).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get last notified: %w", err)
	}

	timestamp, err := strconv.ParseInt(row.Value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse last notified value %q: %w", row.Value, err)
	}
	return timestamp, nil
}

func (s *pgStore) SetLastNotified(ctx context.Context, stream string, timestamp int64) error {
	row := schema.KeyValueStore{
		Key:   lastNotifiedKeyPrefix + stream,
		Value: strconv.FormatInt(timestamp, 10),
	}
	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to set last notified: %w", err)
	}
	return nil
}

func (s *pgStore) ListAnalyticsDayData(ctx context.Context, network domain.Network, fromDate, toDate int64) ([]*domain.AnalyticsDayData, error) {
	var rows []schema.AnalyticsDayData
	err := s.db.WithContext(ctx).
		Where("network = ? AND date >= ? AND date <= ?", string(network), fromDate, toDate).
		Order("date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list analytics day data: %w", err)
	}

	result := make([]*domain.AnalyticsDayData, 0, len(rows))
	for i := range rows {
		result = append(result, analyticsFromSchema(&rows[i]))
	}
	return result, nil
}

func (s *pgStore) ListItemDayData(ctx context.Context, itemID string, fromDate, toDate int64) ([]*domain.ItemDayData, error) {
	var rows []schema.ItemDayData
	err := s.db.WithContext(ctx).
		Where("item_id = ? AND date >= ? AND date <= ?", itemID, fromDate, toDate).
		Order("date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list item day data: %w", err)
	}

	result := make([]*domain.ItemDayData, 0, len(rows))
	for i := range rows {
		result = append(result, itemDayFromSchema(&rows[i]))
	}
	return result, nil
}

func (s *pgStore) ListAccountDayData(ctx context.Context, address string, network domain.Network, fromDate, toDate int64) ([]*domain.AccountDayData, error) {
	query := s.db.WithContext(ctx).
		Where("address = ? AND date >= ? AND date <= ?", domain.NormalizeAddress(address), fromDate, toDate)
	if network != "" {
		query = query.Where("network = ?", network)
	}

	var rows []schema.AccountDayData
	err := query.Order("date ASC").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list account day data: %w", err)
	}

	result := make([]*domain.AccountDayData, 0, len(rows))
	for i := range rows {
		result = append(result, accountDayFromSchema(&rows[i]))
	}
	return result, nil
}

func (s *pgStore) ListSales(ctx context.Context, filter SaleFilter) ([]*domain.Sale, int64, error) {
	query := s.db.WithContext(ctx).Model(&schema.Sale{})
	if filter.Network != "" {
		query = query.Where("network = ?", string(filter.Network))
	}
	if filter.ItemID != "" {
		query = query.Where("item_id = ?", filter.ItemID)
	}
	if filter.Buyer != "" {
		query = query.Where("buyer = ?", domain.NormalizeAddress(filter.Buyer))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count sales: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 || limit > 1000 {
		limit = 100
	}

	var rows []schema.Sale
	err := query.Order("timestamp DESC").Limit(limit).Offset(filter.Offset).Find(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list sales: %w", err)
	}

	sales := make([]*domain.Sale, 0, len(rows))
	for i := range rows {
		sales = append(sales, saleFromSchema(&rows[i]))
	}
	return sales, total, nil
}
