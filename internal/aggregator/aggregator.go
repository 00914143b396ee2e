// Package aggregator derives accounts, items, NFTs, sales, running totals and
// day-bucket rollups from a stream of normalized marketplace events. One
// aggregator processes events strictly in delivery order against a single
// entity cache; sale-id sequencing and the set-backed cardinality counters are
// order dependent.
package aggregator

import (
	"context"
	"fmt"
	"math/big"

	"go.uber.org/zap"

	"github.com/wearmarket/marketplace-indexer/internal/cache"
	"github.com/wearmarket/marketplace-indexer/internal/domain"
	"github.com/wearmarket/marketplace-indexer/internal/logger"
	"github.com/wearmarket/marketplace-indexer/internal/policy"
)

//go:generate mockgen -source=aggregator.go -destination=../mocks/owner_reader.go -package=mocks

// OwnerReader resolves the current on-chain owner of an NFT. Calls must be
// idempotent; retry policy lives behind the implementation, not here.
type OwnerReader interface {
	GetOwner(ctx context.Context, network domain.Network, contractAddress, tokenID string) (string, error)
}

// Aggregator applies marketplace events to the entity cache of a processing
// window. The owner lookup is the only call that can block on an external
// collaborator; everything else is in-memory.
type Aggregator struct {
	policy *policy.Policy
	owners OwnerReader
}

// New creates a new aggregator
func New(p *policy.Policy, owners OwnerReader) *Aggregator {
	return &Aggregator{
		policy: p,
		owners: owners,
	}
}

// Track applies one event to the cache. Returns nil for skipped events
// (zero price), domain.ErrMissingEntity when a referenced item or NFT cannot
// be resolved, domain.ErrOwnerResolution when the on-chain owner lookup
// fails, and domain.ErrInvariantViolation when the fee arithmetic produces
// cuts exceeding the price.
func (a *Aggregator) Track(ctx context.Context, c *cache.Cache, event *domain.MarketplaceEvent) error {
	if !event.Valid() {
		return fmt.Errorf("%w: kind %q network %q", domain.ErrInvalidEvent, event.Kind, event.Network)
	}

	switch event.Kind {
	case domain.EventKindSale:
		return a.TrackSale(ctx, c, event)
	case domain.EventKindOrder:
		return a.TrackOrder(ctx, c, event)
	default:
		return fmt.Errorf("%w: kind %q", domain.ErrInvalidEvent, event.Kind)
	}
}

// TrackOrder keeps the per-network order counter honest. Created and
// cancelled orders bump OrdersTotal; a successful order carries the sale
// payload and is aggregated as a sale.
func (a *Aggregator) TrackOrder(ctx context.Context, c *cache.Cache, event *domain.MarketplaceEvent) error {
	switch event.Order.Status {
	case domain.OrderStatusCreated, domain.OrderStatusCancelled:
		count, err := loadCount(ctx, c, event.Network)
		if err != nil {
			return fmt.Errorf("failed to load count: %w", err)
		}
		count.OrdersTotal++
		count.UpdatedAt = event.Timestamp
		c.Counts.MarkDirty(count.ID)
		return nil
	case domain.OrderStatusSuccessful:
		return a.TrackSale(ctx, c, event)
	default:
		return fmt.Errorf("%w: order status %q", domain.ErrInvalidEvent, event.Order.Status)
	}
}

// TrackSale runs one sale event end-to-end: sequence reservation, entity
// resolution, buyer classification, fee split, counter and account updates,
// and day-bucket merges. Once the sequence slot is reserved the event always
// reaches a terminal state before the next event starts.
func (a *Aggregator) TrackSale(ctx context.Context, c *cache.Cache, event *domain.MarketplaceEvent) error {
	payload := event.SalePayload()
	if payload == nil {
		return fmt.Errorf("%w: event carries no sale payload", domain.ErrInvalidEvent)
	}

	// zero-price sales are non-economic transfers; skipped before the
	// sequence increment so they leave no gap
	if payload.Price.Sign() == 0 {
		logger.Debug("ignoring zero price sale",
			zap.String("nftID", payload.NFTID),
			zap.String("txHash", event.TxHash))
		return nil
	}

	count, err := loadCount(ctx, c, event.Network)
	if err != nil {
		return fmt.Errorf("failed to load count: %w", err)
	}

	// the sequence slot is consumed even when the event is rejected below;
	// this increment is never rolled back
	count.SalesTotal++
	count.UpdatedAt = event.Timestamp
	c.Counts.MarkDirty(count.ID)
	saleID := domain.SaleID(count.SalesTotal, event.Network)

	item, nft, err := resolveEntities(ctx, c, payload)
	if err != nil {
		return err
	}

	buyer := domain.NormalizeAddress(payload.Buyer)
	operation := a.policy.ClassifyOperation(buyer)

	// the nominal buyer of a third-party or credit sale is an intermediary
	// contract; the owner of record is whoever holds the NFT on chain
	owner := buyer
	if a.policy.NeedsOwnerResolution(buyer) {
		owner, err = a.owners.GetOwner(ctx, event.Network, nft.ContractAddress, nft.TokenID)
		if err != nil {
			return fmt.Errorf("%w: nft %s: %v", domain.ErrOwnerResolution, nft.ID, err)
		}
		owner = domain.NormalizeAddress(owner)
	}

	feesCollectorCut, royaltiesCut := Split(payload.Price, payload.FeesCutPerMillion, payload.RoyaltiesCutPerMillion)

	// with no royalties receiver configured the fees collector absorbs the
	// royalties cut; every total below reads the post-fold values
	royaltiesCollector := domain.ZeroAddress
	if royaltiesCut.Sign() > 0 {
		receiver := RoyaltiesReceiver(item)
		if domain.IsZeroAddress(receiver) {
			feesCollectorCut.Add(feesCollectorCut, royaltiesCut)
			royaltiesCut = new(big.Int)
		} else {
			royaltiesCollector = receiver
		}
	}

	totalFees := new(big.Int).Add(feesCollectorCut, royaltiesCut)
	if totalFees.Cmp(payload.Price) > 0 {
		return fmt.Errorf("%w: sale %s cuts %s exceed price %s",
			domain.ErrInvariantViolation, saleID, totalFees, payload.Price)
	}

	sale := &domain.Sale{
		ID:                 saleID,
		Type:               payload.Type,
		Network:            event.Network,
		RealBuyer:          buyer,
		Buyer:              owner,
		Seller:             domain.NormalizeAddress(payload.Seller),
		Beneficiary:        domain.NormalizeAddress(payload.Beneficiary),
		Operation:          operation,
		Price:              new(big.Int).Set(payload.Price),
		FeesCollector:      domain.NormalizeAddress(payload.FeesCollector),
		FeesCollectorCut:   feesCollectorCut,
		RoyaltiesCollector: royaltiesCollector,
		RoyaltiesCut:       royaltiesCut,
		ItemID:             item.ID,
		NFTID:              nft.ID,
		Timestamp:          event.Timestamp,
		TxHash:             event.TxHash,

		SearchItemID:          item.BlockchainID,
		SearchTokenID:         nft.TokenID,
		SearchContractAddress: nft.ContractAddress,
		SearchCategory:        nft.Category,

		UpdatedAt: event.Timestamp,
	}
	c.Sales.Put(saleID, sale)

	applySaleTotals(count, sale, totalFees)

	if err := a.updateAccounts(ctx, c, sale, item, totalFees); err != nil {
		return err
	}

	item.SoldAt = sale.Timestamp
	item.Sales++
	item.Volume.Add(item.Volume, sale.Price)
	item.UniqueCollectors.Add(buyer)
	item.UniqueCollectorsTotal = int64(item.UniqueCollectors.Len())
	item.UpdatedAt = sale.Timestamp
	c.Items.MarkDirty(item.ID)

	nft.SoldAt = sale.Timestamp
	nft.Sales++
	nft.Volume.Add(nft.Volume, sale.Price)
	nft.UpdatedAt = sale.Timestamp
	c.NFTs.MarkDirty(nft.ID)

	if sale.Type == domain.SaleTypeMint {
		applyPrimarySale(count, sale.Price)

		creatorAccount, err := loadAccount(ctx, c, item.Creator, sale.Network)
		if err != nil {
			return fmt.Errorf("failed to load creator account: %w", err)
		}
		creatorAccount.PrimarySales++
		creatorAccount.PrimarySalesEarned.Add(creatorAccount.PrimarySalesEarned, new(big.Int).Sub(sale.Price, totalFees))
		creatorAccount.UpdatedAt = sale.Timestamp
		c.Accounts.MarkDirty(creatorAccount.ID)
	} else {
		applySecondarySale(count, sale.Price)
	}

	if err := mergeAnalyticsDayData(ctx, c, sale); err != nil {
		return err
	}
	if err := mergeItemDayData(ctx, c, sale, item); err != nil {
		return err
	}
	if err := mergeBuyerDayData(ctx, c, sale); err != nil {
		return err
	}

	// the creator's day rollup earns the net proceeds on a mint and the
	// royalties cut on a secondary sale
	creatorEarnings := sale.RoyaltiesCut
	if sale.Type == domain.SaleTypeMint {
		creatorEarnings = new(big.Int).Sub(sale.Price, totalFees)
	}
	return mergeCreatorDayData(ctx, c, sale, item.Creator, creatorEarnings)
}

// updateAccounts mutates the buyer, seller, royalties-collector and
// fees-collector accounts for one sale. Account identity follows the nominal
// buyer, the address that paid, so intermediary volume stays attributed to
// the intermediary.
func (a *Aggregator) updateAccounts(ctx context.Context, c *cache.Cache, sale *domain.Sale, item *domain.Item, totalFees *big.Int) error {
	buyerAccount, err := loadAccount(ctx, c, sale.RealBuyer, sale.Network)
	if err != nil {
		return fmt.Errorf("failed to load buyer account: %w", err)
	}
	buyerAccount.Purchases++
	buyerAccount.Spent.Add(buyerAccount.Spent, sale.Price)
	if item.Rarity == "unique" || item.Rarity == "mythic" {
		buyerAccount.UniqueAndMythicItems.Add(item.ID)
		buyerAccount.UniqueAndMythicItemsTotal = int64(buyerAccount.UniqueAndMythicItems.Len())
	}
	buyerAccount.CreatorsSupported.Add(sale.Seller)
	buyerAccount.CreatorsSupportedTotal = int64(buyerAccount.CreatorsSupported.Len())
	buyerAccount.UpdatedAt = sale.Timestamp
	c.Accounts.MarkDirty(buyerAccount.ID)

	sellerAccount, err := loadAccount(ctx, c, sale.Seller, sale.Network)
	if err != nil {
		return fmt.Errorf("failed to load seller account: %w", err)
	}
	sellerAccount.Sales++
	sellerAccount.Earned.Add(sellerAccount.Earned, new(big.Int).Sub(sale.Price, totalFees))
	sellerAccount.UniqueCollectors.Add(sale.RealBuyer)
	sellerAccount.UniqueCollectorsTotal = int64(sellerAccount.UniqueCollectors.Len())
	sellerAccount.UpdatedAt = sale.Timestamp
	c.Accounts.MarkDirty(sellerAccount.ID)

	if !domain.IsZeroAddress(sale.RoyaltiesCollector) {
		royaltiesAccount, err := loadAccount(ctx, c, sale.RoyaltiesCollector, sale.Network)
		if err != nil {
			return fmt.Errorf("failed to load royalties collector account: %w", err)
		}
		royaltiesAccount.Earned.Add(royaltiesAccount.Earned, sale.RoyaltiesCut)
		royaltiesAccount.Royalties.Add(royaltiesAccount.Royalties, sale.RoyaltiesCut)
		royaltiesAccount.UpdatedAt = sale.Timestamp
		c.Accounts.MarkDirty(royaltiesAccount.ID)
	}

	feesAccount, err := loadAccount(ctx, c, sale.FeesCollector, sale.Network)
	if err != nil {
		return fmt.Errorf("failed to load fees collector account: %w", err)
	}
	feesAccount.Earned.Add(feesAccount.Earned, sale.FeesCollectorCut)
	feesAccount.Royalties.Add(feesAccount.Royalties, sale.FeesCollectorCut)
	feesAccount.UpdatedAt = sale.Timestamp
	c.Accounts.MarkDirty(feesAccount.ID)

	return nil
}

// resolveEntities loads the item and NFT a sale references. A direct item
// miss falls back to the item owning the NFT; the NFT path has no fallback.
func resolveEntities(ctx context.Context, c *cache.Cache, payload *domain.SaleEvent) (*domain.Item, *domain.NFT, error) {
	nft, err := c.NFTs.Get(ctx, payload.NFTID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load nft: %w", err)
	}

	var item *domain.Item
	if payload.ItemID != "" {
		item, err = c.Items.Get(ctx, payload.ItemID)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load item: %w", err)
		}
	}
	if item == nil && nft != nil && nft.ItemID != "" {
		item, err = c.Items.Get(ctx, nft.ItemID)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load item: %w", err)
		}
	}

	if item == nil || nft == nil {
		return nil, nil, fmt.Errorf("%w: item %q nft %q", domain.ErrMissingEntity, payload.ItemID, payload.NFTID)
	}
	return item, nft, nil
}
