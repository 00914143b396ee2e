package domain

import (
	"math/big"
	"sort"
)

// StringSet is a membership set used for set-backed cardinality fields.
// The persisted "total" counters must always be recomputed from Len, never
// incremented independently, so they cannot drift from the set contents.
type StringSet map[string]struct{}

// NewStringSet creates a set from the given values
func NewStringSet(values ...string) StringSet {
	s := make(StringSet, len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

// Add inserts a value and reports whether it was not already present
func (s StringSet) Add(value string) bool {
	if _, ok := s[value]; ok {
		return false
	}
	s[value] = struct{}{}
	return true
}

// Has reports membership
func (s StringSet) Has(value string) bool {
	_, ok := s[value]
	return ok
}

// Len returns the set cardinality
func (s StringSet) Len() int {
	return len(s)
}

// Values returns the members in sorted order for deterministic persistence
func (s StringSet) Values() []string {
	values := make([]string, 0, len(s))
	for v := range s {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

// Account accumulates per-address marketplace statistics, scoped by network.
// Accounts are never deleted and are created lazily with zero-valued counters
// on first reference.
type Account struct {
	ID      string
	Address string
	Network Network

	Purchases int64
	Spent     *big.Int
	Sales     int64
	Earned    *big.Int
	Royalties *big.Int

	PrimarySales       int64
	PrimarySalesEarned *big.Int

	UniqueCollectors          StringSet
	UniqueCollectorsTotal     int64
	CreatorsSupported         StringSet
	CreatorsSupportedTotal    int64
	UniqueAndMythicItems      StringSet
	UniqueAndMythicItemsTotal int64

	UpdatedAt int64
}

// NewAccount creates a zero-valued account for lazy creation on first reference
func NewAccount(address string, network Network) *Account {
	return &Account{
		ID:                   AccountID(address, network),
		Address:              NormalizeAddress(address),
		Network:              network,
		Spent:                new(big.Int),
		Earned:               new(big.Int),
		Royalties:            new(big.Int),
		PrimarySalesEarned:   new(big.Int),
		UniqueCollectors:     NewStringSet(),
		CreatorsSupported:    NewStringSet(),
		UniqueAndMythicItems: NewStringSet(),
	}
}

// Item is a marketplace collection item. Items are created by the collection
// indexing pipeline; the aggregation engine only mutates their sale stats.
type Item struct {
	ID           string
	BlockchainID string
	Network      Network
	Creator      string
	Beneficiary  string
	Rarity       string
	Category     string

	Sales                 int64
	Volume                *big.Int
	UniqueCollectors      StringSet
	UniqueCollectorsTotal int64

	SoldAt    int64
	CreatedAt int64
	UpdatedAt int64
}

// NFT is a minted token of an item
type NFT struct {
	ID              string
	ContractAddress string
	TokenID         string
	ItemID          string
	Category        string
	Network         Network

	Sales  int64
	Volume *big.Int

	SoldAt    int64
	UpdatedAt int64
}

// Sale is the immutable record of one accepted sale event. All monetary
// fields hold post-fold values.
type Sale struct {
	ID      string
	Type    SaleType
	Network Network

	// RealBuyer is the address that paid; Buyer is the address that owns the
	// NFT after the sale (resolved on-chain for third-party and credit sales)
	RealBuyer   string
	Buyer       string
	Seller      string
	Beneficiary string
	Operation   Operation

	Price              *big.Int
	FeesCollector      string
	FeesCollectorCut   *big.Int
	RoyaltiesCollector string
	RoyaltiesCut       *big.Int

	ItemID    string
	NFTID     string
	Timestamp int64
	TxHash    string

	// Denormalized search fields copied at creation time
	SearchItemID          string
	SearchTokenID         string
	SearchContractAddress string
	SearchCategory        string

	UpdatedAt int64
}

// Count holds the monotonic per-network running totals. SalesTotal doubles as
// the sale-id sequence generator and is never rolled back.
type Count struct {
	ID      string
	Network Network

	OrdersTotal int64
	SalesTotal  int64

	SalesManaTotal           *big.Int
	RoyaltiesManaTotal       *big.Int
	CreatorEarningsManaTotal *big.Int
	DAOEarningsManaTotal     *big.Int

	PrimarySalesTotal       int64
	PrimarySalesManaTotal   *big.Int
	SecondarySalesTotal     int64
	SecondarySalesManaTotal *big.Int

	UpdatedAt int64
}

// NewCount creates the zero-valued count row for a network
func NewCount(network Network) *Count {
	return &Count{
		ID:                       string(network),
		Network:                  network,
		SalesManaTotal:           new(big.Int),
		RoyaltiesManaTotal:       new(big.Int),
		CreatorEarningsManaTotal: new(big.Int),
		DAOEarningsManaTotal:     new(big.Int),
		PrimarySalesManaTotal:    new(big.Int),
		SecondarySalesManaTotal:  new(big.Int),
	}
}

// AnalyticsDayData is the global per-network day bucket
type AnalyticsDayData struct {
	ID      string
	Date    int64 // bucket start, unix seconds
	Network Network

	Sales            int64
	Volume           *big.Int
	CreatorsEarnings *big.Int
	DAOEarnings      *big.Int

	UpdatedAt int64
}

// NewAnalyticsDayData creates an empty day bucket for the given day index
func NewAnalyticsDayData(dayIndex int64, network Network) *AnalyticsDayData {
	return &AnalyticsDayData{
		ID:               DayBucketID(dayIndex, string(network)),
		Date:             dayIndex * SecondsPerDay,
		Network:          network,
		Volume:           new(big.Int),
		CreatorsEarnings: new(big.Int),
		DAOEarnings:      new(big.Int),
	}
}

// ItemDayData is the per-item day bucket
type ItemDayData struct {
	ID     string
	Date   int64
	ItemID string

	Sales  int64
	Volume *big.Int

	// Denormalized from the item for read-side filtering
	SearchRarity   string
	SearchCategory string

	UpdatedAt int64
}

// NewItemDayData creates an empty item day bucket
func NewItemDayData(dayIndex int64, itemID string) *ItemDayData {
	return &ItemDayData{
		ID:     DayBucketID(dayIndex, itemID),
		Date:   dayIndex * SecondsPerDay,
		ItemID: itemID,
		Volume: new(big.Int),
	}
}

// AccountDayData is the per-account day bucket. The same bucket accumulates
// both buyer-side (purchases, spent) and creator-side (sales, earned) deltas.
type AccountDayData struct {
	ID      string
	Date    int64
	Address string
	Network Network

	Sales     int64
	Purchases int64
	Volume    *big.Int
	Spent     *big.Int
	Earned    *big.Int

	UpdatedAt int64
}

// NewAccountDayData creates an empty account day bucket. The dimension key is
// the network-scoped account id, so the same address on two networks fills two
// buckets.
func NewAccountDayData(dayIndex int64, address string, network Network) *AccountDayData {
	return &AccountDayData{
		ID:      DayBucketID(dayIndex, AccountID(address, network)),
		Date:    dayIndex * SecondsPerDay,
		Address: NormalizeAddress(address),
		Network: network,
		Volume:  new(big.Int),
		Spent:   new(big.Int),
		Earned:  new(big.Int),
	}
}

// WindowDelta is the set of entities mutated during one processing window,
// flushed to durable storage in a single batch at window end.
type WindowDelta struct {
	Accounts    []*Account
	Items       []*Item
	NFTs        []*NFT
	Sales       []*Sale
	Counts      []*Count
	Analytics   []*AnalyticsDayData
	ItemDays    []*ItemDayData
	AccountDays []*AccountDayData
}

// Empty reports whether the delta contains no entities
func (d *WindowDelta) Empty() bool {
	return len(d.Accounts) == 0 && len(d.Items) == 0 && len(d.NFTs) == 0 &&
		len(d.Sales) == 0 && len(d.Counts) == 0 && len(d.Analytics) == 0 &&
		len(d.ItemDays) == 0 && len(d.AccountDays) == 0
}
