// Package cache holds the in-process entity state for one processing window.
// Entities are seeded lazily from durable storage on first lookup, mutated in
// place by the aggregator, and written back in a single batch at window end.
// The cache is exclusively owned by one window; there are no concurrent
// writers, so no locking is needed.
package cache

import (
	"context"
	"sort"

	"github.com/wearmarket/marketplace-indexer/internal/domain"
	"github.com/wearmarket/marketplace-indexer/internal/store"
)

// Kind is the typed entity map for one entity kind. A nil load function means
// the kind is created-only within a window (sales) and never seeded.
type Kind[T any] struct {
	entries map[string]*T
	dirty   map[string]struct{}
	load    func(ctx context.Context, id string) (*T, error)
}

func newKind[T any](load func(ctx context.Context, id string) (*T, error)) *Kind[T] {
	return &Kind[T]{
		entries: make(map[string]*T),
		dirty:   make(map[string]struct{}),
		load:    load,
	}
}

// Get returns the cached entity, seeding it from durable storage on first
// lookup. Returns nil when the entity does not exist anywhere. Entities
// created or mutated earlier in the same window are always visible.
func (k *Kind[T]) Get(ctx context.Context, id string) (*T, error) {
	if entity, ok := k.entries[id]; ok {
		return entity, nil
	}
	if k.load == nil {
		return nil, nil
	}

	entity, err := k.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if entity != nil {
		k.entries[id] = entity
	}
	return entity, nil
}

// GetOrCreate returns the entity, building it from the zero-value factory and
// marking it dirty when it exists nowhere yet
func (k *Kind[T]) GetOrCreate(ctx context.Context, id string, create func() *T) (*T, error) {
	entity, err := k.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		entity = create()
		k.entries[id] = entity
		k.dirty[id] = struct{}{}
	}
	return entity, nil
}

// Put stores an entity and marks it dirty
func (k *Kind[T]) Put(id string, entity *T) {
	k.entries[id] = entity
	k.dirty[id] = struct{}{}
}

// MarkDirty flags a cached entity for the window-end flush
func (k *Kind[T]) MarkDirty(id string) {
	if _, ok := k.entries[id]; ok {
		k.dirty[id] = struct{}{}
	}
}

// Dirty returns the mutated entities ordered by id for a deterministic flush
func (k *Kind[T]) Dirty() []*T {
	ids := make([]string, 0, len(k.dirty))
	for id := range k.dirty {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	entities := make([]*T, 0, len(ids))
	for _, id := range ids {
		entities = append(entities, k.entries[id])
	}
	return entities
}

// Len returns the number of cached entities of this kind
func (k *Kind[T]) Len() int {
	return len(k.entries)
}

// Cache is the shared mutable state of one processing window, one typed map
// per entity kind
type Cache struct {
	Accounts    *Kind[domain.Account]
	Items       *Kind[domain.Item]
	NFTs        *Kind[domain.NFT]
	Sales       *Kind[domain.Sale]
	Counts      *Kind[domain.Count]
	Analytics   *Kind[domain.AnalyticsDayData]
	ItemDays    *Kind[domain.ItemDayData]
	AccountDays *Kind[domain.AccountDayData]
}

// New creates an empty cache seeded lazily through the given reader
func New(reader store.Reader) *Cache {
	return &Cache{
		Accounts:    newKind(reader.GetAccount),
		Items:       newKind(reader.GetItem),
		NFTs:        newKind(reader.GetNFT),
		Sales:       newKind[domain.Sale](nil), // sales are created, never re-read
		Counts:      newKind(reader.GetCount),
		Analytics:   newKind(reader.GetAnalyticsDayData),
		ItemDays:    newKind(reader.GetItemDayData),
		AccountDays: newKind(reader.GetAccountDayData),
	}
}

// Delta collects every dirty entity into the batch handed to the store
func (c *Cache) Delta() *domain.WindowDelta {
	return &domain.WindowDelta{
		Accounts:    c.Accounts.Dirty(),
		Items:       c.Items.Dirty(),
		NFTs:        c.NFTs.Dirty(),
		Sales:       c.Sales.Dirty(),
		Counts:      c.Counts.Dirty(),
		Analytics:   c.Analytics.Dirty(),
		ItemDays:    c.ItemDays.Dirty(),
		AccountDays: c.AccountDays.Dirty(),
	}
}
