// Package memory implements the store interfaces with process-local,
// mutex-guarded state. All data is volatile: a restart discards every
// stored item.
package memory

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync"

	"github.com/dkeller/item-api/internal/domain"
	"github.com/dkeller/item-api/internal/store"
	"github.com/google/uuid"
)

// ItemStore is an in-memory implementation of store.ItemStore.
// A single RWMutex serializes mutations; reads share the lock so a
// partially-applied mutation is never observable. Items are held by
// value and copied on the way in and out, so callers never alias
// internal state.
type ItemStore struct {
	mu     sync.RWMutex
	items  map[uuid.UUID]domain.Item
	order  []uuid.UUID
	logger *slog.Logger
}

// Interface compliance check.
var _ store.ItemStore = (*ItemStore)(nil)

// NewItemStore creates a new, empty in-memory item store.
func NewItemStore(logger *slog.Logger) *ItemStore {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ItemStore")
	}

	return &ItemStore{
		items:  make(map[uuid.UUID]domain.Item),
		order:  make([]uuid.UUID, 0),
		logger: logger.With(slog.String("component", "memory_item_store")),
	}
}

// Create saves a new item to the store.
// Returns store.ErrInvalidEntity (wrapping the validation detail) if the
// item fails domain validation, and store.ErrDuplicate on an ID collision.
func (s *ItemStore) Create(ctx context.Context, item *domain.Item) error {
	if err := item.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[item.ID]; exists {
		return store.NewStoreError("item", "create",
			fmt.Sprintf("id %s already in use", item.ID), store.ErrDuplicate)
	}

	s.items[item.ID] = *item
	s.order = append(s.order, item.ID)

	s.logger.DebugContext(ctx, "item created",
		slog.String("item_id", item.ID.String()),
		slog.Int("total_items", len(s.items)))
	return nil
}

// GetByID retrieves an item by its unique ID.
// Returns store.ErrItemNotFound if the item does not exist.
func (s *ItemStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.items[id]
	if !exists {
		return nil, store.NewStoreError("item", "get",
			fmt.Sprintf("id %s", id), store.ErrItemNotFound)
	}

	return &item, nil
}

// List returns the requested page of items in insertion order together
// with the total count of items matching the filter before pagination.
func (s *ItemStore) List(
	ctx context.Context,
	params store.ListItemsParams,
) ([]*domain.Item, int, error) {
	if err := params.Validate(); err != nil {
		return nil, 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	filtered := make([]uuid.UUID, 0, len(s.order))
	for _, id := range s.order {
		if params.Status != nil && s.items[id].Status != *params.Status {
			continue
		}
		filtered = append(filtered, id)
	}
	total := len(filtered)

	start := params.Offset()
	if start > total {
		start = total
	}
	end := start + params.PerPage
	if end > total {
		end = total
	}

	page := make([]*domain.Item, 0, end-start)
	for _, id := range filtered[start:end] {
		item := s.items[id]
		page = append(page, &item)
	}

	return page, total, nil
}

// Update applies a partial update to an existing item and returns a copy
// of the updated record. A patch that fails domain validation leaves the
// stored record unchanged.
func (s *ItemStore) Update(
	ctx context.Context,
	id uuid.UUID,
	patch domain.ItemPatch,
) (*domain.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, exists := s.items[id]
	if !exists {
		return nil, store.NewStoreError("item", "update",
			fmt.Sprintf("id %s", id), store.ErrItemNotFound)
	}

	// item is a copy; the map entry is only replaced once the merge
	// has validated cleanly.
	if err := item.ApplyPatch(patch); err != nil {
		return nil, err
	}

	s.items[id] = item

	s.logger.DebugContext(ctx, "item updated",
		slog.String("item_id", id.String()))
	return &item, nil
}

// Delete removes an item from the store by its ID.
// Returns store.ErrItemNotFound if the item does not exist.
func (s *ItemStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[id]; !exists {
		return store.NewStoreError("item", "delete",
			fmt.Sprintf("id %s", id), store.ErrItemNotFound)
	}

	delete(s.items, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	s.logger.DebugContext(ctx, "item deleted",
		slog.String("item_id", id.String()),
		slog.Int("total_items", len(s.items)))
	return nil
}

// Stats computes aggregate counts and the average priority across all
// stored items. An empty store yields AvgPriority 0 rather than an error.
func (s *ItemStore) Stats(ctx context.Context) (*store.ItemStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := &store.ItemStats{
		Total:      len(s.items),
		ByStatus:   make(map[domain.ItemStatus]int),
		ByPriority: make(map[int]int),
	}

	if stats.Total == 0 {
		return stats, nil
	}

	prioritySum := 0
	for _, item := range s.items {
		stats.ByStatus[item.Status]++
		stats.ByPriority[item.Priority]++
		prioritySum += item.Priority
	}

	mean := float64(prioritySum) / float64(stats.Total)
	stats.AvgPriority = math.Round(mean*100) / 100

	return stats, nil
}

// Len reports the number of stored items. Intended for readiness checks
// and tests; not part of the store.ItemStore contract.
func (s *ItemStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
