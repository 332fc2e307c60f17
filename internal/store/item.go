package store

import (
	"context"
	"fmt"

	"github.com/dkeller/item-api/internal/domain"
	"github.com/google/uuid"
)

// Pagination bounds for ListItemsParams.
const (
	MinPage    = 1
	MinPerPage = 1
	MaxPerPage = 100

	// DefaultPerPage is applied by the HTTP layer when the client does
	// not supply a per_page value.
	DefaultPerPage = 10
)

// Pagination validation errors. Both wrap domain.ErrValidation so the
// API layer classifies them the same way as entity validation failures.
var (
	// ErrInvalidPage is returned when a list request asks for a page below MinPage.
	ErrInvalidPage = fmt.Errorf("%w: page must be at least %d", domain.ErrValidation, MinPage)

	// ErrInvalidPerPage is returned when a list request asks for a page size
	// outside [MinPerPage, MaxPerPage].
	ErrInvalidPerPage = fmt.Errorf(
		"%w: per_page must be between %d and %d",
		domain.ErrValidation,
		MinPerPage,
		MaxPerPage,
	)
)

// ListItemsParams describes a filtered, paginated item listing.
// A nil Status means no status filter.
type ListItemsParams struct {
	Status  *domain.ItemStatus
	Page    int
	PerPage int
}

// Validate checks the pagination bounds.
// Out-of-range pages are not an error; they simply yield empty results.
func (p ListItemsParams) Validate() error {
	if p.Page < MinPage {
		return ErrInvalidPage
	}
	if p.PerPage < MinPerPage || p.PerPage > MaxPerPage {
		return ErrInvalidPerPage
	}
	return nil
}

// Offset returns the index of the first entry of the requested page.
func (p ListItemsParams) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// ItemStats is the aggregate view over all stored items.
type ItemStats struct {
	Total       int                       `json:"total"`
	ByStatus    map[domain.ItemStatus]int `json:"by_status"`
	ByPriority  map[int]int               `json:"by_priority"`
	AvgPriority float64                   `json:"avg_priority"`
}

// ItemStore defines the interface for item storage.
type ItemStore interface {
	// Create saves a new item to the store.
	// The item must be valid according to domain validation rules;
	// invalid items are rejected with an error wrapping ErrInvalidEntity.
	// Returns ErrDuplicate if an item with the same ID already exists.
	Create(ctx context.Context, item *domain.Item) error

	// GetByID retrieves an item by its unique ID.
	// Returns ErrItemNotFound if the item does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error)

	// List returns the page of items selected by params, in insertion
	// order, together with the total count of items matching the filter
	// before pagination. Out-of-range pages yield an empty slice and the
	// true total. Invalid pagination bounds are rejected with an error
	// wrapping domain.ErrValidation.
	List(ctx context.Context, params ListItemsParams) ([]*domain.Item, int, error)

	// Update applies a partial update to an existing item and returns the
	// updated record. Only the non-nil fields of the patch are merged;
	// the UpdatedAt timestamp is always refreshed.
	// Returns ErrItemNotFound if the item does not exist, and a
	// domain validation error (leaving the stored record unchanged) if
	// the merged record would be invalid.
	Update(ctx context.Context, id uuid.UUID, patch domain.ItemPatch) (*domain.Item, error)

	// Delete removes an item from the store by its ID.
	// Returns ErrItemNotFound if the item does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// Stats computes aggregate counts and the average priority across all
	// stored items. An empty store yields zero counts and AvgPriority 0.
	Stats(ctx context.Context) (*ItemStats, error)
}
