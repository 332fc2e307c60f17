package domain

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// ItemStatus represents the workflow state of an item.
type ItemStatus string

// Possible item status values
const (
	ItemStatusPending    ItemStatus = "pending"
	ItemStatusInProgress ItemStatus = "in_progress"
	ItemStatusCompleted  ItemStatus = "completed"
)

// Field constraints for Item validation. Length limits count Unicode
// characters, not bytes.
const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 1000
	MinPriority          = 1
	MaxPriority          = 5
)

// Item-specific validation errors. All of them wrap ErrValidation so
// callers can classify them with a single errors.Is check.
var (
	// ErrItemIDEmpty is returned when an item ID is empty or nil.
	ErrItemIDEmpty = fmt.Errorf("%w: item ID cannot be empty", ErrValidation)

	// ErrItemTitleEmpty is returned when an item's title is empty.
	ErrItemTitleEmpty = fmt.Errorf("%w: item title cannot be empty", ErrValidation)

	// ErrItemTitleTooLong is returned when an item's title exceeds MaxTitleLength.
	ErrItemTitleTooLong = fmt.Errorf(
		"%w: item title cannot exceed %d characters",
		ErrValidation,
		MaxTitleLength,
	)

	// ErrItemDescriptionTooLong is returned when an item's description
	// exceeds MaxDescriptionLength.
	ErrItemDescriptionTooLong = fmt.Errorf(
		"%w: item description cannot exceed %d characters",
		ErrValidation,
		MaxDescriptionLength,
	)

	// ErrInvalidItemStatus is returned when an item status is not one of
	// the defined enum values.
	ErrInvalidItemStatus = fmt.Errorf("%w: invalid item status", ErrValidation)

	// ErrInvalidItemPriority is returned when an item priority is outside
	// the [MinPriority, MaxPriority] range.
	ErrInvalidItemPriority = fmt.Errorf(
		"%w: item priority must be between %d and %d",
		ErrValidation,
		MinPriority,
		MaxPriority,
	)
)

// Item is the sole domain entity: a unit of work tracked by the API.
// The store owns all Item instances; handlers only ever see copies.
type Item struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      ItemStatus `json:"status"`
	Priority    int        `json:"priority"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewItem creates a new Item with the given title, description, status,
// and priority. It generates a new UUID for the item ID and sets the
// creation/update timestamps. Zero values for status and priority fall
// back to the defaults (pending, minimum priority).
// Returns an error if validation fails.
func NewItem(title, description string, status ItemStatus, priority int) (*Item, error) {
	if status == "" {
		status = ItemStatusPending
	}
	if priority == 0 {
		priority = MinPriority
	}

	now := time.Now().UTC()
	item := &Item{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		Status:      status,
		Priority:    priority,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := item.Validate(); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate checks if the Item has valid data.
// Returns an error if any field fails validation.
func (i *Item) Validate() error {
	if i.ID == uuid.Nil {
		return ErrItemIDEmpty
	}

	if i.Title == "" {
		return ErrItemTitleEmpty
	}

	if utf8.RuneCountInString(i.Title) > MaxTitleLength {
		return ErrItemTitleTooLong
	}

	if utf8.RuneCountInString(i.Description) > MaxDescriptionLength {
		return ErrItemDescriptionTooLong
	}

	if !isValidItemStatus(i.Status) {
		return ErrInvalidItemStatus
	}

	if i.Priority < MinPriority || i.Priority > MaxPriority {
		return ErrInvalidItemPriority
	}

	return nil
}

// ItemPatch describes a partial update to an Item. Only non-nil fields
// are applied; absent fields leave the stored value untouched.
type ItemPatch struct {
	Title       *string
	Description *string
	Status      *ItemStatus
	Priority    *int
}

// ApplyPatch merges the non-nil fields of the patch into the item and
// refreshes the UpdatedAt timestamp. The merged record is validated as
// a whole; if validation fails the item is restored to its prior state
// and an error is returned.
func (i *Item) ApplyPatch(patch ItemPatch) error {
	orig := *i

	if patch.Title != nil {
		i.Title = *patch.Title
	}
	if patch.Description != nil {
		i.Description = *patch.Description
	}
	if patch.Status != nil {
		i.Status = *patch.Status
	}
	if patch.Priority != nil {
		i.Priority = *patch.Priority
	}

	if err := i.Validate(); err != nil {
		*i = orig
		return err
	}

	i.UpdatedAt = time.Now().UTC()
	return nil
}

// ParseItemStatus converts a string into an ItemStatus.
// Returns ErrInvalidItemStatus if the string is not a defined status.
func ParseItemStatus(s string) (ItemStatus, error) {
	status := ItemStatus(s)
	if !isValidItemStatus(status) {
		return "", fmt.Errorf("%w: %q", ErrInvalidItemStatus, s)
	}
	return status, nil
}

// isValidItemStatus checks if the given status is a defined enum value.
func isValidItemStatus(status ItemStatus) bool {
	switch status {
	case ItemStatusPending, ItemStatusInProgress, ItemStatusCompleted:
		return true
	default:
		return false
	}
}
