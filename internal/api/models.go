package api

import (
	"time"

	"github.com/dkeller/item-api/internal/domain"
	"github.com/dkeller/item-api/internal/store"
)

// CreateItemRequest represents the request body for creating a new item.
// Status and priority are optional pointer fields so that an absent field
// (domain defaults apply) stays distinguishable from an explicit value;
// a supplied value is always validated, including zero.
type CreateItemRequest struct {
	Title       string  `json:"title"       validate:"required,min=1,max=200"`
	Description string  `json:"description" validate:"omitempty,max=1000"`
	Status      *string `json:"status"      validate:"omitempty,oneof=pending in_progress completed"`
	Priority    *int    `json:"priority"    validate:"omitempty,gte=1,lte=5"`
}

// ItemStatus returns the requested status, or the empty string when the
// field was absent so domain.NewItem applies its default.
func (r CreateItemRequest) ItemStatus() domain.ItemStatus {
	if r.Status == nil {
		return ""
	}
	return domain.ItemStatus(*r.Status)
}

// ItemPriority returns the requested priority, or zero when the field
// was absent so domain.NewItem applies its default.
func (r CreateItemRequest) ItemPriority() int {
	if r.Priority == nil {
		return 0
	}
	return *r.Priority
}

// UpdateItemRequest represents the request body for a partial item update.
// All fields are optional; absent fields leave the stored value untouched.
type UpdateItemRequest struct {
	Title       *string `json:"title"       validate:"omitempty,min=1,max=200"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	Status      *string `json:"status"      validate:"omitempty,oneof=pending in_progress completed"`
	Priority    *int    `json:"priority"    validate:"omitempty,gte=1,lte=5"`
}

// ToPatch converts the request into a domain patch.
func (r UpdateItemRequest) ToPatch() domain.ItemPatch {
	patch := domain.ItemPatch{
		Title:       r.Title,
		Description: r.Description,
		Priority:    r.Priority,
	}
	if r.Status != nil {
		status := domain.ItemStatus(*r.Status)
		patch.Status = &status
	}
	return patch
}

// ItemResponse represents the response data for a single item.
type ItemResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	Priority    int       `json:"priority"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ItemListResponse represents the response data for a paginated item listing.
// Total is the count of items matching the filter before pagination.
type ItemListResponse struct {
	Items   []ItemResponse `json:"items"`
	Total   int            `json:"total"`
	Page    int            `json:"page"`
	PerPage int            `json:"per_page"`
}

// ItemStatsResponse represents the response data for the stats summary.
type ItemStatsResponse struct {
	Total       int            `json:"total"`
	ByStatus    map[string]int `json:"by_status"`
	ByPriority  map[int]int    `json:"by_priority"`
	AvgPriority float64        `json:"avg_priority"`
}

// itemToResponse converts a domain.Item to an ItemResponse.
func itemToResponse(item *domain.Item) ItemResponse {
	return ItemResponse{
		ID:          item.ID.String(),
		Title:       item.Title,
		Description: item.Description,
		Status:      string(item.Status),
		Priority:    item.Priority,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

// itemsToResponse converts a slice of domain items to response DTOs.
// Always returns a non-nil slice so empty pages serialize as [] rather
// than null.
func itemsToResponse(items []*domain.Item) []ItemResponse {
	responses := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, itemToResponse(item))
	}
	return responses
}

// statsToResponse converts store.ItemStats to an ItemStatsResponse.
func statsToResponse(stats *store.ItemStats) ItemStatsResponse {
	byStatus := make(map[string]int, len(stats.ByStatus))
	for status, count := range stats.ByStatus {
		byStatus[string(status)] = count
	}

	byPriority := make(map[int]int, len(stats.ByPriority))
	for priority, count := range stats.ByPriority {
		byPriority[priority] = count
	}

	return ItemStatsResponse{
		Total:       stats.Total,
		ByStatus:    byStatus,
		ByPriority:  byPriority,
		AvgPriority: stats.AvgPriority,
	}
}
