package api

import (
	"log/slog"
	"net/http"

	"github.com/dkeller/item-api/internal/api/shared"
	"github.com/dkeller/item-api/internal/domain"
	"github.com/dkeller/item-api/internal/store"
)

// ItemHandler handles item-related HTTP requests.
type ItemHandler struct {
	itemStore store.ItemStore
	logger    *slog.Logger
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(itemStore store.ItemStore, logger *slog.Logger) *ItemHandler {
	if itemStore == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("item store cannot be nil for ItemHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ItemHandler")
	}

	return &ItemHandler{
		itemStore: itemStore,
		logger:    logger.With(slog.String("component", "item_handler")),
	}
}

// CreateItem handles POST /items requests.
// It validates the request body, creates the item and returns it with
// a 201 Created status.
func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	// Parse request body
	var req CreateItemRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		h.logger.Debug("invalid request body", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	// Validate request
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(
			w,
			r,
			http.StatusUnprocessableEntity,
			SanitizeValidationError(err),
			err,
		)
		return
	}

	item, err := domain.NewItem(
		req.Title,
		req.Description,
		req.ItemStatus(),
		req.ItemPriority(),
	)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if err := h.itemStore.Create(r.Context(), item); err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		if statusCode == http.StatusInternalServerError {
			safeMessage = "Failed to create item"
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	h.logger.Debug("item created", slog.String("item_id", item.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, itemToResponse(item))
}

// GetItem handles GET /items/{id} requests.
func (h *ItemHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		return
	}

	item, err := h.itemStore.GetByID(r.Context(), id)
	if err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		if statusCode == http.StatusInternalServerError {
			safeMessage = "Failed to get item"
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, itemToResponse(item))
}

// ListItems handles GET /items requests.
// Supports an optional exact status filter plus page/per_page pagination;
// the total always reflects the filtered count before pagination.
func (h *ItemHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	params, err := parseListParams(r)
	if err != nil {
		shared.RespondWithErrorAndLog(
			w,
			r,
			http.StatusUnprocessableEntity,
			GetSafeErrorMessage(err),
			err,
		)
		return
	}

	items, total, err := h.itemStore.List(r.Context(), params)
	if err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		if statusCode == http.StatusInternalServerError {
			safeMessage = "Failed to list items"
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	response := ItemListResponse{
		Items:   itemsToResponse(items),
		Total:   total,
		Page:    params.Page,
		PerPage: params.PerPage,
	}
	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// UpdateItem handles PUT /items/{id} requests.
// The body is a partial update: only the supplied fields are merged into
// the stored item, and UpdatedAt is refreshed.
func (h *ItemHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		return
	}

	var req UpdateItemRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		h.logger.Debug("invalid request body",
			slog.String("error", err.Error()),
			slog.String("item_id", id.String()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(
			w,
			r,
			http.StatusUnprocessableEntity,
			SanitizeValidationError(err),
			err,
		)
		return
	}

	item, err := h.itemStore.Update(r.Context(), id, req.ToPatch())
	if err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		if statusCode == http.StatusInternalServerError {
			safeMessage = "Failed to update item"
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	h.logger.Debug("item updated", slog.String("item_id", id.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, itemToResponse(item))
}

// DeleteItem handles DELETE /items/{id} requests.
// Returns 204 No Content on success.
func (h *ItemHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		return
	}

	if err := h.itemStore.Delete(r.Context(), id); err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		if statusCode == http.StatusInternalServerError {
			safeMessage = "Failed to delete item"
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	h.logger.Debug("item deleted", slog.String("item_id", id.String()))
	w.WriteHeader(http.StatusNoContent)
}

// GetItemStats handles GET /items/stats/summary requests.
func (h *ItemHandler) GetItemStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.itemStore.Stats(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(
			w,
			r,
			http.StatusInternalServerError,
			"Failed to compute item statistics",
			err,
		)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, statsToResponse(stats))
}
