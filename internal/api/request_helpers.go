package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/dkeller/item-api/internal/domain"
	"github.com/dkeller/item-api/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// getPathUUID extracts a UUID from the URL path parameters.
// Returns an error wrapping domain.ErrInvalidID if the parameter is
// missing or not a valid UUID.
func getPathUUID(r *http.Request, paramName string) (uuid.UUID, error) {
	raw := chi.URLParam(r, paramName)
	if raw == "" {
		return uuid.Nil, fmt.Errorf("%w: missing %s path parameter", domain.ErrInvalidID, paramName)
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q is not a valid UUID", domain.ErrInvalidID, raw)
	}

	return id, nil
}

// parseListParams builds store.ListItemsParams from the request's query
// string. Missing page/per_page fall back to the defaults; non-numeric
// values and unknown status filters are validation errors.
func parseListParams(r *http.Request) (store.ListItemsParams, error) {
	params := store.ListItemsParams{
		Page:    store.MinPage,
		PerPage: store.DefaultPerPage,
	}

	query := r.URL.Query()

	if raw := query.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return params, fmt.Errorf(
				"%w: page must be an integer, got %q",
				domain.ErrValidation,
				raw,
			)
		}
		params.Page = page
	}

	if raw := query.Get("per_page"); raw != "" {
		perPage, err := strconv.Atoi(raw)
		if err != nil {
			return params, fmt.Errorf(
				"%w: per_page must be an integer, got %q",
				domain.ErrValidation,
				raw,
			)
		}
		params.PerPage = perPage
	}

	if raw := query.Get("status"); raw != "" {
		status, err := domain.ParseItemStatus(raw)
		if err != nil {
			return params, err
		}
		params.Status = &status
	}

	return params, nil
}
