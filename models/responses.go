package models

import "github.com/etorres/go-api-scaffold/internal/pagination"

// ItemResponse is the outbound representation of a single item.
type ItemResponse struct {
	ItemID string `json:"itemId"`
	Name   string `json:"name"`
}

// ItemListResponse is the payload of the item list endpoint: one page of
// items plus the pagination metadata and navigation links describing it.
type ItemListResponse struct {
	Data       []ItemResponse        `json:"data"`
	Pagination pagination.Pagination `json:"pagination"`
}

// TaskEnqueuedResponse acknowledges an accepted task with the ID that can be
// used to poll the result endpoint.
type TaskEnqueuedResponse struct {
	ID string `json:"id"`
}
