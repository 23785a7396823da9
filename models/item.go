package models

import (
	"time"

	"github.com/google/uuid"
)

// Item is the demo CRUD record of the scaffold. Every item belongs to a user
// through OwnerID, which gives list filters a relationship edge to traverse
// (e.g. "owner.login").
type Item struct {
	// ID is the unique identifier of the item.
	ID uuid.UUID `json:"id"`

	// Name is the display name of the item.
	Name string `json:"name"`

	// OwnerID references the user that created the item.
	OwnerID uuid.UUID `json:"owner_id"`

	// Created is set by the database when the row is first persisted.
	Created time.Time `json:"created_at"`

	// Modified tracks the last update of the row.
	Modified time.Time `json:"modified_at"`

	// DeletedOn is non-nil once the item has been soft-deleted.
	// Soft-deleted rows stay in the table and are excluded by callers
	// that care about liveness.
	DeletedOn *time.Time `json:"deleted_on,omitempty"`
}
