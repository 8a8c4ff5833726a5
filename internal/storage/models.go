// Package storage defines the record types, the sentinel errors and the
// in-memory implementation of the relational contract consumed by the
// shortener service.
package storage

import (
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when an insert violates a uniqueness constraint.
	ErrConflict = errors.New("data conflict")
)

// URLRecord is one short code joined with its destination URL.
type URLRecord struct {
	Code      string    `json:"code"`
	Original  string    `json:"original_url"`
	CreatedAt time.Time `json:"created_at"`
}
