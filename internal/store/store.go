// Package store provides durable CRUD over address-book contacts in a
// single SQLite table. Each operation is self-contained: one statement,
// committed by the engine's own atomicity, no cross-call transaction
// state. The schema is created on demand, so a fresh database file is
// usable from the first call.
package store

import "github.com/leapstack-labs/carnet/internal/contact"

// Store is the storage contract the controller and the CLI commands
// program against. SQLiteStore is the only production implementation.
type Store interface {
	// Create inserts one record and returns the assigned identifier.
	// Fails with *contact.ValidationError when a required name is
	// empty after trimming.
	Create(c contact.Contact) (int64, error)

	// Find returns records whose last name, phone, or email contains
	// the query, case-insensitively, ordered by (last_name,
	// first_name). An empty query is a validation error.
	Find(query string) ([]contact.Contact, error)

	// Update replaces every mutable field of the record with the
	// matching ID. It returns false, nil when no such record exists.
	Update(c contact.Contact) (bool, error)

	// Delete removes the record with the given ID, reporting whether
	// a record was actually removed.
	Delete(id int64) (bool, error)

	// ListAll returns every record ordered by (last_name, first_name).
	ListAll() ([]contact.Contact, error)

	// GetByID returns the record with the given ID, or nil, nil when
	// absent. A non-positive ID is a validation error.
	GetByID(id int64) (*contact.Contact, error)

	// Close releases the underlying database handle.
	Close() error
}
