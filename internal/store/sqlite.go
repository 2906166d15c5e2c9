package store

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"

	"github.com/leapstack-labs/carnet/internal/contact"

	// sqlite driver for the contacts database.
	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store on a single SQLite database file. The
// database path is an explicit constructor argument; there is no
// ambient default. One *sql.DB is shared across operations —
// database/sql serializes access internally, which is all the locking
// a single-user desktop application needs.
type SQLiteStore struct {
	db   *sql.DB
	path string

	schemaOnce sync.Once
	schemaErr  error
}

// Open opens (or creates) the contacts database at path. Use ":memory:"
// for a throwaway in-memory database in tests.
func Open(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open contacts database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping contacts database: %w", err)
	}

	return &SQLiteStore{db: db, path: path}, nil
}

// Close closes the database handle.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Path returns the database file path the store was opened with.
func (s *SQLiteStore) Path() string {
	return s.path
}

// DB exposes the underlying handle for read-only inspection (the query
// REPL). Callers must not close it.
func (s *SQLiteStore) DB() *sql.DB {
	return s.db
}

// ensure guards every entry point: the handle must be open and the
// schema must exist. Migrations are idempotent, so running them lazily
// here keeps a fresh database usable from any first operation.
func (s *SQLiteStore) ensure() error {
	if s.db == nil {
		return fmt.Errorf("database not opened")
	}
	s.schemaOnce.Do(func() {
		s.schemaErr = s.Migrate()
	})
	return s.schemaErr
}

const contactColumns = "id, last_name, first_name, phone, email, address"

// Create inserts one contact and returns its assigned ID.
func (s *SQLiteStore) Create(c contact.Contact) (int64, error) {
	if err := s.ensure(); err != nil {
		return 0, err
	}

	c.Normalize()
	if c.LastName == "" {
		return 0, contact.NewValidationError("last_name", "required")
	}
	if c.FirstName == "" {
		return 0, contact.NewValidationError("first_name", "required")
	}

	result, err := s.db.Exec(
		`INSERT INTO contacts (last_name, first_name, phone, email, address) VALUES (?, ?, ?, ?, ?)`,
		c.LastName, c.FirstName, nullable(c.Phone), nullable(c.Email), nullable(c.Address),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create contact: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read new contact id: %w", err)
	}
	return id, nil
}

// Find matches the query as a case-insensitive substring of last name,
// phone, or email.
func (s *SQLiteStore) Find(query string) ([]contact.Contact, error) {
	if err := s.ensure(); err != nil {
		return nil, err
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, contact.NewValidationError("query", "required")
	}

	pattern := "%" + escapeLike(query) + "%"
	rows, err := s.db.Query(
		`SELECT `+contactColumns+` FROM contacts
		 WHERE last_name LIKE ? ESCAPE '\' OR phone LIKE ? ESCAPE '\' OR email LIKE ? ESCAPE '\'
		 ORDER BY last_name, first_name`,
		pattern, pattern, pattern,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to search contacts: %w", err)
	}
	defer rows.Close()

	return scanContacts(rows)
}

// Update replaces all fields of the contact matching c.ID. Returns
// false when no record has that ID.
func (s *SQLiteStore) Update(c contact.Contact) (bool, error) {
	if err := s.ensure(); err != nil {
		return false, err
	}

	if err := contact.ValidateID(c.ID); err != nil {
		return false, err
	}
	c.Normalize()
	if c.LastName == "" {
		return false, contact.NewValidationError("last_name", "required")
	}
	if c.FirstName == "" {
		return false, contact.NewValidationError("first_name", "required")
	}

	result, err := s.db.Exec(
		`UPDATE contacts SET last_name = ?, first_name = ?, phone = ?, email = ?, address = ? WHERE id = ?`,
		c.LastName, c.FirstName, nullable(c.Phone), nullable(c.Email), nullable(c.Address), c.ID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update contact: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read update result: %w", err)
	}
	return affected > 0, nil
}

// Delete removes the contact with the given ID.
func (s *SQLiteStore) Delete(id int64) (bool, error) {
	if err := s.ensure(); err != nil {
		return false, err
	}

	if err := contact.ValidateID(id); err != nil {
		return false, err
	}

	result, err := s.db.Exec(`DELETE FROM contacts WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete contact: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read delete result: %w", err)
	}
	return affected > 0, nil
}

// ListAll returns every contact ordered by (last_name, first_name).
func (s *SQLiteStore) ListAll() ([]contact.Contact, error) {
	if err := s.ensure(); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(
		`SELECT ` + contactColumns + ` FROM contacts ORDER BY last_name, first_name`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	defer rows.Close()

	return scanContacts(rows)
}

// GetByID returns the contact with the given ID, or nil when absent.
func (s *SQLiteStore) GetByID(id int64) (*contact.Contact, error) {
	if err := s.ensure(); err != nil {
		return nil, err
	}

	if err := contact.ValidateID(id); err != nil {
		return nil, err
	}

	c := contact.Contact{}
	var phone, email, address sql.NullString

	err := s.db.QueryRow(
		`SELECT `+contactColumns+` FROM contacts WHERE id = ?`, id,
	).Scan(&c.ID, &c.LastName, &c.FirstName, &phone, &email, &address)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}

	c.Phone = phone.String
	c.Email = email.String
	c.Address = address.String
	return &c, nil
}

// escapeLike neutralizes LIKE wildcards so user input only ever matches
// literally.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}

// nullable maps an empty optional field to NULL so absent values stay
// absent in the table.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func scanContacts(rows *sql.Rows) ([]contact.Contact, error) {
	var contacts []contact.Contact
	for rows.Next() {
		c := contact.Contact{}
		var phone, email, address sql.NullString

		if err := rows.Scan(&c.ID, &c.LastName, &c.FirstName, &phone, &email, &address); err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}

		c.Phone = phone.String
		c.Email = email.String
		c.Address = address.String
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}

// Ensure SQLiteStore implements the Store interface.
var _ Store = (*SQLiteStore)(nil)
