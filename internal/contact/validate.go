package contact

import (
	"fmt"
	"regexp"
)

// ValidationError reports structurally invalid input: a missing required
// field, a malformed email, or a non-positive identifier. It is the only
// error kind the storage layer raises on its own; everything else comes
// from the database engine and is wrapped, not translated.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// emailPattern is the single canonical email rule. Both the live form
// hint and the authoritative pre-save check use it, so "looks valid
// while typing" and "accepted on submit" can never disagree.
var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// ValidEmail reports whether the email is acceptable. An empty email is
// always valid; the field is optional.
func ValidEmail(email string) bool {
	if email == "" {
		return true
	}
	return emailPattern.MatchString(email)
}

// Validate checks the record-level rules: last and first name must be
// non-empty after trimming, and the email (when present) must match the
// canonical pattern. The receiver is expected to be normalized already;
// callers going through FormValues.Trimmed or Normalize are.
func (c Contact) Validate() error {
	if c.LastName == "" {
		return NewValidationError("last_name", "required")
	}
	if c.FirstName == "" {
		return NewValidationError("first_name", "required")
	}
	if !ValidEmail(c.Email) {
		return NewValidationError("email", "invalid format")
	}
	return nil
}

// ValidateID checks that an identifier could name a persisted record.
func ValidateID(id int64) error {
	if id <= 0 {
		return NewValidationError("id", "must be a positive integer")
	}
	return nil
}
