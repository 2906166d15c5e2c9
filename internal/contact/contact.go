// Package contact defines the address-book record and the validation
// rules shared by the storage layer, the controller, and the UI.
package contact

import "strings"

// Contact is one address-book record. The ID is a surrogate key assigned
// by the store on creation and never reused within a database lifetime.
type Contact struct {
	ID        int64  `json:"id" yaml:"id"`
	LastName  string `json:"last_name" yaml:"last_name"`
	FirstName string `json:"first_name" yaml:"first_name"`
	Phone     string `json:"phone,omitempty" yaml:"phone,omitempty"`
	Email     string `json:"email,omitempty" yaml:"email,omitempty"`
	Address   string `json:"address,omitempty" yaml:"address,omitempty"`
}

// FormValues holds raw, untrimmed field values as collected by a View.
type FormValues struct {
	LastName  string
	FirstName string
	Phone     string
	Email     string
	Address   string
}

// Trimmed returns a Contact built from the form values with surrounding
// whitespace removed from every field. The ID is left zero.
func (f FormValues) Trimmed() Contact {
	return Contact{
		LastName:  strings.TrimSpace(f.LastName),
		FirstName: strings.TrimSpace(f.FirstName),
		Phone:     strings.TrimSpace(f.Phone),
		Email:     strings.TrimSpace(f.Email),
		Address:   strings.TrimSpace(f.Address),
	}
}

// Normalize trims surrounding whitespace from every field in place.
func (c *Contact) Normalize() {
	c.LastName = strings.TrimSpace(c.LastName)
	c.FirstName = strings.TrimSpace(c.FirstName)
	c.Phone = strings.TrimSpace(c.Phone)
	c.Email = strings.TrimSpace(c.Email)
	c.Address = strings.TrimSpace(c.Address)
}

// DisplayName returns "Last First" for list rendering and prompts.
func (c Contact) DisplayName() string {
	return strings.TrimSpace(c.LastName + " " + c.FirstName)
}
