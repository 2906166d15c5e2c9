// Package controller orchestrates the user-triggered workflows of the
// address book. It is the only layer that turns validation and storage
// failures into user-facing messages: it validates form input before
// the store sees it, and any storage-engine error surfaces as an error
// dialog rather than terminating the application.
package controller

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/leapstack-labs/carnet/internal/contact"
	"github.com/leapstack-labs/carnet/internal/store"
)

// Controller wires a View to a Store. All methods run synchronously on
// the caller's goroutine; each one completes its storage call and any
// resulting re-render before returning.
type Controller struct {
	store  store.Store
	view   View
	logger *slog.Logger
}

// New creates a Controller. A nil logger discards debug output.
func New(st store.Store, view View, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Controller{store: st, view: view, logger: logger}
}

// Add creates a contact from the current form values.
func (c *Controller) Add() {
	rec := c.view.FormValues().Trimmed()
	if err := rec.Validate(); err != nil {
		c.view.ShowError("Invalid contact", userMessage(err))
		return
	}

	id, err := c.store.Create(rec)
	if err != nil {
		c.view.ShowError("Database error", err.Error())
		return
	}

	c.logger.Debug("contact created", "id", id, "last_name", rec.LastName)
	c.view.ShowInfo("Contact added", fmt.Sprintf("%s saved with id %d", rec.DisplayName(), id))
	c.view.ClearForm()
	c.refresh()
}

// Search looks up contacts using the first non-empty of last name,
// phone, and email from the form, in that priority order.
func (c *Controller) Search() {
	rec := c.view.FormValues().Trimmed()

	var query string
	switch {
	case rec.LastName != "":
		query = rec.LastName
	case rec.Phone != "":
		query = rec.Phone
	case rec.Email != "":
		query = rec.Email
	default:
		c.view.ShowError("Search", "enter a last name, phone, or email to search for")
		return
	}

	results, err := c.store.Find(query)
	if err != nil {
		c.view.ShowError("Database error", err.Error())
		return
	}
	if len(results) == 0 {
		c.view.ShowError("Search", fmt.Sprintf("no contact matches %q", query))
		return
	}

	c.view.RenderList(results)
}

// LoadForEdit populates the form with the selected record.
func (c *Controller) LoadForEdit() {
	id, ok := c.view.SelectedID()
	if !ok {
		c.view.ShowError("Edit", "select a contact first")
		return
	}

	rec, err := c.store.GetByID(id)
	if err != nil {
		c.view.ShowError("Database error", err.Error())
		return
	}
	if rec == nil {
		c.view.ShowError("Edit", fmt.Sprintf("contact %d no longer exists", id))
		return
	}

	c.view.SetFormValues(*rec)
}

// Update replaces the selected record with the current form values.
// Matching the original behavior, a vanished record is still reported
// as a success: the store's matched/not-matched result does not change
// the user-facing message.
func (c *Controller) Update() {
	id, ok := c.view.SelectedID()
	if !ok {
		c.view.ShowError("Update", "select a contact first")
		return
	}

	rec := c.view.FormValues().Trimmed()
	if err := rec.Validate(); err != nil {
		c.view.ShowError("Invalid contact", userMessage(err))
		return
	}
	rec.ID = id

	matched, err := c.store.Update(rec)
	if err != nil {
		c.view.ShowError("Database error", err.Error())
		return
	}

	c.logger.Debug("contact updated", "id", id, "matched", matched)
	c.view.ShowInfo("Contact updated", fmt.Sprintf("%s saved", rec.DisplayName()))
	c.view.ClearForm()
	c.refresh()
}

// Delete removes the selected record after a confirmation prompt.
// Declining aborts with no side effect.
func (c *Controller) Delete() {
	id, ok := c.view.SelectedID()
	if !ok {
		c.view.ShowError("Delete", "select a contact first")
		return
	}

	rec, err := c.store.GetByID(id)
	if err != nil {
		c.view.ShowError("Database error", err.Error())
		return
	}
	if rec == nil {
		c.view.ShowError("Delete", fmt.Sprintf("contact %d no longer exists", id))
		return
	}

	prompt := fmt.Sprintf("Delete %s?", rec.DisplayName())
	if !c.view.ShowConfirm("Delete contact", prompt) {
		return
	}

	removed, err := c.store.Delete(id)
	if err != nil {
		c.view.ShowError("Database error", err.Error())
		return
	}
	if !removed {
		c.view.ShowError("Delete", fmt.Sprintf("contact %d no longer exists", id))
		return
	}

	c.logger.Debug("contact deleted", "id", id)
	c.view.ShowInfo("Contact deleted", fmt.Sprintf("%s removed", rec.DisplayName()))
	c.view.ClearForm()
	c.refresh()
}

// ListAll renders every record, including an empty set.
func (c *Controller) ListAll() {
	c.refresh()
}

// Quit is the session-end hook. All changes were committed per
// operation, so there is nothing to flush; the View owns the event
// loop and terminates it after calling this.
func (c *Controller) Quit() {
	c.logger.Debug("session ended")
}

func (c *Controller) refresh() {
	contacts, err := c.store.ListAll()
	if err != nil {
		c.view.ShowError("Database error", err.Error())
		return
	}
	c.view.RenderList(contacts)
}

// userMessage renders a validation error in field-free prose for the
// error dialog.
func userMessage(err error) string {
	var verr *contact.ValidationError
	if !errors.As(err, &verr) {
		return err.Error()
	}
	switch verr.Field {
	case "last_name":
		return "last name is required"
	case "first_name":
		return "first name is required"
	case "email":
		return "email address is not valid"
	default:
		return verr.Error()
	}
}
