package controller

import "github.com/leapstack-labs/carnet/internal/contact"

// View is the presentation boundary the controller drives. The terminal
// UI is the production implementation; tests use a scripted fake. The
// controller is injected into the View as an action handler, never the
// other way round, so there is no circular ownership between the two.
type View interface {
	// FormValues returns the raw, untrimmed field values currently in
	// the form.
	FormValues() contact.FormValues

	// SetFormValues populates the form with a persisted record.
	SetFormValues(contact.Contact)

	// ClearForm empties every form field and drops the selection.
	ClearForm()

	// SelectedID reports the record currently selected in the list,
	// or false when nothing is selected.
	SelectedID() (int64, bool)

	// RenderList displays the given records, including an empty set.
	RenderList([]contact.Contact)

	ShowInfo(title, message string)
	ShowError(title, message string)

	// ShowConfirm asks the user a yes/no question and reports the
	// answer. Event-driven views satisfy the synchronous contract by
	// answering false on first call, then re-running the workflow
	// with the recorded answer once the user has decided.
	ShowConfirm(title, message string) bool
}
