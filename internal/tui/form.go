package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/leapstack-labs/carnet/internal/contact"
)

const (
	fieldLast = iota
	fieldFirst
	fieldPhone
	fieldEmail
	fieldAddress
	fieldCount
)

var fieldLabels = [fieldCount]string{"Last name", "First name", "Phone", "Email", "Address"}

// contactForm is the five-field entry form shared by the add and edit
// flows. editID is zero for a new contact.
type contactForm struct {
	inputs  [fieldCount]textinput.Model
	focused int
	editID  int64
	errors  map[string]string
}

func newContactForm() contactForm {
	f := contactForm{errors: make(map[string]string)}

	placeholders := [fieldCount]string{"Dupont", "Jean", "0102030405", "jean.dupont@example.com", "12 rue de la Paix"}
	for i := range f.inputs {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.CharLimit = 120
		in.Prompt = "> "
		f.inputs[i] = in
	}
	f.inputs[fieldLast].Focus()

	return f
}

func (f *contactForm) values() contact.FormValues {
	return contact.FormValues{
		LastName:  f.inputs[fieldLast].Value(),
		FirstName: f.inputs[fieldFirst].Value(),
		Phone:     f.inputs[fieldPhone].Value(),
		Email:     f.inputs[fieldEmail].Value(),
		Address:   f.inputs[fieldAddress].Value(),
	}
}

func (f *contactForm) setValues(c contact.Contact) {
	f.editID = c.ID
	f.inputs[fieldLast].SetValue(c.LastName)
	f.inputs[fieldFirst].SetValue(c.FirstName)
	f.inputs[fieldPhone].SetValue(c.Phone)
	f.inputs[fieldEmail].SetValue(c.Email)
	f.inputs[fieldAddress].SetValue(c.Address)
	f.errors = make(map[string]string)
	f.setFocus(fieldLast)
}

func (f *contactForm) clear() {
	f.editID = 0
	for i := range f.inputs {
		f.inputs[i].SetValue("")
	}
	f.errors = make(map[string]string)
	f.setFocus(fieldLast)
}

func (f *contactForm) setFocus(i int) tea.Cmd {
	for j := range f.inputs {
		f.inputs[j].Blur()
	}
	f.focused = i
	return f.inputs[i].Focus()
}

func (f *contactForm) next() tea.Cmd {
	return f.setFocus((f.focused + 1) % fieldCount)
}

func (f *contactForm) prev() tea.Cmd {
	return f.setFocus((f.focused + fieldCount - 1) % fieldCount)
}

// update routes input to the focused field and refreshes the live
// validation hints.
func (f *contactForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focused], cmd = f.inputs[f.focused].Update(msg)
	f.validateLive()
	return cmd
}

// validateLive mirrors the submit-time rules as typing hints.
func (f *contactForm) validateLive() {
	f.errors = make(map[string]string)

	if strings.TrimSpace(f.inputs[fieldLast].Value()) == "" {
		f.errors["last_name"] = "required"
	}
	if strings.TrimSpace(f.inputs[fieldFirst].Value()) == "" {
		f.errors["first_name"] = "required"
	}
	if email := strings.TrimSpace(f.inputs[fieldEmail].Value()); !contact.ValidEmail(email) {
		f.errors["email"] = "not a valid email address"
	}
}

func (f *contactForm) view() string {
	var b strings.Builder

	errKeys := [fieldCount]string{"last_name", "first_name", "", "email", ""}
	for i := range f.inputs {
		label := fieldLabels[i]
		if i == f.focused {
			b.WriteString(focusedLabelStyle.Render("▶ " + label))
		} else {
			b.WriteString(labelStyle.Render("  " + label))
		}
		b.WriteString("\n  ")
		b.WriteString(f.inputs[i].View())
		if key := errKeys[i]; key != "" {
			if msg, ok := f.errors[key]; ok {
				b.WriteString("  ")
				b.WriteString(warnStyle.Render(msg))
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}
