// Package tui is the interactive terminal front end of the address
// book. The Model implements controller.View: the controller pushes
// list contents, dialogs, and form state into it, and key handlers
// call back into the controller's workflows.
package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/leapstack-labs/carnet/internal/contact"
	"github.com/leapstack-labs/carnet/internal/controller"
	"github.com/leapstack-labs/carnet/internal/store"
)

type mode int

const (
	modeList mode = iota
	modeForm
	modeSearch
	modeConfirm
)

// Model is the bubbletea model for the whole application.
type Model struct {
	ctrl   *controller.Controller
	logger *slog.Logger

	mode     mode
	contacts []contact.Contact
	cursor   int

	form        contactForm
	searchInput textinput.Model
	help        help.Model

	status    string
	statusErr bool

	confirmTitle   string
	confirmMessage string
	confirmArmed   bool

	width  int
	height int
}

// NewModel creates the TUI model. Call SetController before running it.
func NewModel(logger *slog.Logger) *Model {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	search := textinput.New()
	search.Placeholder = "last name, phone, or email"
	search.Prompt = "/ "
	search.CharLimit = 120

	return &Model{
		logger:      logger,
		form:        newContactForm(),
		searchInput: search,
		help:        help.New(),
	}
}

// SetController wires the controller in and loads the initial list.
func (m *Model) SetController(ctrl *controller.Controller) {
	m.ctrl = ctrl
	ctrl.ListAll()
}

// Run opens the store's address book in a full-screen TUI session.
func Run(st store.Store, logger *slog.Logger) error {
	model := NewModel(logger)
	model.SetController(controller.New(st, model, logger))

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run UI: %w", err)
	}
	return nil
}

// controller.View implementation

func (m *Model) FormValues() contact.FormValues {
	if m.mode == modeSearch {
		return contact.FormValues{LastName: m.searchInput.Value()}
	}
	return m.form.values()
}

func (m *Model) SetFormValues(c contact.Contact) {
	m.form.setValues(c)
	m.mode = modeForm
}

func (m *Model) ClearForm() {
	m.form.clear()
}

func (m *Model) SelectedID() (int64, bool) {
	if m.mode == modeForm && m.form.editID > 0 {
		return m.form.editID, true
	}
	if m.cursor >= 0 && m.cursor < len(m.contacts) {
		return m.contacts[m.cursor].ID, true
	}
	return 0, false
}

func (m *Model) RenderList(contacts []contact.Contact) {
	m.contacts = contacts
	if m.cursor >= len(contacts) {
		m.cursor = len(contacts) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) ShowInfo(title, message string) {
	m.status = title + ": " + message
	m.statusErr = false
}

func (m *Model) ShowError(title, message string) {
	m.status = title + ": " + message
	m.statusErr = true
}

// ShowConfirm answers in two passes. The first call records the prompt,
// switches to the confirmation screen, and declines; when the user
// accepts, the key handler arms the answer and re-runs the workflow, so
// the second call returns true.
func (m *Model) ShowConfirm(title, message string) bool {
	if m.confirmArmed {
		m.confirmArmed = false
		return true
	}
	m.mode = modeConfirm
	m.confirmTitle = title
	m.confirmMessage = message
	return false
}

var _ controller.View = (*Model)(nil)

// bubbletea plumbing

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeList:
			return m.updateList(msg)
		case modeForm:
			return m.updateForm(msg)
		case modeSearch:
			return m.updateSearch(msg)
		case modeConfirm:
			return m.updateConfirm(msg)
		}
	}

	return m, nil
}

func (m *Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.contacts)-1 {
			m.cursor++
		}

	case "a", "n":
		m.status = ""
		m.form.clear()
		m.mode = modeForm
		return m, textinput.Blink

	case "e", "enter":
		m.status = ""
		m.ctrl.LoadForEdit()
		return m, textinput.Blink

	case "d", "delete":
		m.status = ""
		m.ctrl.Delete()

	case "/":
		m.status = ""
		m.mode = modeSearch
		m.searchInput.SetValue("")
		return m, m.searchInput.Focus()

	case "r":
		m.status = ""
		m.ctrl.ListAll()

	case "?":
		m.help.ShowAll = !m.help.ShowAll

	case "q", "ctrl+c":
		m.ctrl.Quit()
		return m, tea.Quit
	}

	return m, nil
}

func (m *Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.form.clear()
		m.mode = modeList
		return m, nil

	case "ctrl+c":
		m.ctrl.Quit()
		return m, tea.Quit

	case "tab", "down":
		return m, m.form.next()

	case "shift+tab", "up":
		return m, m.form.prev()

	case "enter":
		if m.form.focused < fieldCount-1 {
			return m, m.form.next()
		}
		m.submitForm()
		return m, nil
	}

	return m, m.form.update(msg)
}

// submitForm routes to the add or update workflow. The controller
// reports the outcome through ShowInfo or ShowError; only a success
// leaves the form.
func (m *Model) submitForm() {
	editing := m.form.editID > 0

	m.statusErr = false
	if editing {
		m.ctrl.Update()
	} else {
		m.ctrl.Add()
	}

	if !m.statusErr {
		m.mode = modeList
	}
}

func (m *Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searchInput.SetValue("")
		m.searchInput.Blur()
		m.mode = modeList
		m.ctrl.ListAll()
		return m, nil

	case "ctrl+c":
		m.ctrl.Quit()
		return m, tea.Quit

	case "enter":
		query := strings.TrimSpace(m.searchInput.Value())
		m.searchInput.Blur()
		m.statusErr = false
		if query == "" {
			m.ctrl.ListAll()
		} else {
			m.ctrl.Search()
		}
		m.mode = modeList
		m.cursor = 0
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m *Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		m.confirmArmed = true
		m.mode = modeList
		m.ctrl.Delete()
		// Arming is one-shot per prompt. If the re-run aborted before
		// reaching the confirm step, a stale flag would let the next
		// delete skip its prompt.
		m.confirmArmed = false

	case "n", "N", "esc":
		m.mode = modeList
	}

	return m, nil
}

func (m *Model) View() string {
	switch m.mode {
	case modeForm:
		return m.viewForm()
	case modeConfirm:
		return m.viewConfirm()
	default:
		return m.viewList()
	}
}

func (m *Model) viewList() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Carnet (%d contacts)", len(m.contacts))))
	b.WriteString("\n\n")

	if m.mode == modeSearch {
		b.WriteString(m.searchInput.View())
		b.WriteString("\n\n")
	}

	if len(m.contacts) == 0 {
		b.WriteString(dimStyle.Render("No contacts. Press a to add one."))
		b.WriteString("\n")
	} else {
		for i, c := range m.contacts {
			line := fmt.Sprintf("%-4d %-28s %-16s %s", c.ID, truncate(c.DisplayName(), 28), c.Phone, c.Email)
			if i == m.cursor {
				b.WriteString(selectedRowStyle.Render(line))
			} else {
				b.WriteString(rowStyle.Render(line))
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.viewStatus())
	b.WriteString(m.help.View(listKeys))

	return b.String()
}

func (m *Model) viewForm() string {
	var b strings.Builder

	title := "Add contact"
	if m.form.editID > 0 {
		title = fmt.Sprintf("Edit contact %d", m.form.editID)
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")
	b.WriteString(m.form.view())
	b.WriteString("\n")
	b.WriteString(m.viewStatus())
	b.WriteString(m.help.View(formKeys))

	return b.String()
}

func (m *Model) viewConfirm() string {
	box := confirmBoxStyle.Render(
		errorStyle.Render(m.confirmTitle) + "\n\n" +
			m.confirmMessage + "\n\n" +
			dimStyle.Render("y to confirm, n to cancel"),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m *Model) viewStatus() string {
	if m.status == "" {
		return ""
	}
	if m.statusErr {
		return errorStyle.Render("✗ "+m.status) + "\n\n"
	}
	return infoStyle.Render("✓ "+m.status) + "\n\n"
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
