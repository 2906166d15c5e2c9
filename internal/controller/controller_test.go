package controller

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/carnet/internal/contact"
	"github.com/leapstack-labs/carnet/internal/store"
	"github.com/leapstack-labs/carnet/internal/testutil"
)

// fakeView records every call the controller makes, and answers
// ShowConfirm synchronously like a modal dialog would.
type fakeView struct {
	form         contact.FormValues
	setForm      *contact.Contact
	selectedID   int64
	hasSelection bool

	lastList   []contact.Contact
	listCalls  int
	infos      []string
	errs       []string
	confirmOK  bool
	confirms   []string
	clearCalls int
}

func (v *fakeView) FormValues() contact.FormValues { return v.form }

func (v *fakeView) SetFormValues(c contact.Contact) { v.setForm = &c }

func (v *fakeView) ClearForm() { v.clearCalls++ }

func (v *fakeView) SelectedID() (int64, bool) { return v.selectedID, v.hasSelection }

func (v *fakeView) RenderList(contacts []contact.Contact) {
	v.lastList = contacts
	v.listCalls++
}

func (v *fakeView) ShowInfo(title, message string) { v.infos = append(v.infos, title+": "+message) }

func (v *fakeView) ShowError(title, message string) { v.errs = append(v.errs, title+": "+message) }

func (v *fakeView) ShowConfirm(_, message string) bool {
	v.confirms = append(v.confirms, message)
	return v.confirmOK
}

func newTestController(t *testing.T) (*Controller, *store.SQLiteStore, *fakeView) {
	t.Helper()

	st, err := store.Open(filepath.Join(t.TempDir(), "contacts.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	view := &fakeView{}
	return New(st, view, testutil.NewTestLogger(t)), st, view
}

func TestAddTrimsValidatesAndRefreshes(t *testing.T) {
	ctrl, st, view := newTestController(t)

	view.form = contact.FormValues{
		LastName:  "  Dupont ",
		FirstName: " Jean ",
		Email:     "jean.dupont@example.com",
	}
	ctrl.Add()

	assert.Empty(t, view.errs)
	require.Len(t, view.infos, 1)
	assert.Contains(t, view.infos[0], "Dupont Jean")
	assert.Equal(t, 1, view.clearCalls)

	require.Len(t, view.lastList, 1)
	assert.Equal(t, "Dupont", view.lastList[0].LastName)

	all, err := st.ListAll()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Jean", all[0].FirstName)
}

func TestAddRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		form    contact.FormValues
		wantMsg string
	}{
		{"missing last name", contact.FormValues{FirstName: "Jean"}, "last name is required"},
		{"missing first name", contact.FormValues{LastName: "Dupont"}, "first name is required"},
		{"whitespace-only names", contact.FormValues{LastName: "   ", FirstName: " "}, "last name is required"},
		{"bad email", contact.FormValues{LastName: "Dupont", FirstName: "Jean", Email: "nodomain"}, "email address is not valid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl, st, view := newTestController(t)

			view.form = tt.form
			ctrl.Add()

			require.Len(t, view.errs, 1)
			assert.Contains(t, view.errs[0], tt.wantMsg)
			assert.Empty(t, view.infos)

			all, err := st.ListAll()
			require.NoError(t, err)
			assert.Empty(t, all)
		})
	}
}

func TestSearchUsesFieldPriority(t *testing.T) {
	ctrl, st, view := newTestController(t)

	_, err := st.Create(contact.Contact{LastName: "Dupont", FirstName: "Jean", Phone: "0102030405"})
	require.NoError(t, err)
	_, err = st.Create(contact.Contact{LastName: "Martin", FirstName: "Paul", Phone: "0611223344"})
	require.NoError(t, err)

	// last name wins over phone when both are filled
	view.form = contact.FormValues{LastName: "Dupont", Phone: "0611"}
	ctrl.Search()
	require.Len(t, view.lastList, 1)
	assert.Equal(t, "Jean", view.lastList[0].FirstName)

	// phone alone
	view.form = contact.FormValues{Phone: "0611"}
	ctrl.Search()
	require.Len(t, view.lastList, 1)
	assert.Equal(t, "Paul", view.lastList[0].FirstName)
}

func TestSearchEmptyFormAndNoMatch(t *testing.T) {
	ctrl, _, view := newTestController(t)

	ctrl.Search()
	require.Len(t, view.errs, 1)
	assert.Contains(t, view.errs[0], "enter a last name")

	view.form = contact.FormValues{LastName: "Nobody"}
	ctrl.Search()
	require.Len(t, view.errs, 2)
	assert.Contains(t, view.errs[1], `no contact matches "Nobody"`)
}

func TestLoadForEdit(t *testing.T) {
	ctrl, st, view := newTestController(t)

	id, err := st.Create(contact.Contact{LastName: "Dupont", FirstName: "Jean", Phone: "0102030405"})
	require.NoError(t, err)

	view.selectedID, view.hasSelection = id, true
	ctrl.LoadForEdit()

	require.NotNil(t, view.setForm)
	assert.Equal(t, "Dupont", view.setForm.LastName)
	assert.Equal(t, "0102030405", view.setForm.Phone)

	// vanished record
	view.selectedID = id + 100
	ctrl.LoadForEdit()
	require.Len(t, view.errs, 1)
	assert.Contains(t, view.errs[0], "no longer exists")
}

func TestUpdateReplacesRecord(t *testing.T) {
	ctrl, st, view := newTestController(t)

	id, err := st.Create(contact.Contact{LastName: "Dupont", FirstName: "Jean", Phone: "0102030405"})
	require.NoError(t, err)

	view.selectedID, view.hasSelection = id, true
	view.form = contact.FormValues{LastName: "Durand", FirstName: "Jeanne"}
	ctrl.Update()

	assert.Empty(t, view.errs)
	require.Len(t, view.infos, 1)

	got, err := st.GetByID(id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Durand", got.LastName)
	assert.Empty(t, got.Phone)
}

func TestUpdateVanishedRecordStillReportsSuccess(t *testing.T) {
	ctrl, _, view := newTestController(t)

	view.selectedID, view.hasSelection = 42, true
	view.form = contact.FormValues{LastName: "Durand", FirstName: "Jeanne"}
	ctrl.Update()

	assert.Empty(t, view.errs)
	require.Len(t, view.infos, 1)
	assert.Contains(t, view.infos[0], "Durand Jeanne")
}

func TestDeleteDeclinedLeavesRecord(t *testing.T) {
	ctrl, st, view := newTestController(t)

	id, err := st.Create(contact.Contact{LastName: "Dupont", FirstName: "Jean"})
	require.NoError(t, err)

	view.selectedID, view.hasSelection = id, true
	view.confirmOK = false
	ctrl.Delete()

	require.Len(t, view.confirms, 1)
	assert.Contains(t, view.confirms[0], "Dupont Jean")
	assert.Empty(t, view.infos)

	got, err := st.GetByID(id)
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestDeleteConfirmedRemovesRecord(t *testing.T) {
	ctrl, st, view := newTestController(t)

	id, err := st.Create(contact.Contact{LastName: "Dupont", FirstName: "Jean"})
	require.NoError(t, err)

	view.selectedID, view.hasSelection = id, true
	view.confirmOK = true
	ctrl.Delete()

	require.Len(t, view.infos, 1)
	assert.Contains(t, view.infos[0], "removed")
	assert.Equal(t, 1, view.clearCalls)

	got, err := st.GetByID(id)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDeleteWithoutSelection(t *testing.T) {
	ctrl, _, view := newTestController(t)

	ctrl.Delete()
	require.Len(t, view.errs, 1)
	assert.Contains(t, view.errs[0], "select a contact first")
}

func TestListAllRendersEmptySet(t *testing.T) {
	ctrl, _, view := newTestController(t)

	ctrl.ListAll()
	assert.Equal(t, 1, view.listCalls)
	assert.Empty(t, view.lastList)
}

// failingStore returns the same error from every operation.
type failingStore struct{ err error }

func (f *failingStore) Create(contact.Contact) (int64, error)   { return 0, f.err }
func (f *failingStore) Find(string) ([]contact.Contact, error)  { return nil, f.err }
func (f *failingStore) Update(contact.Contact) (bool, error)    { return false, f.err }
func (f *failingStore) Delete(int64) (bool, error)              { return false, f.err }
func (f *failingStore) ListAll() ([]contact.Contact, error)     { return nil, f.err }
func (f *failingStore) GetByID(int64) (*contact.Contact, error) { return nil, f.err }
func (f *failingStore) Close() error                            { return nil }

func TestStorageErrorsSurfaceAsDialogs(t *testing.T) {
	view := &fakeView{}
	ctrl := New(&failingStore{err: errors.New("disk I/O error")}, view, nil)

	view.form = contact.FormValues{LastName: "Dupont", FirstName: "Jean"}
	ctrl.Add()

	view.selectedID, view.hasSelection = 1, true
	ctrl.Delete()
	ctrl.ListAll()

	require.Len(t, view.errs, 3)
	for _, msg := range view.errs {
		assert.Contains(t, msg, "Database error")
		assert.Contains(t, msg, "disk I/O error")
	}
}
