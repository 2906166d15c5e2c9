package store

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/carnet/internal/contact"
)

// newMockStore wraps a sqlmock handle in a store with the schema check
// already satisfied, so tests exercise only the statement paths.
func newMockStore(t *testing.T) (*SQLiteStore, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	st := &SQLiteStore{db: db}
	st.schemaOnce.Do(func() {})

	return st, mock
}

func TestCreateWrapsEngineError(t *testing.T) {
	st, mock := newMockStore(t)

	boom := errors.New("disk I/O error")
	mock.ExpectExec("INSERT INTO contacts").WillReturnError(boom)

	_, err := st.Create(contact.Contact{LastName: "Dupont", FirstName: "Jean"})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "failed to create contact")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindWrapsEngineError(t *testing.T) {
	st, mock := newMockStore(t)

	boom := errors.New("database is locked")
	mock.ExpectQuery("SELECT .* FROM contacts").WillReturnError(boom)

	_, err := st.Find("dupont")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateWrapsEngineError(t *testing.T) {
	st, mock := newMockStore(t)

	boom := errors.New("database is locked")
	mock.ExpectExec("UPDATE contacts").WillReturnError(boom)

	_, err := st.Update(contact.Contact{ID: 1, LastName: "Dupont", FirstName: "Jean"})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteWrapsEngineError(t *testing.T) {
	st, mock := newMockStore(t)

	boom := errors.New("database is locked")
	mock.ExpectExec("DELETE FROM contacts").WillReturnError(boom)

	_, err := st.Delete(1)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateReportsMatchedRows(t *testing.T) {
	st, mock := newMockStore(t)

	mock.ExpectExec("UPDATE contacts").WillReturnResult(sqlmock.NewResult(0, 1))
	matched, err := st.Update(contact.Contact{ID: 1, LastName: "Dupont", FirstName: "Jean"})
	require.NoError(t, err)
	assert.True(t, matched)

	mock.ExpectExec("UPDATE contacts").WillReturnResult(sqlmock.NewResult(0, 0))
	matched, err = st.Update(contact.Contact{ID: 2, LastName: "Dupont", FirstName: "Jean"})
	require.NoError(t, err)
	assert.False(t, matched)

	assert.NoError(t, mock.ExpectationsWereMet())
}
