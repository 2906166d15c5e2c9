package impex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/carnet/internal/contact"
)

var sample = []contact.Contact{
	{ID: 1, LastName: "Dupont", FirstName: "Jean", Phone: "0102030405", Email: "jean.dupont@example.com", Address: "12 rue de la Paix"},
	{ID: 2, LastName: "Martin", FirstName: "Paul"},
}

func TestParseFormat(t *testing.T) {
	for name, want := range map[string]Format{
		"csv": FormatCSV, "CSV": FormatCSV,
		"json": FormatJSON,
		"yaml": FormatYAML, "yml": FormatYAML,
	} {
		got, err := ParseFormat(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestDetectFormat(t *testing.T) {
	for path, want := range map[string]Format{
		"contacts.csv": FormatCSV,
		"backup.JSON":  FormatJSON,
		"a/b/book.yml": FormatYAML,
		"book.yaml":    FormatYAML,
	} {
		got, err := DetectFormat(path)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := DetectFormat("contacts.txt")
	assert.Error(t, err)
}

func TestRoundTripAllFormats(t *testing.T) {
	for _, format := range []Format{FormatCSV, FormatJSON, FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "contacts."+string(format))

			require.NoError(t, ExportFile(path, format, sample))

			got, result, err := ImportFile(path, format)
			require.NoError(t, err)
			assert.Equal(t, 2, result.Total)
			assert.Equal(t, 2, result.Imported)
			assert.Zero(t, result.Skipped)

			require.Len(t, got, 2)
			// IDs never travel through interchange files
			assert.Zero(t, got[0].ID)
			assert.Equal(t, "Dupont", got[0].LastName)
			assert.Equal(t, "jean.dupont@example.com", got[0].Email)
			assert.Equal(t, "Martin", got[1].LastName)
			assert.Empty(t, got[1].Phone)
		})
	}
}

func TestImportCSVSkipsInvalidRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contacts.csv")
	data := "last_name,first_name,phone,email,address\n" +
		"Dupont,Jean,,jean@example.com,\n" +
		",Paul,,,\n" + // missing last name
		"Martin,Paul,,nodomain,\n" // bad email
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	got, result, err := ImportFile(path, FormatCSV)
	require.NoError(t, err)

	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, 2, result.Skipped)
	require.Len(t, result.Errors, 2)
	assert.Equal(t, 3, result.Errors[0].Line)
	assert.Equal(t, 4, result.Errors[1].Line)

	require.Len(t, got, 1)
	assert.Equal(t, "Dupont", got[0].LastName)
}

func TestImportCSVHeaderOrderIndependent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contacts.csv")
	data := "email,first_name,last_name\njean@example.com,Jean,Dupont\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	got, result, err := ImportFile(path, FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)
	require.Len(t, got, 1)
	assert.Equal(t, "Dupont", got[0].LastName)
	assert.Equal(t, "jean@example.com", got[0].Email)
}

func TestImportCSVMissingHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contacts.csv")
	require.NoError(t, os.WriteFile(path, []byte("name,number\nJean,12\n"), 0o644))

	_, _, err := ImportFile(path, FormatCSV)
	assert.ErrorContains(t, err, "last_name")
}

func TestImportTrimsWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contacts.json")
	data := `[{"last_name": "  Dupont ", "first_name": " Jean "}]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	got, _, err := ImportFile(path, FormatJSON)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Dupont", got[0].LastName)
	assert.Equal(t, "Jean", got[0].FirstName)
}
