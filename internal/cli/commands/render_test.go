package commands

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/carnet/internal/contact"
)

var renderSample = []contact.Contact{
	{ID: 1, LastName: "Dupont", FirstName: "Jean", Phone: "0102030405", Email: "jean@example.com"},
	{ID: 2, LastName: "Martin", FirstName: "Paul", Address: "3, rue \"des Lilas\""},
}

func TestRenderContactsJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderContacts(&buf, renderSample, "json"))

	var got []contact.Contact
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, "Dupont", got[0].LastName)
}

func TestRenderContactsCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderContacts(&buf, renderSample, "csv"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "id,last_name,first_name,phone,email,address", lines[0])
	// commas and quotes in fields get escaped
	assert.Contains(t, lines[2], `"3, rue ""des Lilas"""`)
}

func TestRenderContactsTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderContacts(&buf, renderSample, "table"))

	out := buf.String()
	assert.Contains(t, out, "Dupont")
	assert.Contains(t, out, "Martin")
	assert.Contains(t, out, "(2 contacts)")
}

func TestRenderContactsTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderContacts(&buf, nil, "table"))
	assert.Contains(t, buf.String(), "(0 contacts)")
}

func TestRenderContactsMarkdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderContacts(&buf, renderSample, "md"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.GreaterOrEqual(t, len(lines), 4)
	assert.True(t, strings.HasPrefix(lines[0], "| id |"))
	assert.Contains(t, lines[1], "---")
}

func TestRenderContactsUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, renderContacts(&buf, renderSample, "xml"))
}

func TestParseIDRejectsBadInput(t *testing.T) {
	for _, arg := range []string{"abc", "", "0", "-3", "1.5"} {
		_, err := parseID(arg)
		assert.Error(t, err, "arg %q", arg)
	}

	id, err := parseID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}
