package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/carnet/internal/contact"
)

// renderContacts writes the records in the requested format. The table
// renderer is the default; json, csv, md, and yaml are for scripting.
func renderContacts(w io.Writer, contacts []contact.Contact, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(contacts)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(contacts)
	case "csv":
		return renderContactsCSV(w, contacts)
	case "md", "markdown":
		return renderContactsMarkdown(w, contacts)
	case "", "table":
		return renderContactsTable(w, contacts)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

var contactHeader = []string{"id", "last_name", "first_name", "phone", "email", "address"}

func contactRow(c contact.Contact) []string {
	return []string{
		fmt.Sprintf("%d", c.ID),
		c.LastName, c.FirstName, c.Phone, c.Email, c.Address,
	}
}

func renderContactsTable(w io.Writer, contacts []contact.Contact) error {
	if len(contacts) == 0 {
		_, _ = fmt.Fprintln(w, "(0 contacts)")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	headerRow := make(table.Row, len(contactHeader))
	for i, col := range contactHeader {
		headerRow[i] = col
	}
	t.AppendHeader(headerRow)

	for _, c := range contacts {
		fields := contactRow(c)
		row := make(table.Row, len(fields))
		for i, f := range fields {
			row[i] = f
		}
		t.AppendRow(row)
	}

	t.Render()
	_, _ = fmt.Fprintf(w, "(%d contacts)\n", len(contacts))
	return nil
}

func renderContactsCSV(w io.Writer, contacts []contact.Contact) error {
	_, _ = fmt.Fprintln(w, strings.Join(contactHeader, ","))
	for _, c := range contacts {
		fields := contactRow(c)
		escaped := make([]string, len(fields))
		for i, f := range fields {
			escaped[i] = escapeCSV(f)
		}
		_, _ = fmt.Fprintln(w, strings.Join(escaped, ","))
	}
	return nil
}

func renderContactsMarkdown(w io.Writer, contacts []contact.Contact) error {
	if len(contacts) == 0 {
		_, _ = fmt.Fprintln(w, "(0 contacts)")
		return nil
	}

	_, _ = fmt.Fprintf(w, "| %s |\n", strings.Join(contactHeader, " | "))
	seps := make([]string, len(contactHeader))
	for i := range seps {
		seps[i] = "---"
	}
	_, _ = fmt.Fprintf(w, "| %s |\n", strings.Join(seps, " | "))

	for _, c := range contacts {
		_, _ = fmt.Fprintf(w, "| %s |\n", strings.Join(contactRow(c), " | "))
	}
	return nil
}

func escapeCSV(s string) string {
	if strings.ContainsAny(s, ",\"\n") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}
