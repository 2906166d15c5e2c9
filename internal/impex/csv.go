package impex

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/leapstack-labs/carnet/internal/contact"
)

var csvHeader = []string{"last_name", "first_name", "phone", "email", "address"}

func exportCSV(w io.Writer, contacts []contact.Contact) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, c := range contacts {
		record := []string{c.LastName, c.FirstName, c.Phone, c.Email, c.Address}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func importCSV(r io.Reader) ([]contact.Contact, *Result, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("empty CSV file")
	}

	// Column positions come from the header row, so column order in
	// the file does not matter.
	headerMap := make(map[string]int)
	for idx, col := range rows[0] {
		headerMap[strings.ToLower(strings.TrimSpace(col))] = idx
	}
	if _, ok := headerMap["last_name"]; !ok {
		return nil, nil, fmt.Errorf("missing last_name column in CSV header")
	}

	field := func(row []string, name string) string {
		idx, ok := headerMap[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return row[idx]
	}

	records := make([]contact.Contact, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, contact.Contact{
			LastName:  field(row, "last_name"),
			FirstName: field(row, "first_name"),
			Phone:     field(row, "phone"),
			Email:     field(row, "email"),
			Address:   field(row, "address"),
		})
	}

	// +2 skips the header row and converts to 1-based lines
	valid, result := sift(records, func(i int) int { return i + 2 })
	return valid, result, nil
}
