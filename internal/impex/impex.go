// Package impex reads and writes address book files in CSV, JSON,
// and YAML formats.
package impex

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/leapstack-labs/carnet/internal/contact"
)

// Format identifies an interchange file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat parses a format name given on the command line.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown interchange format: %s", name)
	}
}

// DetectFormat guesses the format from a file extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("cannot detect format from extension of %q (use --format)", path)
	}
}

// RowError describes a rejected record in an import file.
type RowError struct {
	Line    int
	Message string
}

func (e RowError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// Result summarizes an import run.
type Result struct {
	Total    int
	Imported int
	Skipped  int
	Errors   []RowError
}

// ExportFile writes contacts to path in the given format.
func ExportFile(path string, format Format, contacts []contact.Contact) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = f.Close() }()

	switch format {
	case FormatCSV:
		return exportCSV(f, contacts)
	case FormatJSON:
		return exportJSON(f, contacts)
	case FormatYAML:
		return exportYAML(f, contacts)
	default:
		return fmt.Errorf("unknown interchange format: %s", format)
	}
}

// ImportFile reads contacts from path in the given format. Records that
// fail validation are skipped and reported in the result, never imported.
func ImportFile(path string, format Format) ([]contact.Contact, *Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	switch format {
	case FormatCSV:
		return importCSV(f)
	case FormatJSON:
		return importJSON(f)
	case FormatYAML:
		return importYAML(f)
	default:
		return nil, nil, fmt.Errorf("unknown interchange format: %s", format)
	}
}

// sift normalizes and validates decoded records, separating the good
// from the bad. Lines are 1-based positions in the decoded sequence;
// CSV passes real file line numbers instead.
func sift(records []contact.Contact, lineOf func(i int) int) ([]contact.Contact, *Result) {
	result := &Result{Total: len(records)}
	valid := make([]contact.Contact, 0, len(records))

	for i := range records {
		rec := records[i]
		rec.ID = 0
		rec.Normalize()
		if err := rec.Validate(); err != nil {
			result.Errors = append(result.Errors, RowError{Line: lineOf(i), Message: err.Error()})
			continue
		}
		valid = append(valid, rec)
	}

	result.Imported = len(valid)
	result.Skipped = result.Total - result.Imported
	return valid, result
}
