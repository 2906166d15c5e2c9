package impex

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/carnet/internal/contact"
)

func exportJSON(w io.Writer, contacts []contact.Contact) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(contacts); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

func importJSON(r io.Reader) ([]contact.Contact, *Result, error) {
	var records []contact.Contact
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, nil, fmt.Errorf("failed to decode JSON: %w", err)
	}

	valid, result := sift(records, func(i int) int { return i + 1 })
	return valid, result, nil
}

func exportYAML(w io.Writer, contacts []contact.Contact) error {
	enc := yaml.NewEncoder(w)
	defer func() { _ = enc.Close() }()
	if err := enc.Encode(contacts); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return nil
}

func importYAML(r io.Reader) ([]contact.Contact, *Result, error) {
	var records []contact.Contact
	if err := yaml.NewDecoder(r).Decode(&records); err != nil {
		return nil, nil, fmt.Errorf("failed to decode YAML: %w", err)
	}

	valid, result := sift(records, func(i int) int { return i + 1 })
	return valid, result, nil
}
