package store

import (
	"encoding/json"
	"fmt"
	"time"

	yaml "gopkg.in/yaml.v3"
)

// Supported export formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

const exportSchemaVersion = "1.0.0"

// exportDoc is the serialized shape of a user snapshot.
type exportDoc struct {
	SchemaVersion string         `json:"schemaVersion" yaml:"schemaVersion"`
	Source        string         `json:"source" yaml:"source"`
	User          string         `json:"user" yaml:"user"`
	ExportedAt    time.Time      `json:"exportedAt" yaml:"exportedAt"`
	Collections   map[string]any `json:"collections" yaml:"collections"`
}

// Export serializes every collection of one user into a single snapshot
// document for backup or migration. Absent collections are skipped;
// documents that fail to parse are skipped the same way reads treat them.
func (s *Store) Export(userID, format string, now time.Time) ([]byte, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc := exportDoc{
		SchemaVersion: exportSchemaVersion,
		Source:        "studywing",
		User:          userID,
		ExportedAt:    now,
		Collections:   make(map[string]any),
	}
	for _, kind := range AllKinds() {
		raw, err := s.readRaw(kind, userID)
		if err != nil {
			return nil, err
		}
		if len(raw) == 0 {
			continue
		}
		var value any
		if err := json.Unmarshal(raw, &value); err != nil {
			continue
		}
		doc.Collections[string(kind)] = value
	}

	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal export to JSON: %w", err)
		}
		return data, nil
	case FormatYAML:
		data, err := yaml.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("marshal export to YAML: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported export format: %s. Supported formats are json, yaml", format)
	}
}
