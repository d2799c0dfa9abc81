package plan

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed launch_week.yaml
var defaultPlanYAML []byte

// defaultStore is built once at package initialization and shared
// read-only for the life of the process.
var defaultStore = mustParse(defaultPlanYAML)

// Document is the on-disk YAML shape of a plan.
type Document struct {
	Days []DayDocument `yaml:"days"`
}

// DayDocument is one entry of Document.Days.
type DayDocument struct {
	Key       string   `yaml:"key"`
	Title     string   `yaml:"title"`
	Objective string   `yaml:"objective,omitempty"`
	Technical []string `yaml:"technical,omitempty"`
	Marketing []string `yaml:"marketing,omitempty"`
}

// Default returns the built-in launch-week plan.
func Default() *Store {
	return defaultStore
}

// Parse decodes a YAML plan document and builds a Store from it. Unknown
// fields are rejected.
func Parse(data []byte) (*Store, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding plan: %w", err)
	}

	days := make([]DayRecord, 0, len(doc.Days))
	for _, d := range doc.Days {
		days = append(days, DayRecord{
			Key:       d.Key,
			Title:     d.Title,
			Objective: d.Objective,
			Technical: d.Technical,
			Marketing: d.Marketing,
		})
	}

	store, err := NewStore(days...)
	if err != nil {
		return nil, fmt.Errorf("validating plan: %w", err)
	}
	return store, nil
}

// LoadFile reads and parses the plan document at path.
func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading plan file: %w", err)
	}
	store, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return store, nil
}

// Marshal encodes a Store back into its YAML document form.
func Marshal(s *Store) ([]byte, error) {
	doc := Document{Days: make([]DayDocument, 0, s.Len())}
	for _, d := range s.Days() {
		doc.Days = append(doc.Days, DayDocument{
			Key:       d.Key,
			Title:     d.Title,
			Objective: d.Objective,
			Technical: d.Technical,
			Marketing: d.Marketing,
		})
	}
	return yaml.Marshal(doc)
}

func mustParse(data []byte) *Store {
	s, err := Parse(data)
	if err != nil {
		panic(fmt.Sprintf("plan: embedded default plan is invalid: %v", err))
	}
	return s
}
