package plan

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Store is an immutable, ordered mapping from day key to DayRecord.
// It is fully populated by NewStore and never modified afterwards.
type Store struct {
	keys []string
	days map[string]DayRecord
}

// NewStore builds a Store from days in display order. Every problem found
// is reported; the returned error matches the relevant sentinel errors via
// errors.Is.
func NewStore(days ...DayRecord) (*Store, error) {
	if len(days) == 0 {
		return nil, ErrEmptyPlan
	}

	s := &Store{
		keys: make([]string, 0, len(days)),
		days: make(map[string]DayRecord, len(days)),
	}

	seen := make(map[string]bool, len(days))
	var errs []error
	for i, d := range days {
		key := strings.TrimSpace(d.Key)
		switch {
		case key == "":
			errs = append(errs, fmt.Errorf("days[%d]: %w: key is required", i, ErrInvalidDay))
			continue
		case !IsWeekdayKey(key):
			errs = append(errs, fmt.Errorf("days[%d]: %w %q", i, ErrUnknownDay, key))
			continue
		}
		if seen[key] {
			errs = append(errs, fmt.Errorf("days[%d]: %w %q", i, ErrDuplicateKey, key))
			continue
		}
		seen[key] = true
		if strings.TrimSpace(d.Title) == "" {
			errs = append(errs, fmt.Errorf("days[%d] (%s): %w: title is required", i, key, ErrInvalidDay))
			continue
		}

		d.Key = key
		s.keys = append(s.keys, key)
		s.days[key] = d.clone()
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return s, nil
}

// Get returns a copy of the record for key.
func (s *Store) Get(key string) (DayRecord, error) {
	d, ok := s.days[key]
	if !ok {
		return DayRecord{}, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	return d.clone(), nil
}

// Has reports whether key is present.
func (s *Store) Has(key string) bool {
	_, ok := s.days[key]
	return ok
}

// Keys returns the day keys in display order.
func (s *Store) Keys() []string {
	return slices.Clone(s.keys)
}

// First returns the first key in display order.
func (s *Store) First() string {
	return s.keys[0]
}

// Len returns the number of days in the plan.
func (s *Store) Len() int {
	return len(s.keys)
}

// Days returns copies of all records in display order.
func (s *Store) Days() []DayRecord {
	out := make([]DayRecord, 0, len(s.keys))
	for _, k := range s.keys {
		out = append(out, s.days[k].clone())
	}
	return out
}

// IndexOf returns the display position of key, or -1 if absent.
func (s *Store) IndexOf(key string) int {
	return slices.Index(s.keys, key)
}
