package testutil

import (
	"fmt"
	"testing"

	"github.com/alexanderramin/launchweek/internal/plan"
	"github.com/stretchr/testify/require"
)

// Day options
type DayOption func(*plan.DayRecord)

func WithTitle(title string) DayOption {
	return func(d *plan.DayRecord) {
		d.Title = title
	}
}

func WithObjective(objective string) DayOption {
	return func(d *plan.DayRecord) {
		d.Objective = objective
	}
}

// WithTasks sets numbered placeholder tasks for both lists.
func WithTasks(technical, marketing int) DayOption {
	return func(d *plan.DayRecord) {
		d.Technical = numbered("tech", technical)
		d.Marketing = numbered("mkt", marketing)
	}
}

func numbered(prefix string, n int) []string {
	if n == 0 {
		return nil
	}
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s-%d", prefix, i+1)
	}
	return out
}

// NewTestDay builds a day with a title derived from key and one task per list.
func NewTestDay(key string, opts ...DayOption) plan.DayRecord {
	d := plan.DayRecord{
		Key:       key,
		Title:     "Test " + key,
		Objective: "Objective for " + key,
		Technical: []string{"tech-1"},
		Marketing: []string{"mkt-1"},
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

// NewTestStore builds a store from days, failing the test on validation errors.
func NewTestStore(t *testing.T, days ...plan.DayRecord) *plan.Store {
	t.Helper()
	s, err := plan.NewStore(days...)
	require.NoError(t, err)
	return s
}
