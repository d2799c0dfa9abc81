// Package chart draws the technical vs marketing task split of a day as a
// doughnut, either in the terminal or as a PNG image.
package chart

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrUnknownHandle indicates a handle the adapter never issued.
	ErrUnknownHandle = errors.New("unknown chart handle")

	// ErrNegativeCount indicates a task count below zero.
	ErrNegativeCount = errors.New("task count must not be negative")

	// ErrEmptyChart indicates an image render of a chart with no tasks.
	ErrEmptyChart = errors.New("chart has no tasks to draw")
)

// Series labels, in drawing order.
const (
	LabelTechnical = "Técnicas"
	LabelMarketing = "Marketing"
)

// Handle identifies one chart instance inside an adapter.
type Handle string

// Adapter is implemented by chart backends. The caller supplies the two
// counts; the adapter owns everything about how they are drawn.
type Adapter interface {
	Initialize(technical, marketing int) (Handle, error)
	Update(h Handle, technical, marketing int) error
}

// Counts is the data behind one doughnut.
type Counts struct {
	Technical int
	Marketing int
}

// Total returns the sum of both series.
func (c Counts) Total() int {
	return c.Technical + c.Marketing
}

// TechnicalShare returns the technical fraction of the total, or 0 for an
// empty chart.
func (c Counts) TechnicalShare() float64 {
	if c.Total() == 0 {
		return 0
	}
	return float64(c.Technical) / float64(c.Total())
}

func newCounts(technical, marketing int) (Counts, error) {
	if technical < 0 || marketing < 0 {
		return Counts{}, fmt.Errorf("%w: technical=%d marketing=%d", ErrNegativeCount, technical, marketing)
	}
	return Counts{Technical: technical, Marketing: marketing}, nil
}

// registry is the per-handle count table shared by the backends.
type registry struct {
	charts map[Handle]Counts
}

func newRegistry() registry {
	return registry{charts: make(map[Handle]Counts)}
}

func (r *registry) initialize(technical, marketing int) (Handle, error) {
	c, err := newCounts(technical, marketing)
	if err != nil {
		return "", err
	}
	h := Handle(uuid.NewString())
	r.charts[h] = c
	return h, nil
}

func (r *registry) update(h Handle, technical, marketing int) error {
	if _, ok := r.charts[h]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownHandle, h)
	}
	c, err := newCounts(technical, marketing)
	if err != nil {
		return err
	}
	r.charts[h] = c
	return nil
}

func (r *registry) counts(h Handle) (Counts, error) {
	c, ok := r.charts[h]
	if !ok {
		return Counts{}, fmt.Errorf("%w: %s", ErrUnknownHandle, h)
	}
	return c, nil
}
