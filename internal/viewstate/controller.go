// Package viewstate owns the selected day of the launch-week dashboard and
// notifies observers whenever the selection is applied.
package viewstate

import (
	"errors"
	"fmt"
	"slices"

	"github.com/alexanderramin/launchweek/internal/plan"
	"go.uber.org/zap"
)

// ErrInvalidSelection indicates an attempt to select a day key the plan does
// not contain. Errors returned for it also match plan.ErrKeyNotFound.
var ErrInvalidSelection = errors.New("invalid selection")

// Event describes the state after a successful selection.
type Event struct {
	Key       string
	Day       plan.DayRecord
	Technical int
	Marketing int
}

// Observer receives selection events.
type Observer interface {
	SelectionChanged(Event)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(Event)

func (f ObserverFunc) SelectionChanged(ev Event) { f(ev) }

// Controller holds the selected day key and derives the current record.
// It is not safe for concurrent use: callers drive it from a single event
// loop, and every observer has returned before SelectDay does.
type Controller struct {
	store    *plan.Store
	selected string
	current  plan.DayRecord

	observers []*subscription
	logger    *zap.Logger
}

type subscription struct {
	obs Observer
}

// Option configures a Controller.
type Option func(*controllerOptions)

type controllerOptions struct {
	logger   *zap.Logger
	startDay string
}

// WithLogger sets the logger used for selection events.
func WithLogger(l *zap.Logger) Option {
	return func(o *controllerOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithStartDay selects key instead of the store's first key. An unknown key
// makes New fail with ErrInvalidSelection.
func WithStartDay(key string) Option {
	return func(o *controllerOptions) {
		o.startDay = key
	}
}

// New creates a Controller positioned on the store's first day.
func New(store *plan.Store, opts ...Option) (*Controller, error) {
	if store == nil || store.Len() == 0 {
		return nil, plan.ErrEmptyPlan
	}

	o := controllerOptions{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	start := store.First()
	if o.startDay != "" {
		start = o.startDay
	}
	current, err := store.Get(start)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSelection, err)
	}

	return &Controller{
		store:    store,
		selected: start,
		current:  current,
		logger:   o.logger,
	}, nil
}

// SelectDay makes key the selected day and notifies every observer, even
// when key is already selected. An unknown key leaves the state untouched.
func (c *Controller) SelectDay(key string) error {
	day, err := c.store.Get(key)
	if err != nil {
		c.logger.Warn("rejected day selection", zap.String("key", key))
		return fmt.Errorf("%w: %w", ErrInvalidSelection, err)
	}

	prev := c.selected
	c.selected = key
	c.current = day

	c.logger.Debug("day selected",
		zap.String("key", key),
		zap.String("previous", prev),
		zap.Int("technical", day.TechnicalCount()),
		zap.Int("marketing", day.MarketingCount()),
	)

	c.notify()
	return nil
}

// Next selects the day after the current one, wrapping to the first.
func (c *Controller) Next() error {
	return c.step(1)
}

// Prev selects the day before the current one, wrapping to the last.
func (c *Controller) Prev() error {
	return c.step(-1)
}

func (c *Controller) step(delta int) error {
	keys := c.store.Keys()
	i := slices.Index(keys, c.selected)
	n := len(keys)
	return c.SelectDay(keys[((i+delta)%n+n)%n])
}

// Current returns the record for the selected day.
func (c *Controller) Current() plan.DayRecord {
	d := c.current
	d.Technical = slices.Clone(d.Technical)
	d.Marketing = slices.Clone(d.Marketing)
	return d
}

// Selected returns the selected day key.
func (c *Controller) Selected() string {
	return c.selected
}

// Keys returns the plan's day keys in display order.
func (c *Controller) Keys() []string {
	return c.store.Keys()
}

// Store returns the plan backing the controller.
func (c *Controller) Store() *plan.Store {
	return c.store
}

// Subscribe registers obs and returns a function that removes it.
// Observers run synchronously in registration order.
func (c *Controller) Subscribe(obs Observer) (unsubscribe func()) {
	sub := &subscription{obs: obs}
	c.observers = append(c.observers, sub)
	return func() {
		c.observers = slices.DeleteFunc(c.observers, func(s *subscription) bool {
			return s == sub
		})
	}
}

func (c *Controller) notify() {
	ev := Event{
		Key:       c.selected,
		Day:       c.Current(),
		Technical: c.current.TechnicalCount(),
		Marketing: c.current.MarketingCount(),
	}
	for _, sub := range slices.Clone(c.observers) {
		sub.obs.SelectionChanged(ev)
	}
}
