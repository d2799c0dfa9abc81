package chart

import (
	"fmt"

	"github.com/alexanderramin/launchweek/internal/viewstate"
	"go.uber.org/zap"
)

// Binding keeps one chart in an Adapter in step with a view-state
// Controller.
type Binding struct {
	adapter     Adapter
	handle      Handle
	unsubscribe func()
	logger      *zap.Logger
	lastErr     error
}

// Bind initializes a chart with the controller's current counts and
// forwards every later selection to adapter.Update.
func Bind(ctrl *viewstate.Controller, adapter Adapter, logger *zap.Logger) (*Binding, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	day := ctrl.Current()
	h, err := adapter.Initialize(day.TechnicalCount(), day.MarketingCount())
	if err != nil {
		return nil, fmt.Errorf("initializing chart: %w", err)
	}

	b := &Binding{adapter: adapter, handle: h, logger: logger}
	b.unsubscribe = ctrl.Subscribe(b)
	return b, nil
}

// Handle returns the chart handle owned by the binding.
func (b *Binding) Handle() Handle {
	return b.handle
}

// Err returns the error of the most recent update, if it failed.
func (b *Binding) Err() error {
	return b.lastErr
}

// SelectionChanged implements viewstate.Observer.
func (b *Binding) SelectionChanged(ev viewstate.Event) {
	b.lastErr = b.adapter.Update(b.handle, ev.Technical, ev.Marketing)
	if b.lastErr != nil {
		b.logger.Error("chart update failed",
			zap.String("handle", string(b.handle)),
			zap.String("day", ev.Key),
			zap.Error(b.lastErr),
		)
	}
}

// Close stops forwarding selections. It is safe to call more than once.
func (b *Binding) Close() {
	if b.unsubscribe != nil {
		b.unsubscribe()
		b.unsubscribe = nil
	}
}
