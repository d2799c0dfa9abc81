package testutil

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/launchweek/internal/chart"
)

// ChartCall records one Initialize or Update invocation.
type ChartCall struct {
	Op        string // "initialize" or "update"
	Handle    chart.Handle
	Technical int
	Marketing int
}

// RecordingAdapter is a chart.Adapter that records every call.
// Set FailUpdates to make Update return ErrUpdateFailed.
type RecordingAdapter struct {
	Calls       []ChartCall
	FailUpdates bool

	next int
}

// ErrUpdateFailed is returned by RecordingAdapter.Update when FailUpdates is set.
var ErrUpdateFailed = errors.New("recording adapter: update failed")

func (r *RecordingAdapter) Initialize(technical, marketing int) (chart.Handle, error) {
	r.next++
	h := chart.Handle(fmt.Sprintf("chart-%d", r.next))
	r.Calls = append(r.Calls, ChartCall{Op: "initialize", Handle: h, Technical: technical, Marketing: marketing})
	return h, nil
}

func (r *RecordingAdapter) Update(h chart.Handle, technical, marketing int) error {
	r.Calls = append(r.Calls, ChartCall{Op: "update", Handle: h, Technical: technical, Marketing: marketing})
	if r.FailUpdates {
		return ErrUpdateFailed
	}
	return nil
}

// Updates returns only the recorded Update calls.
func (r *RecordingAdapter) Updates() []ChartCall {
	var out []ChartCall
	for _, c := range r.Calls {
		if c.Op == "update" {
			out = append(out, c)
		}
	}
	return out
}
