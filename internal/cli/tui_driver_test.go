package cli

import (
	"testing"

	"github.com/alexanderramin/launchweek/internal/plan"
	"github.com/alexanderramin/launchweek/internal/teatest"
	"github.com/alexanderramin/launchweek/internal/viewstate"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// TestDriver wraps teatest.Driver with access to the dashboard's controller
// and chart.
type TestDriver struct {
	*teatest.Driver
	ctrl *viewstate.Controller
}

// NewTestDriver builds the dashboard over store, starting on startDay, and
// sizes it to a 120x40 terminal.
func NewTestDriver(t *testing.T, store *plan.Store, startDay string) *TestDriver {
	t.Helper()

	ctrl, err := viewstate.New(store, viewstate.WithStartDay(startDay))
	require.NoError(t, err)

	m, err := newAppModel(ctrl, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(m.close)

	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()
	return &TestDriver{Driver: d, ctrl: ctrl}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// Selected returns the key of the selected day.
func (d *TestDriver) Selected() string {
	return d.ctrl.Selected()
}

// ChartCounts returns the counts currently drawn by the dashboard doughnut.
func (d *TestDriver) ChartCounts() (technical, marketing int) {
	d.T.Helper()
	dash := d.appModel().dashboard
	c, err := dash.doughnut.Counts(dash.binding.Handle())
	require.NoError(d.T, err)
	return c.Technical, c.Marketing
}

// HelpExpanded reports whether the full help is shown.
func (d *TestDriver) HelpExpanded() bool {
	return d.appModel().help.ShowAll
}
