package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/launchweek/internal/chart"
	"github.com/alexanderramin/launchweek/internal/cli/formatter"
	"github.com/alexanderramin/launchweek/internal/viewstate"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// dashboardView is the home screen. It shows a split-pane layout: the
// selectable day list on the left and the selected day with its doughnut
// on the right.
type dashboardView struct {
	ctrl     *viewstate.Controller
	doughnut *chart.Doughnut
	binding  *chart.Binding
	width    int

	// err is the last rejected selection, cleared by the next good one.
	err error
}

func newDashboardView(ctrl *viewstate.Controller, logger *zap.Logger) (*dashboardView, error) {
	doughnut := chart.NewDoughnut(doughnutRows)
	binding, err := chart.Bind(ctrl, doughnut, logger)
	if err != nil {
		return nil, err
	}
	return &dashboardView{ctrl: ctrl, doughnut: doughnut, binding: binding}, nil
}

func (v *dashboardView) close() {
	v.binding.Close()
}

func (v *dashboardView) handleKey(msg tea.KeyMsg, keys keyMap) tea.Cmd {
	var err error
	switch {
	case key.Matches(msg, keys.Up):
		err = v.ctrl.Prev()
	case key.Matches(msg, keys.Down):
		err = v.ctrl.Next()
	case key.Matches(msg, keys.Day):
		i := int(msg.Runes[0] - '1')
		dayKeys := v.ctrl.Keys()
		if i >= len(dayKeys) {
			return nil
		}
		err = v.ctrl.SelectDay(dayKeys[i])
	default:
		return nil
	}
	v.err = err
	return nil
}

// ── view rendering ───────────────────────────────────────────────────────────

const dashLeftPaneWidth = 30

func (v *dashboardView) View() string {
	leftPane := v.renderLeftPane()
	rightPane := v.renderRightPane()

	if v.width < 80 {
		return leftPane + "\n" + rightPane
	}

	rightWidth := max(v.width-dashLeftPaneWidth-3, 20)
	leftCol := lipgloss.NewStyle().Width(dashLeftPaneWidth).Render(leftPane)
	divider := lipgloss.NewStyle().Foreground(formatter.ColorDim).Render("│")
	rightCol := lipgloss.NewStyle().Width(rightWidth).Render(rightPane)

	return lipgloss.JoinHorizontal(lipgloss.Top, leftCol, " "+divider+" ", rightCol)
}

// ── left pane: selectable day list ───────────────────────────────────────────

func (v *dashboardView) renderLeftPane() string {
	var b strings.Builder
	b.WriteString(formatter.StyleHeader.Render("DÍAS") + "\n\n")

	selected := v.ctrl.Selected()
	for i, d := range v.ctrl.Store().Days() {
		cursor := "  "
		nameStyle := formatter.StyleFg
		if d.Key == selected {
			cursor = formatter.StyleAmber.Render("▸ ")
			nameStyle = formatter.StyleBold
		}
		b.WriteString(fmt.Sprintf("%s%s %s %s\n",
			cursor,
			formatter.Dim(fmt.Sprintf("%d", i+1)),
			nameStyle.Render(padRight(formatter.DayLabel(d), 10)),
			formatter.RenderShareBar(d.TechnicalCount(), d.MarketingCount(), 6),
		))
	}
	return b.String()
}

// ── right pane: day detail ───────────────────────────────────────────────────

func (v *dashboardView) renderRightPane() string {
	var b strings.Builder
	b.WriteString(formatter.FormatDayDetail(v.ctrl.Current()))
	b.WriteString("\n")
	b.WriteString(formatter.Header("Distribución"))
	b.WriteString("\n")

	if out, err := v.doughnut.Render(v.binding.Handle()); err != nil {
		b.WriteString(formatter.Error(err))
	} else {
		b.WriteString(out)
	}
	b.WriteString("\n")

	if err := v.binding.Err(); err != nil {
		b.WriteString(formatter.Error(err) + "\n")
	}
	if v.err != nil {
		b.WriteString(formatter.Error(v.err) + "\n")
	}
	return b.String()
}

// padRight pads s with spaces to width display cells.
func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
