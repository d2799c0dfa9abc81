package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/launchweek/internal/cli/formatter"
	"github.com/alexanderramin/launchweek/internal/viewstate"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// appModel is the root bubbletea model: a header, the dashboard and a help
// bar.
type appModel struct {
	dashboard *dashboardView
	keys      keyMap
	help      help.Model
	width     int
	height    int
	quitting  bool
}

func newAppModel(ctrl *viewstate.Controller, logger *zap.Logger) (appModel, error) {
	dash, err := newDashboardView(ctrl, logger)
	if err != nil {
		return appModel{}, err
	}
	return appModel{
		dashboard: dash,
		keys:      defaultKeyMap(),
		help:      help.New(),
	}, nil
}

// close detaches the dashboard chart from the controller.
func (m appModel) close() {
	m.dashboard.close()
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.dashboard.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
		return m, m.dashboard.handleKey(msg, m.keys)
	}
	return m, nil
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		m.renderHeader(),
		m.dashboard.View(),
		formatter.Dim(strings.Repeat("─", max(m.width, 20))),
		m.help.View(m.keys),
	}
	result := strings.Join(sections, "\n")

	// Pad to the terminal height so the alt-screen renderer clears old lines.
	if m.height > 0 {
		if lines := strings.Count(result, "\n") + 1; lines < m.height {
			result += strings.Repeat("\n", m.height-lines)
		}
	}
	return result
}

func (m appModel) renderHeader() string {
	ctrl := m.dashboard.ctrl
	day := ctrl.Current()
	pos := ctrl.Store().IndexOf(day.Key) + 1

	header := formatter.StyleHeader.Render("launchweek") +
		" " + formatter.Dim("›") + " " + formatter.Bold(formatter.DayLabel(day)) +
		"  " + formatter.Dim(fmt.Sprintf("[%d/%d]", pos, ctrl.Store().Len()))
	sep := formatter.Dim(strings.Repeat("─", max(m.width, 20)))
	return header + "\n" + sep
}

// runDashboard opens the interactive dashboard on the configured start day.
func runDashboard(app *App) error {
	ctrl, err := app.controller("")
	if err != nil {
		return err
	}
	m, err := newAppModel(ctrl, app.Logger)
	if err != nil {
		return err
	}
	defer m.close()

	run := app.RunProgram
	if run == nil {
		run = func(model tea.Model) error {
			_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
			return err
		}
	}
	app.Logger.Info("dashboard opened", zap.String("day", ctrl.Selected()))
	return run(m)
}
