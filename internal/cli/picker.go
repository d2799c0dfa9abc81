package cli

import (
	"fmt"

	"github.com/alexanderramin/launchweek/internal/cli/formatter"
	"github.com/alexanderramin/launchweek/internal/plan"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// launchweekHuhTheme returns a huh theme using the launchweek palette.
func launchweekHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorMarketing)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorAmber)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// dayOptions builds one select option per day, labelled with the day's title
// and task counts.
func dayOptions(store *plan.Store) []huh.Option[string] {
	days := store.Days()
	opts := make([]huh.Option[string], 0, len(days))
	for _, d := range days {
		label := fmt.Sprintf("%s  (%d técnicas · %d marketing)", d.Title, d.TechnicalCount(), d.MarketingCount())
		opts = append(opts, huh.NewOption(label, d.Key))
	}
	return opts
}

// daySelectForm returns a single-field form that writes the chosen key into value.
func daySelectForm(store *plan.Store, value *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Día del lanzamiento").
				Description("Elige un día para ver sus tareas").
				Options(dayOptions(store)...).
				Value(value),
		),
	).WithTheme(launchweekHuhTheme()).WithShowHelp(false)
}

func (a *App) pickDay(initial string) (string, error) {
	if a.PickDay != nil {
		return a.PickDay(a.Store, initial)
	}
	day := initial
	if err := daySelectForm(a.Store, &day).Run(); err != nil {
		return "", fmt.Errorf("picking day: %w", err)
	}
	return day, nil
}
