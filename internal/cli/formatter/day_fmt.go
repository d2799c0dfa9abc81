package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/launchweek/internal/chart"
	"github.com/alexanderramin/launchweek/internal/plan"
)

// DayLabel returns the short name of a day: the title up to its first
// colon ("Miércoles" for "Miércoles: Despliegue Técnico"), or the key when
// the title has no colon.
func DayLabel(d plan.DayRecord) string {
	if name, _, ok := strings.Cut(d.Title, ":"); ok && strings.TrimSpace(name) != "" {
		return strings.TrimSpace(name)
	}
	return d.Key
}

// FormatTasks renders a titled task list. An empty list renders a dim
// placeholder so the section stays visible.
func FormatTasks(title string, tasks []string) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("%s (%d)", title, len(tasks))))
	b.WriteString("\n")
	if len(tasks) == 0 {
		b.WriteString(Dim("  Sin tareas"))
		b.WriteString("\n")
		return b.String()
	}
	for _, t := range tasks {
		b.WriteString("  " + StyleFg.Render(t) + "\n")
	}
	return b.String()
}

// FormatDayDetail renders the title, objective and both task lists.
func FormatDayDetail(d plan.DayRecord) string {
	var b strings.Builder
	b.WriteString(Bold(d.Title))
	b.WriteString("\n")
	if d.Objective != "" {
		b.WriteString(Dim(d.Objective))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(FormatTasks("Tareas Técnicas", d.Technical))
	b.WriteString("\n")
	b.WriteString(FormatTasks("Tareas de Marketing", d.Marketing))
	return b.String()
}

// FormatDay renders a full day: details followed by its doughnut and legend.
func FormatDay(d plan.DayRecord, rows int) string {
	c := chart.Counts{Technical: d.TechnicalCount(), Marketing: d.MarketingCount()}

	var b strings.Builder
	b.WriteString(FormatDayDetail(d))
	b.WriteString("\n")
	b.WriteString(Header("Distribución"))
	b.WriteString("\n")
	b.WriteString(chart.RenderDoughnut(c, rows))
	b.WriteString("\n")
	b.WriteString(chart.Legend(c))
	b.WriteString("\n")
	return b.String()
}

// FormatDayList renders every day of the plan as a table in display order.
func FormatDayList(days []plan.DayRecord) string {
	cols := []Column{
		{Title: "#", Right: true},
		{Title: "KEY"},
		{Title: "DAY"},
		{Title: "TECH", Right: true},
		{Title: "MKT", Right: true},
		{Title: "SPLIT"},
	}

	rows := make([][]string, 0, len(days))
	for i, d := range days {
		rows = append(rows, []string{
			Dim(fmt.Sprintf("%d", i+1)),
			StyleAmber.Render(d.Key),
			d.Title,
			fmt.Sprintf("%d", d.TechnicalCount()),
			fmt.Sprintf("%d", d.MarketingCount()),
			RenderShareBar(d.TechnicalCount(), d.MarketingCount(), 10),
		})
	}

	return Header("Launch Week") + "\n\n" + RenderTable(cols, rows)
}
