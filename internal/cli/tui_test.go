package cli

import (
	"strings"
	"testing"

	"github.com/alexanderramin/launchweek/internal/plan"
	"github.com/alexanderramin/launchweek/internal/testutil"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTUI_StartsOnFirstDay(t *testing.T) {
	d := NewTestDriver(t, plan.Default(), "")

	assert.Equal(t, "lunes", d.Selected())
	tech, mkt := d.ChartCounts()
	assert.Equal(t, 5, tech)
	assert.Equal(t, 3, mkt)

	view := d.PlainView()
	assert.Contains(t, view, "launchweek › Lunes  [1/7]")
	assert.Contains(t, view, "Lunes: Preparación y Pruebas Finales")
	assert.Contains(t, view, "Técnicas: 5 tareas")
	assert.Contains(t, view, "Marketing: 3 tareas")
}

func TestTUI_StartDay(t *testing.T) {
	d := NewTestDriver(t, plan.Default(), "jueves")

	assert.Equal(t, "jueves", d.Selected())
	assert.Contains(t, d.PlainView(), "[4/7]")
}

func TestTUI_LeftPaneListsEveryDay(t *testing.T) {
	d := NewTestDriver(t, plan.Default(), "")

	view := d.PlainView()
	assert.Contains(t, view, "DÍAS")
	for _, label := range []string{"Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado", "Domingo"} {
		assert.Contains(t, view, label)
	}
	assert.Contains(t, view, "▸ 1 Lunes")
}

func TestTUI_DownSelectsNextDay(t *testing.T) {
	d := NewTestDriver(t, plan.Default(), "")

	d.PressDown()
	assert.Equal(t, "martes", d.Selected())

	d.PressKey('j')
	assert.Equal(t, "miercoles", d.Selected())

	tech, mkt := d.ChartCounts()
	assert.Equal(t, 3, tech)
	assert.Equal(t, 1, mkt)

	view := d.PlainView()
	assert.Contains(t, view, "Miércoles: Despliegue Técnico")
	assert.Contains(t, view, "Técnicas: 3 tareas")
	assert.Contains(t, view, "Marketing: 1 tareas")
	assert.Contains(t, view, "▸ 3 Miércoles")
}

func TestTUI_UpWrapsToLastDay(t *testing.T) {
	d := NewTestDriver(t, plan.Default(), "")

	d.PressUp()
	assert.Equal(t, "domingo", d.Selected())

	d.PressKey('k')
	assert.Equal(t, "sabado", d.Selected())
}

func TestTUI_DownWrapsToFirstDay(t *testing.T) {
	d := NewTestDriver(t, plan.Default(), "domingo")

	d.PressDown()
	assert.Equal(t, "lunes", d.Selected())
}

func TestTUI_NumberJumpsToDay(t *testing.T) {
	d := NewTestDriver(t, plan.Default(), "")

	d.PressKey('5')
	assert.Equal(t, "viernes", d.Selected())
	assert.Contains(t, d.PlainView(), "Viernes: ¡DÍA DEL LANZAMIENTO!")

	tech, mkt := d.ChartCounts()
	assert.Equal(t, 2, tech)
	assert.Equal(t, 4, mkt)
}

func TestTUI_NumberBeyondPlanIgnored(t *testing.T) {
	store := testutil.NewTestStore(t,
		testutil.NewTestDay("lunes"),
		testutil.NewTestDay("martes", testutil.WithTasks(2, 0)),
	)
	d := NewTestDriver(t, store, "")

	d.PressKey('2')
	assert.Equal(t, "martes", d.Selected())

	d.PressKey('6')
	assert.Equal(t, "martes", d.Selected())
	assert.NotContains(t, d.PlainView(), "✖")
}

func TestTUI_SameDayRedraws(t *testing.T) {
	d := NewTestDriver(t, plan.Default(), "")

	d.PressKey('1')
	assert.Equal(t, "lunes", d.Selected())
	tech, mkt := d.ChartCounts()
	assert.Equal(t, 5, tech)
	assert.Equal(t, 3, mkt)
}

func TestTUI_EmptyDay(t *testing.T) {
	store := testutil.NewTestStore(t,
		testutil.NewTestDay("lunes", testutil.WithTasks(0, 0)),
	)
	d := NewTestDriver(t, store, "")

	view := d.PlainView()
	assert.Contains(t, view, "Sin tareas")
	assert.Contains(t, view, "Técnicas: 0 tareas")
	assert.Contains(t, view, "░")
}

func TestTUI_HelpToggle(t *testing.T) {
	d := NewTestDriver(t, plan.Default(), "")

	assert.False(t, d.HelpExpanded())
	assert.NotContains(t, d.PlainView(), "jump to day")

	d.PressKey('?')
	assert.True(t, d.HelpExpanded())
	assert.Contains(t, d.PlainView(), "jump to day")

	d.PressKey('?')
	assert.False(t, d.HelpExpanded())
}

func TestTUI_QuitWithQ(t *testing.T) {
	d := NewTestDriver(t, plan.Default(), "")

	d.PressKey('q')

	assert.True(t, d.Quitting)
	assert.Empty(t, d.View())
}

func TestTUI_QuitWithCtrlC(t *testing.T) {
	d := NewTestDriver(t, plan.Default(), "")

	d.PressCtrlC()

	assert.True(t, d.Quitting)
}

func TestTUI_KeysAfterQuitIgnored(t *testing.T) {
	d := NewTestDriver(t, plan.Default(), "")

	d.PressKey('q')
	d.PressDown()

	assert.Equal(t, "lunes", d.Selected())
}

func TestTUI_NarrowTerminalStacksPanes(t *testing.T) {
	d := NewTestDriver(t, plan.Default(), "")
	d.Send(tea.WindowSizeMsg{Width: 60, Height: 50})

	lines := d.Lines()
	var listLine, titleLine int
	for i, l := range lines {
		if strings.Contains(l, "▸ 1 Lunes") {
			listLine = i
		}
		if strings.Contains(l, "Lunes: Preparación") {
			titleLine = i
		}
	}
	require.NotZero(t, titleLine)
	assert.Greater(t, titleLine, listLine)
}

func TestTUI_PadsToHeight(t *testing.T) {
	d := NewTestDriver(t, plan.Default(), "")
	d.Send(tea.WindowSizeMsg{Width: 120, Height: 80})

	assert.Equal(t, 80, strings.Count(d.View(), "\n")+1)
}
