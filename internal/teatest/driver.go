// Package teatest drives bubbletea models synchronously in tests.
//
// A Driver stands in for tea.Program: it calls Update directly and runs the
// returned Cmds inline, feeding their messages back until none remain. Key
// presses therefore take effect before the next assertion without any
// goroutines or sleeps.
package teatest

import (
	"regexp"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// MaxDrainDepth bounds how many chained Cmds a single Send may run.
const MaxDrainDepth = 64

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;?]*[a-zA-Z]`)

// Driver is a synchronous harness around a tea.Model.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set once a tea.QuitMsg has been produced.
	Quitting bool

	// Msgs records every message fed to the model, in order.
	Msgs []tea.Msg
}

// Option configures a Driver.
type Option func(*Driver)

// WithSize delivers a WindowSizeMsg before anything else.
func WithSize(w, h int) Option {
	return func(d *Driver) {
		d.Send(tea.WindowSizeMsg{Width: w, Height: h})
	}
}

// New wraps model. Call DrainInit to run the model's Init command.
func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DrainInit runs Init and every message it leads to.
func (d *Driver) DrainInit() {
	d.T.Helper()
	d.drain(d.Model.Init(), 0)
}

// Send feeds msg through Update and drains the resulting Cmds. Messages
// sent after the model quit are dropped.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	d.update(msg, 0)
}

// PressKey sends a single rune key.
func (d *Driver) PressKey(r rune) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

// Type sends s one rune at a time.
func (d *Driver) Type(s string) {
	d.T.Helper()
	for _, r := range s {
		d.PressKey(r)
	}
}

func (d *Driver) PressUp() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyUp})
}

func (d *Driver) PressDown() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyDown})
}

func (d *Driver) PressCtrlC() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
}

// View returns the model's rendered output.
func (d *Driver) View() string {
	return d.Model.View()
}

// PlainView returns the rendered output with styling removed.
func (d *Driver) PlainView() string {
	return StripANSI(d.Model.View())
}

// Lines returns the plain view split into lines with trailing blanks
// removed.
func (d *Driver) Lines() []string {
	return strings.Split(strings.TrimRight(d.PlainView(), "\n"), "\n")
}

// StripANSI removes terminal escape sequences from s.
func StripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func (d *Driver) update(msg tea.Msg, depth int) {
	d.T.Helper()
	d.Msgs = append(d.Msgs, msg)
	if _, ok := msg.(tea.QuitMsg); ok {
		d.Quitting = true
	}
	next, cmd := d.Model.Update(msg)
	d.Model = next
	d.drain(cmd, depth+1)
}

func (d *Driver) drain(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil {
		return
	}
	if depth >= MaxDrainDepth {
		d.T.Fatalf("teatest: more than %d chained commands", MaxDrainDepth)
	}

	switch msg := cmd().(type) {
	case nil:
	case tea.BatchMsg:
		for _, sub := range msg {
			d.drain(sub, depth+1)
		}
	case tea.QuitMsg:
		d.Quitting = true
		d.Msgs = append(d.Msgs, msg)
	default:
		d.update(msg, depth)
	}
}
