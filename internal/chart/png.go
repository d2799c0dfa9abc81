package chart

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	DefaultPNGWidth  = 512
	DefaultPNGHeight = 512
)

// PNG is an Adapter that renders doughnut images with go-chart.
type PNG struct {
	reg    registry
	width  int
	height int
}

// NewPNG creates an image adapter. Non-positive dimensions fall back to the
// defaults.
func NewPNG(width, height int) *PNG {
	if width <= 0 {
		width = DefaultPNGWidth
	}
	if height <= 0 {
		height = DefaultPNGHeight
	}
	return &PNG{reg: newRegistry(), width: width, height: height}
}

func (p *PNG) Initialize(technical, marketing int) (Handle, error) {
	return p.reg.initialize(technical, marketing)
}

func (p *PNG) Update(h Handle, technical, marketing int) error {
	return p.reg.update(h, technical, marketing)
}

// Render writes the PNG for h to w.
func (p *PNG) Render(h Handle, w io.Writer) error {
	c, err := p.reg.counts(h)
	if err != nil {
		return err
	}
	if c.Total() == 0 {
		return ErrEmptyChart
	}

	donut := gochart.DonutChart{
		Width:  p.width,
		Height: p.height,
		Values: donutValues(c),
	}
	if err := donut.Render(gochart.PNG, w); err != nil {
		return fmt.Errorf("rendering donut: %w", err)
	}
	return nil
}

// WriteFile renders h into a PNG file at path. Nothing is written when
// rendering fails.
func (p *PNG) WriteFile(h Handle, path string) error {
	var buf bytes.Buffer
	if err := p.Render(h, &buf); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing chart file: %w", err)
	}
	return nil
}

// donutValues skips empty series; go-chart cannot draw a zero-width slice.
func donutValues(c Counts) []gochart.Value {
	var values []gochart.Value
	if c.Technical > 0 {
		values = append(values, gochart.Value{
			Label: fmt.Sprintf("%s: %d", LabelTechnical, c.Technical),
			Value: float64(c.Technical),
			Style: sliceStyle(ColorTechnical),
		})
	}
	if c.Marketing > 0 {
		values = append(values, gochart.Value{
			Label: fmt.Sprintf("%s: %d", LabelMarketing, c.Marketing),
			Value: float64(c.Marketing),
			Style: sliceStyle(ColorMarketing),
		})
	}
	return values
}

func sliceStyle(hex string) gochart.Style {
	return gochart.Style{
		FillColor:   drawing.ColorFromHex(strings.TrimPrefix(hex, "#")).WithAlpha(180),
		StrokeColor: drawing.ColorFromHex(strings.TrimPrefix(hex, "#")),
		StrokeWidth: 2,
		FontColor:   drawing.ColorWhite,
	}
}
