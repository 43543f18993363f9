package tui

import (
	"fmt"
	"strings"

	"findash/internal/chart"
	"findash/internal/tui/components"
	"findash/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// chartsState holds the Charts tab selections.
type chartsState struct {
	chartType chart.Type
	xIdx      int
	yIdx      int
	zIdx      int
	spec      *chart.Spec
	buildErr  string
}

var chartTypeCycle = []chart.Type{chart.Bar, chart.Line, chart.Pie, chart.Scatter3D, chart.Area}

func (s *chartsState) reset(numeric []string) {
	s.xIdx = 0
	s.yIdx = len(numeric) - 1
	if s.yIdx < 0 {
		s.yIdx = 0
	}
	s.zIdx = len(numeric) / 2
	s.spec = nil
	s.buildErr = ""
}

func (a *App) rebuildChart() {
	if len(a.numeric) == 0 {
		a.charts.spec = nil
		a.charts.buildErr = chart.ErrNoNumericColumns.Error()
		return
	}

	req := chart.Request{
		Type: a.charts.chartType,
		X:    a.numeric[a.charts.xIdx],
		Y:    a.numeric[a.charts.yIdx],
	}
	if req.Type == chart.Scatter3D {
		req.Z = a.numeric[a.charts.zIdx]
	}
	if req.Type == chart.Pie {
		req.Names = a.ds.Columns[0].Name
	}

	spec, err := chart.Build(a.ds, req)
	if err != nil {
		a.charts.spec = nil
		a.charts.buildErr = err.Error()
		return
	}
	a.charts.spec = spec
	a.charts.buildErr = ""
}

func (a App) updateChartsTab(key string) (tea.Model, tea.Cmd) {
	n := len(a.numeric)

	switch key {
	case "t":
		for i, ct := range chartTypeCycle {
			if ct == a.charts.chartType {
				a.charts.chartType = chartTypeCycle[(i+1)%len(chartTypeCycle)]
				break
			}
		}
	case "x":
		if n > 0 {
			a.charts.xIdx = (a.charts.xIdx + 1) % n
		}
	case "y":
		if n > 0 {
			a.charts.yIdx = (a.charts.yIdx + 1) % n
		}
	case "z":
		if n > 0 {
			a.charts.zIdx = (a.charts.zIdx + 1) % n
		}
	default:
		return a, nil
	}

	a.rebuildChart()
	return a, nil
}

func (a App) viewChartsTab() string {
	t := theme.Active
	muted := lipgloss.NewStyle().Foreground(t.TextMuted)
	accent := lipgloss.NewStyle().Foreground(t.Accent)
	errStyle := lipgloss.NewStyle().Foreground(t.Red)

	var b strings.Builder

	sel := fmt.Sprintf("  [t]ype: %s", accent.Render(a.charts.chartType.String()))
	if len(a.numeric) > 0 {
		sel += fmt.Sprintf("   [x]: %s   [y]: %s",
			accent.Render(a.numeric[a.charts.xIdx]),
			accent.Render(a.numeric[a.charts.yIdx]))
		if a.charts.chartType == chart.Scatter3D {
			sel += fmt.Sprintf("   [z]: %s", accent.Render(a.numeric[a.charts.zIdx]))
		}
	}
	b.WriteString(muted.Render(sel))
	b.WriteString("\n\n")

	if a.charts.buildErr != "" {
		b.WriteString(errStyle.Render("  ✗ " + a.charts.buildErr))
		b.WriteString("\n")
		return b.String()
	}

	spec := a.charts.spec
	if spec == nil {
		return b.String()
	}

	title := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	b.WriteString("  ")
	b.WriteString(title.Render(spec.Title))
	b.WriteString(muted.Render("  (" + spec.Palette + " palette)"))
	b.WriteString("\n\n")

	w := a.width - 4
	if w > 100 {
		w = 100
	}

	switch spec.Type {
	case chart.Pie:
		s := spec.Series[0]
		total := 0.0
		for _, v := range s.Values {
			total += v
		}
		if total == 0 {
			total = 1
		}
		shares := make([]float64, len(s.Values))
		for i, v := range s.Values {
			shares[i] = v / total
		}
		b.WriteString(components.HBarList(s.Labels, shares, w))

	case chart.Scatter3D:
		// No 3D terminal backend: one sparkline per axis.
		for _, s := range spec.Series {
			b.WriteString(muted.Render(fmt.Sprintf("  %-12s ", s.Name)))
			b.WriteString(components.Sparkline(s.Values, t.Accent))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(muted.Render("  Colored by " + spec.ColorBy + " · export a PNG with `findash chart`"))
		b.WriteString("\n")

	default: // Bar, Line, Area
		x, y := spec.Series[0], spec.Series[1]
		labels := make([]string, len(x.Values))
		for i, v := range x.Values {
			labels[i] = fmt.Sprintf("%g", v)
		}
		h := a.height - 14
		if h < 4 {
			h = 4
		}
		if h > 20 {
			h = 20
		}
		b.WriteString(components.BarChart(y.Values, labels, w, h))
		b.WriteString("\n")
	}

	return b.String()
}
