package components

import (
	"fmt"
	"strings"

	"findash/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Sparkline renders a unicode sparkline from values.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	peak := values[0]
	for _, v := range values[1:] {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		peak = 1
	}

	style := lipgloss.NewStyle().Foreground(color)

	var buf strings.Builder
	buf.Grow(len(values) * 3)
	for _, v := range values {
		idx := int(v / peak * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		buf.WriteRune(blocks[idx])
	}

	return style.Render(buf.String())
}

// BarChart renders a vertical unicode bar chart with a y-axis.
func BarChart(values []float64, labels []string, width, height int) string {
	if len(values) == 0 {
		return ""
	}
	if width < 15 || height < 3 {
		return Sparkline(values, theme.Active.Accent)
	}

	t := theme.Active

	maxVal := 0.0
	for _, v := range values {
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	yLabelW := len(axisLabel(maxVal)) + 1
	chartW := width - yLabelW - 1
	n := len(values)

	barW := 2
	gap := 1
	if n*3-1 > chartW {
		// Too many bars: downsample evenly.
		maxN := (chartW + 1) / 3
		if maxN < 2 {
			maxN = 2
		}
		sampled := make([]float64, maxN)
		sampledLabels := make([]string, maxN)
		for i := range sampled {
			src := i * (n - 1) / (maxN - 1)
			sampled[i] = values[src]
			if len(labels) == n {
				sampledLabels[i] = labels[src]
			}
		}
		values, labels, n = sampled, sampledLabels, maxN
	}

	barStyle := lipgloss.NewStyle().Foreground(t.Accent)
	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	blocks := []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	var b strings.Builder
	for row := height; row >= 1; row-- {
		rowTop := maxVal * float64(row) / float64(height)
		rowBottom := maxVal * float64(row-1) / float64(height)

		label := ""
		if row == height {
			label = axisLabel(maxVal)
		}
		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, label)))
		b.WriteString(axisStyle.Render("│"))

		for i, v := range values {
			if i > 0 {
				b.WriteString(strings.Repeat(" ", gap))
			}
			switch {
			case v >= rowTop:
				b.WriteString(barStyle.Render(strings.Repeat("█", barW)))
			case v > rowBottom:
				frac := (v - rowBottom) / (rowTop - rowBottom)
				idx := int(frac * 8)
				if idx < 1 {
					idx = 1
				}
				if idx > 8 {
					idx = 8
				}
				b.WriteString(barStyle.Render(strings.Repeat(string(blocks[idx]), barW)))
			default:
				b.WriteString(strings.Repeat(" ", barW))
			}
		}
		b.WriteString("\n")
	}

	// X-axis
	axisLen := n*barW + (n-1)*gap
	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, "0")))
	b.WriteString(axisStyle.Render("└"))
	b.WriteString(axisStyle.Render(strings.Repeat("─", axisLen)))

	if len(labels) == n {
		b.WriteString("\n")
		b.WriteString(strings.Repeat(" ", yLabelW+1))
		b.WriteString(axisStyle.Render(xAxisLabels(labels, barW, gap, axisLen)))
	}

	return b.String()
}

// HBarList renders labeled horizontal bars, one line per entry. Shares are
// fractions of 1; labels keep their given order.
func HBarList(labels []string, shares []float64, width int) string {
	if len(labels) == 0 {
		return ""
	}
	t := theme.Active

	labelW := 0
	for _, l := range labels {
		if len(l) > labelW {
			labelW = len(l)
		}
	}
	if labelW > 24 {
		labelW = 24
	}
	barW := width - labelW - 10
	if barW < 5 {
		barW = 5
	}

	barStyle := lipgloss.NewStyle().Foreground(t.Accent)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	pctStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var b strings.Builder
	for i, label := range labels {
		share := shares[i]
		filled := int(share * float64(barW))
		if filled < 1 {
			filled = 1
		}
		if len(label) > labelW {
			label = label[:labelW-1] + "…"
		}
		b.WriteString(labelStyle.Render(fmt.Sprintf(" %-*s ", labelW, label)))
		b.WriteString(barStyle.Render(strings.Repeat("█", filled)))
		b.WriteString(pctStyle.Render(fmt.Sprintf(" %.1f%%", share*100)))
		b.WriteString("\n")
	}
	return b.String()
}

func axisLabel(v float64) string {
	switch {
	case v >= 1e6:
		return fmt.Sprintf("%.1fM", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("%.1fk", v/1e3)
	case v >= 1:
		return fmt.Sprintf("%.0f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}

// xAxisLabels lays the bar labels under the axis, skipping ones that
// would collide.
func xAxisLabels(labels []string, barW, gap, axisLen int) string {
	buf := make([]byte, axisLen)
	for i := range buf {
		buf[i] = ' '
	}
	lastEnd := -1
	for i, lbl := range labels {
		pos := i * (barW + gap)
		end := pos + len(lbl)
		if pos <= lastEnd || end > axisLen {
			continue
		}
		copy(buf[pos:end], lbl)
		lastEnd = end + 1
	}
	return strings.TrimRight(string(buf), " ")
}
