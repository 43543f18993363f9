package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"findash/internal/budget"
	"findash/internal/dataset"
)

// Theme colors (Flexoki Dark)
var (
	ColorBorder    = lipgloss.Color("#282726")
	ColorTextDim   = lipgloss.Color("#575653")
	ColorTextMuted = lipgloss.Color("#6F6E69")
	ColorText      = lipgloss.Color("#FFFCF0")
	ColorAccent    = lipgloss.Color("#3AA99F")
	ColorGreen     = lipgloss.Color("#879A39")
	ColorRed       = lipgloss.Color("#D14D41")
	ColorYellow    = lipgloss.Color("#D0A215")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	mutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	dimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)

	errStyle = lipgloss.NewStyle().
			Foreground(ColorRed)
)

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(55).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// RenderError renders a user-visible error message.
func RenderError(err error) string {
	return errStyle.Render("  ✗ " + err.Error())
}

// RenderTable renders a bordered table with headers and rows.
func RenderTable(t Table) string {
	numCols := len(t.Headers)
	if numCols == 0 {
		return ""
	}

	widths := make([]int, numCols)
	for i, h := range t.Headers {
		widths[i] = len(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < numCols && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder

	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}

	writeBorder := func(left, mid, right string) {
		b.WriteString(dimStyle.Render(left))
		for i, w := range widths {
			b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render(mid))
			}
		}
		b.WriteString(dimStyle.Render(right))
		b.WriteString("\n")
	}

	writeBorder("╭", "┬", "╮")

	b.WriteString(dimStyle.Render("│"))
	for i, h := range t.Headers {
		b.WriteString(headerStyle.Render(fmt.Sprintf(" %-*s ", widths[i], h)))
		if i < numCols-1 {
			b.WriteString(dimStyle.Render("│"))
		}
	}
	b.WriteString(dimStyle.Render("│"))
	b.WriteString("\n")
	writeBorder("├", "┼", "┤")

	for _, row := range t.Rows {
		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			b.WriteString(valueStyle.Render(fmt.Sprintf(" %-*s ", widths[i], cell)))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
	}

	writeBorder("╰", "┴", "╯")
	return b.String()
}

// previewRowCap bounds how many rows a preview table prints.
const previewRowCap = 20

// DatasetTable builds a preview Table from a dataset, capped at
// previewRowCap rows with a trailing count line when truncated.
func DatasetTable(ds *dataset.Dataset, title string) Table {
	t := Table{Title: title, Headers: ds.ColumnNames()}

	n := ds.RowCount()
	shown := n
	if shown > previewRowCap {
		shown = previewRowCap
	}
	for i := 0; i < shown; i++ {
		t.Rows = append(t.Rows, ds.Row(i))
	}
	if n > shown {
		more := make([]string, len(t.Headers))
		more[0] = fmt.Sprintf("… %s more rows", FormatNumber(int64(n-shown)))
		t.Rows = append(t.Rows, more)
	}
	return t
}

// RenderAllocation renders an allocation as labeled horizontal bars,
// one per category in priority order.
func RenderAllocation(alloc budget.Allocation, width int) string {
	if len(alloc.Order) == 0 {
		return mutedStyle.Render("  No categories selected.")
	}
	if width < 20 {
		width = 20
	}

	labelW := 0
	for _, cat := range alloc.Order {
		if len(cat) > labelW {
			labelW = len(cat)
		}
	}
	if labelW > 24 {
		labelW = 24
	}
	barW := width - labelW - 10

	var b strings.Builder
	barStyle := lipgloss.NewStyle().Foreground(ColorAccent)
	for _, cat := range alloc.Order {
		share := alloc.Shares[cat]
		filled := int(share * float64(barW))
		if filled < 1 {
			filled = 1
		}
		b.WriteString("  ")
		b.WriteString(valueStyle.Render(fmt.Sprintf("%-*s ", labelW, Truncate(cat, labelW))))
		b.WriteString(barStyle.Render(strings.Repeat("█", filled)))
		b.WriteString(mutedStyle.Render(" " + FormatPercent(share)))
		b.WriteString("\n")
	}
	return b.String()
}
