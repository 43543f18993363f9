package tui

import (
	"fmt"
	"strings"

	"findash/internal/dataset"
	"findash/internal/tui/theme"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// dataState holds the scrollable preview table for the Data tab.
type dataState struct {
	table table.Model
}

const maxPreviewColWidth = 24

func newDataState(ds *dataset.Dataset, width, height int) dataState {
	t := theme.Active

	cols := make([]table.Column, len(ds.Columns))
	for i, c := range ds.Columns {
		w := len(c.Name)
		for _, v := range c.Values {
			if len(v) > w {
				w = len(v)
			}
		}
		if w > maxPreviewColWidth {
			w = maxPreviewColWidth
		}
		cols[i] = table.Column{Title: c.Name, Width: w}
	}

	rows := make([]table.Row, ds.RowCount())
	for i := range rows {
		rows[i] = table.Row(ds.Row(i))
	}

	h := height - 8
	if h < 5 {
		h = 5
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Foreground(t.Accent).
		Bold(true).
		BorderForeground(t.Border)
	styles.Selected = styles.Selected.
		Foreground(t.TextPrimary).
		Background(t.Surface)

	tm := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithHeight(h),
		table.WithFocused(true),
	)
	tm.SetStyles(styles)

	return dataState{table: tm}
}

func (s *dataState) resize(width, height int) {
	h := height - 8
	if h < 5 {
		h = 5
	}
	s.table.SetHeight(h)
}

func (a App) updateDataTab(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	a.data.table, cmd = a.data.table.Update(msg)
	return a, cmd
}

func (a App) viewDataTab() string {
	t := theme.Active
	muted := lipgloss.NewStyle().Foreground(t.TextMuted)

	var b strings.Builder
	b.WriteString(muted.Render(fmt.Sprintf("  %d rows · %d columns (%d numeric, %d text)",
		a.ds.RowCount(), len(a.ds.Columns), len(a.numeric), len(a.ds.TextColumns()))))
	b.WriteString("\n\n")
	b.WriteString(a.data.table.View())
	return b.String()
}
