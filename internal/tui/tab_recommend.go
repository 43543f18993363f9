package tui

import (
	"fmt"
	"strings"

	"findash/internal/budget"
	"findash/internal/cli"
	"findash/internal/config"
	"findash/internal/tui/components"
	"findash/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// recState holds the Recommendations tab state. picked keeps the order in
// which categories were toggled on; that order is the allocation priority.
type recState struct {
	cursor int
	picked []string
	goal   float64
}

const goalStep = 50

func (a App) updateRecTab(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "j", "down":
		if a.rec.cursor < len(a.categories)-1 {
			a.rec.cursor++
		}
	case "k", "up":
		if a.rec.cursor > 0 {
			a.rec.cursor--
		}
	case " ", "space":
		if a.rec.cursor < len(a.categories) {
			a.rec.picked = togglePick(a.rec.picked, a.categories[a.rec.cursor])
		}
	case "+", "=":
		a.rec.goal = config.ClampGoal(a.rec.goal + goalStep)
	case "-":
		a.rec.goal = config.ClampGoal(a.rec.goal - goalStep)
	}
	return a, nil
}

// togglePick adds the category at the end of the priority order, or
// removes it if already picked.
func togglePick(picked []string, category string) []string {
	for i, p := range picked {
		if p == category {
			return append(picked[:i], picked[i+1:]...)
		}
	}
	return append(picked, category)
}

func (a App) viewRecTab() string {
	t := theme.Active
	muted := lipgloss.NewStyle().Foreground(t.TextMuted)
	primary := lipgloss.NewStyle().Foreground(t.TextPrimary)
	accent := lipgloss.NewStyle().Foreground(t.Accent)
	green := lipgloss.NewStyle().Foreground(t.Green)

	var b strings.Builder
	b.WriteString(muted.Render(fmt.Sprintf("  Monthly Savings Goal: %s  [+/-]",
		green.Render(cli.FormatAmount(a.rec.goal)))))
	b.WriteString("\n\n")

	if len(a.categories) == 0 {
		b.WriteString(muted.Render("  No categories detected (the category column has no rows)."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(primary.Render("  Set Your Financial Priorities"))
	b.WriteString(muted.Render("  [space] to select"))
	b.WriteString("\n")

	order := make(map[string]int, len(a.rec.picked))
	for i, p := range a.rec.picked {
		order[p] = i + 1
	}

	for i, cat := range a.categories {
		cursor := "  "
		if i == a.rec.cursor {
			cursor = accent.Render("> ")
		}
		mark := muted.Render("[ ]")
		if n, ok := order[cat]; ok {
			mark = green.Render(fmt.Sprintf("[%d]", n))
		}
		b.WriteString(fmt.Sprintf("  %s%s %s\n", cursor, mark, primary.Render(cat)))
	}
	b.WriteString("\n")

	if len(a.rec.picked) == 0 {
		b.WriteString(muted.Render("  Select priority categories to see recommendations."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(primary.Render("  Personalized Recommendations"))
	b.WriteString("\n")
	for _, cat := range a.rec.picked {
		b.WriteString(accent.Render("  " + cat + ":"))
		b.WriteString("\n")
		for _, line := range budget.Recommend(cat, a.rec.goal) {
			b.WriteString(muted.Render("    - " + line))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")

	alloc := budget.Allocate(a.rec.picked)
	shares := make([]float64, len(alloc.Order))
	for i, cat := range alloc.Order {
		shares[i] = alloc.Shares[cat]
	}
	b.WriteString(primary.Render("  Recommended Monthly Budget Distribution"))
	b.WriteString("\n")
	b.WriteString(components.HBarList(alloc.Order, shares, a.width-4))

	return b.String()
}
