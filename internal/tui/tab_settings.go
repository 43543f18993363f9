package tui

import (
	"fmt"
	"strings"

	"findash/internal/config"
	"findash/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// settingsState tracks the Settings tab cursor and unsaved edits.
type settingsState struct {
	cursor int
	cfg    config.Config
	status string
}

const settingsFieldCount = 4

var chartTypeOptions = []string{"bar", "line", "pie", "scatter3d", "area"}

func newSettingsState(cfg config.Config) settingsState {
	return settingsState{cfg: cfg}
}

func (a App) updateSettingsTab(key string) (tea.Model, tea.Cmd) {
	s := &a.settings
	s.status = ""

	switch key {
	case "j", "down":
		if s.cursor < settingsFieldCount-1 {
			s.cursor++
		}
	case "k", "up":
		if s.cursor > 0 {
			s.cursor--
		}
	case "enter", " ":
		switch s.cursor {
		case 0:
			s.cfg.General.DefaultChartType = cycleOption(chartTypeOptions, s.cfg.General.DefaultChartType)
		case 1:
			names := make([]string, len(theme.All))
			for i, th := range theme.All {
				names[i] = th.Name
			}
			s.cfg.Appearance.Theme = cycleOption(names, s.cfg.Appearance.Theme)
			theme.SetActive(s.cfg.Appearance.Theme)
		case 2:
			s.cfg.General.UseCache = !s.cfg.General.UseCache
		}
	case "+", "=":
		if s.cursor == 3 {
			s.cfg.Budget.SavingsGoal = config.ClampGoal(s.cfg.Budget.SavingsGoal + goalStep)
		}
	case "-":
		if s.cursor == 3 {
			s.cfg.Budget.SavingsGoal = config.ClampGoal(s.cfg.Budget.SavingsGoal - goalStep)
		}
	case "w":
		if err := config.Save(s.cfg); err != nil {
			s.status = "save failed: " + err.Error()
		} else {
			s.status = "saved to " + config.ConfigPath()
			a.cfg = s.cfg
		}
	}
	return a, nil
}

func cycleOption(options []string, current string) string {
	for i, o := range options {
		if o == current {
			return options[(i+1)%len(options)]
		}
	}
	return options[0]
}

func (a App) viewSettingsTab() string {
	t := theme.Active
	muted := lipgloss.NewStyle().Foreground(t.TextMuted)
	primary := lipgloss.NewStyle().Foreground(t.TextPrimary)
	accent := lipgloss.NewStyle().Foreground(t.Accent)
	green := lipgloss.NewStyle().Foreground(t.Green)

	s := a.settings
	fields := []struct{ label, value string }{
		{"Default chart type", s.cfg.General.DefaultChartType},
		{"Theme", s.cfg.Appearance.Theme},
		{"Use dataset cache", fmt.Sprintf("%v", s.cfg.General.UseCache)},
		{"Savings goal", fmt.Sprintf("$%.0f", s.cfg.Budget.SavingsGoal)},
	}

	var b strings.Builder
	b.WriteString(muted.Render("  [enter] change · [+/-] adjust goal · [w] write config"))
	b.WriteString("\n\n")

	for i, f := range fields {
		cursor := "  "
		if i == s.cursor {
			cursor = accent.Render("> ")
		}
		b.WriteString(fmt.Sprintf("  %s%s %s\n",
			cursor,
			primary.Render(fmt.Sprintf("%-20s", f.label)),
			accent.Render(f.value)))
	}

	if s.status != "" {
		b.WriteString("\n")
		b.WriteString(green.Render("  " + s.status))
		b.WriteString("\n")
	}
	return b.String()
}
