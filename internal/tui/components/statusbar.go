package components

import (
	"findash/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar. errMsg, when set, replaces
// the file name with a red error notice; the session stays interactive.
func RenderStatusBar(width int, fileName, errMsg string) string {
	t := theme.Active

	style := lipgloss.NewStyle().Foreground(t.TextMuted).Width(width)
	errStyle := lipgloss.NewStyle().Foreground(t.Red)

	left := " [o]pen  [?]help  [q]uit"
	right := ""
	switch {
	case errMsg != "":
		right = errStyle.Render("✗ "+errMsg) + " "
	case fileName != "":
		right = "File: " + fileName + " "
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	bar := left
	for i := 0; i < padding; i++ {
		bar += " "
	}
	bar += right

	return style.Render(bar)
}
