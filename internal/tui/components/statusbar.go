package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/embudo/internal/tui/theme"
)

// StatusBarProps holds the data shown in the bottom bar.
type StatusBarProps struct {
	Width   int
	Mode    string
	Orphans int
	Hint    string
	// Alert colors the mode badge as an error
	Alert bool
}

// RenderStatusBar renders the mode badge and orphan count on the left and
// key hints on the right.
func RenderStatusBar(props StatusBarProps) string {
	badgeColor := theme.Accent
	if props.Alert {
		badgeColor = theme.ErrorFg
	}
	badge := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(badgeColor)).
		Render(props.Mode)

	left := badge
	if props.Orphans > 0 {
		left += lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.WarningFg)).
			Render(fmt.Sprintf("  %d orphaned", props.Orphans))
	}

	style := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))
	right := style.Render(props.Hint)

	gapWidth := max(props.Width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", gapWidth), right)
}
