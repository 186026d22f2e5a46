package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/embudo/internal/tui/state"
	"github.com/thenoetrevino/embudo/internal/tui/theme"
)

// RenderNotification renders a single notification line with its level color.
func RenderNotification(n state.Notification) string {
	color := theme.InfoFg
	icon := "ℹ"
	switch n.Level {
	case state.LevelWarning:
		color, icon = theme.WarningFg, "⚠"
	case state.LevelError:
		color, icon = theme.ErrorFg, "✗"
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(icon + " " + n.Message)
}
