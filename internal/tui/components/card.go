package components

import (
	"time"

	"charm.land/lipgloss/v2"
	"github.com/dustin/go-humanize"
	"github.com/thenoetrevino/embudo/internal/models"
	"github.com/thenoetrevino/embudo/internal/tui/theme"
)

// CardHeight is the fixed height of a candidate card including its border
const CardHeight = 5

const cardTextWidth = 26

// RenderCard renders a single candidate as a card
//
//	╭──────────────────────────╮
//	│ {Name}                   │
//	│ {Role}                   │
//	│ applied 3 days ago       │
//	╰──────────────────────────╯
func RenderCard(item models.BoardItem, selected, dragged bool, now time.Time) string {
	border := theme.CardBorder
	if selected {
		border = theme.SelectedBorder
	}

	name := truncate(item.DisplayName, cardTextWidth)
	if dragged {
		name = truncate("⇄ "+item.DisplayName, cardTextWidth)
	}

	meta := "applied " + humanize.RelTime(item.AppliedAt, now, "ago", "from now")
	if item.AppliedAt.IsZero() {
		meta = "applied date unknown"
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Render(name),
		lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Normal)).Render(truncate(item.RoleLabel, cardTextWidth)),
		lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle)).Italic(true).Render(truncate(meta, cardTextWidth)),
	)

	style := CardStyle.BorderForeground(lipgloss.Color(border))
	if dragged {
		style = style.BorderStyle(lipgloss.DoubleBorder())
	}
	return style.Render(content)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
