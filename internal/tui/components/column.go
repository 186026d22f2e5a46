package components

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/embudo/internal/models"
	"github.com/thenoetrevino/embudo/internal/tui/theme"
	"github.com/thenoetrevino/embudo/internal/types"
)

// ColumnProps holds everything needed to draw one stage column.
type ColumnProps struct {
	Stage models.Stage
	Items []models.BoardItem

	Selected bool
	// Hovered marks the column under the drag cursor
	Hovered bool
	// SelectedIdx is the selected card in this column, -1 for none
	SelectedIdx int
	// Dragged is the candidate being dragged, empty when idle
	Dragged types.ItemID

	Height int
	Now    time.Time
}

// RenderColumn renders a stage column with its header and candidate cards
//
// Layout:
//
//	● {Stage Name} ({count})
//	▲ (if scrolled down)
//	{Card 1}
//	{Card 2}
//	▼ (if more cards below)
func RenderColumn(p ColumnProps) string {
	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(p.Stage.Color)).
		Render(fmt.Sprintf("● %s (%d)", truncate(p.Stage.Name, cardTextWidth-6), len(p.Items)))

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")

	indicatorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))

	if len(p.Items) == 0 {
		b.WriteString(indicatorStyle.Italic(true).Padding(1, 0).Render("No candidates"))
	} else {
		// border(2) + header(1) + indicators(2)
		const columnOverhead = 5
		maxVisible := max((p.Height-columnOverhead)/CardHeight, 1)
		offset := scrollOffset(p.SelectedIdx, maxVisible, len(p.Items))

		if offset > 0 {
			b.WriteString(indicatorStyle.Render("▲ more above"))
		}
		b.WriteString("\n")

		end := min(offset+maxVisible, len(p.Items))
		for i := offset; i < end; i++ {
			item := p.Items[i]
			b.WriteString(RenderCard(item, i == p.SelectedIdx, item.ID == p.Dragged, p.Now))
			b.WriteString("\n")
		}
		if end < len(p.Items) {
			b.WriteString(indicatorStyle.Render("▼ more below"))
		}
	}

	border := theme.StageBorder
	switch {
	case p.Hovered:
		border = theme.HoverBorder
	case p.Selected:
		border = theme.SelectedBorder
	}
	style := ColumnStyle.BorderForeground(lipgloss.Color(border))
	if p.Height > 0 {
		style = style.Height(p.Height)
	}
	return style.Render(b.String())
}

// scrollOffset keeps the selected card on screen.
func scrollOffset(selected, visible, total int) int {
	if selected < visible || total <= visible {
		return 0
	}
	return min(selected-visible+1, total-visible)
}
