// Package components provides the board widgets: stage columns, candidate
// cards, the status bar and modal dialogs.
package components

import "charm.land/lipgloss/v2"

var (
	// ColumnStyle defines the appearance of a stage column
	ColumnStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Width(ColumnWidth)

	// CardStyle defines the appearance of a candidate card
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Width(cardTextWidth + 4)

	// ModalStyle frames popups such as the move menu and the stage editor
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2)
)

// ColumnWidth is the outer width of a stage column without its margin
const ColumnWidth = 34
