package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/embudo/internal/board"
	"github.com/thenoetrevino/embudo/internal/models"
	"github.com/thenoetrevino/embudo/internal/tui/theme"
)

func titleLine(s string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Accent)).Render(s)
}

func hintLine(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle)).Render(s)
}

func swatch(color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("●")
}

// RenderMoveMenu renders the Move menu for one candidate. The current stage
// is shown but dimmed.
func RenderMoveMenu(candidate string, entries []board.MenuEntry, cursor int) string {
	lines := []string{titleLine("Move " + candidate + " to"), ""}
	for i, e := range entries {
		prefix := "  "
		if i == cursor {
			prefix = "> "
		}
		label := swatch(e.Stage.Color) + " " + e.Stage.Name
		if e.Current {
			label = lipgloss.NewStyle().
				Foreground(lipgloss.Color(theme.Subtle)).
				Render("● " + e.Stage.Name + " (current)")
		} else if i == cursor {
			label = lipgloss.NewStyle().Bold(true).Render(label)
		}
		lines = append(lines, prefix+label)
	}
	lines = append(lines, "", hintLine("j/k select • enter move • esc close"))
	return ModalStyle.BorderForeground(lipgloss.Color(theme.Accent)).Render(strings.Join(lines, "\n"))
}

// StageEditorProps holds the working copy shown in the stage editor.
type StageEditorProps struct {
	Stages []models.Stage
	Cursor int
	// Input is the rendered rename field, empty when not renaming
	Input string
	Error string
}

// RenderStageEditor renders the stage editor dialog.
func RenderStageEditor(p StageEditorProps) string {
	lines := []string{titleLine("Edit stages"), ""}
	for i, s := range p.Stages {
		prefix := "  "
		name := s.Name
		if i == p.Cursor {
			prefix = "> "
			name = lipgloss.NewStyle().Bold(true).Render(name)
			if p.Input != "" {
				name = p.Input
			}
		}
		lines = append(lines, prefix+swatch(s.Color)+" "+name)
	}
	if p.Error != "" {
		lines = append(lines, "", lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ErrorFg)).Render(p.Error))
	}
	hint := "a add • r rename • c color • d delete • K/J move • ctrl+s save • esc cancel"
	if p.Input != "" {
		hint = "enter apply • esc back"
	}
	lines = append(lines, "", hintLine(hint))
	return ModalStyle.BorderForeground(lipgloss.Color(theme.Accent)).Render(strings.Join(lines, "\n"))
}

// RenderHelp renders the key reference.
func RenderHelp(sections [][2]string) string {
	lines := []string{titleLine("Keys"), ""}
	keyStyle := lipgloss.NewStyle().Bold(true).Width(10)
	for _, s := range sections {
		lines = append(lines, keyStyle.Render(s[0])+s[1])
	}
	lines = append(lines, "", hintLine("press any key to close"))
	return ModalStyle.BorderForeground(lipgloss.Color(theme.Accent)).Render(strings.Join(lines, "\n"))
}
