package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/embudo/internal/config"
	"github.com/thenoetrevino/embudo/internal/events"
)

// RefreshMsg is sent when another process or command changed the board
type RefreshMsg struct {
	Event events.Event
}

// ConfigChangedMsg carries a reloaded config file
type ConfigChangedMsg struct {
	Config *config.Config
}

// waitForEvent returns a command that blocks until the next board event.
// Returns nil if the model has no event channel.
func (m Model) waitForEvent() tea.Cmd {
	if m.eventChan == nil {
		return nil
	}
	ch, ctx := m.eventChan, m.ctx
	return func() tea.Msg {
		select {
		case event, ok := <-ch:
			if !ok {
				return nil
			}
			return RefreshMsg{Event: event}
		case <-ctx.Done():
			return nil
		}
	}
}

// waitForConfig returns a command that blocks until the config file changes.
func (m Model) waitForConfig() tea.Cmd {
	if m.configChan == nil {
		return nil
	}
	ch, ctx := m.configChan, m.ctx
	return func() tea.Msg {
		select {
		case cfg, ok := <-ch:
			if !ok {
				return nil
			}
			return ConfigChangedMsg{Config: cfg}
		case <-ctx.Done():
			return nil
		}
	}
}
