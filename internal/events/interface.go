package events

import (
	"context"

	"github.com/thenoetrevino/embudo/internal/types"
)

// EventPublisher defines the interface for sending and receiving events.
// Services depend on this instead of the concrete Bus.
type EventPublisher interface {
	// SendEvent queues an event for delivery to listeners
	SendEvent(event Event) error

	// Listen returns a channel of events for one vacancy (0 = all vacancies).
	// The channel is closed when ctx is done or the publisher is closed.
	Listen(ctx context.Context, vacancyID types.VacancyID) (<-chan Event, error)

	// Close stops delivery and closes all listener channels
	Close() error
}

// Compile-time verification that *Bus implements EventPublisher
var _ EventPublisher = (*Bus)(nil)
