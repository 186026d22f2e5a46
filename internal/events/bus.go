package events

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/thenoetrevino/embudo/internal/types"
)

const (
	defaultQueueSize   = 100
	listenerBufferSize = 16
)

type listener struct {
	vacancyID types.VacancyID
	ch        chan Event
}

// Bus delivers events in-process from services to listeners such as the TUI.
// Events are stamped with a sequence number and fanned out by one goroutine.
// A slow listener drops events instead of blocking the bus.
type Bus struct {
	mu        sync.RWMutex
	queue     chan Event
	closed    bool
	listeners map[*listener]struct{}
	sequence  int64

	stopped chan struct{}
}

// NewBus starts a bus with its dispatch goroutine
func NewBus() *Bus {
	b := &Bus{
		queue:     make(chan Event, defaultQueueSize),
		listeners: make(map[*listener]struct{}),
		stopped:   make(chan struct{}),
	}
	go b.dispatch()
	return b
}

// SendEvent queues an event. It never blocks: a full queue returns ErrQueueFull.
func (b *Bus) SendEvent(event Event) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return ErrBusClosed
	}
	select {
	case b.queue <- event:
		return nil
	default:
		return ErrQueueFull
	}
}

// Listen registers a listener for one vacancy, or all vacancies when vacancyID is 0
func (b *Bus) Listen(ctx context.Context, vacancyID types.VacancyID) (<-chan Event, error) {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil, ErrBusClosed
	}
	l := &listener{vacancyID: vacancyID, ch: make(chan Event, listenerBufferSize)}
	b.listeners[l] = struct{}{}
	b.mu.Unlock()

	go func() {
		select {
		case <-ctx.Done():
		case <-b.stopped:
		}
		b.remove(l)
	}()

	return l.ch, nil
}

// Close stops the bus after delivering already queued events
func (b *Bus) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	close(b.queue)
	b.mu.Unlock()

	<-b.stopped
	return nil
}

func (b *Bus) dispatch() {
	defer func() {
		b.mu.Lock()
		for l := range b.listeners {
			close(l.ch)
			delete(b.listeners, l)
		}
		b.mu.Unlock()
		close(b.stopped)
	}()

	for event := range b.queue {
		b.sequence++
		event.SequenceID = b.sequence
		if event.Timestamp.IsZero() {
			event.Timestamp = time.Now()
		}
		b.deliver(event)
	}
}

func (b *Bus) deliver(event Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for l := range b.listeners {
		if l.vacancyID != 0 && l.vacancyID != event.VacancyID {
			continue
		}
		select {
		case l.ch <- event:
		default:
			slog.Warn("dropping event for slow listener",
				"event_type", event.Type,
				"vacancy_id", event.VacancyID,
				"sequence", event.SequenceID)
		}
	}
}

func (b *Bus) remove(l *listener) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.listeners[l]; ok {
		close(l.ch)
		delete(b.listeners, l)
	}
}
