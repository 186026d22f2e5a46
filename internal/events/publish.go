package events

import (
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// retryDelay is the wait before the second attempt; it doubles after each failure
const retryDelay = 50 * time.Millisecond

// PublishWithRetry sends event, trying up to attempts times while the bus
// rejects it. A nil client publishes nothing and a closed bus is not retried.
//
// Delivery is best effort: callers log the error and carry on, since the
// change itself is already stored.
func PublishWithRetry(client EventPublisher, event Event, attempts int) error {
	if client == nil {
		return nil
	}
	attempts = max(attempts, 1)

	delay := retryDelay
	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err = client.SendEvent(event); err == nil {
			return nil
		}
		if errors.Is(err, ErrBusClosed) || attempt == attempts {
			break
		}
		slog.Debug("board event not delivered, retrying",
			"event_type", event.Type,
			"vacancy_id", event.VacancyID,
			"attempt", attempt,
			"retry_delay", delay,
			"error", err)
		time.Sleep(delay)
		delay *= 2
	}
	return fmt.Errorf("publish %s for vacancy %d: %w", event.Type, event.VacancyID, err)
}
