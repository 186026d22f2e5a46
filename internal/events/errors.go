package events

import "errors"

var (
	ErrBusClosed = errors.New("event bus is closed")
	ErrQueueFull = errors.New("event queue full")
)
