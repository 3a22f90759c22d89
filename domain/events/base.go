package events

import (
	"time"
)

// DomainEvent is implemented by every event raised inside the domain.
// Events are buffered on the aggregate and published after a successful
// store write, which is what feeds the realtime rebroadcast.
type DomainEvent interface {
	EventType() string
	AggregateID() string
	OccurredAt() time.Time
}

// BaseEvent provides the common event fields
type BaseEvent struct {
	Type      string    `json:"type"`
	PageID    string    `json:"pageId"`
	Timestamp time.Time `json:"timestamp"`
}

// EventType returns the event type tag
func (e BaseEvent) EventType() string {
	return e.Type
}

// AggregateID returns the id of the page the event belongs to
func (e BaseEvent) AggregateID() string {
	return e.PageID
}

// OccurredAt returns when the event happened
func (e BaseEvent) OccurredAt() time.Time {
	return e.Timestamp
}
