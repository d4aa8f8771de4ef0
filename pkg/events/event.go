package events

import "time"

// Event is an integration event emitted after a state change commits, e.g.
// USER_REGISTERED, PROFILE_UPDATED, ACTIVITY_LOGGED, CHAT_COMPLETED.
type Event interface {
	// EventType returns the event code used as the subject suffix.
	EventType() string

	// Payload returns the event data.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the common Event implementation used across services.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}
