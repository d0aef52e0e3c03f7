package interfaces

import "addressbook/internal/events"

// EventPublisher is how the core announces changes to the presentation layer
// and to storage.
type EventPublisher interface {
	Publish(ev events.Event)
}
