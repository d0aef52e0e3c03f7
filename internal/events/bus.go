package events

import (
	"log/slog"
	"sync"

	"addressbook/internal/logging"
)

// Handler receives published events.
type Handler func(Event)

// Bus fans events out to its subscribers.
type Bus struct {
	mu       sync.RWMutex
	handlers []Handler
	log      *slog.Logger
}

// NewBus returns an empty bus. A nil logger disables logging.
func NewBus(log *slog.Logger) *Bus {
	return &Bus{log: logging.OrDiscard(log)}
}

// Subscribe registers h for every subsequent event.
func (b *Bus) Subscribe(h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = append(b.handlers, h)
}

// Publish delivers ev to every subscriber in subscription order.
func (b *Bus) Publish(ev Event) {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers...)
	b.mu.RUnlock()

	b.log.Debug("publish event", "kind", ev.Kind(), "id", ev.Meta().ID, "subscribers", len(handlers))
	for _, h := range handlers {
		h(ev)
	}
}
