package eventbus

import (
	"log"
	"runtime/debug"
	"sync"

	"inboxtags/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventClick            = domain.EventClick
	EventSelectionChanged = domain.EventSelectionChanged
	EventDropdownToggled  = domain.EventDropdownToggled
)

// Re-export domain event types
type ClickEvent = domain.ClickEvent
type SelectionChangedEvent = domain.SelectionChangedEvent
type DropdownToggledEvent = domain.DropdownToggledEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
}

type subscription struct {
	id      uint64
	handler EventHandler
}

// bus delivers events synchronously, in publish order, on the caller's
// goroutine. Handlers must not block.
type bus struct {
	mu       sync.RWMutex
	nextID   uint64
	handlers map[EventType][]subscription
}

// New creates a new event bus
func New() EventBus {
	return &bus{
		handlers: make(map[EventType][]subscription),
	}
}

// Publish delivers an event to every current subscriber of its type
func (b *bus) Publish(event DomainEvent) {
	b.mu.RLock()
	subs := b.handlers[event.Type()]
	// Copy so handlers may unsubscribe while we iterate
	handlersCopy := make([]subscription, len(subs))
	copy(handlersCopy, subs)
	b.mu.RUnlock()

	for _, sub := range handlersCopy {
		b.call(sub.handler, event)
	}
}

func (b *bus) call(h EventHandler, event DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Event handler panic for %s: %v\nStack: %s", event.Type(), r, debug.Stack())
		}
	}()
	h(event)
}

// Subscribe subscribes to events of a specific type.
// Returns an unsubscribe function; calling it more than once is harmless.
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		handlers := b.handlers[eventType]
		for i, s := range handlers {
			if s.id == id {
				// Build a fresh slice so in-flight copies stay intact
				next := make([]subscription, 0, len(handlers)-1)
				next = append(next, handlers[:i]...)
				next = append(next, handlers[i+1:]...)
				b.handlers[eventType] = next
				break
			}
		}
		if len(b.handlers[eventType]) == 0 {
			delete(b.handlers, eventType)
		}
	}
}

// SubscriberCount returns how many handlers are registered for an event type.
// Only the in-process bus created by New supports it; other buses report -1.
func SubscriberCount(eb EventBus, eventType EventType) int {
	b, ok := eb.(*bus)
	if !ok {
		return -1
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[eventType])
}
