package event

import (
	"sync"

	"github.com/bethropolis/hollow/internal/logger"
)

const logTag = "event"

// Handler reacts to an event. It returns true if the event was consumed,
// which stops the dispatch.
type Handler func(e Event) bool

// SubscriptionID identifies a handler for Unsubscribe.
type SubscriptionID uint64

type subscription struct {
	id      SubscriptionID
	handler Handler
}

// Manager handles event subscriptions and dispatching.
type Manager struct {
	mu       sync.RWMutex
	handlers map[Type][]subscription
	nextID   SubscriptionID
}

// NewManager creates a new event manager.
func NewManager() *Manager {
	return &Manager{
		handlers: make(map[Type][]subscription),
	}
}

// Subscribe adds a handler for eventType.
func (m *Manager) Subscribe(eventType Type, handler Handler) SubscriptionID {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	m.handlers[eventType] = append(m.handlers[eventType], subscription{id: m.nextID, handler: handler})
	logger.DebugTagf(logTag, "Event Manager: handler %d subscribed to %s", m.nextID, eventType)
	return m.nextID
}

// Unsubscribe removes a handler. Unknown ids are ignored.
func (m *Manager) Unsubscribe(id SubscriptionID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for t, subs := range m.handlers {
		for i, s := range subs {
			if s.id != id {
				continue
			}
			m.handlers[t] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}

// Dispatch sends an event to the handlers of its type, synchronously and
// in subscription order.
func (m *Manager) Dispatch(eventType Type, data interface{}) {
	e := Event{Type: eventType, Data: data}

	m.mu.RLock()
	subs := append([]subscription(nil), m.handlers[eventType]...)
	m.mu.RUnlock()

	if len(subs) == 0 {
		return
	}
	logger.DebugTagf(logTag, "Event Manager: dispatching %s to %d handler(s)", eventType, len(subs))

	// Handlers may subscribe or unsubscribe; they run on the copy.
	for _, s := range subs {
		if s.handler(e) {
			break
		}
	}
}
