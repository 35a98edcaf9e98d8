// pkg/event/event.go
package event

import (
	"sync"
)

// Type represents the type of event
type Type string

// Common event types
const (
	GameStarted   Type = "game_started"
	GameEnded     Type = "game_ended"
	BulletFired   Type = "bullet_fired"
	BulletExpired Type = "bullet_expired"
	MookSpawned   Type = "mook_spawned"
	MookHit       Type = "mook_hit"
	MookDestroyed Type = "mook_destroyed"
	MookSplit     Type = "mook_split"
	ShipDestroyed Type = "ship_destroyed"
)

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// Bus manages event subscriptions and dispatching
type Bus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]Handler),
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Publish sends an event to all subscribed handlers
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	handlers, ok := b.handlers[event.GetType()]
	b.mu.RUnlock()

	if !ok {
		return
	}

	for _, handler := range handlers {
		handler(event)
	}
}

// MookEvent carries the identity of the mook a lifecycle event concerns.
type MookEvent struct {
	BaseEvent
	MookID uint64
	Level  int
}

// NewMookEvent creates a new mook lifecycle event
func NewMookEvent(eventType Type, source interface{}, mookID uint64, level int) *MookEvent {
	return &MookEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		MookID: mookID,
		Level:  level,
	}
}

// BulletEvent carries the identity of the bullet a lifecycle event concerns.
type BulletEvent struct {
	BaseEvent
	BulletID uint64
}

// NewBulletEvent creates a new bullet lifecycle event
func NewBulletEvent(eventType Type, source interface{}, bulletID uint64) *BulletEvent {
	return &BulletEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		BulletID: bulletID,
	}
}
