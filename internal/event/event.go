// Package event carries the engine's outbound notifications: property
// changes the presentation layer keys its refresh logic off, and narrative
// message lines rendered verbatim in emission order.
package event

import "sync"

// Type represents the type of an event.
type Type string

const (
	// TypePropertyChanged fires whenever a named player attribute changes.
	TypePropertyChanged Type = "player.property_changed"
	// TypeMessage fires for every narrative line the engine emits.
	TypeMessage Type = "player.message"
)

// Property names carried by TypePropertyChanged events. UI refresh logic
// dispatches on these exact strings.
const (
	PropCurrentHitPoints = "CurrentHitPoints"
	PropMaximumHitPoints = "MaximumHitPoints"
	PropGold             = "Gold"
	PropExperiencePoints = "ExperiencePoints"
	PropLevel            = "Level"
	PropCurrentLocation  = "CurrentLocation"
	PropWeapons          = "Weapons"
	PropPotions          = "Potions"
)

// PropertyChanged is the payload of a TypePropertyChanged event.
type PropertyChanged struct {
	Name string
}

// Message is the payload of a TypeMessage event. AddExtraNewLine asks the
// renderer to follow the line with a blank one.
type Message struct {
	Text            string
	AddExtraNewLine bool
}

// Event is a discrete notification published by the engine.
type Event struct {
	Type    Type
	Payload interface{}
}

// Handler is a function that handles an event.
type Handler func(event Event)

// Bus is a synchronous in-memory publish/subscribe hub. Handlers run on the
// publishing goroutine in subscription order; the engine is single-threaded
// so publishing never races with itself.
type Bus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewBus creates an empty Bus.
func NewBus() *Bus {
	return &Bus{handlers: make(map[Type][]Handler)}
}

// Publish delivers the event to every subscriber of its type.
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	handlers := b.handlers[event.Type]
	b.mu.RUnlock()

	for _, handler := range handlers {
		handler(event)
	}
}

// Subscribe registers a handler for an event type.
func (b *Bus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// PublishProperty is shorthand for publishing a TypePropertyChanged event.
func (b *Bus) PublishProperty(name string) {
	b.Publish(Event{Type: TypePropertyChanged, Payload: PropertyChanged{Name: name}})
}

// PublishMessage is shorthand for publishing a TypeMessage event.
func (b *Bus) PublishMessage(text string, addExtraNewLine bool) {
	b.Publish(Event{Type: TypeMessage, Payload: Message{Text: text, AddExtraNewLine: addExtraNewLine}})
}
