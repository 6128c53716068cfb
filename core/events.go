package core

import "math/bits"

// Event is a tagged, timestamped occurrence handed to callbacks.
// Concrete payload types embed EventBase.
type Event interface {
	Timestamp() uint32
	Type() EventType
	Category() EventCategory
}

// EventBase carries the fields common to every event.
// They are fixed at construction.
type EventBase struct {
	timestamp uint32
	typ       EventType
	category  EventCategory
}

// NewEventBase stamps an event of type t taken at tick ts.
func NewEventBase(t EventType, ts uint32) EventBase {
	return EventBase{
		timestamp: ts,
		typ:       t,
		category:  CategoryOf(t),
	}
}

// Timestamp returns the tick the event was raised at.
func (e *EventBase) Timestamp() uint32 { return e.timestamp }

// Type returns the event type.
func (e *EventBase) Type() EventType { return e.typ }

// Category returns the category derived from the event type.
func (e *EventBase) Category() EventCategory { return e.category }

// SoftwareEvent is raised from main context by Application.Trigger.
type SoftwareEvent struct {
	EventBase
	Data uint32
}

// PinIdToEventType maps a single-bit pin mask to its EXTI event type.
// A mask with zero or several bits set is a fatal assertion.
func PinIdToEventType(pin uint16) EventType {
	Assert(bits.OnesCount16(pin) == 1, "PinIdToEventType: pin mask must have exactly one bit set")
	return Exti0 + EventType(bits.TrailingZeros16(pin))
}

// PinIdToNum returns the 1-based line number of a single-bit pin mask.
func PinIdToNum(pin uint16) int {
	Assert(bits.OnesCount16(pin) == 1, "PinIdToNum: pin mask must have exactly one bit set")
	return bits.TrailingZeros16(pin) + 1
}

// ExtiLine returns the pin index of an EXTI event type.
func ExtiLine(t EventType) (int, bool) {
	if t > Exti15 {
		return 0, false
	}
	return int(t - Exti0), true
}
