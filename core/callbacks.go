package core

import "sync/atomic"

// MaxCallbacksPerEvent is the number of callback slots per event type.
// The table never grows.
const MaxCallbacksPerEvent = 8

// CallbackID is the slot index returned by registration.
type CallbackID int

// InvalidCallbackID is returned when no slot could be claimed.
const InvalidCallbackID CallbackID = -1

// EventCallback handles a dispatched event. Returning true consumes the event
// and stops propagation to later slots.
type EventCallback func(ev Event) bool

// Slot states
const (
	slotFree uint32 = iota
	slotClaimed
	slotUsed
)

type callbackRef struct {
	fn EventCallback
}

// callbackSlot is single-writer: only the claimer stores fn, and readers
// check state before loading it.
type callbackSlot struct {
	state atomic.Uint32
	ref   atomic.Pointer[callbackRef]
}

// CallbackTable holds the callback slots for every event type.
// Register and Unregister may race with Dispatch from interrupt context.
type CallbackTable struct {
	slots [EventTypeCount][MaxCallbacksPerEvent]callbackSlot
}

// NewCallbackTable returns an empty table.
func NewCallbackTable() *CallbackTable {
	return &CallbackTable{}
}

// Register stores fn in the first free slot for t.
func (ct *CallbackTable) Register(t EventType, fn EventCallback) CallbackID {
	if !t.Valid() || fn == nil {
		return InvalidCallbackID
	}
	slots := &ct.slots[t]
	for i := range slots {
		s := &slots[i]
		if !s.state.CompareAndSwap(slotFree, slotClaimed) {
			continue
		}
		s.ref.Store(&callbackRef{fn: fn})
		s.state.Store(slotUsed)
		return CallbackID(i)
	}
	return InvalidCallbackID
}

// Unregister frees slot id for t. Empty or out-of-range slots are ignored.
func (ct *CallbackTable) Unregister(t EventType, id CallbackID) {
	if !t.Valid() || id < 0 || int(id) >= MaxCallbacksPerEvent {
		return
	}
	ct.slots[t][id].state.CompareAndSwap(slotUsed, slotFree)
}

// Dispatch invokes the used slots for ev.Type() in slot order until one of
// them consumes the event. It reports whether the event was consumed.
func (ct *CallbackTable) Dispatch(ev Event) bool {
	t := ev.Type()
	if !t.Valid() {
		return false
	}
	slots := &ct.slots[t]
	for i := range slots {
		s := &slots[i]
		if s.state.Load() != slotUsed {
			continue
		}
		ref := s.ref.Load()
		if ref == nil {
			continue
		}
		if ref.fn(ev) {
			return true
		}
	}
	return false
}

// Count returns the number of used slots for t.
func (ct *CallbackTable) Count(t EventType) int {
	if !t.Valid() {
		return 0
	}
	n := 0
	for i := range ct.slots[t] {
		if ct.slots[t][i].state.Load() == slotUsed {
			n++
		}
	}
	return n
}
