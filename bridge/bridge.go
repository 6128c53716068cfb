// Package bridge turns vendor HAL interrupt callbacks into Nilai events.
//
// Each method builds an event on the stack and dispatches it synchronously on
// the caller's context. There is no buffering and no retry.
package bridge

import "nilai/core"

// Dispatcher receives bridged events. *core.Application implements it.
type Dispatcher interface {
	DispatchEvent(ev core.Event) bool
}

// Bridge forwards HAL callbacks to a Dispatcher.
type Bridge struct {
	d     Dispatcher
	clock func() uint32
}

// New returns a bridge dispatching into d. A nil dispatcher is a fatal
// assertion: every callback needs somewhere to go. A nil clock uses
// core.GetTime.
func New(d Dispatcher, clock func() uint32) *Bridge {
	core.Assert(d != nil, "bridge.New: nil dispatcher")
	if clock == nil {
		clock = core.GetTime
	}
	return &Bridge{d: d, clock: clock}
}

func (b *Bridge) stamp(t core.EventType) core.EventBase {
	return core.NewEventBase(t, b.clock())
}
