// Package button debounces a push button on an EXTI line and re-raises each
// press as a software event from main context.
package button

import (
	"errors"
	"fmt"
	"sync/atomic"

	"nilai/core"
)

var (
	ErrNotTriggerable = errors.New("button: event type cannot be triggered")
	ErrNoCallbackSlot = errors.New("button: no callback slot")
)

// Button counts debounced edges in interrupt context and triggers one event
// per press from Run.
type Button struct {
	core.ModuleBase

	app      *core.Application
	pin      uint16
	debounce uint32
	event    core.EventType
	line     core.EventType
	cb       core.CallbackID

	pending atomic.Uint32
	last    atomic.Uint32
	seen    atomic.Bool
	presses uint32
}

// New returns a button on the EXTI line of pinMask. Edges closer than
// debounce ticks to the last accepted edge are ignored.
func New(app *core.Application, pinMask uint16, debounce uint32, event core.EventType) *Button {
	return &Button{
		ModuleBase: core.NewModuleBase("button"),
		app:        app,
		pin:        pinMask,
		debounce:   debounce,
		event:      event,
		line:       core.PinIdToEventType(pinMask),
		cb:         core.InvalidCallbackID,
	}
}

// DoPost reports whether the button is attached to an application.
func (b *Button) DoPost() bool { return b.app != nil }

// Init subscribes to the button's EXTI line. It fails when the configured
// event cannot be raised with Trigger or no callback slot is free.
func (b *Button) Init() error {
	switch core.CategoryOf(b.event) {
	case core.CategoryExternal, core.CategoryUserEvent, core.CategoryData:
	default:
		return fmt.Errorf("%w: %s", ErrNotTriggerable, b.event)
	}
	b.cb = b.app.RegisterEventCallback(b.line, b.onEdge)
	if b.cb == core.InvalidCallbackID {
		if err := b.app.CheckFeature(core.CategoryExternal); err != nil {
			return fmt.Errorf("button: register %s: %w", b.line, err)
		}
		return fmt.Errorf("%w: %s", ErrNoCallbackSlot, b.line)
	}
	return nil
}

// Run raises the configured event once for every press since the last call.
func (b *Button) Run() {
	for n := b.pending.Swap(0); n > 0; n-- {
		b.presses++
		b.app.Trigger(b.event, b.presses)
	}
}

// Teardown drops the EXTI subscription.
func (b *Button) Teardown() {
	if b.cb != core.InvalidCallbackID {
		b.app.UnregisterEventCallback(b.line, b.cb)
		b.cb = core.InvalidCallbackID
	}
}

// Presses returns the number of presses raised so far.
func (b *Button) Presses() uint32 { return b.presses }

// onEdge runs in interrupt context. It never consumes the event so other
// listeners on the same line still see it.
func (b *Button) onEdge(ev core.Event) bool {
	ts := ev.Timestamp()
	if b.seen.Load() && core.TicksSince(b.last.Load(), ts) < b.debounce {
		return false
	}
	b.last.Store(ts)
	b.seen.Store(true)
	b.pending.Add(1)
	return false
}
