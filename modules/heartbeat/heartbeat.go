// Package heartbeat blinks a status pin so a running board is visibly alive.
package heartbeat

import (
	"errors"
	"sync/atomic"

	"nilai/core"
	"nilai/hal"
)

// DefaultPeriod is the toggle period in ticks.
const DefaultPeriod = 500 * core.TickFreq / 1000

// ErrNoPin is returned by Init when the heartbeat has no pin to drive.
var ErrNoPin = errors.New("heartbeat: no pin")

// Heartbeat toggles a pin from a software timer.
type Heartbeat struct {
	core.ModuleBase

	app    *core.Application
	pin    hal.OutputPin
	period uint32
	timer  core.Timer

	toggles atomic.Uint32
}

// New returns a heartbeat toggling pin every period ticks. A zero period
// means DefaultPeriod.
func New(app *core.Application, pin hal.OutputPin, period uint32) *Heartbeat {
	if period == 0 {
		period = DefaultPeriod
	}
	h := &Heartbeat{
		ModuleBase: core.NewModuleBase("heartbeat"),
		app:        app,
		pin:        pin,
		period:     period,
	}
	h.timer.Handler = h.tick
	return h
}

// DoPost reports whether a pin and an application are attached.
func (h *Heartbeat) DoPost() bool { return h.pin != nil && h.app != nil }

// Init starts the timer.
func (h *Heartbeat) Init() error {
	if h.pin == nil {
		return ErrNoPin
	}
	h.timer.WakeTime = h.app.Now() + h.period
	h.app.ScheduleTimer(&h.timer)
	return nil
}

// Run does nothing; the pin is driven from the timer.
func (h *Heartbeat) Run() {}

// Teardown stops the timer and leaves the pin low.
func (h *Heartbeat) Teardown() {
	h.app.CancelTimer(&h.timer)
	if h.pin != nil {
		h.pin.Set(false)
	}
}

// Toggles returns the number of pin toggles so far.
func (h *Heartbeat) Toggles() uint32 { return h.toggles.Load() }

func (h *Heartbeat) tick(t *core.Timer) core.TimerResult {
	hal.TogglePin(h.pin)
	h.toggles.Add(1)
	t.WakeTime += h.period
	return core.TimerReschedule
}
