// Package trace records dispatched events and streams them to a host as
// framed records.
//
// The event callbacks run in interrupt context and only copy a few words into
// a buffered channel. Run does the encoding and the write on the main loop.
package trace

import (
	"fmt"
	"io"
	"sync/atomic"

	"nilai/bridge"
	"nilai/core"
	"nilai/protocol"
)

// DefaultDepth is the ring size used when New is given zero.
const DefaultDepth = 32

type registration struct {
	typ core.EventType
	id  core.CallbackID
}

// Tracer is a module that mirrors selected event types to a writer.
type Tracer struct {
	core.ModuleBase

	app   *core.Application
	w     io.Writer
	types []core.EventType
	regs  []registration

	ring    chan protocol.TraceRecord
	drops   atomic.Uint32
	written uint32

	enc protocol.Encoder
	out protocol.ScratchOutput
}

// New returns a tracer for the given event types writing to w.
func New(app *core.Application, w io.Writer, types []core.EventType, depth int) *Tracer {
	if depth <= 0 {
		depth = DefaultDepth
	}
	return &Tracer{
		ModuleBase: core.NewModuleBase("trace"),
		app:        app,
		w:          w,
		types:      append([]core.EventType(nil), types...),
		ring:       make(chan protocol.TraceRecord, depth),
	}
}

// DoPost reports whether the tracer has a writer and something to trace.
func (tr *Tracer) DoPost() bool { return tr.w != nil && len(tr.types) > 0 }

// Init registers one callback per traced type. Types whose feature is
// disabled are skipped with a warning.
func (tr *Tracer) Init() error {
	for _, t := range tr.types {
		id := tr.app.RegisterEventCallback(t, tr.record)
		if id == core.InvalidCallbackID {
			continue
		}
		tr.regs = append(tr.regs, registration{typ: t, id: id})
	}
	return nil
}

// Teardown unregisters every callback Init registered.
func (tr *Tracer) Teardown() {
	for _, r := range tr.regs {
		tr.app.UnregisterEventCallback(r.typ, r.id)
	}
	tr.regs = nil
}

// Traced returns the number of event types with a live callback.
func (tr *Tracer) Traced() int { return len(tr.regs) }

// Run writes every queued record, preceded by a drop marker if records were
// lost since the last call. A failed write stops the pass; the lost record
// and any unreported drop count carry over to the next marker.
func (tr *Tracer) Run() {
	if n := tr.drops.Swap(0); n > 0 {
		marker := protocol.TraceRecord{Timestamp: tr.app.Now(), Type: protocol.DropMarker, Handle: n}
		if err := tr.emit(marker); err != nil {
			tr.drops.Add(n)
			tr.app.Logger().Warning(err.Error())
			return
		}
	}
	for {
		select {
		case r := <-tr.ring:
			if err := tr.emit(r); err != nil {
				tr.drops.Add(1)
				tr.app.Logger().Warning(err.Error())
				return
			}
		default:
			return
		}
	}
}

// Written returns the number of records written.
func (tr *Tracer) Written() uint32 { return tr.written }

// Dropped returns the records lost and not yet reported by a drop marker.
func (tr *Tracer) Dropped() uint32 { return tr.drops.Load() }

func (tr *Tracer) emit(r protocol.TraceRecord) error {
	tr.out.Reset()
	if err := tr.enc.Encode(&tr.out, func(o protocol.OutputBuffer) { protocol.EncodeTraceRecord(o, r) }); err != nil {
		return fmt.Errorf("trace: encode: %w", err)
	}
	if _, err := tr.w.Write(tr.out.Result()); err != nil {
		return fmt.Errorf("trace: write: %w", err)
	}
	tr.written++
	return nil
}

// record runs in interrupt context.
func (tr *Tracer) record(ev core.Event) bool {
	r := protocol.TraceRecord{
		Timestamp: ev.Timestamp(),
		Type:      uint16(ev.Type()),
		Category:  uint8(ev.Category()),
		Handle:    handleOf(ev),
	}
	select {
	case tr.ring <- r:
	default:
		tr.drops.Add(1)
	}
	return false
}

// handleOf picks the identifying word of an event: the peripheral handle,
// the pin mask for EXTI lines, or the data word of software events.
func handleOf(ev core.Event) uint32 {
	switch e := ev.(type) {
	case *bridge.ExtiEvent:
		return uint32(e.Pin)
	case *bridge.UARTEvent:
		return uint32(e.Handle)
	case *bridge.I2CEvent:
		return uint32(e.Handle)
	case *bridge.SPIEvent:
		return uint32(e.Handle)
	case *bridge.CANEvent:
		return uint32(e.Handle)
	case *bridge.ADCEvent:
		return uint32(e.Handle)
	case *bridge.RTCEvent:
		return uint32(e.Handle)
	case *bridge.TimEvent:
		return uint32(e.Handle)
	case *bridge.SAIEvent:
		return uint32(e.Handle)
	case *core.SoftwareEvent:
		return e.Data
	}
	return 0
}
