package bridge

import (
	"nilai/core"
	"nilai/hal"
)

// SAIEvent reports a serial audio interface transfer or error.
type SAIEvent struct {
	core.EventBase
	Handle hal.Handle
}

func (b *Bridge) sai(t core.EventType, h hal.Handle) bool {
	ev := SAIEvent{EventBase: b.stamp(t), Handle: h}
	return b.d.DispatchEvent(&ev)
}

func (b *Bridge) SAITxHalfCpltCallback(h hal.Handle) bool { return b.sai(core.SAITxHalfCplt, h) }
func (b *Bridge) SAITxCpltCallback(h hal.Handle) bool     { return b.sai(core.SAITxCplt, h) }
func (b *Bridge) SAIRxHalfCpltCallback(h hal.Handle) bool { return b.sai(core.SAIRxHalfCplt, h) }
func (b *Bridge) SAIRxCpltCallback(h hal.Handle) bool     { return b.sai(core.SAIRxCplt, h) }
func (b *Bridge) SAIErrorCallback(h hal.Handle) bool      { return b.sai(core.SAIError, h) }
