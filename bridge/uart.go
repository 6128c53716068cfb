package bridge

import (
	"nilai/core"
	"nilai/hal"
)

// UARTEvent reports a UART completion or error.
type UARTEvent struct {
	core.EventBase
	Handle hal.Handle
	// Size is the received byte count for UART_RxEvent, zero otherwise.
	Size uint16
}

func (b *Bridge) uart(t core.EventType, h hal.Handle, size uint16) bool {
	ev := UARTEvent{EventBase: b.stamp(t), Handle: h, Size: size}
	return b.d.DispatchEvent(&ev)
}

func (b *Bridge) UARTTxHalfCpltCallback(h hal.Handle) bool { return b.uart(core.UARTTxHalfCplt, h, 0) }
func (b *Bridge) UARTTxCpltCallback(h hal.Handle) bool     { return b.uart(core.UARTTxCplt, h, 0) }
func (b *Bridge) UARTRxHalfCpltCallback(h hal.Handle) bool { return b.uart(core.UARTRxHalfCplt, h, 0) }
func (b *Bridge) UARTRxCpltCallback(h hal.Handle) bool     { return b.uart(core.UARTRxCplt, h, 0) }
func (b *Bridge) UARTErrorCallback(h hal.Handle) bool      { return b.uart(core.UARTError, h, 0) }
func (b *Bridge) UARTAbortCpltCallback(h hal.Handle) bool  { return b.uart(core.UARTAbortCplt, h, 0) }

func (b *Bridge) UARTAbortTransmitCpltCallback(h hal.Handle) bool {
	return b.uart(core.UARTAbortTxCplt, h, 0)
}

func (b *Bridge) UARTAbortReceiveCpltCallback(h hal.Handle) bool {
	return b.uart(core.UARTAbortRxCplt, h, 0)
}

// UARTExRxEventCallback bridges HAL_UARTEx_RxEventCallback (idle line or
// ReceiveToIdle completion) with the number of bytes received.
func (b *Bridge) UARTExRxEventCallback(h hal.Handle, size uint16) bool {
	return b.uart(core.UARTRxEvent, h, size)
}
