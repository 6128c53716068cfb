package bridge

import (
	"nilai/core"
	"nilai/hal"
)

// SPIEvent reports an SPI completion or error.
type SPIEvent struct {
	core.EventBase
	Handle hal.Handle
}

func (b *Bridge) spi(t core.EventType, h hal.Handle) bool {
	ev := SPIEvent{EventBase: b.stamp(t), Handle: h}
	return b.d.DispatchEvent(&ev)
}

func (b *Bridge) SPITxCpltCallback(h hal.Handle) bool       { return b.spi(core.SPITxCplt, h) }
func (b *Bridge) SPIRxCpltCallback(h hal.Handle) bool       { return b.spi(core.SPIRxCplt, h) }
func (b *Bridge) SPITxRxCpltCallback(h hal.Handle) bool     { return b.spi(core.SPITxRxCplt, h) }
func (b *Bridge) SPITxHalfCpltCallback(h hal.Handle) bool   { return b.spi(core.SPITxHalfCplt, h) }
func (b *Bridge) SPIRxHalfCpltCallback(h hal.Handle) bool   { return b.spi(core.SPIRxHalfCplt, h) }
func (b *Bridge) SPITxRxHalfCpltCallback(h hal.Handle) bool { return b.spi(core.SPITxRxHalfCplt, h) }
func (b *Bridge) SPIErrorCallback(h hal.Handle) bool        { return b.spi(core.SPIError, h) }
func (b *Bridge) SPIAbortCpltCallback(h hal.Handle) bool    { return b.spi(core.SPIAbortCplt, h) }
