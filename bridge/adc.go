package bridge

import (
	"nilai/core"
	"nilai/hal"
)

// ADCEvent reports an ADC conversion, watchdog or error event.
type ADCEvent struct {
	core.EventBase
	Handle hal.Handle
}

func (b *Bridge) adc(t core.EventType, h hal.Handle) bool {
	ev := ADCEvent{EventBase: b.stamp(t), Handle: h}
	return b.d.DispatchEvent(&ev)
}

func (b *Bridge) ADCConvCpltCallback(h hal.Handle) bool     { return b.adc(core.ADCConvCplt, h) }
func (b *Bridge) ADCConvHalfCpltCallback(h hal.Handle) bool { return b.adc(core.ADCConvHalfCplt, h) }
func (b *Bridge) ADCErrorCallback(h hal.Handle) bool        { return b.adc(core.ADCError, h) }

func (b *Bridge) ADCLevelOutOfWindowCallback(h hal.Handle) bool {
	return b.adc(core.ADCLevelOutOfWindow, h)
}

// The HAL_ADCEx_* callbacks.

func (b *Bridge) ADCExInjectedConvCpltCallback(h hal.Handle) bool {
	return b.adc(core.ADCInjectedConvCplt, h)
}

func (b *Bridge) ADCExInjectedQueueOverflowCallback(h hal.Handle) bool {
	return b.adc(core.ADCInjectedQueueOverflow, h)
}

func (b *Bridge) ADCExLevelOutOfWindow2Callback(h hal.Handle) bool {
	return b.adc(core.ADCLevelOutOfWindow2, h)
}

func (b *Bridge) ADCExLevelOutOfWindow3Callback(h hal.Handle) bool {
	return b.adc(core.ADCLevelOutOfWindow3, h)
}

func (b *Bridge) ADCExEndOfSamplingCallback(h hal.Handle) bool {
	return b.adc(core.ADCEndOfSampling, h)
}
