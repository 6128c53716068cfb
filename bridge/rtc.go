package bridge

import (
	"nilai/core"
	"nilai/hal"
)

// RTCEvent reports an RTC alarm, wake-up, timestamp or tamper event.
type RTCEvent struct {
	core.EventBase
	Handle hal.Handle
}

func (b *Bridge) rtc(t core.EventType, h hal.Handle) bool {
	ev := RTCEvent{EventBase: b.stamp(t), Handle: h}
	return b.d.DispatchEvent(&ev)
}

func (b *Bridge) RTCAlarmAEventCallback(h hal.Handle) bool      { return b.rtc(core.RTCAlarmA, h) }
func (b *Bridge) RTCExAlarmBEventCallback(h hal.Handle) bool    { return b.rtc(core.RTCAlarmB, h) }
func (b *Bridge) RTCExTimeStampEventCallback(h hal.Handle) bool { return b.rtc(core.RTCTimestamp, h) }
func (b *Bridge) RTCExTamper1EventCallback(h hal.Handle) bool   { return b.rtc(core.RTCTamper1, h) }
func (b *Bridge) RTCExTamper2EventCallback(h hal.Handle) bool   { return b.rtc(core.RTCTamper2, h) }

func (b *Bridge) RTCExWakeUpTimerEventCallback(h hal.Handle) bool {
	return b.rtc(core.RTCWakeUpTimer, h)
}
