package bridge

import (
	"nilai/core"
	"nilai/hal"
)

// TimChannel is the timer channel active when the callback fired.
type TimChannel uint8

const (
	TimChannelCleared TimChannel = iota
	TimChannel1
	TimChannel2
	TimChannel3
	TimChannel4
	TimChannel5
	TimChannel6
)

// TimEvent reports a timer update, capture, compare, PWM or break event.
type TimEvent struct {
	core.EventBase
	Handle  hal.Handle
	Channel TimChannel
}

func (b *Bridge) tim(t core.EventType, h hal.Handle, ch TimChannel) bool {
	ev := TimEvent{EventBase: b.stamp(t), Handle: h, Channel: ch}
	return b.d.DispatchEvent(&ev)
}

func (b *Bridge) TIMPeriodElapsedCallback(h hal.Handle, ch TimChannel) bool {
	return b.tim(core.TimPeriodElapsed, h, ch)
}

func (b *Bridge) TIMPeriodElapsedHalfCpltCallback(h hal.Handle, ch TimChannel) bool {
	return b.tim(core.TimPeriodElapsedHalf, h, ch)
}

func (b *Bridge) TIMOCDelayElapsedCallback(h hal.Handle, ch TimChannel) bool {
	return b.tim(core.TimOcDelayElapsed, h, ch)
}

func (b *Bridge) TIMICCaptureCallback(h hal.Handle, ch TimChannel) bool {
	return b.tim(core.TimIcCapture, h, ch)
}

func (b *Bridge) TIMICCaptureHalfCpltCallback(h hal.Handle, ch TimChannel) bool {
	return b.tim(core.TimIcCaptureHalf, h, ch)
}

func (b *Bridge) TIMPWMPulseFinishedCallback(h hal.Handle, ch TimChannel) bool {
	return b.tim(core.TimPwmPulseFinished, h, ch)
}

func (b *Bridge) TIMPWMPulseFinishedHalfCpltCallback(h hal.Handle, ch TimChannel) bool {
	return b.tim(core.TimPwmPulseFinishedHalf, h, ch)
}

func (b *Bridge) TIMTriggerCallback(h hal.Handle, ch TimChannel) bool {
	return b.tim(core.TimTrigger, h, ch)
}

func (b *Bridge) TIMTriggerHalfCpltCallback(h hal.Handle, ch TimChannel) bool {
	return b.tim(core.TimTriggerHalf, h, ch)
}

func (b *Bridge) TIMErrorCallback(h hal.Handle, ch TimChannel) bool {
	return b.tim(core.TimError, h, ch)
}

// TIMExCommutCallback bridges HAL_TIMEx_CommutCallback.
func (b *Bridge) TIMExCommutCallback(h hal.Handle) bool {
	return b.tim(core.TimCommutation, h, TimChannelCleared)
}

// TIMExBreakCallback bridges HAL_TIMEx_BreakCallback.
func (b *Bridge) TIMExBreakCallback(h hal.Handle) bool {
	return b.tim(core.TimBreak, h, TimChannelCleared)
}
