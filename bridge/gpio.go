package bridge

import "nilai/core"

// ExtiEvent reports an edge on an external interrupt line.
type ExtiEvent struct {
	core.EventBase
	// Pin is the single-bit pin mask the HAL reported.
	Pin uint16
}

// GPIOEXTICallback bridges HAL_GPIO_EXTI_Callback.
func (b *Bridge) GPIOEXTICallback(pin uint16) bool {
	ev := ExtiEvent{EventBase: b.stamp(core.PinIdToEventType(pin)), Pin: pin}
	return b.d.DispatchEvent(&ev)
}

// GPIOEXTIRisingCallback bridges HAL_GPIO_EXTI_Rising_Callback on families
// with split edge callbacks.
func (b *Bridge) GPIOEXTIRisingCallback(pin uint16) bool { return b.GPIOEXTICallback(pin) }

// GPIOEXTIFallingCallback bridges HAL_GPIO_EXTI_Falling_Callback.
func (b *Bridge) GPIOEXTIFallingCallback(pin uint16) bool { return b.GPIOEXTICallback(pin) }
