package core

// TickFreq is the system tick rate in Hz. The STM32 HAL tick runs at 1 kHz.
const TickFreq = 1000

var systemTicks uint32

// GetTime returns the current system tick count.
func GetTime() uint32 {
	return getSystemTicks()
}

// SetTime sets the system tick count. Targets call this from the SysTick
// handler or the main loop; tests use it to drive time.
func SetTime(ticks uint32) {
	setSystemTicks(ticks)
}

// AdvanceTime moves the system tick count forward by delta.
func AdvanceTime(delta uint32) {
	setSystemTicks(getSystemTicks() + delta)
}

// TicksFromMS converts milliseconds to ticks.
func TicksFromMS(ms uint32) uint32 {
	return uint32(uint64(ms) * TickFreq / 1000)
}

// TicksToMS converts ticks to milliseconds.
func TicksToMS(ticks uint32) uint32 {
	return uint32(uint64(ticks) * 1000 / TickFreq)
}

// TickBefore reports whether a is earlier than b on the wrapping tick counter.
func TickBefore(a, b uint32) bool {
	return int32(a-b) < 0
}

// TicksSince returns the ticks elapsed from then to now across wrap-around.
func TicksSince(then, now uint32) uint32 {
	return now - then
}
