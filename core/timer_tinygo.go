//go:build tinygo

package core

import "sync/atomic"

// The tick counter is written from the SysTick interrupt on target.
func getSystemTicks() uint32 {
	return atomic.LoadUint32(&systemTicks)
}

func setSystemTicks(ticks uint32) {
	atomic.StoreUint32(&systemTicks, ticks)
}
