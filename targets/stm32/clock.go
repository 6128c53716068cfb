//go:build stm32

package main

import (
	"time"

	"nilai/core"
)

var boot = time.Now()

// updateSystemTime publishes the millisecond uptime as the core tick.
// It runs at the top of every scheduler iteration.
func updateSystemTime() {
	core.SetTime(uint32(time.Since(boot) / (time.Second / core.TickFreq)))
}
