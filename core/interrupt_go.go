//go:build !tinygo

package core

// irqState stands in for the saved interrupt mask on host builds.
type irqState uintptr

// Host builds have no interrupt controller; critical sections are no-ops and
// callers are expected to stay on one goroutine.
func disableInterrupts() irqState { return 0 }

func restoreInterrupts(irqState) {}
