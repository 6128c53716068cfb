//go:build tinygo

package core

import "runtime/interrupt"

type irqState = interrupt.State

// disableInterrupts masks interrupts and returns the previous mask.
func disableInterrupts() irqState {
	return interrupt.Disable()
}

// restoreInterrupts restores a mask returned by disableInterrupts.
func restoreInterrupts(state irqState) {
	interrupt.Restore(state)
}
