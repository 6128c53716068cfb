//go:build tinygo

package core

// halt masks interrupts and parks the core forever.
func halt(msg string) {
	disableInterrupts()
	for {
	}
}
