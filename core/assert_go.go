//go:build !tinygo

package core

// halt panics on host builds so tests can recover the AssertionError.
func halt(msg string) {
	panic(&AssertionError{Msg: msg})
}
