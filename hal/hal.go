// Package hal holds the contracts between Nilai modules and the board's
// peripheral layer.
package hal

import "tinygo.org/x/drivers"

// I2C is the bus contract for I²C devices. It is the TinyGo drivers interface
// so machine.I2C and any drivers-compatible bus plug in directly.
type I2C = drivers.I2C

// OutputPin is a digital output.
type OutputPin interface {
	Set(high bool)
	Get() bool
}

// TogglePin flips an output pin.
func TogglePin(p OutputPin) {
	p.Set(!p.Get())
}
