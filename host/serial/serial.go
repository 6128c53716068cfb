// Package serial opens the host side of a board's trace UART.
package serial

import "io"

// Port is an open serial line.
type Port interface {
	io.ReadWriteCloser
	Flush() error
}

// Config describes the port to open.
type Config struct {
	// Device is the OS path, "/dev/ttyUSB0" or "COM3".
	Device string
	Baud   int
	// ReadTimeout in milliseconds. Zero blocks.
	ReadTimeout int
}

// DefaultBaud matches the firmware's trace UART.
const DefaultBaud = 115200

func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        DefaultBaud,
		ReadTimeout: 100,
	}
}
