//go:build stm32

package main

import (
	"machine"

	"nilai/bridge"
	"nilai/hal"
)

// Board wiring for a Nucleo-64 with a PCA9505 on I2C and its INT on PB5.
var (
	statusLED = machine.LED
	userBtn   = machine.BUTTON
	expINT    = machine.PB5

	consoleUART = machine.Serial
	traceUART   = machine.UART1

	expBus = machine.I2C0
)

var handles = hal.NewHandleTable()

var (
	hConsole = handles.MustRegister("usart2")
	hTrace   = handles.MustRegister("usart1")
	hI2C     = handles.MustRegister("i2c1")
)

// pinMask is the EXTI line mask of p. STM32 pins are numbered
// port*16 + index, and the EXTI line is the index.
func pinMask(p machine.Pin) uint16 {
	return 1 << (uint8(p) % 16)
}

// txNotifier reports each completed blocking write as a UART TxCplt event.
type txNotifier struct {
	uart *machine.UART
	h    hal.Handle
	irq  *bridge.Bridge
}

func (w *txNotifier) Write(p []byte) (int, error) {
	n, err := w.uart.Write(p)
	if err == nil {
		w.irq.UARTTxCpltCallback(w.h)
	}
	return n, err
}

func configureBoard() error {
	statusLED.Configure(machine.PinConfig{Mode: machine.PinOutput})
	userBtn.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	expINT.Configure(machine.PinConfig{Mode: machine.PinInputPullup})

	if err := traceUART.Configure(machine.UARTConfig{BaudRate: 115200}); err != nil {
		return err
	}
	return expBus.Configure(machine.I2CConfig{Frequency: 400 * machine.KHz})
}
