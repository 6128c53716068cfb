//go:build stm32

// Firmware entry point for STM32 boards built with TinyGo.
package main

import (
	_ "embed"
	"machine"
	"time"

	"nilai/bridge"
	"nilai/core"
	"nilai/hal"
	"nilai/modules/button"
	"nilai/modules/heartbeat"
	"nilai/modules/pca9505"
	"nilai/modules/trace"
)

//go:embed nilai.json
var configJSON []byte

func consoleWrite(s string) {
	consoleUART.Write([]byte(s))
	consoleUART.Write([]byte("\r\n"))
}

func main() {
	log := core.NewLogger(consoleWrite, core.LevelInfo)
	log.StartQueued(16)
	core.SetDefaultLogger(log)

	cfg, err := core.LoadConfig(configJSON)
	if err != nil {
		log.Error("config: " + err.Error() + ", using defaults")
		cfg = core.DefaultConfig()
	}
	if err := configureBoard(); err != nil {
		log.Error("board: " + err.Error())
	}

	app := core.NewApplication(cfg,
		core.WithLogger(log),
		core.WithRunHook(updateSystemTime),
		core.WithIdle(func() { time.Sleep(10 * time.Microsecond) }),
	)
	irq := bridge.New(app, core.GetTime)

	for _, p := range []machine.Pin{userBtn, expINT} {
		mask := pinMask(p)
		err := p.SetInterrupt(machine.PinFalling, func(machine.Pin) {
			irq.GPIOEXTICallback(mask)
		})
		if err != nil {
			log.Error("exti " + core.Hex(uint32(mask), 4) + ": " + err.Error())
		}
	}

	core.AddModule(app, heartbeat.New(app, statusLED, 0))
	core.AddModule(app, button.New(app, pinMask(userBtn), core.TicksFromMS(30), core.UserEvent1))
	exp := core.AddModule(app, pca9505.New(app, expBus, pca9505.BaseAddress, pinMask(expINT)))
	traceOut := &txNotifier{uart: traceUART, h: hTrace, irq: irq}
	core.AddModule(app, trace.New(app, traceOut, []core.EventType{
		core.Exti5, core.Exti13, core.UserEvent1, core.DataReady,
	}, 0))

	if !app.Post() {
		log.Warning("POST failed, continuing")
	}
	if err := exp.Configure([pca9505.Ports]byte{0xFF, 0xFF, 0x00, 0x00, 0x00}); err != nil {
		log.Error(err.Error())
	}

	for _, h := range []hal.Handle{hConsole, hTrace, hI2C} {
		if name, err := handles.Name(h); err == nil {
			log.Info("peripheral " + core.Utoa(uint32(h)) + ": " + name)
		}
	}
	log.Info("nilai: " + core.Itoa(len(app.Modules())) + " modules")
	app.Run()
}
