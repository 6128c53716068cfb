// Package pca9505 drives the NXP PCA9505 40-bit I²C I/O expander.
//
// The expander's open-drain INT output is wired to an EXTI line. The line
// callback only marks the input snapshot stale; the bus transfer happens in
// Run on the main loop.
package pca9505

import (
	"errors"
	"fmt"
	"sync/atomic"

	"nilai/core"
	"nilai/hal"
)

// BaseAddress is the 7-bit address with A2..A0 tied low.
const BaseAddress = 0x20

// Ports is the number of 8-bit ports.
const Ports = 5

// Register banks. Each bank holds one register per port.
const (
	regInput    = 0x00 // IP0..IP4
	regOutput   = 0x08 // OP0..OP4
	regPolarity = 0x10 // PI0..PI4
	regConfig   = 0x18 // IOC0..IOC4, 1 = input
	regMask     = 0x20 // MSK0..MSK4, 0 = interrupt enabled

	autoIncrement = 0x80
)

var (
	ErrNoDevice = errors.New("pca9505: no device")
	ErrBadPort  = errors.New("pca9505: port out of range")
)

// Device is a PCA9505 on an I²C bus.
type Device struct {
	core.ModuleBase

	app     *core.Application
	bus     hal.I2C
	addr    uint16
	intLine core.EventType
	useInt  bool
	cb      core.CallbackID

	dirty   atomic.Bool
	inputs  [Ports]byte
	outputs [Ports]byte
	changes uint32

	buf [1 + Ports]byte
}

// New returns a device at addr. A zero intMask means the INT line is not
// wired and inputs are refreshed on every Run.
func New(app *core.Application, bus hal.I2C, addr uint8, intMask uint16) *Device {
	if addr == 0 {
		addr = BaseAddress
	}
	d := &Device{
		ModuleBase: core.NewModuleBase("pca9505"),
		app:        app,
		bus:        bus,
		addr:       uint16(addr),
		cb:         core.InvalidCallbackID,
	}
	if intMask != 0 {
		d.intLine = core.PinIdToEventType(intMask)
		d.useInt = true
	}
	return d
}

// DoPost checks the device is present by reading the I/O configuration bank.
func (d *Device) DoPost() bool {
	if d.bus == nil {
		return false
	}
	var cfg [Ports]byte
	return d.readBank(regConfig, cfg[:]) == nil
}

// Init subscribes to the interrupt line, if one was given, and marks the
// input snapshot stale so the first Run reads the device.
func (d *Device) Init() error {
	if d.useInt {
		d.cb = d.app.RegisterEventCallback(d.intLine, d.onInterrupt)
		if d.cb == core.InvalidCallbackID {
			if err := d.app.CheckFeature(core.CategoryExternal); err != nil {
				return fmt.Errorf("pca9505: register %s: %w", d.intLine, err)
			}
			return errors.New("pca9505: no callback slot on " + d.intLine.String())
		}
	}
	d.dirty.Store(true)
	return nil
}

// Teardown drops the interrupt subscription.
func (d *Device) Teardown() {
	if d.cb != core.InvalidCallbackID {
		d.app.UnregisterEventCallback(d.intLine, d.cb)
		d.cb = core.InvalidCallbackID
	}
}

// Run refreshes the input snapshot when the device signalled a change and
// raises DataReady, carrying the module id, if any input differs.
func (d *Device) Run() {
	if d.useInt && !d.dirty.Swap(false) {
		return
	}
	in, err := d.Read()
	if err != nil {
		d.app.Logger().Warning(err.Error())
		d.dirty.Store(true)
		return
	}
	if in == d.inputs && !d.IsFirstRun() {
		return
	}
	d.inputs = in
	d.changes++
	d.app.Trigger(core.DataReady, uint32(d.ID()))
}

// Configure sets the direction of every pin, 1 for input, and enables the
// interrupt on input pins only.
func (d *Device) Configure(dir [Ports]byte) error {
	if err := d.writeBank(regConfig, dir[:]); err != nil {
		return err
	}
	var mask [Ports]byte
	for i, b := range dir {
		mask[i] = ^b
	}
	return d.writeBank(regMask, mask[:])
}

// SetPolarity inverts the input reading of pins whose bit is set.
func (d *Device) SetPolarity(inv [Ports]byte) error {
	return d.writeBank(regPolarity, inv[:])
}

// Write sets the output register of one port.
func (d *Device) Write(port int, v byte) error {
	if port < 0 || port >= Ports {
		return fmt.Errorf("%w: %d", ErrBadPort, port)
	}
	if err := d.writeBank(regOutput+byte(port), []byte{v}); err != nil {
		return err
	}
	d.outputs[port] = v
	return nil
}

// WriteAll sets every output register in one transfer.
func (d *Device) WriteAll(v [Ports]byte) error {
	if err := d.writeBank(regOutput, v[:]); err != nil {
		return err
	}
	d.outputs = v
	return nil
}

// Read returns the current levels of all five input ports.
func (d *Device) Read() ([Ports]byte, error) {
	var in [Ports]byte
	err := d.readBank(regInput, in[:])
	return in, err
}

// Inputs returns the snapshot taken by the last Run.
func (d *Device) Inputs() [Ports]byte { return d.inputs }

// Outputs returns the last values written to the output registers.
func (d *Device) Outputs() [Ports]byte { return d.outputs }

// Pin reports the level of pin n (0..39) in the last snapshot.
func (d *Device) Pin(n int) bool {
	if n < 0 || n >= Ports*8 {
		return false
	}
	return d.inputs[n/8]&(1<<(n%8)) != 0
}

// Changes counts the snapshots that differed from the previous one.
func (d *Device) Changes() uint32 { return d.changes }

func (d *Device) onInterrupt(core.Event) bool {
	d.dirty.Store(true)
	return false
}

func (d *Device) writeBank(reg byte, data []byte) error {
	d.buf[0] = reg | autoIncrement
	n := copy(d.buf[1:], data)
	if err := d.bus.Tx(d.addr, d.buf[:1+n], nil); err != nil {
		return fmt.Errorf("pca9505: write reg %s: %w", core.Hex(uint32(reg), 2), errors.Join(ErrNoDevice, err))
	}
	return nil
}

func (d *Device) readBank(reg byte, out []byte) error {
	d.buf[0] = reg | autoIncrement
	if err := d.bus.Tx(d.addr, d.buf[:1], out); err != nil {
		return fmt.Errorf("pca9505: read reg %s: %w", core.Hex(uint32(reg), 2), errors.Join(ErrNoDevice, err))
	}
	return nil
}
