package bridge

import (
	"nilai/core"
	"nilai/hal"
)

// I2CDirection is the transfer direction reported by an address match.
type I2CDirection uint8

const (
	// I2CDirectionTransmit: the master writes, this device receives.
	I2CDirectionTransmit I2CDirection = iota
	// I2CDirectionReceive: the master reads, this device transmits.
	I2CDirectionReceive
)

// I2CEvent reports an I²C completion, error or address match.
type I2CEvent struct {
	core.EventBase
	Handle hal.Handle
	// Direction and AddrMatchCode are set for I2C_Addr only.
	Direction     I2CDirection
	AddrMatchCode uint16
}

func (b *Bridge) i2c(t core.EventType, h hal.Handle) bool {
	ev := I2CEvent{EventBase: b.stamp(t), Handle: h}
	return b.d.DispatchEvent(&ev)
}

func (b *Bridge) I2CMasterTxCpltCallback(h hal.Handle) bool { return b.i2c(core.I2CMasterTxCplt, h) }
func (b *Bridge) I2CMasterRxCpltCallback(h hal.Handle) bool { return b.i2c(core.I2CMasterRxCplt, h) }
func (b *Bridge) I2CSlaveTxCpltCallback(h hal.Handle) bool  { return b.i2c(core.I2CSlaveTxCplt, h) }
func (b *Bridge) I2CSlaveRxCpltCallback(h hal.Handle) bool  { return b.i2c(core.I2CSlaveRxCplt, h) }
func (b *Bridge) I2CListenCpltCallback(h hal.Handle) bool   { return b.i2c(core.I2CListenCplt, h) }
func (b *Bridge) I2CMemTxCpltCallback(h hal.Handle) bool    { return b.i2c(core.I2CMemTxCplt, h) }
func (b *Bridge) I2CMemRxCpltCallback(h hal.Handle) bool    { return b.i2c(core.I2CMemRxCplt, h) }
func (b *Bridge) I2CErrorCallback(h hal.Handle) bool        { return b.i2c(core.I2CError, h) }
func (b *Bridge) I2CAbortCpltCallback(h hal.Handle) bool    { return b.i2c(core.I2CAbortCplt, h) }

// I2CAddrCallback bridges HAL_I2C_AddrCallback.
func (b *Bridge) I2CAddrCallback(h hal.Handle, dir I2CDirection, addrMatchCode uint16) bool {
	ev := I2CEvent{
		EventBase:     b.stamp(core.I2CAddr),
		Handle:        h,
		Direction:     dir,
		AddrMatchCode: addrMatchCode,
	}
	return b.d.DispatchEvent(&ev)
}
