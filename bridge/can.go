package bridge

import (
	"nilai/core"
	"nilai/hal"
)

// CANEvent reports a bxCAN mailbox, FIFO, power or error event.
type CANEvent struct {
	core.EventBase
	Handle hal.Handle
}

func (b *Bridge) can(t core.EventType, h hal.Handle) bool {
	ev := CANEvent{EventBase: b.stamp(t), Handle: h}
	return b.d.DispatchEvent(&ev)
}

// CANTxMailboxCompleteCallback bridges HAL_CAN_TxMailbox{0,1,2}CompleteCallback.
func (b *Bridge) CANTxMailboxCompleteCallback(h hal.Handle, mailbox int) bool {
	switch mailbox {
	case 0:
		return b.can(core.CANTxMailbox0Cplt, h)
	case 1:
		return b.can(core.CANTxMailbox1Cplt, h)
	case 2:
		return b.can(core.CANTxMailbox2Cplt, h)
	}
	core.AssertFailed("CANTxMailboxCompleteCallback: invalid mailbox " + core.Itoa(mailbox))
	return false
}

// CANTxMailboxAbortCallback bridges HAL_CAN_TxMailbox{0,1,2}AbortCallback.
func (b *Bridge) CANTxMailboxAbortCallback(h hal.Handle, mailbox int) bool {
	switch mailbox {
	case 0:
		return b.can(core.CANTxMailbox0Abort, h)
	case 1:
		return b.can(core.CANTxMailbox1Abort, h)
	case 2:
		return b.can(core.CANTxMailbox2Abort, h)
	}
	core.AssertFailed("CANTxMailboxAbortCallback: invalid mailbox " + core.Itoa(mailbox))
	return false
}

func (b *Bridge) CANRxFifo0MsgPendingCallback(h hal.Handle) bool {
	return b.can(core.CANRxFifo0MsgPending, h)
}

func (b *Bridge) CANRxFifo0FullCallback(h hal.Handle) bool { return b.can(core.CANRxFifo0Full, h) }

func (b *Bridge) CANRxFifo1MsgPendingCallback(h hal.Handle) bool {
	return b.can(core.CANRxFifo1MsgPending, h)
}

func (b *Bridge) CANRxFifo1FullCallback(h hal.Handle) bool     { return b.can(core.CANRxFifo1Full, h) }
func (b *Bridge) CANSleepCallback(h hal.Handle) bool           { return b.can(core.CANSleep, h) }
func (b *Bridge) CANWakeUpFromRxMsgCallback(h hal.Handle) bool { return b.can(core.CANWakeUpFromRx, h) }
func (b *Bridge) CANErrorCallback(h hal.Handle) bool           { return b.can(core.CANError, h) }
