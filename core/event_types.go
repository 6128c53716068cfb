package core

// EventType identifies a distinguishable occurrence.
// Values are dense so they can index the callback table directly.
type EventType uint16

const (
	// External interrupt lines, one per pin index.
	Exti0 EventType = iota
	Exti1
	Exti2
	Exti3
	Exti4
	Exti5
	Exti6
	Exti7
	Exti8
	Exti9
	Exti10
	Exti11
	Exti12
	Exti13
	Exti14
	Exti15

	// Application-defined software events
	UserEvent1
	UserEvent2
	UserEvent3
	UserEvent4
	UserEvent5
	UserEvent6
	UserEvent7
	UserEvent8
	UserEvent9
	UserEvent10

	DataGeneric
	DataReady

	ADCGeneric
	ADCConvCplt
	ADCConvHalfCplt
	ADCLevelOutOfWindow
	ADCError
	ADCInjectedConvCplt
	ADCInjectedQueueOverflow
	ADCLevelOutOfWindow2
	ADCLevelOutOfWindow3
	ADCEndOfSampling

	CANGeneric
	CANTxMailbox0Cplt
	CANTxMailbox1Cplt
	CANTxMailbox2Cplt
	CANTxMailbox0Abort
	CANTxMailbox1Abort
	CANTxMailbox2Abort
	CANRxFifo0MsgPending
	CANRxFifo0Full
	CANRxFifo1MsgPending
	CANRxFifo1Full
	CANSleep
	CANWakeUpFromRx
	CANError

	I2CGeneric
	I2CMasterTxCplt
	I2CMasterRxCplt
	I2CSlaveTxCplt
	I2CSlaveRxCplt
	I2CAddr
	I2CListenCplt
	I2CMemTxCplt
	I2CMemRxCplt
	I2CError
	I2CAbortCplt

	SPIGeneric
	SPITxCplt
	SPIRxCplt
	SPITxRxCplt
	SPITxHalfCplt
	SPIRxHalfCplt
	SPITxRxHalfCplt
	SPIError
	SPIAbortCplt

	UARTGeneric
	UARTTxHalfCplt
	UARTTxCplt
	UARTRxHalfCplt
	UARTRxCplt
	UARTError
	UARTAbortCplt
	UARTAbortTxCplt
	UARTAbortRxCplt
	UARTRxEvent

	RTCGeneric
	RTCAlarmA
	RTCAlarmB
	RTCTimestamp
	RTCWakeUpTimer
	RTCTamper1
	RTCTamper2

	TimGeneric
	TimPeriodElapsed
	TimPeriodElapsedHalf
	TimOcDelayElapsed
	TimIcCapture
	TimIcCaptureHalf
	TimPwmPulseFinished
	TimPwmPulseFinishedHalf
	TimTrigger
	TimTriggerHalf
	TimError
	TimCommutation
	TimBreak

	SAIGeneric
	SAITxHalfCplt
	SAITxCplt
	SAIRxHalfCplt
	SAIRxCplt
	SAIError

	// EventTypeCount is the number of event types. Not a valid type.
	EventTypeCount
)

var eventTypeNames = [EventTypeCount]string{
	Exti0: "Exti0", Exti1: "Exti1", Exti2: "Exti2", Exti3: "Exti3",
	Exti4: "Exti4", Exti5: "Exti5", Exti6: "Exti6", Exti7: "Exti7",
	Exti8: "Exti8", Exti9: "Exti9", Exti10: "Exti10", Exti11: "Exti11",
	Exti12: "Exti12", Exti13: "Exti13", Exti14: "Exti14", Exti15: "Exti15",

	UserEvent1: "UserEvent1", UserEvent2: "UserEvent2", UserEvent3: "UserEvent3",
	UserEvent4: "UserEvent4", UserEvent5: "UserEvent5", UserEvent6: "UserEvent6",
	UserEvent7: "UserEvent7", UserEvent8: "UserEvent8", UserEvent9: "UserEvent9",
	UserEvent10: "UserEvent10",

	DataGeneric: "Data_Generic",
	DataReady:   "Data_Ready",

	ADCGeneric:               "ADC_Generic",
	ADCConvCplt:              "ADC_ConvCplt",
	ADCConvHalfCplt:          "ADC_ConvHalfCplt",
	ADCLevelOutOfWindow:      "ADC_LevelOutOfWindow",
	ADCError:                 "ADC_Error",
	ADCInjectedConvCplt:      "ADC_InjectedConvCplt",
	ADCInjectedQueueOverflow: "ADC_InjectedQueueOverflow",
	ADCLevelOutOfWindow2:     "ADC_LevelOutOfWindow2",
	ADCLevelOutOfWindow3:     "ADC_LevelOutOfWindow3",
	ADCEndOfSampling:         "ADC_EndOfSampling",

	CANGeneric:           "CAN_Generic",
	CANTxMailbox0Cplt:    "CAN_TxMailbox0Cplt",
	CANTxMailbox1Cplt:    "CAN_TxMailbox1Cplt",
	CANTxMailbox2Cplt:    "CAN_TxMailbox2Cplt",
	CANTxMailbox0Abort:   "CAN_TxMailbox0Abort",
	CANTxMailbox1Abort:   "CAN_TxMailbox1Abort",
	CANTxMailbox2Abort:   "CAN_TxMailbox2Abort",
	CANRxFifo0MsgPending: "CAN_RxFifo0MsgPending",
	CANRxFifo0Full:       "CAN_RxFifo0Full",
	CANRxFifo1MsgPending: "CAN_RxFifo1MsgPending",
	CANRxFifo1Full:       "CAN_RxFifo1Full",
	CANSleep:             "CAN_Sleep",
	CANWakeUpFromRx:      "CAN_WakeUpFromRx",
	CANError:             "CAN_Error",

	I2CGeneric:      "I2C_Generic",
	I2CMasterTxCplt: "I2C_MasterTxCplt",
	I2CMasterRxCplt: "I2C_MasterRxCplt",
	I2CSlaveTxCplt:  "I2C_SlaveTxCplt",
	I2CSlaveRxCplt:  "I2C_SlaveRxCplt",
	I2CAddr:         "I2C_Addr",
	I2CListenCplt:   "I2C_ListenCplt",
	I2CMemTxCplt:    "I2C_MemTxCplt",
	I2CMemRxCplt:    "I2C_MemRxCplt",
	I2CError:        "I2C_Error",
	I2CAbortCplt:    "I2C_AbortCplt",

	SPIGeneric:      "SPI_Generic",
	SPITxCplt:       "SPI_TxCplt",
	SPIRxCplt:       "SPI_RxCplt",
	SPITxRxCplt:     "SPI_TxRxCplt",
	SPITxHalfCplt:   "SPI_TxHalfCplt",
	SPIRxHalfCplt:   "SPI_RxHalfCplt",
	SPITxRxHalfCplt: "SPI_TxRxHalfCplt",
	SPIError:        "SPI_Error",
	SPIAbortCplt:    "SPI_AbortCplt",

	UARTGeneric:     "UART_Generic",
	UARTTxHalfCplt:  "UART_TxHalfCplt",
	UARTTxCplt:      "UART_TxCplt",
	UARTRxHalfCplt:  "UART_RxHalfCplt",
	UARTRxCplt:      "UART_RxCplt",
	UARTError:       "UART_Error",
	UARTAbortCplt:   "UART_AbortCplt",
	UARTAbortTxCplt: "UART_AbortTxCplt",
	UARTAbortRxCplt: "UART_AbortRxCplt",
	UARTRxEvent:     "UART_RxEvent",

	RTCGeneric:     "RTC_Generic",
	RTCAlarmA:      "RTC_AlarmA",
	RTCAlarmB:      "RTC_AlarmB",
	RTCTimestamp:   "RTC_Timestamp",
	RTCWakeUpTimer: "RTC_WakeUpTimer",
	RTCTamper1:     "RTC_Tamper1",
	RTCTamper2:     "RTC_Tamper2",

	TimGeneric:              "Tim_Generic",
	TimPeriodElapsed:        "Tim_PeriodElapsed",
	TimPeriodElapsedHalf:    "Tim_PeriodElapsedHalf",
	TimOcDelayElapsed:       "Tim_OcDelayElapsed",
	TimIcCapture:            "Tim_IcCapture",
	TimIcCaptureHalf:        "Tim_IcCaptureHalf",
	TimPwmPulseFinished:     "Tim_PwmPulseFinished",
	TimPwmPulseFinishedHalf: "Tim_PwmPulseFinishedHalf",
	TimTrigger:              "Tim_Trigger",
	TimTriggerHalf:          "Tim_TriggerHalf",
	TimError:                "Tim_Error",
	TimCommutation:          "Tim_Commutation",
	TimBreak:                "Tim_Break",

	SAIGeneric:    "SAI_Generic",
	SAITxHalfCplt: "SAI_TxHalfCplt",
	SAITxCplt:     "SAI_TxCplt",
	SAIRxHalfCplt: "SAI_RxHalfCplt",
	SAIRxCplt:     "SAI_RxCplt",
	SAIError:      "SAI_Error",
}

// Valid reports whether t names a defined event type.
func (t EventType) Valid() bool {
	return t < EventTypeCount
}

func (t EventType) String() string {
	if !t.Valid() {
		return "EventType(" + utoa(uint32(t)) + ")"
	}
	return eventTypeNames[t]
}

// EventCategory is the coarse grouping of an EventType.
type EventCategory uint8

const (
	CategoryExternal EventCategory = iota
	CategoryUserEvent
	CategoryData
	CategoryADC
	CategoryCAN
	CategoryI2C
	CategorySPI
	CategoryUART
	CategoryRTC
	CategoryTim
	CategorySAI

	// CategoryCount is the number of categories. Not a valid category.
	CategoryCount
)

var categoryNames = [CategoryCount]string{
	CategoryExternal:  "External",
	CategoryUserEvent: "UserEvent",
	CategoryData:      "Data",
	CategoryADC:       "Adc",
	CategoryCAN:       "Can",
	CategoryI2C:       "I2c",
	CategorySPI:       "Spi",
	CategoryUART:      "Uart",
	CategoryRTC:       "Rtc",
	CategoryTim:       "Tim",
	CategorySAI:       "Sai",
}

func (c EventCategory) String() string {
	if c >= CategoryCount {
		return "EventCategory(" + utoa(uint32(c)) + ")"
	}
	return categoryNames[c]
}

// CategoryOf returns the single category t belongs to.
// An undefined type is a fatal assertion.
func CategoryOf(t EventType) EventCategory {
	switch {
	case t <= Exti15:
		return CategoryExternal
	case t >= UserEvent1 && t <= UserEvent10:
		return CategoryUserEvent
	case t == DataGeneric || t == DataReady:
		return CategoryData
	case t >= ADCGeneric && t <= ADCEndOfSampling:
		return CategoryADC
	case t >= CANGeneric && t <= CANError:
		return CategoryCAN
	case t >= I2CGeneric && t <= I2CAbortCplt:
		return CategoryI2C
	case t >= SPIGeneric && t <= SPIAbortCplt:
		return CategorySPI
	case t >= UARTGeneric && t <= UARTRxEvent:
		return CategoryUART
	case t >= RTCGeneric && t <= RTCTamper2:
		return CategoryRTC
	case t >= TimGeneric && t <= TimBreak:
		return CategoryTim
	case t >= SAIGeneric && t <= SAIError:
		return CategorySAI
	}
	AssertFailed("CategoryOf: invalid event type " + t.String())
	return CategoryCount
}

// IsInCategory reports whether t belongs to c.
// Undefined types belong to no category.
func IsInCategory(t EventType, c EventCategory) bool {
	if !t.Valid() {
		return false
	}
	return CategoryOf(t) == c
}
