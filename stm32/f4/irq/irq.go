// Package irq enumerates the external interrupt lines of the STM32F405
// and STM32F407. Line n occupies vector table slot 16+n.
package irq

import "strings"

// IRQ numbers an external interrupt line as the NVIC sees it.
type IRQ uint8

const (
	WWDG               IRQ = 0  // Window watchdog
	PVD                IRQ = 1  // PVD through EXTI line 16
	TAMP_STAMP         IRQ = 2  // Tamper and timestamp through EXTI line 21
	RTC_WKUP           IRQ = 3  // RTC wakeup through EXTI line 22
	FLASH              IRQ = 4  // Flash global
	RCC                IRQ = 5  // RCC global
	EXTI0              IRQ = 6  // EXTI line 0
	EXTI1              IRQ = 7  // EXTI line 1
	EXTI2              IRQ = 8  // EXTI line 2
	EXTI3              IRQ = 9  // EXTI line 3
	EXTI4              IRQ = 10 // EXTI line 4
	DMA1_Stream0       IRQ = 11 // DMA1 stream 0
	DMA1_Stream1       IRQ = 12 // DMA1 stream 1
	DMA1_Stream2       IRQ = 13 // DMA1 stream 2
	DMA1_Stream3       IRQ = 14 // DMA1 stream 3
	DMA1_Stream4       IRQ = 15 // DMA1 stream 4
	DMA1_Stream5       IRQ = 16 // DMA1 stream 5
	DMA1_Stream6       IRQ = 17 // DMA1 stream 6
	ADC                IRQ = 18 // ADC1, ADC2 and ADC3 global
	CAN1_TX            IRQ = 19 // CAN1 TX
	CAN1_RX0           IRQ = 20 // CAN1 RX0
	CAN1_RX1           IRQ = 21 // CAN1 RX1
	CAN1_SCE           IRQ = 22 // CAN1 SCE
	EXTI9_5            IRQ = 23 // EXTI lines 9 to 5
	TIM1_BRK_TIM9      IRQ = 24 // TIM1 break and TIM9 global
	TIM1_UP_TIM10      IRQ = 25 // TIM1 update and TIM10 global
	TIM1_TRG_COM_TIM11 IRQ = 26 // TIM1 trigger, commutation and TIM11 global
	TIM1_CC            IRQ = 27 // TIM1 capture compare
	TIM2               IRQ = 28 // TIM2 global
	TIM3               IRQ = 29 // TIM3 global
	TIM4               IRQ = 30 // TIM4 global
	I2C1_EV            IRQ = 31 // I2C1 event
	I2C1_ER            IRQ = 32 // I2C1 error
	I2C2_EV            IRQ = 33 // I2C2 event
	I2C2_ER            IRQ = 34 // I2C2 error
	SPI1               IRQ = 35 // SPI1 global
	SPI2               IRQ = 36 // SPI2 global
	USART1             IRQ = 37 // USART1 global
	USART2             IRQ = 38 // USART2 global
	USART3             IRQ = 39 // USART3 global
	EXTI15_10          IRQ = 40 // EXTI lines 15 to 10
	RTC_Alarm          IRQ = 41 // RTC alarms A and B through EXTI line 17
	OTG_FS_WKUP        IRQ = 42 // USB OTG FS wakeup through EXTI line 18
	TIM8_BRK_TIM12     IRQ = 43 // TIM8 break and TIM12 global
	TIM8_UP_TIM13      IRQ = 44 // TIM8 update and TIM13 global
	TIM8_TRG_COM_TIM14 IRQ = 45 // TIM8 trigger, commutation and TIM14 global
	TIM8_CC            IRQ = 46 // TIM8 capture compare
	DMA1_Stream7       IRQ = 47 // DMA1 stream 7
	FSMC               IRQ = 48 // FSMC global
	SDIO               IRQ = 49 // SDIO global
	TIM5               IRQ = 50 // TIM5 global
	SPI3               IRQ = 51 // SPI3 global
	UART4              IRQ = 52 // UART4 global
	UART5              IRQ = 53 // UART5 global
	TIM6_DAC           IRQ = 54 // TIM6 global and DAC underrun
	TIM7               IRQ = 55 // TIM7 global
	DMA2_Stream0       IRQ = 56 // DMA2 stream 0
	DMA2_Stream1       IRQ = 57 // DMA2 stream 1
	DMA2_Stream2       IRQ = 58 // DMA2 stream 2
	DMA2_Stream3       IRQ = 59 // DMA2 stream 3
	DMA2_Stream4       IRQ = 60 // DMA2 stream 4
	ETH                IRQ = 61 // Ethernet global
	ETH_WKUP           IRQ = 62 // Ethernet wakeup through EXTI line 19
	CAN2_TX            IRQ = 63 // CAN2 TX
	CAN2_RX0           IRQ = 64 // CAN2 RX0
	CAN2_RX1           IRQ = 65 // CAN2 RX1
	CAN2_SCE           IRQ = 66 // CAN2 SCE
	OTG_FS             IRQ = 67 // USB OTG FS global
	DMA2_Stream5       IRQ = 68 // DMA2 stream 5
	DMA2_Stream6       IRQ = 69 // DMA2 stream 6
	DMA2_Stream7       IRQ = 70 // DMA2 stream 7
	USART6             IRQ = 71 // USART6 global
	I2C3_EV            IRQ = 72 // I2C3 event
	I2C3_ER            IRQ = 73 // I2C3 error
	OTG_HS_EP1_OUT     IRQ = 74 // USB OTG HS endpoint 1 out
	OTG_HS_EP1_IN      IRQ = 75 // USB OTG HS endpoint 1 in
	OTG_HS_WKUP        IRQ = 76 // USB OTG HS wakeup through EXTI line 20
	OTG_HS             IRQ = 77 // USB OTG HS global
	DCMI               IRQ = 78 // DCMI global
	CRYP               IRQ = 79 // CRYP global
	HASH_RNG           IRQ = 80 // Hash and RNG global
	FPU                IRQ = 81 // Floating point unit
)

// NumIRQ counts the implemented interrupt lines.
const NumIRQ = 82

var names = [NumIRQ]string{
	WWDG:               "WWDG",
	PVD:                "PVD",
	TAMP_STAMP:         "TAMP_STAMP",
	RTC_WKUP:           "RTC_WKUP",
	FLASH:              "FLASH",
	RCC:                "RCC",
	EXTI0:              "EXTI0",
	EXTI1:              "EXTI1",
	EXTI2:              "EXTI2",
	EXTI3:              "EXTI3",
	EXTI4:              "EXTI4",
	DMA1_Stream0:       "DMA1_Stream0",
	DMA1_Stream1:       "DMA1_Stream1",
	DMA1_Stream2:       "DMA1_Stream2",
	DMA1_Stream3:       "DMA1_Stream3",
	DMA1_Stream4:       "DMA1_Stream4",
	DMA1_Stream5:       "DMA1_Stream5",
	DMA1_Stream6:       "DMA1_Stream6",
	ADC:                "ADC",
	CAN1_TX:            "CAN1_TX",
	CAN1_RX0:           "CAN1_RX0",
	CAN1_RX1:           "CAN1_RX1",
	CAN1_SCE:           "CAN1_SCE",
	EXTI9_5:            "EXTI9_5",
	TIM1_BRK_TIM9:      "TIM1_BRK_TIM9",
	TIM1_UP_TIM10:      "TIM1_UP_TIM10",
	TIM1_TRG_COM_TIM11: "TIM1_TRG_COM_TIM11",
	TIM1_CC:            "TIM1_CC",
	TIM2:               "TIM2",
	TIM3:               "TIM3",
	TIM4:               "TIM4",
	I2C1_EV:            "I2C1_EV",
	I2C1_ER:            "I2C1_ER",
	I2C2_EV:            "I2C2_EV",
	I2C2_ER:            "I2C2_ER",
	SPI1:               "SPI1",
	SPI2:               "SPI2",
	USART1:             "USART1",
	USART2:             "USART2",
	USART3:             "USART3",
	EXTI15_10:          "EXTI15_10",
	RTC_Alarm:          "RTC_Alarm",
	OTG_FS_WKUP:        "OTG_FS_WKUP",
	TIM8_BRK_TIM12:     "TIM8_BRK_TIM12",
	TIM8_UP_TIM13:      "TIM8_UP_TIM13",
	TIM8_TRG_COM_TIM14: "TIM8_TRG_COM_TIM14",
	TIM8_CC:            "TIM8_CC",
	DMA1_Stream7:       "DMA1_Stream7",
	FSMC:               "FSMC",
	SDIO:               "SDIO",
	TIM5:               "TIM5",
	SPI3:               "SPI3",
	UART4:              "UART4",
	UART5:              "UART5",
	TIM6_DAC:           "TIM6_DAC",
	TIM7:               "TIM7",
	DMA2_Stream0:       "DMA2_Stream0",
	DMA2_Stream1:       "DMA2_Stream1",
	DMA2_Stream2:       "DMA2_Stream2",
	DMA2_Stream3:       "DMA2_Stream3",
	DMA2_Stream4:       "DMA2_Stream4",
	ETH:                "ETH",
	ETH_WKUP:           "ETH_WKUP",
	CAN2_TX:            "CAN2_TX",
	CAN2_RX0:           "CAN2_RX0",
	CAN2_RX1:           "CAN2_RX1",
	CAN2_SCE:           "CAN2_SCE",
	OTG_FS:             "OTG_FS",
	DMA2_Stream5:       "DMA2_Stream5",
	DMA2_Stream6:       "DMA2_Stream6",
	DMA2_Stream7:       "DMA2_Stream7",
	USART6:             "USART6",
	I2C3_EV:            "I2C3_EV",
	I2C3_ER:            "I2C3_ER",
	OTG_HS_EP1_OUT:     "OTG_HS_EP1_OUT",
	OTG_HS_EP1_IN:      "OTG_HS_EP1_IN",
	OTG_HS_WKUP:        "OTG_HS_WKUP",
	OTG_HS:             "OTG_HS",
	DCMI:               "DCMI",
	CRYP:               "CRYP",
	HASH_RNG:           "HASH_RNG",
	FPU:                "FPU",
}

func (i IRQ) String() string {
	if int(i) < len(names) {
		return names[i]
	}
	return "Unknown"
}

// HandlerSymbol returns the link-time name of the line's handler. The
// application must define every one of them; there are no weak defaults.
func (i IRQ) HandlerSymbol() string {
	if int(i) >= len(names) {
		return ""
	}
	return "etl_stm32f4xx_" + strings.ToLower(names[i]) + "_handler"
}
