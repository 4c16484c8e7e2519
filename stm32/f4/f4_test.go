package f4

import (
	"testing"

	"github.com/cbiffle/etl-sub000/armv7m"
	"github.com/cbiffle/etl-sub000/armv7m/nvic"
	"github.com/cbiffle/etl-sub000/armv7m/scb"
	"github.com/cbiffle/etl-sub000/stm32/f4/irq"
	etltesting "github.com/cbiffle/etl-sub000/testing"
)

func TestMain(m *testing.M) { etltesting.TestMain(m) }

func TestIRQPriorityShift(t *testing.T) {
	SetIRQPriority(irq.USART1, 5)
	// The four implemented bits land in the top nibble of the byte.
	if got := nvic.IRQPriority(uint(irq.USART1)); got != 0x50 {
		t.Errorf("hardware byte = %#02x, want 0x50", got)
	}
	if got := IRQPriority(irq.USART1); got != 5 {
		t.Errorf("IRQPriority = %d, want 5", got)
	}
}

func TestEnableDisable(t *testing.T) {
	if IRQEnabled(irq.TIM2) {
		t.Fatal("TIM2 enabled out of reset")
	}
	EnableIRQ(irq.TIM2)
	if !IRQEnabled(irq.TIM2) || !nvic.IRQEnabled(uint(irq.TIM2)) {
		t.Fatal("TIM2 not enabled")
	}
	DisableIRQ(irq.TIM2)
	if IRQEnabled(irq.TIM2) {
		t.Fatal("TIM2 still enabled")
	}
}

func TestClearPending(t *testing.T) {
	ClearPendingIRQ(irq.SPI1)
	if PendingIRQ(irq.SPI1) {
		t.Error("SPI1 pending after clear")
	}
}

func TestExceptionPriority(t *testing.T) {
	SetExceptionPriority(armv7m.SysTick, 15)
	if got := scb.ExceptionPriority(armv7m.SysTick); got != 0xF0 {
		t.Errorf("hardware byte = %#02x, want 0xF0", got)
	}
	if got := ExceptionPriority(armv7m.SysTick); got != 15 {
		t.Errorf("ExceptionPriority = %d, want 15", got)
	}
}
