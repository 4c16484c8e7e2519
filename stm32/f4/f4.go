// Package f4 adapts the armv7m support packages to the STM32F405 and
// STM32F407: the interrupt map in the irq subpackage and four implemented
// priority bits.
package f4

import (
	"github.com/cbiffle/etl-sub000/armv7m"
	"github.com/cbiffle/etl-sub000/armv7m/nvic"
	"github.com/cbiffle/etl-sub000/armv7m/scb"
	"github.com/cbiffle/etl-sub000/debug"
	"github.com/cbiffle/etl-sub000/stm32/f4/irq"
)

// PriorityBits is the number of priority bits the SoC implements. They sit
// at the top of each priority byte; the rest read as zero.
const PriorityBits = 4

// Priority is an urgency level, 0 the most urgent through 15 the least.
type Priority uint8

const prioShift = 8 - PriorityBits

func hwpri(p Priority) uint8 {
	debug.Assert(p < 1<<PriorityBits, "f4: priority out of range")
	return uint8(p) << prioShift
}

// EnableIRQ enables an interrupt line.
func EnableIRQ(n irq.IRQ) { nvic.EnableIRQ(uint(n)) }

// DisableIRQ disables an interrupt line.
func DisableIRQ(n irq.IRQ) { nvic.DisableIRQ(uint(n)) }

// ClearPendingIRQ unpends an interrupt line.
func ClearPendingIRQ(n irq.IRQ) { nvic.ClearPendingIRQ(uint(n)) }

// IRQEnabled reports whether an interrupt line is enabled.
func IRQEnabled(n irq.IRQ) bool { return nvic.IRQEnabled(uint(n)) }

// PendingIRQ reports whether an interrupt line is pending.
func PendingIRQ(n irq.IRQ) bool { return nvic.Pending(uint(n)) }

// SetIRQPriority sets the urgency of an interrupt line.
func SetIRQPriority(n irq.IRQ, p Priority) {
	nvic.SetIRQPriority(uint(n), hwpri(p))
}

// IRQPriority returns the urgency of an interrupt line.
func IRQPriority(n irq.IRQ) Priority {
	return Priority(nvic.IRQPriority(uint(n)) >> prioShift)
}

// SetExceptionPriority sets the urgency of a configurable system exception
// on the same scale as interrupt priorities.
func SetExceptionPriority(e armv7m.Exception, p Priority) {
	scb.SetExceptionPriority(e, hwpri(p))
}

// ExceptionPriority returns the urgency of a configurable system exception.
func ExceptionPriority(e armv7m.Exception) Priority {
	return Priority(scb.ExceptionPriority(e) >> prioShift)
}
