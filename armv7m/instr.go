package armv7m

import (
	"github.com/cbiffle/etl-sub000/debug"
	"github.com/cbiffle/etl-sub000/internal/cpu"
)

// WaitForInterrupt idles the core until the next exception fires. It is the
// only suspending operation in this package.
func WaitForInterrupt() { cpu.WFI() }

// DSB, the data synchronization barrier, completes all prior memory accesses
// before the next instruction executes. Required after writing a system
// control register whose effect the following code depends on.
func DSB() { cpu.DSB() }

// DMB, the data memory barrier, orders all prior memory accesses before all
// subsequent ones. Use between a producer store and a consumer load in a
// cross-handler protocol.
func DMB() { cpu.DMB() }

// ISB, the instruction synchronization barrier, refetches the pipeline so
// that instructions after the barrier observe prior context changes.
// Mandatory after changing memory permissions, interrupt priorities, branch
// prediction or cache settings. An ISB does not imply a data barrier.
func ISB() { cpu.ISB() }

// Usat shifts v left (shift > 0) or arithmetically right (shift < 0), then
// saturates the signed result into [0, 2^bits-1]. The operand order mirrors
// the USAT instruction, whose immediate ranges bound bits and shift.
func Usat(v uint32, bits uint, shift int) uint32 {
	debug.Assert(bits <= 31, "usat: bit position out of range")
	if shift >= 0 {
		debug.Assert(shift <= 31, "usat: left shift out of range")
	} else {
		debug.Assert(-shift >= 1 && -shift <= 31, "usat: right shift out of range")
	}

	x := int64(int32(v))
	if shift >= 0 {
		x <<= uint(shift)
	} else {
		x >>= uint(-shift)
	}
	max := int64(1)<<bits - 1
	if x < 0 {
		return 0
	}
	if x > max {
		return uint32(max)
	}
	return uint32(x)
}
