package scb

import (
	"github.com/cbiffle/etl-sub000/armv7m"
	"github.com/cbiffle/etl-sub000/debug"
)

//go:generate go run github.com/cbiffle/etl-sub000/tools/etlgo bffgen -p scb scs.svd

// vectKey must be in the top halfword of every AIRCR write for the
// hardware to accept it.
const vectKey = 0x05FA

// EnableFaults routes MemManage, BusFault and UsageFault to their own
// handlers. Without it all three escalate to HardFault, which on most
// systems is a reset. The trailing ISB makes the routing effective before
// return.
func EnableFaults() {
	regs.shcsr.Update(func(v SHCSR) SHCSR {
		return v | MEMFAULTENA | BUSFAULTENA | USGFAULTENA
	})
	armv7m.ISB()
}

// SetExceptionPriority sets the priority byte of a configurable system
// exception, higher values less urgent. Only the SoC's implemented top
// bits stick. The other priority bytes in the same word survive concurrent
// updates.
func SetExceptionPriority(e armv7m.Exception, prio uint8) {
	debug.Assert(e.Configurable(), "scb: priority not configurable")
	i := int(e - armv7m.MemManageFault)
	regs.shpr[i/4].Update(func(v SHPR) SHPR { return v.WithPRI(i%4, prio) })
	armv7m.ISB()
}

// ExceptionPriority returns the priority byte of a configurable system
// exception as the hardware holds it.
func ExceptionPriority(e armv7m.Exception) uint8 {
	debug.Assert(e.Configurable(), "scb: priority not configurable")
	i := int(e - armv7m.MemManageFault)
	return regs.shpr[i/4].Load().PRI(i % 4)
}

// SetVTOR points the core at a relocated vector table, typically after the
// table has been copied to RAM. The table must keep the architectural
// alignment, 128 bytes for a core with the full complement of interrupt
// inputs.
func SetVTOR(addr uintptr) {
	debug.Assert(addr&127 == 0, "scb: vector table misaligned")
	regs.vtor.Store(VTOR(addr))
	armv7m.DSB()
}

// RequestSystemReset asks the SoC reset controller to reset the system.
// The reset is asynchronous; the caller keeps executing until it lands and
// should be prepared to do so idly.
func RequestSystemReset() {
	armv7m.DSB()
	regs.aircr.Store(AIRCR(0).WithVECTKEY(vectKey).WithSYSRESETREQ(true))
	armv7m.DSB()
}
