package systick

import "github.com/cbiffle/etl-sub000/debug"

//go:generate go run github.com/cbiffle/etl-sub000/tools/etlgo bffgen -p systick systick.svd

// StartPeriodic runs the counter off the processor clock with a period of
// cycles ticks, pending the SysTick exception on every wrap. The first
// period starts at the call.
func StartPeriodic(cycles uint32) {
	debug.Assert(cycles != 0 && cycles-1 < 1<<RELOADw, "systick: period out of range")
	regs.csr.Store(0)
	regs.rvr.Store(RVR(0).WithRELOAD(cycles - 1))
	regs.cvr.Store(0)
	regs.csr.Store(CSR(0).WithCLKSOURCE(Processor).WithTICKINT(true).WithENABLE(true))
}

// Stop halts the counter. No further SysTick exceptions pend, though one
// already pended stays pended.
func Stop() {
	regs.csr.Store(0)
}

// CountFlag reports whether the counter wrapped since the last call, and
// clears the flag.
func CountFlag() bool {
	return csrRead().COUNTFLAG()
}
