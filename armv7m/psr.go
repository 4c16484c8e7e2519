package armv7m

import "github.com/cbiffle/etl-sub000/internal/cpu"

// DisableInterrupts sets PRIMASK, masking all configurable-priority
// exceptions, and returns the previous mask state. Pair with
// RestoreInterrupts, usually through defer, so every exit path restores it:
//
//	defer armv7m.RestoreInterrupts(armv7m.DisableInterrupts())
func DisableInterrupts() (prior bool) {
	prior = cpu.PRIMASK()
	cpu.SetPRIMASK(true)
	return prior
}

// EnableInterrupts clears PRIMASK unconditionally.
func EnableInterrupts() { cpu.SetPRIMASK(false) }

// RestoreInterrupts writes the PRIMASK state previously returned by
// DisableInterrupts.
func RestoreInterrupts(prior bool) { cpu.SetPRIMASK(prior) }

// PRIMASK reads the exception mask bit.
func PRIMASK() bool { return cpu.PRIMASK() }

// SetBASEPRI masks exceptions of priority prio and below; zero disables the
// mask.
func SetBASEPRI(prio uint8) { cpu.SetBASEPRI(prio) }

// BASEPRI reads the base priority mask.
func BASEPRI() uint8 { return cpu.BASEPRI() }

// SetCONTROL writes the CONTROL register. The architecture requires an ISB
// afterwards before the new stack or privilege configuration is relied on;
// the caller inserts it.
func SetCONTROL(v uint32) { cpu.SetCONTROL(v) }

// CONTROL reads the CONTROL register.
func CONTROL() uint32 { return cpu.CONTROL() }

// SetPSP writes the process stack pointer.
func SetPSP(sp uint32) { cpu.SetPSP(sp) }

// PSP reads the process stack pointer.
func PSP() uint32 { return cpu.PSP() }

// SetMSP writes the main stack pointer.
func SetMSP(sp uint32) { cpu.SetMSP(sp) }

// MSP reads the main stack pointer.
func MSP() uint32 { return cpu.MSP() }

// IPSR reads the number of the exception being serviced, zero in thread
// mode.
func IPSR() uint32 { return cpu.IPSR() }
