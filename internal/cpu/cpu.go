// Package cpu models the ARMv7-M special registers, barrier issuance and
// wakeup events behind the armv7m package. Hosted builds and the test suite
// run against this model; an embedded toolchain lowers the armv7m wrappers
// to the architecture instructions instead.
package cpu

import "sync/atomic"

var (
	primask atomic.Bool
	basepri atomic.Uint32
	control atomic.Uint32
	psp     atomic.Uint32
	msp     atomic.Uint32
	ipsr    atomic.Uint32

	dsbCount atomic.Uint64
	dmbCount atomic.Uint64
	isbCount atomic.Uint64

	events = make(chan struct{}, 1)
)

// Reset restores the state a core has out of reset. Called by the test main
// wrapper between test binaries.
func Reset() {
	primask.Store(false)
	basepri.Store(0)
	control.Store(0)
	psp.Store(0)
	msp.Store(0)
	ipsr.Store(0)
	dsbCount.Store(0)
	dmbCount.Store(0)
	isbCount.Store(0)
	select {
	case <-events:
	default:
	}
}

// The barrier functions perform an atomic read-modify-write, a full memory
// fence on every Go platform, and record the issue so tests can observe it.

func DSB() { dsbCount.Add(1) }
func DMB() { dmbCount.Add(1) }
func ISB() { isbCount.Add(1) }

func DSBCount() uint64 { return dsbCount.Load() }
func DMBCount() uint64 { return dmbCount.Load() }
func ISBCount() uint64 { return isbCount.Load() }

func SetPRIMASK(masked bool) { primask.Store(masked) }
func PRIMASK() bool          { return primask.Load() }

func SetBASEPRI(prio uint8) { basepri.Store(uint32(prio)) }
func BASEPRI() uint8        { return uint8(basepri.Load()) }

func SetCONTROL(v uint32) { control.Store(v) }
func CONTROL() uint32     { return control.Load() }

func SetPSP(sp uint32) { psp.Store(sp) }
func PSP() uint32      { return psp.Load() }

func SetMSP(sp uint32) { msp.Store(sp) }
func MSP() uint32      { return msp.Load() }

// SetIPSR is used by tests to simulate execution inside a handler.
func SetIPSR(exc uint32) { ipsr.Store(exc) }
func IPSR() uint32       { return ipsr.Load() }

// Event wakes a core waiting in WFI. Pending events are not queued, like
// the architecture's single event register.
func Event() {
	select {
	case events <- struct{}{}:
	default:
	}
}

// WFI blocks until an event arrives.
func WFI() { <-events }
