package nvic

import (
	"github.com/cbiffle/etl-sub000/armv7m"
	"github.com/cbiffle/etl-sub000/debug"
)

//go:generate go run github.com/cbiffle/etl-sub000/tools/etlgo bffgen -p nvic nvic.svd

// NumIRQ is the number of external interrupt lines the register bank can
// address. How many of them exist, up to this bound, is the SoC's choice;
// the typed SoC packages narrow the range.
const NumIRQ = 496

// EnableIRQ enables external interrupt n. If n is already pending and its
// priority beats the current execution priority, its handler runs before
// the caller's next statement.
func EnableIRQ(n uint) {
	debug.Assert(n < NumIRQ, "nvic: irq out of range")
	iserStore(int(n/32), ISER(1)<<(n%32))
}

// DisableIRQ disables external interrupt n. The write completes before
// return, so no new activation of n starts afterwards; an activation
// already in progress finishes.
func DisableIRQ(n uint) {
	debug.Assert(n < NumIRQ, "nvic: irq out of range")
	icerStore(int(n/32), ICER(1)<<(n%32))
}

// ClearPendingIRQ unpends external interrupt n. A level-sensitive source
// that is still asserting re-pends it immediately.
func ClearPendingIRQ(n uint) {
	debug.Assert(n < NumIRQ, "nvic: irq out of range")
	icprStore(int(n/32), ICPR(1)<<(n%32))
}

// IRQEnabled reports whether external interrupt n is enabled.
func IRQEnabled(n uint) bool {
	debug.Assert(n < NumIRQ, "nvic: irq out of range")
	return regs.iser[n/32].Load()&(ISER(1)<<(n%32)) != 0
}

// Pending reports whether external interrupt n is pending.
func Pending(n uint) bool {
	debug.Assert(n < NumIRQ, "nvic: irq out of range")
	return regs.ispr[n/32].Load()&(ISPR(1)<<(n%32)) != 0
}

// SetIRQPriority sets the priority byte of external interrupt n, higher
// values less urgent. Only the SoC's implemented top bits stick. The other
// three priority bytes in the same word survive concurrent updates, and the
// trailing ISB makes the new priority effective before return.
func SetIRQPriority(n uint, prio uint8) {
	debug.Assert(n < NumIRQ, "nvic: irq out of range")
	regs.ipr[n/4].Update(func(v IPR) IPR { return v.WithPRI(int(n%4), prio) })
	armv7m.ISB()
}

// IRQPriority returns the priority byte of external interrupt n as the
// hardware holds it, unimplemented low bits reading as zero.
func IRQPriority(n uint) uint8 {
	debug.Assert(n < NumIRQ, "nvic: irq out of range")
	return regs.ipr[n/4].Load().PRI(int(n % 4))
}
