//go:build thumb

package nvic

import "unsafe"

// The interrupt controller of the running core.
var regs = (*registers)(unsafe.Pointer(base))

// The set-enable, clear-enable and clear-pending registers act only on the
// bits written as one, so a plain store of the bit mask is a complete
// read-modify-write of a single interrupt's state.

func iserStore(i int, bits ISER) { regs.iser[i].Store(bits) }
func icerStore(i int, bits ICER) { regs.icer[i].Store(bits) }
func icprStore(i int, bits ICPR) { regs.icpr[i].Store(bits) }
