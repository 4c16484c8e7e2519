//go:build thumb

package systick

import "unsafe"

// The system timer of the running core.
var regs = (*registers)(unsafe.Pointer(base))

// Reading CSR clears COUNTFLAG as a side effect of the load itself.
func csrRead() CSR { return regs.csr.Load() }
