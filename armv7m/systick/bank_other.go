//go:build !thumb

package systick

// Hosted builds place the bank in ordinary memory, so the facade and its
// tests run anywhere. Ordinary memory does not clear COUNTFLAG on read;
// csrRead applies the side effect the hardware would.
var regs = new(registers)

func csrRead() CSR {
	for {
		old := regs.csr.Load()
		if old&COUNTFLAG == 0 || regs.csr.CompareAndSwap(old, old&^COUNTFLAG) {
			return old
		}
	}
}
