//go:build !thumb

package nvic

// Hosted builds place the bank in ordinary memory, so the facade and its
// tests run anywhere. Ordinary memory has no write-one-to-act behavior;
// the helpers below apply the effect the hardware would. The enabled set
// lives in the iser slots and the pending set in the ispr slots, which is
// where both are read back on hardware too.
var regs = new(registers)

func iserStore(i int, bits ISER) {
	regs.iser[i].Update(func(v ISER) ISER { return v | bits })
}

func icerStore(i int, bits ICER) {
	regs.iser[i].Update(func(v ISER) ISER { return v &^ ISER(bits) })
}

func icprStore(i int, bits ICPR) {
	regs.ispr[i].Update(func(v ISPR) ISPR { return v &^ ISPR(bits) })
}
