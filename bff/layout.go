package bff

import (
	"cmp"
	"slices"
)

// Slot is one element of a peripheral memory map: a register when Reg is
// non-nil, a reserved hole otherwise.
type Slot struct {
	Reg    *Reg
	Offset uint32
	Bytes  uint32
}

// Layout returns the peripheral's slots in ascending offset order with
// reserved holes materialized, plus the total size of the map. Laying the
// slots end to end reproduces the hardware layout exactly, so a bank of
// this shape placed at the base address aliases the device.
func (p *Periph) Layout() ([]Slot, uint32, error) {
	regs := slices.Clone(p.Regs)
	slices.SortStableFunc(regs, func(a, b *Reg) int {
		return cmp.Compare(a.Offset, b.Offset)
	})
	var slots []Slot
	var off uint32
	for _, r := range regs {
		if r.Offset < off {
			return nil, 0, p.checkErr(r, nil, ErrOverlap, "offset %#x overlaps previous slot ending at %#x", r.Offset, off)
		}
		if gap := r.Offset - off; gap > 0 {
			slots = append(slots, Slot{Offset: off, Bytes: gap})
		}
		slots = append(slots, Slot{Reg: r, Offset: r.Offset, Bytes: r.Size()})
		off = r.Offset + r.Size()
	}
	return slots, off, nil
}
