package mkimg

import (
	"debug/elf"
	"fmt"

	"github.com/cbiffle/etl-sub000/armv7m"
)

// check verifies the boot contract of a linked program: the entry point and
// vector table head the hardware dereferences at reset, the presence of
// every exception handler, and the ordering of the symbols the reset handler
// relocates by. All violations are reported, not just the first.
func check(f *elf.File, img *image, irqs int) []error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	syms, err := f.Symbols()
	if err != nil {
		return []error{fmt.Errorf("symbols: %w", err)}
	}
	byName := make(map[string]elf.Symbol, len(syms))
	for _, s := range syms {
		byName[s.Name] = s
	}
	lookup := func(name string) (uint64, bool) {
		s, ok := byName[name]
		if !ok {
			fail("symbol %s not defined", name)
		}
		return s.Value, ok
	}

	// The core fetches MSP from slot 0 and the entry point from slot 1.
	// Thumb code addresses carry bit 0 set, so compare modulo that bit.
	reset, haveReset := lookup(armv7m.SymResetHandler)
	if haveReset && f.Entry|1 != reset|1 {
		fail("entry point %#x is not %s (%#x)", f.Entry, armv7m.SymResetHandler, reset)
	}
	stackTop, haveStack := lookup(armv7m.SymInitialStackTop)

	if slot0, ok := img.word(img.addr, f.ByteOrder); !ok {
		fail("image too short for a vector table")
	} else {
		if haveStack && uint64(slot0) != stackTop {
			fail("vector slot 0 holds %#x, want %s (%#x)",
				slot0, armv7m.SymInitialStackTop, stackTop)
		}
		slot1, _ := img.word(img.addr+4, f.ByteOrder)
		if haveReset && uint64(slot1) != reset|1 {
			fail("vector slot 1 holds %#x, want %s|1 (%#x)",
				slot1, armv7m.SymResetHandler, reset|1)
		}
	}

	// Every architectural handler must be defined; there are no weak
	// defaults to fall back on.
	for e := armv7m.NMI; e < armv7m.NumExceptions; e++ {
		if e.Reserved() {
			continue
		}
		lookup(e.HandlerSymbol())
	}

	// Bounds the reset handler copies and zeroes between.
	lookup(armv7m.SymEtext)
	data, okData := lookup(armv7m.SymData)
	edata, okEdata := lookup(armv7m.SymEdata)
	ebss, okEbss := lookup(armv7m.SymEbss)
	if okData && okEdata && data > edata {
		fail("%s (%#x) above %s (%#x)", armv7m.SymData, data, armv7m.SymEdata, edata)
	}
	if okEdata && okEbss && edata > ebss {
		fail("%s (%#x) above %s (%#x)", armv7m.SymEdata, edata, armv7m.SymEbss, ebss)
	}

	pis, okPIS := lookup(armv7m.SymPreinitArrayStart)
	pie, okPIE := lookup(armv7m.SymPreinitArrayEnd)
	if okPIS && okPIE && pis > pie {
		fail("%s (%#x) above %s (%#x)", armv7m.SymPreinitArrayStart, pis, armv7m.SymPreinitArrayEnd, pie)
	}
	is, okIS := lookup(armv7m.SymInitArrayStart)
	ie, okIE := lookup(armv7m.SymInitArrayEnd)
	if okIS && okIE && is > ie {
		fail("%s (%#x) above %s (%#x)", armv7m.SymInitArrayStart, is, armv7m.SymInitArrayEnd, ie)
	}

	if irqs > 0 {
		if need := (armv7m.NumExceptions + irqs) * 4; img.size() < need {
			fail("image is %d bytes, a vector table with %d interrupts needs %d",
				img.size(), irqs, need)
		}
	}
	return errs
}
