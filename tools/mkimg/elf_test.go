package mkimg

import (
	"bytes"
	"debug/elf"
	"encoding/binary"
	"maps"
	"slices"
	"testing"
)

// part is one allocated PROGBITS section of a synthetic program, with its
// own load segment so the virtual and load addresses can differ.
type part struct {
	name  string
	vaddr uint64
	paddr uint64
	data  []byte
}

// buildELF assembles a little endian ELF32 ARM executable in memory. syms
// become global absolute symbols.
func buildELF(t *testing.T, entry uint64, parts []part, syms map[string]uint64) *elf.File {
	t.Helper()

	const (
		ehdrSize = 52
		phent    = 32
		shent    = 40
		syment   = 16
	)

	shstr := []byte{0}
	shName := make(map[string]uint32)
	addShName := func(s string) {
		shName[s] = uint32(len(shstr))
		shstr = append(shstr, s...)
		shstr = append(shstr, 0)
	}
	for _, p := range parts {
		addShName(p.name)
	}
	addShName(".symtab")
	addShName(".strtab")
	addShName(".shstrtab")

	names := slices.Sorted(maps.Keys(syms))
	str := []byte{0}
	symName := make(map[string]uint32)
	for _, n := range names {
		symName[n] = uint32(len(str))
		str = append(str, n...)
		str = append(str, 0)
	}

	phoff := ehdrSize
	off := phoff + len(parts)*phent
	offs := make([]int, len(parts))
	for i, p := range parts {
		off = (off + 3) &^ 3
		offs[i] = off
		off += len(p.data)
	}
	symtabOff := (off + 3) &^ 3
	symtabSize := (1 + len(names)) * syment
	strtabOff := symtabOff + symtabSize
	shstrOff := strtabOff + len(str)
	shoff := (shstrOff + len(shstr) + 3) &^ 3
	shnum := 1 + len(parts) + 3

	var buf bytes.Buffer
	le := binary.LittleEndian
	w16 := func(v uint16) { binary.Write(&buf, le, v) }
	w32 := func(v uint32) { binary.Write(&buf, le, v) }
	padTo := func(off int) {
		buf.Write(make([]byte, off-buf.Len()))
	}

	buf.Write([]byte{0x7f, 'E', 'L', 'F', 1, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0})
	w16(uint16(elf.ET_EXEC))
	w16(uint16(elf.EM_ARM))
	w32(1)
	w32(uint32(entry))
	w32(uint32(phoff))
	w32(uint32(shoff))
	w32(0x05000000) // EABI v5
	w16(ehdrSize)
	w16(phent)
	w16(uint16(len(parts)))
	w16(shent)
	w16(uint16(shnum))
	w16(uint16(shnum - 1))

	for i, p := range parts {
		w32(uint32(elf.PT_LOAD))
		w32(uint32(offs[i]))
		w32(uint32(p.vaddr))
		w32(uint32(p.paddr))
		w32(uint32(len(p.data)))
		w32(uint32(len(p.data)))
		w32(uint32(elf.PF_R | elf.PF_X))
		w32(4)
	}
	for i, p := range parts {
		padTo(offs[i])
		buf.Write(p.data)
	}

	padTo(symtabOff)
	buf.Write(make([]byte, syment)) // null symbol
	for _, n := range names {
		w32(symName[n])
		w32(uint32(syms[n]))
		w32(0)
		buf.WriteByte(byte(elf.STB_GLOBAL)<<4 | byte(elf.STT_NOTYPE))
		buf.WriteByte(0)
		w16(uint16(elf.SHN_ABS))
	}
	buf.Write(str)
	buf.Write(shstr)

	padTo(shoff)
	shdr := func(name uint32, typ elf.SectionType, flags elf.SectionFlag, addr uint64, off, size, link, info, align, entsize int) {
		w32(name)
		w32(uint32(typ))
		w32(uint32(flags))
		w32(uint32(addr))
		w32(uint32(off))
		w32(uint32(size))
		w32(uint32(link))
		w32(uint32(info))
		w32(uint32(align))
		w32(uint32(entsize))
	}
	shdr(0, elf.SHT_NULL, 0, 0, 0, 0, 0, 0, 0, 0)
	for i, p := range parts {
		shdr(shName[p.name], elf.SHT_PROGBITS, elf.SHF_ALLOC, p.vaddr, offs[i], len(p.data), 0, 0, 4, 0)
	}
	strtabIdx := 1 + len(parts) + 1
	shdr(shName[".symtab"], elf.SHT_SYMTAB, 0, 0, symtabOff, symtabSize, strtabIdx, 1, 4, syment)
	shdr(shName[".strtab"], elf.SHT_STRTAB, 0, 0, strtabOff, len(str), 0, 0, 1, 0)
	shdr(shName[".shstrtab"], elf.SHT_STRTAB, 0, 0, shstrOff, len(shstr), 0, 0, 1, 0)

	f, err := elf.NewFile(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("synthetic elf does not parse: %v", err)
	}
	return f
}
