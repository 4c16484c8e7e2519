package mkimg

import (
	"bytes"
	"cmp"
	"debug/elf"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"slices"
)

// image holds the loadable bytes of a linked program, each section at its
// load address.
type image struct {
	addr     uint64 // load address of the first byte
	sections []section
}

// section is one allocated PROGBITS section. addr is the load address, which
// for initialized data differs from the virtual address: the bytes live in
// flash until the reset handler copies them to RAM.
type section struct {
	name string
	addr uint64
	data []byte
}

// extract collects the allocated PROGBITS sections of f in load address
// order. NOBITS sections carry no image bytes and are skipped; the reset
// handler zeroes them at boot.
func extract(f *elf.File) (*image, error) {
	var secs []section
	for _, s := range f.Sections {
		if s.Type != elf.SHT_PROGBITS || s.Flags&elf.SHF_ALLOC == 0 {
			continue
		}
		data, err := s.Data()
		if err != nil {
			return nil, fmt.Errorf("section %s: %w", s.Name, err)
		}
		if len(data) == 0 {
			continue
		}
		secs = append(secs, section{s.Name, loadAddr(f, s), data})
	}
	if len(secs) == 0 {
		return nil, errors.New("no loadable sections")
	}
	slices.SortFunc(secs, func(a, b section) int {
		return cmp.Compare(a.addr, b.addr)
	})
	for i := 1; i < len(secs); i++ {
		prev := &secs[i-1]
		if secs[i].addr < prev.addr+uint64(len(prev.data)) {
			return nil, fmt.Errorf("sections %s and %s overlap", prev.name, secs[i].name)
		}
	}
	return &image{secs[0].addr, secs}, nil
}

// loadAddr maps a section's file offset through the program header that
// carries it. The section header only records the virtual address.
func loadAddr(f *elf.File, s *elf.Section) uint64 {
	for _, p := range f.Progs {
		if p.Type != elf.PT_LOAD {
			continue
		}
		if p.Off <= s.Offset && s.Offset < p.Off+p.Filesz {
			return p.Paddr + s.Offset - p.Off
		}
	}
	return s.Addr
}

// size returns the image span in bytes, gaps included.
func (img *image) size() int {
	last := &img.sections[len(img.sections)-1]
	return int(last.addr + uint64(len(last.data)) - img.addr)
}

// flatten writes the image bytes end to end, filling section gaps with the
// erased flash value 0xFF.
func (img *image) flatten(w io.Writer) error {
	addr := img.addr
	for i := range img.sections {
		s := &img.sections[i]
		if gap := int(s.addr - addr); gap > 0 {
			if _, err := w.Write(bytes.Repeat([]byte{0xff}, gap)); err != nil {
				return err
			}
		}
		if _, err := w.Write(s.data); err != nil {
			return err
		}
		addr = s.addr + uint64(len(s.data))
	}
	return nil
}

// word reads the image word at the given load address.
func (img *image) word(addr uint64, order binary.ByteOrder) (uint32, bool) {
	for i := range img.sections {
		s := &img.sections[i]
		if addr >= s.addr && addr+4 <= s.addr+uint64(len(s.data)) {
			return order.Uint32(s.data[addr-s.addr:]), true
		}
	}
	return 0, false
}
