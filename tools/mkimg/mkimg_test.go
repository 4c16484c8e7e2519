package mkimg

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/cbiffle/etl-sub000/armv7m"
)

const (
	flashBase = 0x0800_0000
	ramBase   = 0x2000_0000
	stackTop  = 0x2002_0000
)

// goodProgram returns the pieces of a well formed linked program: a text
// section that starts with the vector table, a data section whose load
// address sits in flash right after it, and the full symbol contract.
// Tests mutate the result to provoke individual check failures.
func goodProgram() (entry uint64, parts []part, syms map[string]uint64) {
	reset := uint64(flashBase + 0x41) // thumb bit set
	text := make([]byte, 0x200)
	le := binary.LittleEndian
	le.PutUint32(text[0:], stackTop)
	le.PutUint32(text[4:], uint32(reset))

	syms = map[string]uint64{
		armv7m.SymInitialStackTop: stackTop,
		armv7m.SymResetHandler:    reset,
	}
	haddr := uint64(flashBase + 0x101)
	for e := armv7m.NMI; e < armv7m.NumExceptions; e++ {
		if e.Reserved() {
			continue
		}
		syms[e.HandlerSymbol()] = haddr
		le.PutUint32(text[4*int(e):], uint32(haddr))
		haddr += 0x20
	}

	data := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	etext := uint64(flashBase) + uint64(len(text))
	syms[armv7m.SymEtext] = etext
	syms[armv7m.SymData] = ramBase
	syms[armv7m.SymEdata] = ramBase + uint64(len(data))
	syms[armv7m.SymEbss] = ramBase + uint64(len(data)) + 0x40
	syms[armv7m.SymPreinitArrayStart] = etext
	syms[armv7m.SymPreinitArrayEnd] = etext
	syms[armv7m.SymInitArrayStart] = etext
	syms[armv7m.SymInitArrayEnd] = etext

	parts = []part{
		{".text", flashBase, flashBase, text},
		{".data", ramBase, etext, data},
	}
	return reset, parts, syms
}

func TestExtract(t *testing.T) {
	entry, parts, syms := goodProgram()
	img, err := extract(buildELF(t, entry, parts, syms))
	if err != nil {
		t.Fatal(err)
	}
	if img.addr != flashBase {
		t.Errorf("image starts at %#x, want %#x", img.addr, flashBase)
	}
	if len(img.sections) != 2 {
		t.Fatalf("got %d sections, want 2", len(img.sections))
	}
	// The data section must land at its flash load address, not its RAM
	// virtual address.
	if want := uint64(flashBase + 0x200); img.sections[1].addr != want {
		t.Errorf(".data at %#x, want load address %#x", img.sections[1].addr, want)
	}
	if want := 0x200 + 8; img.size() != want {
		t.Errorf("size() = %d, want %d", img.size(), want)
	}
}

func TestExtractRejectsOverlap(t *testing.T) {
	entry, parts, syms := goodProgram()
	parts[1].paddr = flashBase + 4
	if _, err := extract(buildELF(t, entry, parts, syms)); err == nil {
		t.Error("overlapping sections not rejected")
	}
}

func TestFlattenPadsGaps(t *testing.T) {
	img := &image{addr: 0x100, sections: []section{
		{".a", 0x100, []byte{1, 2, 3, 4}},
		{".b", 0x10a, []byte{5, 6}},
	}}
	var buf bytes.Buffer
	if err := img.flatten(&buf); err != nil {
		t.Fatal(err)
	}
	want := []byte{1, 2, 3, 4, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 5, 6}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("flatten = % x, want % x", buf.Bytes(), want)
	}
	if img.size() != len(want) {
		t.Errorf("size() = %d, want %d", img.size(), len(want))
	}
}

func TestCheckGoodProgram(t *testing.T) {
	entry, parts, syms := goodProgram()
	f := buildELF(t, entry, parts, syms)
	img, err := extract(f)
	if err != nil {
		t.Fatal(err)
	}
	for _, err := range check(f, img, 82) {
		t.Error(err)
	}
}

func TestCheckViolations(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(entry *uint64, parts []part, syms map[string]uint64)
		irqs   int
		want   string
	}{
		{
			"WrongEntry",
			func(entry *uint64, _ []part, _ map[string]uint64) { *entry += 8 },
			0, "entry point",
		},
		{
			"MissingHandler",
			func(_ *uint64, _ []part, syms map[string]uint64) {
				delete(syms, armv7m.NMI.HandlerSymbol())
			},
			0, armv7m.NMI.HandlerSymbol(),
		},
		{
			"WrongStackSlot",
			func(_ *uint64, parts []part, _ map[string]uint64) {
				binary.LittleEndian.PutUint32(parts[0].data, 0xdeadbeef)
			},
			0, "vector slot 0",
		},
		{
			"WrongResetSlot",
			func(_ *uint64, parts []part, _ map[string]uint64) {
				binary.LittleEndian.PutUint32(parts[0].data[4:], flashBase)
			},
			0, "vector slot 1",
		},
		{
			"DataAboveEdata",
			func(_ *uint64, _ []part, syms map[string]uint64) {
				syms[armv7m.SymData] = syms[armv7m.SymEdata] + 4
			},
			0, armv7m.SymData,
		},
		{
			"MissingEbss",
			func(_ *uint64, _ []part, syms map[string]uint64) {
				delete(syms, armv7m.SymEbss)
			},
			0, armv7m.SymEbss,
		},
		{
			"TableTooSmall",
			func(_ *uint64, _ []part, _ map[string]uint64) {},
			200, "interrupts",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			entry, parts, syms := goodProgram()
			tc.mutate(&entry, parts, syms)
			f := buildELF(t, entry, parts, syms)
			img, err := extract(f)
			if err != nil {
				t.Fatal(err)
			}
			errs := check(f, img, tc.irqs)
			for _, err := range errs {
				if strings.Contains(err.Error(), tc.want) {
					return
				}
			}
			t.Errorf("no check error mentions %q in %q", tc.want, errs)
		})
	}
}

func TestUF2Output(t *testing.T) {
	data := make([]byte, 600)
	for i := range data {
		data[i] = byte(i)
	}
	img := &image{addr: flashBase, sections: []section{{".text", flashBase, data}}}

	var buf bytes.Buffer
	if err := writeImage(&buf, "uf2", img); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 3*512 {
		t.Fatalf("wrote %d bytes, want %d", buf.Len(), 3*512)
	}
	var got []byte
	for i := 0; i < 3; i++ {
		var b uf2Block
		r := bytes.NewReader(buf.Bytes()[i*512 : (i+1)*512])
		if err := binary.Read(r, binary.LittleEndian, &b); err != nil {
			t.Fatal(err)
		}
		if b.Magic0 != 0x0a324655 || b.Magic1 != 0x9e5d5157 || b.Magic2 != 0x0ab16f30 {
			t.Fatalf("block %d: bad magic %#x %#x %#x", i, b.Magic0, b.Magic1, b.Magic2)
		}
		if b.Flags != uf2FamilyIDPresent || b.Family != uf2FamilySTM32F4 {
			t.Errorf("block %d: flags %#x family %#x", i, b.Flags, b.Family)
		}
		if b.Seq != uint32(i) || b.Total != 3 {
			t.Errorf("block %d: seq %d of %d", i, b.Seq, b.Total)
		}
		if want := uint32(flashBase + i*256); b.Addr != want {
			t.Errorf("block %d: addr %#x, want %#x", i, b.Addr, want)
		}
		if b.Len != 256 {
			t.Errorf("block %d: len %d, want 256", i, b.Len)
		}
		got = append(got, b.Data[:b.Len]...)
	}
	if !bytes.Equal(got[:len(data)], data) {
		t.Error("payload does not round trip")
	}
	for _, b := range got[len(data):] {
		if b != 0 {
			t.Error("final block not zero padded")
			break
		}
	}
}

// ihexRecord decodes one record line and verifies its checksum.
func ihexRecord(t *testing.T, line string) (typ byte, addr uint16, data []byte) {
	t.Helper()
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, ":") {
		t.Fatalf("not a record: %q", line)
	}
	raw, err := hex.DecodeString(line[1:])
	if err != nil {
		t.Fatalf("record %q: %v", line, err)
	}
	var sum byte
	for _, b := range raw {
		sum += b
	}
	if sum != 0 {
		t.Errorf("record %q: bad checksum", line)
	}
	n := int(raw[0])
	return raw[3], uint16(raw[1])<<8 | uint16(raw[2]), raw[4 : 4+n]
}

func TestIntelHexOutput(t *testing.T) {
	entry, parts, syms := goodProgram()
	img, err := extract(buildELF(t, entry, parts, syms))
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := writeImage(&buf, "ihex", img); err != nil {
		t.Fatal(err)
	}

	var dataBytes, haveELA, haveEOF = 0, false, false
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		typ, _, data := ihexRecord(t, line)
		switch typ {
		case 0:
			dataBytes += len(data)
		case 4:
			if len(data) == 2 && data[0] == 0x08 && data[1] == 0x00 {
				haveELA = true
			}
		case 1:
			haveEOF = true
		}
	}
	if dataBytes != img.size() {
		t.Errorf("records carry %d data bytes, image has %d", dataBytes, img.size())
	}
	if !haveELA {
		t.Error("no extended linear address record for 0x0800")
	}
	if !haveEOF {
		t.Error("no end of file record")
	}
}
