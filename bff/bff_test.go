package bff

import (
	"errors"
	"strings"
	"testing"
)

// testPeriph returns a small consistent description. The mutation cases
// below each break exactly one rule.
func testPeriph() *Periph {
	return &Periph{
		Name: "TIMER",
		Base: 0xE000_E010,
		Regs: []*Reg{
			{
				Name: "CSR", Offset: 0x0, Width: W32, Access: RW, Count: 1,
				Fields: []*Field{
					{Name: "ENABLE", High: 0, Low: 0},
					{Name: "MODE", High: 2, Low: 1, Enum: &Enum{
						Name: "Mode",
						Values: []EnumValue{
							{Name: "Off", Value: 0},
							{Name: "OneShot", Value: 1},
							{Name: "Periodic", Value: 2},
						},
					}},
				},
			},
			{
				Name: "RVR", Offset: 0x4, Width: W32, Access: RW, Count: 1,
				Fields: []*Field{
					{Name: "RELOAD", High: 23, Low: 0},
				},
			},
			{
				Name: "PRI", Offset: 0x10, Width: W32, Access: RW, Count: 2,
				Fields: []*Field{
					{Name: "SLOT", High: 31, Low: 0, Elts: 4},
				},
			},
		},
	}
}

func TestValidateAccepts(t *testing.T) {
	if err := testPeriph().Validate(); err != nil {
		t.Fatalf("consistent description rejected: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := map[string]struct {
		mutate func(*Periph)
		kind   error
		names  []string
	}{
		"HighBelowLow": {
			func(p *Periph) { p.Regs[1].Fields[0].High, p.Regs[1].Fields[0].Low = 0, 23 },
			ErrFieldRange, []string{"RVR", "RELOAD"},
		},
		"BeyondWidth": {
			func(p *Periph) { p.Regs[1].Fields[0].High = 32 },
			ErrFieldRange, []string{"RVR", "RELOAD"},
		},
		"EnumTooWide": {
			func(p *Periph) { p.Regs[0].Fields[1].Enum.Values[2].Value = 4 },
			ErrEnumWidth, []string{"CSR", "MODE", "Periodic"},
		},
		"ArrayIndivisible": {
			func(p *Periph) { p.Regs[2].Fields[0].Elts = 5 },
			ErrArrayShape, []string{"PRI", "SLOT"},
		},
		"NegativeElts": {
			func(p *Periph) { p.Regs[2].Fields[0].Elts = -1 },
			ErrArrayShape, []string{"PRI", "SLOT"},
		},
		"Misaligned": {
			func(p *Periph) { p.Regs[1].Offset = 0x6 },
			ErrAlign, []string{"RVR"},
		},
		"BadWidth": {
			func(p *Periph) { p.Regs[1].Width = 24 },
			ErrWidth, []string{"RVR"},
		},
		"ZeroCount": {
			func(p *Periph) { p.Regs[2].Count = 0 },
			ErrArrayShape, []string{"PRI"},
		},
		"DuplicateRegister": {
			func(p *Periph) { p.Regs[1].Name = "CSR" },
			ErrRedefined, []string{"CSR"},
		},
		"DuplicateField": {
			func(p *Periph) { p.Regs[0].Fields[1].Name = "ENABLE" },
			ErrRedefined, []string{"CSR", "ENABLE"},
		},
		"CrossRegisterField": {
			func(p *Periph) { p.Regs[1].Fields[0].Name = "ENABLE" },
			ErrRedefined, []string{"RVR", "CSR", "ENABLE"},
		},
		"FieldMetaCollision": {
			func(p *Periph) { p.Regs[1].Fields[0].Name = "SLOTc" },
			ErrRedefined, []string{"SLOTc", "RVR"},
		},
		"RegisterFieldClash": {
			func(p *Periph) { p.Regs[0].Fields[0].Name = "RVR" },
			ErrRedefined, []string{"CSR", "RVR"},
		},
		"EnumConflict": {
			func(p *Periph) {
				p.Regs[1].Fields = append(p.Regs[1].Fields, &Field{
					Name: "MODEB", High: 31, Low: 30,
					Enum: &Enum{Name: "Mode", Values: []EnumValue{
						{Name: "Off", Value: 0},
						{Name: "Single", Value: 1},
					}},
				})
			},
			ErrRedefined, []string{"Mode"},
		},
		"EnumeratorClash": {
			func(p *Periph) {
				p.Regs[1].Fields = append(p.Regs[1].Fields, &Field{
					Name: "GATE", High: 29, Low: 28,
					Enum: &Enum{Name: "Gate", Values: []EnumValue{
						{Name: "Off", Value: 0},
						{Name: "On", Value: 1},
					}},
				})
			},
			ErrRedefined, []string{"Off", "Mode"},
		},
		"Overlap": {
			func(p *Periph) { p.Regs[2].Offset = 0x4 },
			ErrOverlap, []string{"PRI"},
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			p := testPeriph()
			tc.mutate(p)
			err := p.Validate()
			if err == nil {
				t.Fatal("inconsistent description accepted")
			}
			if !errors.Is(err, tc.kind) {
				t.Fatalf("expected %v, got %v", tc.kind, err)
			}
			for _, n := range tc.names {
				if !strings.Contains(err.Error(), n) {
					t.Errorf("message %q does not name %q", err, n)
				}
			}
		})
	}
}

// Two fields may share an enum by spelling out the same name with the same
// enumerators; only one type is emitted for them.
func TestValidateSharedEnum(t *testing.T) {
	p := testPeriph()
	mode := *p.Regs[0].Fields[1].Enum
	p.Regs[1].Fields = append(p.Regs[1].Fields, &Field{
		Name: "MODEB", High: 31, Low: 30, Enum: &mode,
	})
	if err := p.Validate(); err != nil {
		t.Fatalf("shared enum rejected: %v", err)
	}
}

func TestValidateReportsAll(t *testing.T) {
	p := testPeriph()
	p.Regs[1].Fields[0].High = 32
	p.Regs[0].Fields[1].Enum.Values[2].Value = 4
	err := p.Validate()
	if !errors.Is(err, ErrFieldRange) || !errors.Is(err, ErrEnumWidth) {
		t.Fatalf("expected both violations reported, got %v", err)
	}
}

func TestFieldMeta(t *testing.T) {
	f := &Field{Name: "TEX", High: 21, Low: 19}
	if f.Bits() != 3 || f.LowMask() != 0x7 || f.Mask() != 0x7<<19 {
		t.Fatalf("scalar meta: bits=%d low_mask=%#x mask=%#x", f.Bits(), f.LowMask(), f.Mask())
	}

	a := &Field{Name: "PRI", High: 31, Low: 0, Elts: 4}
	if a.EltBits() != 8 || a.EltLowMask() != 0xff {
		t.Fatalf("array meta: elt_bits=%d elt_mask=%#x", a.EltBits(), a.EltLowMask())
	}
	if a.LowBitOf(1) != 8 || a.MaskOf(2) != 0xff<<16 {
		t.Fatalf("array element meta: low(1)=%d mask(2)=%#x", a.LowBitOf(1), a.MaskOf(2))
	}

	full := &Field{Name: "ALL", High: 31, Low: 0}
	if full.LowMask() != 0xffff_ffff {
		t.Fatalf("full width mask = %#x", full.LowMask())
	}
}

func TestLowMask(t *testing.T) {
	if m := LowMask[uint8](3); m != 0x7 {
		t.Errorf("LowMask[uint8](3) = %#x", m)
	}
	if m := LowMask[uint8](8); m != 0xff {
		t.Errorf("LowMask[uint8](8) = %#x", m)
	}
	if m := LowMask[uint32](32); m != ^uint32(0) {
		t.Errorf("LowMask[uint32](32) = %#x", m)
	}
	if m := LowMask[uint64](64); m != ^uint64(0) {
		t.Errorf("LowMask[uint64](64) = %#x", m)
	}
	if m := Mask[uint32](19, 3); m != 0x38_0000 {
		t.Errorf("Mask[uint32](19, 3) = %#x", m)
	}
}
