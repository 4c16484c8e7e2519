package bffgen

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"strings"

	"github.com/cbiffle/etl-sub000/bff"
)

const mmioImport = "github.com/cbiffle/etl-sub000/mmio"

// Config states how to expand one peripheral.
type Config struct {
	Package string // package clause, default lowercased peripheral name
	Base    uint64 // base address override, 0 keeps the description's
}

// Gen expands a validated description into Go source: the register bank
// struct, one value type per register, field mask constants and field
// accessor methods. The emitted bank mirrors the hardware layout exactly,
// reserved holes included, so placing it at the base address aliases the
// device.
func Gen(p *bff.Periph, cfg Config) ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	slots, _, err := p.Layout()
	if err != nil {
		return nil, err
	}
	base := p.Base
	if cfg.Base != 0 {
		base = cfg.Base
	}
	pkg := cfg.Package
	if pkg == "" {
		pkg = strings.ToLower(p.Name)
	}

	w := new(bytes.Buffer)
	fmt.Fprintln(w, "// Code generated by bffgen; DO NOT EDIT.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "// Package", pkg, "provides access to the registers of the", p.Name, "peripheral.")
	fmt.Fprintln(w, "//")
	fmt.Fprintln(w, "// Instances:")
	fmt.Fprintf(w, "//  %s  0x%08X", p.Name, base)
	if p.Description != "" {
		fmt.Fprintf(w, "  %s", p.Description)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "//")
	fmt.Fprintln(w, "// Registers:")
	for _, s := range slots {
		if s.Reg == nil {
			continue
		}
		r := s.Reg
		name := r.Name
		if r.Count > 1 {
			name = fmt.Sprintf("%s[%d]", name, r.Count)
		}
		fmt.Fprintf(w, "//  0x%03X %2d  %s", s.Offset, r.Width, name)
		if r.Description != "" {
			fmt.Fprintf(w, "  %s", r.Description)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, "package", pkg)
	fmt.Fprintln(w)
	if len(p.Regs) > 0 {
		fmt.Fprintf(w, "import %q\n", mmioImport)
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "const base uintptr = 0x%08X\n", base)

	genBank(w, slots)
	enums := make(map[string]bool)
	for _, s := range slots {
		if s.Reg != nil {
			genReg(w, s.Reg, enums)
		}
	}

	src, err := format.Source(w.Bytes())
	if err != nil {
		return nil, fmt.Errorf("bffgen: malformed output for %s: %w", p.Name, err)
	}
	return src, nil
}

// genBank emits the unexported bank struct, one field per slot in offset
// order with reserved holes as padding.
func genBank(w *bytes.Buffer, slots []bff.Slot) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "// registers is the register bank. Fields are laid out end to end, so the")
	fmt.Fprintln(w, "// struct reproduces the hardware memory map.")
	fmt.Fprintln(w, "type registers struct {")
	for _, s := range slots {
		if s.Reg == nil {
			if s.Bytes%4 == 0 {
				fmt.Fprintf(w, "\t_ [%d]uint32\n", s.Bytes/4)
			} else {
				fmt.Fprintf(w, "\t_ [%d]byte\n", s.Bytes)
			}
			continue
		}
		r := s.Reg
		cell := cellType(r)
		if r.Count > 1 {
			cell = fmt.Sprintf("[%d]%s", r.Count, cell)
		}
		fmt.Fprintf(w, "\t%s %s\n", bankField(r.Name), cell)
	}
	fmt.Fprintln(w, "}")
}

func genReg(w *bytes.Buffer, r *bff.Reg, enums map[string]bool) {
	fmt.Fprintln(w)
	if r.Description != "" {
		fmt.Fprintf(w, "// %s: %s\n", r.Name, r.Description)
	}
	fmt.Fprintf(w, "type %s %s\n", r.Name, regBase(r.Width))

	for _, f := range r.Fields {
		genField(w, r, f)
		if f.Enum != nil && !enums[f.Enum.Name] {
			enums[f.Enum.Name] = true
			genEnum(w, f)
		}
	}
	for _, f := range r.Fields {
		genAccessors(w, r, f)
	}
}

// genField emits the metadata constants of one field: the in-place mask
// under the field's own name, plus low bit (n), bit count (w) and for array
// fields element count (c) and element width (e).
func genField(w *bytes.Buffer, r *bff.Reg, f *bff.Field) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "const (")
	fmt.Fprintf(w, "\t%s %s = 0x%X << %d", f.Name, r.Name, f.LowMask(), f.Low)
	if f.Description != "" {
		fmt.Fprintf(w, " //+ %s", f.Description)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "\t%sn = %d\n", f.Name, f.Low)
	fmt.Fprintf(w, "\t%sw = %d\n", f.Name, f.Bits())
	if f.Elts > 0 {
		fmt.Fprintf(w, "\t%sc = %d\n", f.Name, f.Elts)
		fmt.Fprintf(w, "\t%se = %d\n", f.Name, f.EltBits())
	}
	fmt.Fprintln(w, ")")
	if f.Elts > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "// %sBit returns the low bit of element i of the %s field.\n", f.Name, f.Name)
		fmt.Fprintf(w, "func %sBit(i int) int { return %sn + i*%se }\n", f.Name, f.Name, f.Name)
		fmt.Fprintln(w)
		fmt.Fprintf(w, "// %sMask returns the mask of element i of the %s field.\n", f.Name, f.Name)
		fmt.Fprintf(w, "func %sMask(i int) %s { return (%s(1)<<%se - 1) << %sBit(i) }\n",
			f.Name, r.Name, r.Name, f.Name, f.Name)
	}
}

func genEnum(w *bytes.Buffer, f *bff.Field) {
	e := f.Enum
	fmt.Fprintln(w)
	fmt.Fprintf(w, "// %s is the domain of the %s field.\n", e.Name, f.Name)
	fmt.Fprintf(w, "type %s %s\n", e.Name, uintType(f.EltBits()))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "const (")
	for _, v := range e.Values {
		fmt.Fprintf(w, "\t%s %s = %d", v.Name, e.Name, v.Value)
		if v.Description != "" {
			fmt.Fprintf(w, " //  %s", v.Description)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, ")")
}

func genAccessors(w *bytes.Buffer, r *bff.Reg, f *bff.Field) {
	t := fieldType(f)
	switch {
	case f.Elts > 0:
		fmt.Fprintln(w)
		fmt.Fprintf(w, "// %s returns element i of the %s field.\n", f.Name, f.Name)
		fmt.Fprintf(w, "func (r %s) %s(i int) %s {\n", r.Name, f.Name, t)
		if t == "bool" {
			fmt.Fprintf(w, "\treturn r&%sMask(i) != 0\n", f.Name)
		} else {
			fmt.Fprintf(w, "\treturn %s(r >> %sBit(i) & (1<<%se - 1))\n", t, f.Name, f.Name)
		}
		fmt.Fprintln(w, "}")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "// With%s returns r with element i of the %s field set to x.\n", f.Name, f.Name)
		fmt.Fprintf(w, "func (r %s) With%s(i int, x %s) %s {\n", r.Name, f.Name, t, r.Name)
		if t == "bool" {
			fmt.Fprintf(w, "\tif x {\n\t\treturn r | %sMask(i)\n\t}\n\treturn r &^ %sMask(i)\n", f.Name, f.Name)
		} else {
			fmt.Fprintf(w, "\treturn r&^%sMask(i) | %s(x)<<%sBit(i)&%sMask(i)\n", f.Name, r.Name, f.Name, f.Name)
		}
		fmt.Fprintln(w, "}")
	case t == "bool":
		fmt.Fprintln(w)
		fmt.Fprintf(w, "// %s returns the %s flag.\n", f.Name, f.Name)
		fmt.Fprintf(w, "func (r %s) %s() bool { return r&%s != 0 }\n", r.Name, f.Name, f.Name)
		fmt.Fprintln(w)
		fmt.Fprintf(w, "// With%s returns r with the %s flag set to x.\n", f.Name, f.Name)
		fmt.Fprintf(w, "func (r %s) With%s(x bool) %s {\n", r.Name, f.Name, r.Name)
		fmt.Fprintf(w, "\tif x {\n\t\treturn r | %s\n\t}\n\treturn r &^ %s\n", f.Name, f.Name)
		fmt.Fprintln(w, "}")
	default:
		fmt.Fprintln(w)
		fmt.Fprintf(w, "// %s returns the %s field.\n", f.Name, f.Name)
		fmt.Fprintf(w, "func (r %s) %s() %s { return %s((r & %s) >> %sn) }\n",
			r.Name, f.Name, t, t, f.Name, f.Name)
		fmt.Fprintln(w)
		fmt.Fprintf(w, "// With%s returns r with the %s field set to x.\n", f.Name, f.Name)
		fmt.Fprintf(w, "func (r %s) With%s(x %s) %s { return r&^%s | %s(x)<<%sn&%s }\n",
			r.Name, f.Name, t, r.Name, f.Name, r.Name, f.Name, f.Name)
	}
}

func cellType(r *bff.Reg) string {
	pre := "R"
	switch r.Access {
	case bff.RO:
		pre = "RO"
	case bff.WO:
		pre = "WO"
	}
	return fmt.Sprintf("mmio.%s%d[%s]", pre, r.Width, r.Name)
}

func regBase(w bff.Width) string {
	return fmt.Sprintf("uint%d", w)
}

func uintType(bits uint) string {
	switch {
	case bits <= 8:
		return "uint8"
	case bits <= 16:
		return "uint16"
	case bits <= 32:
		return "uint32"
	}
	return "uint64"
}

func fieldType(f *bff.Field) string {
	if f.Enum != nil {
		return f.Enum.Name
	}
	if f.EltBits() == 1 {
		return "bool"
	}
	return uintType(f.EltBits())
}

// bankField maps a register name to its bank struct field, sidestepping Go
// keywords like the MPU's TYPE register.
func bankField(name string) string {
	n := strings.ToLower(name)
	if n == "type" {
		return "typ"
	}
	if token.IsKeyword(n) {
		return n + "_"
	}
	return n
}
