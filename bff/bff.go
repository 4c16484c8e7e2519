// Package bff models memory mapped peripherals as ordered register
// descriptions: named registers with bit-fields, access modes and optional
// enumerated domains. It derives everything code generation needs from a
// description, namely field masks, the exact slot layout including reserved
// holes, and the consistency checks that make an inconsistent description
// fail the build.
//
// Descriptions are authored as a small CMSIS-SVD subset, see Parse.
package bff

// Width is a register access width in bits. Every access to the register
// uses one bus transaction of exactly this width.
type Width uint8

const (
	W8  Width = 8
	W16 Width = 16
	W32 Width = 32
	W64 Width = 64
)

// Bytes returns the width in bytes.
func (w Width) Bytes() uint32 { return uint32(w) / 8 }

func (w Width) valid() bool {
	switch w {
	case W8, W16, W32, W64:
		return true
	}
	return false
}

// Access tells which operations a register supports.
type Access uint8

const (
	RW Access = iota // read, write, address-of, swap, update
	RO               // read, address-of
	WO               // write, address-of, swap, update
)

func (a Access) String() string {
	switch a {
	case RW:
		return "read-write"
	case RO:
		return "read-only"
	case WO:
		return "write-only"
	}
	return "unknown"
}

// Periph describes one peripheral: an ordered set of register slots starting
// at offset zero relative to Base.
type Periph struct {
	Name        string
	Description string
	Base        uint64
	Regs        []*Reg
}

// Reg describes a scalar or array register slot.
type Reg struct {
	Name        string
	Description string
	Offset      uint32
	Width       Width
	Access      Access
	Count       int // element count, 1 for a scalar register
	Fields      []*Field
}

// Size returns the bytes the slot covers, including all array elements.
func (r *Reg) Size() uint32 { return uint32(r.Count) * r.Width.Bytes() }

// Field describes a named bit range [High:Low] of its register's access
// type. Fields may alias each other; hardware maps do.
type Field struct {
	Name        string
	Description string
	High, Low   uint
	Elts        int   // >0: array field of Elts equal sub-elements
	Enum        *Enum // non-nil: enumerated domain
}

// Bits returns the field's total bit count.
func (f *Field) Bits() uint { return f.High - f.Low + 1 }

// EltBits returns the bits per element of an array field, or Bits for a
// scalar field.
func (f *Field) EltBits() uint {
	if f.Elts > 0 {
		return f.Bits() / uint(f.Elts)
	}
	return f.Bits()
}

// LowMask returns the field mask in place value zero. Defined for the
// full-width case bit_count == width.
func (f *Field) LowMask() uint64 { return LowMask[uint64](f.Bits()) }

// Mask returns the in-place field mask.
func (f *Field) Mask() uint64 { return f.LowMask() << f.Low }

// EltLowMask returns one element's mask in place value zero.
func (f *Field) EltLowMask() uint64 { return LowMask[uint64](f.EltBits()) }

// LowBitOf returns the low bit of element i.
func (f *Field) LowBitOf(i int) uint { return f.Low + uint(i)*f.EltBits() }

// MaskOf returns the in-place mask of element i.
func (f *Field) MaskOf(i int) uint64 { return f.EltLowMask() << f.LowBitOf(i) }

// Enum is a named set of (value, name) pairs a field may hold.
type Enum struct {
	Name   string
	Values []EnumValue
}

type EnumValue struct {
	Name        string
	Value       uint64
	Description string
}
