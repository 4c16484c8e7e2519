package bff

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// LowMask returns the n low bits of T set. It saturates at T's full width,
// which defines the bit_count == width case.
func LowMask[T constraints.Unsigned](n uint) T {
	all := ^T(0)
	if n >= uint(bits.OnesCount64(uint64(all))) {
		return all
	}
	return T(1)<<n - 1
}

// Mask returns n bits set starting at bit low.
func Mask[T constraints.Unsigned](low, n uint) T {
	return LowMask[T](n) << low
}
