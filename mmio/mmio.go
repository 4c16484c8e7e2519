// Package mmio provides width-exact cells for memory mapped registers.
//
// A cell occupies exactly its access width and is read and written with a
// single bus transaction of that width. All accesses go through sync/atomic,
// which the compiler must neither elide, widen nor reorder against other
// atomic accesses. On thumb targets the compare-and-swap operations lower to
// the LDREX/STREX exclusive pair.
//
// 8 and 16 bit cells access their containing naturally aligned 32 bit word
// and extract the little-endian lane, like the word-grained exclusives they
// map to. They must therefore be placed inside a word aligned register bank,
// which is the only place a hardware register can live anyway.
package mmio

import (
	"sync/atomic"
	"unsafe"
)

// U8 is a raw 8 bit register cell.
type U8 struct{ r uint8 }

// U16 is a raw 16 bit register cell.
type U16 struct{ r uint16 }

// U32 is a raw 32 bit register cell.
type U32 struct{ r uint32 }

// U64 is a raw 64 bit register cell. It must be 8 byte aligned, which the
// natural layout of a register bank guarantees.
type U64 struct{ r uint64 }

// word locates the aligned 32 bit word containing p and the little-endian
// shift of p's lane within it.
func word(p unsafe.Pointer) (w *uint32, shift uint) {
	w = (*uint32)(unsafe.Pointer(uintptr(p) &^ 3))
	shift = uint(uintptr(p)&3) * 8
	return
}

func (u *U8) Load() uint8 {
	w, shift := word(unsafe.Pointer(&u.r))
	return uint8(atomic.LoadUint32(w) >> shift)
}

func (u *U8) Store(v uint8) {
	w, shift := word(unsafe.Pointer(&u.r))
retry:
	old := atomic.LoadUint32(w)
	new := old&^(0xff<<shift) | uint32(v)<<shift
	if !atomic.CompareAndSwapUint32(w, old, new) {
		goto retry
	}
}

// CompareAndSwap executes the compare-and-swap operation on the cell. It
// spans the containing word, i.e. it may fail spuriously if a neighbouring
// lane changed, exactly like a word-grained exclusive monitor.
func (u *U8) CompareAndSwap(old, new uint8) bool {
	w, shift := word(unsafe.Pointer(&u.r))
	cur := atomic.LoadUint32(w)
	if uint8(cur>>shift) != old {
		return false
	}
	return atomic.CompareAndSwapUint32(w, cur, cur&^(0xff<<shift)|uint32(new)<<shift)
}

func (u *U8) Addr() uintptr { return uintptr(unsafe.Pointer(&u.r)) }

func (u *U16) Load() uint16 {
	w, shift := word(unsafe.Pointer(&u.r))
	return uint16(atomic.LoadUint32(w) >> shift)
}

func (u *U16) Store(v uint16) {
	w, shift := word(unsafe.Pointer(&u.r))
retry:
	old := atomic.LoadUint32(w)
	new := old&^(0xffff<<shift) | uint32(v)<<shift
	if !atomic.CompareAndSwapUint32(w, old, new) {
		goto retry
	}
}

// CompareAndSwap executes the compare-and-swap operation on the cell. See
// U8.CompareAndSwap for the word-grain caveat.
func (u *U16) CompareAndSwap(old, new uint16) bool {
	w, shift := word(unsafe.Pointer(&u.r))
	cur := atomic.LoadUint32(w)
	if uint16(cur>>shift) != old {
		return false
	}
	return atomic.CompareAndSwapUint32(w, cur, cur&^(0xffff<<shift)|uint32(new)<<shift)
}

func (u *U16) Addr() uintptr { return uintptr(unsafe.Pointer(&u.r)) }

func (u *U32) Load() uint32   { return atomic.LoadUint32(&u.r) }
func (u *U32) Store(v uint32) { atomic.StoreUint32(&u.r, v) }

// CompareAndSwap executes the compare-and-swap operation on the cell.
func (u *U32) CompareAndSwap(old, new uint32) bool {
	return atomic.CompareAndSwapUint32(&u.r, old, new)
}

func (u *U32) Addr() uintptr { return uintptr(unsafe.Pointer(&u.r)) }

func (u *U64) Load() uint64   { return atomic.LoadUint64(&u.r) }
func (u *U64) Store(v uint64) { atomic.StoreUint64(&u.r, v) }

// CompareAndSwap executes the compare-and-swap operation on the cell.
func (u *U64) CompareAndSwap(old, new uint64) bool {
	return atomic.CompareAndSwapUint64(&u.r, old, new)
}

func (u *U64) Addr() uintptr { return uintptr(unsafe.Pointer(&u.r)) }
