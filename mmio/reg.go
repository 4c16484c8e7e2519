package mmio

// Constraints for register value types. Generated register types are named
// integers of their access width.
type (
	T8  interface{ ~uint8 }
	T16 interface{ ~uint16 }
	T32 interface{ ~uint32 }
	T64 interface{ ~uint64 }
)

// R32 is a read-write register of a 32 bit value type. A raw word is stored
// by converting it to the value type first.
type R32[T T32] struct{ u U32 }

func (r *R32[T]) Load() T       { return T(r.u.Load()) }
func (r *R32[T]) Store(v T)     { r.u.Store(uint32(v)) }
func (r *R32[T]) Addr() uintptr { return r.u.Addr() }

// CompareAndSwap stores new iff the register still holds old. It races
// safely with other CPU writers, not with hardware-initiated writes.
func (r *R32[T]) CompareAndSwap(old, new T) bool {
	return r.u.CompareAndSwap(uint32(old), uint32(new))
}

// Update stores f(current), retrying until no other writer interfered.
// Unbounded under contention; latency-critical callers mask interrupts and
// use Load/Store instead.
func (r *R32[T]) Update(f func(T) T) {
retry:
	old := r.Load()
	if !r.CompareAndSwap(old, f(old)) {
		goto retry
	}
}

// RO32 is a read-only register of a 32 bit value type. Its address may be
// handed to hardware clients that read the register, DMA sources typically.
type RO32[T T32] struct{ u U32 }

func (r *RO32[T]) Load() T       { return T(r.u.Load()) }
func (r *RO32[T]) Addr() uintptr { return r.u.Addr() }

// WO32 is a write-only register of a 32 bit value type. Update reads the
// slot internally, which on hardware returns whatever the bus provides for
// the register; it is only meaningful for registers that read back the last
// store.
type WO32[T T32] struct{ u U32 }

func (r *WO32[T]) Store(v T)     { r.u.Store(uint32(v)) }
func (r *WO32[T]) Addr() uintptr { return r.u.Addr() }

func (r *WO32[T]) CompareAndSwap(old, new T) bool {
	return r.u.CompareAndSwap(uint32(old), uint32(new))
}

func (r *WO32[T]) Update(f func(T) T) {
retry:
	old := T(r.u.Load())
	if !r.CompareAndSwap(old, f(old)) {
		goto retry
	}
}

// R8, RO8 and WO8 are the 8 bit forms of R32, RO32 and WO32.
type R8[T T8] struct{ u U8 }

func (r *R8[T]) Load() T       { return T(r.u.Load()) }
func (r *R8[T]) Store(v T)     { r.u.Store(uint8(v)) }
func (r *R8[T]) Addr() uintptr { return r.u.Addr() }

func (r *R8[T]) CompareAndSwap(old, new T) bool {
	return r.u.CompareAndSwap(uint8(old), uint8(new))
}

func (r *R8[T]) Update(f func(T) T) {
retry:
	old := r.Load()
	if !r.CompareAndSwap(old, f(old)) {
		goto retry
	}
}

type RO8[T T8] struct{ u U8 }

func (r *RO8[T]) Load() T       { return T(r.u.Load()) }
func (r *RO8[T]) Addr() uintptr { return r.u.Addr() }

type WO8[T T8] struct{ u U8 }

func (r *WO8[T]) Store(v T)     { r.u.Store(uint8(v)) }
func (r *WO8[T]) Addr() uintptr { return r.u.Addr() }

func (r *WO8[T]) CompareAndSwap(old, new T) bool {
	return r.u.CompareAndSwap(uint8(old), uint8(new))
}

func (r *WO8[T]) Update(f func(T) T) {
retry:
	old := T(r.u.Load())
	if !r.CompareAndSwap(old, f(old)) {
		goto retry
	}
}

// R16, RO16 and WO16 are the 16 bit forms.
type R16[T T16] struct{ u U16 }

func (r *R16[T]) Load() T       { return T(r.u.Load()) }
func (r *R16[T]) Store(v T)     { r.u.Store(uint16(v)) }
func (r *R16[T]) Addr() uintptr { return r.u.Addr() }

func (r *R16[T]) CompareAndSwap(old, new T) bool {
	return r.u.CompareAndSwap(uint16(old), uint16(new))
}

func (r *R16[T]) Update(f func(T) T) {
retry:
	old := r.Load()
	if !r.CompareAndSwap(old, f(old)) {
		goto retry
	}
}

type RO16[T T16] struct{ u U16 }

func (r *RO16[T]) Load() T       { return T(r.u.Load()) }
func (r *RO16[T]) Addr() uintptr { return r.u.Addr() }

type WO16[T T16] struct{ u U16 }

func (r *WO16[T]) Store(v T)     { r.u.Store(uint16(v)) }
func (r *WO16[T]) Addr() uintptr { return r.u.Addr() }

func (r *WO16[T]) CompareAndSwap(old, new T) bool {
	return r.u.CompareAndSwap(uint16(old), uint16(new))
}

func (r *WO16[T]) Update(f func(T) T) {
retry:
	old := T(r.u.Load())
	if !r.CompareAndSwap(old, f(old)) {
		goto retry
	}
}

// R64, RO64 and WO64 are the 64 bit forms.
type R64[T T64] struct{ u U64 }

func (r *R64[T]) Load() T       { return T(r.u.Load()) }
func (r *R64[T]) Store(v T)     { r.u.Store(uint64(v)) }
func (r *R64[T]) Addr() uintptr { return r.u.Addr() }

func (r *R64[T]) CompareAndSwap(old, new T) bool {
	return r.u.CompareAndSwap(uint64(old), uint64(new))
}

func (r *R64[T]) Update(f func(T) T) {
retry:
	old := r.Load()
	if !r.CompareAndSwap(old, f(old)) {
		goto retry
	}
}

type RO64[T T64] struct{ u U64 }

func (r *RO64[T]) Load() T       { return T(r.u.Load()) }
func (r *RO64[T]) Addr() uintptr { return r.u.Addr() }

type WO64[T T64] struct{ u U64 }

func (r *WO64[T]) Store(v T)     { r.u.Store(uint64(v)) }
func (r *WO64[T]) Addr() uintptr { return r.u.Addr() }

func (r *WO64[T]) CompareAndSwap(old, new T) bool {
	return r.u.CompareAndSwap(uint64(old), uint64(new))
}

func (r *WO64[T]) Update(f func(T) T) {
retry:
	old := T(r.u.Load())
	if !r.CompareAndSwap(old, f(old)) {
		goto retry
	}
}
