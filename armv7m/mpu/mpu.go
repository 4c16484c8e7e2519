package mpu

import (
	"github.com/cbiffle/etl-sub000/armv7m"
	"github.com/cbiffle/etl-sub000/debug"
)

//go:generate go run github.com/cbiffle/etl-sub000/tools/etlgo bffgen -p mpu mpu.svd

// Regions returns the number of regions the hardware implements, zero when
// there is no MPU.
func Regions() int {
	return int(regs.typ.Load().DREGION())
}

// SetRegion programs region n with the given base address and attribute
// words. The REGION and VALID bits of rbar are ignored; the region number
// comes from n alone. The new region is not guaranteed to order against
// surrounding accesses until the barriers in Enable.
func SetRegion(n int, rbar RBAR, rasr RASR) {
	debug.Assert(n >= 0 && n < 256, "mpu: region out of range")
	rbar &^= REGION | VALID
	regs.rnr.Store(RNR(n))
	regs.rbar.Store(rbar)
	regs.rasr.Store(rasr)
}

// Enable turns the MPU on with the given global switches; ENABLE itself is
// implied. The barriers make the new memory map effective before return.
func Enable(ctrl CTRL) {
	regs.ctrl.Store(ctrl.WithENABLE(true))
	armv7m.DSB()
	armv7m.ISB()
}

// Disable turns the MPU off, restoring the default memory map.
func Disable() {
	regs.ctrl.Store(0)
	armv7m.DSB()
	armv7m.ISB()
}
