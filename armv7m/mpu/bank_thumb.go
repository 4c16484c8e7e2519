//go:build thumb

package mpu

import "unsafe"

// The memory protection unit of the running core.
var regs = (*registers)(unsafe.Pointer(base))
