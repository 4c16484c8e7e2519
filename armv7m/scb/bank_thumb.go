//go:build thumb

package scb

import "unsafe"

// The system control block of the running core.
var regs = (*registers)(unsafe.Pointer(base))
