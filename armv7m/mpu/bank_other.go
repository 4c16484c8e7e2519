//go:build !thumb

package mpu

// Hosted builds place the bank in ordinary memory, so the facade and its
// tests run anywhere.
var regs = new(registers)
