//go:build !thumb

package scb

// Hosted builds place the bank in ordinary memory, so the facade and its
// tests run anywhere.
var regs = new(registers)
