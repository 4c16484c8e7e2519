// Package armv7m provides the core-CPU support for Cortex-M3/M4 class
// parts: barrier and sleep instructions, the special register file, the
// exception model with its vector table layout, and the reset sequence that
// prepares memory before main runs.
//
// The memory mapped core peripherals live in the subpackages nvic, scb, mpu
// and systick, each generated from its register description by bffgen.
//
// Hosted builds run against a simulated core so the whole package is
// testable off-target; an embedded toolchain lowers the instruction
// wrappers to their single-instruction forms.
package armv7m
