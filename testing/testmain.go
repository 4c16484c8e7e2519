// Package testing provides utilities for tests that run against the
// simulated ARMv7-M core.
package testing

import (
	"os"
	"testing"

	"github.com/cbiffle/etl-sub000/internal/cpu"
)

// TestMain should be used as TestMain by packages whose tests touch core
// state, peripheral banks or barrier counters. It puts the simulated core
// into its reset state before the binary's tests run, so that leftover
// PRIMASK or event state from a crashed run cannot leak in.
func TestMain(m *testing.M) {
	cpu.Reset()
	os.Exit(m.Run())
}
