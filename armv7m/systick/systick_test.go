package systick

import (
	"testing"

	etltesting "github.com/cbiffle/etl-sub000/testing"
)

func TestMain(m *testing.M) { etltesting.TestMain(m) }

func reset() { *regs = registers{} }

func TestStartPeriodic(t *testing.T) {
	reset()
	StartPeriodic(168000) // 1ms at 168MHz
	if got := regs.rvr.Load().RELOAD(); got != 167999 {
		t.Errorf("RELOAD = %d, want 167999", got)
	}
	if got := regs.cvr.Load(); got != 0 {
		t.Errorf("CVR = %#x, want 0", uint32(got))
	}
	csr := regs.csr.Load()
	if !csr.ENABLE() || !csr.TICKINT() || csr.CLKSOURCE() != Processor {
		t.Errorf("CSR = %#08x", uint32(csr))
	}
}

func TestStop(t *testing.T) {
	reset()
	StartPeriodic(1000)
	Stop()
	if got := regs.csr.Load(); got != 0 {
		t.Errorf("CSR = %#08x after Stop", uint32(got))
	}
}

func TestCountFlag(t *testing.T) {
	reset()
	regs.csr.Store(CSR(0).WithENABLE(true).WithCOUNTFLAG(true))
	if !CountFlag() {
		t.Fatal("wrap not reported")
	}
	if CountFlag() {
		t.Fatal("flag not cleared by the read")
	}
	if !regs.csr.Load().ENABLE() {
		t.Error("reading the flag disturbed ENABLE")
	}
}

func TestReloadMask(t *testing.T) {
	if got := RVR(0).WithRELOAD(0xFFFFFF); got != 0xFFFFFF {
		t.Errorf("WithRELOAD(0xFFFFFF) = %#x", uint32(got))
	}
	// A reload beyond the field width must not spill into reserved bits.
	if got := RVR(0).WithRELOAD(0x1000000); got != 0 {
		t.Errorf("WithRELOAD(0x1000000) = %#x, want 0", uint32(got))
	}
}

func TestClockSource(t *testing.T) {
	r := CSR(0).WithCLKSOURCE(Processor)
	if got := r.CLKSOURCE(); got != Processor {
		t.Errorf("CLKSOURCE = %d, want %d", got, Processor)
	}
	if got := r.WithCLKSOURCE(External).CLKSOURCE(); got != External {
		t.Errorf("CLKSOURCE = %d, want %d", got, External)
	}
}
