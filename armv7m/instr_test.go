package armv7m_test

import (
	"testing"
	"time"

	"github.com/cbiffle/etl-sub000/armv7m"
	"github.com/cbiffle/etl-sub000/internal/cpu"
	etltesting "github.com/cbiffle/etl-sub000/testing"
)

func TestMain(m *testing.M) { etltesting.TestMain(m) }

func TestBarriersIssue(t *testing.T) {
	dsb, dmb, isb := cpu.DSBCount(), cpu.DMBCount(), cpu.ISBCount()
	armv7m.DSB()
	armv7m.DMB()
	armv7m.DMB()
	armv7m.ISB()
	if got := cpu.DSBCount() - dsb; got != 1 {
		t.Errorf("DSB issued %d times, want 1", got)
	}
	if got := cpu.DMBCount() - dmb; got != 2 {
		t.Errorf("DMB issued %d times, want 2", got)
	}
	if got := cpu.ISBCount() - isb; got != 1 {
		t.Errorf("ISB issued %d times, want 1", got)
	}
}

func TestWaitForInterrupt(t *testing.T) {
	done := make(chan struct{})
	go func() {
		armv7m.WaitForInterrupt()
		close(done)
	}()
	cpu.Event()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("wfi did not wake on event")
	}
}

func TestInterruptMasking(t *testing.T) {
	if armv7m.PRIMASK() {
		t.Fatal("interrupts masked at start")
	}
	prior := armv7m.DisableInterrupts()
	if prior {
		t.Error("prior mask state reported set")
	}
	if !armv7m.PRIMASK() {
		t.Error("PRIMASK not set")
	}
	if nested := armv7m.DisableInterrupts(); !nested {
		t.Error("nested disable lost prior state")
	}
	armv7m.RestoreInterrupts(prior)
	if armv7m.PRIMASK() {
		t.Error("PRIMASK set after restore")
	}

	armv7m.SetBASEPRI(0x40)
	if got := armv7m.BASEPRI(); got != 0x40 {
		t.Errorf("BASEPRI: got %#x", got)
	}
	armv7m.SetBASEPRI(0)
}

func TestStackPointers(t *testing.T) {
	armv7m.SetMSP(0x2002_0000)
	armv7m.SetPSP(0x2001_8000)
	if got := armv7m.MSP(); got != 0x2002_0000 {
		t.Errorf("MSP: got %#x", got)
	}
	if got := armv7m.PSP(); got != 0x2001_8000 {
		t.Errorf("PSP: got %#x", got)
	}
}

func TestUsat(t *testing.T) {
	for name, c := range map[string]struct {
		v     uint32
		bits  uint
		shift int
		want  uint32
	}{
		"fits":          {0x7f, 8, 0, 0x7f},
		"saturates":     {0x1ff, 8, 0, 0xff},
		"negative":      {0xffff_fff0, 8, 0, 0}, // -16
		"left shift":    {0x3, 4, 2, 0xc},
		"left saturate": {0x3, 4, 4, 0xf},
		"right shift":   {0x100, 8, -4, 0x10},
		"right of neg":  {0xffff_ff00, 8, -4, 0}, // -256 >> 4
		"one bit":       {2, 1, 0, 1},
	} {
		t.Run(name, func(t *testing.T) {
			if got := armv7m.Usat(c.v, c.bits, c.shift); got != c.want {
				t.Errorf("usat(%#x, %d, %d) = %#x, want %#x", c.v, c.bits, c.shift, got, c.want)
			}
		})
	}
}
