package armv7m

// Exception numbers the architectural exceptions. The value is the
// exception's slot in the vector table and, while it is being serviced, the
// value read from IPSR. External interrupts continue the numbering at 16.
type Exception uint8

const (
	Reset          Exception = 1
	NMI            Exception = 2
	HardFault      Exception = 3
	MemManageFault Exception = 4
	BusFault       Exception = 5
	UsageFault     Exception = 6
	SVCall         Exception = 11
	DebugMonitor   Exception = 12
	PendSV         Exception = 14
	SysTick        Exception = 15
)

// NumExceptions counts the vector table slots reserved for the architecture,
// including slot 0 holding the initial stack pointer. SoC interrupt vectors
// follow immediately after.
const NumExceptions = 16

var excNames = [NumExceptions]struct{ display, symbol string }{
	Reset:          {"Reset", "reset"},
	NMI:            {"NMI", "nmi"},
	HardFault:      {"HardFault", "hard_fault"},
	MemManageFault: {"MemManageFault", "mem_manage_fault"},
	BusFault:       {"BusFault", "bus_fault"},
	UsageFault:     {"UsageFault", "usage_fault"},
	SVCall:         {"SVCall", "sv_call"},
	DebugMonitor:   {"DebugMonitor", "debug_monitor"},
	PendSV:         {"PendSV", "pend_sv"},
	SysTick:        {"SysTick", "sys_tick"},
}

func (e Exception) String() string {
	if int(e) < len(excNames) && excNames[e].display != "" {
		return excNames[e].display
	}
	return "Reserved"
}

// Reserved reports whether e is a reserved vector table slot. Reserved slots
// stay in the table as null entries so that the architectural numbering is
// preserved.
func (e Exception) Reserved() bool {
	return int(e) >= len(excNames) || excNames[e].symbol == ""
}

// Configurable reports whether the exception's priority can be set through
// the system handler priority registers. Writes for the reserved slots
// within the range take effect nowhere.
func (e Exception) Configurable() bool {
	return e >= MemManageFault && e <= SysTick
}

// HandlerSymbol returns the link-time name of the exception's handler. The
// application must define every one of them; there are no weak defaults.
func (e Exception) HandlerSymbol() string {
	if e.Reserved() {
		return ""
	}
	return "etl_armv7m_" + excNames[e].symbol + "_handler"
}

// Symbols the linker script must provide. Their names are part of the
// contract between this library, the linker script and the image tooling.
const (
	// SymInitialStackTop is a constant word just above RAM top whose value
	// initializes MSP from vector slot 0.
	SymInitialStackTop = "etl_armv7m_initial_stack_top"
	// SymResetHandler is the ELF entry point.
	SymResetHandler = "etl_armv7m_reset_handler"

	// Region boundaries for data and BSS relocation.
	SymEtext = "_etext"
	SymData  = "_data"
	SymEdata = "_edata"
	SymEbss  = "_ebss"

	// Ordered function pointer tables run by the reset sequence.
	SymPreinitArrayStart = "_preinit_array_start"
	SymPreinitArrayEnd   = "_preinit_array_end"
	SymInitArrayStart    = "_init_array_start"
	SymInitArrayEnd      = "_init_array_end"
)
