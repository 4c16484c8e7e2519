package armv7m

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// VectorTable is the architectural part of the exception vector table,
// bit-exact with what the hardware fetches at its vector base: the initial
// stack pointer in slot 0, the reset handler in slot 1, then the exception
// handlers in architectural order. Reserved slots are present as null words
// so later architectural revisions cannot shift the layout. SoC interrupt
// vectors are appended after these sixteen words by the linker script.
//
// Entries hold thumb code addresses, so bit 0 of every non-null handler
// word is set.
type VectorTable struct {
	InitialStack uint32
	Reset        uint32
	NMI          uint32
	HardFault    uint32
	MemManage    uint32
	BusFault     uint32
	UsageFault   uint32
	_            [4]uint32
	SVCall       uint32
	DebugMonitor uint32
	_            uint32
	PendSV       uint32
	SysTick      uint32
}

// VectorTableSize is the encoded size of the architectural table in bytes.
const VectorTableSize = NumExceptions * 4

// Handler returns the table entry for exception e, zero for reserved slots.
func (vt *VectorTable) Handler(e Exception) uint32 {
	switch e {
	case Reset:
		return vt.Reset
	case NMI:
		return vt.NMI
	case HardFault:
		return vt.HardFault
	case MemManageFault:
		return vt.MemManage
	case BusFault:
		return vt.BusFault
	case UsageFault:
		return vt.UsageFault
	case SVCall:
		return vt.SVCall
	case DebugMonitor:
		return vt.DebugMonitor
	case PendSV:
		return vt.PendSV
	case SysTick:
		return vt.SysTick
	}
	return 0
}

// MarshalBinary encodes the table as the sixteen little-endian words the
// hardware expects, reserved slots as zero.
func (vt *VectorTable) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, vt); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes an image captured from the base of a ROM.
func (vt *VectorTable) UnmarshalBinary(b []byte) error {
	if len(b) < VectorTableSize {
		return fmt.Errorf("vector table: got %d bytes, need %d", len(b), VectorTableSize)
	}
	return binary.Read(bytes.NewReader(b[:VectorTableSize]), binary.LittleEndian, vt)
}
