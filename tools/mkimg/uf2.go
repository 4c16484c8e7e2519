package mkimg

import (
	"encoding/binary"
	"io"
)

// UF2 block flags.
const (
	uf2NotMainFlash    = 0x00000001
	uf2FamilyIDPresent = 0x00002000
)

// uf2FamilySTM32F4 marks blocks for the STM32F4xx bootloaders.
const uf2FamilySTM32F4 = 0x57755a57

// uf2Block is the 512 byte on-disk block. Only the first 256 data bytes are
// used, the rest of the payload area stays zero.
type uf2Block struct {
	Magic0 uint32
	Magic1 uint32
	Flags  uint32
	Addr   uint32
	Len    uint32
	Seq    uint32
	Total  uint32
	Family uint32
	Data   [256]byte
	_      [476 - 256]byte
	Magic2 uint32
}

// uf2Writer packs a byte stream into UF2 blocks. The total image size must
// be known up front because every block carries the block count.
type uf2Writer struct {
	w io.Writer
	b uf2Block
}

func newUF2Writer(w io.Writer, addr, flags, family uint32, size int) *uf2Writer {
	u := &uf2Writer{w: w}
	u.b.Magic0 = 0x0a324655
	u.b.Magic1 = 0x9e5d5157
	u.b.Flags = flags
	u.b.Addr = addr
	u.b.Total = uint32((size + len(u.b.Data) - 1) / len(u.b.Data))
	u.b.Family = family
	u.b.Magic2 = 0x0ab16f30
	return u
}

func (u *uf2Writer) Write(p []byte) (n int, err error) {
	b := &u.b
	for len(p) != 0 {
		m := copy(b.Data[b.Len:], p)
		n += m
		p = p[m:]
		b.Len += uint32(m)
		if int(b.Len) == len(b.Data) {
			if err = binary.Write(u.w, binary.LittleEndian, b); err != nil {
				return
			}
			b.Addr += b.Len
			b.Seq++
			b.Len = 0
		}
	}
	return
}

// Flush writes the final short block, zero padded to the block size.
func (u *uf2Writer) Flush() error {
	b := &u.b
	if b.Len == 0 {
		return nil
	}
	clear(b.Data[b.Len:])
	b.Len = uint32(len(b.Data))
	err := binary.Write(u.w, binary.LittleEndian, b)
	b.Addr += b.Len
	b.Seq++
	b.Len = 0
	return err
}
