package bff

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/ianaindex"
)

// Parse reads a CMSIS-SVD document and returns the peripherals it
// describes. Only the subset the expander understands is accepted: scalar
// and adjacent-element array registers, fields given as bitOffset+bitWidth,
// lsb+msb or bitRange, field arrays via dim, and enumeratedValues. The
// result still has to pass Validate before it is trusted.
func Parse(r io.Reader) ([]*Periph, error) {
	d := xml.NewDecoder(r)
	d.CharsetReader = charsetReader
	var dev svdDevice
	if err := d.Decode(&dev); err != nil {
		return nil, fmt.Errorf("svd: %w", err)
	}
	if len(dev.Peripherals) == 0 {
		return nil, errors.New("svd: no peripherals")
	}
	ps := make([]*Periph, 0, len(dev.Peripherals))
	for i := range dev.Peripherals {
		p, err := convPeriph(&dev.Peripherals[i], &dev)
		if err != nil {
			return nil, err
		}
		ps = append(ps, p)
	}
	return ps, nil
}

func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	enc, err := ianaindex.IANA.Encoding(charset)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("svd: unsupported charset %q", charset)
	}
	return enc.NewDecoder().Reader(input), nil
}

type svdDevice struct {
	Name        string          `xml:"name"`
	Size        *svdUint        `xml:"size"`
	Access      string          `xml:"access"`
	Peripherals []svdPeripheral `xml:"peripherals>peripheral"`
}

type svdPeripheral struct {
	Name        string        `xml:"name"`
	Description string        `xml:"description"`
	BaseAddress svdUint64     `xml:"baseAddress"`
	Size        *svdUint      `xml:"size"`
	Access      string        `xml:"access"`
	Registers   []svdRegister `xml:"registers>register"`
}

type svdRegister struct {
	Dim           *svdUint   `xml:"dim"`
	DimIncrement  *svdUint   `xml:"dimIncrement"`
	Name          string     `xml:"name"`
	Description   string     `xml:"description"`
	AddressOffset svdUint    `xml:"addressOffset"`
	Size          *svdUint   `xml:"size"`
	Access        string     `xml:"access"`
	Fields        []svdField `xml:"fields>field"`
}

type svdField struct {
	Dim         *svdUint             `xml:"dim"`
	Name        string               `xml:"name"`
	Description string               `xml:"description"`
	BitOffset   *svdUint             `xml:"bitOffset"`
	BitWidth    *svdUint             `xml:"bitWidth"`
	Lsb         *svdUint             `xml:"lsb"`
	Msb         *svdUint             `xml:"msb"`
	BitRange    string               `xml:"bitRange"`
	Enums       *svdEnumeratedValues `xml:"enumeratedValues"`
}

type svdEnumeratedValues struct {
	Name   string               `xml:"name"`
	Values []svdEnumeratedValue `xml:"enumeratedValue"`
}

type svdEnumeratedValue struct {
	Name        string    `xml:"name"`
	Description string    `xml:"description"`
	Value       svdUint64 `xml:"value"`
}

// svdUint parses SVD scaledNonNegativeInteger, so both 0x prefixed hex and
// plain decimal work.
type svdUint uint32

func (u *svdUint) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var s string
	if err := d.DecodeElement(&s, &start); err != nil {
		return err
	}
	v, err := strconv.ParseUint(strings.TrimSpace(s), 0, 32)
	if err != nil {
		return err
	}
	*u = svdUint(v)
	return nil
}

type svdUint64 uint64

func (u *svdUint64) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var s string
	if err := d.DecodeElement(&s, &start); err != nil {
		return err
	}
	v, err := strconv.ParseUint(strings.TrimSpace(s), 0, 64)
	if err != nil {
		return err
	}
	*u = svdUint64(v)
	return nil
}

func convPeriph(sp *svdPeripheral, dev *svdDevice) (*Periph, error) {
	p := &Periph{
		Name:        sp.Name,
		Description: oneline(sp.Description),
		Base:        uint64(sp.BaseAddress),
	}
	defSize := firstUint(sp.Size, dev.Size, 32)
	defAccess := firstStr(sp.Access, dev.Access)
	for i := range sp.Registers {
		r, err := convReg(&sp.Registers[i], sp.Name, defSize, defAccess)
		if err != nil {
			return nil, err
		}
		p.Regs = append(p.Regs, r)
	}
	return p, nil
}

func convReg(sr *svdRegister, periph string, defSize uint32, defAccess string) (*Reg, error) {
	name := dimName(sr.Name)
	size := firstUint(sr.Size, nil, defSize)
	access, err := parseAccess(firstStr(sr.Access, defAccess))
	if err != nil {
		return nil, fmt.Errorf("svd: %s.%s: %w", periph, name, err)
	}
	r := &Reg{
		Name:        name,
		Description: oneline(sr.Description),
		Offset:      uint32(sr.AddressOffset),
		Width:       Width(size),
		Access:      access,
		Count:       1,
	}
	if sr.Dim != nil {
		r.Count = int(*sr.Dim)
		if sr.DimIncrement == nil || uint32(*sr.DimIncrement) != r.Width.Bytes() {
			return nil, fmt.Errorf("svd: %s.%s: array elements are not adjacent %d-bit registers", periph, name, size)
		}
	}
	for i := range sr.Fields {
		f, err := convField(&sr.Fields[i], periph, name)
		if err != nil {
			return nil, err
		}
		r.Fields = append(r.Fields, f)
	}
	return r, nil
}

func convField(sf *svdField, periph, reg string) (*Field, error) {
	f := &Field{
		Name:        dimName(sf.Name),
		Description: oneline(sf.Description),
	}
	switch {
	case sf.BitOffset != nil && sf.BitWidth != nil:
		f.Low = uint(*sf.BitOffset)
		f.High = f.Low + uint(*sf.BitWidth) - 1
	case sf.Lsb != nil && sf.Msb != nil:
		f.Low = uint(*sf.Lsb)
		f.High = uint(*sf.Msb)
	case sf.BitRange != "":
		hi, lo, err := parseBitRange(sf.BitRange)
		if err != nil {
			return nil, fmt.Errorf("svd: %s.%s.%s: %w", periph, reg, f.Name, err)
		}
		f.High, f.Low = hi, lo
	default:
		return nil, fmt.Errorf("svd: %s.%s.%s: no bit range", periph, reg, f.Name)
	}
	if sf.Dim != nil {
		f.Elts = int(*sf.Dim)
	}
	if sf.Enums != nil && len(sf.Enums.Values) > 0 {
		e := &Enum{Name: sf.Enums.Name}
		if e.Name == "" {
			e.Name = f.Name
		}
		for _, v := range sf.Enums.Values {
			e.Values = append(e.Values, EnumValue{
				Name:        v.Name,
				Value:       uint64(v.Value),
				Description: oneline(v.Description),
			})
		}
		f.Enum = e
	}
	return f, nil
}

func parseAccess(s string) (Access, error) {
	switch s {
	case "", "read-write", "read-writeOnce":
		return RW, nil
	case "read-only":
		return RO, nil
	case "write-only", "writeOnce":
		return WO, nil
	}
	return RW, fmt.Errorf("unsupported access %q", s)
}

// parseBitRange parses the "[msb:lsb]" form.
func parseBitRange(s string) (hi, lo uint, err error) {
	s = strings.TrimSpace(s)
	if len(s) < 5 || s[0] != '[' || s[len(s)-1] != ']' {
		return 0, 0, fmt.Errorf("malformed bitRange %q", s)
	}
	msb, lsb, ok := strings.Cut(s[1:len(s)-1], ":")
	if !ok {
		return 0, 0, fmt.Errorf("malformed bitRange %q", s)
	}
	h, err := strconv.ParseUint(strings.TrimSpace(msb), 0, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("malformed bitRange %q", s)
	}
	l, err := strconv.ParseUint(strings.TrimSpace(lsb), 0, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("malformed bitRange %q", s)
	}
	return uint(h), uint(l), nil
}

// dimName strips the dim placeholder from an array register or field name,
// so ISER[%s] and ISER%s both become ISER.
func dimName(s string) string {
	s = strings.ReplaceAll(s, "[%s]", "")
	return strings.ReplaceAll(s, "%s", "")
}

func oneline(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func firstUint(a, b *svdUint, def uint32) uint32 {
	if a != nil {
		return uint32(*a)
	}
	if b != nil {
		return uint32(*b)
	}
	return def
}

func firstStr(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
