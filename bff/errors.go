package bff

import (
	"errors"
	"fmt"
)

// Check kinds. A CheckError wraps one of these, so callers can test the
// category with errors.Is while the message pinpoints the description line.
var (
	ErrFieldRange = errors.New("bit range out of bounds")
	ErrEnumWidth  = errors.New("enumerator exceeds field width")
	ErrArrayShape = errors.New("bit count not divisible by element count")
	ErrOverlap    = errors.New("register slots overlap")
	ErrAlign      = errors.New("offset not aligned to access width")
	ErrRedefined  = errors.New("name redefined")
	ErrWidth      = errors.New("unsupported access width")
)

// CheckError reports a description inconsistency. It names the peripheral,
// register and field, so a failing build points at the offending
// description entry rather than at generated code.
type CheckError struct {
	Periph string
	Reg    string
	Field  string
	Kind   error
	Detail string
}

func (e *CheckError) Error() string {
	s := e.Periph
	if e.Reg != "" {
		s += "." + e.Reg
	}
	if e.Field != "" {
		s += "." + e.Field
	}
	return s + ": " + e.Detail
}

func (e *CheckError) Unwrap() error { return e.Kind }

func (p *Periph) checkErr(r *Reg, f *Field, kind error, format string, args ...any) error {
	e := &CheckError{Periph: p.Name, Kind: kind, Detail: fmt.Sprintf(format, args...)}
	if r != nil {
		e.Reg = r.Name
	}
	if f != nil {
		e.Field = f.Name
	}
	return e
}
