package bff

import "errors"

// Validate runs every consistency check over the description and returns
// all violations joined into one error, or nil. Each violation is a
// *CheckError wrapping its kind sentinel.
//
// The expansion is flat: register types, field constants, derived metadata
// constants, enum types and enumerators all land at package scope. A name
// may therefore be used only once per peripheral, except that two fields
// may share an enum by declaring the same name with the same enumerators.
//
// Generated code is only as trustworthy as its description, so the expander
// refuses to emit anything for a description that fails here.
func (p *Periph) Validate() error {
	var errs []error
	if p.Name == "" {
		errs = append(errs, p.checkErr(nil, nil, ErrRedefined, "peripheral has no name"))
	}

	decl := make(map[string]string)
	declare := func(r *Reg, f *Field, name, what string) {
		if prev, ok := decl[name]; ok {
			errs = append(errs, p.checkErr(r, f, ErrRedefined, "%s collides with %s", name, prev))
			return
		}
		decl[name] = what
	}
	enums := make(map[string]*Enum)

	for _, r := range p.Regs {
		declare(r, nil, r.Name, "register "+r.Name)

		widthOK := r.Width.valid()
		if !widthOK {
			errs = append(errs, p.checkErr(r, nil, ErrWidth, "access width %d is not 8, 16, 32 or 64", r.Width))
		}
		if r.Count < 1 {
			errs = append(errs, p.checkErr(r, nil, ErrArrayShape, "element count %d", r.Count))
		}
		if widthOK && r.Offset%r.Width.Bytes() != 0 {
			errs = append(errs, p.checkErr(r, nil, ErrAlign, "offset %#x not aligned to %d-bit access", r.Offset, r.Width))
		}

		for _, f := range r.Fields {
			what := "field " + r.Name + "." + f.Name
			declare(r, f, f.Name, what)
			declare(r, f, f.Name+"n", what)
			declare(r, f, f.Name+"w", what)
			if f.Elts > 0 {
				declare(r, f, f.Name+"c", what)
				declare(r, f, f.Name+"e", what)
				declare(r, f, f.Name+"Bit", what)
				declare(r, f, f.Name+"Mask", what)
			}

			rangeOK := true
			if f.High < f.Low {
				errs = append(errs, p.checkErr(r, f, ErrFieldRange, "high bit %d below low bit %d", f.High, f.Low))
				rangeOK = false
			} else if widthOK && f.High >= uint(r.Width) {
				errs = append(errs, p.checkErr(r, f, ErrFieldRange, "high bit %d exceeds %d-bit register", f.High, r.Width))
				rangeOK = false
			}

			shapeOK := rangeOK
			if f.Elts < 0 {
				errs = append(errs, p.checkErr(r, f, ErrArrayShape, "element count %d", f.Elts))
				shapeOK = false
			} else if f.Elts > 0 && rangeOK && f.Bits()%uint(f.Elts) != 0 {
				errs = append(errs, p.checkErr(r, f, ErrArrayShape, "%d bits do not divide into %d elements", f.Bits(), f.Elts))
				shapeOK = false
			}

			if f.Enum == nil || !shapeOK {
				continue
			}
			limit := f.EltLowMask()
			for _, v := range f.Enum.Values {
				if v.Value&^limit != 0 {
					errs = append(errs, p.checkErr(r, f, ErrEnumWidth, "enumerator %s = %#x exceeds %d-bit field", v.Name, v.Value, f.EltBits()))
				}
			}
			if prev, ok := enums[f.Enum.Name]; ok {
				if !prev.equal(f.Enum) {
					errs = append(errs, p.checkErr(r, f, ErrRedefined, "enum %s redeclared with different enumerators", f.Enum.Name))
				}
				continue
			}
			enums[f.Enum.Name] = f.Enum
			declare(r, f, f.Enum.Name, "enum "+f.Enum.Name)
			for _, v := range f.Enum.Values {
				declare(r, f, v.Name, "enum "+f.Enum.Name)
			}
		}
	}
	if _, _, err := p.Layout(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// equal reports whether two uses of an enum name declare the same type: the
// same enumerators with the same values in the same order. Descriptions may
// differ; only one copy is emitted anyway.
func (e *Enum) equal(o *Enum) bool {
	if len(e.Values) != len(o.Values) {
		return false
	}
	for i, v := range e.Values {
		if o.Values[i].Name != v.Name || o.Values[i].Value != v.Value {
			return false
		}
	}
	return true
}
