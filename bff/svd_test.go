package bff

import (
	"bytes"
	"os"
	"path"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	f, err := os.Open(path.Join("testdata", "armv7m.svd"))
	if err != nil {
		t.Fatal("missing testdata:", err)
	}
	defer f.Close()

	ps, err := Parse(f)
	if err != nil {
		t.Fatal(err)
	}
	if len(ps) != 2 {
		t.Fatalf("expected 2 peripherals, got %d", len(ps))
	}
	for _, p := range ps {
		if err := p.Validate(); err != nil {
			t.Errorf("%s: %v", p.Name, err)
		}
	}

	syst := ps[0]
	if syst.Name != "SYST" || syst.Base != 0xE000_E010 {
		t.Fatalf("expected SYST@0xe000e010, got %s@%#x", syst.Name, syst.Base)
	}
	if syst.Description != "SysTick timer control, reload and current value." {
		t.Errorf("description not normalized: %q", syst.Description)
	}
	if len(syst.Regs) != 4 {
		t.Fatalf("expected 4 registers, got %d", len(syst.Regs))
	}

	csr := syst.Regs[0]
	if csr.Width != W32 || csr.Access != RW || csr.Count != 1 {
		t.Errorf("CSR: width=%d access=%v count=%d", csr.Width, csr.Access, csr.Count)
	}
	fields := map[string][2]uint{}
	for _, f := range csr.Fields {
		fields[f.Name] = [2]uint{f.High, f.Low}
	}
	want := map[string][2]uint{
		"ENABLE":    {0, 0},
		"CLKSOURCE": {2, 2},
		"COUNTFLAG": {16, 16},
	}
	for name, hl := range want {
		if fields[name] != hl {
			t.Errorf("CSR.%s: expected [%d:%d], got %v", name, hl[0], hl[1], fields[name])
		}
	}
	clk := csr.Fields[1]
	if clk.Enum == nil || clk.Enum.Name != "ClockSource" || len(clk.Enum.Values) != 2 {
		t.Fatalf("CLKSOURCE enum: %+v", clk.Enum)
	}
	if clk.Enum.Values[1].Name != "Processor" || clk.Enum.Values[1].Value != 1 {
		t.Errorf("CLKSOURCE enumerators: %+v", clk.Enum.Values)
	}

	if calib := syst.Regs[3]; calib.Access != RO {
		t.Errorf("CALIB: expected read-only, got %v", calib.Access)
	}

	scb := ps[1]
	shpr := scb.Regs[0]
	if shpr.Name != "SHPR" || shpr.Count != 3 || shpr.Offset != 0x18 {
		t.Errorf("SHPR: %+v", shpr)
	}
	pri := shpr.Fields[0]
	if pri.Name != "PRI" || pri.Elts != 4 || pri.High != 31 || pri.Low != 0 {
		t.Errorf("SHPR.PRI: %+v", pri)
	}
	if stir := scb.Regs[1]; stir.Access != WO {
		t.Errorf("STIR: expected write-only, got %v", stir.Access)
	}
}

const svdHead = `<?xml version="1.0" encoding="utf-8"?>
<device><name>D</name><peripherals><peripheral>
<name>P</name><baseAddress>0</baseAddress><registers>`

const svdTail = `</registers></peripheral></peripherals></device>`

func TestParseErrors(t *testing.T) {
	tests := map[string]struct {
		doc  string
		want string
	}{
		"BadAccess": {
			svdHead + `<register><name>R</name><addressOffset>0</addressOffset>
			<access>banana</access></register>` + svdTail,
			"unsupported access",
		},
		"NoBitRange": {
			svdHead + `<register><name>R</name><addressOffset>0</addressOffset>
			<fields><field><name>F</name></field></fields></register>` + svdTail,
			"no bit range",
		},
		"MalformedBitRange": {
			svdHead + `<register><name>R</name><addressOffset>0</addressOffset>
			<fields><field><name>F</name><bitRange>[x:0]</bitRange></field></fields></register>` + svdTail,
			"malformed bitRange",
		},
		"NonAdjacentArray": {
			svdHead + `<register><dim>2</dim><dimIncrement>8</dimIncrement>
			<name>R%s</name><addressOffset>0</addressOffset></register>` + svdTail,
			"not adjacent",
		},
		"NoPeripherals": {
			`<?xml version="1.0"?><device><name>D</name></device>`,
			"no peripherals",
		},
		"BadNumber": {
			svdHead + `<register><name>R</name><addressOffset>zzz</addressOffset></register>` + svdTail,
			"",
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tc.doc))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected %q in %q", tc.want, err)
			}
		})
	}
}

func TestParseCharset(t *testing.T) {
	doc := []byte(`<?xml version="1.0" encoding="ISO-8859-1"?>
<device><name>D</name><peripherals><peripheral>
<name>P</name><description>10 `)
	doc = append(doc, 0xb5) // Latin-1 micro sign
	doc = append(doc, []byte(`s tick</description><baseAddress>0</baseAddress>
</peripheral></peripherals></device>`)...)

	ps, err := Parse(bytes.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	if ps[0].Description != "10 µs tick" {
		t.Fatalf("expected decoded micro sign, got %q", ps[0].Description)
	}
}
