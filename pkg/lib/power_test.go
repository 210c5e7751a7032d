package lib

import (
	"testing"

	"github.com/OpenTraceLab/OpenTraceDP/pkg/errors"
	"github.com/OpenTraceLab/OpenTraceDP/pkg/geom"
)

func ports(tops ...float64) []geom.Rect {
	var rs []geom.Rect
	for _, top := range tops {
		rs = append(rs, geom.Rect{XLL: 0, YLL: top - 1, XUR: 10, YUR: top})
	}
	return rs
}

func macroWith(pins map[string][]geom.Rect) *Macro {
	m := NewMacro("M", "CORE")
	for name, ps := range pins {
		m.SetPin(name, &MacroPin{Direction: DirInout, Ports: ps})
	}
	return m
}

func TestFindPowerPin(t *testing.T) {
	tests := []struct {
		name     string
		pins     []string
		names    []string
		wantName string
		wantOK   bool
	}{
		{name: "lower vdd", pins: []string{"vdd", "A"}, names: VDDNames, wantName: "vdd", wantOK: true},
		{name: "upper VDD", pins: []string{"VDD", "A"}, names: VDDNames, wantName: "VDD", wantOK: true},
		{name: "both spellings prefer first", pins: []string{"VDD", "vdd"}, names: VDDNames, wantName: "vdd", wantOK: true},
		{name: "lower vss", pins: []string{"vss"}, names: VSSNames, wantName: "vss", wantOK: true},
		{name: "upper VSS", pins: []string{"VSS"}, names: VSSNames, wantName: "VSS", wantOK: true},
		{name: "mixed case not accepted", pins: []string{"Vdd"}, names: VDDNames, wantOK: false},
		{name: "no pins", pins: nil, names: VSSNames, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pins := make(map[string]*MacroPin)
			for _, p := range tt.pins {
				pins[p] = &MacroPin{}
			}
			name, pin, ok := FindPowerPin(pins, tt.names)
			if ok != tt.wantOK {
				t.Fatalf("FindPowerPin() ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				if pin != nil || name != "" {
					t.Errorf("not-found result should be empty, got %q %v", name, pin)
				}
				return
			}
			if name != tt.wantName {
				t.Errorf("FindPowerPin() name = %q, want %q", name, tt.wantName)
			}
			if pin != pins[tt.wantName] {
				t.Errorf("FindPowerPin() returned a different pin")
			}
		})
	}
}

func TestClassifyTopPower(t *testing.T) {
	tests := []struct {
		name      string
		pins      map[string][]geom.Rect
		wantPower Power
		wantMulti bool
		wantErr   bool
	}{
		{
			name:      "vdd on top",
			pins:      map[string][]geom.Rect{"VDD": ports(5), "VSS": ports(3)},
			wantPower: PowerVDD,
		},
		{
			name:      "vss on top",
			pins:      map[string][]geom.Rect{"vdd": ports(3), "vss": ports(5)},
			wantPower: PowerVSS,
		},
		{
			name:      "tie goes to vss",
			pins:      map[string][]geom.Rect{"VDD": ports(4), "VSS": ports(4)},
			wantPower: PowerVSS,
		},
		{
			name:      "only vdd",
			pins:      map[string][]geom.Rect{"VDD": ports(4)},
			wantPower: PowerVDD,
		},
		{
			name:      "only vss",
			pins:      map[string][]geom.Rect{"VSS": ports(4)},
			wantPower: PowerVSS,
		},
		{
			name:      "no power pins",
			pins:      map[string][]geom.Rect{"A": ports(1)},
			wantPower: PowerUndefined,
		},
		{
			name:    "combined count of one",
			pins:    map[string][]geom.Rect{"VDD": ports(5), "VSS": nil},
			wantErr: true,
		},
		{
			name:      "combined count of two",
			pins:      map[string][]geom.Rect{"VDD": ports(5), "VSS": ports(3)},
			wantPower: PowerVDD,
			wantMulti: false,
		},
		{
			name:      "combined count above two",
			pins:      map[string][]geom.Rect{"VDD": ports(5, 15), "VSS": ports(10)},
			wantPower: PowerVDD,
			wantMulti: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := macroWith(tt.pins)
			err := ClassifyTopPower(m)
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodePowerPinCount) {
					t.Fatalf("expected power pin count error, got %v", err)
				}
				if !errors.IsFatal(err) {
					t.Errorf("power pin count error should be fatal")
				}
				return
			}
			if err != nil {
				t.Fatalf("ClassifyTopPower() unexpected error: %v", err)
			}
			if m.TopPower != tt.wantPower {
				t.Errorf("TopPower = %v, want %v", m.TopPower, tt.wantPower)
			}
			if m.IsMulti != tt.wantMulti {
				t.Errorf("IsMulti = %v, want %v", m.IsMulti, tt.wantMulti)
			}
		})
	}
}

func TestRequireTopPower(t *testing.T) {
	m := NewMacro("FILL", "CORE")
	if _, err := m.RequireTopPower(); !errors.Is(err, errors.ErrCodeUndefinedPower) {
		t.Errorf("expected undefined power error, got %v", err)
	} else if errors.IsFatal(err) {
		t.Errorf("undefined power must stay advisory")
	}

	m.TopPower = PowerVDD
	if p, err := m.RequireTopPower(); err != nil || p != PowerVDD {
		t.Errorf("RequireTopPower() = %v, %v", p, err)
	}
}

func TestSetPinLastWins(t *testing.T) {
	m := NewMacro("M", "CORE")
	m.SetPin("A", &MacroPin{Direction: DirInput})
	m.SetPin("A", &MacroPin{Direction: DirOutput})
	if len(m.Pins) != 1 || m.Pins["A"].Direction != DirOutput {
		t.Errorf("duplicate pin name should keep last write, got %+v", m.Pins["A"])
	}
}
