package lib

import (
	"github.com/OpenTraceLab/OpenTraceDP/pkg/errors"
)

// Accepted power pin spellings, tried in order.
var (
	VDDNames = []string{"vdd", "VDD"}
	VSSNames = []string{"vss", "VSS"}
)

// FindPowerPin returns the first pin whose name appears in names, trying
// names in order. ok is false when none match.
func FindPowerPin(pins map[string]*MacroPin, names []string) (string, *MacroPin, bool) {
	for _, name := range names {
		if pin, found := pins[name]; found {
			return name, pin, true
		}
	}
	return "", nil, false
}

// ClassifyTopPower derives TopPower and IsMulti from the macro's VDD/VSS pin
// geometry.
//
// The rail whose ports reach higher wins; ties go to VSS. A macro without
// either pin keeps PowerUndefined and no error. When both rails exist their
// combined port count must be at least 2, and more than 2 marks the macro
// as spanning several rows.
func ClassifyTopPower(m *Macro) error {
	_, vdd, hasVDD := FindPowerPin(m.Pins, VDDNames)
	_, vss, hasVSS := FindPowerPin(m.Pins, VSSNames)
	if !hasVDD && !hasVSS {
		return nil
	}

	var maxVDD, maxVSS float64
	if hasVDD {
		maxVDD = vdd.MaxPortTop()
	}
	if hasVSS {
		maxVSS = vss.MaxPortTop()
	}

	if maxVDD > maxVSS {
		m.TopPower = PowerVDD
	} else {
		m.TopPower = PowerVSS
	}

	if hasVDD && hasVSS {
		ports := len(vdd.Ports) + len(vss.Ports)
		if ports < 2 {
			return errors.New(errors.ErrCodePowerPinCount,
				"macro %s: power num error, vdd + vss => %d", m.Name, ports)
		}
		m.IsMulti = ports > 2
	}
	return nil
}
