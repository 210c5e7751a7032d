// Package lib models the cell library: sites, macro templates, their pins and
// obstructions, and the power rail running along each macro's top edge.
//
// Library entities are built once by the importer. Apart from the two
// derived macro fields (IsMulti, TopPower) they are not mutated afterwards.
package lib

import (
	"github.com/OpenTraceLab/OpenTraceDP/pkg/errors"
	"github.com/OpenTraceLab/OpenTraceDP/pkg/geom"
)

// NoSite marks a macro that names no placement site (typically a block).
const NoSite = -1

// Site is a fixed-size placement unit rows are built from.
type Site struct {
	Name       string
	Width      float64  // microns
	Height     float64  // microns
	Class      string   // e.g. CORE, PAD
	Symmetries []string // subset of X, Y, R90
}

// Direction is a pin signal direction.
type Direction string

const (
	DirInput  Direction = "INPUT"
	DirOutput Direction = "OUTPUT"
	DirInout  Direction = "INOUT"
)

// MacroPin is a named macro terminal and its port geometry in local macro
// coordinates (database units).
type MacroPin struct {
	Direction Direction
	Ports     []geom.Rect
}

// MaxPortTop returns the largest port yUR, or 0 when the pin has no ports.
func (p *MacroPin) MaxPortTop() float64 {
	top := 0.0
	for _, port := range p.Ports {
		if port.YUR > top {
			top = port.YUR
		}
	}
	return top
}

// Power identifies a supply rail.
type Power int

const (
	PowerUndefined Power = iota
	PowerVDD
	PowerVSS
)

func (p Power) String() string {
	switch p {
	case PowerVDD:
		return "VDD"
	case PowerVSS:
		return "VSS"
	}
	return "undefined"
}

// Macro is a placement template shared by every cell instantiating it.
type Macro struct {
	Name  string
	Type  string  // CORE, BLOCK, PAD, ...
	XOrig float64 // microns
	YOrig float64 // microns

	Width  float64 // microns
	Height float64 // microns
	Site   int     // index into the site table, or NoSite

	Pins         map[string]*MacroPin
	Obstructions []geom.Rect // raw database units

	// Derived once during import.
	IsMulti  bool
	TopPower Power
}

// NewMacro returns a macro with an empty pin table.
func NewMacro(name, typ string) *Macro {
	return &Macro{
		Name:     name,
		Type:     typ,
		Site:     NoSite,
		Pins:     make(map[string]*MacroPin),
		TopPower: PowerUndefined,
	}
}

// SetPin stores pin under name. A later pin with the same name replaces the
// earlier one.
func (m *Macro) SetPin(name string, pin *MacroPin) {
	m.Pins[name] = pin
}

// RequireTopPower returns the top rail or an advisory error when the macro
// has no recognisable power pins.
func (m *Macro) RequireTopPower() (Power, error) {
	if m.TopPower == PowerUndefined {
		return PowerUndefined, errors.New(errors.ErrCodeUndefinedPower, "macro %s has no VDD/VSS pins", m.Name)
	}
	return m.TopPower, nil
}
