// Package constraints reads legalizer budgets from a constraints file.
//
// The file holds whitespace separated directives:
//
//	maximum_utilization=70%
//	maximum_movement=10rows
//
// Any other keyword is a fatal error.
package constraints

import (
	"github.com/OpenTraceLab/OpenTraceDP/pkg/circuit"
)

// RowDisplacement converts a row budget into internal displacement units.
const RowDisplacement = 20

// Constraints holds the directives found in a file. Nil fields were absent.
type Constraints struct {
	MaxUtilization *float64 // percent
	MaxMovement    *int     // rows
}

// Limits overlays the constraints on base. numRows is the uniform row count
// used as the movement cap when none is given.
func (c *Constraints) Limits(base circuit.Limits, numRows int) circuit.Limits {
	limits := base
	if c != nil && c.MaxUtilization != nil {
		limits.MaxUtilization = *c.MaxUtilization
	}
	if c != nil && c.MaxMovement != nil {
		limits.Displacement = float64(*c.MaxMovement * RowDisplacement)
		limits.MaxDispConst = float64(*c.MaxMovement)
	}
	if limits.MaxDispConst == 0 {
		limits.MaxDispConst = float64(numRows)
	}
	return limits
}

// Apply sets the circuit's limits. It has the shape of a circuit.Prepare
// hook and must run after import so the row count is known.
func (c *Constraints) Apply(ckt *circuit.Circuit) error {
	ckt.Limits = c.Limits(ckt.Limits, len(ckt.Rows))
	ckt.Logger.Debug("constraints applied",
		"max_util", ckt.Limits.MaxUtilization,
		"displacement", ckt.Limits.Displacement,
		"max_disp_const", ckt.Limits.MaxDispConst)
	return nil
}
