package circuit

import (
	"github.com/OpenTraceLab/OpenTraceDP/pkg/pdb"
)

// Result is what the legalizer consumes.
type Result struct {
	Grid  *Grid
	Stats Stats
	Order []AreaCell
}

// Prepare runs the full pipeline on db with the circuit's Marker and
// Assigner. Any hooks run after import and before the grid is built;
// constraints are applied there.
func (c *Circuit) Prepare(db pdb.Database, hooks ...func(*Circuit) error) (*Result, error) {
	if err := c.Import(db); err != nil {
		return nil, err
	}
	for _, hook := range hooks {
		if err := hook(c); err != nil {
			return nil, err
		}
	}

	grid, err := c.BuildGrid(c.Marker, c.Assigner)
	if err != nil {
		return nil, err
	}

	stats, err := c.CalcDesignStats()
	if err != nil {
		return nil, err
	}

	return &Result{
		Grid:  grid,
		Stats: stats,
		Order: LargeCellOrder(c.Cells),
	}, nil
}
