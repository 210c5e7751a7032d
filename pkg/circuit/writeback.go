package circuit

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTraceDP/pkg/pdb"
)

// WriteBack stores every movable cell's location in db. Placed cells write
// their current coordinates, unplaced ones their initial coordinates.
//
// Fixed cells are skipped rather than rewritten: their internal coordinates
// were clamped to the core on import, and writing them back would move a
// fixed cell that sat left of or below the core.
func (c *Circuit) WriteBack(db pdb.Database) error {
	for i := range c.Cells {
		cell := &c.Cells[i]
		if cell.Fixed {
			continue
		}
		x, y := cell.InitX, cell.InitY
		if cell.Placed {
			x, y = cell.X, cell.Y
		}
		dbX, dbY := c.ToDatabase(x, y)
		if err := db.SetInstanceLocation(cell.Name, dbX, dbY); err != nil {
			return fmt.Errorf("write back %s: %w", cell.Name, err)
		}
	}
	return nil
}
