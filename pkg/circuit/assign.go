package circuit

import (
	"math"

	"github.com/OpenTraceLab/OpenTraceDP/pkg/geom"
)

// OccupancyMarker links every pixel under a fixed cell's footprint to that
// cell. Footprints are rounded outward to whole sites and rows.
type OccupancyMarker struct{}

func (OccupancyMarker) MarkFixedCells(g *Grid, c *Circuit) error {
	wsite := float64(c.WSite)
	for i := range c.Cells {
		cell := &c.Cells[i]
		if !cell.Fixed {
			continue
		}
		colStart := int(math.Floor(cell.X / wsite))
		colEnd := int(math.Ceil((cell.X + cell.Width) / wsite))
		rowStart := int(math.Floor(cell.Y / c.RowHeight))
		rowEnd := int(math.Ceil((cell.Y + cell.Height) / c.RowHeight))

		for r := max(rowStart, 0); r < min(rowEnd, g.NumRows); r++ {
			for col := max(colStart, 0); col < min(colEnd, g.NumCols); col++ {
				g.Pixels[r][col].Cell = i
			}
		}
	}
	return nil
}

// RegionAssigner tags each valid pixel lying wholly inside one of a group's
// region rectangles with that group.
type RegionAssigner struct{}

func (RegionAssigner) AssignGroups(g *Grid, c *Circuit) error {
	wsite := float64(c.WSite)
	extent := geom.Rect{XUR: float64(g.NumCols) * wsite, YUR: float64(g.NumRows) * c.RowHeight}
	for gi := range c.Groups {
		for _, rect := range c.Groups[gi].Regions {
			if !rect.Intersects(extent) {
				continue
			}
			colStart := int(math.Floor(rect.XLL / wsite))
			colEnd := int(math.Ceil(rect.XUR / wsite))
			rowStart := int(math.Floor(rect.YLL / c.RowHeight))
			rowEnd := int(math.Ceil(rect.YUR / c.RowHeight))

			for r := max(rowStart, 0); r < min(rowEnd, g.NumRows); r++ {
				for col := max(colStart, 0); col < min(colEnd, g.NumCols); col++ {
					px := &g.Pixels[r][col]
					site := geom.Rect{
						XLL: float64(col) * wsite,
						YLL: float64(r) * c.RowHeight,
						XUR: float64(col+1) * wsite,
						YUR: float64(r+1) * c.RowHeight,
					}
					if px.Valid && rect.ContainsRect(site) {
						px.Group = gi
					}
				}
			}
		}
	}
	return nil
}
