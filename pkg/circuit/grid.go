package circuit

import (
	"math"

	"github.com/OpenTraceLab/OpenTraceDP/pkg/errors"
)

// Pixel is one site-sized cell of the placement grid.
type Pixel struct {
	Row   int
	Col   int
	Valid bool // some source row covers this site
	Cell  int  // occupying cell, or NoCell
	Group int  // owning group, or NoGroup
}

// Occupied reports whether a cell sits on the pixel.
func (p *Pixel) Occupied() bool {
	return p.Cell != NoCell
}

// Grid is the occupancy grid addressed [row][col]; row grows with Y and
// col with X. It is allocated once and never resized.
type Grid struct {
	NumRows int
	NumCols int
	Pixels  [][]Pixel
}

// NewGrid allocates a grid of invalid, free pixels.
func NewGrid(numRows, numCols int) *Grid {
	g := &Grid{
		NumRows: numRows,
		NumCols: numCols,
		Pixels:  make([][]Pixel, numRows),
	}
	for i := range g.Pixels {
		row := make([]Pixel, numCols)
		for j := range row {
			row[j] = Pixel{Row: i, Col: j, Cell: NoCell, Group: NoGroup}
		}
		g.Pixels[i] = row
	}
	return g
}

// InBounds reports whether (row, col) addresses a pixel.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.NumRows && col >= 0 && col < g.NumCols
}

// At returns the pixel at (row, col), or nil when out of range.
func (g *Grid) At(row, col int) *Pixel {
	if !g.InBounds(row, col) {
		return nil
	}
	return &g.Pixels[row][col]
}

// MarkValid marks columns [colStart, colEnd) of row valid, clipped to the
// grid.
func (g *Grid) MarkValid(row, colStart, colEnd int) {
	if row < 0 || row >= g.NumRows {
		return
	}
	colStart = max(colStart, 0)
	colEnd = min(colEnd, g.NumCols)
	for col := colStart; col < colEnd; col++ {
		g.Pixels[row][col].Valid = true
	}
}

// ValidCount returns the number of valid pixels.
func (g *Grid) ValidCount() int {
	n := 0
	for i := range g.Pixels {
		for j := range g.Pixels[i] {
			if g.Pixels[i][j].Valid {
				n++
			}
		}
	}
	return n
}

// FixedCellMarker marks the pixels held by fixed cells.
type FixedCellMarker interface {
	MarkFixedCells(g *Grid, c *Circuit) error
}

// GroupAssigner tags the pixels owned by each group.
type GroupAssigner interface {
	AssignGroups(g *Grid, c *Circuit) error
}

// BuildGrid allocates the grid over the shifted die, seeds validity from the
// source rows, then hands the grid to marker and assigner. Either may be nil.
func (c *Circuit) BuildGrid(marker FixedCellMarker, assigner GroupAssigner) (*Grid, error) {
	if c.WSite <= 0 || c.RowHeight <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "grid needs an imported design")
	}

	height := math.Max(c.Die.YUR, c.Core.YUR)
	width := math.Max(c.Die.XUR, c.Core.XUR)
	g := NewGrid(intConvert(height/c.RowHeight), intConvert(width/float64(c.WSite)))

	for _, row := range c.SourceRows {
		colStart := intConvert((float64(row.OrigX) - c.CoreOrigin.X) / float64(c.WSite))
		rowIdx := intConvert((float64(row.OrigY) - c.CoreOrigin.Y) / c.RowHeight)
		g.MarkValid(rowIdx, colStart, colStart+row.NumSites)
	}

	if marker != nil {
		if err := marker.MarkFixedCells(g, c); err != nil {
			return nil, err
		}
	}
	if assigner != nil && !c.IgnoreGroups {
		if err := assigner.AssignGroups(g, c); err != nil {
			return nil, err
		}
	}

	c.Logger.Debug("grid built", "rows", g.NumRows, "cols", g.NumCols, "valid", g.ValidCount())
	return g, nil
}
