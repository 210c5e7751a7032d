package circuit

import (
	"cmp"
	"slices"
)

// AreaCell pairs a cell index with its area.
type AreaCell struct {
	Area float64
	Cell int
}

// LargeCellOrder returns every cell sorted by descending area. Equal areas
// keep their input order.
func LargeCellOrder(cells []Cell) []AreaCell {
	order := make([]AreaCell, len(cells))
	for i := range cells {
		order[i] = AreaCell{Area: cells[i].Area(), Cell: i}
	}
	slices.SortStableFunc(order, func(a, b AreaCell) int {
		return cmp.Compare(b.Area, a.Area)
	})
	return order
}
