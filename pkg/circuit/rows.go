package circuit

import (
	"math"
	"slices"

	"github.com/OpenTraceLab/OpenTraceDP/pkg/geom"
)

func intConvert(v float64) int {
	return int(math.Round(v))
}

// SortRows orders rows by Y, then X, so the first row sets the starting
// orientation for regeneration.
func SortRows(rows []Row) {
	slices.SortStableFunc(rows, func(a, b Row) int {
		if a.OrigY != b.OrigY {
			return a.OrigY - b.OrigY
		}
		return a.OrigX - b.OrigX
	})
}

// RegenerateRows builds a uniform row table spanning core at the given
// pitch. sorted must already be ordered by SortRows; its first row supplies
// the site and the starting orientation. Orientation alternates between that
// of the first row and its partner: the next source orientation that
// differs, or its mirror about the X axis when every source row agrees.
func RegenerateRows(sorted []Row, core geom.Rect, wsite int, rowHeight float64) []Row {
	if len(sorted) == 0 || wsite <= 0 || rowHeight <= 0 {
		return nil
	}

	numSites := intConvert(core.Width() / float64(wsite))
	numRows := intConvert(core.Height() / rowHeight)

	first := sorted[0].Orient
	partner := first.FlipY()
	for _, r := range sorted[1:] {
		if r.Orient != first {
			partner = r.Orient
			break
		}
	}

	rows := make([]Row, 0, numRows)
	orient := first
	for i := 0; i < numRows; i++ {
		rows = append(rows, Row{
			Site:     sorted[0].Site,
			OrigX:    intConvert(core.XLL),
			OrigY:    intConvert(core.YLL + float64(i)*rowHeight),
			Orient:   orient,
			StepX:    wsite,
			NumSites: numSites,
		})
		if orient == first {
			orient = partner
		} else {
			orient = first
		}
	}
	return rows
}
