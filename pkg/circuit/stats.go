package circuit

import (
	"github.com/OpenTraceLab/OpenTraceDP/pkg/errors"
)

// MaxDesignUtil is the utilization at which legalization cannot succeed.
const MaxDesignUtil = 1.001

// Stats summarises the design once import is complete.
type Stats struct {
	TotalCells       int
	MultiCells       int
	FixedCells       int
	TotalMovableArea float64
	TotalFixedArea   float64
	DesignArea       float64
	DesignUtil       float64
	MaxCellHeight    int // rows spanned by the tallest movable multi-row CORE macro
}

// Available returns the placeable area left after fixed cells.
func (s Stats) Available() float64 {
	return s.DesignArea - s.TotalFixedArea
}

// CalcDesignStats computes areas and utilization and stores them on the
// circuit. A utilization at or above MaxDesignUtil is a fatal error; the
// returned Stats are still filled in.
func (c *Circuit) CalcDesignStats() (Stats, error) {
	s := Stats{
		TotalCells:    len(c.Cells),
		MaxCellHeight: 1,
	}

	for i := range c.Cells {
		cell := &c.Cells[i]
		if cell.Fixed {
			s.TotalFixedArea += cell.Area()
			s.FixedCells++
		} else {
			s.TotalMovableArea += cell.Area()
		}

		macro := c.Macro(cell)
		if !macro.IsMulti {
			continue
		}
		s.MultiCells++
		if !cell.Fixed && macro.Type == "CORE" {
			rows := int(macro.Height*float64(c.DBUPerMicron)/c.RowHeight + 0.5)
			s.MaxCellHeight = max(s.MaxCellHeight, rows)
		}
	}

	scale := float64(c.DBUPerMicron)
	for _, row := range c.Rows {
		s.DesignArea += float64(row.StepX*row.NumSites) * c.Sites[row.Site].Height * scale
	}

	if s.Available() > 0 {
		s.DesignUtil = s.TotalMovableArea / s.Available()
	}
	c.Stats = s

	c.Logger.Info("design analysis",
		"cells", s.TotalCells,
		"multi", s.MultiCells,
		"fixed", s.FixedCells,
		"design_area", s.DesignArea,
		"fixed_area", s.TotalFixedArea,
		"movable_area", s.TotalMovableArea,
		"util", s.DesignUtil*100,
		"rows", len(c.Rows),
		"row_height", c.RowHeight)
	if s.MaxCellHeight > 1 {
		c.Logger.Info("multi-row cells", "max_height", s.MaxCellHeight)
	}
	if len(c.Groups) > 0 {
		c.Logger.Info("groups", "count", len(c.Groups))
	}

	if s.Available() <= 0 && s.TotalMovableArea > 0 {
		return s, errors.New(errors.ErrCodeUtilization,
			"no placeable area left: fixed cells cover %.0f of %.0f, %.0f movable to place",
			s.TotalFixedArea, s.DesignArea, s.TotalMovableArea)
	}
	if s.DesignUtil >= MaxDesignUtil {
		return s, errors.New(errors.ErrCodeUtilization,
			"utilization exceeds 100%% (%.2f%%), please double check your input files", s.DesignUtil*100)
	}
	if s.DesignUtil*100 > c.Limits.MaxUtilization {
		c.Logger.Warn("utilization above constraint", "util", s.DesignUtil*100, "max", c.Limits.MaxUtilization)
	}
	return s, nil
}
