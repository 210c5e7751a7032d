package circuit

import (
	"fmt"
	"math"
	"strings"

	"github.com/OpenTraceLab/OpenTraceDP/pkg/errors"
	"github.com/OpenTraceLab/OpenTraceDP/pkg/geom"
	"github.com/OpenTraceLab/OpenTraceDP/pkg/lib"
	"github.com/OpenTraceLab/OpenTraceDP/pkg/pdb"
)

// Import populates the circuit from db in a fixed order: sites, macros,
// rows, cells, groups. It then re-zeroes the core and die frames on the
// core origin and regenerates the uniform row table.
func (c *Circuit) Import(db pdb.Database) error {
	c.Clear()

	c.DBUPerMicron = db.DBUPerMicron()
	if c.DBUPerMicron <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "database units per micron must be positive, got %d", c.DBUPerMicron)
	}

	for _, library := range db.Libraries() {
		c.importSites(library)
	}
	for _, library := range db.Libraries() {
		if err := c.importMacros(library); err != nil {
			return fmt.Errorf("library %s: %w", library.Name, err)
		}
	}

	die := db.DieArea()

	if err := c.importRows(db.Rows()); err != nil {
		return err
	}
	if err := c.importCells(db.Instances()); err != nil {
		return err
	}

	// Re-zero on the core origin.
	c.CoreOrigin = geom.Point{X: c.Core.XLL, Y: c.Core.YLL}
	c.Core = c.Core.Translate(-c.CoreOrigin.X, -c.CoreOrigin.Y)
	c.Die = die.Translate(-c.CoreOrigin.X, -c.CoreOrigin.Y)

	if !c.IgnoreGroups {
		if err := c.importGroups(db.Regions(), db.Groups()); err != nil {
			return err
		}
	}

	SortRows(c.SourceRows)
	c.Rows = RegenerateRows(c.SourceRows, c.Core, c.WSite, c.RowHeight)
	if c.Limits.MaxDispConst == 0 {
		c.Limits.MaxDispConst = float64(len(c.Rows))
	}

	c.Logger.Debug("core area", "rect", c.Core, "origin", c.CoreOrigin)
	c.Logger.Debug("die area", "rect", c.Die)
	c.Logger.Info("imported design",
		"sites", len(c.Sites), "macros", len(c.Macros),
		"rows", len(c.SourceRows), "cells", len(c.Cells))
	return nil
}

func (c *Circuit) importSites(library pdb.Library) {
	scale := float64(c.DBUPerMicron)
	for _, rec := range library.Sites {
		site := lib.Site{
			Name:   rec.Name,
			Width:  float64(rec.Width) / scale,
			Height: float64(rec.Height) / scale,
			Class:  rec.Class,
		}
		if rec.SymmetryX {
			site.Symmetries = append(site.Symmetries, "X")
		}
		if rec.SymmetryY {
			site.Symmetries = append(site.Symmetries, "Y")
		}
		if rec.SymmetryR90 {
			site.Symmetries = append(site.Symmetries, "R90")
		}
		c.siteIndex[rec.Name] = len(c.Sites)
		c.Sites = append(c.Sites, site)
	}
}

func (c *Circuit) lookupSite(name string) (int, error) {
	idx, ok := c.siteIndex[name]
	if !ok {
		return lib.NoSite, errors.New(errors.ErrCodeMissingReference, "site %q is not defined", name)
	}
	return idx, nil
}

func (c *Circuit) importMacros(library pdb.Library) error {
	scale := float64(c.DBUPerMicron)
	for _, rec := range library.Masters {
		macro := lib.NewMacro(rec.Name, rec.Type)
		macro.XOrig = float64(rec.OriginX) / scale
		macro.YOrig = float64(rec.OriginY) / scale
		macro.Width = float64(rec.Width) / scale
		macro.Height = float64(rec.Height) / scale

		if rec.Site != "" {
			idx, err := c.lookupSite(rec.Site)
			if err != nil {
				return fmt.Errorf("macro %s: %w", rec.Name, err)
			}
			macro.Site = idx
		}

		for _, term := range rec.Terms {
			pin := &lib.MacroPin{Direction: lib.Direction(term.IOType)}
			for _, p := range term.Pins {
				pin.Ports = append(pin.Ports, p.Boxes...)
			}
			macro.SetPin(term.Name, pin)
		}
		macro.Obstructions = append(macro.Obstructions, rec.Obstructions...)

		if err := lib.ClassifyTopPower(macro); err != nil {
			return err
		}
		if macro.TopPower == lib.PowerUndefined && macro.Type == "CORE" {
			c.Logger.Warn("macro has no power pins", "macro", macro.Name)
		}

		c.macroIndex[rec.Name] = len(c.Macros)
		c.Macros = append(c.Macros, *macro)
	}
	return nil
}

// importRows reads the source rows and grows the core box over them. The
// first row fixes RowHeight and WSite for the whole design.
func (c *Circuit) importRows(records []pdb.RowRecord) error {
	if len(records) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "design has no rows")
	}

	scale := float64(c.DBUPerMicron)
	for _, rec := range records {
		siteIdx, err := c.lookupSite(rec.Site)
		if err != nil {
			return fmt.Errorf("row %s: %w", rec.Name, err)
		}
		row := Row{
			Name:     rec.Name,
			Site:     siteIdx,
			OrigX:    rec.OriginX,
			OrigY:    rec.OriginY,
			Orient:   rec.Orient,
			NumSites: rec.SiteCount,
		}
		switch rec.Direction {
		case pdb.Horizontal:
			row.StepX = rec.Spacing
		case pdb.Vertical:
			row.StepY = rec.Spacing
		}

		site := c.Sites[siteIdx]
		if c.RowHeight == 0 {
			c.RowHeight = site.Height * scale
		}
		if c.WSite == 0 {
			c.WSite = int(site.Width*scale + 0.5)
		}

		c.Core.XLL = math.Min(float64(row.OrigX), c.Core.XLL)
		c.Core.YLL = math.Min(float64(row.OrigY), c.Core.YLL)
		c.Core.XUR = math.Max(float64(row.OrigX+row.NumSites*c.WSite), c.Core.XUR)
		c.Core.YUR = math.Max(float64(row.OrigY)+c.RowHeight, c.Core.YUR)

		c.SourceRows = append(c.SourceRows, row)
	}

	if c.RowHeight <= 0 || c.WSite <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "row site has zero size (height %g, width %d)", c.RowHeight, c.WSite)
	}
	return nil
}

// importCells shifts every instance by the core origin. Fixed cells are
// placed where they stand; movable cells keep only their initial location.
func (c *Circuit) importCells(records []pdb.InstanceRecord) error {
	scale := float64(c.DBUPerMicron)
	c.Cells = make([]Cell, 0, len(records))
	for _, rec := range records {
		macroIdx, ok := c.macroIndex[rec.Master]
		if !ok {
			return errors.New(errors.ErrCodeMissingReference, "instance %s: macro %q is not defined", rec.Name, rec.Master)
		}
		macro := &c.Macros[macroIdx]

		w, h, err := geom.OrientedSize(macro.Width, macro.Height, rec.Orient)
		if err != nil {
			return fmt.Errorf("instance %s: %w", rec.Name, err)
		}

		cell := Cell{
			Name:   rec.Name,
			Macro:  macroIdx,
			Orient: rec.Orient,
			Width:  w * scale,
			Height: h * scale,
			InitX:  math.Max(0, float64(rec.X)-c.Core.XLL),
			InitY:  math.Max(0, float64(rec.Y)-c.Core.YLL),
			Fixed:  rec.Status.IsFixed(),
			Group:  NoGroup,
		}
		if cell.Fixed {
			cell.X = cell.InitX
			cell.Y = cell.InitY
			cell.Placed = true
		}
		c.Cells = append(c.Cells, cell)
	}
	return nil
}

// importGroups binds each group to its region. Member patterns ending in
// '*' match by prefix, others match exactly. A cell joins at most one group.
func (c *Circuit) importGroups(regions []pdb.RegionRecord, groups []pdb.GroupRecord) error {
	byName := make(map[string]pdb.RegionRecord, len(regions))
	for _, r := range regions {
		byName[r.Name] = r
	}

	for _, rec := range groups {
		region, ok := byName[rec.Region]
		if !ok {
			return errors.New(errors.ErrCodeMissingReference, "group %s: region %q is not defined", rec.Name, rec.Region)
		}

		groupIdx := len(c.Groups)
		group := Group{
			Name: rec.Name,
			Type: region.Type,
		}
		for _, r := range region.Rects {
			group.Regions = append(group.Regions, r.Translate(-c.CoreOrigin.X, -c.CoreOrigin.Y))
		}
		group.Boundary = geom.BoundingBoxOf(group.Regions...)

		if len(rec.Members) > 0 {
			group.Tag = rec.Members[0]
		}
		for _, pattern := range rec.Members {
			for i := range c.Cells {
				cell := &c.Cells[i]
				if cell.Group != NoGroup || !matchMember(pattern, cell.Name) {
					continue
				}
				cell.Group = groupIdx
				group.Members = append(group.Members, i)
			}
		}
		c.Groups = append(c.Groups, group)
	}
	return nil
}

func matchMember(pattern, name string) bool {
	if prefix, ok := strings.CutSuffix(pattern, "*"); ok {
		return strings.HasPrefix(name, prefix)
	}
	return pattern == name
}
