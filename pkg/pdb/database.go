// Package pdb is the boundary to the physical-design database: the records
// the importer reads (libraries, rows, instances, regions, groups) and the
// single write the pipeline performs (instance locations).
//
// Coordinates are integer database units; DBUPerMicron converts them.
package pdb

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTraceDP/pkg/geom"
)

// Database is what the importer needs from a physical-design database.
type Database interface {
	// DBUPerMicron returns the database-units-per-micron scale.
	DBUPerMicron() int
	// Libraries returns every library in load order.
	Libraries() []Library
	// DieArea returns the chip boundary.
	DieArea() geom.Rect
	// Rows returns the placement rows as stored, possibly fragmented.
	Rows() []RowRecord
	// Instances returns every placed or unplaced instance.
	Instances() []InstanceRecord
	// Regions returns fence/guide regions.
	Regions() []RegionRecord
	// Groups returns instance groups bound to regions.
	Groups() []GroupRecord
	// SetInstanceLocation moves the named instance. Orientation is kept.
	SetInstanceLocation(name string, x, y int) error
}

// Library holds sites and masters.
type Library struct {
	Name    string
	Sites   []SiteRecord
	Masters []MasterRecord
}

// SiteRecord is a site definition in database units.
type SiteRecord struct {
	Name        string
	Class       string
	Width       int
	Height      int
	SymmetryX   bool
	SymmetryY   bool
	SymmetryR90 bool
}

// MasterRecord is a macro definition in database units.
type MasterRecord struct {
	Name         string
	Type         string
	OriginX      int
	OriginY      int
	Width        int
	Height       int
	Site         string // empty for masters without a site
	Terms        []TermRecord
	Obstructions []geom.Rect
}

// TermRecord is a master terminal; each pin contributes port boxes.
type TermRecord struct {
	Name   string
	IOType string
	Pins   []PinRecord
}

// PinRecord is one physical pin of a terminal.
type PinRecord struct {
	Boxes []geom.Rect
}

// RowDirection is the stepping direction of a row.
type RowDirection int

const (
	Horizontal RowDirection = iota
	Vertical
)

func (d RowDirection) String() string {
	if d == Vertical {
		return "VERTICAL"
	}
	return "HORIZONTAL"
}

// ParseRowDirection accepts HORIZONTAL or VERTICAL.
func ParseRowDirection(s string) (RowDirection, error) {
	switch s {
	case "HORIZONTAL":
		return Horizontal, nil
	case "VERTICAL":
		return Vertical, nil
	}
	return 0, fmt.Errorf("unknown row direction %q", s)
}

// RowRecord is a row as stored in the database.
type RowRecord struct {
	Name      string
	Site      string
	OriginX   int
	OriginY   int
	Orient    geom.Orient
	Direction RowDirection
	Spacing   int
	SiteCount int
}

// PlacementStatus is an instance's placement state.
type PlacementStatus int

const (
	StatusNone PlacementStatus = iota
	StatusUnplaced
	StatusSuggested
	StatusPlaced
	StatusLocked
	StatusFirm
	StatusCover
)

var statusNames = [...]string{"NONE", "UNPLACED", "SUGGESTED", "PLACED", "LOCKED", "FIRM", "COVER"}

func (s PlacementStatus) String() string {
	if s < StatusNone || s > StatusCover {
		return fmt.Sprintf("PlacementStatus(%d)", int(s))
	}
	return statusNames[s]
}

// ParsePlacementStatus converts a status keyword.
func ParsePlacementStatus(s string) (PlacementStatus, error) {
	for i, name := range statusNames {
		if name == s {
			return PlacementStatus(i), nil
		}
	}
	return 0, fmt.Errorf("unknown placement status %q", s)
}

// IsFixed reports whether an instance with this status must not move.
func (s PlacementStatus) IsFixed() bool {
	return s == StatusFirm || s == StatusLocked || s == StatusCover
}

// InstanceRecord is an instance and its current location.
type InstanceRecord struct {
	Name   string
	Master string
	Orient geom.Orient
	Status PlacementStatus
	X      int
	Y      int
}

// RegionRecord is a named set of rectangles.
type RegionRecord struct {
	Name  string
	Type  string // FENCE or GUIDE
	Rects []geom.Rect
}

// GroupRecord binds member name patterns to a region.
type GroupRecord struct {
	Name    string
	Region  string
	Members []string
}
