// Package circuit converts a physical-design database into the discretized
// placement model a detailed-placement legalizer works on.
//
// The pipeline is linear and single-threaded:
//
//	Import -> BuildGrid -> CalcDesignStats -> LargeCellOrder
//
// Import reads sites, macros, rows and instances, derives the core area from
// the row extents and re-zeroes every internal coordinate on the core's
// lower-left corner. Source rows keep their database-frame origins so the
// grid builder can see fragmented row coverage; the uniform row table is
// regenerated over the full core.
package circuit

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/OpenTraceLab/OpenTraceDP/pkg/geom"
	"github.com/OpenTraceLab/OpenTraceDP/pkg/lib"
)

// NoCell and NoGroup mark the absence of a cell or group reference.
const (
	NoCell  = -1
	NoGroup = -1
)

// Row is a strip of sites. Exactly one of StepX/StepY is nonzero.
type Row struct {
	Name     string
	Site     int // index into Circuit.Sites
	OrigX    int
	OrigY    int
	Orient   geom.Orient
	StepX    int
	StepY    int
	NumSites int
}

// Cell is a placeable instance. Coordinates are internal (core-relative)
// database units.
type Cell struct {
	Name   string
	Macro  int // index into Circuit.Macros
	Orient geom.Orient

	Width  float64
	Height float64

	InitX, InitY float64
	X, Y         float64

	Placed bool
	Fixed  bool
	Group  int // index into Circuit.Groups, or NoGroup
}

// Area returns width times height.
func (c *Cell) Area() float64 {
	return c.Width * c.Height
}

// Group is a fence or guide region with the cells bound to it.
type Group struct {
	Name     string
	Type     string
	Tag      string // first member pattern
	Regions  []geom.Rect // internal frame
	Boundary geom.Rect
	Members  []int // indices into Circuit.Cells
}

// Limits are the legalizer budgets taken from a constraints file.
type Limits struct {
	MaxUtilization float64 // percent
	Displacement   float64 // internal units
	MaxDispConst   float64 // rows
}

// DefaultLimits matches a run without a constraints file.
func DefaultLimits() Limits {
	return Limits{
		MaxUtilization: 100.0,
		Displacement:   400.0,
	}
}

// Circuit is the imported design.
type Circuit struct {
	DBUPerMicron int

	Sites  []lib.Site
	Macros []lib.Macro

	SourceRows []Row // as read, database frame, sorted by (Y, X)
	Rows       []Row // regenerated uniform rows, internal frame
	Cells      []Cell
	Groups     []Group

	Die        geom.Rect // internal frame
	Core       geom.Rect // internal frame, LL at the origin
	CoreOrigin geom.Point

	WSite     int     // site pitch
	RowHeight float64 // database units

	Limits       Limits
	IgnoreGroups bool
	Stats        Stats

	// Grid collaborators used by Prepare.
	Marker   FixedCellMarker
	Assigner GroupAssigner

	Logger *log.Logger

	siteIndex  map[string]int
	macroIndex map[string]int
}

// Option configures a Circuit.
type Option func(*Circuit)

// WithLogger routes progress and design analysis output to l.
func WithLogger(l *log.Logger) Option {
	return func(c *Circuit) {
		c.Logger = l
	}
}

// WithIgnoreGroups skips group import and group pixel assignment.
func WithIgnoreGroups(ignore bool) Option {
	return func(c *Circuit) {
		c.IgnoreGroups = ignore
	}
}

// WithLimits presets the legalizer budgets.
func WithLimits(limits Limits) Option {
	return func(c *Circuit) {
		c.Limits = limits
	}
}

// WithFixedCellMarker replaces the default OccupancyMarker. A nil marker
// leaves fixed cells off the grid.
func WithFixedCellMarker(m FixedCellMarker) Option {
	return func(c *Circuit) {
		c.Marker = m
	}
}

// WithGroupAssigner replaces the default RegionAssigner.
func WithGroupAssigner(a GroupAssigner) Option {
	return func(c *Circuit) {
		c.Assigner = a
	}
}

// New returns an empty circuit.
func New(opts ...Option) *Circuit {
	c := &Circuit{
		Limits:   DefaultLimits(),
		Logger:   log.New(io.Discard),
		Marker:   OccupancyMarker{},
		Assigner: RegionAssigner{},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.Clear()
	return c
}

// Clear drops every imported table so the circuit can be reused.
func (c *Circuit) Clear() {
	c.Sites = nil
	c.Macros = nil
	c.SourceRows = nil
	c.Rows = nil
	c.Cells = nil
	c.Groups = nil
	c.Die = geom.EmptyRect()
	c.Core = geom.EmptyRect()
	c.CoreOrigin = geom.Point{}
	c.WSite = 0
	c.RowHeight = 0
	c.Stats = Stats{}
	c.siteIndex = make(map[string]int)
	c.macroIndex = make(map[string]int)
}

// Macro returns the template a cell instantiates.
func (c *Circuit) Macro(cell *Cell) *lib.Macro {
	return &c.Macros[cell.Macro]
}

// ToDatabase translates internal coordinates back to database units,
// rounding to the nearest integer.
func (c *Circuit) ToDatabase(x, y float64) (int, int) {
	return intConvert(x + c.CoreOrigin.X), intConvert(y + c.CoreOrigin.Y)
}
