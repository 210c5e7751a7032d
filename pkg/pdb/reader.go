package pdb

import (
	"fmt"
	"io"
	"os"

	"github.com/OpenTraceLab/OpenTraceDP/pkg/errors"
	"github.com/OpenTraceLab/OpenTraceDP/pkg/geom"
	"github.com/OpenTraceLab/OpenTraceDP/pkg/pdb/sexpr"
)

// FormatVersion is the design-file version this package reads and writes.
const FormatVersion = 1

// ParseFile reads and parses a design file.
func ParseFile(filename string) (*Design, error) {
	file, err := os.Open(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "design %s", filename)
		}
		return nil, errors.Wrap(errors.ErrCodeIO, err, "design %s", filename)
	}
	defer file.Close()

	return Parse(file)
}

// Parse reads a design from r.
// Expected format: (design "name" (version 1) (units N) (die ...) (library ...) (row ...) ...)
func Parse(r io.Reader) (*Design, error) {
	nodes, err := sexpr.Parse(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, err, "failed to parse s-expression")
	}
	if len(nodes) == 0 {
		return nil, errors.New(errors.ErrCodeParse, "empty file or no valid s-expressions found")
	}

	root, ok := nodes[0].(*sexpr.List)
	if !ok || root.Key() != "design" {
		return nil, errors.New(errors.ErrCodeParse, "not a design file: expected 'design', got %q", nodes[0].String())
	}

	d, err := parseDesign(root)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, err, "design")
	}
	return d, nil
}

func parseDesign(root *sexpr.List) (*Design, error) {
	d := &Design{}
	d.Name, _ = getString(root, 1)

	version, err := reqInt(root, "version")
	if err != nil {
		return nil, err
	}
	if version != FormatVersion {
		return nil, fmt.Errorf("unsupported design version: %d (want %d)", version, FormatVersion)
	}
	d.Version = version

	d.Units, err = reqInt(root, "units")
	if err != nil {
		return nil, err
	}
	if d.Units <= 0 {
		return nil, fmt.Errorf("units must be positive, got %d", d.Units)
	}

	dieNode, ok := root.Find("die")
	if !ok {
		return nil, fmt.Errorf("missing required 'die' field")
	}
	if d.Die, err = getRect(dieNode); err != nil {
		return nil, err
	}

	for _, node := range root.FindAll("library") {
		lib, err := parseLibrary(node)
		if err != nil {
			return nil, err
		}
		d.Libs = append(d.Libs, *lib)
	}

	for _, node := range root.FindAll("row") {
		row, err := parseRow(node)
		if err != nil {
			return nil, err
		}
		d.RowList = append(d.RowList, *row)
	}

	for _, node := range root.FindAll("component") {
		inst, err := parseComponent(node)
		if err != nil {
			return nil, err
		}
		d.Insts = append(d.Insts, *inst)
	}

	for _, node := range root.FindAll("region") {
		region, err := parseRegion(node)
		if err != nil {
			return nil, err
		}
		d.RegionSet = append(d.RegionSet, *region)
	}

	for _, node := range root.FindAll("group") {
		group, err := parseGroup(node)
		if err != nil {
			return nil, err
		}
		d.GroupSet = append(d.GroupSet, *group)
	}

	d.reindex()
	return d, nil
}

// parseLibrary handles (library "name" (site ...) (macro ...) ...)
func parseLibrary(node *sexpr.List) (*Library, error) {
	name, err := getString(node, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to parse library name: %w", err)
	}
	lib := &Library{Name: name}

	for _, siteNode := range node.FindAll("site") {
		site, err := parseSite(siteNode)
		if err != nil {
			return nil, fmt.Errorf("library %s: %w", name, err)
		}
		lib.Sites = append(lib.Sites, *site)
	}

	for _, macroNode := range node.FindAll("macro") {
		master, err := parseMacro(macroNode)
		if err != nil {
			return nil, fmt.Errorf("library %s: %w", name, err)
		}
		lib.Masters = append(lib.Masters, *master)
	}
	return lib, nil
}

// parseSite handles (site "name" (class CORE) (size W H) (symmetry X Y R90))
func parseSite(node *sexpr.List) (*SiteRecord, error) {
	name, err := getString(node, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to parse site name: %w", err)
	}
	site := &SiteRecord{
		Name:  name,
		Class: optString(node, "class", "CORE"),
	}

	sizeNode, ok := node.Find("size")
	if !ok {
		return nil, fmt.Errorf("site %s: missing required 'size' field", name)
	}
	if site.Width, site.Height, err = getIntPair(sizeNode); err != nil {
		return nil, fmt.Errorf("site %s: %w", name, err)
	}

	if symNode, ok := node.Find("symmetry"); ok {
		for i := 1; i < symNode.Len(); i++ {
			sym, _ := getString(symNode, i)
			switch sym {
			case "X":
				site.SymmetryX = true
			case "Y":
				site.SymmetryY = true
			case "R90":
				site.SymmetryR90 = true
			default:
				return nil, fmt.Errorf("site %s: unknown symmetry %q", name, sym)
			}
		}
	}
	return site, nil
}

// parseMacro handles
// (macro "name" (class CORE) (origin X Y) (size W H) (site "s") (pin ...) (obs ...))
func parseMacro(node *sexpr.List) (*MasterRecord, error) {
	name, err := getString(node, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to parse macro name: %w", err)
	}
	master := &MasterRecord{
		Name: name,
		Type: optString(node, "class", "CORE"),
		Site: optString(node, "site", ""),
	}

	if originNode, ok := node.Find("origin"); ok {
		if master.OriginX, master.OriginY, err = getIntPair(originNode); err != nil {
			return nil, fmt.Errorf("macro %s: %w", name, err)
		}
	}

	sizeNode, ok := node.Find("size")
	if !ok {
		return nil, fmt.Errorf("macro %s: missing required 'size' field", name)
	}
	if master.Width, master.Height, err = getIntPair(sizeNode); err != nil {
		return nil, fmt.Errorf("macro %s: %w", name, err)
	}

	for _, pinNode := range node.FindAll("pin") {
		term, err := parseTerm(pinNode)
		if err != nil {
			return nil, fmt.Errorf("macro %s: %w", name, err)
		}
		master.Terms = append(master.Terms, *term)
	}

	for _, obsNode := range node.FindAll("obs") {
		rects, err := getRects(obsNode)
		if err != nil {
			return nil, fmt.Errorf("macro %s obs: %w", name, err)
		}
		master.Obstructions = append(master.Obstructions, rects...)
	}
	return master, nil
}

// parseTerm handles (pin "name" (direction INPUT) (port (rect ...) ...) ...)
// Each (port ...) is one physical pin of the terminal.
func parseTerm(node *sexpr.List) (*TermRecord, error) {
	name, err := getString(node, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to parse pin name: %w", err)
	}
	term := &TermRecord{
		Name:   name,
		IOType: optString(node, "direction", "INOUT"),
	}
	for _, portNode := range node.FindAll("port") {
		boxes, err := getRects(portNode)
		if err != nil {
			return nil, fmt.Errorf("pin %s: %w", name, err)
		}
		term.Pins = append(term.Pins, PinRecord{Boxes: boxes})
	}
	return term, nil
}

// parseRow handles
// (row "name" (site "s") (origin X Y) (orient N) (direction HORIZONTAL) (spacing S) (count N))
func parseRow(node *sexpr.List) (*RowRecord, error) {
	name, err := getString(node, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to parse row name: %w", err)
	}
	row := &RowRecord{Name: name}

	if row.Site, err = reqString(node, "site"); err != nil {
		return nil, fmt.Errorf("row %s: %w", name, err)
	}

	originNode, ok := node.Find("origin")
	if !ok {
		return nil, fmt.Errorf("row %s: missing required 'origin' field", name)
	}
	if row.OriginX, row.OriginY, err = getIntPair(originNode); err != nil {
		return nil, fmt.Errorf("row %s: %w", name, err)
	}

	if row.Orient, err = geom.ParseOrient(optString(node, "orient", "N")); err != nil {
		return nil, fmt.Errorf("row %s: %w", name, err)
	}
	if row.Direction, err = ParseRowDirection(optString(node, "direction", "HORIZONTAL")); err != nil {
		return nil, fmt.Errorf("row %s: %w", name, err)
	}
	if row.Spacing, err = reqInt(node, "spacing"); err != nil {
		return nil, fmt.Errorf("row %s: %w", name, err)
	}
	if row.SiteCount, err = reqInt(node, "count"); err != nil {
		return nil, fmt.Errorf("row %s: %w", name, err)
	}
	return row, nil
}

// parseComponent handles
// (component "name" (macro "m") (orient N) (status PLACED) (at X Y))
func parseComponent(node *sexpr.List) (*InstanceRecord, error) {
	name, err := getString(node, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to parse component name: %w", err)
	}
	inst := &InstanceRecord{Name: name}

	if inst.Master, err = reqString(node, "macro"); err != nil {
		return nil, fmt.Errorf("component %s: %w", name, err)
	}
	if inst.Orient, err = geom.ParseOrient(optString(node, "orient", "N")); err != nil {
		return nil, fmt.Errorf("component %s: %w", name, err)
	}
	if inst.Status, err = ParsePlacementStatus(optString(node, "status", "UNPLACED")); err != nil {
		return nil, fmt.Errorf("component %s: %w", name, err)
	}
	if atNode, ok := node.Find("at"); ok {
		if inst.X, inst.Y, err = getIntPair(atNode); err != nil {
			return nil, fmt.Errorf("component %s: %w", name, err)
		}
	}
	return inst, nil
}

// parseRegion handles (region "name" (type FENCE) (rect ...) ...)
func parseRegion(node *sexpr.List) (*RegionRecord, error) {
	name, err := getString(node, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to parse region name: %w", err)
	}
	rects, err := getRects(node)
	if err != nil {
		return nil, fmt.Errorf("region %s: %w", name, err)
	}
	return &RegionRecord{
		Name:  name,
		Type:  optString(node, "type", "FENCE"),
		Rects: rects,
	}, nil
}

// parseGroup handles (group "name" (region "r") (member "pattern") ...)
func parseGroup(node *sexpr.List) (*GroupRecord, error) {
	name, err := getString(node, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to parse group name: %w", err)
	}
	group := &GroupRecord{
		Name:   name,
		Region: optString(node, "region", ""),
	}
	for _, member := range node.FindAll("member") {
		pattern, err := getString(member, 1)
		if err != nil {
			return nil, fmt.Errorf("group %s: %w", name, err)
		}
		group.Members = append(group.Members, pattern)
	}
	return group, nil
}
