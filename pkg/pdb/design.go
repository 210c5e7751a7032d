package pdb

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTraceDP/pkg/geom"
)

// Design is an in-memory Database, typically loaded from a design file.
type Design struct {
	Name      string
	Version   int
	Units     int
	Die       geom.Rect
	Libs      []Library
	RowList   []RowRecord
	Insts     []InstanceRecord
	RegionSet []RegionRecord
	GroupSet  []GroupRecord

	instIndex map[string]int
}

var _ Database = (*Design)(nil)

func (d *Design) DBUPerMicron() int           { return d.Units }
func (d *Design) Libraries() []Library        { return d.Libs }
func (d *Design) DieArea() geom.Rect          { return d.Die }
func (d *Design) Rows() []RowRecord           { return d.RowList }
func (d *Design) Instances() []InstanceRecord { return d.Insts }
func (d *Design) Regions() []RegionRecord     { return d.RegionSet }
func (d *Design) Groups() []GroupRecord       { return d.GroupSet }

// SetInstanceLocation moves the named instance.
func (d *Design) SetInstanceLocation(name string, x, y int) error {
	if d.instIndex == nil || len(d.instIndex) != len(d.Insts) {
		d.reindex()
	}
	i, ok := d.instIndex[name]
	if !ok {
		return fmt.Errorf("instance %q not found", name)
	}
	d.Insts[i].X = x
	d.Insts[i].Y = y
	return nil
}

// Instance returns the named instance record.
func (d *Design) Instance(name string) (InstanceRecord, bool) {
	if d.instIndex == nil || len(d.instIndex) != len(d.Insts) {
		d.reindex()
	}
	i, ok := d.instIndex[name]
	if !ok {
		return InstanceRecord{}, false
	}
	return d.Insts[i], true
}

func (d *Design) reindex() {
	d.instIndex = make(map[string]int, len(d.Insts))
	for i, inst := range d.Insts {
		d.instIndex[inst.Name] = i
	}
}
