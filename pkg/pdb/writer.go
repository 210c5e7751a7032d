package pdb

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/OpenTraceLab/OpenTraceDP/pkg/errors"
	"github.com/OpenTraceLab/OpenTraceDP/pkg/geom"
)

// WriteFile writes the design to filename, replacing it.
func (d *Design) WriteFile(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "design %s", filename)
	}
	if _, err := d.WriteTo(file); err != nil {
		file.Close()
		return errors.Wrap(errors.ErrCodeIO, err, "design %s", filename)
	}
	return file.Close()
}

// WriteTo serialises the design in the format Parse reads.
func (d *Design) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: bufio.NewWriter(w)}

	version := d.Version
	if version == 0 {
		version = FormatVersion
	}
	cw.printf("(design %s (version %d) (units %d)\n", quote(d.Name), version, d.Units)
	cw.printf("  %s\n", rectExpr("die", d.Die))

	for _, lib := range d.Libs {
		cw.printf("  (library %s\n", quote(lib.Name))
		for _, s := range lib.Sites {
			cw.printf("    (site %s (class %s) (size %d %d)%s)\n",
				quote(s.Name), s.Class, s.Width, s.Height, symmetryExpr(s))
		}
		for _, m := range lib.Masters {
			cw.printf("    (macro %s (class %s) (origin %d %d) (size %d %d)",
				quote(m.Name), m.Type, m.OriginX, m.OriginY, m.Width, m.Height)
			if m.Site != "" {
				cw.printf(" (site %s)", quote(m.Site))
			}
			for _, t := range m.Terms {
				cw.printf("\n      (pin %s (direction %s)", quote(t.Name), t.IOType)
				for _, p := range t.Pins {
					cw.printf(" (port%s)", rectsExpr(p.Boxes))
				}
				cw.printf(")")
			}
			if len(m.Obstructions) > 0 {
				cw.printf("\n      (obs%s)", rectsExpr(m.Obstructions))
			}
			cw.printf(")\n")
		}
		cw.printf("  )\n")
	}

	for _, r := range d.RowList {
		cw.printf("  (row %s (site %s) (origin %d %d) (orient %s) (direction %s) (spacing %d) (count %d))\n",
			quote(r.Name), quote(r.Site), r.OriginX, r.OriginY, r.Orient.DEF(), r.Direction, r.Spacing, r.SiteCount)
	}

	for _, inst := range d.Insts {
		cw.printf("  (component %s (macro %s) (orient %s) (status %s) (at %d %d))\n",
			quote(inst.Name), quote(inst.Master), inst.Orient.DEF(), inst.Status, inst.X, inst.Y)
	}

	for _, region := range d.RegionSet {
		cw.printf("  (region %s (type %s)%s)\n", quote(region.Name), region.Type, rectsExpr(region.Rects))
	}

	for _, group := range d.GroupSet {
		cw.printf("  (group %s (region %s)", quote(group.Name), quote(group.Region))
		for _, m := range group.Members {
			cw.printf(" (member %s)", quote(m))
		}
		cw.printf(")\n")
	}
	cw.printf(")\n")

	if cw.err != nil {
		return cw.n, cw.err
	}
	return cw.n, cw.w.Flush()
}

type countingWriter struct {
	w   *bufio.Writer
	n   int64
	err error
}

func (c *countingWriter) printf(format string, args ...any) {
	if c.err != nil {
		return
	}
	n, err := fmt.Fprintf(c.w, format, args...)
	c.n += int64(n)
	c.err = err
}

func quote(s string) string {
	return strconv.Quote(s)
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func rectExpr(key string, r geom.Rect) string {
	return fmt.Sprintf("(%s %s %s %s %s)", key, num(r.XLL), num(r.YLL), num(r.XUR), num(r.YUR))
}

func rectsExpr(rects []geom.Rect) string {
	var b strings.Builder
	for _, r := range rects {
		b.WriteByte(' ')
		b.WriteString(rectExpr("rect", r))
	}
	return b.String()
}

func symmetryExpr(s SiteRecord) string {
	var syms []string
	if s.SymmetryX {
		syms = append(syms, "X")
	}
	if s.SymmetryY {
		syms = append(syms, "Y")
	}
	if s.SymmetryR90 {
		syms = append(syms, "R90")
	}
	if len(syms) == 0 {
		return ""
	}
	return " (symmetry " + strings.Join(syms, " ") + ")"
}
