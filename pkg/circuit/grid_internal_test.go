package circuit

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/OpenTraceLab/OpenTraceDP/pkg/geom"
	"github.com/OpenTraceLab/OpenTraceDP/pkg/pdb"
)

const smallDesign = "../pdb/testdata/small.dsn"

var _ = Describe("Grid", func() {
	var (
		design *pdb.Design
		c      *Circuit
	)

	BeforeEach(func() {
		var err error
		design, err = pdb.ParseFile(smallDesign)
		Expect(err).NotTo(HaveOccurred())

		c = New()
		Expect(c.Import(design)).To(Succeed())
	})

	It("should size the grid over the shifted die", func() {
		g, err := c.BuildGrid(nil, nil)

		Expect(err).NotTo(HaveOccurred())
		Expect(g.NumRows).To(Equal(4))
		Expect(g.NumCols).To(Equal(15))
	})

	It("should mark only sites covered by a source row valid", func() {
		g, err := c.BuildGrid(nil, nil)
		Expect(err).NotTo(HaveOccurred())

		for col := 0; col < g.NumCols; col++ {
			Expect(g.At(0, col).Valid).To(Equal(col < 10), "row 0 col %d", col)
			Expect(g.At(1, col).Valid).To(Equal(col < 10), "row 1 col %d", col)
			Expect(g.At(2, col).Valid).To(Equal(col >= 2 && col < 7), "row 2 col %d", col)
			Expect(g.At(3, col).Valid).To(BeFalse(), "row 3 col %d", col)
		}
		Expect(g.ValidCount()).To(Equal(25))
	})

	It("should leave pixels free and ungrouped without marker and assigner", func() {
		g, err := c.BuildGrid(nil, nil)
		Expect(err).NotTo(HaveOccurred())

		for r := range g.Pixels {
			for col := range g.Pixels[r] {
				px := g.At(r, col)
				Expect(px.Occupied()).To(BeFalse())
				Expect(px.Group).To(Equal(NoGroup))
				Expect(px.Row).To(Equal(r))
				Expect(px.Col).To(Equal(col))
			}
		}
	})

	It("should return nil outside the grid", func() {
		g, err := c.BuildGrid(nil, nil)
		Expect(err).NotTo(HaveOccurred())

		Expect(g.At(-1, 0)).To(BeNil())
		Expect(g.At(0, g.NumCols)).To(BeNil())
		Expect(g.At(g.NumRows, 0)).To(BeNil())
	})

	It("should mark the footprint of fixed cells", func() {
		g, err := c.BuildGrid(OccupancyMarker{}, nil)
		Expect(err).NotTo(HaveOccurred())

		blk := -1
		for i := range c.Cells {
			if c.Cells[i].Name == "blk" {
				blk = i
			}
		}
		Expect(blk).NotTo(Equal(-1))

		for r := 0; r < g.NumRows; r++ {
			for col := 0; col < g.NumCols; col++ {
				inside := r < 2 && col >= 7 && col < 10
				if inside {
					Expect(g.At(r, col).Cell).To(Equal(blk), "row %d col %d", r, col)
				} else {
					Expect(g.At(r, col).Occupied()).To(BeFalse(), "row %d col %d", r, col)
				}
			}
		}
	})

	It("should assign valid pixels inside a fence to its group", func() {
		g, err := c.BuildGrid(nil, RegionAssigner{})
		Expect(err).NotTo(HaveOccurred())
		Expect(c.Groups).To(HaveLen(1))

		grouped := 0
		for r := range g.Pixels {
			for col := range g.Pixels[r] {
				if g.Pixels[r][col].Group == 0 {
					grouped++
					Expect(r).To(Equal(2))
					Expect(col).To(BeNumerically(">=", 2))
					Expect(col).To(BeNumerically("<", 7))
				}
			}
		}
		Expect(grouped).To(Equal(5))
	})

	It("should skip group assignment when groups are ignored", func() {
		c = New(WithIgnoreGroups(true))
		Expect(c.Import(design)).To(Succeed())
		Expect(c.Groups).To(BeEmpty())

		g, err := c.BuildGrid(nil, RegionAssigner{})
		Expect(err).NotTo(HaveOccurred())
		for r := range g.Pixels {
			for col := range g.Pixels[r] {
				Expect(g.Pixels[r][col].Group).To(Equal(NoGroup))
			}
		}
	})

	It("should refuse to build before import", func() {
		_, err := New().BuildGrid(nil, nil)

		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("Fragmented rows", func() {
	It("should mark only the covered sites of a partial row", func() {
		c := New()
		c.WSite = 10
		c.RowHeight = 10
		c.Core = geom.Rect{XUR: 100, YUR: 30}
		c.Die = c.Core
		c.SourceRows = []Row{{OrigX: 20, OrigY: 10, StepX: 10, NumSites: 3}}

		g, err := c.BuildGrid(nil, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(g.NumRows).To(Equal(3))
		Expect(g.NumCols).To(Equal(10))

		for col := 0; col < g.NumCols; col++ {
			Expect(g.At(1, col).Valid).To(Equal(col >= 2 && col <= 4), "col %d", col)
		}
		Expect(g.ValidCount()).To(Equal(3))
	})
})

var _ = Describe("RegionAssigner", func() {
	var c *Circuit

	BeforeEach(func() {
		c = New()
		c.WSite = 10
		c.RowHeight = 10
		c.Core = geom.Rect{XUR: 100, YUR: 30}
		c.Die = c.Core
		c.SourceRows = []Row{
			{OrigX: 0, OrigY: 0, StepX: 10, NumSites: 10},
			{OrigX: 0, OrigY: 10, StepX: 10, NumSites: 10},
			{OrigX: 0, OrigY: 20, StepX: 10, NumSites: 10},
		}
	})

	countGroup := func(g *Grid, gi int) int {
		n := 0
		for r := range g.Pixels {
			for col := range g.Pixels[r] {
				if g.Pixels[r][col].Group == gi {
					n++
				}
			}
		}
		return n
	}

	It("should leave sites only partly inside a region untagged", func() {
		c.Groups = []Group{{Name: "G", Regions: []geom.Rect{{XLL: 15, YLL: 5, XUR: 45, YUR: 25}}}}

		g, err := c.BuildGrid(nil, RegionAssigner{})
		Expect(err).NotTo(HaveOccurred())

		Expect(countGroup(g, 0)).To(Equal(2))
		Expect(g.At(1, 2).Group).To(Equal(0))
		Expect(g.At(1, 3).Group).To(Equal(0))
		Expect(g.At(1, 1).Group).To(Equal(NoGroup))
		Expect(g.At(1, 4).Group).To(Equal(NoGroup))
	})

	It("should ignore regions outside the grid", func() {
		c.Groups = []Group{{Name: "G", Regions: []geom.Rect{{XLL: -50, YLL: -50, XUR: -10, YUR: -10}}}}

		g, err := c.BuildGrid(nil, RegionAssigner{})
		Expect(err).NotTo(HaveOccurred())

		Expect(countGroup(g, 0)).To(BeZero())
	})

	It("should tag only valid sites", func() {
		c.SourceRows = c.SourceRows[:1]
		c.Groups = []Group{{Name: "G", Regions: []geom.Rect{{XUR: 20, YUR: 30}}}}

		g, err := c.BuildGrid(nil, RegionAssigner{})
		Expect(err).NotTo(HaveOccurred())

		Expect(countGroup(g, 0)).To(Equal(2))
		Expect(g.At(0, 0).Group).To(Equal(0))
		Expect(g.At(2, 0).Group).To(Equal(NoGroup))
	})
})

var _ = Describe("MarkValid", func() {
	It("should clip to the grid", func() {
		g := NewGrid(2, 5)

		g.MarkValid(1, -3, 3)
		g.MarkValid(0, 4, 9)
		g.MarkValid(5, 0, 5)

		Expect(g.ValidCount()).To(Equal(4))
		Expect(g.At(1, 0).Valid).To(BeTrue())
		Expect(g.At(1, 2).Valid).To(BeTrue())
		Expect(g.At(1, 3).Valid).To(BeFalse())
		Expect(g.At(0, 4).Valid).To(BeTrue())
	})
})
