package circuit

import (
	"fmt"

	gomock "github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/OpenTraceLab/OpenTraceDP/pkg/errors"
	"github.com/OpenTraceLab/OpenTraceDP/pkg/geom"
	"github.com/OpenTraceLab/OpenTraceDP/pkg/pdb"
)

var _ = Describe("WriteBack", func() {
	var (
		mockCtrl *gomock.Controller
		mockDB   *MockDatabase
		c        *Circuit
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		mockDB = NewMockDatabase(mockCtrl)

		mockDB.EXPECT().DBUPerMicron().Return(1000).AnyTimes()
		mockDB.EXPECT().Libraries().Return([]pdb.Library{{
			Name:  "cells",
			Sites: []pdb.SiteRecord{{Name: "core", Width: 10, Height: 100}},
			Masters: []pdb.MasterRecord{
				{Name: "INV", Type: "CORE", Width: 20, Height: 100, Site: "core"},
				{Name: "MACRO", Type: "BLOCK", Width: 40, Height: 200},
			},
		}}).AnyTimes()
		mockDB.EXPECT().DieArea().Return(geom.Rect{XUR: 2000, YUR: 3000}).AnyTimes()
		mockDB.EXPECT().Rows().Return([]pdb.RowRecord{
			{Name: "r0", Site: "core", OriginX: 1000, OriginY: 2000, Spacing: 10, SiteCount: 50},
			{Name: "r1", Site: "core", OriginX: 1000, OriginY: 2100, Orient: geom.MX, Spacing: 10, SiteCount: 50},
		}).AnyTimes()
		mockDB.EXPECT().Instances().Return([]pdb.InstanceRecord{
			{Name: "a", Master: "INV", Status: pdb.StatusPlaced, X: 1030, Y: 2000},
			{Name: "b", Master: "INV", Status: pdb.StatusUnplaced, X: 1100, Y: 2100},
			{Name: "m", Master: "MACRO", Status: pdb.StatusLocked, X: 1200, Y: 2000},
		}).AnyTimes()
		mockDB.EXPECT().Regions().Return(nil).AnyTimes()
		mockDB.EXPECT().Groups().Return(nil).AnyTimes()

		c = New()
		Expect(c.Import(mockDB)).To(Succeed())
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should restore the database frame for placed cells", func() {
		a := &c.Cells[0]
		a.X = c.Core.XLL + 7
		a.Y = c.Core.YLL + 3
		a.Placed = true

		mockDB.EXPECT().SetInstanceLocation("a", 1007, 2003).Return(nil)
		mockDB.EXPECT().SetInstanceLocation("b", 1100, 2100).Return(nil)

		Expect(c.WriteBack(mockDB)).To(Succeed())
	})

	It("should round to the nearest database unit", func() {
		a := &c.Cells[0]
		a.X = 6.6
		a.Y = 2.4
		a.Placed = true

		mockDB.EXPECT().SetInstanceLocation("a", 1007, 2002).Return(nil)
		mockDB.EXPECT().SetInstanceLocation("b", 1100, 2100).Return(nil)

		Expect(c.WriteBack(mockDB)).To(Succeed())
	})

	It("should write unmoved cells back to where they were read", func() {
		mockDB.EXPECT().SetInstanceLocation("a", 1030, 2000).Return(nil)
		mockDB.EXPECT().SetInstanceLocation("b", 1100, 2100).Return(nil)

		Expect(c.WriteBack(mockDB)).To(Succeed())
	})

	It("should never move fixed cells", func() {
		m := &c.Cells[2]
		Expect(m.Fixed).To(BeTrue())
		m.X += 50

		mockDB.EXPECT().SetInstanceLocation("a", gomock.Any(), gomock.Any()).Return(nil)
		mockDB.EXPECT().SetInstanceLocation("b", gomock.Any(), gomock.Any()).Return(nil)

		Expect(c.WriteBack(mockDB)).To(Succeed())
	})

	It("should stop at the first database error", func() {
		mockDB.EXPECT().SetInstanceLocation("a", gomock.Any(), gomock.Any()).
			Return(errors.New(errors.ErrCodeMissingReference, "no instance"))

		err := c.WriteBack(mockDB)

		Expect(err).To(HaveOccurred())
		Expect(errors.Is(err, errors.ErrCodeMissingReference)).To(BeTrue())
	})

	It("should run the whole pipeline", func() {
		res, err := c.Prepare(mockDB, func(c *Circuit) error {
			c.Limits.Displacement = 200
			return nil
		})

		Expect(err).NotTo(HaveOccurred())
		Expect(c.Limits.Displacement).To(Equal(200.0))
		Expect(res.Grid.NumRows).To(Equal(10))
		Expect(res.Grid.NumCols).To(Equal(100))
		Expect(res.Order).To(HaveLen(3))
		Expect(c.Cells[res.Order[0].Cell].Name).To(Equal("m"))
		Expect(res.Stats.FixedCells).To(Equal(1))
	})

	It("should stop the pipeline when a hook fails", func() {
		_, err := c.Prepare(mockDB, func(*Circuit) error {
			return fmt.Errorf("bad constraints")
		})

		Expect(err).To(MatchError("bad constraints"))
	})
})
