package langton_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/antsim/internal/langton"
)

func run(c *langton.Colony, ticks int) {
	for i := 0; i < ticks; i++ {
		ExpectWithOffset(1, c.Step()).To(Succeed())
	}
}

var _ = Describe("Colony", func() {
	DescribeTable("keeps every cell inside [0, len(rules))",
		func(rules string, ants int) {
			c, err := langton.New(23, rules, langton.WithSeed(11))
			Expect(err).NotTo(HaveOccurred())
			for i := 0; i < ants; i++ {
				_, err := c.AddAnt()
				Expect(err).NotTo(HaveOccurred())
			}
			for i := 0; i < 2000; i++ {
				Expect(c.Step()).To(Succeed())
				if i%100 == 0 {
					for _, v := range c.Grid().Cells() {
						Expect(v).To(BeNumerically(">=", 0))
						Expect(v).To(BeNumerically("<", len(rules)))
					}
				}
			}
		},
		Entry("classic", "10", 1),
		Entry("three states", "110", 3),
		Entry("four states", "1100", 5),
		Entry("single state", "1", 2),
	)

	It("keeps every ant on the torus after each move", func() {
		c, _ := langton.New(9, "1000", langton.WithSeed(3))
		for i := 0; i < 6; i++ {
			_, err := c.AddAnt()
			Expect(err).NotTo(HaveOccurred())
		}
		for i := 0; i < 1000; i++ {
			Expect(c.Step()).To(Succeed())
			for _, a := range c.Ants() {
				Expect(a.Row).To(And(BeNumerically(">=", 0), BeNumerically("<", 9)))
				Expect(a.Col).To(And(BeNumerically(">=", 0), BeNumerically("<", 9)))
			}
		}
	})

	It("counts ticks", func() {
		c, _ := langton.New(5, "10")
		run(c, 17)
		Expect(c.Ticks()).To(Equal(17))
	})

	Context("with two ants on one cell", func() {
		var c *langton.Colony

		BeforeEach(func() {
			var err error
			c, err = langton.New(11, "110")
			Expect(err).NotTo(HaveOccurred())
			c.AddAnt(langton.WithHeading(langton.South), langton.WithPosition(4, 4))
			c.AddAnt(langton.WithHeading(langton.West), langton.WithPosition(4, 4))
		})

		It("decides both turns from the pre-tick cell state", func() {
			run(c, 1)
			ants := c.Ants()
			// State 0 has bit 1: S→W and W→N.
			Expect(ants[0]).To(Equal(langton.Ant{Heading: langton.West, Row: 4, Col: 3}))
			Expect(ants[1]).To(Equal(langton.Ant{Heading: langton.North, Row: 5, Col: 4}))
		})

		It("applies both paints before either ant moves", func() {
			run(c, 1)
			Expect(c.Grid().At(4, 4)).To(Equal(2))
			Expect(c.Grid().Count()).To(Equal(1))
		})
	})

	Context("with the symmetric four-ant configuration", func() {
		const n = 51

		rotate := func(h langton.Heading) langton.Heading {
			// (dr, dc) → (dc, -dr) sends E→N→W→S→E.
			return h.Turn(0)
		}

		It("stays invariant under quarter-turn rotation about the centre", func() {
			c, err := langton.New(n, "10")
			Expect(err).NotTo(HaveOccurred())
			c.AddAnt(langton.WithHeading(langton.East), langton.WithPosition(25, 30))
			c.AddAnt(langton.WithHeading(langton.West), langton.WithPosition(25, 20))
			c.AddAnt(langton.WithHeading(langton.North), langton.WithPosition(30, 25))
			c.AddAnt(langton.WithHeading(langton.South), langton.WithPosition(20, 25))

			for checkpoint := 0; checkpoint < 6; checkpoint++ {
				run(c, 250)
				g := c.Grid()
				for r := 0; r < n; r++ {
					for col := 0; col < n; col++ {
						Expect(g.At(col, n-1-r)).To(Equal(g.At(r, col)),
							"tick %d cell (%d,%d)", c.Ticks(), r, col)
					}
				}

				ants := c.Ants()
				for _, a := range ants {
					image := langton.Ant{Heading: rotate(a.Heading), Row: a.Col, Col: n - 1 - a.Row}
					Expect(ants).To(ContainElement(image))
				}
			}
		})
	})
})

var _ = Describe("Ant", func() {
	It("returns a cell to its value after len(rules) paints", func() {
		c, _ := langton.New(3, "1100")
		rules := c.Rules()
		a, _ := langton.NewAnt(langton.North, 1, 1)
		start := c.Grid().At(1, 1)
		for i := 0; i < rules.Len(); i++ {
			a.Paint(c.Grid(), rules)
		}
		Expect(c.Grid().At(1, 1)).To(Equal(start))
	})

	It("turns as a pure function of heading and bit", func() {
		for _, h := range []langton.Heading{langton.North, langton.East, langton.South, langton.West} {
			for _, bit := range []uint8{0, 1} {
				first := h.Turn(bit)
				for i := 0; i < 5; i++ {
					Expect(h.Turn(bit)).To(Equal(first))
				}
				Expect(first.Turn(1 - bit)).To(Equal(h))
			}
		}
	})
})
