package anim_test

import (
	"math/rand/v2"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/bwave/internal/anim"
)

type fixedFloat float64

func (f fixedFloat) Float64() float64 { return float64(f) }

var _ = Describe("Delay", func() {
	const base = 100 * time.Millisecond

	It("returns the base duration when jitter is off", func() {
		Expect(anim.Delay(base, 0, fixedFloat(0.9))).To(Equal(base))
		Expect(anim.Delay(base, -2, nil)).To(Equal(base))
	})

	DescribeTable("scales by 0.5 + u/level",
		func(level int, u float64, want time.Duration) {
			Expect(anim.Delay(base, level, fixedFloat(u))).To(Equal(want))
		},
		Entry("level 1, u=0", 1, 0.0, 50*time.Millisecond),
		Entry("level 1, u=0.5", 1, 0.5, 100*time.Millisecond),
		Entry("level 2, u=0.5", 2, 0.5, 75*time.Millisecond),
		Entry("level 4, u=0", 4, 0.0, 50*time.Millisecond),
	)

	It("stays within [0.5, 0.5+1/level) of the base", func() {
		rng := rand.New(rand.NewPCG(11, 13))
		for _, level := range []int{1, 2, 3, 10} {
			upper := time.Duration(float64(base) * (0.5 + 1/float64(level)))
			for i := 0; i < 200; i++ {
				d := anim.Delay(base, level, rng)
				Expect(d).To(BeNumerically(">=", base/2))
				Expect(d).To(BeNumerically("<", upper))
			}
		}
	})

	It("falls back to the global source", func() {
		d := anim.Delay(base, 1, nil)
		Expect(d).To(BeNumerically(">=", base/2))
		Expect(d).To(BeNumerically("<", base*3/2))
	})
})

var _ = Describe("DisplayWidth", func() {
	DescribeTable("caps wide terminals and keeps a margin on narrow ones",
		func(columns, want int) {
			Expect(anim.DisplayWidth(columns, 58, 6)).To(Equal(want))
		},
		Entry("wide", 200, 58),
		Entry("exactly max+margin", 64, 58),
		Entry("just below", 63, 57),
		Entry("fallback columns", 32, 26),
		Entry("smaller than margin", 4, 0),
		Entry("zero", 0, 0),
	)
})
