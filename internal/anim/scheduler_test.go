package anim_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/bwave/internal/anim"
	"github.com/san-kum/bwave/internal/wave"
)

// stopAfter cancels the run once n frames have been written.
type stopAfter struct {
	n        int
	cancel   context.CancelFunc
	counters []int
	lengths  []int
}

func (s *stopAfter) OnFrame(counter int, glyphs []rune) {
	s.counters = append(s.counters, counter)
	s.lengths = append(s.lengths, len(glyphs))
	if len(s.counters) == s.n {
		s.cancel()
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, errors.New("closed") }

func fixedWidth(w int) anim.WidthFunc {
	return func() int { return w }
}

var _ = Describe("Scheduler", func() {
	var (
		code    wave.Code
		symbols wave.SymbolSet
		out     *bytes.Buffer
		cfg     anim.Config
	)

	BeforeEach(func() {
		var err error
		code, err = wave.NewCode(wave.DefaultCode)
		Expect(err).NotTo(HaveOccurred())
		symbols, err = wave.NewSymbolSet(wave.DefaultSymbols)
		Expect(err).NotTo(HaveOccurred())
		out = &bytes.Buffer{}
		cfg = anim.Config{Period: time.Millisecond}
	})

	run := func(s *anim.Scheduler, frames int) *stopAfter {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		obs := &stopAfter{n: frames, cancel: cancel}
		s.AddObserver(obs)
		Expect(s.Run(ctx)).To(Succeed())
		return obs
	}

	Describe("New", func() {
		It("rejects configs that cannot drive a loop", func() {
			_, err := anim.New(code, symbols, out, fixedWidth(20), anim.Config{})
			Expect(err).To(MatchError(anim.ErrInvalidConfig))

			_, err = anim.New(code, symbols, out, fixedWidth(20), anim.Config{Period: time.Millisecond, JitterLevel: -1})
			Expect(err).To(MatchError(anim.ErrInvalidConfig))

			_, err = anim.New(code, symbols, nil, fixedWidth(20), cfg)
			Expect(err).To(MatchError(anim.ErrInvalidConfig))

			_, err = anim.New(code, symbols, out, nil, cfg)
			Expect(err).To(MatchError(anim.ErrInvalidConfig))

			_, err = anim.New(wave.Code{}, symbols, out, fixedWidth(20), cfg)
			Expect(err).To(MatchError(wave.ErrEmptyCode))
		})
	})

	Describe("Run", func() {
		It("writes each frame as a carriage return and the glyph line", func() {
			s, err := anim.New(code, symbols, out, fixedWidth(20), cfg)
			Expect(err).NotTo(HaveOccurred())

			run(s, 30)

			var want strings.Builder
			var st wave.FrameState
			for i := 0; i < 30; i++ {
				want.WriteString("\r" + string(st.Step(code, symbols, 20)))
			}
			want.WriteString("\n")
			Expect(out.String()).To(Equal(want.String()))
		})

		It("renders frames in increasing counter order", func() {
			s, err := anim.New(code, symbols, out, fixedWidth(20), cfg)
			Expect(err).NotTo(HaveOccurred())

			obs := run(s, 25)

			for i, c := range obs.counters {
				Expect(c).To(Equal(i))
			}
		})

		It("wraps the counter after one waveform period", func() {
			c, _ := wave.NewCode("01")
			sym, _ := wave.NewSymbolSet("abc")
			s, err := anim.New(c, sym, out, fixedWidth(20), cfg)
			Expect(err).NotTo(HaveOccurred())

			obs := run(s, 8)

			Expect(obs.counters).To(Equal([]int{0, 1, 2, 3, 4, 5, 0, 1}))
		})

		It("writes exactly one newline when cancelled", func() {
			s, err := anim.New(code, symbols, out, fixedWidth(20), cfg)
			Expect(err).NotTo(HaveOccurred())

			run(s, 5)

			Expect(strings.Count(out.String(), "\n")).To(Equal(1))
			Expect(out.String()).To(HaveSuffix("\n"))
		})

		It("writes only the newline if cancelled before the first frame", func() {
			s, err := anim.New(code, symbols, out, fixedWidth(20), cfg)
			Expect(err).NotTo(HaveOccurred())

			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			Expect(s.Run(ctx)).To(Succeed())
			Expect(out.String()).To(Equal("\n"))
			Expect(s.State().Counter).To(Equal(0))
		})

		It("reclips to the current width on every frame", func() {
			widths := []int{10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 3, 3, 8}
			i := 0
			width := func() int {
				w := widths[i]
				i++
				return w
			}
			s, err := anim.New(code, symbols, out, width, cfg)
			Expect(err).NotTo(HaveOccurred())

			obs := run(s, len(widths))

			Expect(obs.lengths[11]).To(Equal(10))
			Expect(obs.lengths[12]).To(Equal(3))
			Expect(obs.lengths[13]).To(Equal(3))
			Expect(obs.lengths[14]).To(Equal(4))
		})

		It("applies the render hook to each line", func() {
			cfg.Render = func(glyphs []rune, crest []bool) string { return "[" + string(glyphs) + "]" }
			s, err := anim.New(code, symbols, out, fixedWidth(2), cfg)
			Expect(err).NotTo(HaveOccurred())

			run(s, 2)

			Expect(out.String()).To(Equal("\r[⠤]\r[⠤⠤]\n"))
		})

		It("passes the crest mask alongside the glyphs", func() {
			c, _ := wave.NewCode("01")
			sym, _ := wave.NewSymbolSet("abc")
			var masks []string
			cfg.Render = func(glyphs []rune, crest []bool) string {
				Expect(crest).To(HaveLen(len(glyphs)))
				var m strings.Builder
				for _, f := range crest {
					if f {
						m.WriteByte('^')
					} else {
						m.WriteByte('_')
					}
				}
				masks = append(masks, m.String())
				return string(glyphs)
			}
			s, err := anim.New(c, sym, out, fixedWidth(4), cfg)
			Expect(err).NotTo(HaveOccurred())

			run(s, 6)

			Expect(masks).To(Equal([]string{"_", "__", "___", "^___", "^^__", "^^^_"}))
			Expect(s.State().Crest).To(Equal([]bool{true, true, true, false}))
		})

		It("keeps running with jitter enabled", func() {
			cfg.JitterLevel = 2
			cfg.Rand = fixedFloat(0.3)
			s, err := anim.New(code, symbols, out, fixedWidth(20), cfg)
			Expect(err).NotTo(HaveOccurred())

			obs := run(s, 10)
			Expect(obs.counters).To(HaveLen(10))
		})

		It("stops with an error when the output fails", func() {
			s, err := anim.New(code, symbols, failingWriter{}, fixedWidth(20), cfg)
			Expect(err).NotTo(HaveOccurred())

			err = s.Run(context.Background())
			Expect(err).To(MatchError(anim.ErrWrite))
		})
	})

	Describe("Frame", func() {
		It("keeps the history in the scheduler state", func() {
			s, err := anim.New(code, symbols, out, fixedWidth(20), cfg)
			Expect(err).NotTo(HaveOccurred())

			for i := 0; i < 13; i++ {
				Expect(s.Frame()).To(Succeed())
			}

			st := s.State()
			Expect(st.Counter).To(Equal(13))
			Expect(st.Glyphs).To(HaveLen(13))
			Expect(st.Glyphs[0]).To(Equal(symbols.At(11)))
		})
	})
})
