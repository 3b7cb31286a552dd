package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/bwave/internal/wave"
)

// PhaseSeries returns the emitted symbol index for every frame of one
// waveform cycle.
func PhaseSeries(code wave.Code, symbols wave.SymbolSet) []float64 {
	data := make([]float64, wave.Period(code, symbols))
	for i := range data {
		data[i] = float64(wave.GlyphIndex(code, symbols.Len(), i))
	}
	return data
}

// Plot charts the symbol index over one waveform cycle.
func Plot(code wave.Code, symbols wave.SymbolSet, width int) string {
	caption := fmt.Sprintf("symbol index per frame (code %s, %d frames)",
		code.String(), wave.Period(code, symbols))
	return asciigraph.Plot(PhaseSeries(code, symbols),
		asciigraph.Height(10),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}

// Preview returns the glyph line shown after one full cycle at width.
func Preview(code wave.Code, symbols wave.SymbolSet, width int) string {
	var st wave.FrameState
	for i := 0; i < wave.Period(code, symbols); i++ {
		st.Step(code, symbols, width)
	}
	return string(st.Glyphs)
}
