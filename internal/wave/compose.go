package wave

// Period returns the number of frames in one full waveform cycle.
func Period(code Code, symbols SymbolSet) int {
	return code.Len() * symbols.Len()
}

// position returns the code digit in play at counter and the counter folded
// into one period.
func position(code Code, symLen, counter int) (bit byte, folded int) {
	if counter < 0 {
		period := code.Len() * symLen
		counter = (counter%period + period) % period
	}
	codeIndex := (counter / symLen) % code.Len()
	return code.Bit(codeIndex), counter
}

// GlyphIndex returns the symbol index emitted at counter.
//
// Each code digit is held for symLen consecutive frames. A 0 digit emits the
// flat glyph; a 1 digit walks the symbol set backwards, symLen-1 down to 0.
func GlyphIndex(code Code, symLen, counter int) int {
	bit, counter := position(code, symLen, counter)
	if bit == 0 {
		return 0
	}
	return symLen - 1 - counter%symLen
}

// IsCrest reports whether the glyph at counter belongs to a crest sweep,
// that is whether it was emitted by a 1 digit. It is independent of which
// rune the sweep lands on, so a symbol set that repeats its flat glyph
// mid-sweep still classifies correctly.
func IsCrest(code Code, symLen, counter int) bool {
	bit, _ := position(code, symLen, counter)
	return bit == 1
}

// NextFrame prepends the glyph for counter to prev and clips the result to
// the first width glyphs. prev is not modified.
func NextFrame(code Code, symbols SymbolSet, counter int, prev []rune, width int) []rune {
	return prepend(symbols.At(GlyphIndex(code, symbols.Len(), counter)), prev, width)
}

// NextCrest is NextFrame for the crest mask: element i tells whether glyph i
// of the matching frame came from a crest sweep.
func NextCrest(code Code, symLen, counter int, prev []bool, width int) []bool {
	return prepend(IsCrest(code, symLen, counter), prev, width)
}

func prepend[T any](v T, prev []T, width int) []T {
	n := len(prev) + 1
	if n > width {
		n = max(width, 0)
	}
	next := make([]T, n)
	if n == 0 {
		return next
	}
	next[0] = v
	copy(next[1:], prev)
	return next
}

// FrameState is the history carried from one frame to the next. Crest runs
// parallel to Glyphs.
type FrameState struct {
	Counter int
	Glyphs  []rune
	Crest   []bool
}

// Step composes the frame for the current counter at width, stores it as the
// new history and advances the counter modulo the waveform period.
func (s *FrameState) Step(code Code, symbols SymbolSet, width int) []rune {
	s.Glyphs = NextFrame(code, symbols, s.Counter, s.Glyphs, width)
	s.Crest = NextCrest(code, symbols.Len(), s.Counter, s.Crest, width)
	s.Counter = (s.Counter + 1) % Period(code, symbols)
	return s.Glyphs
}
