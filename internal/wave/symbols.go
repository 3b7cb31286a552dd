package wave

// DefaultSymbols is one full crest sweep in Braille.
const DefaultSymbols = "⠤⣄⣀⣠⠤⠖⠒⠋⠉⠙⠒⠲"

// SymbolSet is an immutable ordered glyph sequence. Index 0 is the flat glyph.
type SymbolSet struct {
	glyphs []rune
}

func NewSymbolSet(s string) (SymbolSet, error) {
	glyphs := []rune(s)
	if len(glyphs) == 0 {
		return SymbolSet{}, ErrEmptySymbols
	}
	return SymbolSet{glyphs: glyphs}, nil
}

func (s SymbolSet) Len() int       { return len(s.glyphs) }
func (s SymbolSet) At(i int) rune  { return s.glyphs[i] }
func (s SymbolSet) Flat() rune     { return s.glyphs[0] }
func (s SymbolSet) String() string { return string(s.glyphs) }
