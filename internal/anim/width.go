package anim

// DisplayWidth returns how many glyphs fit on a terminal of columns.
// Wide terminals are capped at maxWidth; narrower ones keep margin columns free.
func DisplayWidth(columns, maxWidth, margin int) int {
	if columns >= maxWidth+margin {
		return maxWidth
	}
	return max(columns-margin, 0)
}
