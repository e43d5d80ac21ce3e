package vimcat

// Grapheme holds exactly one UTF-8 scalar value, stored in a fixed 4-byte
// array. Combining marks are not handled: every code point, however it
// combines visually with its neighbours, occupies exactly one cell.
type Grapheme [4]byte

// IsEmpty reports whether g holds no character (all-zero bytes).
func (g Grapheme) IsEmpty() bool {
	return g == Grapheme{}
}

// bytes returns the non-zero prefix of the grapheme's backing bytes.
func (g Grapheme) bytes() []byte {
	n := 0
	for n < len(g) && g[n] != 0 {
		n++
	}
	return g[:n]
}

// graphemeFromRune packs r's UTF-8 encoding into a Grapheme. Every valid
// Unicode scalar value encodes to at most 4 bytes.
func graphemeFromRune(r rune) Grapheme {
	var g Grapheme
	encodeUTF8(g[:], r)
	return g
}

// Cell is one grid position of the virtual terminal: a grapheme plus the
// style active when it was written. A cell is empty iff its grapheme is
// empty; an empty cell's Style field is never meaningful but callers may
// still read it uniformly (it carries the zero value).
type Cell struct {
	Grapheme Grapheme
	Style    Style
}

// IsEmpty reports whether the cell holds no character.
func (c Cell) IsEmpty() bool {
	return c.Grapheme.IsEmpty()
}

// clear resets c to the empty cell.
func (c *Cell) clear() {
	*c = Cell{}
}
