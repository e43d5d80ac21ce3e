package vimcat

import "strconv"

// fgBase and bgBase are the SGR code bases for the classic 3-bit and
// bright 4-bit colour tiers.
const (
	fgBase3bit = 30
	bgBase3bit = 40
	fgBase4bit = 90
	bgBase4bit = 100
)

// Style is the set of rendering attributes attached to a Cell: a foreground
// and background colour, each either "custom" or default, plus bold and
// underline. The zero value is the default style.
type Style struct {
	CustomFg  bool
	CustomBg  bool
	Bold      bool
	Underline bool
	Fg        Color
	Bg        Color
}

// defaultStyle is the terminal's initial and reset-to style.
func defaultStyle() Style {
	return Style{}
}

// Equal compares booleans unconditionally and colours only when the
// corresponding custom flag is set on both sides.
func (s Style) Equal(o Style) bool {
	if s.CustomFg != o.CustomFg {
		return false
	}
	if s.CustomBg != o.CustomBg {
		return false
	}
	if s.Bold != o.Bold {
		return false
	}
	if s.Underline != o.Underline {
		return false
	}
	if s.CustomFg && !s.Fg.Equal(o.Fg) {
		return false
	}
	if s.CustomBg && !s.Bg.Equal(o.Bg) {
		return false
	}
	return true
}

// writeStyleTransition appends the CSI sequence that sets 'to' as the active
// style: a full reset-of-four-attributes batch (foreground, background,
// bold, underline, in that order) regardless of 'from', so the receiving
// terminal ends up in exactly the target style no matter what it was in
// before. Writes nothing if from equals to.
func writeStyleTransition(buf *stageBuffer, from, to Style) {
	if from.Equal(to) {
		return
	}

	buf.WriteString("\x1b[")
	writeColourToken(buf, to.CustomFg, to.Fg, fgBase3bit, fgBase4bit, 38)
	writeColourToken(buf, to.CustomBg, to.Bg, bgBase3bit, bgBase4bit, 48)
	if to.Bold {
		buf.WriteString("1;")
	} else {
		buf.WriteString("22;")
	}
	if to.Underline {
		buf.WriteByte('4')
	} else {
		buf.WriteString("24")
	}
	buf.WriteByte('m')
}

// writeColourToken emits one colour's worth of a style transition: the
// default token if custom is false, otherwise the smallest SGR form that
// expresses c, tiered through the 8-bit palette via ColorToIndex. The 8-bit
// and 24-bit forms close the current CSI with 'm' and reopen a fresh one
// with "\x1b[", matching the extended-colour escapes of a real terminal;
// the 3-bit and 4-bit forms stay within the caller's open CSI.
func writeColourToken(buf *stageBuffer, custom bool, c Color, base3, base4 int, extended int) {
	if !custom {
		if extended == 38 {
			buf.WriteString("39;")
		} else {
			buf.WriteString("49;")
		}
		return
	}

	idx, ok := ColorToIndex(c)
	switch {
	case ok && idx <= 7:
		buf.WriteString(strconv.Itoa(base3 + int(idx)))
		buf.WriteByte(';')
	case ok && idx <= 15:
		buf.WriteString(strconv.Itoa(base4 + int(idx) - 8))
		buf.WriteByte(';')
	case ok && idx <= 255:
		buf.WriteString(strconv.Itoa(extended))
		buf.WriteString(";5;")
		buf.WriteString(strconv.Itoa(int(idx)))
		buf.WriteString("m\x1b[")
	default:
		buf.WriteString(strconv.Itoa(extended))
		buf.WriteString(";2;")
		buf.WriteString(strconv.Itoa(int(c.R)))
		buf.WriteByte(';')
		buf.WriteString(strconv.Itoa(int(c.G)))
		buf.WriteByte(';')
		buf.WriteString(strconv.Itoa(int(c.B)))
		buf.WriteString("m\x1b[")
	}
}
