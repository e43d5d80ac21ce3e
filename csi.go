package vimcat

import (
	"bytes"
	"runtime"
)

// csiHandler applies one parameter of a dispatched CSI sequence. index is
// the parameter's zero-based position, isDefault is true when the parameter
// was the empty string (meaning "use the default"), and value is the parsed
// decimal value (meaningless when isDefault).
type csiHandler func(t *Terminal, index int, isDefault bool, value int) error

var csiHandlers = map[byte]csiHandler{
	'A': csiCursorUp,
	'B': csiCursorDown,
	'C': csiCursorForward,
	'D': csiCursorBack,
	'E': csiCursorNextLine,
	'F': csiCursorPrevLine,
	'G': csiCursorColumn,
	'H': csiCursorPosition,
	'J': csiEraseDisplay,
	'm': csiSGR,
}

// applyCSI interprets the accumulated bytes of one CSI sequence (not
// including the leading ESC [, but including the terminator as the final
// byte) and applies its effect to t.
func applyCSI(t *Terminal, csi []byte) error {
	if len(csi) == 0 {
		return ErrBadMessage
	}
	final := csi[len(csi)-1]

	if isPrivateOrModeSet(csi, final) {
		debugf("ignoring private/mode-set sequence <esc>[%s", csi)
		return nil
	}

	if string(csi) == "H" {
		t.x, t.y = 1, 1
		return nil
	}

	if runtime.GOOS == "darwin" && isDarwinQuirk(csi) {
		debugf("ignoring darwin quirk sequence <esc>[%s", csi)
		return nil
	}

	handler, ok := csiHandlers[final]
	if !ok {
		debugf("unrecognised CSI sequence <esc>[%s", csi)
		return ErrNotSupported
	}

	if final == 'm' {
		if handled, err := applyExtendedSGR(t, csi); handled {
			return err
		}
	}

	return dispatchCSIParams(t, csi, handler)
}

// isPrivateOrModeSet reports whether csi is a private sequence (DEC private
// marker characters anywhere in the body, or a final byte in 0x70..0x7E) or
// a Set Mode ('h') sequence — both are silently ignored.
func isPrivateOrModeSet(csi []byte, final byte) bool {
	if bytes.ContainsAny(csi, "<=>?") {
		return true
	}
	if final >= 0x70 && final <= 0x7e {
		return true
	}
	return final == 'h'
}

// isDarwinQuirk matches the exact byte pattern "31<digit>m", an observed Vim
// misbehaviour on Darwin-family operating systems under monochrome colour
// settings.
func isDarwinQuirk(csi []byte) bool {
	return len(csi) == 4 && csi[0] == '3' && csi[1] == '1' &&
		csi[2] >= '0' && csi[2] <= '9' && csi[3] == 'm'
}

// dispatchCSIParams splits csi's ';'-separated decimal parameters and feeds
// each to handler in turn, including one final call driven by the
// terminator byte itself (which ends the last parameter). Handlers are
// invoked eagerly as each parameter completes, mirroring the source state
// machine exactly: a parameter boundary is any non-digit byte.
func dispatchCSIParams(t *Terminal, csi []byte, handler csiHandler) error {
	index := 0
	isDefault := true
	value := 0

	for i := 0; ; i++ {
		ch := csi[i]
		if ch >= '0' && ch <= '9' {
			value = value*10 + int(ch-'0')
			isDefault = false
			continue
		}

		if err := handler(t, index, isDefault, value); err != nil {
			return err
		}

		if ch != ';' {
			break
		}
		index++
		isDefault = true
		value = 0
	}

	return nil
}

func csiCursorUp(t *Terminal, index int, isDefault bool, value int) error {
	if isDefault {
		value = 1
	}
	if index > 0 {
		return ErrBadMessage
	}
	if value >= t.y {
		t.y = 1
	} else {
		t.y -= value
	}
	return nil
}

func csiCursorDown(t *Terminal, index int, isDefault bool, value int) error {
	if isDefault {
		value = 1
	}
	if index > 0 {
		return ErrBadMessage
	}
	if value+t.y > t.rows {
		t.y = t.rows
	} else {
		t.y += value
	}
	return nil
}

func csiCursorForward(t *Terminal, index int, isDefault bool, value int) error {
	if isDefault {
		value = 1
	}
	if index > 0 {
		return ErrBadMessage
	}
	if value+t.x > t.columns {
		t.x = t.columns
	} else {
		t.x += value
	}
	return nil
}

func csiCursorBack(t *Terminal, index int, isDefault bool, value int) error {
	if isDefault {
		value = 1
	}
	if index > 0 {
		return ErrBadMessage
	}
	if value >= t.x {
		t.x = 1
	} else {
		t.x -= value
	}
	return nil
}

func csiCursorNextLine(t *Terminal, index int, isDefault bool, value int) error {
	t.x = 1
	return csiCursorDown(t, index, isDefault, value)
}

func csiCursorPrevLine(t *Terminal, index int, isDefault bool, value int) error {
	t.x = 1
	return csiCursorUp(t, index, isDefault, value)
}

func csiCursorColumn(t *Terminal, index int, isDefault bool, value int) error {
	if isDefault {
		value = 1
	}
	if index > 0 {
		return ErrBadMessage
	}
	if value >= 1 && value <= t.columns {
		t.x = value
	}
	return nil
}

func csiCursorPosition(t *Terminal, index int, isDefault bool, value int) error {
	if isDefault {
		value = 1
	}
	switch index {
	case 0:
		if value >= 1 && value <= t.rows {
			t.y = value
		}
	case 1:
		if value >= 1 && value <= t.columns {
			t.x = value
		}
	default:
		return ErrBadMessage
	}
	return nil
}

func csiEraseDisplay(t *Terminal, index int, isDefault bool, value int) error {
	if isDefault {
		value = 0
	}
	if index > 0 {
		return ErrBadMessage
	}

	switch value {
	case 0: // cursor to end of screen, inclusive
		startCol := t.x
		for y := t.y; y <= t.rows; y++ {
			for x := startCol; x <= t.columns; x++ {
				t.cellAt(x, y).clear()
			}
			startCol = 1
		}
	case 1: // start of screen to cursor, inclusive
		endCol := t.x
		for y := t.y; y >= 1; y-- {
			for x := endCol; x >= 1; x-- {
				t.cellAt(x, y).clear()
			}
			endCol = t.columns
		}
	case 2, 3: // entire screen (and, notionally, scrollback)
		t.clearGrid()
	default:
		return ErrBadMessage
	}
	return nil
}

// applyExtendedSGR recognises the "38;5;<id>m", "48;5;<id>m", "38;2;<r>;<g>;<b>m"
// and "48;2;<r>;<g>;<b>m" forms ahead of generic parameter splitting, exactly
// as spec.md §4.3 requires. handled is true if one of these forms matched (in
// which case err is the final result and the generic path must not run);
// handled is false if csi merely starts with a matching prefix but fails to
// parse cleanly, in which case the caller falls through to generic dispatch.
func applyExtendedSGR(t *Terminal, csi []byte) (handled bool, err error) {
	s := string(csi)

	if rest, ok := cutPrefix(s, "38;5;"); ok {
		if id, ok := parseDigitsThen(rest, 'm'); ok {
			return true, sgrExtended256(t, id, true)
		}
		return false, nil
	}
	if rest, ok := cutPrefix(s, "48;5;"); ok {
		if id, ok := parseDigitsThen(rest, 'm'); ok {
			return true, sgrExtended256(t, id, false)
		}
		return false, nil
	}
	if rest, ok := cutPrefix(s, "38;2;"); ok {
		if r, g, b, ok := parseRGBThen(rest, 'm'); ok {
			return true, sgrExtendedRGB(t, r, g, b, true)
		}
		return false, nil
	}
	if rest, ok := cutPrefix(s, "48;2;"); ok {
		if r, g, b, ok := parseRGBThen(rest, 'm'); ok {
			return true, sgrExtendedRGB(t, r, g, b, false)
		}
		return false, nil
	}

	return false, nil
}

func cutPrefix(s, prefix string) (string, bool) {
	if len(s) < len(prefix) || s[:len(prefix)] != prefix {
		return "", false
	}
	return s[len(prefix):], true
}

// parseDigitsThen parses a run of decimal digits followed immediately by
// terminator, consuming the entire remainder of s. Any other trailing
// content (e.g. a further ';'-separated field) means this is not the simple
// single-value form, and the caller should fall back to generic parsing.
func parseDigitsThen(s string, terminator byte) (value int, ok bool) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		value = value*10 + int(s[i]-'0')
		i++
	}
	if i == len(s)-1 && s[i] == terminator {
		return value, true
	}
	return 0, false
}

// parseRGBThen parses "<r>;<g>;<b><terminator>", consuming the entire
// remainder of s.
func parseRGBThen(s string, terminator byte) (r, g, b int, ok bool) {
	i := 0
	readField := func() (int, bool) {
		start := i
		v := 0
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			v = v*10 + int(s[i]-'0')
			i++
		}
		return v, i > start || s[start:i] == ""
	}
	var okR, okG bool
	r, okR = readField()
	_ = okR
	if i >= len(s) || s[i] != ';' {
		return 0, 0, 0, false
	}
	i++
	g, okG = readField()
	_ = okG
	if i >= len(s) || s[i] != ';' {
		return 0, 0, 0, false
	}
	i++
	b, _ = readField()
	if i == len(s)-1 && s[i] == terminator {
		return r, g, b, true
	}
	return 0, 0, 0, false
}

func sgrExtended256(t *Terminal, id int, fg bool) error {
	if id > 255 {
		debugf("out of range SGR palette index %d", id)
		return ErrNotSupported
	}
	c := ColorFromIndex(uint8(id))
	return sgrExtendedRGB(t, int(c.R), int(c.G), int(c.B), fg)
}

func sgrExtendedRGB(t *Terminal, r, g, b int, fg bool) error {
	if r > 255 || g > 255 || b > 255 {
		debugf("out of range SGR rgb %d;%d;%d", r, g, b)
		return ErrNotSupported
	}
	c := Color{uint8(r), uint8(g), uint8(b)}
	if fg {
		t.style.CustomFg = true
		t.style.Fg = c
	} else {
		t.style.CustomBg = true
		t.style.Bg = c
	}
	return nil
}

func csiSGR(t *Terminal, index int, isDefault bool, value int) error {
	_ = index // the SGR handler does not distinguish by parameter index

	if isDefault {
		value = 0
	}

	switch {
	case value == 0:
		t.style = defaultStyle()
	case value == 1:
		t.style.Bold = true
	case value == 4:
		t.style.Underline = true
	case value == 22:
		t.style.Bold = false
	case value == 24:
		t.style.Underline = false
	case value == 23 || value == 25 || value == 27 || value == 28 || value == 29:
		// reset of italic/blink/reverse/hidden/strike: we don't model these
	case value >= 30 && value <= 37:
		return sgrExtended256(t, value-30, true)
	case value == 39:
		t.style.CustomFg = false
	case value >= 40 && value <= 47:
		return sgrExtended256(t, value-40, false)
	case value == 49:
		t.style.CustomBg = false
	case value >= 90 && value <= 97:
		return sgrExtended256(t, value-90+8, true)
	case value >= 100 && value <= 107:
		return sgrExtended256(t, value-100+8, false)
	default:
		debugf("unsupported SGR attribute <esc>[%dm", value)
		return ErrNotSupported
	}
	return nil
}
