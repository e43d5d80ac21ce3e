package vimcat

import (
	"bufio"
	"fmt"
	"io"
)

// Terminal is an in-memory virtual terminal: a fixed-size grid of styled
// cells driven by a narrow subset of ANSI/CSI escape sequences, the subset
// a full-screen text editor actually emits when painting a read-only
// buffer. It has no scrollback and no resize: dimensions are fixed at
// construction, matching one forged window geometry per editor invocation.
type Terminal struct {
	columns, rows int
	x, y          int // 1-indexed cursor position
	style         Style
	grid          []Cell
	stage         stageBuffer
}

// NewTerminal allocates a columns x rows virtual terminal, cursor homed at
// (1, 1) in the default style.
func NewTerminal(columns, rows int) (*Terminal, error) {
	if columns < 1 || rows < 1 {
		return nil, ErrInvalid
	}
	t := &Terminal{
		columns: columns,
		rows:    rows,
	}
	t.grid = make([]Cell, columns*rows)
	t.Reset()
	return t, nil
}

// Reset homes the cursor, restores the default style, and blanks every
// cell, without reallocating the grid. Used between tiles when a file
// spans more rows than the editor can display in a single invocation.
func (t *Terminal) Reset() {
	t.x, t.y = 1, 1
	t.style = defaultStyle()
	t.clearGrid()
}

func (t *Terminal) clearGrid() {
	for i := range t.grid {
		t.grid[i] = Cell{}
	}
}

// cellAt returns the cell at 1-indexed (x, y). Callers are responsible for
// keeping x and y within [1, columns] and [1, rows]: this is an internal
// helper invoked only after the CSI handlers and placement logic have
// already clamped their coordinates.
func (t *Terminal) cellAt(x, y int) *Cell {
	return &t.grid[(y-1)*t.columns+(x-1)]
}

// Send consumes r as a stream of UTF-8 text interleaved with CSI escape
// sequences, updating the grid, cursor, and active style exactly as a real
// terminal would. It returns the first error encountered, wrapping I/O
// failures and reporting malformed or unsupported escape sequences via the
// ErrBadMessage / ErrNotSupported sentinels.
func (t *Terminal) Send(r io.Reader) error {
	br := bufio.NewReader(r)

	for {
		kind, g, err := nextChar(br)
		if err != nil {
			return fmt.Errorf("vimcat: reading terminal input: %w", err)
		}

		switch kind {
		case charNone:
			return nil
		case charBreak:
			t.newline()
		case charPlain:
			t.put(g)
		case charEsc:
			if err := t.handleEscape(br); err != nil {
				return err
			}
		}
	}
}

// put writes g at the cursor in the current style and advances the cursor,
// wrapping to the next row when the current row is full.
func (t *Terminal) put(g Grapheme) {
	cell := t.cellAt(t.x, t.y)
	cell.Grapheme = g
	cell.Style = t.style
	t.advanceCursor()
}

func (t *Terminal) advanceCursor() {
	t.x++
	if t.x > t.columns {
		t.newline()
	}
}

// newline moves the cursor to the start of the next row, clamping at the
// last row rather than scrolling: this virtual terminal has no
// scrollback, it is a fixed snapshot of one screen.
func (t *Terminal) newline() {
	t.x = 1
	if t.y < t.rows {
		t.y++
	}
}

// handleEscape is called immediately after consuming the ESC byte that
// starts an escape sequence. Only CSI ("ESC [...") sequences carry
// meaning here; the keypad application/normal mode sequences ("ESC ="
// and "ESC >") are recognised and silently ignored, and anything else is
// unsupported.
func (t *Terminal) handleEscape(br *bufio.Reader) error {
	b, err := br.ReadByte()
	if err == io.EOF {
		return ErrBadMessage
	}
	if err != nil {
		return err
	}

	switch b {
	case '[':
		return t.handleCSI(br)
	case '=', '>':
		return nil
	default:
		debugf("unsupported escape sequence <esc>%c", b)
		return ErrNotSupported
	}
}

// handleCSI accumulates the bytes of one CSI sequence up to and including
// its terminator (a byte in 0x40..0x7E) and applies it. Reaching EOF
// before a terminator is a malformed sequence.
func (t *Terminal) handleCSI(br *bufio.Reader) error {
	t.stage.reset()

	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			return ErrBadMessage
		}
		if err != nil {
			return err
		}

		t.stage.WriteByte(b)
		if b >= 0x40 && b <= 0x7e {
			break
		}
	}

	return applyCSI(t, t.stage.bytesView())
}

// ReadLine renders one row (1-indexed) as a string with embedded CSI style
// transitions, trimming trailing empty cells and closing with a final
// reset only if the row ends in a non-default style.
func (t *Terminal) ReadLine(row int) (string, error) {
	if row < 1 || row > t.rows {
		return "", ErrRange
	}

	last := 0
	for x := 1; x <= t.columns; x++ {
		if !t.cellAt(x, row).IsEmpty() {
			last = x
		}
	}

	t.stage.reset()
	active := defaultStyle()

	for x := 1; x <= last; x++ {
		cell := t.cellAt(x, row)

		style := cell.Style
		if cell.IsEmpty() {
			style = defaultStyle()
		}

		writeStyleTransition(&t.stage, active, style)
		active = style

		if cell.IsEmpty() {
			t.stage.WriteByte(' ')
		} else {
			t.stage.Write(cell.Grapheme.bytes())
		}
	}

	if !active.Equal(defaultStyle()) {
		t.stage.WriteString("\x1b[0m")
	}

	return t.stage.String(), nil
}
