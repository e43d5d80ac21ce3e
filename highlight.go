package vimcat

import "fmt"

// Highlight renders filename the way the configured editor would display
// it read-only in a full-screen terminal, calling fn once per rendered
// line in order. Iteration stops at the first error returned by fn or
// encountered while rendering; that error is returned from Highlight.
func Highlight(filename string, fn func(line string) error) error {
	return highlightCore(filename, 0, fn)
}

// HighlightLine renders a single line (1-indexed) of filename. It is a
// convenience counterpart to Highlight for callers who don't need the rest
// of the file: it runs the same tiling loop, which renders a single line
// through a single 2-row terminal, and captures that one line instead of
// the whole file. An empty filename or a lineno below 1 is ErrInvalid.
func HighlightLine(filename string, lineno int) (string, error) {
	if filename == "" || lineno < 1 {
		return "", ErrInvalid
	}

	var line string
	found := false
	err := highlightCore(filename, lineno, func(l string) error {
		line = l
		found = true
		return nil
	})
	if err != nil {
		return "", err
	}
	if !found {
		return "", ErrRange
	}
	return line, nil
}

// highlightCore implements the shared tiling loop behind Highlight and
// HighlightLine. lineno == 0 renders the whole file; lineno > 0 renders
// only that one line, using it as the editor's jump target and trimming
// the scan performed by extent to just what's needed to validate it's in
// range.
func highlightCore(filename string, lineno int, fn func(line string) error) error {
	rows, columns, err := extent(filename, lineno)
	if err != nil {
		return err
	}
	debugf("%s has %d rows and %d columns", filename, rows, columns)

	if lineno != 0 && lineno > rows {
		return ErrRange
	}

	termRows := rows
	termColumns := columns

	if lineno > 0 {
		rows = lineno
		termRows = 1
	}

	// one extra row for the editor's status line
	termRows++

	if termRows < 2 {
		debugf("clamping terminal rows from %d to 2", termRows)
		termRows = 2
	}
	if termColumns < minTermColumns {
		debugf("clamping terminal columns from %d to %d", termColumns, minTermColumns)
		termColumns = minTermColumns
	}
	if termColumns > maxTermColumns {
		debugf("clamping terminal columns from %d to %d", termColumns, maxTermColumns)
		termColumns = maxTermColumns
	}
	if termRows > maxTermRows {
		debugf("clamping terminal rows from %d to %d", termRows, maxTermRows)
		termRows = maxTermRows
	}

	term, err := NewTerminal(termColumns, termRows)
	if err != nil {
		return err
	}

	start := 1
	if lineno != 0 {
		start = lineno
	}

	for row := start; row <= rows; {
		if lineno == 0 && row > 1 {
			term.Reset()
		}

		vimRows := rows - row + 1
		if vimRows > 999 {
			vimRows = 999
		}

		if err := renderTile(term, filename, termRows, termColumns, row, vimRows, fn); err != nil {
			return err
		}

		row += vimRows
	}

	return nil
}

// renderTile spawns one editor invocation covering vimRows starting at
// row, drains its output into term, and delivers the resulting lines to
// fn in order.
func renderTile(term *Terminal, filename string, termRows, termColumns, row, vimRows int, fn func(line string) error) error {
	out, err := spawnEditor(filename, termRows, termColumns, row)
	if err != nil {
		return err
	}

	sendErr := term.Send(out)
	closeErr := out.Close()

	if sendErr != nil {
		return fmt.Errorf("vimcat: rendering %s: %w", filename, sendErr)
	}
	if closeErr != nil {
		return closeErr
	}

	for y := 1; y <= vimRows; y++ {
		line, err := term.ReadLine(y)
		if err != nil {
			return err
		}
		if err := fn(line); err != nil {
			return err
		}
	}

	return nil
}
