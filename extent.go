package vimcat

import (
	"bufio"
	"fmt"
	"os"
)

// extent scans filename to learn how many rows it has and how wide its
// widest row is, counting a tab stop as 8 columns and treating any of LF,
// CR, or CRLF as a row terminator. If limit is non-zero, scanning stops as
// soon as more than limit rows have been seen, since the caller only needs
// an exact row count up to that point (the single-line highlight path).
func extent(filename string, limit int) (rows, columns int, err error) {
	f, err := os.Open(filename)
	if err != nil {
		return 0, 0, fmt.Errorf("vimcat: opening %s: %w", filename, err)
	}
	defer f.Close()

	br := bufio.NewReader(f)

	lines := 1
	width := 0
	maxWidth := 0
	lastByte := -1

	for {
		if limit != 0 && lines > limit {
			break
		}

		b, readErr := br.ReadByte()
		if readErr != nil {
			break
		}
		lastByte = int(b)

		switch b {
		case '\n':
			lines++
			if maxWidth < width {
				maxWidth = width
			}
			width = 0
			continue
		case '\r':
			n, nerr := br.ReadByte()
			if nerr == nil && n == '\n' {
				lastByte = int(n)
			} else if nerr == nil {
				if err := br.UnreadByte(); err != nil {
					return 0, 0, ErrIO
				}
			}
			lines++
			if maxWidth < width {
				maxWidth = width
			}
			width = 0
			continue
		case '\t':
			width += 8
			continue
		}

		width++
	}

	if maxWidth < width {
		maxWidth = width
	}

	if lastByte == '\n' {
		lines--
	}

	return lines, maxWidth, nil
}
