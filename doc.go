// Package vimcat renders a text file exactly as a full-screen text editor
// would display it after opening it read-only, syntax highlighting
// included, without ever putting a real terminal on screen.
//
// It works by measuring the file, spawning the editor against a forged
// terminal geometry over a pipe instead of a pty, feeding the editor's
// rendered output through an in-memory virtual terminal that understands
// the narrow slice of ANSI/CSI escape sequences the editor actually emits,
// and reading back the resulting styled lines. Files taller than the
// editor's internal row limit are rendered in successive tiles.
//
// # Quick Start
//
//	err := vimcat.Highlight("main.go", func(line string) error {
//	    fmt.Println(line)
//	    return nil
//	})
//
// To extract a single line without rendering the whole file:
//
//	line, err := vimcat.HighlightLine("main.go", 42)
//
// # Architecture
//
//   - [Terminal]: the virtual terminal — a fixed cell grid driven by CSI
//     escape sequences via Send, read back a row at a time via ReadLine
//   - [Cell] / [Grapheme] / [Style]: what each grid position holds
//   - [Color]: 24-bit colour, with conversion from the standard 8-bit
//     xterm palette and an exact-match-only conversion back to it
//   - Highlight / HighlightLine: the tiling loop that drives one or more
//     editor subprocesses and assembles their output into a complete file
package vimcat
