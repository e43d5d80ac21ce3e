package vimcat

import "errors"

// Sentinel errors standing in for the POSIX error numbers spec.md §7 defines
// the C ABI in terms of. Use errors.Is to test for them; child-process and
// syscall failures are instead returned wrapped with %w, preserving the
// underlying error.
var (
	// ErrInvalid marks a null/empty argument or a disallowed lineno == 0.
	ErrInvalid = errors.New("vimcat: invalid argument")
	// ErrRange marks a requested line beyond the file's row count.
	ErrRange = errors.New("vimcat: line number out of range")
	// ErrBadMessage marks a malformed CSI sequence or an out-of-range
	// handler parameter index.
	ErrBadMessage = errors.New("vimcat: malformed escape sequence")
	// ErrNotSupported marks an unknown CSI terminator, unknown SGR code,
	// out-of-range colour value, or unsupported non-CSI escape sequence.
	ErrNotSupported = errors.New("vimcat: unsupported escape sequence")
	// ErrIO marks a failure pushing back a byte during CRLF disambiguation
	// or similar low-level stream failure.
	ErrIO = errors.New("vimcat: i/o error")
)
