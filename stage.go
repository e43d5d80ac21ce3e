package vimcat

import "bytes"

// stageBuffer is the terminal's growable scratch space, used both to
// accumulate the raw bytes of an in-flight CSI sequence and to assemble the
// ANSI-annotated string returned by ReadLine. Its content is irrelevant
// between public Terminal operations: callers must not retain slices across
// calls, since the next operation clears and reuses the same backing array.
type stageBuffer struct {
	buf bytes.Buffer
}

// reset clears the buffer for reuse, keeping its allocated capacity.
func (s *stageBuffer) reset() {
	s.buf.Reset()
}

// Write implements io.Writer, appending to the buffer.
func (s *stageBuffer) Write(p []byte) (int, error) {
	return s.buf.Write(p)
}

// WriteByte appends a single byte.
func (s *stageBuffer) WriteByte(b byte) error {
	return s.buf.WriteByte(b)
}

// WriteString appends a string.
func (s *stageBuffer) WriteString(str string) (int, error) {
	return s.buf.WriteString(str)
}

// bytesView returns the buffer's current content. The slice is only valid
// until the next call to reset or any Write method.
func (s *stageBuffer) bytesView() []byte {
	return s.buf.Bytes()
}

// String returns a fresh copy of the buffer's current content.
func (s *stageBuffer) String() string {
	return s.buf.String()
}
