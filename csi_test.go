package vimcat

import (
	"strings"
	"testing"
)

func sendString(t *testing.T, term *Terminal, s string) error {
	t.Helper()
	return term.Send(strings.NewReader(s))
}

func TestCursorMotionClampsAtEdges(t *testing.T) {
	term := newTestTerminal(t, 5, 5)

	// cursor up from row 1 clamps at row 1, not negative
	if err := sendString(t, term, "\x1b[10Ax"); err != nil {
		t.Fatalf("Send: %v", err)
	}
	line, _ := term.ReadLine(1)
	if line != "x" {
		t.Errorf("ReadLine(1) = %q, want %q", line, "x")
	}
}

func TestCursorDownClampsAtLastRow(t *testing.T) {
	term := newTestTerminal(t, 5, 3)
	if err := sendString(t, term, "\x1b[10Bx"); err != nil {
		t.Fatalf("Send: %v", err)
	}
	line, _ := term.ReadLine(3)
	if line != "x" {
		t.Errorf("ReadLine(3) = %q, want %q", line, "x")
	}
}

func TestCursorForwardClamp(t *testing.T) {
	term := newTestTerminal(t, 5, 1)
	if err := sendString(t, term, "\x1b[100Cx"); err != nil {
		t.Fatalf("Send: %v", err)
	}
	line, _ := term.ReadLine(1)
	if line != "    x" {
		t.Errorf("ReadLine(1) = %q, want %q", line, "    x")
	}
}

func TestCursorColumnHandler(t *testing.T) {
	term := newTestTerminal(t, 10, 1)
	if err := sendString(t, term, "\x1b[5Gx"); err != nil {
		t.Fatalf("Send: %v", err)
	}
	line, _ := term.ReadLine(1)
	if line != "    x" {
		t.Errorf("ReadLine(1) = %q, want %q", line, "    x")
	}
}

func TestEraseDisplayToEnd(t *testing.T) {
	term := newTestTerminal(t, 5, 2)
	if err := sendString(t, term, "abcde\x1b[2;3Hxy"); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if err := sendString(t, term, "\x1b[1;1H\x1b[0J"); err != nil {
		t.Fatalf("Send: %v", err)
	}
	first, _ := term.ReadLine(1)
	second, _ := term.ReadLine(2)
	if first != "" || second != "" {
		t.Errorf("expected both rows cleared from cursor onward, got %q, %q", first, second)
	}
}

func TestEraseDisplayEntireScreen(t *testing.T) {
	term := newTestTerminal(t, 5, 2)
	if err := sendString(t, term, "abcde\x1b[2;1Hfghij"); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if err := sendString(t, term, "\x1b[2J"); err != nil {
		t.Fatalf("Send: %v", err)
	}
	first, _ := term.ReadLine(1)
	second, _ := term.ReadLine(2)
	if first != "" || second != "" {
		t.Errorf("expected both rows cleared, got %q, %q", first, second)
	}
}

func TestBadParameterIndex(t *testing.T) {
	term := newTestTerminal(t, 10, 2)
	if err := sendString(t, term, "\x1b[1;2A"); err != ErrBadMessage {
		t.Errorf("cursor-up with a second parameter: error = %v, want ErrBadMessage", err)
	}
}

func TestExtendedRGBColour(t *testing.T) {
	term := newTestTerminal(t, 10, 1)
	if err := sendString(t, term, "\x1b[38;2;10;20;30mx"); err != nil {
		t.Fatalf("Send: %v", err)
	}
	line, err := term.ReadLine(1)
	if err != nil {
		t.Fatalf("ReadLine: %v", err)
	}
	want := "\x1b[38;2;10;20;30m\x1b[49;22;24mx\x1b[0m"
	if line != want {
		t.Errorf("ReadLine(1) = %q, want %q", line, want)
	}
}

func TestOutOfRangePaletteIndexIsNotSupported(t *testing.T) {
	term := newTestTerminal(t, 10, 1)
	if err := sendString(t, term, "\x1b[38;5;999mx"); err != ErrNotSupported {
		t.Errorf("error = %v, want ErrNotSupported", err)
	}
}

func TestUnknownCSITerminatorIsNotSupported(t *testing.T) {
	term := newTestTerminal(t, 10, 1)
	if err := sendString(t, term, "\x1b[5Z"); err != ErrNotSupported {
		t.Errorf("error = %v, want ErrNotSupported", err)
	}
}
