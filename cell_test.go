package vimcat

import "testing"

func TestGraphemeFromRuneASCII(t *testing.T) {
	g := graphemeFromRune('a')
	if got := string(g.bytes()); got != "a" {
		t.Errorf("graphemeFromRune('a').bytes() = %q, want %q", got, "a")
	}
}

func TestGraphemeFromRuneMultiByte(t *testing.T) {
	g := graphemeFromRune('世')
	if got := string(g.bytes()); got != "世" {
		t.Errorf("graphemeFromRune('世').bytes() = %q, want %q", got, "世")
	}
}

func TestGraphemeIsEmpty(t *testing.T) {
	var g Grapheme
	if !g.IsEmpty() {
		t.Errorf("zero-value Grapheme should be empty")
	}
	g = graphemeFromRune('x')
	if g.IsEmpty() {
		t.Errorf("Grapheme holding 'x' should not be empty")
	}
}

func TestCellClear(t *testing.T) {
	c := Cell{Grapheme: graphemeFromRune('x'), Style: Style{Bold: true}}
	if c.IsEmpty() {
		t.Fatalf("precondition: cell should not be empty")
	}
	c.clear()
	if !c.IsEmpty() {
		t.Errorf("cell should be empty after clear")
	}
	if c.Style != (Style{}) {
		t.Errorf("clear should reset style too, got %+v", c.Style)
	}
}
