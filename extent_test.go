package vimcat

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "input.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing temp file: %v", err)
	}
	return path
}

func TestExtentSimple(t *testing.T) {
	path := writeTempFile(t, "abc\nde\n")
	rows, columns, err := extent(path, 0)
	if err != nil {
		t.Fatalf("extent: %v", err)
	}
	if rows != 2 {
		t.Errorf("rows = %d, want 2", rows)
	}
	if columns != 3 {
		t.Errorf("columns = %d, want 3", columns)
	}
}

func TestExtentNoTrailingNewline(t *testing.T) {
	path := writeTempFile(t, "abc\nde")
	rows, columns, err := extent(path, 0)
	if err != nil {
		t.Fatalf("extent: %v", err)
	}
	if rows != 2 {
		t.Errorf("rows = %d, want 2", rows)
	}
	if columns != 3 {
		t.Errorf("columns = %d, want 3", columns)
	}
}

func TestExtentTabsCountAsEight(t *testing.T) {
	path := writeTempFile(t, "a\tb")
	_, columns, err := extent(path, 0)
	if err != nil {
		t.Fatalf("extent: %v", err)
	}
	if columns != 10 {
		t.Errorf("columns = %d, want 10 (tab=8 + 'a' + 'b')", columns)
	}
}

func TestExtentCRLF(t *testing.T) {
	path := writeTempFile(t, "abc\r\ndefgh\r\n")
	rows, columns, err := extent(path, 0)
	if err != nil {
		t.Fatalf("extent: %v", err)
	}
	if rows != 2 {
		t.Errorf("rows = %d, want 2", rows)
	}
	if columns != 5 {
		t.Errorf("columns = %d, want 5", columns)
	}
}

func TestExtentLoneCR(t *testing.T) {
	path := writeTempFile(t, "ab\rcd")
	rows, columns, err := extent(path, 0)
	if err != nil {
		t.Fatalf("extent: %v", err)
	}
	if rows != 2 {
		t.Errorf("rows = %d, want 2 (lone CR is a row terminator)", rows)
	}
	if columns != 2 {
		t.Errorf("columns = %d, want 2", columns)
	}
}

func TestExtentSingleRowNoNewline(t *testing.T) {
	path := writeTempFile(t, "hello")
	rows, columns, err := extent(path, 0)
	if err != nil {
		t.Fatalf("extent: %v", err)
	}
	if rows != 1 || columns != 5 {
		t.Errorf("got rows=%d columns=%d, want rows=1 columns=5", rows, columns)
	}
}

func TestExtentLimit(t *testing.T) {
	path := writeTempFile(t, "a\nb\nc\nd\ne\n")
	rows, _, err := extent(path, 2)
	if err != nil {
		t.Fatalf("extent: %v", err)
	}
	// scanning stops once more than `limit` rows have been seen; the exact
	// count just needs to satisfy the caller's "is this within range" check
	if rows < 2 {
		t.Errorf("rows = %d, want at least 2", rows)
	}
}
