package vimcat

import "testing"

func TestCountDirectives(t *testing.T) {
	args := []string{
		"-R", "--not-a-term", "-X",
		"+set nonumber", "+set laststatus=0", "+set noruler",
		"+set nowrap", "+set scrolloff=0",
		"+set lines=24", "+set columns=80",
		"+redraw", "+qa!", "--", "input.txt",
	}
	if n := countDirectives(args); n != 9 {
		t.Errorf("countDirectives = %d, want 9", n)
	}
}

func TestCountDirectivesStopsAtDoubleDash(t *testing.T) {
	args := []string{"+one", "--", "+not-a-directive"}
	if n := countDirectives(args); n != 1 {
		t.Errorf("countDirectives = %d, want 1 (must not count past --)", n)
	}
}

func TestSpawnEditorRejectsOutOfRangeGeometry(t *testing.T) {
	if _, err := spawnEditor("whatever", 1, 79, 0); err == nil {
		t.Errorf("expected an error for columns below the minimum")
	}
	if _, err := spawnEditor("whatever", 1, 10001, 0); err == nil {
		t.Errorf("expected an error for columns above the maximum")
	}
	if _, err := spawnEditor("whatever", 0, 80, 0); err == nil {
		t.Errorf("expected an error for rows below the minimum")
	}
	if _, err := spawnEditor("whatever", 1001, 80, 0); err == nil {
		t.Errorf("expected an error for rows above the maximum")
	}
}
