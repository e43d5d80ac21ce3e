package vimcat

import (
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Terminal geometry limits the editor will tolerate, per spec.md §4.6.
const (
	minTermColumns = 80
	maxTermColumns = 10000
	minTermRows    = 1
	maxTermRows    = 1000
)

// editorName is the executable vimcat spawns to render files. It is a var
// rather than a const so tests can point it at a stub binary.
var editorName = "vim"

// HaveEditor reports whether the configured editor executable can be found
// on PATH.
func HaveEditor() bool {
	_, err := exec.LookPath(editorName)
	return err == nil
}

// editorOutput wraps an editor subprocess's stdout pipe so that closing it
// drains any unread output, waits for the child, and surfaces a non-zero
// exit as an error — mirroring the original's fclose-then-waitpid cleanup.
type editorOutput struct {
	cmd     *exec.Cmd
	stdout  io.ReadCloser
	devnull *os.File
}

func (e *editorOutput) Read(p []byte) (int, error) {
	return e.stdout.Read(p)
}

func (e *editorOutput) Close() error {
	// Discard anything left unread so the child doesn't block writing to a
	// full pipe while we wait for it to exit.
	_, _ = io.Copy(io.Discard, e.stdout)
	_ = e.stdout.Close()

	waitErr := e.cmd.Wait()
	_ = e.devnull.Close()

	if waitErr != nil {
		return fmt.Errorf("vimcat: %s exited: %w", editorName, waitErr)
	}
	return nil
}

// spawnEditor starts the editor against filename under a forged rows x
// columns terminal geometry, optionally jumping to topRow and scrolling it
// to the top of the window (topRow <= 1 means no jump). It returns the
// child's stdout; the caller must Close the result once done reading from
// it, which also reaps the child process.
func spawnEditor(filename string, rows, columns, topRow int) (io.ReadCloser, error) {
	if columns < minTermColumns || columns > maxTermColumns {
		return nil, fmt.Errorf("vimcat: terminal columns %d outside [%d, %d]",
			columns, minTermColumns, maxTermColumns)
	}
	if rows < minTermRows || rows > maxTermRows {
		return nil, fmt.Errorf("vimcat: terminal rows %d outside [%d, %d]",
			rows, minTermRows, maxTermRows)
	}

	args := []string{
		"-R",           // read-only mode
		"--not-a-term", // do not check whether std* is a TTY
		"-X",           // do not connect to X server
		"+set nonumber",
		"+set laststatus=0",
		"+set noruler",
		"+set nowrap",
		"+set scrolloff=0",
		fmt.Sprintf("+set lines=%d", rows),
		fmt.Sprintf("+set columns=%d", columns),
	}

	if topRow > 1 {
		args = append(args, fmt.Sprintf("+normal! %dGz\r", topRow))
		debugf("running %s with lines=%d columns=%d '+normal! %dGz<CR>' on %s",
			editorName, rows, columns, topRow, filename)
	} else {
		debugf("running %s with lines=%d columns=%d on %s", editorName, rows, columns, filename)
	}

	args = append(args, "+redraw", "+qa!", "--", filename)

	if n := countDirectives(args); n > 10 {
		return nil, fmt.Errorf("vimcat: internal error: %d editor directives exceeds limit of 10", n)
	}

	cmd := exec.Command(editorName, args...)

	devnull, err := os.OpenFile(os.DevNull, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("vimcat: opening %s: %w", os.DevNull, err)
	}
	cmd.Stdin = devnull
	cmd.Stderr = devnull

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		_ = devnull.Close()
		return nil, fmt.Errorf("vimcat: creating stdout pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		_ = devnull.Close()
		return nil, fmt.Errorf("vimcat: starting %s: %w", editorName, err)
	}
	debugf("%s is PID %d", editorName, cmd.Process.Pid)

	return &editorOutput{cmd: cmd, stdout: stdout, devnull: devnull}, nil
}

// countDirectives counts the "+"-prefixed arguments preceding "--",
// mirroring the original's compile-time assertion that Vim is never handed
// more than 10 commands.
func countDirectives(args []string) int {
	n := 0
	for _, a := range args {
		if a == "--" {
			break
		}
		if len(a) > 0 && a[0] == '+' {
			n++
		}
	}
	return n
}
