package main

import (
	_ "embed"
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

//go:embed vimcat.1
var manpage []byte

// showHelp writes the embedded manual page to a temporary file and hands
// it to the platform's man command, the same trick the original CLI uses
// to avoid having to reformat or print roff source itself. man on some
// platforms refuses to read a manpage from a pipe, so a temp file is used
// uniformly rather than only as a fallback.
func showHelp() error {
	f, err := os.CreateTemp("", "vimcat-help-*.1")
	if err != nil {
		return fmt.Errorf("creating temporary manpage file: %w", err)
	}
	path := f.Name()
	defer os.Remove(path)

	if _, err := f.Write(manpage); err != nil {
		f.Close()
		return fmt.Errorf("writing temporary manpage file: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("syncing temporary manpage file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing temporary manpage file: %w", err)
	}

	args := []string{path}
	if runtime.GOOS == "linux" {
		args = []string{"--local-file", path}
	}

	cmd := exec.Command("man", args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
