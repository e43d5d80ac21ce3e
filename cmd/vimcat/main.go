// Command vimcat prints files the way a full-screen text editor would
// render them, syntax highlighting included.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	vimcat "github.com/mtrensch/vimcat-go"
)

var (
	colourFlag  string
	debugFlag   bool
	versionFlag bool
)

func main() {
	root := &cobra.Command{
		Use:           "vimcat [flags] file...",
		Short:         "print a file the way an editor would render it",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		RunE:          run,
	}

	root.Flags().StringVarP(&colourFlag, "colour", "c", "auto", "colour output: always, auto, never")
	root.Flags().BoolVarP(&debugFlag, "debug", "d", false, "enable the debug log sink")
	root.Flags().BoolVarP(&versionFlag, "version", "v", false, "print the version and exit")
	root.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if err := showHelp(); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	})

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "failed:", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if versionFlag {
		fmt.Printf("vimcat version %s\n", vimcat.Version())
		return nil
	}

	if debugFlag {
		vimcat.DebugOn()
	}

	if len(args) == 0 {
		return nil
	}

	if err := checkConsent(); err != nil {
		return err
	}

	strip, err := shouldStripColour(colourFlag)
	if err != nil {
		return err
	}

	for _, path := range args {
		err := vimcat.Highlight(path, func(line string) error {
			if strip {
				line = stripColour(line)
			}
			return printLine(line)
		})
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}

	return nil
}

func shouldStripColour(mode string) (bool, error) {
	switch mode {
	case "always":
		return false, nil
	case "never":
		return true, nil
	case "auto":
		return os.Getenv("NO_COLOR") != "", nil
	default:
		return false, fmt.Errorf("invalid --colour value %q: want always, auto, or never", mode)
	}
}

// printLine writes line to standard output, appending a newline if the
// line doesn't already end in one.
func printLine(line string) error {
	if _, err := fmt.Fprint(os.Stdout, line); err != nil {
		return err
	}
	if !strings.HasSuffix(line, "\n") {
		fmt.Println()
	}
	return nil
}

// checkConsent requires the one-time sentinel file at $HOME/.vimcatrc to
// exist before any file is processed, since vimcat spawns an editor
// subprocess on the caller's behalf.
func checkConsent() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("locating home directory: %w", err)
	}

	rc := filepath.Join(home, ".vimcatrc")
	if _, err := os.Stat(rc); err != nil {
		return fmt.Errorf("vimcat requires consent: create %s to acknowledge that vimcat spawns an editor subprocess on your behalf", rc)
	}
	return nil
}
