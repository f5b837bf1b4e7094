// Package clipboard provides the copy strategies used outside the
// browser: the platform clipboard API first, then a staged fallback
// that hands a temporary file to the platform copy command.
package clipboard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"

	"github.com/atotto/clipboard"

	"github.com/eringen/tokenpage/copyctl"
)

var (
	// ErrUnsupported is returned when no clipboard utility is available.
	ErrUnsupported = errors.New("clipboard: unsupported on this system")
	// ErrNoCommand is returned when no platform copy command is installed.
	ErrNoCommand = errors.New("clipboard: no copy command found")
)

// Default returns the strategy chain used by the CLI.
func Default() copyctl.Chain {
	return copyctl.Chain{System{}, Staged{}}
}

// System writes through the platform clipboard API.
type System struct{}

// Copy writes text to the system clipboard.
func (System) Copy(ctx context.Context, text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return clipboard.WriteAll(text)
}

// Staged places the text in a temporary file, attaches it as stdin to a
// copy command, and removes the file as soon as the command returns.
type Staged struct {
	// Command overrides the platform copy command (argv form).
	Command []string
	// TempDir is where the staging file is created (default os.TempDir).
	TempDir string
}

// Copy stages text and runs the copy command over it.
func (s Staged) Copy(ctx context.Context, text string) error {
	argv := s.Command
	if len(argv) == 0 {
		var err error
		argv, err = platformCommand()
		if err != nil {
			return err
		}
	}

	f, err := os.CreateTemp(s.TempDir, "tokenpage-copy-*.txt")
	if err != nil {
		return fmt.Errorf("clipboard: stage: %w", err)
	}
	defer os.Remove(f.Name())
	defer f.Close()

	if _, err := io.WriteString(f, text); err != nil {
		return fmt.Errorf("clipboard: stage: %w", err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("clipboard: stage: %w", err)
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdin = f
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("clipboard: %s: %w", argv[0], err)
	}
	return nil
}

// platformCommand picks the copy utility for the running OS.
func platformCommand() ([]string, error) {
	var candidates [][]string
	switch runtime.GOOS {
	case "darwin":
		candidates = [][]string{{"pbcopy"}}
	case "windows":
		candidates = [][]string{{"clip"}}
	default:
		candidates = [][]string{
			{"wl-copy"},
			{"xclip", "-selection", "clipboard"},
			{"xsel", "--clipboard", "--input"},
		}
	}
	for _, c := range candidates {
		if _, err := exec.LookPath(c[0]); err == nil {
			return c, nil
		}
	}
	return nil, ErrNoCommand
}
