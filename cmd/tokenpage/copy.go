package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/pflag"

	"github.com/eringen/tokenpage/character"
	"github.com/eringen/tokenpage/clipboard"
	"github.com/eringen/tokenpage/copyctl"
)

const copyTimeout = 5 * time.Second

func runCopy(args []string, out io.Writer) error {
	c, err := loadCharacter("copy", args)
	if err != nil {
		return err
	}
	copyWith(c.CA, clipboard.Default(), out)
	return nil
}

// copyWith presses the copy button once. A failed copy prints nothing.
func copyWith(ca string, chain copyctl.Chain, out io.Writer) {
	ctx, cancel := context.WithTimeout(context.Background(), copyTimeout)
	defer cancel()

	w := copyctl.NewWidget(copyctl.New(ca, chain))
	defer w.Unmount()

	w.Activate(ctx, copyctl.SurfaceButton)
	if w.Controller().Acknowledged() {
		fmt.Fprintf(out, "%s %s\n", w.Label(), w.Display())
	}
}

func loadCharacter(cmd string, args []string) (character.Character, error) {
	var dir string
	flagSet := pflag.NewFlagSet(cmd, pflag.ContinueOnError)
	flagSet.StringVar(&dir, "dir", "characters", "directory holding character files")
	if err := flagSet.Parse(args); err != nil {
		return character.Character{}, err
	}
	if flagSet.NArg() != 1 {
		return character.Character{}, fmt.Errorf("usage: tokenpage %s <slug> [--dir characters]", cmd)
	}

	slug := flagSet.Arg(0)
	c, err := character.NewLoader(dir).Load(slug)
	if errors.Is(err, character.ErrNotFound) {
		return character.Character{}, fmt.Errorf("no character %q in %s", slug, dir)
	}
	return c, err
}
