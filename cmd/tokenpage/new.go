package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"

	"github.com/eringen/tokenpage"
	"github.com/eringen/tokenpage/character"
	"github.com/eringen/tokenpage/scaffold"
)

func runNew(args []string, out io.Writer) error {
	var dir string
	flagSet := pflag.NewFlagSet("new", pflag.ContinueOnError)
	flagSet.StringVar(&dir, "dir", "characters", "directory holding character files")
	if err := flagSet.Parse(args); err != nil {
		return err
	}
	if flagSet.NArg() != 1 {
		return errors.New("usage: tokenpage new <slug> [--dir characters]")
	}

	slug := tokenpage.Slugify(flagSet.Arg(0))
	if !character.ValidSlug(slug) {
		return fmt.Errorf("invalid slug %q: use letters, digits and hyphens", flagSet.Arg(0))
	}

	path := character.NewLoader(dir).Path(slug)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	data := scaffold.Data{
		Slug:   slug,
		Name:   toTitle(slug),
		Ticker: "$" + strings.ToUpper(strings.ReplaceAll(slug, "-", "")),
	}
	if err := scaffold.WriteCharacter(f, data); err != nil {
		return err
	}

	fmt.Fprintf(out, "  created %s\n\n", path)
	fmt.Fprintf(out, "Set the links in %s when the token launches.\n", path)
	fmt.Fprintf(out, "Put the hero image at public/images/%s.png.\n", slug)
	return nil
}

// toTitle converts a hyphenated or lowercase name to a title-case string.
// e.g. "solid-rock" -> "Solid Rock", "solid" -> "Solid"
func toTitle(s string) string {
	parts := strings.Split(s, "-")
	for i, p := range parts {
		if len(p) > 0 {
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, " ")
}
