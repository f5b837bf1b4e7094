package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eringen/tokenpage"
	"github.com/eringen/tokenpage/character"
	"github.com/eringen/tokenpage/copyctl"
)

func TestToTitle(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"solid", "Solid"},
		{"solid-rock", "Solid Rock"},
		{"a-b-c", "A B C"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, toTitle(tt.in))
		})
	}
}

func TestRunNewCreatesPlaceholderCharacter(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "characters")
	var out bytes.Buffer

	require.NoError(t, runNew([]string{"Solid Rock", "--dir", dir}, &out))
	assert.Contains(t, out.String(), "created")

	c, err := character.NewLoader(dir).Load("solid-rock")
	require.NoError(t, err)
	assert.Equal(t, "Solid Rock", c.Name)
	assert.Equal(t, "$SOLIDROCK", c.Ticker)
	assert.Equal(t, "#", c.Links.Buy())

	err = runNew([]string{"solid-rock", "--dir", dir}, &out)
	assert.ErrorContains(t, err, "already exists")
}

func TestRunNewRejectsBadSlug(t *testing.T) {
	dir := t.TempDir()
	err := runNew([]string{"!!!", "--dir", dir}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "invalid slug")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRunLinks(t *testing.T) {
	dir := t.TempDir()
	body := `{"links": {"buy": "https://pump.fun/coin/x", "chart": "#", "x": "javascript:alert(1)"}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "solid.json"), []byte(body), 0o644))

	var out bytes.Buffer
	require.NoError(t, runLinks([]string{"solid", "--dir", dir}, &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "live")
	assert.Contains(t, lines[0], "https://pump.fun/coin/x")
	for _, line := range lines[1:] {
		assert.Contains(t, line, "placeholder")
		assert.NotContains(t, line, "javascript")
	}
}

func TestRunLinksUnknownSlug(t *testing.T) {
	err := runLinks([]string{"ghost", "--dir", t.TempDir()}, &bytes.Buffer{})
	assert.ErrorContains(t, err, `no character "ghost"`)
}

func TestCopyWith(t *testing.T) {
	const ca = "So1idCAxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxpump"

	t.Run("success", func(t *testing.T) {
		var got string
		chain := copyctl.Chain{copyctl.StrategyFunc(func(_ context.Context, text string) error {
			got = text
			return nil
		})}
		var out bytes.Buffer
		copyWith(ca, chain, &out)
		assert.Equal(t, ca, got)
		assert.Equal(t, "Copied! So1idC…xxpump\n", out.String())
	})

	t.Run("failure is silent", func(t *testing.T) {
		chain := copyctl.Chain{copyctl.StrategyFunc(func(context.Context, string) error {
			return errors.New("denied")
		})}
		var out bytes.Buffer
		copyWith(ca, chain, &out)
		assert.Empty(t, out.String())
	})
}

func TestStylesheetFor(t *testing.T) {
	static := t.TempDir()
	cfg := tokenpage.SiteConfig{StaticDir: static}
	assert.Empty(t, stylesheetFor(cfg), "no compiled CSS, no link")

	require.NoError(t, os.WriteFile(filepath.Join(static, "styles.css"), []byte("body{}"), 0o644))
	assert.Equal(t, "/public/styles.css", stylesheetFor(cfg))

	cfg.Stylesheet = "https://cdn.example/site.css"
	assert.Equal(t, "https://cdn.example/site.css", stylesheetFor(cfg))
}
