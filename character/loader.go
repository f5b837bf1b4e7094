package character

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/tidwall/jsonc"
)

// ErrNotFound is returned when no configuration exists for a slug.
var ErrNotFound = errors.New("character: not found")

const fileExt = ".json"

// Loader reads character files from a directory, one <slug>.json each.
type Loader struct {
	dir string
}

// NewLoader returns a Loader rooted at dir.
func NewLoader(dir string) *Loader {
	return &Loader{dir: dir}
}

// Dir returns the configuration directory.
func (l *Loader) Dir() string { return l.dir }

// Path returns the file path for slug.
func (l *Loader) Path(slug string) string {
	return filepath.Join(l.dir, slug+fileExt)
}

// Load reads and decodes the configuration for slug. Missing files and
// slugs that cannot name a file return ErrNotFound.
func (l *Loader) Load(slug string) (Character, error) {
	if !ValidSlug(slug) {
		return Character{}, ErrNotFound
	}
	raw, err := os.ReadFile(l.Path(slug))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Character{}, ErrNotFound
		}
		return Character{}, fmt.Errorf("character: read %s: %w", slug, err)
	}
	return Decode(slug, raw)
}

// Decode parses a configuration document. Comments and trailing commas
// are allowed.
func Decode(slug string, raw []byte) (Character, error) {
	var c Character
	if err := json.Unmarshal(jsonc.ToJSON(raw), &c); err != nil {
		return Character{}, fmt.Errorf("character: decode %s: %w", slug, err)
	}
	c.Slug = slug
	c.applyDefaults()
	return c, nil
}

// List returns every slug with a configuration file, sorted.
func (l *Loader) List() ([]string, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("character: list: %w", err)
	}
	var slugs []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), fileExt) {
			continue
		}
		slug := strings.TrimSuffix(e.Name(), fileExt)
		if ValidSlug(slug) {
			slugs = append(slugs, slug)
		}
	}
	sort.Strings(slugs)
	return slugs, nil
}

// ValidSlug reports whether s is a lowercase slug of letters, digits and
// hyphens.
func ValidSlug(s string) bool {
	if s == "" || len(s) > 64 || s[0] == '-' {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
		default:
			return false
		}
	}
	return true
}
