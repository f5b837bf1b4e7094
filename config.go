package tokenpage

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// SiteConfig holds all configuration for a tokenpage site.
type SiteConfig struct {
	Name string // Site name (default "tokenpage")
	URL  string // Canonical URL (default "http://localhost:3000")
	Addr string // Listen address (default ":3000")

	CharactersDir   string // Directory of <slug>.json files (default "characters")
	StaticDir       string // User static assets (default "public")
	Stylesheet      string // Stylesheet URL; /public/styles.css when that file exists
	DefaultSlug     string // Slug rendered at "/" (default "solid")
	WatchCharacters bool   // Reload characters when files change

	CacheTTL   time.Duration // Character cache TTL (default 5min)
	RateLimit  int           // Page requests per IP per window (default 120)
	RateWindow time.Duration // Rate limit window (default 1min)
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "tokenpage"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	c.URL = strings.TrimSuffix(c.URL, "/")
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.CharactersDir == "" {
		c.CharactersDir = "characters"
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
	if c.DefaultSlug == "" {
		c.DefaultSlug = "solid"
	}
	if c.CacheTTL == 0 {
		c.CacheTTL = 5 * time.Minute
	}
	if c.RateLimit == 0 {
		c.RateLimit = 120
	}
	if c.RateWindow == 0 {
		c.RateWindow = time.Minute
	}
}

// LoadSiteConfig reads configuration from an optional file and from
// TOKENPAGE_* environment variables. Environment wins over the file.
func LoadSiteConfig(path string) (SiteConfig, error) {
	v := viper.New()
	v.SetEnvPrefix("TOKENPAGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("name", "tokenpage")
	v.SetDefault("url", "http://localhost:3000")
	v.SetDefault("addr", ":3000")
	v.SetDefault("characters_dir", "characters")
	v.SetDefault("static_dir", "public")
	v.SetDefault("stylesheet", "")
	v.SetDefault("default_slug", "solid")
	v.SetDefault("watch_characters", true)
	v.SetDefault("cache_ttl", 5*time.Minute)
	v.SetDefault("rate_limit", 120)
	v.SetDefault("rate_window", time.Minute)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return SiteConfig{}, fmt.Errorf("tokenpage: read config: %w", err)
		}
	}

	cfg := SiteConfig{
		Name:            v.GetString("name"),
		URL:             v.GetString("url"),
		Addr:            v.GetString("addr"),
		CharactersDir:   v.GetString("characters_dir"),
		StaticDir:       v.GetString("static_dir"),
		Stylesheet:      v.GetString("stylesheet"),
		DefaultSlug:     v.GetString("default_slug"),
		WatchCharacters: v.GetBool("watch_characters"),
		CacheTTL:        v.GetDuration("cache_ttl"),
		RateLimit:       v.GetInt("rate_limit"),
		RateWindow:      v.GetDuration("rate_window"),
	}
	cfg.setDefaults()
	return cfg, nil
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for user-owned static assets.
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.Config.StaticDir = dir
	}
}

// WithCharactersDir sets the directory holding character files.
func WithCharactersDir(dir string) Option {
	return func(a *App) {
		a.Config.CharactersDir = dir
	}
}
