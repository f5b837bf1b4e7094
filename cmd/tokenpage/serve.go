package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/a-h/templ"
	"github.com/spf13/pflag"

	"github.com/eringen/tokenpage"
	"github.com/eringen/tokenpage/character"
	"github.com/eringen/tokenpage/views"
)

const shutdownTimeout = 10 * time.Second

func runServe(args []string) error {
	var configPath, addr string
	flagSet := pflag.NewFlagSet("serve", pflag.ContinueOnError)
	flagSet.StringVar(&configPath, "config", "", "path to a config file (yaml, toml or json)")
	flagSet.StringVar(&addr, "addr", "", "listen address, overrides the config")
	if err := flagSet.Parse(args); err != nil {
		return err
	}

	cfg, err := tokenpage.LoadSiteConfig(configPath)
	if err != nil {
		return err
	}
	if addr != "" {
		cfg.Addr = addr
	}

	app := tokenpage.New(cfg, siteViews(cfg))
	defer app.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() { errc <- app.Start() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	app.Echo.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errc
}

func siteViews(cfg tokenpage.SiteConfig) tokenpage.ViewFuncs {
	site := views.SiteConfig{Name: cfg.Name, URL: cfg.URL, Stylesheet: stylesheetFor(cfg)}
	return tokenpage.ViewFuncs{
		Page:        func(c character.Character) templ.Component { return views.Page(site, c) },
		NotFound:    func() templ.Component { return views.NotFound(site) },
		ServerError: func() templ.Component { return views.ServerError(site) },
	}
}

// stylesheetFor returns the configured stylesheet, or the site's compiled
// styles.css when one exists in the static directory.
func stylesheetFor(cfg tokenpage.SiteConfig) string {
	if cfg.Stylesheet != "" {
		return cfg.Stylesheet
	}
	if _, err := os.Stat(filepath.Join(cfg.StaticDir, "styles.css")); err == nil {
		return "/public/styles.css"
	}
	return ""
}
