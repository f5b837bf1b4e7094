// Package tokenpage serves single-page promotional sites for tokens, one
// page per slug, driven by JSON configuration files.
//
// Users provide the page components through ViewFuncs; tokenpage handles
// configuration loading, link resolution, caching, middleware and assets.
package tokenpage

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	"github.com/eringen/tokenpage/character"
)

// ViewFuncs holds the templ components the app renders.
type ViewFuncs struct {
	Page        func(c character.Character) templ.Component
	NotFound    func() templ.Component
	ServerError func() templ.Component
}

// App is the central tokenpage application.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Loader *character.Loader
	Cache  *CharacterCache
	Views  ViewFuncs

	limiter      *Limiter
	heroes       *heroCache
	watcher      *character.Watcher
	customRoutes []func(*App)
}

// New creates an App with the given configuration and view functions.
func New(cfg SiteConfig, views ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
		Views:  views,
	}
	a.Echo.HideBanner = true
	a.Echo.Logger.SetLevel(log.INFO)

	for _, opt := range opts {
		opt(a)
	}

	a.Loader = character.NewLoader(a.Config.CharactersDir)
	a.Cache = NewCharacterCache(a.Loader, a.Config.CacheTTL)
	a.limiter = NewLimiter(a.Config.RateLimit, a.Config.RateWindow)
	a.heroes = newHeroCache()
	return a
}

// Init installs middleware and routes and starts the configuration
// watcher. Start calls it; tests call it directly and drive a.Echo.
func (a *App) Init() error {
	if a.Config.WatchCharacters {
		w, err := character.Watch(a.Config.CharactersDir, func(slug string) {
			a.Cache.Invalidate(slug)
			a.Echo.Logger.Infof("reloaded character %s", slug)
		}, character.WithOnError(func(err error) {
			a.Echo.Logger.Warnf("character watcher: %v", err)
		}))
		if err != nil {
			a.Echo.Logger.Warnf("tokenpage: watch disabled: %v", err)
		} else {
			a.watcher = w
		}
	}

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}
	return nil
}

// Start initializes the app and serves until the server stops.
func (a *App) Start() error {
	if err := a.Init(); err != nil {
		return fmt.Errorf("tokenpage: init: %w", err)
	}
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (a *App) Shutdown(ctx context.Context) error {
	return a.Echo.Shutdown(ctx)
}

func (a *App) setupRoutes() {
	e := a.Echo

	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	embeddedHandler := http.FileServer(http.FS(embeddedFS))
	e.GET("/public/copy.js", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))

	e.Static("/public", a.Config.StaticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/images/:name", a.handleHeroImage)

	e.GET("/", a.handleHome, a.rateLimitMiddleware)
	e.GET("/:slug/", a.handlePage, a.rateLimitMiddleware)
}

// Close releases the watcher and the limiter. Call it when the app shuts
// down.
func (a *App) Close() error {
	a.limiter.Stop()
	if a.watcher != nil {
		return a.watcher.Close()
	}
	return nil
}
