package tokenpage

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eringen/tokenpage/character"
)

func (a *App) handleHome(c echo.Context) error {
	return a.renderCharacter(c, a.Config.DefaultSlug)
}

func (a *App) handlePage(c echo.Context) error {
	return a.renderCharacter(c, c.Param("slug"))
}

// renderCharacter renders slug's page. A missing configuration is a
// not-found at the page boundary, never a defaulted page.
func (a *App) renderCharacter(c echo.Context, slug string) error {
	ch, err := a.Cache.Get(slug)
	if err != nil {
		if errors.Is(err, character.ErrNotFound) {
			return RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
		}
		return err
	}
	return Render(c, a.Views.Page(ch))
}

func (a *App) handleSitemap(c echo.Context) error {
	slugs, err := a.Loader.List()
	if err != nil {
		return err
	}
	return a.renderSitemap(c, slugs)
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(a.Config.StaticDir + "/favicon.svg")
}

func (a *App) handleRobots(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %s/sitemap.xml\n", a.Config.URL)
	return c.String(http.StatusOK, body)
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	if errors.Is(err, character.ErrNotFound) {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, a.Views.ServerError())
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
