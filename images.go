package tokenpage

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const (
	heroMaxWidth = 560
	jpegQuality  = 85
	heroSubdir   = "images"
)

// heroImage is an encoded, size-capped hero image.
type heroImage struct {
	data        []byte
	contentType string
	modTime     time.Time
}

// heroCache keeps processed hero images keyed by file name; an entry is
// reused while the source file's mtime is unchanged.
type heroCache struct {
	mu      sync.Mutex
	entries map[string]heroImage
}

func newHeroCache() *heroCache {
	return &heroCache{entries: make(map[string]heroImage)}
}

// processHero decodes an image, scales it down to heroMaxWidth when it is
// wider, and re-encodes it. Images with transparency stay PNG; everything
// else becomes JPEG.
func processHero(src io.Reader) ([]byte, string, error) {
	img, format, err := image.Decode(src)
	if err != nil {
		return nil, "", fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > heroMaxWidth {
		newH := h * heroMaxWidth / w
		dst := image.NewRGBA(image.Rect(0, 0, heroMaxWidth, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if format == "png" || format == "gif" || format == "webp" {
		if err := png.Encode(&buf, img); err != nil {
			return nil, "", fmt.Errorf("encode png: %w", err)
		}
		return buf.Bytes(), "image/png", nil
	}
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, "", fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), "image/jpeg", nil
}

// load returns the processed image for name under dir.
func (hc *heroCache) load(dir, name string) (heroImage, error) {
	path := filepath.Join(dir, name)
	info, err := os.Stat(path)
	if err != nil {
		return heroImage{}, err
	}

	hc.mu.Lock()
	defer hc.mu.Unlock()
	if e, ok := hc.entries[name]; ok && e.modTime.Equal(info.ModTime()) {
		return e, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return heroImage{}, err
	}
	defer f.Close()

	data, contentType, err := processHero(f)
	if err != nil {
		return heroImage{}, err
	}
	e := heroImage{data: data, contentType: contentType, modTime: info.ModTime()}
	hc.entries[name] = e
	return e, nil
}

// validImageName rejects anything that could escape the images directory.
func validImageName(name string) bool {
	if name == "" || strings.HasPrefix(name, ".") || strings.ContainsAny(name, `/\`) {
		return false
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png", ".jpg", ".jpeg", ".gif", ".webp":
		return true
	}
	return false
}

func (a *App) handleHeroImage(c echo.Context) error {
	name := c.Param("name")
	if !validImageName(name) {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	img, err := a.heroes.load(filepath.Join(a.Config.StaticDir, heroSubdir), name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		return fmt.Errorf("tokenpage: hero image %s: %w", name, err)
	}
	c.Response().Header().Set("Last-Modified", img.modTime.UTC().Format(http.TimeFormat))
	return c.Blob(http.StatusOK, img.contentType, img.data)
}
