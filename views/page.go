package views

import (
	"bytes"
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/eringen/tokenpage/character"
	"github.com/eringen/tokenpage/copyctl"
	"github.com/eringen/tokenpage/internal/siteurl"
)

// Page renders a full token landing page.
func Page(cfg SiteConfig, c character.Character) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		writeHead(&buf, cfg, MetaFor(cfg, c))

		buf.WriteString(`<main class="relative min-h-screen w-full overflow-hidden bg-black">`)
		buf.WriteString(`<div class="relative mx-auto flex min-h-screen max-w-3xl flex-col items-center px-5 pb-16 pt-10 text-white">`)

		buf.WriteString(`<img src="` + esc(c.Image) + `" alt="` + esc(c.Name) + `" width="560" height="560"`)
		buf.WriteString(` class="relative mb-6 mt-2 h-auto w-[300px] sm:w-[360px]">`)

		buf.WriteString(`<div class="text-center">`)
		buf.WriteString(`<div class="text-xs tracking-wide text-white/45">` + esc(c.Caption) + `</div>`)
		// Ticker is rendered exactly as configured.
		buf.WriteString(`<h1 class="mt-2 text-5xl font-extrabold tracking-tight sm:text-6xl">` + esc(c.Ticker) + `</h1>`)
		buf.WriteString(`<div class="mt-2 text-base text-white/55">` + esc(c.Tagline) + `</div>`)
		buf.WriteString(`</div>`)

		buf.WriteString(`<div class="mt-8 w-full max-w-xl">`)
		// Server side the widget only renders; copy.js owns the live one.
		widget := copyctl.NewWidget(copyctl.New(c.CA, nil))
		writeCopyCard(&buf, widget, c.TrustLine)
		widget.Unmount()

		links := Links(c)
		buf.WriteString(`<div class="mt-4">`)
		writeLinkButton(&buf, links[0])
		buf.WriteString(`</div>`)
		buf.WriteString(`<div class="mt-4 grid grid-cols-2 gap-3">`)
		writeLinkButton(&buf, links[1])
		writeLinkButton(&buf, links[2])
		buf.WriteString(`</div>`)
		buf.WriteString(`<div class="mt-3 grid">`)
		writeLinkButton(&buf, links[3])
		buf.WriteString(`</div>`)

		buf.WriteString(`</div></div></main>`)
		writeFoot(&buf)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

// NotFound renders the 404 page.
func NotFound(cfg SiteConfig) templ.Component {
	return statusPage(cfg, "Not found", "Nothing launched here yet.")
}

// ServerError renders the 500 page.
func ServerError(cfg SiteConfig) templ.Component {
	return statusPage(cfg, "Something went wrong", "Try again in a moment.")
}

func statusPage(cfg SiteConfig, title, body string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		writeHead(&buf, cfg, PageMeta{Title: title + " | " + cfg.Name, URL: siteurl.Build(cfg.URL)})
		buf.WriteString(`<main class="flex min-h-screen flex-col items-center justify-center bg-black px-6 text-white">`)
		buf.WriteString(`<h1 class="mb-4 text-5xl font-bold">` + esc(title) + `</h1>`)
		buf.WriteString(`<p class="mb-8 text-xl text-gray-400">` + esc(body) + `</p>`)
		buf.WriteString(`<a href="/" class="rounded-xl bg-white px-6 py-3 font-semibold text-black">Home</a>`)
		buf.WriteString(`</main>`)
		writeFoot(&buf)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

func writeHead(buf *bytes.Buffer, cfg SiteConfig, meta PageMeta) {
	buf.WriteString(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
	buf.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
	buf.WriteString(`<title>` + esc(meta.Title) + `</title>`)
	if meta.Description != "" {
		buf.WriteString(`<meta name="description" content="` + esc(meta.Description) + `">`)
		buf.WriteString(`<meta property="og:description" content="` + esc(meta.Description) + `">`)
	}
	buf.WriteString(`<meta property="og:title" content="` + esc(meta.Title) + `">`)
	buf.WriteString(`<meta property="og:type" content="website">`)
	if meta.URL != "" {
		buf.WriteString(`<link rel="canonical" href="` + esc(meta.URL) + `">`)
		buf.WriteString(`<meta property="og:url" content="` + esc(meta.URL) + `">`)
	}
	if meta.Image != "" {
		buf.WriteString(`<meta property="og:image" content="` + esc(meta.Image) + `">`)
	}
	buf.WriteString(`<link rel="icon" href="/favicon.svg">`)
	if cfg.Stylesheet != "" {
		buf.WriteString(`<link rel="stylesheet" href="` + esc(cfg.Stylesheet) + `">`)
	}
	buf.WriteString(`</head><body class="bg-black">`)
}

func writeFoot(buf *bytes.Buffer) {
	buf.WriteString(`<script src="/public/copy.js" defer></script></body></html>`)
}
