package views

// SiteConfig holds site-wide settings the templates read. Every handler
// passes it through so nothing is hardcoded.
type SiteConfig struct {
	Name string // site name used in <title> for the index
	URL  string // canonical base URL

	// Stylesheet is linked from every page when set. The compiled CSS is
	// supplied by the site, usually as /public/styles.css.
	Stylesheet string
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head>.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	Image       string // og:image
}

// LinkSpec describes one outbound link slot on a token page.
type LinkSpec struct {
	Key       string // stable identifier, used as data-link
	Label     string // slot name; placeholder text is derived from it
	LiveLabel string // visible text when live, Label if empty
	Raw       string // configured value, possibly "#" or empty
	Primary   bool   // full-width buy button styling
}
