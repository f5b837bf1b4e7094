package views

import (
	"github.com/eringen/tokenpage/character"
	"github.com/eringen/tokenpage/internal/siteurl"
)

// PendingLabel is the text of a link that is not live yet.
func PendingLabel(label string) string {
	return label + " (link goes live at launch)"
}

// liveText is the visible text of a live link.
func (s LinkSpec) liveText() string {
	if s.LiveLabel != "" {
		return s.LiveLabel
	}
	return s.Label
}

// LinkClass returns CSS classes for a link slot in its live or pending state.
func LinkClass(live, primary bool) string {
	base := "rounded-2xl px-5 py-4 text-center font-medium transition"
	if primary {
		base = "block w-full rounded-2xl px-6 py-4 text-center font-semibold transition"
	}
	switch {
	case !live:
		return base + " bg-white/10 text-white/50 cursor-not-allowed"
	case primary:
		return base + " bg-emerald-500 text-black hover:bg-emerald-400"
	default:
		return base + " bg-white text-black hover:bg-white/90"
	}
}

// Links returns the link slots of a character in display order.
func Links(c character.Character) []LinkSpec {
	return []LinkSpec{
		{Key: "buy", Label: "Buy", LiveLabel: "Buy on pump.fun", Raw: c.Links.Buy(), Primary: true},
		{Key: "chart", Label: "Chart", Raw: c.Links.Chart()},
		{Key: "social", Label: "X", Raw: c.Links.Social()},
		{Key: "community", Label: "Telegram", Raw: c.Links.CommunityURL()},
	}
}

// MetaFor builds the page metadata for a character.
func MetaFor(cfg SiteConfig, c character.Character) PageMeta {
	return PageMeta{
		Title:       c.Ticker + " | " + c.Name,
		Description: c.Caption + " " + c.Tagline,
		URL:         siteurl.Build(cfg.URL, c.Slug),
		Image:       siteurl.Resolve(cfg.URL, c.Image),
	}
}
