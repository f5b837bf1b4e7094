// Package character loads the per-slug token configuration that drives a
// landing page.
package character

import "strings"

// Default display text for fields missing from a configuration file.
const (
	DefaultCaption   = "market dumping?"
	DefaultTagline   = "still solid."
	DefaultCA        = "CA_GOES_HERE"
	DefaultTrustLine = "Verify CA in Telegram pinned"
)

// Character is one token landing page.
type Character struct {
	Slug      string `json:"-"`
	Name      string `json:"name"`
	Ticker    string `json:"ticker"`
	Caption   string `json:"caption"`
	Tagline   string `json:"tagline"`
	TrustLine string `json:"trustLine"`
	CA        string `json:"ca"`
	Image     string `json:"image"`
	Links     Links  `json:"links"`
}

// Links holds the outbound destinations. Several key names were used for
// the same destination across page variants; every alias is accepted.
type Links struct {
	BuyURL      string `json:"buy"`
	PumpFun     string `json:"pumpfun"`
	ChartURL    string `json:"chart"`
	DexScreener string `json:"dexscreener"`
	SocialURL   string `json:"social"`
	X           string `json:"x"`
	Twitter     string `json:"twitter"`
	Community   string `json:"community"`
	Telegram    string `json:"telegram"`
}

// Buy returns the configured buy destination.
func (l Links) Buy() string { return firstSet(l.BuyURL, l.PumpFun) }

// Chart returns the configured chart destination.
func (l Links) Chart() string { return firstSet(l.ChartURL, l.DexScreener) }

// Social returns the configured social destination.
func (l Links) Social() string { return firstSet(l.SocialURL, l.X, l.Twitter) }

// CommunityURL returns the configured community destination.
func (l Links) CommunityURL() string { return firstSet(l.Community, l.Telegram) }

// firstSet returns the first value that is not blank. A value holding
// the "#" sentinel still counts as set; the link resolver decides it.
func firstSet(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// applyDefaults fills blank fields with fixed default text.
func (c *Character) applyDefaults() {
	if isBlank(c.Caption) {
		c.Caption = DefaultCaption
	}
	if isBlank(c.Tagline) {
		c.Tagline = DefaultTagline
	}
	if isBlank(c.CA) {
		c.CA = DefaultCA
	}
	if isBlank(c.TrustLine) {
		c.TrustLine = DefaultTrustLine
	}
	if isBlank(c.Ticker) {
		c.Ticker = "$" + strings.ToUpper(c.Slug)
	}
	if isBlank(c.Name) {
		c.Name = c.Ticker
	}
	if isBlank(c.Image) {
		c.Image = "/images/" + c.Slug + ".png"
	}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
