// Package linkres decides whether a configured outbound link is live.
//
// A live link renders as an active hyperlink opening a new browsing
// context. Anything else renders as an inert placeholder that tells the
// visitor the link goes live at launch.
package linkres

import (
	"net/url"
	"strings"
)

// Sentinel is the configuration value meaning "not yet set".
const Sentinel = "#"

// Link is the resolved state of a configured link value.
type Link struct {
	Enabled bool
	Target  string
}

// Resolve classifies raw. A missing value is the empty string. Resolve
// never panics and never reports an error: anything that is not an
// absolute http(s) URL resolves to a disabled Link.
func Resolve(raw string) Link {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || trimmed == Sentinel {
		return Link{}
	}
	u, err := url.Parse(trimmed)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return Link{}
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return Link{Enabled: true, Target: raw}
	}
	return Link{}
}

// IsLive reports whether raw resolves to an enabled link.
func IsLive(raw string) bool {
	return Resolve(raw).Enabled
}

// TargetAttr returns the target attribute for an active hyperlink.
func (l Link) TargetAttr() string {
	if !l.Enabled {
		return ""
	}
	return "_blank"
}

// Rel returns the rel attribute for an active hyperlink. Live links never
// leak the referrer to the destination.
func (l Link) Rel() string {
	if !l.Enabled {
		return ""
	}
	return "noopener noreferrer"
}

// State is a short human label used by the CLI.
func (l Link) State() string {
	if l.Enabled {
		return "live"
	}
	return "placeholder"
}
