// Package siteurl builds the canonical URLs shared by the sitemap and the
// page metadata.
package siteurl

import (
	"net/url"
	"path"
	"strings"
)

// Build joins path segments onto base. A page URL always ends in a slash
// so it matches the trailing-slash redirect; base alone is returned as is.
func Build(base string, segments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	if len(segments) == 0 {
		return u.String()
	}
	u.Path = path.Join(u.Path, path.Join(segments...))
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// Resolve makes ref (e.g. "/images/solid.png") absolute against base.
// An unparsable input yields ref unchanged.
func Resolve(base, ref string) string {
	b, err := url.Parse(base)
	if err != nil {
		return ref
	}
	r, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return b.ResolveReference(r).String()
}
