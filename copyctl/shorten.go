package copyctl

import "strings"

const (
	shortenLimit = 16
	shortenKeep  = 6
)

// Shorten abbreviates a long value for display as first six, an
// ellipsis, and last six characters. Values of 16 characters or fewer
// are returned as is. The copy payload is never shortened.
func Shorten(value string) string {
	s := strings.TrimSpace(value)
	r := []rune(s)
	if len(r) <= shortenLimit {
		return s
	}
	return string(r[:shortenKeep]) + "…" + string(r[len(r)-shortenKeep:])
}
