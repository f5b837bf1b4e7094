package linkres

import (
	"strings"
	"testing"

	"pgregory.net/rapid"
)

func TestResolveDisabled(t *testing.T) {
	tests := []string{
		"",
		"   ",
		"#",
		" # ",
		"not a url",
		"/relative/path",
		"example.com",
		"ftp://example.com",
		"javascript:alert(1)",
		"mailto:team@example.com",
		"http://",
		"https://[::1",
		"http://%zz",
	}
	for _, raw := range tests {
		got := Resolve(raw)
		if got.Enabled {
			t.Errorf("Resolve(%q).Enabled = true, want false", raw)
		}
		if got.Target != "" {
			t.Errorf("Resolve(%q).Target = %q, want empty", raw, got.Target)
		}
	}
}

func TestResolveEnabled(t *testing.T) {
	tests := []string{
		"https://pump.fun/x",
		"http://example.com",
		"https://dexscreener.com/solana/abc?x=1#top",
		"HTTPS://X.COM/solid",
		" https://t.me/solid ",
	}
	for _, raw := range tests {
		got := Resolve(raw)
		if !got.Enabled {
			t.Errorf("Resolve(%q).Enabled = false, want true", raw)
		}
		if got.Target != raw {
			t.Errorf("Resolve(%q).Target = %q, want original string", raw, got.Target)
		}
	}
}

func TestResolveFTPRejected(t *testing.T) {
	if Resolve("ftp://example.com").Enabled {
		t.Fatal("ftp scheme should not be live")
	}
}

func TestLinkAttributes(t *testing.T) {
	live := Resolve("https://pump.fun/x")
	if live.TargetAttr() != "_blank" {
		t.Errorf("TargetAttr = %q, want _blank", live.TargetAttr())
	}
	if !strings.Contains(live.Rel(), "noreferrer") {
		t.Errorf("Rel = %q, want noreferrer", live.Rel())
	}
	if live.State() != "live" {
		t.Errorf("State = %q, want live", live.State())
	}

	dead := Resolve("#")
	if dead.TargetAttr() != "" || dead.Rel() != "" {
		t.Errorf("placeholder should carry no target/rel, got %q %q", dead.TargetAttr(), dead.Rel())
	}
	if dead.State() != "placeholder" {
		t.Errorf("State = %q, want placeholder", dead.State())
	}
}

func TestResolveNeverPanics(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		raw := rapid.String().Draw(t, "raw")
		got := Resolve(raw)
		if got.Enabled && got.Target != raw {
			t.Fatalf("enabled link must keep original target: %q vs %q", got.Target, raw)
		}
		if !got.Enabled && got.Target != "" {
			t.Fatalf("disabled link carries target %q", got.Target)
		}
	})
}

func TestResolveHTTPURLsAreLive(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		scheme := rapid.SampledFrom([]string{"http", "https"}).Draw(t, "scheme")
		host := rapid.StringMatching(`[a-z][a-z0-9-]{0,20}\.(com|fun|io|me)`).Draw(t, "host")
		path := rapid.StringMatching(`(/[a-zA-Z0-9_-]{0,10}){0,3}`).Draw(t, "path")
		raw := scheme + "://" + host + path
		got := Resolve(raw)
		if !got.Enabled {
			t.Fatalf("Resolve(%q) should be live", raw)
		}
		if got.Target != raw {
			t.Fatalf("Resolve(%q).Target = %q", raw, got.Target)
		}
	})
}

func TestResolveOtherSchemesAreNotLive(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		scheme := rapid.SampledFrom([]string{"ftp", "ws", "wss", "file", "data", "ipfs"}).Draw(t, "scheme")
		host := rapid.StringMatching(`[a-z]{1,12}\.com`).Draw(t, "host")
		raw := scheme + "://" + host
		if Resolve(raw).Enabled {
			t.Fatalf("Resolve(%q) should not be live", raw)
		}
	})
}
