package siteurl

import "testing"

func TestBuild(t *testing.T) {
	tests := []struct {
		base string
		segs []string
		want string
	}{
		{"https://example.com", nil, "https://example.com"},
		{"https://example.com", []string{"solid"}, "https://example.com/solid/"},
		{"https://example.com/tokens", []string{"solid"}, "https://example.com/tokens/solid/"},
		{"https://example.com", []string{"a", "b"}, "https://example.com/a/b/"},
	}
	for _, tt := range tests {
		if got := Build(tt.base, tt.segs...); got != tt.want {
			t.Errorf("Build(%q, %v) = %q, want %q", tt.base, tt.segs, got, tt.want)
		}
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		base, ref, want string
	}{
		{"https://example.com", "/images/solid.png", "https://example.com/images/solid.png"},
		{"https://example.com/tokens/", "images/solid.png", "https://example.com/tokens/images/solid.png"},
		{"https://example.com", "https://cdn.example/x.png", "https://cdn.example/x.png"},
	}
	for _, tt := range tests {
		if got := Resolve(tt.base, tt.ref); got != tt.want {
			t.Errorf("Resolve(%q, %q) = %q, want %q", tt.base, tt.ref, got, tt.want)
		}
	}
}
