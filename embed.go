package tokenpage

import "embed"

// EmbeddedAssets contains static assets shipped with the framework:
// copy.js, the browser runtime of the copy controller.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
