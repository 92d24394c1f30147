package proxy

// Package proxy resolves the effective proxy for metadata fetching from the
// configured mode: none, system (environment detection), or a custom URL
// with optional fallback when the custom URL is unusable.
