package platform

// Package platform contains OS/platform integration and external data glue:
// locator parsing for the URL bar, playlist/channel fetching via the ytdlp
// library, and filesystem helpers.
