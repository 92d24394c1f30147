package thumbs

// Package thumbs derives accent colors from video thumbnails. The UI
// tints the header with the dominant color of the active video's
// thumbnail; extracted colors are cached so revisits cost nothing.
