package deps

// Package deps locates and installs the external tools the browser shells
// out to (yt-dlp, ffmpeg). Managed copies live in a bin directory under
// the app storage root and take precedence over binaries found in PATH.
