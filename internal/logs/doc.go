package logs

// Package logs manages per-session log files: one timestamped file per app
// session, line-oriented appends, and cleanup that keeps only the newest N
// sessions on disk.
