package ui

// Package ui contains the Fyne-based desktop user interface for the browser.
// It wires navigation input to the view stack, keeps the browse surface in
// sync with the view cache, and renders settings, notifications, and the
// dependency install banner. All UI strings are localized via Localization.
