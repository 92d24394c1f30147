package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconBack     = "←"
	IconForward  = "→"
	IconHome     = "⌂"
	IconSettings = "⚙"
	IconSearch   = "🔍"
	IconFolder   = "📁"
	IconClose    = "×"
	IconError    = "❌"
	IconLanguage = "🌐"
	IconVideo    = "▶"
	IconPlaylist = "≡"
	IconChannel  = "👤"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
	StackDepthFormat   = "%d/%d"
)

// Layout sizing
const (
	EntryRowMinWidth  float32 = 400
	EntryRowMinHeight float32 = 64
	EntryRowDefaultH  float32 = 56

	NavButtonWidth  float32 = 36
	HeaderBarHeight float32 = 44

	WindowDefaultWidth  float32 = 900
	WindowDefaultHeight float32 = 640
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 300
	ToastHeight   float32 = 120
	ToastMargin   float32 = 20
	ToastAutoHide         = 5 * time.Second
)

// Debounce durations
const (
	UIUpdateDebounce = 100 * time.Millisecond
)
