package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/yt-browser/internal/thumbs"
)

// CompactTheme defines a compact theme with reduced padding and font sizes.
// The primary color can be retinted at runtime from the active video's
// thumbnail.
type CompactTheme struct {
	accent      color.Color
	forcedLight bool
	forcedDark  bool
}

// NewCompactTheme creates a new compact theme
func NewCompactTheme() *CompactTheme {
	return &CompactTheme{}
}

// SetAccent tints the primary color from a thumbnail color
func (t *CompactTheme) SetAccent(c thumbs.Color) {
	t.accent = color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// ClearAccent restores the default primary color
func (t *CompactTheme) ClearAccent() {
	t.accent = nil
}

// ForceVariant pins the theme to light or dark regardless of the system
func (t *CompactTheme) ForceVariant(dark, light bool) {
	t.forcedDark = dark
	t.forcedLight = light
}

// Color returns theme colors
func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if t.forcedDark {
		variant = theme.VariantDark
	} else if t.forcedLight {
		variant = theme.VariantLight
	}

	switch name {
	case theme.ColorNamePrimary:
		if t.accent != nil {
			return t.accent
		}
		return color.RGBA{R: 204, G: 0, B: 0, A: 255} // YouTube red
	case theme.ColorNameSuccess:
		return color.RGBA{R: 46, G: 160, B: 67, A: 255}
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255}
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 18, G: 18, B: 18, A: 255}
		}
		return color.RGBA{R: 250, G: 250, B: 250, A: 255}
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 255, G: 255, B: 255, A: 255}
		}
		return color.RGBA{R: 33, G: 33, B: 33, A: 255}
	}

	// Use default colors for everything else
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *CompactTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *CompactTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameScrollBar:
		return 12
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 16
	case theme.SizeNameSubHeadingText:
		return 13
	case theme.SizeNameCaptionText:
		return 10
	case theme.SizeNameInputRadius:
		return 3
	case theme.SizeNameSelectionRadius:
		return 2
	}

	// Use default theme for everything else
	return theme.DefaultTheme().Size(name)
}
