package ui

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/yt-browser/internal/config"
	"github.com/ytget/yt-browser/internal/infocache"
	"github.com/ytget/yt-browser/internal/model"
	"github.com/ytget/yt-browser/internal/proxy"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	metadata     *infocache.Store
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	maxAliveEntry    *widget.Entry
	proxyModeSelect  *widget.Select
	proxyURLEntry    *widget.Entry
	proxyFallback    *widget.Check
	themeSelect      *widget.Select
	languageSelect   *widget.Select
	toastPosSelect   *widget.Select
	downloadDirEntry *widget.Entry
	logKeepEntry     *widget.Entry
	cacheStatsLabel  *widget.Label
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, metadata *infocache.Store, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		metadata:     metadata,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.maxAliveEntry = widget.NewEntry()
	sd.maxAliveEntry.SetPlaceHolder("1-20")

	sd.proxyModeSelect = widget.NewSelect([]string{proxy.ModeNone, proxy.ModeSystem, proxy.ModeCustom}, nil)
	sd.proxyURLEntry = widget.NewEntry()
	sd.proxyURLEntry.SetPlaceHolder("http://host:port")
	sd.proxyFallback = widget.NewCheck(sd.localization.GetText(KeyProxyFallback), nil)

	themeOptions := []string{}
	for _, variant := range sd.settings.GetThemeVariantOptions() {
		themeOptions = append(themeOptions, string(variant))
	}
	sd.themeSelect = widget.NewSelect(themeOptions, nil)

	sd.languageSelect = widget.NewSelect(sd.settings.GetLanguageOptions(), nil)

	posOptions := []string{}
	for _, pos := range sd.settings.GetNotificationPositionOptions() {
		posOptions = append(posOptions, string(pos))
	}
	sd.toastPosSelect = widget.NewSelect(posOptions, nil)

	sd.downloadDirEntry = widget.NewEntry()
	browseDirBtn := widget.NewButton(sd.localization.GetText(KeyBrowse), sd.onBrowseDirectory)
	downloadDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.downloadDirEntry)

	sd.logKeepEntry = widget.NewEntry()
	sd.logKeepEntry.SetPlaceHolder("1-50")

	sd.cacheStatsLabel = widget.NewLabel("")
	clearCachesBtn := widget.NewButton(sd.localization.GetText(KeyClearCaches), sd.onClearCaches)

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyMaxAliveViews)+":"),
		sd.maxAliveEntry,

		widget.NewSeparator(),
		widget.NewLabel(sd.localization.GetText(KeyProxyMode)+":"),
		sd.proxyModeSelect,
		widget.NewLabel(sd.localization.GetText(KeyProxyCustomURL)+":"),
		sd.proxyURLEntry,
		sd.proxyFallback,

		widget.NewSeparator(),
		widget.NewLabel(sd.localization.GetText(KeyTheme)+":"),
		sd.themeSelect,
		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,
		widget.NewLabel(sd.localization.GetText(KeyToastPosition)+":"),
		sd.toastPosSelect,

		widget.NewSeparator(),
		widget.NewLabel(sd.localization.GetText(KeyDownloadDir)+":"),
		downloadDirRow,
		widget.NewLabel(sd.localization.GetText(KeyLogSessionsKeep)+":"),
		sd.logKeepEntry,

		widget.NewSeparator(),
		sd.cacheStatsLabel,
		clearCachesBtn,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		container.NewVScroll(form),
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(500, 480))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.maxAliveEntry.SetText(strconv.Itoa(sd.settings.GetMaxAliveViews()))
	sd.proxyModeSelect.SetSelected(sd.settings.GetProxyMode())
	sd.proxyURLEntry.SetText(sd.settings.GetProxyCustomURL())
	sd.proxyFallback.SetChecked(sd.settings.GetProxyFallback())
	sd.themeSelect.SetSelected(string(sd.settings.GetThemeVariant()))
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
	sd.toastPosSelect.SetSelected(string(sd.settings.GetNotificationPosition()))
	sd.downloadDirEntry.SetText(sd.settings.GetDownloadDirectory())
	sd.logKeepEntry.SetText(strconv.Itoa(sd.settings.GetLogSessionsKeep()))
	sd.refreshCacheStats()
}

// refreshCacheStats renders current metadata cache occupancy
func (sd *SettingsDialog) refreshCacheStats() {
	if sd.metadata == nil {
		sd.cacheStatsLabel.SetText("")
		return
	}

	stats := sd.metadata.GetStats()
	sd.cacheStatsLabel.SetText(fmt.Sprintf("%s: %d/%d videos, %d/%d playlists",
		sd.localization.GetText(KeyCacheStats),
		stats.VideoInfoCount, stats.VideoInfoCapacity,
		stats.PlaylistInfoCount, stats.PlaylistInfoCapacity))
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.downloadDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onClearCaches drops all cached metadata
func (sd *SettingsDialog) onClearCaches() {
	if sd.metadata != nil {
		sd.metadata.Clear()
	}
	sd.refreshCacheStats()
	dialog.ShowInformation(
		sd.localization.GetText(KeyClearCaches),
		sd.localization.GetText(KeyCachesCleared),
		sd.window,
	)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if maxAlive, err := strconv.Atoi(sd.maxAliveEntry.Text); err == nil {
		sd.settings.SetMaxAliveViews(maxAlive)
	}

	if sd.proxyModeSelect.Selected != "" {
		sd.settings.SetProxyMode(sd.proxyModeSelect.Selected)
	}
	sd.settings.SetProxyCustomURL(sd.proxyURLEntry.Text)
	sd.settings.SetProxyFallback(sd.proxyFallback.Checked)

	if sd.themeSelect.Selected != "" {
		sd.settings.SetThemeVariant(config.ThemeVariant(sd.themeSelect.Selected))
	}
	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}
	if sd.toastPosSelect.Selected != "" {
		sd.settings.SetNotificationPosition(model.NotificationPosition(sd.toastPosSelect.Selected))
	}

	if sd.downloadDirEntry.Text != "" {
		sd.settings.SetDownloadDirectory(sd.downloadDirEntry.Text)
	}
	if keep, err := strconv.Atoi(sd.logKeepEntry.Text); err == nil {
		sd.settings.SetLogSessionsKeep(keep)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}

	dialog.ShowInformation(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySettingsSaved),
		sd.window,
	)
}
