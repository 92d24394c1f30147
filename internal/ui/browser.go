package ui

import (
	"context"
	"fmt"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/google/uuid"

	"github.com/ytget/yt-browser/internal/config"
	"github.com/ytget/yt-browser/internal/deps"
	"github.com/ytget/yt-browser/internal/infocache"
	"github.com/ytget/yt-browser/internal/model"
	"github.com/ytget/yt-browser/internal/navstack"
	"github.com/ytget/yt-browser/internal/platform"
	"github.com/ytget/yt-browser/internal/proxy"
	"github.com/ytget/yt-browser/internal/server"
	"github.com/ytget/yt-browser/internal/thumbs"
	"github.com/ytget/yt-browser/internal/viewcache"
)

// Services bundles the backends the browser UI drives
type Services struct {
	Browse      *platform.BrowseService
	Installer   *deps.Installer
	Status      *server.StatusServer
	Metadata    *infocache.Store
	Colors      *thumbs.ColorCache
	Theme       *CompactTheme
	StorageRoot string
}

// BrowserUI is the main window: a navigation bar over a surface of
// cached view instances, only one of which is visible at a time.
type BrowserUI struct {
	window fyne.Window
	app    fyne.App

	// Navigation bar
	urlEntry    *widget.Entry
	backBtn     *widget.Button
	homeBtn     *widget.Button
	settingsBtn *widget.Button
	depthLabel  *widget.Label

	// Browse surface: one canvas object per live cache instance
	surface *fyne.Container
	mounted map[string]fyne.CanvasObject

	// Navigation state
	stack   *navstack.Stack
	cache   *viewcache.Cache
	factory *ViewFactory

	services     Services
	settings     *config.Settings
	localization *Localization

	// Notification overlay, aligned per the configured toast position
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	toastOverlay          *fyne.Container
	toastTimer            *time.Timer
	activeToastID         string

	// Dependency install banner
	depsBanner *fyne.Container
	depsLabel  *widget.Label
}

// NewBrowserUI creates and initializes the main UI
func NewBrowserUI(window fyne.Window, app fyne.App, services Services) *BrowserUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &BrowserUI{
		window:       window,
		app:          app,
		mounted:      make(map[string]fyne.CanvasObject),
		stack:        navstack.New(),
		cache:        viewcache.New(settings.GetMaxAliveViews()),
		services:     services,
		settings:     settings,
		localization: localization,
	}

	ui.factory = NewViewFactory(localization, services.Browse, ui.openDescriptor)

	window.SetTitle(localization.GetText(KeyAppTitle))
	window.Resize(fyne.NewSize(WindowDefaultWidth, WindowDefaultHeight))

	ui.stack.OnChange(ui.onStackChange)
	if services.Installer != nil {
		services.Installer.SetUpdateCallback(ui.onInstallUpdate)
	}

	ui.setupUI()
	ui.applyTheme()
	ui.applyProxy()

	// Materialize the home view
	ui.onStackChange()

	return ui
}

// setupUI creates and arranges all UI components
func (ui *BrowserUI) setupUI() {
	ui.backBtn = widget.NewButton(IconBack, ui.GoBack)
	ui.backBtn.Disable()
	ui.homeBtn = widget.NewButton(IconHome, ui.GoHome)

	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	ui.urlEntry.OnSubmitted = func(text string) {
		ui.Navigate(text)
	}
	goBtn := widget.NewButton(ui.localization.GetText(KeyGo), func() {
		ui.Navigate(ui.urlEntry.Text)
	})

	ui.settingsBtn = widget.NewButton(IconSettings, ui.onShowSettings)
	ui.settingsBtn.Importance = widget.LowImportance

	ui.depthLabel = widget.NewLabel("")

	navBar := container.NewBorder(nil, nil,
		container.NewHBox(ui.backBtn, ui.homeBtn),
		container.NewHBox(goBtn, ui.depthLabel, ui.settingsBtn),
		ui.urlEntry,
	)

	// Notification toast, overlaid on the surface (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Alignment = fyne.TextAlignLeading
	ui.notificationContainer = container.NewHBox(container.NewPadded(ui.notificationLabel))
	ui.notificationContainer.Hide()
	ui.toastOverlay = container.NewStack()

	// Dependency banner (hidden when all tools are present)
	ui.depsLabel = widget.NewLabel(ui.localization.GetText(KeyDepsMissing))
	installBtn := widget.NewButton(ui.localization.GetText(KeyInstall), ui.onInstallDeps)
	ui.depsBanner = container.NewHBox(ui.depsLabel, installBtn)
	ui.refreshDepsBanner()

	top := container.NewVBox(navBar, ui.depsBanner)

	ui.surface = container.NewStack()
	swipeSurface := NewSwipeArea(ui.surface, ui.onGesture)

	content := container.NewBorder(top, nil, nil, nil,
		container.NewStack(swipeSurface, ui.toastOverlay))
	ui.window.SetContent(content)

	log.Printf("Browser UI setup completed")
}

// Navigate parses user input and pushes the resulting view
func (ui *BrowserUI) Navigate(input string) {
	if input == "" {
		ui.showToast(ui.localization.GetText(KeyPleaseEnterURL))
		return
	}

	desc, err := platform.ParseLocator(input)
	if err != nil {
		log.Printf("Navigation rejected: %v", err)
		ui.showToast(ui.localization.GetText(KeyInvalidURL))
		return
	}

	ui.openDescriptor(desc)
}

// openDescriptor pushes a descriptor unless it is already on top
func (ui *BrowserUI) openDescriptor(desc model.ViewDescriptor) {
	current := ui.stack.Current()
	if current.Kind == desc.Kind && current.Locator == desc.Locator {
		return
	}

	if desc.Kind.IsSingleton() {
		ui.stack.Reset()
		return
	}

	ui.stack.Push(desc)
}

// GoBack pops the top view
func (ui *BrowserUI) GoBack() {
	ui.stack.Pop()
}

// GoHome drops everything above the root
func (ui *BrowserUI) GoHome() {
	ui.stack.Reset()
}

// Stack exposes the navigation stack, used by the entrypoint to publish
// history on shutdown
func (ui *BrowserUI) Stack() *navstack.Stack {
	return ui.stack
}

// onStackChange reconciles the view cache and refreshes the surface
func (ui *BrowserUI) onStackChange() {
	ui.cache.SetMaxAlive(ui.settings.GetMaxAliveViews())
	ui.cache.Reconcile(ui.stack.Descriptors())

	ui.syncSurface()
	ui.syncNavBar()
	ui.updateAccent()

	if ui.services.Status != nil {
		ui.services.Status.UpdateHistory(ui.stack.Descriptors())
	}
}

// syncSurface aligns mounted canvas objects with the live instance set.
// Instances evicted from the cache lose their widgets; revisiting them
// later rebuilds the widget from scratch.
func (ui *BrowserUI) syncSurface() {
	live := ui.cache.LiveInstances()

	liveSet := make(map[string]bool, len(live))
	for _, inst := range live {
		liveSet[inst.ID] = true
	}

	for id, obj := range ui.mounted {
		if !liveSet[id] {
			ui.surface.Remove(obj)
			delete(ui.mounted, id)
		}
	}

	for _, inst := range live {
		obj, ok := ui.mounted[inst.ID]
		if !ok {
			obj = ui.factory.Build(inst)
			ui.mounted[inst.ID] = obj
			ui.surface.Add(obj)
		}

		if ui.cache.IsActive(inst.ID) {
			obj.Show()
		} else {
			obj.Hide()
		}
	}

	ui.surface.Refresh()
}

// syncNavBar updates the URL entry, depth indicator, and button states
func (ui *BrowserUI) syncNavBar() {
	current := ui.stack.Current()
	ui.urlEntry.SetText(platform.CanonicalURL(current))

	if ui.stack.Depth() > 1 {
		ui.backBtn.Enable()
	} else {
		ui.backBtn.Disable()
	}

	ui.depthLabel.SetText(formatDepth(ui.cache.Len(), ui.cache.MaxAlive()))
}

// updateAccent retints the theme from the active view's thumbnail
func (ui *BrowserUI) updateAccent() {
	if ui.services.Colors == nil || ui.services.Theme == nil {
		return
	}

	active, ok := ui.cache.Get(ui.cache.ActiveID())
	if !ok || active.Snapshot == nil || active.Snapshot.Thumbnail == "" {
		ui.services.Theme.ClearAccent()
		ui.applyTheme()
		return
	}

	thumbnail := active.Snapshot.Thumbnail
	go func() {
		c, err := ui.services.Colors.DominantColor(context.Background(), thumbnail)
		if err != nil {
			log.Printf("Accent extraction failed: %v", err)
			return
		}
		fyne.Do(func() {
			ui.services.Theme.SetAccent(c)
			ui.applyTheme()
		})
	}()
}

// applyProxy resolves the proxy settings and routes every HTTP-backed
// service through the result. Re-run after a settings save so changes
// take effect without a restart. The extraction subprocess is not
// covered here: its library surface exposes no proxy configuration.
func (ui *BrowserUI) applyProxy() {
	resolved := proxy.Resolve(ui.settings.GetProxyConfig())
	log.Printf("Proxy: %s", resolved.Description)

	client := resolved.HTTPClient()
	if ui.services.Colors != nil {
		ui.services.Colors.SetHTTPClient(client)
	}
	if ui.services.Installer != nil {
		ui.services.Installer.SetHTTPClient(client)
	}
}

// applyTheme pushes the current theme variant choice to the app
func (ui *BrowserUI) applyTheme() {
	if ui.services.Theme == nil {
		return
	}

	variant := ui.settings.GetThemeVariant()
	ui.services.Theme.ForceVariant(variant == config.ThemeDark, variant == config.ThemeLight)
	ui.app.Settings().SetTheme(ui.services.Theme)
}

// onGesture maps surface gestures to navigation
func (ui *BrowserUI) onGesture(gesture GestureType) {
	switch gesture {
	case GestureSwipeRight:
		ui.GoBack()
	case GestureSwipeUp:
		ui.GoHome()
	}
}

// onShowSettings opens the settings dialog
func (ui *BrowserUI) onShowSettings() {
	dialog := NewSettingsDialog(ui.settings, ui.localization, ui.services.Metadata, ui.window, func() {
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.applyTheme()
		ui.applyProxy()
		// Budget changes apply on the next reconciliation
		ui.onStackChange()
	})
	dialog.Show()
}

// onInstallDeps starts installs for every missing tool
func (ui *BrowserUI) onInstallDeps() {
	if ui.services.Installer == nil {
		return
	}

	ui.depsLabel.SetText(ui.localization.GetText(KeyInstallingDeps))
	for _, status := range deps.Status(ui.services.StorageRoot) {
		if status.Installed {
			continue
		}
		if _, err := ui.services.Installer.Install(status.Tool); err != nil {
			log.Printf("Failed to start install for %s: %v", status.Tool, err)
		}
	}
}

// onInstallUpdate reacts to installer progress from its worker goroutines
func (ui *BrowserUI) onInstallUpdate(task *model.InstallTask) {
	if ui.services.Status != nil {
		ui.services.Status.UpdateQueue(ui.services.Installer.GetAllTasks())
	}

	fyne.Do(func() {
		switch {
		case task.Status == model.InstallStatusError:
			ui.depsLabel.SetText(IconError + " " + task.Tool + ": " + task.LastError)
		case task.Status.IsFinished():
			ui.refreshDepsBanner()
		default:
			ui.depsLabel.SetText(ui.localization.GetText(KeyInstallingDeps))
		}
	})
}

// refreshDepsBanner hides the banner once every tool is installed
func (ui *BrowserUI) refreshDepsBanner() {
	if deps.AllInstalled(deps.Status(ui.services.StorageRoot)) {
		ui.depsBanner.Hide()
	} else {
		ui.depsBanner.Show()
	}
}

// formatDepth renders the live/budget indicator for the nav bar
func formatDepth(live, budget int) string {
	return fmt.Sprintf(StackDepthFormat, live, budget)
}

// showToast displays a transient message, placed per the configured
// notification position
func (ui *BrowserUI) showToast(message string) {
	toast := model.NotificationData{
		ID:       uuid.NewString(),
		Body:     message,
		Position: ui.settings.GetNotificationPosition(),
	}
	ui.activeToastID = toast.ID

	ui.notificationLabel.SetText(toast.Body)
	ui.toastOverlay.Objects = []fyne.CanvasObject{
		alignToast(ui.notificationContainer, toast.Position),
	}
	ui.notificationContainer.Show()
	ui.toastOverlay.Refresh()

	if ui.toastTimer != nil {
		ui.toastTimer.Stop()
	}
	ui.toastTimer = time.AfterFunc(ToastAutoHide, func() {
		fyne.Do(func() {
			if ui.activeToastID == toast.ID {
				ui.notificationContainer.Hide()
			}
		})
	})
}

// alignToast wraps the toast in spacers pushing it into the corner or
// edge named by the position
func alignToast(toast fyne.CanvasObject, pos model.NotificationPosition) *fyne.Container {
	var row *fyne.Container
	switch pos {
	case model.PositionTopLeft, model.PositionBottomLeft:
		row = container.NewHBox(toast, layout.NewSpacer())
	case model.PositionTopCenter, model.PositionBottomCenter:
		row = container.NewHBox(layout.NewSpacer(), toast, layout.NewSpacer())
	default:
		row = container.NewHBox(layout.NewSpacer(), toast)
	}

	switch pos {
	case model.PositionTopLeft, model.PositionTopCenter, model.PositionTopRight:
		return container.NewVBox(row, layout.NewSpacer())
	default:
		return container.NewVBox(layout.NewSpacer(), row)
	}
}
