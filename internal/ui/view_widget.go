package ui

import (
	"context"
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/yt-browser/internal/model"
	"github.com/ytget/yt-browser/internal/platform"
	"github.com/ytget/yt-browser/internal/viewcache"
)

// ViewFactory materializes canvas content for cached view instances
type ViewFactory struct {
	localization *Localization
	browseSvc    *platform.BrowseService

	// onOpen is called when the user activates an entry inside a view
	onOpen func(model.ViewDescriptor)
}

// NewViewFactory creates a view factory
func NewViewFactory(localization *Localization, browseSvc *platform.BrowseService, onOpen func(model.ViewDescriptor)) *ViewFactory {
	return &ViewFactory{
		localization: localization,
		browseSvc:    browseSvc,
		onOpen:       onOpen,
	}
}

// Build creates the canvas content for one view instance. Content for
// playlist and channel views loads asynchronously.
func (vf *ViewFactory) Build(inst *viewcache.Instance) fyne.CanvasObject {
	switch inst.Kind {
	case model.ViewKindHome:
		return vf.buildHome()
	case model.ViewKindVideo:
		return vf.buildVideo(inst)
	case model.ViewKindPlaylist:
		return vf.buildListing(inst, false)
	case model.ViewKindChannel:
		return vf.buildListing(inst, true)
	case model.ViewKindSearch:
		return vf.buildSearch(inst)
	default:
		return widget.NewLabel(fmt.Sprintf("Unknown view: %s", inst.Kind))
	}
}

// buildHome creates the start page
func (vf *ViewFactory) buildHome() fyne.CanvasObject {
	welcome := widget.NewLabelWithStyle(
		vf.localization.GetText(KeyHomeWelcome),
		fyne.TextAlignCenter,
		fyne.TextStyle{Bold: true},
	)
	hint := widget.NewLabelWithStyle(
		vf.localization.GetText(KeyHomeHint),
		fyne.TextAlignCenter,
		fyne.TextStyle{},
	)

	return container.NewCenter(container.NewVBox(welcome, hint))
}

// buildVideo creates a video detail view from its snapshot, falling
// back to cached metadata when the descriptor carried none
func (vf *ViewFactory) buildVideo(inst *viewcache.Instance) fyne.CanvasObject {
	title := inst.Locator
	uploader := DashPlaceholder
	duration := DashPlaceholder

	if vf.browseSvc != nil {
		if info, ok := vf.browseSvc.VideoInfo(inst.Locator); ok {
			if info.Title != "" {
				title = info.Title
			}
			if info.Uploader != "" {
				uploader = info.Uploader
			}
			if info.Duration > 0 {
				duration = model.FormatDuration(info.Duration)
			}
		}
	}

	if inst.Snapshot != nil {
		if inst.Snapshot.Title != "" {
			title = inst.Snapshot.Title
		}
		if inst.Snapshot.Uploader != "" {
			uploader = inst.Snapshot.Uploader
		}
		if inst.Snapshot.Duration != "" {
			duration = inst.Snapshot.Duration
		}
	}

	titleLabel := widget.NewLabelWithStyle(title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	titleLabel.Wrapping = fyne.TextWrapWord

	metaLabel := widget.NewLabel(uploader + MiddleDotSeparator + duration)

	urlLabel := widget.NewLabel(platform.CanonicalURL(model.ViewDescriptor{
		Kind:    model.ViewKindVideo,
		Locator: inst.Locator,
	}))

	return container.NewVBox(titleLabel, metaLabel, widget.NewSeparator(), urlLabel)
}

// buildListing creates a playlist or channel view, loading entries in
// the background
func (vf *ViewFactory) buildListing(inst *viewcache.Instance, isChannel bool) fyne.CanvasObject {
	header := widget.NewLabelWithStyle(
		headerTitle(vf.localization, inst, isChannel),
		fyne.TextAlignLeading,
		fyne.TextStyle{Bold: true},
	)
	status := widget.NewLabel(vf.localization.GetText(KeyLoading))
	spinner := widget.NewProgressBarInfinite()

	var entries []*model.PlaylistEntry

	list := widget.NewList(
		func() int { return len(entries) },
		func() fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id >= len(entries) {
				return
			}
			entry := entries[id]
			label := obj.(*widget.Label)
			label.SetText(IconVideo + " " + entry.Title)
		},
	)
	list.OnSelected = func(id widget.ListItemID) {
		list.UnselectAll()
		if id >= len(entries) || vf.onOpen == nil {
			return
		}
		entry := entries[id]
		vf.browseSvc.RememberVideo(entry)
		vf.onOpen(model.ViewDescriptor{
			Kind:     model.ViewKindVideo,
			Locator:  entry.ID,
			Snapshot: entry.EntrySnapshot(),
		})
	}

	go func() {
		var info *model.PlaylistInfo
		var err error
		if isChannel {
			info, err = vf.browseSvc.FetchChannel(context.Background(), inst.Locator)
		} else {
			info, err = vf.browseSvc.FetchPlaylist(context.Background(), inst.Locator)
		}

		fyne.Do(func() {
			spinner.Hide()
			if err != nil {
				log.Printf("Failed to load %s %s: %v", inst.Kind, inst.Locator, err)
				status.SetText(vf.localization.GetText(KeyLoadFailed) + ": " + err.Error())
				return
			}

			entries = info.Entries
			header.SetText(info.Title)
			status.SetText(fmt.Sprintf("%d videos", info.TotalCount))
			list.Refresh()
		})
	}()

	top := container.NewVBox(header, container.NewHBox(spinner, status), widget.NewSeparator())
	return container.NewBorder(top, nil, nil, nil, list)
}

// buildSearch creates a search view placeholder with the query
func (vf *ViewFactory) buildSearch(inst *viewcache.Instance) fyne.CanvasObject {
	header := widget.NewLabelWithStyle(
		vf.localization.GetText(KeySearchResults)+": "+inst.Locator,
		fyne.TextAlignLeading,
		fyne.TextStyle{Bold: true},
	)

	urlLabel := widget.NewLabel(platform.CanonicalURL(model.ViewDescriptor{
		Kind:    model.ViewKindSearch,
		Locator: inst.Locator,
	}))

	return container.NewVBox(header, widget.NewSeparator(), urlLabel)
}

// headerTitle picks the initial header before entries load
func headerTitle(l *Localization, inst *viewcache.Instance, isChannel bool) string {
	if inst.Snapshot != nil && inst.Snapshot.Title != "" {
		return inst.Snapshot.Title
	}
	if isChannel {
		return l.GetText(KeyChannelUploads) + ": " + inst.Locator
	}
	return inst.Locator
}
