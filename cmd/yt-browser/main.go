package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/yt-browser/internal/infocache"
	"github.com/ytget/yt-browser/internal/platform"
	"github.com/ytget/yt-browser/internal/ui"
)

func main() {
	// Create new Fyne app
	myApp := app.NewWithID("com.ytget.yt-browser")
	myWindow := myApp.NewWindow("YT Browser")
	myWindow.Resize(fyne.NewSize(900, 640))

	// Minimal wiring without the status server or installer
	metadata := infocache.NewStore()
	browseSvc := platform.NewBrowseService(metadata)

	ui.NewBrowserUI(myWindow, myApp, ui.Services{
		Browse:      browseSvc,
		Metadata:    metadata,
		StorageRoot: myApp.Storage().RootURI().Path(),
	})

	// Show and run
	myWindow.ShowAndRun()
}
