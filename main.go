package main

import (
	"fmt"
	"log"
	"path/filepath"

	"fyne.io/fyne/v2/app"

	"github.com/ytget/yt-browser/internal/config"
	"github.com/ytget/yt-browser/internal/deps"
	"github.com/ytget/yt-browser/internal/infocache"
	"github.com/ytget/yt-browser/internal/logs"
	"github.com/ytget/yt-browser/internal/platform"
	"github.com/ytget/yt-browser/internal/server"
	"github.com/ytget/yt-browser/internal/thumbs"
	"github.com/ytget/yt-browser/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.yt-browser"
	AppName = "YT Browser"
)

func main() {
	fmt.Printf("%s v%s starting...\n", AppName, version)

	myApp := app.NewWithID(AppID)

	appTheme := ui.NewCompactTheme()
	myApp.Settings().SetTheme(appTheme)

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))

	settings := config.NewSettings(myApp)
	storageRoot := myApp.Storage().RootURI().Path()

	// Session logs: every log.Printf line is teed into the session file
	logManager, err := logs.NewManager(filepath.Join(storageRoot, "logs"))
	if err != nil {
		log.Printf("Failed to set up logs dir: %v", err)
	} else {
		if sessionPath, err := logManager.NewSessionFile(); err != nil {
			log.Printf("Failed to create session log: %v", err)
		} else if sessionFile, err := logs.TeeStandardLog(sessionPath); err != nil {
			log.Printf("Failed to attach session log: %v", err)
		} else {
			defer sessionFile.Close()
		}
		if removed, err := logManager.CleanupOldSessions(settings.GetLogSessionsKeep()); err != nil {
			log.Printf("Log cleanup failed: %v", err)
		} else if removed > 0 {
			log.Printf("Removed %d old session logs", removed)
		}
	}

	downloadsDir := settings.GetDownloadDirectory()
	if err := platform.CreateDirectoryIfNotExists(downloadsDir); err != nil {
		log.Printf("Failed to ensure downloads dir: %v", err)
	}

	// Services
	metadata := infocache.NewStore()
	browseSvc := platform.NewBrowseService(metadata)
	installer := deps.NewInstaller(storageRoot)

	colors, err := thumbs.NewColorCache()
	if err != nil {
		log.Printf("Failed to create color cache: %v", err)
	}

	statusSrv := server.NewStatusServer()
	if port, err := statusSrv.Start(server.DefaultPort); err != nil {
		log.Printf("Status server disabled: %v", err)
		statusSrv = nil
	} else {
		log.Printf("Status API on port %d", port)
		defer func() {
			if err := statusSrv.Stop(); err != nil {
				log.Printf("Status server shutdown: %v", err)
			}
		}()
	}

	ui.NewBrowserUI(myWindow, myApp, ui.Services{
		Browse:      browseSvc,
		Installer:   installer,
		Status:      statusSrv,
		Metadata:    metadata,
		Colors:      colors,
		Theme:       appTheme,
		StorageRoot: storageRoot,
	})

	myWindow.ShowAndRun()
}
