package deps

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/yt-browser/internal/model"
)

// Release download endpoints
const (
	ytdlpReleaseBase  = "https://github.com/yt-dlp/yt-dlp/releases/latest/download/"
	ffmpegReleaseBase = "https://github.com/eugeneware/ffmpeg-static/releases/latest/download/"
)

// FetchFunc downloads url into dest, reporting progress as bytes done out
// of total (total may be -1 when unknown). Injected so installs are
// testable without the network.
type FetchFunc func(ctx context.Context, url, dest string, progress func(done, total int64)) error

// Installer downloads missing tool binaries into the managed bin dir
type Installer struct {
	tasks       map[string]*model.InstallTask
	tasksMutex  sync.RWMutex
	storageRoot string
	fetch       FetchFunc
	httpClient  *http.Client
	onUpdate    func(*model.InstallTask) // callback for UI updates
}

// NewInstaller creates an installer rooted at the app storage dir
func NewInstaller(storageRoot string) *Installer {
	s := &Installer{
		tasks:       make(map[string]*model.InstallTask),
		storageRoot: storageRoot,
		httpClient:  http.DefaultClient,
	}
	s.fetch = s.httpFetch
	return s
}

// SetFetchFunc overrides the download function
func (s *Installer) SetFetchFunc(fetch FetchFunc) {
	s.fetch = fetch
}

// SetHTTPClient replaces the client the default fetcher downloads with,
// used to route installs through the configured proxy
func (s *Installer) SetHTTPClient(client *http.Client) {
	if client != nil {
		s.httpClient = client
	}
}

// SetUpdateCallback sets the callback function for task updates
func (s *Installer) SetUpdateCallback(callback func(*model.InstallTask)) {
	s.onUpdate = callback
}

// DownloadURL returns the release asset URL for the tool on this platform
func DownloadURL(tool Tool) (string, error) {
	switch tool {
	case ToolYTDLP:
		return ytdlpReleaseBase + BinaryName(tool), nil
	case ToolFFmpeg:
		switch runtime.GOOS {
		case "windows":
			return ffmpegReleaseBase + "ffmpeg-win32-x64", nil
		case "darwin":
			return ffmpegReleaseBase + "ffmpeg-darwin-" + runtime.GOARCH, nil
		default:
			return ffmpegReleaseBase + "ffmpeg-linux-" + runtime.GOARCH, nil
		}
	default:
		return "", fmt.Errorf("no download source for tool: %s", tool)
	}
}

// Install queues an install for the tool and starts it in the background
func (s *Installer) Install(tool Tool) (*model.InstallTask, error) {
	url, err := DownloadURL(tool)
	if err != nil {
		return nil, err
	}

	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()

	// One active install per tool
	for _, task := range s.tasks {
		if task.Tool == string(tool) && !task.Status.IsFinished() {
			return nil, fmt.Errorf("install already in progress for %s", tool)
		}
	}

	task := &model.InstallTask{
		ID:        generateInstallID(),
		Tool:      string(tool),
		URL:       url,
		DestPath:  ToolPath(s.storageRoot, tool),
		Status:    model.InstallStatusPending,
		StartedAt: time.Now(),
	}
	s.tasks[task.ID] = task

	go s.runInstall(task)

	return task, nil
}

// GetTask returns a task by ID
func (s *Installer) GetTask(id string) (*model.InstallTask, bool) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	task, exists := s.tasks[id]
	return task, exists
}

// GetAllTasks returns all tasks
func (s *Installer) GetAllTasks() []*model.InstallTask {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()

	tasks := make([]*model.InstallTask, 0, len(s.tasks))
	for _, task := range s.tasks {
		tasks = append(tasks, task)
	}
	return tasks
}

// runInstall performs the download and moves the binary into place
func (s *Installer) runInstall(task *model.InstallTask) {
	s.tasksMutex.Lock()
	task.Status = model.InstallStatusStarting
	s.tasksMutex.Unlock()
	s.notifyUpdate(task)

	if err := os.MkdirAll(filepath.Dir(task.DestPath), DirPermissions); err != nil {
		s.finish(task, fmt.Errorf("failed to create bin dir: %w", err))
		return
	}

	s.tasksMutex.Lock()
	task.Status = model.InstallStatusDownloading
	s.tasksMutex.Unlock()
	s.notifyUpdate(task)

	ctx, cancel := context.WithTimeout(context.Background(), InstallTimeout)
	defer cancel()

	// Download to a temp name so a failed install never leaves a
	// half-written binary at the final path
	tmpPath := task.DestPath + ".part"
	err := s.fetchWithRetry(ctx, task, tmpPath)
	if err != nil {
		_ = os.Remove(tmpPath)
		s.finish(task, err)
		return
	}

	if err := os.Chmod(tmpPath, BinPermissions); err != nil {
		_ = os.Remove(tmpPath)
		s.finish(task, fmt.Errorf("failed to set permissions: %w", err))
		return
	}
	if err := os.Rename(tmpPath, task.DestPath); err != nil {
		_ = os.Remove(tmpPath)
		s.finish(task, fmt.Errorf("failed to move binary into place: %w", err))
		return
	}

	s.finish(task, nil)
}

// fetchWithRetry attempts the download with one retry after a backoff
func (s *Installer) fetchWithRetry(ctx context.Context, task *model.InstallTask, dest string) error {
	maxRetries := 1
	var lastErr error

	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(2 * time.Second):
			case <-ctx.Done():
				return ctx.Err()
			}

			log.Printf("Retrying install for %s, attempt %d", task.Tool, attempt+1)
		}

		err := s.fetch(ctx, task.URL, dest, func(done, total int64) {
			s.updateProgress(task, done, total)
		})
		if err == nil {
			return nil
		}

		lastErr = err
		log.Printf("Install attempt %d failed for %s: %v", attempt+1, task.Tool, err)

		if ctx.Err() != nil {
			return ctx.Err()
		}
	}

	return lastErr
}

// updateProgress updates task progress from fetch callbacks
func (s *Installer) updateProgress(task *model.InstallTask, done, total int64) {
	s.tasksMutex.Lock()
	if total > 0 {
		percent := float64(done) / float64(total) * 100
		task.Percent = int(percent)
		task.Progress = percent / 100.0
	}
	s.tasksMutex.Unlock()

	s.notifyUpdate(task)
}

// finish records the terminal status and notifies
func (s *Installer) finish(task *model.InstallTask, err error) {
	s.tasksMutex.Lock()
	if err != nil {
		task.Status = model.InstallStatusError
		task.LastError = err.Error()
	} else {
		task.Status = model.InstallStatusCompleted
		task.Progress = 1.0
		task.Percent = 100
	}
	task.FinishedAt = time.Now()
	s.tasksMutex.Unlock()

	if err != nil {
		log.Printf("Install failed for %s: %v", task.Tool, err)
	} else {
		log.Printf("Installed %s to %s", task.Tool, task.DestPath)
	}

	s.notifyUpdate(task)
}

// notifyUpdate calls the update callback if set
func (s *Installer) notifyUpdate(task *model.InstallTask) {
	if s.onUpdate != nil {
		s.onUpdate(task)
	}
}

// generateInstallID generates a unique task ID
func generateInstallID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf("install-%d", time.Now().UnixNano())
	}
	return "install-" + id.String()
}

// InstallTimeout bounds a single tool install, downloads included
const InstallTimeout = 10 * time.Minute

// DirPermissions is used when creating the bin directory
const DirPermissions = 0755

// httpFetch is the default FetchFunc backed by the configured client
func (s *Installer) httpFetch(ctx context.Context, url, dest string, progress func(done, total int64)) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("download failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download failed: HTTP %d", resp.StatusCode)
	}

	file, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	total := resp.ContentLength
	var done int64
	buf := make([]byte, 32*1024)
	for {
		n, readErr := resp.Body.Read(buf)
		if n > 0 {
			if _, err := file.Write(buf[:n]); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			done += int64(n)
			if progress != nil {
				progress(done, total)
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return fmt.Errorf("download interrupted: %w", readErr)
		}
	}

	return nil
}
