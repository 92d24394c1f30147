package deps

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/ytget/yt-browser/internal/model"
)

// cannedTransport serves fixed bytes for any request and counts calls
type cannedTransport struct {
	data  []byte
	calls int
}

func (t *cannedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	t.calls++
	return &http.Response{
		StatusCode:    http.StatusOK,
		Body:          io.NopCloser(bytes.NewReader(t.data)),
		ContentLength: int64(len(t.data)),
		Header:        make(http.Header),
		Request:       req,
	}, nil
}

func TestBinaryName(t *testing.T) {
	name := BinaryName(ToolYTDLP)
	if name == "" {
		t.Fatal("BinaryName should not be empty")
	}
	if !strings.HasPrefix(name, "yt-dlp") {
		t.Errorf("Unexpected yt-dlp binary name: %s", name)
	}

	ffmpeg := BinaryName(ToolFFmpeg)
	if runtime.GOOS == "windows" {
		if ffmpeg != "ffmpeg.exe" {
			t.Errorf("Expected ffmpeg.exe on windows, got %s", ffmpeg)
		}
	} else if ffmpeg != "ffmpeg" {
		t.Errorf("Expected ffmpeg, got %s", ffmpeg)
	}
}

func TestToolPath(t *testing.T) {
	root := filepath.Join("some", "root")
	path := ToolPath(root, ToolYTDLP)

	want := filepath.Join(root, BinDirName, BinaryName(ToolYTDLP))
	if path != want {
		t.Errorf("Expected %s, got %s", want, path)
	}
}

func TestLocate_PrefersManagedCopy(t *testing.T) {
	root := t.TempDir()
	managed := ToolPath(root, ToolYTDLP)

	if err := os.MkdirAll(filepath.Dir(managed), 0755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	if err := os.WriteFile(managed, []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	path, err := Locate(root, ToolYTDLP)
	if err != nil {
		t.Fatalf("Locate failed: %v", err)
	}
	if path != managed {
		t.Errorf("Expected managed copy %s, got %s", managed, path)
	}
}

func TestLocate_MissingTool(t *testing.T) {
	t.Setenv("PATH", t.TempDir()) // empty dir, nothing to find

	_, err := Locate(t.TempDir(), ToolYTDLP)
	if err == nil {
		t.Error("Expected error when tool is missing everywhere")
	}
}

func TestAllInstalled(t *testing.T) {
	tests := []struct {
		name     string
		statuses []ToolStatus
		want     bool
	}{
		{"empty", nil, true},
		{"all present", []ToolStatus{{Installed: true}, {Installed: true}}, true},
		{"one missing", []ToolStatus{{Installed: true}, {Installed: false}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AllInstalled(tt.statuses); got != tt.want {
				t.Errorf("AllInstalled() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDownloadURL(t *testing.T) {
	url, err := DownloadURL(ToolYTDLP)
	if err != nil {
		t.Fatalf("DownloadURL failed: %v", err)
	}
	if !strings.HasSuffix(url, BinaryName(ToolYTDLP)) {
		t.Errorf("yt-dlp URL %s should end with the binary name", url)
	}

	if _, err := DownloadURL(Tool("unknown")); err == nil {
		t.Error("Expected error for unknown tool")
	}
}

// waitFinished polls until the task reaches a terminal status
func waitFinished(t *testing.T, installer *Installer, id string) *model.InstallTask {
	t.Helper()

	deadline := time.Now().Add(10 * time.Second)
	for time.Now().Before(deadline) {
		task, ok := installer.GetTask(id)
		if !ok {
			t.Fatalf("Task %s disappeared", id)
		}
		if task.Status.IsFinished() {
			return task
		}
		time.Sleep(10 * time.Millisecond)
	}

	t.Fatalf("Task %s did not finish in time", id)
	return nil
}

func TestInstaller_Success(t *testing.T) {
	root := t.TempDir()
	installer := NewInstaller(root)

	payload := []byte("fake binary contents")
	installer.SetFetchFunc(func(ctx context.Context, url, dest string, progress func(done, total int64)) error {
		if progress != nil {
			progress(int64(len(payload)/2), int64(len(payload)))
			progress(int64(len(payload)), int64(len(payload)))
		}
		return os.WriteFile(dest, payload, 0644)
	})

	task, err := installer.Install(ToolYTDLP)
	if err != nil {
		t.Fatalf("Install failed: %v", err)
	}

	task = waitFinished(t, installer, task.ID)
	if task.Status != model.InstallStatusCompleted {
		t.Fatalf("Expected completed, got %s (%s)", task.Status, task.LastError)
	}
	if task.Percent != 100 {
		t.Errorf("Expected 100 percent, got %d", task.Percent)
	}

	content, err := os.ReadFile(ToolPath(root, ToolYTDLP))
	if err != nil {
		t.Fatalf("Installed binary missing: %v", err)
	}
	if string(content) != string(payload) {
		t.Error("Installed binary content mismatch")
	}

	info, err := os.Stat(ToolPath(root, ToolYTDLP))
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if runtime.GOOS != "windows" && info.Mode().Perm() != BinPermissions {
		t.Errorf("Expected mode %o, got %o", BinPermissions, info.Mode().Perm())
	}
}

func TestInstaller_UsesConfiguredHTTPClient(t *testing.T) {
	root := t.TempDir()
	installer := NewInstaller(root)

	payload := []byte("proxied binary contents")
	transport := &cannedTransport{data: payload}
	installer.SetHTTPClient(&http.Client{Transport: transport})

	task, err := installer.Install(ToolYTDLP)
	if err != nil {
		t.Fatalf("Install failed: %v", err)
	}

	task = waitFinished(t, installer, task.ID)
	if task.Status != model.InstallStatusCompleted {
		t.Fatalf("Expected completed, got %s (%s)", task.Status, task.LastError)
	}
	if transport.calls != 1 {
		t.Errorf("Expected the configured client to serve the download, got %d calls", transport.calls)
	}

	content, err := os.ReadFile(ToolPath(root, ToolYTDLP))
	if err != nil {
		t.Fatalf("Installed binary missing: %v", err)
	}
	if string(content) != string(payload) {
		t.Error("Installed binary content mismatch")
	}
}

func TestInstaller_RetriesOnce(t *testing.T) {
	root := t.TempDir()
	installer := NewInstaller(root)

	attempts := 0
	installer.SetFetchFunc(func(ctx context.Context, url, dest string, progress func(done, total int64)) error {
		attempts++
		if attempts == 1 {
			return fmt.Errorf("transient network error")
		}
		return os.WriteFile(dest, []byte("ok"), 0644)
	})

	task, err := installer.Install(ToolFFmpeg)
	if err != nil {
		t.Fatalf("Install failed: %v", err)
	}

	task = waitFinished(t, installer, task.ID)
	if task.Status != model.InstallStatusCompleted {
		t.Fatalf("Expected completed after retry, got %s (%s)", task.Status, task.LastError)
	}
	if attempts != 2 {
		t.Errorf("Expected 2 fetch attempts, got %d", attempts)
	}
}

func TestInstaller_Failure(t *testing.T) {
	root := t.TempDir()
	installer := NewInstaller(root)

	installer.SetFetchFunc(func(ctx context.Context, url, dest string, progress func(done, total int64)) error {
		return fmt.Errorf("server unreachable")
	})

	task, err := installer.Install(ToolYTDLP)
	if err != nil {
		t.Fatalf("Install failed: %v", err)
	}

	task = waitFinished(t, installer, task.ID)
	if task.Status != model.InstallStatusError {
		t.Fatalf("Expected error status, got %s", task.Status)
	}
	if task.LastError == "" {
		t.Error("Expected LastError to be set")
	}

	// No half-written binary left behind
	if _, err := os.Stat(ToolPath(root, ToolYTDLP)); !os.IsNotExist(err) {
		t.Error("Failed install should not leave a binary at the final path")
	}
	if _, err := os.Stat(ToolPath(root, ToolYTDLP) + ".part"); !os.IsNotExist(err) {
		t.Error("Failed install should clean up the partial file")
	}
}

func TestInstaller_RejectsDuplicate(t *testing.T) {
	installer := NewInstaller(t.TempDir())

	release := make(chan struct{})
	installer.SetFetchFunc(func(ctx context.Context, url, dest string, progress func(done, total int64)) error {
		<-release
		return os.WriteFile(dest, []byte("ok"), 0644)
	})

	task, err := installer.Install(ToolYTDLP)
	if err != nil {
		t.Fatalf("Install failed: %v", err)
	}

	if _, err := installer.Install(ToolYTDLP); err == nil {
		t.Error("Expected duplicate install to be rejected")
	}

	close(release)
	waitFinished(t, installer, task.ID)
}
