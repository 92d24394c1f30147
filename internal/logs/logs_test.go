package logs

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewManager_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "logs")

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	if manager.Dir() != dir {
		t.Errorf("Expected dir %s, got %s", dir, manager.Dir())
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("Logs dir should exist: %v", err)
	}
}

func TestNewSessionFile(t *testing.T) {
	manager, err := NewManager(t.TempDir())
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	path, err := manager.NewSessionFile()
	if err != nil {
		t.Fatalf("NewSessionFile failed: %v", err)
	}

	name := filepath.Base(path)
	if !strings.HasPrefix(name, LogFilePrefix) {
		t.Errorf("Session file name %s should have prefix %s", name, LogFilePrefix)
	}
	if !strings.HasSuffix(name, LogFileExtension) {
		t.Errorf("Session file name %s should have extension %s", name, LogFileExtension)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Session file should exist: %v", err)
	}
}

func TestNewSessionFile_UniqueNames(t *testing.T) {
	manager, err := NewManager(t.TempDir())
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	// Same-second sessions must not collide
	first, err := manager.NewSessionFile()
	if err != nil {
		t.Fatalf("First session file failed: %v", err)
	}
	second, err := manager.NewSessionFile()
	if err != nil {
		t.Fatalf("Second session file failed: %v", err)
	}

	if first == second {
		t.Errorf("Session files should be unique, got %s twice", first)
	}
}

func TestAppend(t *testing.T) {
	manager, err := NewManager(t.TempDir())
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	path, err := manager.NewSessionFile()
	if err != nil {
		t.Fatalf("NewSessionFile failed: %v", err)
	}

	if err := manager.Append(path, "first entry"); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if err := manager.Append(path, "second entry"); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "first entry" || lines[1] != "second entry" {
		t.Errorf("Unexpected log content: %v", lines)
	}
}

func TestTeeStandardLog(t *testing.T) {
	manager, err := NewManager(t.TempDir())
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	path, err := manager.NewSessionFile()
	if err != nil {
		t.Fatalf("NewSessionFile failed: %v", err)
	}

	file, err := TeeStandardLog(path)
	if err != nil {
		t.Fatalf("TeeStandardLog failed: %v", err)
	}
	defer func() {
		log.SetOutput(os.Stderr)
		file.Close()
	}()

	log.Printf("session marker 42")

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.Contains(string(content), "session marker 42") {
		t.Errorf("Session file should contain the logged line, got %q", string(content))
	}
}

func TestCleanupOldSessions(t *testing.T) {
	dir := t.TempDir()
	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	// Fabricate session files with increasing timestamps in their names
	for i := 0; i < 5; i++ {
		name := fmt.Sprintf("%s2026-01-0%d_10-00-00_abcd0000%s", LogFilePrefix, i+1, LogFileExtension)
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}
	}

	// A foreign file must survive cleanup
	foreign := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(foreign, []byte("keep me"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	removed, err := manager.CleanupOldSessions(2)
	if err != nil {
		t.Fatalf("CleanupOldSessions failed: %v", err)
	}
	if removed != 3 {
		t.Errorf("Expected 3 removed, got %d", removed)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}

	var remaining []string
	for _, entry := range entries {
		remaining = append(remaining, entry.Name())
	}

	if len(remaining) != 3 { // 2 newest logs + foreign file
		t.Fatalf("Expected 3 files remaining, got %d: %v", len(remaining), remaining)
	}

	// The two newest sessions survive
	for _, want := range []string{"2026-01-04", "2026-01-05", "notes.txt"} {
		found := false
		for _, name := range remaining {
			if strings.Contains(name, want) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Expected a remaining file matching %q, got %v", want, remaining)
		}
	}
}

func TestCleanupOldSessions_KeepAll(t *testing.T) {
	manager, err := NewManager(t.TempDir())
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	if _, err := manager.NewSessionFile(); err != nil {
		t.Fatalf("NewSessionFile failed: %v", err)
	}

	removed, err := manager.CleanupOldSessions(10)
	if err != nil {
		t.Fatalf("CleanupOldSessions failed: %v", err)
	}
	if removed != 0 {
		t.Errorf("Expected 0 removed when keep exceeds count, got %d", removed)
	}
}
