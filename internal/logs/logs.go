package logs

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// File naming constants
const (
	LogFilePrefix    = "ytbrowser_"
	LogFileExtension = ".log"
	TimestampLayout  = "2006-01-02_15-04-05"

	// DirPermissions is used when creating the logs directory
	DirPermissions = 0755
)

// Manager owns the session log directory
type Manager struct {
	dir string
}

// NewManager creates a log manager rooted at dir, creating it if missing
func NewManager(dir string) (*Manager, error) {
	if err := os.MkdirAll(dir, DirPermissions); err != nil {
		return nil, fmt.Errorf("failed to create logs dir: %w", err)
	}
	return &Manager{dir: dir}, nil
}

// Dir returns the logs directory
func (m *Manager) Dir() string {
	return m.dir
}

// NewSessionFile creates an empty log file for a new session and returns
// its path. The name carries the start timestamp plus a short unique
// suffix so two sessions started within the same second do not collide.
func (m *Manager) NewSessionFile() (string, error) {
	timestamp := time.Now().Format(TimestampLayout)

	suffix := uuid.NewString()[:8]
	name := fmt.Sprintf("%s%s_%s%s", LogFilePrefix, timestamp, suffix, LogFileExtension)
	path := filepath.Join(m.dir, name)

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to create log file: %w", err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("failed to close log file: %w", err)
	}

	return path, nil
}

// TeeStandardLog routes the default logger to both stderr and the
// session file at path, so every log.Printf line lands in the session
// log. The returned file stays open for the process lifetime; the
// caller closes it on shutdown.
func TeeStandardLog(path string) (*os.File, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	log.SetOutput(io.MultiWriter(os.Stderr, file))
	return file, nil
}

// Append writes one entry line to the session file
func (m *Manager) Append(sessionFile, entry string) error {
	file, err := os.OpenFile(sessionFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer file.Close()

	if _, err := fmt.Fprintln(file, entry); err != nil {
		return fmt.Errorf("failed to write to log file: %w", err)
	}

	return nil
}

// CleanupOldSessions removes session log files beyond the newest keep
// files and returns how many were removed
func (m *Manager) CleanupOldSessions(keep int) (int, error) {
	if keep < 0 {
		keep = 0
	}

	entries, err := os.ReadDir(m.dir)
	if err != nil {
		return 0, fmt.Errorf("failed to read logs dir: %w", err)
	}

	var logFiles []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, LogFilePrefix) && strings.HasSuffix(name, LogFileExtension) {
			logFiles = append(logFiles, name)
		}
	}

	// Names embed the session timestamp, so lexical order is age order
	sort.Sort(sort.Reverse(sort.StringSlice(logFiles)))

	removed := 0
	for i := keep; i < len(logFiles); i++ {
		path := filepath.Join(m.dir, logFiles[i])
		if err := os.Remove(path); err != nil {
			return removed, fmt.Errorf("failed to remove old log %s: %w", logFiles[i], err)
		}
		removed++
	}

	return removed, nil
}
