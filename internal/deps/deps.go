package deps

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Tool identifies an external dependency
type Tool string

const (
	ToolYTDLP  Tool = "yt-dlp"
	ToolFFmpeg Tool = "ffmpeg"
)

// Directory layout under the app storage root
const (
	BinDirName = "bin"

	// BinPermissions is applied to installed binaries
	BinPermissions = 0755
)

// ToolStatus describes one dependency for the installer banner
type ToolStatus struct {
	Tool      Tool
	Path      string // resolved path, empty when missing
	Version   string // probe output, empty when missing or probe failed
	Installed bool
}

// BinaryName returns the platform binary name for the tool
func BinaryName(tool Tool) string {
	switch tool {
	case ToolYTDLP:
		switch runtime.GOOS {
		case "windows":
			return "yt-dlp.exe"
		case "darwin":
			return "yt-dlp_macos"
		default:
			return "yt-dlp_linux"
		}
	case ToolFFmpeg:
		if runtime.GOOS == "windows" {
			return "ffmpeg.exe"
		}
		return "ffmpeg"
	default:
		return string(tool)
	}
}

// lookupName is the name searched in PATH, without platform suffixes
func lookupName(tool Tool) string {
	name := string(tool)
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	return name
}

// BinDir returns the managed binary directory under the app storage root
func BinDir(storageRoot string) string {
	return filepath.Join(storageRoot, BinDirName)
}

// ToolPath returns where the managed copy of the tool lives
func ToolPath(storageRoot string, tool Tool) string {
	return filepath.Join(BinDir(storageRoot), BinaryName(tool))
}

// Locate finds the tool, preferring the managed copy over PATH
func Locate(storageRoot string, tool Tool) (string, error) {
	managed := ToolPath(storageRoot, tool)
	if info, err := os.Stat(managed); err == nil && !info.IsDir() {
		return managed, nil
	}

	path, err := exec.LookPath(lookupName(tool))
	if err != nil {
		return "", fmt.Errorf("%s not found: %w", tool, err)
	}
	return path, nil
}

// Status probes all known tools and reports their install state
func Status(storageRoot string) []ToolStatus {
	tools := []Tool{ToolYTDLP, ToolFFmpeg}

	statuses := make([]ToolStatus, 0, len(tools))
	for _, tool := range tools {
		status := ToolStatus{Tool: tool}

		path, err := Locate(storageRoot, tool)
		if err == nil {
			status.Path = path
			status.Installed = true
			status.Version = probeVersion(path, tool)
		}

		statuses = append(statuses, status)
	}

	return statuses
}

// AllInstalled reports whether every required tool is present
func AllInstalled(statuses []ToolStatus) bool {
	for _, status := range statuses {
		if !status.Installed {
			return false
		}
	}
	return true
}

// probeVersion runs the tool's --version and returns the first line
func probeVersion(path string, tool Tool) string {
	cmd := exec.Command(path, "--version")
	output, err := cmd.Output()
	if err != nil {
		return ""
	}

	line := strings.TrimSpace(string(output))
	if idx := strings.IndexByte(line, '\n'); idx >= 0 {
		line = line[:idx]
	}

	// ffmpeg prints "ffmpeg version N.N ..."; keep just the version token
	if tool == ToolFFmpeg {
		fields := strings.Fields(line)
		if len(fields) >= 3 && fields[0] == "ffmpeg" && fields[1] == "version" {
			return fields[2]
		}
	}

	return line
}
