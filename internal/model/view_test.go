package model

import (
	"testing"
)

func TestViewKind_IsSingleton(t *testing.T) {
	tests := []struct {
		kind     ViewKind
		expected bool
	}{
		{ViewKindHome, true},
		{ViewKindVideo, false},
		{ViewKindChannel, false},
		{ViewKindPlaylist, false},
		{ViewKindSearch, false},
	}

	for _, test := range tests {
		if result := test.kind.IsSingleton(); result != test.expected {
			t.Errorf("IsSingleton() for %s = %v, expected %v", test.kind, result, test.expected)
		}
	}
}

func TestViewDescriptor_DisplayTitle(t *testing.T) {
	tests := []struct {
		name     string
		desc     ViewDescriptor
		expected string
	}{
		{
			"snapshot title wins",
			ViewDescriptor{Kind: ViewKindVideo, Locator: "v1", Snapshot: &Snapshot{Title: "Some Video"}},
			"Some Video",
		},
		{
			"locator fallback",
			ViewDescriptor{Kind: ViewKindChannel, Locator: "UC123"},
			"channel: UC123",
		},
		{
			"kind fallback without locator",
			ViewDescriptor{Kind: ViewKindHome},
			"home",
		},
		{
			"empty snapshot title falls through",
			ViewDescriptor{Kind: ViewKindVideo, Locator: "v2", Snapshot: &Snapshot{}},
			"video: v2",
		},
	}

	for _, test := range tests {
		if result := test.desc.DisplayTitle(); result != test.expected {
			t.Errorf("%s: DisplayTitle() = %q, expected %q", test.name, result, test.expected)
		}
	}
}

func TestHomeDescriptor(t *testing.T) {
	home := HomeDescriptor()

	if home.Kind != ViewKindHome {
		t.Errorf("Expected home kind, got %s", home.Kind)
	}
	if home.Locator != "" {
		t.Errorf("Home descriptor should have no locator, got %q", home.Locator)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds  float64
		expected string
	}{
		{-1, "—"},
		{0, "—"},
		{30, "00:30"},
		{90, "01:30"},
		{3600, "01:00:00"},
		{3661, "01:01:01"},
		{7323, "02:02:03"},
	}

	for _, test := range tests {
		result := FormatDuration(test.seconds)
		if result != test.expected {
			t.Errorf("FormatDuration(%v) = %s, expected %s", test.seconds, result, test.expected)
		}
	}
}

func TestInstallStatus_Transitions(t *testing.T) {
	active := []InstallStatus{InstallStatusStarting, InstallStatusDownloading, InstallStatusStopping}
	for _, s := range active {
		if !s.IsActive() {
			t.Errorf("Expected %s to be active", s)
		}
		if s.IsFinished() {
			t.Errorf("Expected %s not to be finished", s)
		}
	}

	finished := []InstallStatus{InstallStatusCompleted, InstallStatusStopped, InstallStatusError}
	for _, s := range finished {
		if !s.IsFinished() {
			t.Errorf("Expected %s to be finished", s)
		}
		if s.IsActive() {
			t.Errorf("Expected %s not to be active", s)
		}
	}

	if InstallStatusPending.IsActive() || InstallStatusPending.IsFinished() {
		t.Error("Pending should be neither active nor finished")
	}
}

func TestPlaylistInfo_AddEntry(t *testing.T) {
	pi := &PlaylistInfo{ID: "PL1", Title: "Test Playlist"}

	pi.AddEntry(&PlaylistEntry{ID: "v1", Title: "First"})
	pi.AddEntry(&PlaylistEntry{ID: "v2", Title: "Second"})

	if pi.TotalCount != 2 {
		t.Errorf("Expected TotalCount 2, got %d", pi.TotalCount)
	}
	if len(pi.Entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(pi.Entries))
	}
	if pi.Entries[1].Title != "Second" {
		t.Errorf("Expected second entry 'Second', got %q", pi.Entries[1].Title)
	}
}

func TestPlaylistEntry_EntrySnapshot(t *testing.T) {
	entry := &PlaylistEntry{
		ID:        "v1",
		Title:     "Clip",
		Thumbnail: "https://example.com/t.jpg",
		Uploader:  "Channel",
		Duration:  90,
	}

	snap := entry.EntrySnapshot()

	if snap.Title != "Clip" {
		t.Errorf("Expected title 'Clip', got %q", snap.Title)
	}
	if snap.Duration != "01:30" {
		t.Errorf("Expected duration '01:30', got %q", snap.Duration)
	}
	if snap.Thumbnail != entry.Thumbnail {
		t.Errorf("Expected thumbnail %q, got %q", entry.Thumbnail, snap.Thumbnail)
	}
}

func TestValidPosition(t *testing.T) {
	valid := []NotificationPosition{
		PositionTopLeft, PositionTopCenter, PositionTopRight,
		PositionBottomLeft, PositionBottomCenter, PositionBottomRight,
	}
	for _, p := range valid {
		if !ValidPosition(p) {
			t.Errorf("Expected %s to be valid", p)
		}
	}

	if ValidPosition("middle") {
		t.Error("Expected 'middle' to be invalid")
	}
}
