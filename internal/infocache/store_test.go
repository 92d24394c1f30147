package infocache

import (
	"fmt"
	"testing"

	"github.com/ytget/yt-browser/internal/model"
)

func TestVideoInfo_PutAndGet(t *testing.T) {
	store := NewStore()

	url := "https://youtube.com/watch?v=abc"
	info := &model.VideoInfo{Title: "Test Video", Duration: 120}

	if _, ok := store.VideoInfo(url); ok {
		t.Fatal("Expected cache miss before put")
	}

	store.PutVideoInfo(url, info)

	got, ok := store.VideoInfo(url)
	if !ok {
		t.Fatal("Expected cache hit after put")
	}
	if got.Title != "Test Video" {
		t.Errorf("Expected title 'Test Video', got %q", got.Title)
	}
}

func TestVideoInfo_EvictsOldest(t *testing.T) {
	store := NewStore()

	for i := 0; i < VideoInfoCacheSize+1; i++ {
		url := fmt.Sprintf("https://youtube.com/watch?v=%d", i)
		store.PutVideoInfo(url, &model.VideoInfo{Title: url})
	}

	if _, ok := store.VideoInfo("https://youtube.com/watch?v=0"); ok {
		t.Error("Oldest entry should have been evicted")
	}
	if _, ok := store.VideoInfo(fmt.Sprintf("https://youtube.com/watch?v=%d", VideoInfoCacheSize)); !ok {
		t.Error("Newest entry should still be cached")
	}
	if got := store.GetStats().VideoInfoCount; got != VideoInfoCacheSize {
		t.Errorf("Expected %d cached entries, got %d", VideoInfoCacheSize, got)
	}
}

func TestPlaylistInfo_PutAndGet(t *testing.T) {
	store := NewStore()

	url := "https://youtube.com/playlist?list=PL1"
	info := &model.PlaylistInfo{ID: "PL1", Title: "Mix"}
	info.AddEntry(&model.PlaylistEntry{ID: "v1", Title: "First"})

	store.PutPlaylistInfo(url, info)

	got, ok := store.PlaylistInfo(url)
	if !ok {
		t.Fatal("Expected cache hit after put")
	}
	if got.TotalCount != 1 {
		t.Errorf("Expected 1 entry, got %d", got.TotalCount)
	}
}

func TestGetStats_Capacities(t *testing.T) {
	store := NewStore()
	stats := store.GetStats()

	if stats.VideoInfoCapacity != VideoInfoCacheSize {
		t.Errorf("Video info capacity = %d, expected %d", stats.VideoInfoCapacity, VideoInfoCacheSize)
	}
	if stats.PlaylistInfoCapacity != PlaylistInfoCacheSize {
		t.Errorf("Playlist info capacity = %d, expected %d", stats.PlaylistInfoCapacity, PlaylistInfoCacheSize)
	}
}

func TestClear(t *testing.T) {
	store := NewStore()

	store.PutVideoInfo("u1", &model.VideoInfo{Title: "a"})
	store.PutPlaylistInfo("u2", &model.PlaylistInfo{Title: "b"})

	store.Clear()

	stats := store.GetStats()
	if stats.VideoInfoCount != 0 || stats.PlaylistInfoCount != 0 {
		t.Errorf("Expected empty caches after clear, got %+v", stats)
	}
}
