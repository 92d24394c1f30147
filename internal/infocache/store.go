package infocache

import (
	"log"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/ytget/yt-browser/internal/model"
)

// Cache capacities. Video metadata is small; the budgets mainly bound how
// many thumbnails-worth of strings linger after long browsing sessions.
const (
	VideoInfoCacheSize    = 5
	PlaylistInfoCacheSize = 3
)

// Store holds the in-memory LRU caches for extraction metadata, keyed by
// the video or playlist URL.
type Store struct {
	videoInfo    *lru.Cache[string, *model.VideoInfo]
	playlistInfo *lru.Cache[string, *model.PlaylistInfo]
}

// Stats reports cache occupancy for the settings/diagnostics UI
type Stats struct {
	VideoInfoCount       int
	VideoInfoCapacity    int
	PlaylistInfoCount    int
	PlaylistInfoCapacity int
}

// NewStore creates the metadata cache store
func NewStore() *Store {
	videoInfo, _ := lru.New[string, *model.VideoInfo](VideoInfoCacheSize)
	playlistInfo, _ := lru.New[string, *model.PlaylistInfo](PlaylistInfoCacheSize)

	return &Store{
		videoInfo:    videoInfo,
		playlistInfo: playlistInfo,
	}
}

// VideoInfo returns cached video metadata for the URL, if present
func (s *Store) VideoInfo(url string) (*model.VideoInfo, bool) {
	return s.videoInfo.Get(url)
}

// PutVideoInfo stores video metadata for the URL
func (s *Store) PutVideoInfo(url string, info *model.VideoInfo) {
	s.videoInfo.Add(url, info)
}

// PlaylistInfo returns cached playlist metadata for the URL, if present
func (s *Store) PlaylistInfo(url string) (*model.PlaylistInfo, bool) {
	return s.playlistInfo.Get(url)
}

// PutPlaylistInfo stores playlist metadata for the URL
func (s *Store) PutPlaylistInfo(url string, info *model.PlaylistInfo) {
	s.playlistInfo.Add(url, info)
}

// GetStats returns current occupancy and capacities
func (s *Store) GetStats() Stats {
	return Stats{
		VideoInfoCount:       s.videoInfo.Len(),
		VideoInfoCapacity:    VideoInfoCacheSize,
		PlaylistInfoCount:    s.playlistInfo.Len(),
		PlaylistInfoCapacity: PlaylistInfoCacheSize,
	}
}

// Clear drops all cached metadata
func (s *Store) Clear() {
	s.videoInfo.Purge()
	s.playlistInfo.Purge()
	log.Printf("Metadata caches cleared")
}
