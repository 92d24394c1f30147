package platform

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ytget/ytdlp/v2"

	"github.com/ytget/yt-browser/internal/infocache"
	"github.com/ytget/yt-browser/internal/model"
)

// Timeout constants
const (
	DefaultFetchTimeout = 60 * time.Second
)

// Default values
const (
	DefaultPlaylistName = "Unknown Playlist"
	DefaultChannelName  = "Unknown Channel"
)

// BrowseItem is one fetched playlist or channel entry
type BrowseItem struct {
	VideoID string
	Title   string
}

// playlistItemsFunc fetches playlist items, injected for tests
type playlistItemsFunc func(ctx context.Context, playlistID string) ([]BrowseItem, error)

// BrowseService fetches view content from YouTube and caches the results
type BrowseService struct {
	timeout time.Duration
	cache   *infocache.Store
	fetch   playlistItemsFunc
}

// NewBrowseService creates a browse service backed by the info cache
func NewBrowseService(cache *infocache.Store) *BrowseService {
	return &BrowseService{
		timeout: DefaultFetchTimeout,
		cache:   cache,
		fetch:   fetchPlaylistItems,
	}
}

// SetTimeout sets the timeout for fetch operations
func (b *BrowseService) SetTimeout(timeout time.Duration) {
	b.timeout = timeout
}

// SetFetchFunc overrides the playlist item fetcher
func (b *BrowseService) SetFetchFunc(fetch playlistItemsFunc) {
	b.fetch = fetch
}

// FetchPlaylist returns playlist info for the given playlist ID,
// serving from cache when possible
func (b *BrowseService) FetchPlaylist(ctx context.Context, playlistID string) (*model.PlaylistInfo, error) {
	if playlistID == "" {
		return nil, fmt.Errorf("empty playlist ID")
	}

	if cached, ok := b.cache.PlaylistInfo(playlistID); ok {
		return cached, nil
	}

	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	items, err := b.fetch(ctx, playlistID)
	if err != nil {
		return nil, fmt.Errorf("failed to get playlist items: %v", err)
	}

	info := &model.PlaylistInfo{
		ID:    playlistID,
		Title: playlistTitle(items, playlistID),
	}
	for _, it := range items {
		info.AddEntry(&model.PlaylistEntry{
			ID:    it.VideoID,
			Title: it.Title,
			URL:   fmt.Sprintf(VideoURLTemplate, it.VideoID),
		})
	}

	b.cache.PutPlaylistInfo(playlistID, info)
	return info, nil
}

// RememberVideo caches display metadata for a video the user opened
// from a listing, so its detail view survives widget eviction and a
// later revisit renders without refetching the listing.
func (b *BrowseService) RememberVideo(entry *model.PlaylistEntry) {
	if entry == nil || entry.ID == "" {
		return
	}

	b.cache.PutVideoInfo(fmt.Sprintf(VideoURLTemplate, entry.ID), &model.VideoInfo{
		Title:     entry.Title,
		Uploader:  entry.Uploader,
		Thumbnail: entry.Thumbnail,
		Duration:  entry.Duration,
	})
}

// VideoInfo returns cached metadata for the video ID, if present
func (b *BrowseService) VideoInfo(videoID string) (*model.VideoInfo, bool) {
	if videoID == "" {
		return nil, false
	}
	return b.cache.VideoInfo(fmt.Sprintf(VideoURLTemplate, videoID))
}

// FetchChannel returns the uploads of a channel as playlist info. YouTube
// exposes channel uploads as a playlist whose ID swaps the UC prefix for
// UU, so channel views reuse the playlist fetch path.
func (b *BrowseService) FetchChannel(ctx context.Context, channelID string) (*model.PlaylistInfo, error) {
	if channelID == "" {
		return nil, fmt.Errorf("empty channel ID")
	}

	uploadsID := channelID
	if strings.HasPrefix(channelID, "UC") {
		uploadsID = "UU" + channelID[2:]
	}

	info, err := b.FetchPlaylist(ctx, uploadsID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch channel uploads: %v", err)
	}
	return info, nil
}

// fetchPlaylistItems is the production fetcher backed by the ytdlp library
func fetchPlaylistItems(ctx context.Context, playlistID string) ([]BrowseItem, error) {
	d := ytdlp.New()
	items, err := d.GetPlaylistItemsAll(ctx, playlistID, 0)
	if err != nil {
		return nil, err
	}

	result := make([]BrowseItem, 0, len(items))
	for _, it := range items {
		result = append(result, BrowseItem{VideoID: it.VideoID, Title: it.Title})
	}
	return result, nil
}

// playlistTitle derives a display title from the fetched items
func playlistTitle(items []BrowseItem, playlistID string) string {
	if len(items) == 0 {
		return DefaultPlaylistName
	}
	if len(items) == 1 {
		return items[0].Title
	}
	return fmt.Sprintf("%s and %d more", items[0].Title, len(items)-1)
}
