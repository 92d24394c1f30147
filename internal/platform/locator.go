package platform

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/ytget/yt-browser/internal/model"
)

// URL parameters and path markers
const (
	VideoParam    = "v"
	PlaylistParam = "list"
	SearchParam   = "search_query"
	ChannelPath   = "/channel/"
	HandlePrefix  = "/@"
	WatchPath     = "/watch"
	PlaylistPath  = "/playlist"
	ResultsPath   = "/results"
	ShortLinkHost = "youtu.be"
)

// URL templates
const (
	VideoURLTemplate    = "https://www.youtube.com/watch?v=%s"
	PlaylistURLTemplate = "https://www.youtube.com/playlist?list=%s"
	ChannelURLTemplate  = "https://www.youtube.com/channel/%s"
	SearchURLTemplate   = "https://www.youtube.com/results?search_query=%s"
)

// ParseLocator classifies a user-entered URL or query into a view
// descriptor. Anything that does not look like a YouTube URL becomes a
// search.
func ParseLocator(input string) (model.ViewDescriptor, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return model.ViewDescriptor{}, fmt.Errorf("empty input")
	}

	if !strings.Contains(input, "://") && !looksLikeHost(input) {
		// Plain text, treat as a search query
		return model.ViewDescriptor{Kind: model.ViewKindSearch, Locator: input}, nil
	}

	raw := input
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return model.ViewDescriptor{}, fmt.Errorf("invalid URL: %v", err)
	}

	host := strings.TrimPrefix(parsed.Hostname(), "www.")
	if host != "youtube.com" && host != "m.youtube.com" && host != ShortLinkHost {
		return model.ViewDescriptor{}, fmt.Errorf("not a YouTube URL: %s", input)
	}

	// youtu.be/VIDEO_ID short links
	if host == ShortLinkHost {
		id := strings.Trim(parsed.Path, "/")
		if id == "" {
			return model.ViewDescriptor{}, fmt.Errorf("short link has no video ID: %s", input)
		}
		return model.ViewDescriptor{Kind: model.ViewKindVideo, Locator: id}, nil
	}

	query := parsed.Query()

	switch {
	case strings.HasPrefix(parsed.Path, PlaylistPath):
		if id := query.Get(PlaylistParam); id != "" {
			return model.ViewDescriptor{Kind: model.ViewKindPlaylist, Locator: id}, nil
		}
		return model.ViewDescriptor{}, fmt.Errorf("playlist URL has no list parameter: %s", input)

	case strings.HasPrefix(parsed.Path, WatchPath):
		// A watch URL with a list parameter opens the playlist view
		if id := query.Get(PlaylistParam); id != "" {
			return model.ViewDescriptor{Kind: model.ViewKindPlaylist, Locator: id}, nil
		}
		if id := query.Get(VideoParam); id != "" {
			return model.ViewDescriptor{Kind: model.ViewKindVideo, Locator: id}, nil
		}
		return model.ViewDescriptor{}, fmt.Errorf("watch URL has no video ID: %s", input)

	case strings.HasPrefix(parsed.Path, ChannelPath):
		id := strings.Trim(strings.TrimPrefix(parsed.Path, ChannelPath), "/")
		if id == "" {
			return model.ViewDescriptor{}, fmt.Errorf("channel URL has no channel ID: %s", input)
		}
		return model.ViewDescriptor{Kind: model.ViewKindChannel, Locator: id}, nil

	case strings.HasPrefix(parsed.Path, HandlePrefix):
		handle := strings.Trim(parsed.Path, "/")
		if idx := strings.IndexByte(handle, '/'); idx >= 0 {
			handle = handle[:idx]
		}
		return model.ViewDescriptor{Kind: model.ViewKindChannel, Locator: handle}, nil

	case strings.HasPrefix(parsed.Path, ResultsPath):
		if q := query.Get(SearchParam); q != "" {
			return model.ViewDescriptor{Kind: model.ViewKindSearch, Locator: q}, nil
		}
		return model.ViewDescriptor{}, fmt.Errorf("results URL has no query: %s", input)

	case parsed.Path == "" || parsed.Path == "/":
		return model.HomeDescriptor(), nil
	}

	return model.ViewDescriptor{}, fmt.Errorf("unrecognized YouTube URL: %s", input)
}

// CanonicalURL renders a descriptor back into a shareable URL
func CanonicalURL(desc model.ViewDescriptor) string {
	switch desc.Kind {
	case model.ViewKindVideo:
		return fmt.Sprintf(VideoURLTemplate, desc.Locator)
	case model.ViewKindPlaylist:
		return fmt.Sprintf(PlaylistURLTemplate, desc.Locator)
	case model.ViewKindChannel:
		return fmt.Sprintf(ChannelURLTemplate, desc.Locator)
	case model.ViewKindSearch:
		return fmt.Sprintf(SearchURLTemplate, url.QueryEscape(desc.Locator))
	default:
		return "https://www.youtube.com/"
	}
}

// looksLikeHost reports whether input starts with a known YouTube host
func looksLikeHost(input string) bool {
	for _, prefix := range []string{"youtube.com/", "www.youtube.com/", "m.youtube.com/", "youtu.be/"} {
		if strings.HasPrefix(input, prefix) {
			return true
		}
	}
	return false
}
