package platform

import (
	"testing"

	"github.com/ytget/yt-browser/internal/model"
)

func TestParseLocator(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantKind    model.ViewKind
		wantLocator string
		wantErr     bool
	}{
		{
			name:        "watch URL",
			input:       "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			wantKind:    model.ViewKindVideo,
			wantLocator: "dQw4w9WgXcQ",
		},
		{
			name:        "watch URL without scheme",
			input:       "www.youtube.com/watch?v=abc123",
			wantKind:    model.ViewKindVideo,
			wantLocator: "abc123",
		},
		{
			name:        "short link",
			input:       "https://youtu.be/dQw4w9WgXcQ",
			wantKind:    model.ViewKindVideo,
			wantLocator: "dQw4w9WgXcQ",
		},
		{
			name:        "playlist URL",
			input:       "https://www.youtube.com/playlist?list=PLtest123",
			wantKind:    model.ViewKindPlaylist,
			wantLocator: "PLtest123",
		},
		{
			name:        "watch URL with list opens playlist",
			input:       "https://www.youtube.com/watch?v=abc&list=PLxyz&index=2",
			wantKind:    model.ViewKindPlaylist,
			wantLocator: "PLxyz",
		},
		{
			name:        "channel URL",
			input:       "https://www.youtube.com/channel/UCabc123",
			wantKind:    model.ViewKindChannel,
			wantLocator: "UCabc123",
		},
		{
			name:        "handle URL",
			input:       "https://www.youtube.com/@somecreator/videos",
			wantKind:    model.ViewKindChannel,
			wantLocator: "@somecreator",
		},
		{
			name:        "results URL",
			input:       "https://www.youtube.com/results?search_query=lo+fi",
			wantKind:    model.ViewKindSearch,
			wantLocator: "lo fi",
		},
		{
			name:        "plain text becomes search",
			input:       "cooking tutorials",
			wantKind:    model.ViewKindSearch,
			wantLocator: "cooking tutorials",
		},
		{
			name:     "bare youtube root is home",
			input:    "https://www.youtube.com/",
			wantKind: model.ViewKindHome,
		},
		{
			name:    "empty input",
			input:   "   ",
			wantErr: true,
		},
		{
			name:    "non-youtube host",
			input:   "https://vimeo.com/12345",
			wantErr: true,
		},
		{
			name:    "watch URL without video ID",
			input:   "https://www.youtube.com/watch?t=10",
			wantErr: true,
		},
		{
			name:    "short link without ID",
			input:   "https://youtu.be/",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc, err := ParseLocator(tt.input)

			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error for %q, got %+v", tt.input, desc)
				}
				return
			}

			if err != nil {
				t.Fatalf("ParseLocator(%q) failed: %v", tt.input, err)
			}
			if desc.Kind != tt.wantKind {
				t.Errorf("Expected kind %s, got %s", tt.wantKind, desc.Kind)
			}
			if desc.Locator != tt.wantLocator {
				t.Errorf("Expected locator %q, got %q", tt.wantLocator, desc.Locator)
			}
		})
	}
}

func TestCanonicalURL(t *testing.T) {
	tests := []struct {
		name string
		desc model.ViewDescriptor
		want string
	}{
		{
			name: "video",
			desc: model.ViewDescriptor{Kind: model.ViewKindVideo, Locator: "abc123"},
			want: "https://www.youtube.com/watch?v=abc123",
		},
		{
			name: "playlist",
			desc: model.ViewDescriptor{Kind: model.ViewKindPlaylist, Locator: "PLxyz"},
			want: "https://www.youtube.com/playlist?list=PLxyz",
		},
		{
			name: "channel",
			desc: model.ViewDescriptor{Kind: model.ViewKindChannel, Locator: "UCabc"},
			want: "https://www.youtube.com/channel/UCabc",
		},
		{
			name: "search escapes the query",
			desc: model.ViewDescriptor{Kind: model.ViewKindSearch, Locator: "lo fi"},
			want: "https://www.youtube.com/results?search_query=lo+fi",
		},
		{
			name: "home",
			desc: model.HomeDescriptor(),
			want: "https://www.youtube.com/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanonicalURL(tt.desc); got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}
