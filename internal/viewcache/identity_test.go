package viewcache

import (
	"strings"
	"testing"
	"time"

	"github.com/ytget/yt-browser/internal/model"
)

func TestResolveID_Home(t *testing.T) {
	home := model.HomeDescriptor()

	// Position must not influence the singleton id
	for _, pos := range []int{0, 1, 7} {
		if id := ResolveID(home, pos); id != HomeID {
			t.Errorf("ResolveID(home, %d) = %s, expected %s", pos, id, HomeID)
		}
	}
}

func TestResolveID_LocatorStability(t *testing.T) {
	tests := []struct {
		kind     model.ViewKind
		locator  string
		expected string
	}{
		{model.ViewKindVideo, "dQw4w9WgXcQ", "video-dQw4w9WgXcQ"},
		{model.ViewKindChannel, "UC123", "channel-UC123"},
		{model.ViewKindPlaylist, "PLabc", "playlist-PLabc"},
		{model.ViewKindSearch, "cats", "search-cats"},
	}

	for _, test := range tests {
		desc := model.ViewDescriptor{Kind: test.kind, Locator: test.locator}

		first := ResolveID(desc, 1)
		if first != test.expected {
			t.Errorf("ResolveID(%s/%s) = %s, expected %s", test.kind, test.locator, first, test.expected)
		}

		// Same kind+locator resolves identically regardless of position
		if second := ResolveID(desc, 5); second != first {
			t.Errorf("ResolveID at different positions: %s vs %s", first, second)
		}
	}
}

func TestResolveID_FallbackIsUnique(t *testing.T) {
	desc := model.ViewDescriptor{Kind: model.ViewKindSearch}

	id := ResolveID(desc, 2)
	if !strings.HasPrefix(id, "search-2-") {
		t.Errorf("Fallback id %s should carry kind and position", id)
	}

	// The fallback branch is intentionally time-based; two resolutions of
	// the same locator-less descriptor must not collide.
	time.Sleep(time.Microsecond)
	other := ResolveID(desc, 2)
	if other == id {
		t.Errorf("Fallback ids should be unique, got %s twice", id)
	}
}
