package model

// ViewKind identifies one of the closed set of navigable view types.
type ViewKind string

const (
	// ViewKindHome is the singleton start view; exactly one instance
	// of it is ever materialized.
	ViewKindHome ViewKind = "home"

	// ViewKindVideo is a single video page, located by URL or video id.
	ViewKindVideo ViewKind = "video"

	// ViewKindChannel is a channel page, located by channel id.
	ViewKindChannel ViewKind = "channel"

	// ViewKindPlaylist is a playlist page, located by playlist id.
	ViewKindPlaylist ViewKind = "playlist"

	// ViewKindSearch is a search results page, located by the query.
	ViewKindSearch ViewKind = "search"
)

// String returns the string representation of ViewKind
func (vk ViewKind) String() string {
	return string(vk)
}

// IsSingleton returns true for the one kind limited to a single live instance
func (vk ViewKind) IsSingleton() bool {
	return vk == ViewKindHome
}

// Snapshot carries lightweight cached display data for a view. It is
// passed through the view cache opaquely and only interpreted by the UI.
type Snapshot struct {
	Title     string
	Thumbnail string
	Uploader  string
	Duration  string
}

// ViewDescriptor is the abstract, navigation-stack-owned specification of
// a navigable view. The view cache treats descriptors as read-only input.
type ViewDescriptor struct {
	Kind     ViewKind
	Locator  string    // empty only for the singleton kind
	Snapshot *Snapshot // optional display data, may be nil
}

// HomeDescriptor returns the descriptor of the singleton home view
func HomeDescriptor() ViewDescriptor {
	return ViewDescriptor{Kind: ViewKindHome}
}

// DisplayTitle returns the snapshot title, or a kind/locator fallback
func (vd ViewDescriptor) DisplayTitle() string {
	if vd.Snapshot != nil && vd.Snapshot.Title != "" {
		return vd.Snapshot.Title
	}
	if vd.Locator == "" {
		return vd.Kind.String()
	}
	return vd.Kind.String() + ": " + vd.Locator
}
