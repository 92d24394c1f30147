package model

// VideoInfo holds metadata about a single video as reported by the
// extraction backend. All fields except Title may be empty.
type VideoInfo struct {
	Title     string
	Uploader  string
	Channel   string
	ChannelID string
	Thumbnail string
	Duration  float64 // seconds, 0 if unknown
	FileSize  int64   // bytes, 0 if unknown
	Ext       string
}

// PlaylistEntry is a single video inside a playlist or channel listing
type PlaylistEntry struct {
	ID        string
	URL       string
	Title     string
	Duration  float64 // seconds, 0 if unknown
	Thumbnail string
	Uploader  string
}

// PlaylistInfo holds metadata about a playlist or channel upload listing
type PlaylistInfo struct {
	ID         string
	Title      string
	Uploader   string
	Thumbnail  string
	TotalCount int
	Entries    []*PlaylistEntry
	HasMore    bool
}

// AddEntry appends an entry and keeps TotalCount consistent
func (pi *PlaylistInfo) AddEntry(entry *PlaylistEntry) {
	pi.Entries = append(pi.Entries, entry)
	pi.TotalCount = len(pi.Entries)
}

// EntrySnapshot converts a playlist entry into a view snapshot for the
// navigation stack, so revisited videos render instantly from cache.
func (pe *PlaylistEntry) EntrySnapshot() *Snapshot {
	return &Snapshot{
		Title:     pe.Title,
		Thumbnail: pe.Thumbnail,
		Uploader:  pe.Uploader,
		Duration:  FormatDuration(pe.Duration),
	}
}
