package player

import (
	"slices"
	"strings"

	"videoplayer/internal/catalog"
)

// Status is the playback status of the player.
type Status int

const (
	// StatusNone is the initial status: nothing has been played yet.
	StatusNone Status = iota
	StatusPlaying
	StatusPaused
	// StatusStopped means a video was stopped. Like StatusNone, no video is loaded.
	StatusStopped
)

func (s Status) String() string {
	switch s {
	case StatusNone:
		return "NONE"
	case StatusPlaying:
		return "PLAYING"
	case StatusPaused:
		return "PAUSED"
	case StatusStopped:
		return "STOPPED"
	default:
		return "UNKNOWN"
	}
}

// PlaybackState is what the player currently has loaded.
// current is nil exactly when Status is StatusNone or StatusStopped.
type PlaybackState struct {
	Status  Status
	current *catalog.Video
}

// Current returns the loaded video, if any.
func (s PlaybackState) Current() (catalog.Video, bool) {
	if s.current == nil {
		return catalog.Video{}, false
	}
	v := *s.current
	v.Tags = slices.Clone(v.Tags)
	return v, true
}

// Playlist is a named, ordered list of video IDs without duplicates.
type Playlist struct {
	Name     string
	VideoIDs []catalog.VideoID
}

// NormalizeName returns the lookup key for a playlist name.
func NormalizeName(name string) string {
	return strings.ToLower(name)
}

// Key returns the normalized name of the playlist.
func (p *Playlist) Key() string {
	return NormalizeName(p.Name)
}

// Contains reports whether id is in the playlist.
func (p *Playlist) Contains(id catalog.VideoID) bool {
	return slices.Contains(p.VideoIDs, id)
}

func (p *Playlist) snapshot() Playlist {
	return Playlist{Name: p.Name, VideoIDs: slices.Clone(p.VideoIDs)}
}
