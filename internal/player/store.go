package player

import "github.com/samber/lo"

// PlaylistStore is the storage abstraction for playlists, keyed by normalized name.
// Playlists applies all validation; a store only holds state.
type PlaylistStore interface {
	GetPlaylist(key string) (*Playlist, bool)
	SetPlaylist(p *Playlist)
	DeletePlaylist(key string)
	ListKeys() []string
}

// InMemoryPlaylistStore is a map-backed PlaylistStore.
type InMemoryPlaylistStore struct {
	playlists map[string]*Playlist
}

// NewInMemoryPlaylistStore returns a new empty store.
func NewInMemoryPlaylistStore() *InMemoryPlaylistStore {
	return &InMemoryPlaylistStore{
		playlists: make(map[string]*Playlist),
	}
}

// GetPlaylist implements PlaylistStore.GetPlaylist.
func (s *InMemoryPlaylistStore) GetPlaylist(key string) (*Playlist, bool) {
	p, ok := s.playlists[key]
	return p, ok
}

// SetPlaylist implements PlaylistStore.SetPlaylist.
func (s *InMemoryPlaylistStore) SetPlaylist(p *Playlist) {
	s.playlists[p.Key()] = p
}

// DeletePlaylist implements PlaylistStore.DeletePlaylist.
func (s *InMemoryPlaylistStore) DeletePlaylist(key string) {
	delete(s.playlists, key)
}

// ListKeys implements PlaylistStore.ListKeys. Order is unspecified.
func (s *InMemoryPlaylistStore) ListKeys() []string {
	return lo.Keys(s.playlists)
}
