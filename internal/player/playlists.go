package player

import (
	"errors"
	"slices"

	"videoplayer/internal/catalog"
)

var (
	// ErrPlaylistExists is returned when creating a playlist whose normalized
	// name is already taken.
	ErrPlaylistExists = errors.New("a playlist with the same name already exists")

	// ErrPlaylistNotFound is returned when no playlist has the given name.
	ErrPlaylistNotFound = errors.New("playlist does not exist")

	// ErrVideoAlreadyAdded is returned when adding a video that is already in the playlist.
	ErrVideoAlreadyAdded = errors.New("video already added")

	// ErrVideoNotInPlaylist is returned when removing a video the playlist does not hold.
	ErrVideoNotInPlaylist = errors.New("video is not in playlist")
)

// Playlists manages the named playlists of a player. Every method checks all
// of its preconditions before touching the store, so a failed call leaves
// state unchanged.
type Playlists struct {
	store   PlaylistStore
	catalog catalog.Catalog
}

// NewPlaylists returns a manager backed by a fresh in-memory store.
func NewPlaylists(cat catalog.Catalog) *Playlists {
	return NewPlaylistsWithStore(cat, NewInMemoryPlaylistStore())
}

// NewPlaylistsWithStore returns a manager that keeps its playlists in store.
// Videos are resolved against cat.
func NewPlaylistsWithStore(cat catalog.Catalog, store PlaylistStore) *Playlists {
	return &Playlists{store: store, catalog: cat}
}

// Create adds an empty playlist. The display name keeps its original case.
func (ps *Playlists) Create(name string) error {
	key := NormalizeName(name)
	if _, exists := ps.store.GetPlaylist(key); exists {
		return ErrPlaylistExists
	}
	ps.store.SetPlaylist(&Playlist{Name: name, VideoIDs: []catalog.VideoID{}})
	return nil
}

// Get returns a copy of the named playlist.
func (ps *Playlists) Get(name string) (Playlist, error) {
	p, ok := ps.store.GetPlaylist(NormalizeName(name))
	if !ok {
		return Playlist{}, ErrPlaylistNotFound
	}
	return p.snapshot(), nil
}

// Add appends id to the named playlist and returns the added video.
func (ps *Playlists) Add(name string, id catalog.VideoID) (catalog.Video, error) {
	p, v, err := ps.resolve(name, id)
	if err != nil {
		return catalog.Video{}, err
	}
	if p.Contains(id) {
		return catalog.Video{}, ErrVideoAlreadyAdded
	}
	p.VideoIDs = append(p.VideoIDs, id)
	return v, nil
}

// Remove deletes id from the named playlist and returns the removed video.
func (ps *Playlists) Remove(name string, id catalog.VideoID) (catalog.Video, error) {
	p, v, err := ps.resolve(name, id)
	if err != nil {
		return catalog.Video{}, err
	}
	i := slices.Index(p.VideoIDs, id)
	if i < 0 {
		return catalog.Video{}, ErrVideoNotInPlaylist
	}
	p.VideoIDs = slices.Delete(p.VideoIDs, i, i+1)
	return v, nil
}

// Clear removes every video from the named playlist but keeps the playlist.
func (ps *Playlists) Clear(name string) error {
	p, ok := ps.store.GetPlaylist(NormalizeName(name))
	if !ok {
		return ErrPlaylistNotFound
	}
	p.VideoIDs = []catalog.VideoID{}
	return nil
}

// Delete removes the named playlist.
func (ps *Playlists) Delete(name string) error {
	key := NormalizeName(name)
	if _, ok := ps.store.GetPlaylist(key); !ok {
		return ErrPlaylistNotFound
	}
	ps.store.DeletePlaylist(key)
	return nil
}

// List returns copies of all playlists sorted by normalized name.
func (ps *Playlists) List() []Playlist {
	keys := ps.store.ListKeys()
	slices.Sort(keys)

	out := make([]Playlist, 0, len(keys))
	for _, k := range keys {
		if p, ok := ps.store.GetPlaylist(k); ok {
			out = append(out, p.snapshot())
		}
	}
	return out
}

// Len returns the number of playlists.
func (ps *Playlists) Len() int {
	return len(ps.store.ListKeys())
}

// resolve looks up both the playlist and the video, checking the playlist first.
func (ps *Playlists) resolve(name string, id catalog.VideoID) (*Playlist, catalog.Video, error) {
	p, ok := ps.store.GetPlaylist(NormalizeName(name))
	if !ok {
		return nil, catalog.Video{}, ErrPlaylistNotFound
	}
	v, ok := ps.catalog.GetVideo(id)
	if !ok {
		return nil, catalog.Video{}, ErrVideoNotFound
	}
	return p, v, nil
}
