package player

import (
	"log/slog"

	"videoplayer/internal/catalog"
)

// CreatePlaylist creates an empty playlist. Names are unique ignoring case.
func (p *Player) CreatePlaylist(name string) error {
	if err := p.playlists.Create(name); err != nil {
		p.fail("Cannot create playlist", err)
		return err
	}
	p.printf("Successfully created new playlist: %s", name)
	p.metrics.SetPlaylists(p.playlists.Len())
	p.log.Debug("playlist created", slog.String("playlist", name))
	return nil
}

// AddToPlaylist appends a video to a playlist.
func (p *Player) AddToPlaylist(name string, id catalog.VideoID) error {
	v, err := p.playlists.Add(name, id)
	if err != nil {
		p.fail("Cannot add video to "+name, err)
		return err
	}
	p.printf("Added video to %s: %s", name, v.Title)
	return nil
}

// RemoveFromPlaylist removes a video from a playlist.
func (p *Player) RemoveFromPlaylist(name string, id catalog.VideoID) error {
	v, err := p.playlists.Remove(name, id)
	if err != nil {
		p.fail("Cannot remove video from "+name, err)
		return err
	}
	p.printf("Removed video from %s: %s", name, v.Title)
	return nil
}

// ClearPlaylist removes all videos from a playlist.
func (p *Player) ClearPlaylist(name string) error {
	if err := p.playlists.Clear(name); err != nil {
		p.fail("Cannot clear playlist "+name, err)
		return err
	}
	p.printf("Successfully removed all videos from %s", name)
	return nil
}

// DeletePlaylist deletes a playlist.
func (p *Player) DeletePlaylist(name string) error {
	if err := p.playlists.Delete(name); err != nil {
		p.fail("Cannot delete playlist "+name, err)
		return err
	}
	p.printf("Deleted playlist: %s", name)
	p.metrics.SetPlaylists(p.playlists.Len())
	p.log.Debug("playlist deleted", slog.String("playlist", name))
	return nil
}

// ShowAllPlaylists prints the display names of all playlists sorted by
// normalized name.
func (p *Player) ShowAllPlaylists() {
	all := p.playlists.List()
	if len(all) == 0 {
		p.printf("No playlists exist yet")
		return
	}
	p.printf("Showing all playlists:")
	for _, pl := range all {
		p.printf("%s", pl.Name)
	}
}

// ShowPlaylist prints the videos of a playlist in insertion order.
func (p *Player) ShowPlaylist(name string) error {
	pl, err := p.playlists.Get(name)
	if err != nil {
		p.fail("Cannot show playlist "+name, err)
		return err
	}
	p.printf("Showing playlist: %s", name)
	if len(pl.VideoIDs) == 0 {
		p.printf("No videos here yet")
		return nil
	}
	for _, id := range pl.VideoIDs {
		if v, ok := p.catalog.GetVideo(id); ok {
			p.printf("%s", v)
		} else {
			p.printf("%s", id)
		}
	}
	return nil
}
