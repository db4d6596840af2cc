package player

import (
	"errors"
	"testing"
)

func TestPlayer_CreatePlaylist(t *testing.T) {
	p, out := newTestPlayer(t)

	if err := p.CreatePlaylist("My List"); err != nil {
		t.Fatalf("CreatePlaylist: %v", err)
	}
	if err := p.CreatePlaylist("my list"); !errors.Is(err, ErrPlaylistExists) {
		t.Errorf("expected ErrPlaylistExists, got %v", err)
	}
	assertLines(t, out,
		"Successfully created new playlist: My List",
		"Cannot create playlist: A playlist with the same name already exists",
	)

	p.ShowAllPlaylists()
	assertLines(t, out, "Showing all playlists:", "My List")
}

func TestPlayer_AddToPlaylist_messages(t *testing.T) {
	p, out := newTestPlayer(t)
	_ = p.CreatePlaylist("my_PLAYlist")
	lines(out)

	_ = p.AddToPlaylist("another_playlist", "amazing_cats_video_id")
	_ = p.AddToPlaylist("my_playlist", "does_not_exist")
	_ = p.AddToPlaylist("my_playlist", "amazing_cats_video_id")
	_ = p.AddToPlaylist("MY_playlist", "amazing_cats_video_id")

	assertLines(t, out,
		"Cannot add video to another_playlist: Playlist does not exist",
		"Cannot add video to my_playlist: Video does not exist",
		"Added video to my_playlist: Amazing Cats",
		"Cannot add video to MY_playlist: Video already added",
	)
}

func TestPlayer_RemoveFromPlaylist_messages(t *testing.T) {
	p, out := newTestPlayer(t)
	_ = p.CreatePlaylist("my_playlist")
	_ = p.AddToPlaylist("my_playlist", "amazing_cats_video_id")
	lines(out)

	_ = p.RemoveFromPlaylist("another_playlist", "amazing_cats_video_id")
	_ = p.RemoveFromPlaylist("my_playlist", "does_not_exist")
	_ = p.RemoveFromPlaylist("my_playlist", "amazing_cats_video_id")
	err := p.RemoveFromPlaylist("my_playlist", "amazing_cats_video_id")

	if !errors.Is(err, ErrVideoNotInPlaylist) {
		t.Errorf("second remove: expected ErrVideoNotInPlaylist, got %v", err)
	}
	assertLines(t, out,
		"Cannot remove video from another_playlist: Playlist does not exist",
		"Cannot remove video from my_playlist: Video does not exist",
		"Removed video from my_playlist: Amazing Cats",
		"Cannot remove video from my_playlist: Video is not in playlist",
	)
}

func TestPlayer_ShowPlaylist(t *testing.T) {
	p, out := newTestPlayer(t)

	_ = p.ShowPlaylist("my_playlist")
	assertLines(t, out, "Cannot show playlist my_playlist: Playlist does not exist")

	_ = p.CreatePlaylist("my_playlist")
	lines(out)
	_ = p.ShowPlaylist("my_playlist")
	assertLines(t, out, "Showing playlist: my_playlist", "No videos here yet")

	_ = p.AddToPlaylist("my_playlist", "nothing_video_id")
	_ = p.AddToPlaylist("my_playlist", "amazing_cats_video_id")
	lines(out)
	_ = p.ShowPlaylist("MY_PLAYLIST")
	assertLines(t, out,
		"Showing playlist: MY_PLAYLIST",
		"Video about nothing (nothing_video_id) []",
		"Amazing Cats (amazing_cats_video_id) [#cat #animal]",
	)
}

func TestPlayer_ShowAllPlaylists(t *testing.T) {
	p, out := newTestPlayer(t)

	p.ShowAllPlaylists()
	assertLines(t, out, "No playlists exist yet")

	_ = p.CreatePlaylist("my_cool_PLAYLIST")
	_ = p.CreatePlaylist("Another_playlist")
	lines(out)
	p.ShowAllPlaylists()
	assertLines(t, out, "Showing all playlists:", "Another_playlist", "my_cool_PLAYLIST")
}

func TestPlayer_playlist_lifecycle(t *testing.T) {
	p, out := newTestPlayer(t)

	_ = p.CreatePlaylist("Fun")
	if err := p.AddToPlaylist("Fun", "funny_dogs_video_id"); err != nil {
		t.Fatalf("AddToPlaylist: %v", err)
	}
	pl, _ := p.Playlists().Get("Fun")
	if len(pl.VideoIDs) != 1 || pl.VideoIDs[0] != "funny_dogs_video_id" {
		t.Fatalf("after add: got %v", pl.VideoIDs)
	}

	if err := p.ClearPlaylist("Fun"); err != nil {
		t.Fatalf("ClearPlaylist: %v", err)
	}
	pl, _ = p.Playlists().Get("Fun")
	if len(pl.VideoIDs) != 0 {
		t.Fatalf("after clear: got %v", pl.VideoIDs)
	}

	if err := p.DeletePlaylist("Fun"); err != nil {
		t.Fatalf("DeletePlaylist: %v", err)
	}
	if err := p.ShowPlaylist("Fun"); !errors.Is(err, ErrPlaylistNotFound) {
		t.Errorf("ShowPlaylist after delete: got %v", err)
	}
	if err := p.ClearPlaylist("Fun"); !errors.Is(err, ErrPlaylistNotFound) {
		t.Errorf("ClearPlaylist after delete: got %v", err)
	}
	if err := p.DeletePlaylist("Fun"); !errors.Is(err, ErrPlaylistNotFound) {
		t.Errorf("DeletePlaylist after delete: got %v", err)
	}

	assertLines(t, out,
		"Successfully created new playlist: Fun",
		"Added video to Fun: Funny Dogs",
		"Successfully removed all videos from Fun",
		"Deleted playlist: Fun",
		"Cannot show playlist Fun: Playlist does not exist",
		"Cannot clear playlist Fun: Playlist does not exist",
		"Cannot delete playlist Fun: Playlist does not exist",
	)
}
