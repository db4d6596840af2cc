package shell

import (
	"strings"

	"videoplayer/internal/catalog"
	"videoplayer/internal/player"
)

const unlimited = -1

type command struct {
	name    string
	usage   string
	help    string
	minArgs int
	maxArgs int
	run     func(args []string) error
}

func (c command) accepts(n int) bool {
	return n >= c.minArgs && (c.maxArgs == unlimited || n <= c.maxArgs)
}

// noErr adapts operations that cannot fail.
func noErr(f func()) func([]string) error {
	return func([]string) error {
		f()
		return nil
	}
}

func commandTable(p *player.Player) []command {
	return []command{
		{name: "NUMBER_OF_VIDEOS", help: "Shows how many videos are in the library.",
			run: func([]string) error { p.NumberOfVideos(); return nil }},
		{name: "SHOW_ALL_VIDEOS", help: "Lists all videos from the library.",
			run: noErr(p.ShowAllVideos)},
		{name: "PLAY", usage: "<video_id>", help: "Plays specified video.", minArgs: 1, maxArgs: 1,
			run: func(a []string) error { return p.Play(catalog.VideoID(a[0])) }},
		{name: "PLAY_RANDOM", help: "Plays a random video from the library.",
			run: func([]string) error { return p.PlayRandom() }},
		{name: "STOP", help: "Stop the current video.",
			run: func([]string) error { return p.Stop() }},
		{name: "PAUSE", help: "Pause the current video.",
			run: func([]string) error { return p.Pause() }},
		{name: "CONTINUE", help: "Resume the current paused video.",
			run: func([]string) error { return p.Continue() }},
		{name: "SHOW_PLAYING", help: "Displays the title, video_id, video tags and paused status of the video that is currently playing (or paused).",
			run: noErr(p.ShowPlaying)},
		{name: "CREATE_PLAYLIST", usage: "<playlist_name>", help: "Creates a new (empty) playlist with the provided name.", minArgs: 1, maxArgs: 1,
			run: func(a []string) error { return p.CreatePlaylist(a[0]) }},
		{name: "ADD_TO_PLAYLIST", usage: "<playlist_name> <video_id>", help: "Adds the requested video to the playlist.", minArgs: 2, maxArgs: 2,
			run: func(a []string) error { return p.AddToPlaylist(a[0], catalog.VideoID(a[1])) }},
		{name: "REMOVE_FROM_PLAYLIST", usage: "<playlist_name> <video_id>", help: "Removes the specified video from the specified playlist.", minArgs: 2, maxArgs: 2,
			run: func(a []string) error { return p.RemoveFromPlaylist(a[0], catalog.VideoID(a[1])) }},
		{name: "CLEAR_PLAYLIST", usage: "<playlist_name>", help: "Removes all the videos from the playlist.", minArgs: 1, maxArgs: 1,
			run: func(a []string) error { return p.ClearPlaylist(a[0]) }},
		{name: "DELETE_PLAYLIST", usage: "<playlist_name>", help: "Deletes the playlist.", minArgs: 1, maxArgs: 1,
			run: func(a []string) error { return p.DeletePlaylist(a[0]) }},
		{name: "SHOW_PLAYLIST", usage: "<playlist_name>", help: "List all the videos in this playlist.", minArgs: 1, maxArgs: 1,
			run: func(a []string) error { return p.ShowPlaylist(a[0]) }},
		{name: "SHOW_ALL_PLAYLISTS", help: "Display all the available playlists.",
			run: noErr(p.ShowAllPlaylists)},
		{name: "SEARCH_VIDEOS", usage: "<search_term>", help: "Display all the videos whose titles contain the search_term.", minArgs: 1, maxArgs: 1,
			run: func(a []string) error { p.SearchVideos(a[0]); return nil }},
		{name: "SEARCH_VIDEOS_WITH_TAG", usage: "<tag_name>", help: "Display all videos whose tags contains the provided tag.", minArgs: 1, maxArgs: 1,
			run: func(a []string) error { p.SearchVideosWithTag(a[0]); return nil }},
		{name: "FLAG_VIDEO", usage: "<video_id> [flag_reason]", help: "Mark a video as flagged.", minArgs: 1, maxArgs: unlimited,
			run: func(a []string) error { return p.FlagVideo(catalog.VideoID(a[0]), strings.Join(a[1:], " ")) }},
		{name: "ALLOW_VIDEO", usage: "<video_id>", help: "Removes a flag from a video.", minArgs: 1, maxArgs: 1,
			run: func(a []string) error { return p.AllowVideo(catalog.VideoID(a[0])) }},
	}
}
