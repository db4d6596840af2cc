package player

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"videoplayer/internal/catalog"
)

// reasons holds the user-facing wording for each sentinel error.
var reasons = []struct {
	err  error
	text string
}{
	{ErrVideoNotFound, "Video does not exist"},
	{ErrNoVideoPlaying, "No video is currently playing"},
	{ErrNotPaused, "Video is not paused"},
	{ErrPlaylistExists, "A playlist with the same name already exists"},
	{ErrPlaylistNotFound, "Playlist does not exist"},
	{ErrVideoAlreadyAdded, "Video already added"},
	{ErrVideoNotInPlaylist, "Video is not in playlist"},
}

func reason(err error) string {
	for _, r := range reasons {
		if errors.Is(err, r.err) {
			return r.text
		}
	}
	return err.Error()
}

// sortByTitle returns videos ordered by title, then by ID for equal titles.
func sortByTitle(videos []catalog.Video) []catalog.Video {
	out := slices.Clone(videos)
	slices.SortFunc(out, func(a, b catalog.Video) int {
		if c := cmp.Compare(a.Title, b.Title); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}

// numberedList renders "1) <video>" lines without a trailing newline.
func numberedList(videos []catalog.Video) string {
	var b strings.Builder
	for i, v := range videos {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("%d) %s", i+1, v))
	}
	return b.String()
}

// parseSelection converts a 1-based answer into an index into n results.
func parseSelection(answer string, n int) (int, bool) {
	i, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil || i < 1 || i > n {
		return 0, false
	}
	return i - 1, true
}
