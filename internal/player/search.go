package player

import (
	"strings"

	"github.com/samber/lo"

	"videoplayer/internal/catalog"
)

const tagMarker = "#"

// SearchVideos lists the videos whose title contains term, ignoring case, and
// offers to play one of them. It returns the matches in the order shown.
func (p *Player) SearchVideos(term string) []catalog.Video {
	needle := strings.ToLower(term)
	matches := lo.Filter(p.catalog.AllVideos(), func(v catalog.Video, _ int) bool {
		return strings.Contains(strings.ToLower(v.Title), needle)
	})
	return p.offerResults(term, matches)
}

// SearchVideosWithTag lists the videos carrying tag, ignoring case, and offers
// to play one of them. A query without the leading '#' never matches.
func (p *Player) SearchVideosWithTag(tag string) []catalog.Video {
	if !strings.HasPrefix(tag, tagMarker) {
		return p.offerResults(tag, nil)
	}
	needle := strings.ToLower(tag)
	matches := lo.Filter(p.catalog.AllVideos(), func(v catalog.Video, _ int) bool {
		return lo.ContainsBy(v.Tags, func(t string) bool {
			return strings.ToLower(t) == needle
		})
	})
	return p.offerResults(tag, matches)
}

// offerResults prints the numbered matches, reads one line of input and plays
// the selected video. Invalid or missing answers are ignored.
func (p *Player) offerResults(query string, matches []catalog.Video) []catalog.Video {
	if len(matches) == 0 {
		p.printf("No search results for %s", query)
		return nil
	}

	matches = sortByTitle(matches)
	p.printf("Here are the results for %s:", query)
	p.printf("%s", numberedList(matches))
	p.printf("Would you like to play any of the above? If yes, specify the number of the video.")
	p.printf("If your answer is not a valid number, we will assume it's a no.")

	if p.in == nil {
		return matches
	}
	answer, ok := p.in.ReadLine()
	if !ok {
		return matches
	}
	if i, ok := parseSelection(answer, len(matches)); ok {
		_ = p.Play(matches[i].ID)
	}
	return matches
}
