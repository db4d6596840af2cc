package catalog

import (
	"fmt"
	"slices"
	"strings"
)

// VideoID uniquely identifies a video in the catalog.
type VideoID string

// Video is an immutable catalog record.
type Video struct {
	ID    VideoID  `json:"id" validate:"required,nospace"`
	Title string   `json:"title" validate:"required"`
	Tags  []string `json:"tags" validate:"dive,required,nospace"`
}

// JoinedTags returns the tags separated by a single space.
func (v Video) JoinedTags() string {
	return strings.Join(v.Tags, " ")
}

// String renders the video as "Title (id) [tag1 tag2]".
func (v Video) String() string {
	return fmt.Sprintf("%s (%s) [%s]", v.Title, v.ID, v.JoinedTags())
}

func (v Video) clone() Video {
	v.Tags = slices.Clone(v.Tags)
	return v
}
