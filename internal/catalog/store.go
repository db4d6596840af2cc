package catalog

// Catalog is the read-only view of the video library used by the player.
// AllVideos makes no promise about ordering.
type Catalog interface {
	AllVideos() []Video
	GetVideo(id VideoID) (Video, bool)
}

// InMemoryCatalog is a map-backed Catalog.
type InMemoryCatalog struct {
	videos map[VideoID]Video
}

// NewInMemoryCatalog returns a catalog holding the given videos.
// Later entries replace earlier ones with the same ID.
func NewInMemoryCatalog(videos ...Video) *InMemoryCatalog {
	c := &InMemoryCatalog{
		videos: make(map[VideoID]Video, len(videos)),
	}
	for _, v := range videos {
		c.videos[v.ID] = v.clone()
	}
	return c
}

// AllVideos implements Catalog.AllVideos. The returned slice is a copy.
func (c *InMemoryCatalog) AllVideos() []Video {
	out := make([]Video, 0, len(c.videos))
	for _, v := range c.videos {
		out = append(out, v.clone())
	}
	return out
}

// GetVideo implements Catalog.GetVideo.
func (c *InMemoryCatalog) GetVideo(id VideoID) (Video, bool) {
	v, ok := c.videos[id]
	if !ok {
		return Video{}, false
	}
	return v.clone(), true
}

// Len returns the number of videos in the catalog.
func (c *InMemoryCatalog) Len() int {
	return len(c.videos)
}
