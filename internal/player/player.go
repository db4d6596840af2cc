package player

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"

	"videoplayer/internal/catalog"
	"videoplayer/internal/platform/metrics"
)

var (
	// ErrVideoNotFound is returned when a video ID is not in the catalog.
	ErrVideoNotFound = errors.New("video does not exist")

	// ErrNoVideoPlaying is returned by operations that need a loaded video.
	ErrNoVideoPlaying = errors.New("no video is currently playing")

	// ErrAlreadyPaused is returned when pausing a paused video.
	ErrAlreadyPaused = errors.New("video already paused")

	// ErrNotPaused is returned when continuing a video that is playing.
	ErrNotPaused = errors.New("video is not paused")

	// ErrNoVideos is returned by PlayRandom on an empty catalog.
	ErrNoVideos = errors.New("no videos available")

	// ErrNotImplemented is returned by the moderation operations.
	ErrNotImplemented = errors.New("not implemented")
)

// LineReader supplies single lines of user input.
// ok is false once input is exhausted.
type LineReader interface {
	ReadLine() (line string, ok bool)
}

// Player holds the playback state and the playlists, and reports the outcome
// of every operation as status lines on its output writer. Operations also
// return a sentinel error on failure; the status line is the user-facing part.
//
// A Player is not safe for concurrent use.
type Player struct {
	catalog   catalog.Catalog
	playlists *Playlists
	state     PlaybackState

	out     io.Writer
	in      LineReader
	log     *slog.Logger
	metrics *metrics.Metrics
}

// New returns a Player over cat that writes status lines to out and reads
// search selections from in. in and m may be nil.
func New(cat catalog.Catalog, out io.Writer, in LineReader, log *slog.Logger, m *metrics.Metrics) *Player {
	return &Player{
		catalog:   cat,
		playlists: NewPlaylists(cat),
		out:       out,
		in:        in,
		log:       log,
		metrics:   m,
	}
}

// State returns a snapshot of the playback state.
func (p *Player) State() PlaybackState {
	return p.state
}

// Playlists returns the playlist manager owned by the player.
func (p *Player) Playlists() *Playlists {
	return p.playlists
}

// NumberOfVideos prints the catalog size.
func (p *Player) NumberOfVideos() int {
	n := len(p.catalog.AllVideos())
	p.printf("%d videos in the library", n)
	return n
}

// ShowAllVideos prints every catalog video sorted by title.
func (p *Player) ShowAllVideos() {
	videos := sortByTitle(p.catalog.AllVideos())
	p.printf("Here's a list of all available videos:")
	for _, v := range videos {
		p.printf("%s", v)
	}
}

// Play loads and starts the video with the given id, stopping whatever was
// loaded before. An unknown id leaves the state untouched.
func (p *Player) Play(id catalog.VideoID) error {
	v, ok := p.catalog.GetVideo(id)
	if !ok {
		p.fail("Cannot play video", ErrVideoNotFound)
		return ErrVideoNotFound
	}

	if cur, ok := p.state.Current(); ok {
		p.printf("Stopping video: %s", cur.Title)
	}
	p.printf("Playing video: %s", v.Title)
	p.state = PlaybackState{Status: StatusPlaying, current: &v}

	p.metrics.IncVideosPlayed()
	p.log.Debug("video started", slog.String("video_id", string(v.ID)))
	return nil
}

// Stop unloads the current video.
func (p *Player) Stop() error {
	cur, ok := p.state.Current()
	if !ok {
		p.fail("Cannot stop video", ErrNoVideoPlaying)
		return ErrNoVideoPlaying
	}

	p.printf("Stopping video: %s", cur.Title)
	p.state = PlaybackState{Status: StatusStopped}
	p.log.Debug("video stopped", slog.String("video_id", string(cur.ID)))
	return nil
}

// PlayRandom plays a video chosen uniformly from the catalog.
func (p *Player) PlayRandom() error {
	videos := p.catalog.AllVideos()
	if len(videos) == 0 {
		p.printf("No videos available")
		return ErrNoVideos
	}
	return p.Play(videos[rand.IntN(len(videos))].ID)
}

// Pause pauses a playing video.
func (p *Player) Pause() error {
	switch p.state.Status {
	case StatusPlaying:
		cur, _ := p.state.Current()
		p.printf("Pausing video: %s", cur.Title)
		p.state.Status = StatusPaused
		return nil
	case StatusPaused:
		cur, _ := p.state.Current()
		p.printf("Video already paused: %s", cur.Title)
		return ErrAlreadyPaused
	default:
		p.fail("Cannot pause video", ErrNoVideoPlaying)
		return ErrNoVideoPlaying
	}
}

// Continue resumes a paused video.
func (p *Player) Continue() error {
	switch p.state.Status {
	case StatusPaused:
		cur, _ := p.state.Current()
		p.printf("Continuing video: %s", cur.Title)
		p.state.Status = StatusPlaying
		return nil
	case StatusPlaying:
		p.fail("Cannot continue video", ErrNotPaused)
		return ErrNotPaused
	default:
		p.fail("Cannot continue video", ErrNoVideoPlaying)
		return ErrNoVideoPlaying
	}
}

// ShowPlaying prints the loaded video and whether it is paused.
func (p *Player) ShowPlaying() {
	cur, ok := p.state.Current()
	switch {
	case ok && p.state.Status == StatusPlaying:
		p.printf("Currently playing: %s", cur)
	case ok && p.state.Status == StatusPaused:
		p.printf("Currently playing: %s - PAUSED", cur)
	default:
		p.printf("No video is currently playing")
	}
}

// FlagVideo is not supported yet.
func (p *Player) FlagVideo(id catalog.VideoID, reason string) error {
	p.log.Debug("flag video requested", slog.String("video_id", string(id)), slog.String("reason", reason))
	p.printf("Cannot flag video: Moderation is not supported yet")
	return ErrNotImplemented
}

// AllowVideo is not supported yet.
func (p *Player) AllowVideo(id catalog.VideoID) error {
	p.log.Debug("allow video requested", slog.String("video_id", string(id)))
	p.printf("Cannot allow video: Moderation is not supported yet")
	return ErrNotImplemented
}

func (p *Player) printf(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// fail prints "<prefix>: <reason>" for a sentinel error.
func (p *Player) fail(prefix string, err error) {
	p.printf("%s: %s", prefix, reason(err))
}
