package player

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"videoplayer/internal/catalog"
)

// scriptedInput answers ReadLine from a fixed list of lines.
type scriptedInput struct {
	lines []string
}

func (s *scriptedInput) ReadLine() (string, bool) {
	if len(s.lines) == 0 {
		return "", false
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, true
}

func testCatalog() *catalog.InMemoryCatalog {
	return catalog.NewInMemoryCatalog(
		catalog.Video{ID: "funny_dogs_video_id", Title: "Funny Dogs", Tags: []string{"#dog", "#animal"}},
		catalog.Video{ID: "amazing_cats_video_id", Title: "Amazing Cats", Tags: []string{"#cat", "#animal"}},
		catalog.Video{ID: "another_cat_video_id", Title: "Another Cat Video", Tags: []string{"#cat", "#animal"}},
		catalog.Video{ID: "life_at_google_video_id", Title: "Life at Google", Tags: []string{"#google", "#career"}},
		catalog.Video{ID: "nothing_video_id", Title: "Video about nothing"},
	)
}

func newTestPlayer(t *testing.T, answers ...string) (*Player, *bytes.Buffer) {
	t.Helper()
	return newTestPlayerWithCatalog(t, testCatalog(), answers...)
}

func newTestPlayerWithCatalog(t *testing.T, cat catalog.Catalog, answers ...string) (*Player, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	p := New(cat, &out, &scriptedInput{lines: answers}, slog.New(slog.DiscardHandler), nil)
	return p, &out
}

// lines returns the output written so far and resets the buffer.
func lines(out *bytes.Buffer) []string {
	s := strings.TrimRight(out.String(), "\n")
	out.Reset()
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func assertLines(t *testing.T, out *bytes.Buffer, want ...string) {
	t.Helper()
	got := lines(out)
	if len(got) != len(want) {
		t.Fatalf("output lines: got %q want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d: got %q want %q", i, got[i], want[i])
		}
	}
}
