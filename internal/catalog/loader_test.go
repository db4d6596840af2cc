package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	input := `
Funny Dogs | funny_dogs_video_id |  #dog , #animal

Video about nothing | nothing_video_id |
Bare | bare_id
`
	c, err := Load(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Len() != 3 {
		t.Fatalf("expected 3 videos, got %d", c.Len())
	}

	dogs, ok := c.GetVideo("funny_dogs_video_id")
	if !ok {
		t.Fatal("funny_dogs_video_id not loaded")
	}
	if dogs.Title != "Funny Dogs" {
		t.Errorf("title: got %q", dogs.Title)
	}
	if dogs.JoinedTags() != "#dog #animal" {
		t.Errorf("tags: got %q", dogs.JoinedTags())
	}

	nothing, _ := c.GetVideo("nothing_video_id")
	if len(nothing.Tags) != 0 {
		t.Errorf("expected no tags, got %v", nothing.Tags)
	}
	bare, _ := c.GetVideo("bare_id")
	if bare.Title != "Bare" || len(bare.Tags) != 0 {
		t.Errorf("bare: got %+v", bare)
	}
}

func TestLoad_errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
		wantMsg string
	}{
		{"single_field", "Just a title", ErrInvalidRecord, "line 1"},
		{"too_many_fields", "a | b | c | d", ErrInvalidRecord, "line 1"},
		{"missing_id", "Title |  | #x", ErrInvalidRecord, "id is required"},
		{"missing_title", " | some_id", ErrInvalidRecord, "title is required"},
		{"id_with_space", "Title | some id", ErrInvalidRecord, "id must not contain whitespace"},
		{"tag_with_space", "Title | id1 | #a b", ErrInvalidRecord, "must not contain whitespace"},
		{"duplicate", "One | id1\nTwo | id1", ErrDuplicateVideo, "line 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.input))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q should mention %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "videos.txt")
	if err := os.WriteFile(path, []byte("Clip | clip_id | #fun\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if _, ok := c.GetVideo("clip_id"); !ok {
		t.Error("clip_id not loaded")
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.txt")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected ErrNotExist, got %v", err)
	}
}

func TestDefault(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if c.Len() != 5 {
		t.Errorf("expected 5 bundled videos, got %d", c.Len())
	}
	if v, ok := c.GetVideo("amazing_cats_video_id"); !ok || v.Title != "Amazing Cats" {
		t.Errorf("amazing_cats_video_id: ok=%v got %+v", ok, v)
	}
}
