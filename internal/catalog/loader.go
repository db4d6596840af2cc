package catalog

import (
	"bufio"
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

//go:embed videos.txt
var defaultLibrary []byte

var (
	// ErrInvalidRecord is returned when a catalog line cannot be turned into a valid Video.
	ErrInvalidRecord = errors.New("invalid video record")

	// ErrDuplicateVideo is returned when two catalog lines share the same video ID.
	ErrDuplicateVideo = errors.New("duplicate video id")
)

const fieldSeparator = "|"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("nospace", func(fl validator.FieldLevel) bool {
		return !strings.ContainsFunc(fl.Field().String(), unicode.IsSpace)
	})
	return v
}

// Default returns the catalog bundled with the binary.
func Default() (*InMemoryCatalog, error) {
	return Load(bytes.NewReader(defaultLibrary))
}

// LoadFile reads a catalog from the videos.txt file at path.
func LoadFile(path string) (*InMemoryCatalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load parses one video per line in the form
//
//	Title | video_id | #tag1 , #tag2
//
// The tags column may be missing or empty. Blank lines are skipped.
func Load(r io.Reader) (*InMemoryCatalog, error) {
	var videos []Video
	seen := make(map[VideoID]int)

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		v, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if first, dup := seen[v.ID]; dup {
			return nil, fmt.Errorf("line %d: %w: %q already defined on line %d", lineNo, ErrDuplicateVideo, v.ID, first)
		}
		seen[v.ID] = lineNo
		videos = append(videos, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	return NewInMemoryCatalog(videos...), nil
}

func parseLine(line string) (Video, error) {
	fields := strings.Split(line, fieldSeparator)
	if len(fields) < 2 || len(fields) > 3 {
		return Video{}, fmt.Errorf("%w: expected 2 or 3 %q separated fields, got %d", ErrInvalidRecord, fieldSeparator, len(fields))
	}

	v := Video{
		Title: strings.TrimSpace(fields[0]),
		ID:    VideoID(strings.TrimSpace(fields[1])),
		Tags:  []string{},
	}
	if len(fields) == 3 {
		for _, tag := range strings.Split(fields[2], ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				v.Tags = append(v.Tags, tag)
			}
		}
	}

	if err := validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return Video{}, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
		}
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			switch fe.Tag() {
			case "required":
				msgs = append(msgs, fmt.Sprintf("%s is required", fe.Field()))
			case "nospace":
				msgs = append(msgs, fmt.Sprintf("%s must not contain whitespace", fe.Field()))
			default:
				msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
			}
		}
		return Video{}, fmt.Errorf("%w: %s", ErrInvalidRecord, strings.Join(msgs, "; "))
	}
	return v, nil
}
