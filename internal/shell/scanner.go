package shell

import (
	"bufio"
	"io"
)

// Scanner reads input one line at a time. A single Scanner is shared by the
// shell and the player so that a search selection consumes the next line.
type Scanner struct {
	sc *bufio.Scanner
}

// NewScanner returns a Scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{sc: bufio.NewScanner(r)}
}

// ReadLine implements player.LineReader.
func (s *Scanner) ReadLine() (string, bool) {
	if !s.sc.Scan() {
		return "", false
	}
	return s.sc.Text(), true
}

// Err returns the first non-EOF read error.
func (s *Scanner) Err() error {
	return s.sc.Err()
}
