package rank

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// DefaultMaxLineBytes is the longest line ReadLines accepts when no limit is given
const DefaultMaxLineBytes = 1 << 20

// ReadLines reads newline-separated candidates from r. Trailing carriage returns are removed.
// Lines longer than maxLineBytes fail with an error. Uses DefaultMaxLineBytes if maxLineBytes <= 0.
func ReadLines(r io.Reader, maxLineBytes int) ([]string, error) {
	if maxLineBytes <= 0 {
		maxLineBytes = DefaultMaxLineBytes
	}
	scanner := bufio.NewScanner(r)
	// leave room for the newline, so a line of exactly maxLineBytes is accepted
	scanner.Buffer(nil, maxLineBytes+1)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	return lines, errors.Wrap(scanner.Err(), "read lines")
}
