// Package tokenize splits text into comparable elements for subsequence matching
package tokenize

import (
	"strings"
	"unicode/utf8"

	"github.com/johnstarich/go/minspan"
	"github.com/pkg/errors"
	"github.com/rivo/uniseg"
)

// Mode determines the kind of element text is split into
type Mode int

// Supported modes
const (
	Runes Mode = iota
	Bytes
	Graphemes
)

var modeNames = []string{
	Runes:     "runes",
	Bytes:     "bytes",
	Graphemes: "graphemes",
}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return "unknown"
	}
	return modeNames[m]
}

// ParseMode returns the Mode named s
func ParseMode(s string) (Mode, error) {
	for mode, name := range modeNames {
		if s == name {
			return Mode(mode), nil
		}
	}
	return 0, errors.Errorf("unknown token mode %q: must be one of %s", s, strings.Join(modeNames, ", "))
}

// Tokens are the elements of some text, along with each element's byte offset.
// Values[i] is always equal to text[Offsets[i]:Offsets[i+1]], and the final offset is len(text).
type Tokens struct {
	Values  []string
	Offsets []int
}

// Split breaks s into Tokens according to mode.
// Invalid UTF-8 in Runes mode produces one token per invalid byte.
func Split(s string, mode Mode) Tokens {
	switch mode {
	case Bytes:
		return splitBytes(s)
	case Graphemes:
		return splitGraphemes(s)
	default:
		return splitRunes(s)
	}
}

func splitBytes(s string) Tokens {
	tokens := newTokens(len(s))
	for i := 0; i < len(s); i++ {
		tokens.add(s, i, i+1)
	}
	return tokens.finish(s)
}

func splitRunes(s string) Tokens {
	tokens := newTokens(utf8.RuneCountInString(s))
	for i := 0; i < len(s); {
		_, size := utf8.DecodeRuneInString(s[i:])
		tokens.add(s, i, i+size)
		i += size
	}
	return tokens.finish(s)
}

func splitGraphemes(s string) Tokens {
	tokens := newTokens(uniseg.GraphemeClusterCount(s))
	graphemes := uniseg.NewGraphemes(s)
	for graphemes.Next() {
		start, end := graphemes.Positions()
		tokens.add(s, start, end)
	}
	return tokens.finish(s)
}

func newTokens(size int) Tokens {
	return Tokens{
		Values:  make([]string, 0, size),
		Offsets: make([]int, 0, size+1),
	}
}

func (t *Tokens) add(s string, start, end int) {
	t.Values = append(t.Values, s[start:end])
	t.Offsets = append(t.Offsets, start)
}

func (t Tokens) finish(s string) Tokens {
	t.Offsets = append(t.Offsets, len(s))
	return t
}

// Len returns the number of tokens
func (t Tokens) Len() int {
	return len(t.Values)
}

// ByteRange converts a span of token indices into byte offsets of the original text
func (t Tokens) ByteRange(span minspan.Span) (start, end int) {
	return t.Offsets[span.Start], t.Offsets[span.End]
}
