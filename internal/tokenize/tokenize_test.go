package tokenize

import (
	"fmt"
	"strings"
	"testing"

	"github.com/johnstarich/go/minspan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		name       string
		expectMode Mode
		expectErr  string
	}{
		{name: "runes", expectMode: Runes},
		{name: "bytes", expectMode: Bytes},
		{name: "graphemes", expectMode: Graphemes},
		{name: "words", expectErr: `unknown token mode "words": must be one of runes, bytes, graphemes`},
		{name: "", expectErr: `unknown token mode "": must be one of runes, bytes, graphemes`},
	} {
		tc := tc // enable parallel sub-tests
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			mode, err := ParseMode(tc.name)
			if tc.expectErr != "" {
				assert.EqualError(t, err, tc.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectMode, mode)
			assert.Equal(t, tc.name, mode.String())
		})
	}
}

func TestModeStringUnknown(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "unknown", Mode(-1).String())
	assert.Equal(t, "unknown", Mode(42).String())
}

func TestSplit(t *testing.T) {
	t.Parallel()
	const (
		eAcute      = "\u00e9"  // precomposed
		eCombining  = "e\u0301" // e + combining acute accent
		familyEmoji = "\U0001F468\u200d\U0001F469\u200d\U0001F467"
		invalidUTF8 = "a\xffb"
	)
	for _, tc := range []struct {
		description string
		text        string
		mode        Mode
		expect      []string
	}{
		{
			description: "empty",
			text:        "",
			mode:        Runes,
			expect:      []string{},
		},
		{
			description: "ascii runes",
			text:        "curl",
			mode:        Runes,
			expect:      []string{"c", "u", "r", "l"},
		},
		{
			description: "multi-byte runes",
			text:        "a" + eAcute,
			mode:        Runes,
			expect:      []string{"a", eAcute},
		},
		{
			description: "multi-byte bytes",
			text:        eAcute,
			mode:        Bytes,
			expect:      []string{"\xc3", "\xa9"},
		},
		{
			description: "combining runes",
			text:        eCombining,
			mode:        Runes,
			expect:      []string{"e", "\u0301"},
		},
		{
			description: "combining graphemes",
			text:        eCombining + "x",
			mode:        Graphemes,
			expect:      []string{eCombining, "x"},
		},
		{
			description: "emoji graphemes",
			text:        "a" + familyEmoji + "b",
			mode:        Graphemes,
			expect:      []string{"a", familyEmoji, "b"},
		},
		{
			description: "invalid utf-8 runes",
			text:        invalidUTF8,
			mode:        Runes,
			expect:      []string{"a", "\xff", "b"},
		},
	} {
		tc := tc // enable parallel sub-tests
		t.Run(tc.description, func(t *testing.T) {
			t.Parallel()
			tokens := Split(tc.text, tc.mode)
			assert.Equal(t, tc.expect, tokens.Values)
			assert.Equal(t, len(tc.expect), tokens.Len())
			require.Len(t, tokens.Offsets, len(tc.expect)+1)
			for i, value := range tokens.Values {
				assert.Equal(t, value, tc.text[tokens.Offsets[i]:tokens.Offsets[i+1]], "token %d", i)
			}
			assert.Equal(t, len(tc.text), tokens.Offsets[len(tokens.Offsets)-1])
			assert.Equal(t, tc.text, strings.Join(tokens.Values, ""))
		})
	}
}

func TestByteRange(t *testing.T) {
	t.Parallel()
	const text = "x日y本z"
	for _, mode := range []Mode{Runes, Graphemes} {
		mode := mode // enable parallel sub-tests
		t.Run(fmt.Sprint(mode), func(t *testing.T) {
			t.Parallel()
			haystack := Split(text, mode)
			needle := Split("日本", mode)
			span, found := minspan.Find(needle.Values, haystack.Values)
			require.True(t, found)
			start, end := haystack.ByteRange(span)
			assert.Equal(t, "日y本", text[start:end])
		})
	}

	tokens := Split("abc", Bytes)
	start, end := tokens.ByteRange(minspan.Span{Start: 3, End: 3})
	assert.Equal(t, 3, start)
	assert.Equal(t, 3, end)
}
