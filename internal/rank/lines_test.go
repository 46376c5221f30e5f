package rank

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLines(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		description string
		input       string
		expect      []string
	}{
		{
			description: "empty",
			input:       "",
			expect:      nil,
		},
		{
			description: "trailing newline",
			input:       "a\nb\n",
			expect:      []string{"a", "b"},
		},
		{
			description: "no trailing newline",
			input:       "a\nb",
			expect:      []string{"a", "b"},
		},
		{
			description: "carriage returns",
			input:       "a\r\nb\r\n",
			expect:      []string{"a", "b"},
		},
		{
			description: "blank lines",
			input:       "a\n\nb\n",
			expect:      []string{"a", "", "b"},
		},
	} {
		tc := tc // enable parallel sub-tests
		t.Run(tc.description, func(t *testing.T) {
			t.Parallel()
			lines, err := ReadLines(strings.NewReader(tc.input), 0)
			require.NoError(t, err)
			assert.Equal(t, tc.expect, lines)
		})
	}
}

func TestReadLinesMaxBytes(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		description  string
		input        string
		maxLineBytes int
		expectLines  []string
		expectErr    string
	}{
		{
			description:  "default limit exceeded",
			input:        strings.Repeat("a", DefaultMaxLineBytes+2),
			maxLineBytes: 0,
			expectErr:    "read lines: bufio.Scanner: token too long",
		},
		{
			description:  "long line within default limit",
			input:        strings.Repeat("a", 100_000) + "\n",
			maxLineBytes: 0,
			expectLines:  []string{strings.Repeat("a", 100_000)},
		},
		{
			description:  "exactly at limit",
			input:        "abcd\nefgh\n",
			maxLineBytes: 4,
			expectLines:  []string{"abcd", "efgh"},
		},
		{
			description:  "over limit",
			input:        "abcd\nefghi\n",
			maxLineBytes: 4,
			expectErr:    "read lines: bufio.Scanner: token too long",
		},
	} {
		tc := tc // enable parallel sub-tests
		t.Run(tc.description, func(t *testing.T) {
			t.Parallel()
			lines, err := ReadLines(strings.NewReader(tc.input), tc.maxLineBytes)
			if tc.expectErr != "" {
				assert.EqualError(t, err, tc.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectLines, lines)
		})
	}
}
