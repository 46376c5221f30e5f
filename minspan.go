// Package minspan finds the shortest region of a haystack containing a needle as an in-order subsequence.
//
// A tight span means the needle's elements are clustered together, so among several matching haystacks the one with the smallest span is usually the best completion.
// For example, "curl" matches both "curl https://go.dev" and "colossally urban lapidarians", but the first has a span of 4 and the second a span of 18.
package minspan

// Find returns the shortest span of haystack which contains needle as a subsequence.
// Returns false if needle is not a subsequence of haystack.
//
// If more than one span has the minimum length, the leftmost one is returned.
// An empty needle always matches with the empty span [0,0).
//
// Find does not modify or retain either slice and is safe for concurrent use.
func Find[T comparable](needle, haystack []T) (Span, bool) {
	if len(needle) == 0 {
		return Span{}, true
	}

	var best Span
	found := false
	for next := 0; next < len(haystack); {
		end, ok := findEnd(needle, haystack, next)
		if !ok {
			break
		}
		span := Span{
			Start: findStart(needle, haystack, end),
			End:   end,
		}
		if !found || span.Len() < best.Len() {
			best = span
			found = true
		}
		if best.Len() == len(needle) {
			break // can't get any shorter
		}
		next = span.Start + 1
	}
	return best, found
}

// findEnd greedily matches needle against haystack[from:] and returns the exclusive end index of the match
func findEnd[T comparable](needle, haystack []T, from int) (int, bool) {
	n := 0
	for i := from; i < len(haystack); i++ {
		if haystack[i] == needle[n] {
			n++
			if n == len(needle) {
				return i + 1, true
			}
		}
	}
	return 0, false
}

// findStart matches needle backward from end and returns the largest start index such that haystack[start:end] still contains needle.
// needle must be a subsequence of haystack[:end].
func findStart[T comparable](needle, haystack []T, end int) int {
	n := len(needle) - 1
	for i := end - 1; ; i-- {
		if haystack[i] == needle[n] {
			if n == 0 {
				return i
			}
			n--
		}
	}
}

// IsSubsequence returns true if every element of needle appears in haystack in the same order
func IsSubsequence[T comparable](needle, haystack []T) bool {
	n := 0
	for i := 0; i < len(haystack) && n < len(needle); i++ {
		if haystack[i] == needle[n] {
			n++
		}
	}
	return n == len(needle)
}

// FindString is like Find, but compares the runes of needle and haystack.
// The returned span contains rune indices, not byte offsets. Use MatchString to retrieve the matching substring.
func FindString(needle, haystack string) (Span, bool) {
	return Find([]rune(needle), []rune(haystack))
}

// MatchString returns the shortest substring of haystack which contains needle's runes as a subsequence.
// Returns false if there is no match.
func MatchString(needle, haystack string) (string, bool) {
	span, found := FindString(needle, haystack)
	if !found {
		return "", false
	}
	start, end := byteOffsets(haystack, span)
	return haystack[start:end], true
}

// byteOffsets converts a span of rune indices in s into byte offsets
func byteOffsets(s string, span Span) (start, end int) {
	start, end = len(s), len(s)
	runeIndex := 0
	for byteIndex := range s {
		if runeIndex == span.Start {
			start = byteIndex
		}
		if runeIndex == span.End {
			end = byteIndex
			break
		}
		runeIndex++
	}
	return start, end
}
