package minspan

import "fmt"

// Span is a range of haystack element indices with an inclusive Start and exclusive End index. i.e. [Start, End)
type Span struct {
	Start int // inclusive
	End   int // exclusive
}

// Len returns the distance between Start and End
func (s Span) Len() int {
	return s.End - s.Start
}

// Contains returns true if element index i is inside s
func (s Span) Contains(i int) bool {
	return s.Start <= i && i < s.End
}

func (s Span) String() string {
	return fmt.Sprintf("[%d,%d)", s.Start, s.End)
}

// Slice returns the portion of haystack covered by s.
// The result shares haystack's backing array, but its capacity is capped so appends never overwrite haystack.
func Slice[T any](haystack []T, s Span) []T {
	return haystack[s.Start:s.End:s.End]
}
