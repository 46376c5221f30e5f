// Package datasize parses and formats quantities of bytes with SI and IEC units.
package datasize

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type unit struct {
	name  string
	bytes float64
}

// ordered by descending magnitude within each system, so formatting picks the largest unit first
//
//nolint:gochecknoglobals // Effectively constant.
var (
	iecUnits = []unit{
		{name: "GiB", bytes: 1 << 30},
		{name: "MiB", bytes: 1 << 20},
		{name: "KiB", bytes: 1 << 10},
	}
	siUnits = []unit{
		{name: "GB", bytes: 1e9},
		{name: "MB", bytes: 1e6},
		{name: "kB", bytes: 1e3},
	}
	byteUnit = unit{name: "B", bytes: 1}
)

// Parse returns the number of bytes in s, e.g. "512", "64KiB", "1.5 MB".
// A missing unit means bytes.
func Parse(s string) (int64, error) {
	trimmed := strings.TrimSpace(s)
	number, u := splitUnit(trimmed)
	value, err := strconv.ParseFloat(strings.TrimSpace(number), 64)
	if err != nil {
		return 0, errors.Errorf("invalid data size %q: expected a number followed by an optional unit like KiB or MB", s)
	}
	if value < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, errors.Errorf("invalid data size %q: must be a finite, non-negative number", s)
	}
	bytes := value * u.bytes
	if bytes >= math.MaxInt64 {
		return 0, errors.Errorf("invalid data size %q: too large", s)
	}
	return int64(bytes), nil
}

func splitUnit(s string) (number string, u unit) {
	for _, candidate := range append(append([]unit{}, iecUnits...), siUnits...) {
		if strings.HasSuffix(s, candidate.name) {
			return strings.TrimSuffix(s, candidate.name), candidate
		}
	}
	return strings.TrimSuffix(s, byteUnit.name), byteUnit
}

// FormatIEC formats bytes with the largest IEC unit which keeps the value at least 1
func FormatIEC(bytes int64) string {
	for _, u := range iecUnits {
		if math.Abs(float64(bytes)) >= u.bytes {
			return fmt.Sprintf("%g %s", float64(bytes)/u.bytes, u.name)
		}
	}
	return fmt.Sprintf("%d %s", bytes, byteUnit.name)
}
