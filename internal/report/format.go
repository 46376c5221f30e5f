package report

import (
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
)

// Format represents a report's format
type Format int

// Supported formats
const (
	FormatPlain Format = iota
	FormatTable
)

var formatNames = []string{
	FormatPlain: "plain",
	FormatTable: "table",
}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return "unknown"
	}
	return formatNames[f]
}

// ParseFormat returns the Format named s
func ParseFormat(s string) (Format, error) {
	for format, name := range formatNames {
		if s == name {
			return Format(format), nil
		}
	}
	return 0, errors.Errorf("unknown format %q: must be one of %s", s, strings.Join(formatNames, ", "))
}

// renderTable returns a formatted table according to the format's rules
func renderTable(tbl table.Writer) string {
	tbl.SetStyle(table.StyleLight)
	return tbl.Render()
}

// highlightColor returns the color for matched spans. Color is toggled per instance to leave color.NoColor untouched.
func highlightColor(enabled bool) *color.Color {
	c := color.New(color.Bold, color.FgGreen)
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}
