// Package report renders ranked matches in various formats.
package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/johnstarich/go/minspan/internal/rank"
	"github.com/pkg/errors"
)

// Options contains report rendering options
type Options struct {
	Format Format
	// Color highlights each result's matched span
	Color bool
	// ShowSpan prefixes plain results with their span length and range. Tables always show spans.
	ShowSpan bool
}

// Write renders results to w
func Write(w io.Writer, results []rank.Result, options Options) error {
	highlight := highlightColor(options.Color)
	var err error
	switch options.Format {
	case FormatTable:
		err = writeTable(w, results, highlight)
	default:
		err = writePlain(w, results, options.ShowSpan, highlight)
	}
	return errors.Wrap(err, "write report")
}

func writePlain(w io.Writer, results []rank.Result, showSpan bool, highlight *color.Color) error {
	for _, r := range results {
		line := highlightMatch(r, highlight)
		var err error
		if showSpan {
			_, err = fmt.Fprintln(w, r.Span.Len(), r.Span, line)
		} else {
			_, err = fmt.Fprintln(w, line)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func writeTable(w io.Writer, results []rank.Result, highlight *color.Color) error {
	tbl := table.NewWriter()
	const lenColumnNumber = 1
	tbl.SetColumnConfigs([]table.ColumnConfig{
		{Number: lenColumnNumber, Align: text.AlignRight},
	})
	tbl.AppendHeader(table.Row{"Len", "Span", "Line"})
	for _, r := range results {
		tbl.AppendRow(table.Row{
			r.Span.Len(),
			r.Span.String(),
			highlightMatch(r, highlight),
		})
	}
	_, err := fmt.Fprintln(w, renderTable(tbl))
	return err
}

// highlightMatch returns the result's text with its matched span colorized
func highlightMatch(r rank.Result, highlight *color.Color) string {
	if r.ByteStart == r.ByteEnd {
		return r.Text
	}
	return r.Text[:r.ByteStart] + highlight.Sprint(r.Match()) + r.Text[r.ByteEnd:]
}
