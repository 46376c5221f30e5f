package main

import (
	"fmt"

	"github.com/hack-pad/hackpadfs"
	"github.com/johnstarich/go/minspan/internal/datasize"
	"github.com/johnstarich/go/minspan/internal/rank"
	"github.com/johnstarich/go/minspan/internal/report"
	"github.com/johnstarich/go/minspan/internal/tokenize"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

const maxMaxLineBytes = 1 << 30

var errNoMatch = errors.New("no matches")

// Args contains all flag and argument values for a search
type Args struct {
	Needle       string
	File         string
	MaxLineBytes int
	Verbose      bool
	Rank         rank.Options
	Report       report.Options
}

func parseArgs(c *cli.Context) (Args, error) {
	if c.NArg() != 1 {
		return Args{}, errors.Errorf("expected exactly 1 NEEDLE argument, got %d", c.NArg())
	}
	mode, err := tokenize.ParseMode(c.String(tokensFlag))
	if err != nil {
		return Args{}, err
	}
	format, err := report.ParseFormat(c.String(formatFlag))
	if err != nil {
		return Args{}, err
	}
	limit := c.Int(limitFlag)
	if limit < 0 {
		return Args{}, errors.Errorf("invalid --%s %d: must not be negative", limitFlag, limit)
	}
	maxLineBytes, err := datasize.Parse(c.String(maxLineFlag))
	if err != nil {
		return Args{}, err
	}
	if maxLineBytes < 1 || maxLineBytes > maxMaxLineBytes {
		return Args{}, errors.Errorf("invalid --%s %q: must be between 1 B and %s", maxLineFlag, c.String(maxLineFlag), datasize.FormatIEC(maxMaxLineBytes))
	}

	return Args{
		Needle:       c.Args().First(),
		File:         c.String(fileFlag),
		MaxLineBytes: int(maxLineBytes),
		Verbose:      c.Bool(verboseFlag),
		Rank: rank.Options{
			Mode:   mode,
			Limit:  limit,
			Unique: c.Bool(uniqueFlag),
		},
		Report: report.Options{
			Format:   format,
			Color:    c.Bool(colorFlag),
			ShowSpan: c.Bool(showSpanFlag),
		},
	}, nil
}

func (a App) search(c *cli.Context) error {
	args, err := parseArgs(c)
	if err != nil {
		return err
	}

	logger := newLogger(a.errWriter, args.Verbose)
	defer func() { _ = logger.Sync() }()

	candidates, err := a.readCandidates(args.File, args.MaxLineBytes)
	if err != nil {
		return err
	}
	logger.Debug("Read candidates", zap.String("file", args.File), zap.Int("lines", len(candidates)))

	args.Rank.Logger = logger
	results, err := rank.Rank(c.Context, args.Needle, candidates, args.Rank)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		return fmt.Errorf("%w for %q", errNoMatch, args.Needle)
	}
	return report.Write(a.outWriter, results, args.Report)
}

func (a App) readCandidates(fileName string, maxLineBytes int) ([]string, error) {
	if fileName == stdinFile {
		return rank.ReadLines(a.inReader, maxLineBytes)
	}
	fsPath, err := a.fromOSPath(fileName)
	if err != nil {
		return nil, err
	}
	return readFile(a.fs, fsPath, maxLineBytes)
}

func readFile(fs hackpadfs.FS, name string, maxLineBytes int) (_ []string, err error) {
	defer func() { err = errors.WithStack(err) }()
	f, err := fs.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return rank.ReadLines(f, maxLineBytes)
}
