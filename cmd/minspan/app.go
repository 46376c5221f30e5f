package main

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/hack-pad/hackpadfs"
	osfs "github.com/hack-pad/hackpadfs/os"
	"github.com/johnstarich/go/minspan/internal/datasize"
	"github.com/johnstarich/go/minspan/internal/rank"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	appName   = "minspan"
	envPrefix = "MINSPAN_"
)

// Flag names
const (
	colorFlag    = "color"
	fileFlag     = "file"
	formatFlag   = "format"
	limitFlag    = "limit"
	maxLineFlag  = "max-line-size"
	showSpanFlag = "show-span"
	tokensFlag   = "tokens"
	uniqueFlag   = "unique"
	verboseFlag  = "verbose"
)

// stdinFile is the file name which reads candidates from stdin
const stdinFile = "-"

type App struct {
	errWriter io.Writer
	fs        hackpadfs.FS
	inReader  io.Reader
	outWriter io.Writer
}

func newApp(inReader io.Reader, outWriter, errWriter io.Writer) App {
	return App{
		errWriter: errWriter,
		fs:        osfs.NewFS(),
		inReader:  inReader,
		outWriter: outWriter,
	}
}

func envVars(flagName string) []string {
	return []string{envPrefix + strings.ToUpper(strings.ReplaceAll(flagName, "-", "_"))}
}

// Run runs the command with args, excluding the program name
func (a App) Run(args []string) error {
	cliApp := &cli.App{
		Name:      appName,
		Usage:     "Rank lines by the shortest span containing NEEDLE as a subsequence",
		ArgsUsage: "NEEDLE",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    fileFlag,
				Aliases: []string{"f"},
				Value:   stdinFile,
				Usage:   "Read candidate lines from `FILE`. Use '-' for stdin.",
				EnvVars: envVars(fileFlag),
			},
			&cli.StringFlag{
				Name:    tokensFlag,
				Aliases: []string{"t"},
				Value:   "runes",
				Usage:   "Compare lines by `MODE`: runes, bytes, or graphemes",
				EnvVars: envVars(tokensFlag),
			},
			&cli.IntFlag{
				Name:    limitFlag,
				Aliases: []string{"n"},
				Usage:   "Print at most `N` lines. 0 prints all matches.",
				EnvVars: envVars(limitFlag),
			},
			&cli.StringFlag{
				Name:    maxLineFlag,
				Value:   datasize.FormatIEC(rank.DefaultMaxLineBytes),
				Usage:   "Fail on input lines longer than `SIZE`, e.g. 512KiB or 4MB",
				EnvVars: envVars(maxLineFlag),
			},
			&cli.BoolFlag{
				Name:    uniqueFlag,
				Aliases: []string{"u"},
				Usage:   "Skip repeated lines",
				EnvVars: envVars(uniqueFlag),
			},
			&cli.StringFlag{
				Name:    formatFlag,
				Value:   "plain",
				Usage:   "Print results as `FORMAT`: plain or table",
				EnvVars: envVars(formatFlag),
			},
			&cli.BoolFlag{
				Name:    colorFlag,
				Usage:   "Highlight the matching span of each line",
				EnvVars: envVars(colorFlag),
			},
			&cli.BoolFlag{
				Name:    showSpanFlag,
				Aliases: []string{"s"},
				Usage:   "Prefix each line with its span length and range",
			},
			&cli.BoolFlag{
				Name:    verboseFlag,
				Aliases: []string{"v"},
				Usage:   "Log debug information to stderr",
				EnvVars: envVars(verboseFlag),
			},
		},
		Action:          a.search,
		HideHelpCommand: true,
		ErrWriter:       a.errWriter,
		ExitErrHandler:  func(*cli.Context, error) {},
		Reader:          a.inReader,
		Writer:          a.outWriter,
	}
	return cliApp.Run(append([]string{appName}, args...))
}

func newLogger(w io.Writer, verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = ""
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(w),
		zapcore.DebugLevel,
	)
	return zap.New(core)
}

type osPathFS interface {
	hackpadfs.FS
	FromOSPath(path string) (string, error)
}

// fromOSPath attempts to derive the FS path from an OS-like path
func (a App) fromOSPath(p string) (string, error) {
	fs, ok := a.fs.(osPathFS)
	if !ok {
		return p, nil
	}
	p, err := filepath.Abs(p)
	if err != nil {
		return "", err
	}
	return fs.FromOSPath(p)
}
