// Command minspan filters and ranks lines by the shortest span containing a needle as a subsequence.
//
// Lines with tighter matches are printed first, which makes it useful for completing commands from shell history:
//
//	history | minspan gpo
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
)

//nolint:gochecknoglobals // These globals are swapped out in tests to capture exits.
var (
	osExiter           = os.Exit
	osErr    io.Writer = os.Stderr
)

func main() {
	err := run(os.Args[1:], os.Stdin, os.Stdout, osErr)
	if err != nil {
		fmt.Fprintln(osErr, err)
		osExiter(exitCode(err))
		return
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	return newApp(stdin, stdout, stderr).Run(args)
}

func exitCode(err error) int {
	var exitCoder cli.ExitCoder
	if errors.As(err, &exitCoder) {
		return exitCoder.ExitCode()
	}
	return 1
}
