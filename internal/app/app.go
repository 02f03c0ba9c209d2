// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"revcomp/internal/cli"
	"revcomp/internal/cmdutil"
	"revcomp/internal/fasta"
	"revcomp/internal/pipeline"
	"revcomp/internal/version"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitUsage    = 2
	ExitFailure  = 3
	ExitCanceled = 130
)

// InputAccessError reports an input file that could not be opened.
type InputAccessError struct {
	Path string
	Err  error
}

func (e *InputAccessError) Error() string {
	return fmt.Sprintf("cannot read input %q: %v", e.Path, e.Err)
}

func (e *InputAccessError) Unwrap() error { return e.Err }

// RunContext runs the revcomp command and returns the process exit code.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := cli.NewFlagSet("revcomp")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return flush(outw, stderr, ExitOK)
		}
		cmdutil.Errorf(stderr, "%v", err)
		fs.SetOutput(stderr)
		fs.Usage()
		return ExitUsage
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "revcomp version %s\n", version.Version)
		return flush(outw, stderr, ExitOK)
	}

	rc, err := fasta.Open(opts.Input)
	if err != nil {
		cmdutil.Errorf(stderr, "%v", &InputAccessError{Path: opts.Input, Err: err})
		return ExitFailure
	}
	defer rc.Close()

	st, perr := pipeline.Process(ctx, rc, outw, pipeline.Config{
		Width:  opts.Width,
		Strict: opts.Strict,
		Quiet:  opts.Quiet,
		Warn:   stderr,
	})

	// Records written before a failure still reach stdout.
	if code := flush(outw, stderr, ExitOK); code != ExitOK || stdoutGone(perr) {
		return code
	}

	switch {
	case perr == nil:
	case errors.Is(perr, context.Canceled):
		return ExitCanceled
	default:
		cmdutil.Errorf(stderr, "%v", perr)
		return ExitFailure
	}

	if st.Records == 0 {
		cmdutil.Warnf(stderr, opts.Quiet, "no FASTA records found in %s", opts.Input)
	}
	return ExitOK
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
