// internal/cli/options.go
package cli

import (
	"flag"
	"fmt"

	"revcomp/internal/cliutil"
	"revcomp/internal/version"
)

// Options holds all CLI flags and arguments.
type Options struct {
	Input string // FASTA path, or "-" for stdin
	Width int    // bases per output line

	Strict bool
	Quiet  bool

	Version bool
}

// UsageError is a bad command line. The caller prints it with the usage text.
type UsageError struct{ Msg string }

func (e *UsageError) Error() string { return e.Msg }

func usagef(format string, a ...any) error { return &UsageError{Msg: fmt.Sprintf(format, a...)} }

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: reverse-complement FASTA records and report GC content

Version: %s

Usage:
  %s [flags] <input.fa|-> <width>

Each record is written as
  >{id}-revcomp {description} %%GC={percent}
followed by its reverse complement wrapped at <width> bases per line.

Flags:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
// Flags may appear before or after the two positionals. A request for help
// returns flag.ErrHelp; every other failure is a *UsageError.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.BoolVar(&opt.Strict, "strict", false, "fail on characters with no complement instead of copying them through [false]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress warnings [false]")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		if err == flag.ErrHelp {
			return opt, err
		}
		return opt, &UsageError{Msg: err.Error()}
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	// fs.Parse stops at the first non-flag; anything left over is positional too.
	posArgs = append(posArgs, fs.Args()...)
	if len(posArgs) != 2 {
		return opt, usagef("expected 2 arguments (input file and line width), got %d", len(posArgs))
	}
	opt.Input = posArgs[0]
	if opt.Input == "" {
		return opt, usagef("input path must not be empty")
	}
	w, err := cliutil.PositiveInt("width", posArgs[1])
	if err != nil {
		return opt, &UsageError{Msg: err.Error()}
	}
	opt.Width = w
	return opt, nil
}
