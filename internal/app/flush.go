// internal/app/flush.go
package app

import (
	"bufio"
	"errors"
	"io"
	"syscall"

	"revcomp/internal/cmdutil"
)

// stdoutGone reports whether err means the reader on our stdout went away,
// as when the output is piped into `head`. That ends the run without failing it.
func stdoutGone(err error) bool {
	return errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe)
}

// flush empties outw and returns code, or ExitFailure if stdout failed.
func flush(outw *bufio.Writer, stderr io.Writer, code int) int {
	err := outw.Flush()
	switch {
	case err == nil, stdoutGone(err):
		return code
	default:
		cmdutil.Errorf(stderr, "%v", err)
		return ExitFailure
	}
}
