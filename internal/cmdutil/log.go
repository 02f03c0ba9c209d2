// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"
)

// Warnf writes a "WARN: " line to dst unless quiet is set.
func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet || dst == nil {
		return
	}
	_, _ = fmt.Fprintf(dst, "WARN: "+format+"\n", a...)
}

// Errorf writes an "error: " line to dst. Errors are never silenced.
func Errorf(dst io.Writer, format string, a ...any) {
	if dst == nil {
		return
	}
	_, _ = fmt.Fprintf(dst, "error: "+format+"\n", a...)
}
