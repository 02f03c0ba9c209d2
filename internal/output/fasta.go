// internal/output/fasta.go
package output

import (
	"fmt"
	"io"
)

// RevCompSuffix is appended to the identifier of every reverse-complemented record.
const RevCompSuffix = "-revcomp"

// FormatHeader renders a header line (without '\n') of the form
//
//	>{id}-revcomp {desc} %GC={pct:.3f}
//
// The description and its separating space are left out when desc is empty.
func FormatHeader(id, desc string, gcPercent float64) string {
	if desc == "" {
		return fmt.Sprintf(">%s%s %%GC=%.3f", id, RevCompSuffix, gcPercent)
	}
	return fmt.Sprintf(">%s%s %s %%GC=%.3f", id, RevCompSuffix, desc, gcPercent)
}

// WriteRecord writes header and the already-wrapped body, each followed by '\n'.
func WriteRecord(w io.Writer, header string, body []byte) error {
	if _, err := io.WriteString(w, header+"\n"); err != nil {
		return err
	}
	if _, err := w.Write(body); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
