// internal/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"unicode"
)

// Record is one parsed FASTA entry.
type Record struct {
	ID   string
	Desc string
	Seq  []byte
	Line int // 1-based line of the '>' header
}

// FormatError reports input that is not FASTA.
type FormatError struct {
	Line int
	Msg  string
}

func (e *FormatError) Error() string { return fmt.Sprintf("fasta: line %d: %s", e.Line, e.Msg) }

const (
	markerByte  = '>'
	commentByte = ';'
	maxLine     = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
)

// Scan parses FASTA from r and calls emit once per record, in input order.
//
// Blank lines and lines starting with ';' are skipped. Every other line is
// trimmed; a leading '>' starts a new record, anything else is appended to the
// current record's sequence. A record is emitted when the next header or EOF
// is reached, including records whose sequence is empty. Emit owns rec.Seq.
//
// Returning a non-nil error from emit stops the scan and that error is returned.
func Scan(ctx context.Context, r io.Reader, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	var (
		cur    Record
		open   bool
		lineNo int
	)

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		lineNo++
		raw := sc.Bytes()
		line := bytes.TrimSpace(raw)
		if len(line) == 0 || raw[0] == commentByte {
			continue
		}

		if line[0] == markerByte {
			if open {
				if err := emit(cur); err != nil {
					return err
				}
			}
			id, desc := ParseHeader(line)
			if id == "" {
				return &FormatError{Line: lineNo, Msg: "empty record identifier"}
			}
			cur = Record{ID: id, Desc: desc, Line: lineNo}
			open = true
			continue
		}

		if !open {
			return &FormatError{Line: lineNo, Msg: "sequence data before first '>' header"}
		}
		cur.Seq = append(cur.Seq, line...)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	if open {
		return emit(cur)
	}
	return nil
}

// ParseHeader splits a header line into its identifier and description.
// Leading '>' bytes are dropped; the identifier ends at the first whitespace
// and the description is the rest with that whitespace run removed.
func ParseHeader(hdr []byte) (id, desc string) {
	hdr = bytes.TrimLeft(hdr, ">")
	hdr = bytes.TrimSpace(hdr)
	i := bytes.IndexFunc(hdr, unicode.IsSpace)
	if i < 0 {
		return string(hdr), ""
	}
	return string(hdr[:i]), string(bytes.TrimLeftFunc(hdr[i:], unicode.IsSpace))
}
