// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"revcomp/internal/cmdutil"
	"revcomp/internal/dna"
	"revcomp/internal/fasta"
	"revcomp/internal/output"
)

// Config controls how each record is rendered.
type Config struct {
	Width  int       // bases per output line; <= 0 means one line per record
	Strict bool      // fail on bytes with no complement instead of passing them through
	Quiet  bool      // suppress warnings
	Warn   io.Writer // destination for warnings (usually stderr); nil discards
}

// Stats summarizes a completed run.
type Stats struct {
	Records int
	Bases   int // characters, not bytes
}

// EmptySequenceError is returned for a record with no sequence data, whose
// GC content is undefined.
type EmptySequenceError struct {
	ID   string
	Line int
}

func (e *EmptySequenceError) Error() string {
	return fmt.Sprintf("record %q (line %d) has an empty sequence", e.ID, e.Line)
}

func (e *EmptySequenceError) Unwrap() error { return dna.ErrEmptySequence }

// RecordError attaches the failing record to an error from the transform.
type RecordError struct {
	ID   string
	Line int
	Err  error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record %q (line %d): %v", e.ID, e.Line, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }

// Process reads FASTA from r and writes the reverse-complemented records to w.
// It stops at the first error; records before it have already been written.
func Process(ctx context.Context, r io.Reader, w io.Writer, cfg Config) (Stats, error) {
	var st Stats
	err := fasta.Scan(ctx, r, func(rec fasta.Record) error {
		if err := Emit(w, rec, cfg); err != nil {
			return err
		}
		st.Records++
		st.Bases += utf8.RuneCount(rec.Seq)
		return nil
	})
	return st, err
}

// Emit writes one finalized record: the "-revcomp" header carrying the GC
// percentage of the original sequence, then the wrapped reverse complement.
func Emit(w io.Writer, rec fasta.Record, cfg Config) error {
	frac, err := dna.GCFraction(rec.Seq)
	if errors.Is(err, dna.ErrEmptySequence) {
		return &EmptySequenceError{ID: rec.ID, Line: rec.Line}
	} else if err != nil {
		return &RecordError{ID: rec.ID, Line: rec.Line, Err: err}
	}

	var rc []byte
	if cfg.Strict {
		if rc, err = dna.RevCompStrict(rec.Seq); err != nil {
			return &RecordError{ID: rec.ID, Line: rec.Line, Err: err}
		}
	} else {
		if bad := dna.Unmapped(rec.Seq); len(bad) > 0 {
			cmdutil.Warnf(cfg.Warn, cfg.Quiet, "record %q: no complement for %q; copied through unchanged", rec.ID, string(bad))
		}
		rc = dna.RevComp(rec.Seq)
	}

	header := output.FormatHeader(rec.ID, rec.Desc, 100*frac)
	return output.WriteRecord(w, header, dna.Wrap(rc, cfg.Width))
}
