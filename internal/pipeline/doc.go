// Package pipeline drives FASTA records through the reverse-complement
// transform and writes one output record per input record.
//
// Records are processed strictly in input order, one at a time; a record is
// fully written before the next one is parsed.
package pipeline
