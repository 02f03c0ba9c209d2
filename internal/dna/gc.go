// internal/dna/gc.go
package dna

import (
	"errors"
	"unicode/utf8"
)

// ErrEmptySequence is returned when a composition is asked of zero bases.
var ErrEmptySequence = errors.New("empty sequence")

// ByteSet is a membership table over single bytes.
type ByteSet [256]bool

// NewByteSet builds a set from the ASCII bytes of s. Case is taken
// literally; non-ASCII bytes are ignored so no part of a multi-byte
// character can match.
func NewByteSet(s string) ByteSet {
	var set ByteSet
	for i := 0; i < len(s); i++ {
		if s[i] < utf8.RuneSelf {
			set[s[i]] = true
		}
	}
	return set
}

// gcSet holds G and C in both cases.
var gcSet = NewByteSet("GCgc")

// Fraction returns the share of seq's characters that are in set.
// The denominator counts UTF-8 characters, not bytes.
func Fraction(seq []byte, set *ByteSet) (float64, error) {
	n := utf8.RuneCount(seq)
	if n == 0 {
		return 0, ErrEmptySequence
	}
	hits := 0
	for _, b := range seq {
		if set[b] {
			hits++
		}
	}
	return float64(hits) / float64(n), nil
}

// GCFraction is Fraction over {G, C, g, c}.
func GCFraction(seq []byte) (float64, error) {
	return Fraction(seq, &gcSet)
}
