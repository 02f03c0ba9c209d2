// internal/dna/rc.go
package dna

import (
	"fmt"
	"unicode/utf8"
)

// complement maps each IUPAC nucleotide code to its pairing partner, preserving case.
// Zero entries are bytes outside the alphabet.
var complement = func() (t [256]byte) {
	const (
		from = "acgturyswkmbdhvnACGTURYSWKMBDHVN"
		to   = "tgcaayrwsmkvhdbnTGCAAYRWSMKVHDBN"
	)
	for i := 0; i < len(from); i++ {
		t[from[i]] = to[i]
	}
	return t
}()

// Complement returns the complement of b and whether b is in the alphabet.
// Unknown bytes come back unchanged with ok=false.
func Complement(b byte) (c byte, ok bool) {
	if c = complement[b]; c == 0 {
		return b, false
	}
	return c, true
}

// UnmappedCharacterError reports a character with no complement.
// Offset is the 0-based byte offset of the character in the input (not the
// reversed output).
type UnmappedCharacterError struct {
	Offset int
	Char   rune
}

func (e *UnmappedCharacterError) Error() string {
	return fmt.Sprintf("no complement for %q at offset %d", e.Char, e.Offset)
}

// RevComp reverse-complements seq into a new slice. Characters are reversed
// whole, so a multi-byte UTF-8 character keeps its byte order; characters
// outside the alphabet are copied through untranslated.
func RevComp(seq []byte) []byte {
	out, _ := revComp(seq, false)
	return out
}

// RevCompStrict is RevComp but fails on the first unmapped character,
// scanning from the 3' end.
func RevCompStrict(seq []byte) ([]byte, error) {
	return revComp(seq, true)
}

func revComp(seq []byte, strict bool) ([]byte, error) {
	out := make([]byte, 0, len(seq))
	for end := len(seq); end > 0; {
		size := 1
		if seq[end-1] >= utf8.RuneSelf {
			_, size = utf8.DecodeLastRune(seq[:end])
		}
		start := end - size
		c, ok := byte(0), false
		if size == 1 {
			c, ok = Complement(seq[start])
		}
		switch {
		case ok:
			out = append(out, c)
		case strict:
			return nil, &UnmappedCharacterError{Offset: start, Char: charAt(seq[start:end])}
		default:
			out = append(out, seq[start:end]...)
		}
		end = start
	}
	return out, nil
}

// charAt decodes the single character in b; invalid UTF-8 comes back as the raw byte value.
func charAt(b []byte) rune {
	if r, size := utf8.DecodeRune(b); r != utf8.RuneError || size > 1 {
		return r
	}
	return rune(b[0])
}

// Unmapped returns the distinct characters of seq that have no complement,
// in order of first appearance.
func Unmapped(seq []byte) []rune {
	var (
		seen = map[rune]bool{}
		out  []rune
	)
	for i := 0; i < len(seq); {
		size := 1
		if seq[i] >= utf8.RuneSelf {
			_, size = utf8.DecodeRune(seq[i:])
		}
		if size == 1 && complement[seq[i]] != 0 {
			i++
			continue
		}
		r := charAt(seq[i : i+size])
		if !seen[r] {
			seen[r] = true
			out = append(out, r)
		}
		i += size
	}
	return out
}
