// internal/dna/wrap.go
package dna

import "unicode/utf8"

// Wrap re-flows seq into lines of at most width characters. Existing CR/LF
// bytes are dropped first. Full lines end in '\n'; the last line never does.
// A multi-byte UTF-8 character counts once and is never split.
// width <= 0 means a single unbounded line.
func Wrap(seq []byte, width int) []byte {
	linear := make([]byte, 0, len(seq))
	for _, b := range seq {
		if b != '\n' && b != '\r' {
			linear = append(linear, b)
		}
	}
	n := utf8.RuneCount(linear)
	if width <= 0 || width >= n {
		return linear
	}

	out := make([]byte, 0, len(linear)+n/width)
	col := 0
	for i := 0; i < len(linear); {
		size := 1
		if linear[i] >= utf8.RuneSelf {
			_, size = utf8.DecodeRune(linear[i:])
		}
		if col == width {
			out = append(out, '\n')
			col = 0
		}
		out = append(out, linear[i:i+size]...)
		col++
		i += size
	}
	return out
}
