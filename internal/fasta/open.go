// internal/fasta/open.go
package fasta

import (
	"io"
	"os"
)

// Open returns a reader for path; "-" is stdin. Closing the stdin reader is a no-op.
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}
