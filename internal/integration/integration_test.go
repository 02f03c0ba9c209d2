// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"revcomp/internal/app"
)

func write(t *testing.T, name, data string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fn, []byte(data), 0o644))
	return fn
}

func TestEndToEnd(t *testing.T) {
	fa := write(t, "itest.fa", ">seq1 desc\nACGT\n")

	var out, errBuf bytes.Buffer
	code := app.Run([]string{fa, "2"}, &out, &errBuf)

	require.Equal(t, 0, code, "stderr: %s", errBuf.String())
	assert.Equal(t, ">seq1-revcomp desc %GC=50.000\nAC\nGT\n", out.String())
	assert.Empty(t, errBuf.String())
}

func TestEndToEndMultiRecord(t *testing.T) {
	fa := write(t, "multi.fa", `; produced by a sequencer
>chr1 Homo sapiens chromosome 1 fragment
GATTACA
gattaca

>chr2
CCCGGG
; trailing comment
>chr3 lone
nnnnAT
`)
	var out, errBuf bytes.Buffer
	code := app.Run([]string{"--quiet", fa, "5"}, &out, &errBuf)
	require.Equal(t, 0, code, "stderr: %s", errBuf.String())

	want := strings.Join([]string{
		">chr1-revcomp Homo sapiens chromosome 1 fragment %GC=28.571",
		"tgtaa",
		"tcTGT",
		"AATC",
		">chr2-revcomp %GC=100.000",
		"CCCGG",
		"G",
		">chr3-revcomp lone %GC=0.000",
		"ATnnn",
		"n",
	}, "\n") + "\n"
	assert.Equal(t, want, out.String())
}

func TestEmptySequenceFailsAfterEarlierRecords(t *testing.T) {
	fa := write(t, "empty.fa", ">a\nGGCC\n>b nothing\n>c\nAT\n")

	var out, errBuf bytes.Buffer
	code := app.Run([]string{fa, "60"}, &out, &errBuf)

	assert.Equal(t, 3, code)
	assert.Equal(t, ">a-revcomp %GC=100.000\nGGCC\n", out.String())
	assert.Contains(t, errBuf.String(), `record "b"`)
	assert.Contains(t, errBuf.String(), "empty sequence")
}

func TestPermissiveVsStrict(t *testing.T) {
	fa := write(t, "odd.fa", ">a\nAC-GT\n")

	var out, errBuf bytes.Buffer
	code := app.Run([]string{fa, "60"}, &out, &errBuf)
	require.Equal(t, 0, code)
	assert.Equal(t, ">a-revcomp %GC=40.000\nAC-GT\n", out.String())
	assert.Contains(t, errBuf.String(), "WARN: ")

	out.Reset()
	errBuf.Reset()
	code = app.Run([]string{"--strict", fa, "60"}, &out, &errBuf)
	assert.Equal(t, 3, code)
	assert.Empty(t, out.String())
	assert.Contains(t, errBuf.String(), "no complement for '-' at offset 2")
}

func TestNoRecordsWarns(t *testing.T) {
	fa := write(t, "blank.fa", "\n; nothing\n")

	var out, errBuf bytes.Buffer
	code := app.Run([]string{fa, "60"}, &out, &errBuf)
	assert.Equal(t, 0, code)
	assert.Empty(t, out.String())
	assert.Contains(t, errBuf.String(), "no FASTA records")
}

func TestStdinInput(t *testing.T) {
	orig := os.Stdin
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdin = r
	defer func() { os.Stdin = orig }()

	go func() {
		_, _ = io.WriteString(w, ">s\nAAAAC\n")
		_ = w.Close()
	}()

	var out, errBuf bytes.Buffer
	code := app.Run([]string{"-", "3"}, &out, &errBuf)
	require.Equal(t, 0, code, "stderr: %s", errBuf.String())
	assert.Equal(t, ">s-revcomp %GC=20.000\nGTT\nTT\n", out.String())
}
