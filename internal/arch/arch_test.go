// ./internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
	Standard   bool
}

// Layering, bottom-up: dna → fasta → output → pipeline → cli/app → cmd.
func TestImportBoundaries(t *testing.T) {
	if _, err := exec.LookPath("go"); err != nil {
		t.Skip("go tool not on PATH")
	}
	cmd := exec.Command("go", "list", "-json", "./...")
	cmd.Dir = "../.."
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	upper := []string{
		"revcomp/internal/pipeline", "revcomp/internal/cli", "revcomp/internal/app",
		"revcomp/cmd/",
	}
	bans := map[string][]string{
		"revcomp/internal/dna": append([]string{
			"revcomp/internal/fasta", "revcomp/internal/output", "revcomp/internal/cmdutil",
		}, upper...),
		"revcomp/internal/fasta":  append([]string{"revcomp/internal/dna", "revcomp/internal/output"}, upper...),
		"revcomp/internal/output": append([]string{"revcomp/internal/fasta"}, upper...),
		"revcomp/internal/pipeline": {
			"revcomp/internal/cli", "revcomp/internal/app", "revcomp/cmd/",
		},
	}

	var violations []string
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !strings.HasPrefix(p.ImportPath, "revcomp/") {
			continue
		}
		imp := p.ImportPath
		for prefix, forbidden := range bans {
			if imp != prefix {
				continue
			}
			for _, dep := range p.Imports {
				for _, ban := range forbidden {
					if strings.HasPrefix(dep, ban) {
						violations = append(violations, imp+" → "+dep)
					}
				}
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}
