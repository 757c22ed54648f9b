package report

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/linelint/linelint/internal/types"
)

// Baseline records accepted violations. Entries are keyed by path (relative
// to the baseline file) and line text so they survive unrelated edits that
// shift line numbers.
type Baseline struct {
	Items map[string]bool `json:"items"`
	dir   string
}

func LoadBaseline(path string) (Baseline, error) {
	b := Baseline{Items: map[string]bool{}, dir: baseDir(path)}
	f, err := os.ReadFile(path)
	if err != nil {
		return b, err
	}
	if err := json.Unmarshal(f, &b); err != nil {
		return b, err
	}
	if b.Items == nil {
		b.Items = map[string]bool{}
	}
	return b, nil
}

func SaveBaseline(path string, vs []types.Violation) error {
	b := Baseline{Items: map[string]bool{}, dir: baseDir(path)}
	for _, v := range vs {
		b.Items[b.key(v)] = true
	}
	buf, _ := json.MarshalIndent(b, "", "  ")
	return os.WriteFile(path, buf, 0644)
}

// FilterNew drops violations already present in the baseline.
func FilterNew(vs []types.Violation, base Baseline) []types.Violation {
	var out []types.Violation
	for _, v := range vs {
		if !base.Items[base.key(v)] {
			out = append(out, v)
		}
	}
	return out
}

func (b Baseline) key(v types.Violation) string {
	p := v.Path
	if b.dir != "" {
		if rel, err := filepath.Rel(b.dir, v.Path); err == nil {
			p = rel
		}
	}
	return filepath.ToSlash(p) + "|" + v.Text
}

func baseDir(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return ""
	}
	return filepath.Dir(abs)
}

// ShouldFail reports whether a run ends with a failing exit status.
func ShouldFail(vs []types.Violation, missing int, failOnMissing bool) bool {
	return len(vs) > 0 || (failOnMissing && missing > 0)
}
