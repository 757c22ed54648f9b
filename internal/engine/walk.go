package engine

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
)

// target is one file to check. Missing marks an argument that did not exist.
type target struct {
	Path    string
	Missing bool
}

// expandTargets resolves args to absolute paths in argument order.
// Files are taken as given; directories are walked and filtered by the
// include/exclude globs. Duplicates keep their first position.
func expandTargets(ctx context.Context, cfg Config, args []string) ([]target, error) {
	seen := map[string]bool{}
	var out []target
	add := func(t target) {
		if seen[t.Path] {
			return
		}
		seen[t.Path] = true
		out = append(out, t)
	}
	for _, arg := range args {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		p, err := resolvePath(arg)
		if err != nil {
			return nil, err
		}
		info, err := os.Stat(p)
		if err != nil {
			add(target{Path: p, Missing: true})
			continue
		}
		if !info.IsDir() {
			add(target{Path: p})
			continue
		}
		files, err := Walk(ctx, cfg, p)
		if err != nil {
			return nil, err
		}
		for _, f := range files {
			add(target{Path: f})
		}
	}
	return out, nil
}

// resolvePath expands a leading ~ and makes p absolute.
func resolvePath(p string) (string, error) {
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	return filepath.Abs(p)
}

// Walk lists the eligible files below dir in lexical order.
func Walk(ctx context.Context, cfg Config, dir string) ([]string, error) {
	var out []string
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if ctx != nil && ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() {
			if p != dir && cfg.DefaultExcludes && isDefaultDirExcluded(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		rel, _ := filepath.Rel(dir, p)
		if !allowedByGlobs(rel, cfg) {
			return nil
		}
		out = append(out, p)
		return nil
	})
	return out, err
}

// allowedByGlobs returns true if the given path is allowed by the include/exclude
// glob configuration. Include globs are comma-separated and act as a positive
// filter (DefaultInclude when empty). Exclude globs are subtracted last.
// Matching uses forward-slash semantics.
func allowedByGlobs(relPath string, cfg Config) bool {
	rp := filepath.ToSlash(relPath)
	include := cfg.Include
	if include == "" {
		include = DefaultInclude
	}
	if !matchAnyGlob(rp, parseGlobsList(include)) {
		return false
	}
	excludes := parseGlobsList(cfg.Exclude)
	if len(excludes) > 0 && matchAnyGlob(rp, excludes) {
		return false
	}
	return true
}

func parseGlobsList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	var out []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
			out = append(out, trimGlobPrefix(p))
		}
	}
	return out
}

func matchAnyGlob(pathToMatch string, globs []string) bool {
	for _, g := range globs {
		if ok, _ := doublestar.Match(g, pathToMatch); ok {
			return true
		}
		if ok, _ := doublestar.Match(g, filepath.Base(pathToMatch)); ok {
			return true
		}
	}
	return false
}

func trimGlobPrefix(g string) string {
	s := strings.TrimPrefix(g, "./")
	for strings.HasPrefix(s, "**/") {
		s = strings.TrimPrefix(s, "**/")
	}
	return s
}
