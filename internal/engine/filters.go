package engine

import "strings"

// DefaultInclude selects TeX sources when a directory is given.
const DefaultInclude = "**/*.tex"

var defaultExcludeDirs = map[string]bool{
	".git":         true,
	".svn":         true,
	".hg":          true,
	"node_modules": true,
	"vendor":       true,
	"build":        true,
	"out":          true,
	"_build":       true,
	".texpadtmp":   true,
	".venv":        true,
	"__pycache__":  true,
}

func isDefaultDirExcluded(name string) bool {
	// minted drops per-document cache directories next to sources
	return defaultExcludeDirs[name] || strings.HasPrefix(name, "_minted")
}
