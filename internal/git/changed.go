package git

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	gogit "github.com/go-git/go-git/v5"
)

// validateRoot validates and normalizes a directory path.
// Returns the cleaned absolute path or an error if invalid.
func validateRoot(root string) (string, error) {
	if strings.ContainsRune(root, 0) {
		return "", fmt.Errorf("invalid path: contains null byte")
	}
	abs, err := filepath.Abs(filepath.Clean(root))
	if err != nil {
		return "", fmt.Errorf("invalid path %q: %w", root, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("cannot access path %q: %w", root, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("path is not a directory: %s", root)
	}
	return abs, nil
}

// ChangedFiles returns absolute paths of files under root that are added,
// modified, renamed or untracked in the enclosing git worktree, sorted.
// Deleted files are left out since there is nothing left to check.
func ChangedFiles(root string) ([]string, error) {
	validRoot, err := validateRoot(root)
	if err != nil {
		return nil, err
	}
	repo, err := gogit.PlainOpenWithOptions(validRoot, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("open repository: %w", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("worktree: %w", err)
	}
	status, err := wt.Status()
	if err != nil {
		return nil, fmt.Errorf("status: %w", err)
	}
	top := wt.Filesystem.Root()
	var out []string
	for rel, st := range status {
		if st.Worktree == gogit.Deleted || st.Staging == gogit.Deleted {
			continue
		}
		if st.Worktree == gogit.Unmodified && st.Staging == gogit.Unmodified {
			continue
		}
		p := filepath.Join(top, filepath.FromSlash(rel))
		if r, err := filepath.Rel(validRoot, p); err != nil || strings.HasPrefix(r, "..") {
			continue
		}
		out = append(out, p)
	}
	sort.Strings(out)
	return out, nil
}
