package linelint

import (
	"os"

	"golang.org/x/term"
)

func pickString(changed bool, cli string, local, global *string, def string) string {
	if changed {
		return cli
	}
	if local != nil && *local != "" {
		return *local
	}
	if global != nil && *global != "" {
		return *global
	}
	return def
}

func pickInt(changed bool, cli int, local, global *int, def int) int {
	if changed {
		return cli
	}
	if local != nil {
		return *local
	}
	if global != nil {
		return *global
	}
	return def
}

func pickBool(changed bool, cli bool, local, global *bool, def bool) bool {
	if changed {
		return cli
	}
	if local != nil {
		return *local
	}
	if global != nil {
		return *global
	}
	return def
}

// isTerminal reports whether w is a terminal file descriptor.
func isTerminal(w any) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }
