package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ParseRegionList splits a comma and/or space separated list of
// environment names. Empty entries are dropped.
func ParseRegionList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
}

// LoadRegionsFile reads one environment name per line from path. Lines are
// trimmed and blank lines skipped. Any read error is returned to the caller.
func LoadRegionsFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read ignore-envs file: %w", err)
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if name := strings.TrimSpace(sc.Text()); name != "" {
			out = append(out, name)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read ignore-envs file %s: %w", path, err)
	}
	return out, nil
}

// CollectRegions accumulates names from repeated list arguments and from
// the given files, in that order.
func CollectRegions(lists []string, files []string) ([]string, error) {
	var out []string
	for _, l := range lists {
		out = append(out, ParseRegionList(l)...)
	}
	for _, f := range files {
		names, err := LoadRegionsFile(f)
		if err != nil {
			return nil, err
		}
		out = append(out, names...)
	}
	return out, nil
}

// ParseTruthy reports whether s reads as an enabled switch. Any non-empty
// value enables it except the explicit off spellings "0", "f", "false",
// "n", "no" and "off" (case-insensitive).
func ParseTruthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "0", "f", "false", "n", "no", "off":
		return false
	}
	return true
}
