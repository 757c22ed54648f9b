package cache

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	xxhash "github.com/cespare/xxhash/v2"
)

func TestLoadSave(t *testing.T) {
	dir := t.TempDir()
	// initial load should return empty DB and error
	db, _ := Load(dir)
	if db.Entries == nil {
		t.Fatalf("expected entries map initialized")
	}
	db.Entries["/p/a.tex"] = "deadbeef"
	if err := Save(dir, db); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, ".linelintcache.json")); err != nil {
		t.Fatalf("cache file not written: %v", err)
	}
	db2, err := Load(dir)
	if err != nil {
		t.Fatalf("load after save: %v", err)
	}
	if !db2.Fresh("/p/a.tex", "deadbeef") {
		t.Fatalf("unexpected entry: %q", db2.Entries["/p/a.tex"])
	}
}

func TestSave_PrefersGitDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, ".git"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := Save(dir, DB{Entries: map[string]string{"a": "b"}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, ".git", "linelintcache.json")); err != nil {
		t.Fatalf("cache not written under .git: %v", err)
	}
}

func TestSave_NilEntries(t *testing.T) {
	if err := Save(t.TempDir(), DB{}); err == nil {
		t.Fatal("expected error for nil entries")
	}
}

func TestFingerprint(t *testing.T) {
	a := Fingerprint("max=80", []byte("hello"))
	if len(a) != 16 || strings.Trim(a, "0123456789abcdef") != "" {
		t.Fatalf("expected 16 lowercase hex chars, got %q", a)
	}
	want := xxhash.New()
	_, _ = want.WriteString("max=80")
	_, _ = want.Write([]byte{0})
	_, _ = want.Write([]byte("hello"))
	if a != fmt.Sprintf("%016x", want.Sum64()) {
		t.Fatalf("fingerprint %q does not encode the xxhash digest", a)
	}
	if a != Fingerprint("max=80", []byte("hello")) {
		t.Fatal("fingerprint not stable")
	}
	if a == Fingerprint("max=100", []byte("hello")) {
		t.Fatal("settings must change the fingerprint")
	}
	if a == Fingerprint("max=80", []byte("hello!")) {
		t.Fatal("content must change the fingerprint")
	}
}
