package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	xxhash "github.com/cespare/xxhash/v2"
)

// DB remembers files that passed the check so unchanged ones can be skipped.
type DB struct {
	// Absolute path -> Fingerprint of settings and content
	Entries map[string]string `json:"entries"`
}

func defaultPath(root string) string {
	// Prefer storing cache under .git to avoid accidental commits
	// Fall back to the root if .git does not exist
	gitDir := filepath.Join(root, ".git")
	if st, err := os.Stat(gitDir); err == nil && st.IsDir() {
		return filepath.Join(gitDir, "linelintcache.json")
	}
	return filepath.Join(root, ".linelintcache.json")
}

func Load(root string) (DB, error) {
	var db DB
	p := defaultPath(root)
	f, err := os.ReadFile(p)
	if err != nil {
		return DB{Entries: map[string]string{}}, err
	}
	if err := json.Unmarshal(f, &db); err != nil {
		return DB{Entries: map[string]string{}}, err
	}
	if db.Entries == nil {
		db.Entries = map[string]string{}
	}
	return db, nil
}

func Save(root string, db DB) error {
	if db.Entries == nil {
		return errors.New("empty cache")
	}
	p := defaultPath(root)
	b, _ := json.MarshalIndent(db, "", "  ")
	return os.WriteFile(p, b, 0644)
}

// Fingerprint hashes the scan settings together with file content, so a
// changed max length or environment list invalidates earlier entries.
func Fingerprint(settings string, data []byte) string {
	d := xxhash.New()
	_, _ = d.WriteString(settings)
	_, _ = d.Write([]byte{0})
	_, _ = d.Write(data)
	return fmt.Sprintf("%016x", d.Sum64())
}

// Fresh reports whether path is recorded with the given fingerprint.
func (db DB) Fresh(path, fingerprint string) bool {
	return db.Entries != nil && db.Entries[path] == fingerprint
}
