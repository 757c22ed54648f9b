package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return p
}

func TestLoadFile_Basic(t *testing.T) {
	dir := t.TempDir()
	p := writeTemp(t, dir, "linelint.yaml", "max_length: 100\nignore_comments: true\nignore_envs: [figure, table]\nignore_envs_files: [envs.txt]\nignore_starred_envs: true\nthreads: 4\n")
	cfg, err := LoadFile(p)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.MaxLength == nil || *cfg.MaxLength != 100 {
		t.Fatalf("expected max_length=100, got %#v", cfg.MaxLength)
	}
	if cfg.IgnoreComments == nil || !*cfg.IgnoreComments {
		t.Fatalf("expected ignore_comments=true")
	}
	assert.Equal(t, []string{"figure", "table"}, cfg.IgnoreEnvs)
	assert.Equal(t, []string{filepath.Join(dir, "envs.txt")}, cfg.IgnoreEnvsFiles)
	if cfg.IgnoreStarredEnvs == nil || !*cfg.IgnoreStarredEnvs {
		t.Fatalf("expected ignore_starred_envs=true")
	}
	if cfg.Threads == nil || *cfg.Threads != 4 {
		t.Fatalf("expected threads=4, got %#v", cfg.Threads)
	}
	if cfg.Format != nil {
		t.Fatalf("expected format unset, got %q", *cfg.Format)
	}
}

func TestLoadFile_Invalid(t *testing.T) {
	dir := t.TempDir()
	p := writeTemp(t, dir, "linelint.yaml", "max_length: [not a number\n")
	_, err := LoadFile(p)
	assert.Error(t, err)
}

func TestLoadLocal_PrefersDotfile(t *testing.T) {
	dir := t.TempDir()
	// place both, expect the dotfile to be picked first by search order
	writeTemp(t, dir, "linelint.yaml", "max_length: 1\n")
	writeTemp(t, dir, ".linelint.yaml", "max_length: 7\n")
	cfg, err := LoadLocal(dir)
	if err != nil {
		t.Fatalf("LoadLocal: %v", err)
	}
	if cfg.MaxLength == nil || *cfg.MaxLength != 7 {
		t.Fatalf("expected max_length=7 from .linelint.yaml, got %#v", cfg.MaxLength)
	}
}

func TestLoadLocal_NoConfig(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadLocal(dir); err == nil {
		t.Fatal("expected error when no local config exists")
	}
}

func TestLoadGlobal_XDG_Config(t *testing.T) {
	dir := t.TempDir()
	cfgDir := filepath.Join(dir, "linelint")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeTemp(t, cfgDir, "config.yml", "max_length: 9\n")
	t.Setenv("XDG_CONFIG_HOME", dir)
	cfg, err := LoadGlobal()
	if err != nil {
		t.Fatalf("LoadGlobal: %v", err)
	}
	if cfg.MaxLength == nil || *cfg.MaxLength != 9 {
		t.Fatalf("expected max_length=9 from global config, got %#v", cfg.MaxLength)
	}
}

func TestLoadGlobal_NoConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "")
	if _, err := LoadGlobal(); err == nil {
		t.Fatal("expected error when no global config dir exists")
	}
}

func TestMarshal_OmitsUnset(t *testing.T) {
	n := 90
	out, err := Marshal(FileConfig{MaxLength: &n})
	require.NoError(t, err)
	assert.Equal(t, "max_length: 90\n", string(out))
}
