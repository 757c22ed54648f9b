package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk YAML configuration shape for linelint.
// Unset fields are nil so callers can tell them apart from zero values.
type FileConfig struct {
	MaxLength         *int     `yaml:"max_length,omitempty"`
	IgnoreComments    *bool    `yaml:"ignore_comments,omitempty"`
	IgnoreEnvs        []string `yaml:"ignore_envs,omitempty"`
	IgnoreEnvsFiles   []string `yaml:"ignore_envs_files,omitempty"`
	IgnoreStarredEnvs *bool    `yaml:"ignore_starred_envs,omitempty"`

	Include         *string `yaml:"include,omitempty"`
	Exclude         *string `yaml:"exclude,omitempty"`
	DefaultExcludes *bool   `yaml:"default_excludes,omitempty"`
	Threads         *int    `yaml:"threads,omitempty"`
	Format          *string `yaml:"format,omitempty"`
	NoColor         *bool   `yaml:"no_color,omitempty"`
	Baseline        *string `yaml:"baseline,omitempty"`
	FailOnMissing   *bool   `yaml:"fail_on_missing,omitempty"`
}

// LoadFile reads a YAML config file from the provided path. Relative
// ignore_envs_files entries are resolved against the file's directory.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	dir := filepath.Dir(path)
	for i, f := range cfg.IgnoreEnvsFiles {
		if f != "" && !filepath.IsAbs(f) {
			cfg.IgnoreEnvsFiles[i] = filepath.Join(dir, f)
		}
	}
	return cfg, nil
}

// LoadLocal searches for a project config file in the given root.
// It supports .linelint.yml/.yaml and linelint.yml/.yaml.
func LoadLocal(root string) (FileConfig, error) {
	var cfg FileConfig
	for _, name := range []string{".linelint.yml", ".linelint.yaml", "linelint.yml", "linelint.yaml"} {
		p := filepath.Join(root, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return cfg, errors.New("no local config")
}

// LoadGlobal loads the global config file from XDG base directory or ~/.config.
func LoadGlobal() (FileConfig, error) {
	var cfg FileConfig
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return cfg, errors.New("no config dir")
	}
	p := filepath.Join(base, "linelint", "config.yml")
	if _, err := os.Stat(p); err == nil {
		return LoadFile(p)
	}
	return cfg, errors.New("no global config")
}

// Marshal renders cfg as YAML.
func Marshal(cfg FileConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}
