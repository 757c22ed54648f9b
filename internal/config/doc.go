// Package config loads linelint configuration from local and global YAML
// files and parses environment name lists. It is internal; CLI code maps
// flags and files into engine configuration.
package config
