package core

import (
	"context"
	"io"

	"github.com/linelint/linelint/internal/engine"
	"github.com/linelint/linelint/internal/scanner"
	"github.com/linelint/linelint/internal/types"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable path.
type Config = scanner.Config
type Result = scanner.Result
type Violation = types.Violation
type RunConfig = engine.Config
type RunResult = engine.Result

// DefaultConfig returns a Config with the standard 80 character limit and
// comment checking enabled.
func DefaultConfig() Config { return scanner.DefaultConfig() }

// Scan checks the lines read from r, attributing violations to path.
func Scan(r io.Reader, path string, cfg Config) (Result, error) {
	return scanner.Scan(r, path, cfg)
}

// ScanFile checks a single file.
func ScanFile(path string, cfg Config) (Result, error) {
	s, err := scanner.New(cfg)
	if err != nil {
		return Result{}, err
	}
	return s.ScanFile(path)
}

// Run checks files and directories the way the command line does, without
// printing anything. Missing paths are listed in the result.
func Run(ctx context.Context, cfg RunConfig, paths ...string) (RunResult, error) {
	return engine.Run(ctx, cfg, paths, nil)
}
