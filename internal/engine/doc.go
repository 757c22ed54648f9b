// Package engine turns command-line targets into checked files. It expands
// directories, skips missing paths, consults the cache, runs the scanner
// over each file and hands results back in argument order. This package is
// internal; external consumers should use the stable facade in pkg/core.
package engine
