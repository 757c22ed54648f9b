// Package linelint provides the command-line interface for the linelint
// tool. It parses flags, merges them with configuration files, runs the
// engine and turns the outcome into a report and an exit status.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/linelint/linelint/cmd/linelint"
//	func main() { linelint.Execute() }
package linelint
