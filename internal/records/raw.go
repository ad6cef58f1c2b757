// Package records holds the typed result records produced by parsing
// remote command output. Every record is a plain value struct: once a
// parser has constructed one it is never mutated, and collection records
// always carry a Count equal to the length of their entry slice.
package records

import "time"

// RawResult is the unprocessed outcome of one remote command execution.
// It is produced once per execution by the transport and attached to any
// error raised from the call that produced it.
type RawResult struct {
	Command  string
	Stdout   string
	Stderr   string
	ExitCode int
	Duration time.Duration
}

// Success reports whether the command exited zero.
func (r RawResult) Success() bool {
	return r.ExitCode == 0
}
