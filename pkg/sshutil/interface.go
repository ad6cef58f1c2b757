// Package sshutil is the transport layer: it opens SSH channels and
// runs single command lines, returning raw results. It knows nothing
// about state overlays or parsing; callers hand it fully composed
// command lines and get bytes back.
package sshutil

import (
	"context"

	"github.com/rileyhilliard/rmac/internal/records"
)

// Transport executes command lines on a remote host. Both the real
// Client and the test mock satisfy this interface.
//
// Execute must return both output streams unmerged and the true exit
// code. Connectivity loss is reported as an error, never as a result
// with exit code 0.
type Transport interface {
	// Execute runs one command line. The context bounds the wait; on
	// expiry Execute returns an ErrTimeout error and the channel that
	// carried the command must not be reused.
	Execute(ctx context.Context, cmdline string) (records.RawResult, error)

	// Close closes the underlying connection.
	Close() error

	// Host returns the original host or alias used to connect.
	Host() string

	// Address returns the resolved host:port address.
	Address() string
}
