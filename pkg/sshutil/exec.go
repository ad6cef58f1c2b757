package sshutil

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/rileyhilliard/rmac/internal/errors"
	"github.com/rileyhilliard/rmac/internal/records"
	"golang.org/x/crypto/ssh"
)

// Execute runs one command line on the remote host and returns the raw
// result. A non-zero exit code is a result, not an error; only
// transport-level failures and context expiry produce errors.
//
// When the context expires mid-flight the SSH session is abandoned and
// the whole connection is closed — a half-finished remote command may
// keep running, and the channel that carried it cannot be trusted for
// another command.
func (c *Client) Execute(ctx context.Context, cmdline string) (records.RawResult, error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return records.RawResult{}, errors.New(errors.ErrConnection,
			"Connection is closed",
			"Reconnect the session before issuing commands")
	}
	conn := c.conn
	c.mu.Unlock()

	session, err := conn.NewSession()
	if err != nil {
		return records.RawResult{}, errors.WrapWithCode(err, errors.ErrConnection,
			"Failed to create SSH session",
			"Connection may have been dropped. Reconnect and retry.")
	}
	defer session.Close()

	var stdoutBuf, stderrBuf bytes.Buffer
	session.Stdout = &stdoutBuf
	session.Stderr = &stderrBuf

	start := time.Now()

	done := make(chan error, 1)
	go func() {
		done <- session.Run(cmdline)
	}()

	select {
	case <-ctx.Done():
		// The session can't be interrupted reliably; discard the whole
		// connection so the next command never reuses this channel.
		c.Close()
		if ctx.Err() == context.DeadlineExceeded {
			return records.RawResult{}, errors.New(errors.ErrTimeout,
				fmt.Sprintf("Command timed out after %s: %s", time.Since(start).Round(time.Millisecond), cmdline),
				"The remote command may still be running; its effects are not rolled back")
		}
		return records.RawResult{}, errors.WrapWithCode(ctx.Err(), errors.ErrConnection,
			"Command canceled", "")
	case err = <-done:
	}

	result := records.RawResult{
		Command:  cmdline,
		Stdout:   stdoutBuf.String(),
		Stderr:   stderrBuf.String(),
		ExitCode: 0,
		Duration: time.Since(start),
	}

	if err != nil {
		if exitErr, ok := err.(*ssh.ExitError); ok {
			// Command ran, just exited non-zero. Classification is the
			// caller's job.
			result.ExitCode = exitErr.ExitStatus()
			return result, nil
		}
		return records.RawResult{}, errors.WrapWithCode(err, errors.ErrConnection,
			fmt.Sprintf("Failed to execute command: %s", cmdline),
			"The connection may have dropped mid-command. Reconnect and retry.")
	}

	return result, nil
}
