// Package testing provides a scripted Transport for testing code that
// issues remote commands without opening real SSH connections.
package testing

import (
	"context"
	"regexp"
	"sync"
	"time"

	"github.com/rileyhilliard/rmac/internal/errors"
	"github.com/rileyhilliard/rmac/internal/records"
)

// Response is a canned result for a command pattern.
type Response struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Err      error
	// Delay makes Execute block, for exercising timeouts.
	Delay time.Duration
}

// MockTransport satisfies sshutil.Transport with scripted responses.
// Patterns are regular expressions matched against the full composed
// command line, tried in registration order.
type MockTransport struct {
	mu       sync.Mutex
	host     string
	closed   bool
	patterns []*regexp.Regexp
	replies  []Response

	// Commands records every command line executed, in order.
	Commands []string
}

// NewMockTransport creates a mock for the given host name.
func NewMockTransport(host string) *MockTransport {
	return &MockTransport{host: host}
}

// Respond registers a response for command lines matching pattern.
func (m *MockTransport) Respond(pattern string, resp Response) *MockTransport {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.patterns = append(m.patterns, regexp.MustCompile(pattern))
	m.replies = append(m.replies, resp)
	return m
}

// Execute matches cmdline against the scripted patterns. Unmatched
// commands succeed with empty output, which keeps session probes out of
// every test script.
func (m *MockTransport) Execute(ctx context.Context, cmdline string) (records.RawResult, error) {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return records.RawResult{}, errors.New(errors.ErrConnection,
			"Connection is closed",
			"Reconnect the session before issuing commands")
	}
	m.Commands = append(m.Commands, cmdline)
	var resp Response
	matched := false
	for i, p := range m.patterns {
		if p.MatchString(cmdline) {
			resp = m.replies[i]
			matched = true
			break
		}
	}
	m.mu.Unlock()

	if matched && resp.Delay > 0 {
		select {
		case <-ctx.Done():
			m.Close()
			return records.RawResult{}, errors.New(errors.ErrTimeout,
				"Command timed out: "+cmdline,
				"The remote command may still be running; its effects are not rolled back")
		case <-time.After(resp.Delay):
		}
	}

	if !matched {
		return records.RawResult{Command: cmdline, Duration: time.Millisecond}, nil
	}
	if resp.Err != nil {
		return records.RawResult{}, resp.Err
	}
	return records.RawResult{
		Command:  cmdline,
		Stdout:   resp.Stdout,
		Stderr:   resp.Stderr,
		ExitCode: resp.ExitCode,
		Duration: time.Millisecond,
	}, nil
}

// Close marks the transport closed; later Execute calls fail with a
// connection error.
func (m *MockTransport) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *MockTransport) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// Host returns the mock host name.
func (m *MockTransport) Host() string { return m.host }

// Address returns a fake resolved address.
func (m *MockTransport) Address() string { return m.host + ":22" }
