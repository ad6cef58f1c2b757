// Package remote is the execution engine: it composes command lines
// from session state, runs them over a transport, classifies the raw
// results, and hands successful stdout to a parser. It is the only
// entry point the action layer uses.
package remote

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rileyhilliard/rmac/internal/logger"
	"github.com/rileyhilliard/rmac/internal/state"
	"github.com/rileyhilliard/rmac/pkg/sshutil"
)

// DialFunc opens a transport. Session keeps it around so Reconnect can
// replace a torn-down channel.
type DialFunc func() (sshutil.Transport, error)

// Session owns one transport channel and one state overlay. Commands
// issued through it are strictly sequential: each call completes or
// fails before the next is composed, so every command line sees a
// consistent cwd/env snapshot. A session must not be shared across
// goroutines; open one session per worker instead.
type Session struct {
	ID      string
	State   *state.Overlay
	Timeout time.Duration // per-command bound; zero means no bound

	transport sshutil.Transport
	dial      DialFunc
	log       logger.Logger
	dead      bool

	// facts probed at connect time
	uid     int
	hasSudo bool
}

// Open dials a transport and probes initial remote state (cwd, uid,
// sudo availability). The caller must Close the session on every exit
// path.
func Open(dial DialFunc, log logger.Logger) (*Session, error) {
	if log == nil {
		log = logger.Noop()
	}
	transport, err := dial()
	if err != nil {
		return nil, err
	}

	s := &Session{
		ID:        uuid.NewString(),
		State:     state.New(),
		transport: transport,
		dial:      dial,
		log:       log,
	}

	if err := s.probe(); err != nil {
		transport.Close()
		return nil, err
	}

	s.log.Debug("session %s opened to %s (uid=%d sudo=%v cwd=%s)",
		s.ID, transport.Host(), s.uid, s.hasSudo, s.State.Cwd())
	return s, nil
}

// OpenTransport wraps an already-connected transport, for tests and
// callers that manage dialing themselves. Reconnect is unavailable.
func OpenTransport(t sshutil.Transport, log logger.Logger) (*Session, error) {
	return Open(func() (sshutil.Transport, error) { return t, nil }, log)
}

// probe initializes the overlay from the live host: real home directory
// as cwd, numeric uid, and whether passwordless sudo works.
func (s *Session) probe() error {
	pwd, err := s.execRaw(context.Background(), "pwd")
	if err != nil {
		return err
	}
	if cwd := strings.TrimSpace(pwd.Stdout); strings.HasPrefix(cwd, "/") {
		s.State.Cd(cwd)
	}

	id, err := s.execRaw(context.Background(), "id -u")
	if err != nil {
		return err
	}
	if uid, convErr := strconv.Atoi(strings.TrimSpace(id.Stdout)); convErr == nil {
		s.uid = uid
	}

	// sudo -n exits non-zero when a password would be needed; that is a
	// probe answer, not a failure.
	sudo, err := s.execRaw(context.Background(), "sudo -n true")
	if err == nil {
		s.hasSudo = sudo.ExitCode == 0
	}

	return nil
}

// UID returns the numeric user id probed at connect time.
func (s *Session) UID() int { return s.uid }

// HasSudo reports whether passwordless sudo was available at connect time.
func (s *Session) HasSudo() bool { return s.hasSudo }

// Host returns the transport's host name.
func (s *Session) Host() string { return s.transport.Host() }

// Close releases the transport channel. The overlay is discarded with
// the session; nothing is persisted.
func (s *Session) Close() error {
	s.dead = true
	s.log.Debug("session %s closed", s.ID)
	return s.transport.Close()
}

// Reconnect replaces a torn-down channel with a fresh one. This is the
// session's only recovery path: after a timeout or connection error the
// caller decides whether to reconnect — nothing reconnects silently.
// The state overlay survives; remote facts are probed again.
func (s *Session) Reconnect() error {
	s.transport.Close()

	transport, err := s.dial()
	if err != nil {
		return err
	}
	s.transport = transport
	s.dead = false

	cwd := s.State.Cwd()
	if err := s.probe(); err != nil {
		s.dead = true
		return err
	}
	// Keep the caller's working directory across the reconnect.
	if cwd != state.DefaultCwd {
		s.State.Cd(cwd)
	}

	s.log.Debug("session %s reconnected to %s", s.ID, s.transport.Host())
	return nil
}

// execRaw bypasses the overlay for connect-time probes.
func (s *Session) execRaw(ctx context.Context, cmdline string) (r rawProbe, err error) {
	res, err := s.transport.Execute(ctx, cmdline)
	if err != nil {
		return rawProbe{}, err
	}
	return rawProbe{Stdout: res.Stdout, ExitCode: res.ExitCode}, nil
}

type rawProbe struct {
	Stdout   string
	ExitCode int
}
