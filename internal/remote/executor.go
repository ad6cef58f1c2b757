package remote

import (
	"context"
	"fmt"

	"github.com/rileyhilliard/rmac/internal/command"
	"github.com/rileyhilliard/rmac/internal/errors"
	"github.com/rileyhilliard/rmac/internal/records"
)

// Do composes and runs one command through the session: build the
// command line from the current overlay, execute it, classify the raw
// result. Callers get the RawResult back on success; any failure is a
// typed error carrying the RawResult when one exists.
//
// A timed-out or dropped command marks the session dead; further calls
// fail with a connection error until the caller invokes Reconnect.
func (s *Session) Do(ctx context.Context, base string, args ...string) (records.RawResult, error) {
	if s.dead {
		return records.RawResult{}, errors.New(errors.ErrConnection,
			fmt.Sprintf("Session %s is no longer usable", s.ID),
			"Call Reconnect() to open a fresh channel")
	}

	cmdline, err := command.Build(base, args, s.State)
	if err != nil {
		return records.RawResult{}, err
	}

	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	s.log.Debug("session %s exec: %s", s.ID, cmdline)
	result, err := s.transport.Execute(ctx, cmdline)
	if err != nil {
		// Timeouts tear the channel down inside the transport; either
		// way this channel can't be trusted for the next command.
		if errors.IsCode(err, errors.ErrTimeout) || errors.IsCode(err, errors.ErrConnection) {
			s.dead = true
		}
		return records.RawResult{}, err
	}

	if clsErr := Classify(base, result); clsErr != nil {
		return records.RawResult{}, clsErr
	}
	return result, nil
}

// Run is the full engine pipeline: Do, then hand stdout to the parser.
// A parser rejection is an ErrParse carrying the RawResult — distinct
// from a command failure, which never reaches the parser at all.
func Run[T any](ctx context.Context, s *Session, base string, args []string, parse func(string) (T, error)) (T, error) {
	var zero T

	result, err := s.Do(ctx, base, args...)
	if err != nil {
		return zero, err
	}

	record, err := parse(result.Stdout)
	if err != nil {
		return zero, errors.WrapWithCode(err, errors.ErrParse,
			fmt.Sprintf("Could not interpret output of %q", result.Command),
			"The tool's output format may differ on this host; the raw stdout is attached").
			WithResult(result)
	}
	return record, nil
}
