// Package command composes full shell command lines from a base
// command, its arguments, and the session's state overlay. Each
// composed line is self-contained: it carries its own cd and exports
// because the transport is stateless between invocations.
package command

import (
	"fmt"
	"strings"

	"github.com/rileyhilliard/rmac/internal/errors"
	"github.com/rileyhilliard/rmac/internal/state"
	"github.com/rileyhilliard/rmac/internal/util"
)

// Build produces one shell command line equivalent to: export every env
// entry, cd into the overlay's cwd, then run base with each argument
// quoted as a single literal token.
//
// Every value is single-quoted, so whitespace, globs, and metacharacters
// in arguments are data, never a second command.
func Build(base string, args []string, overlay *state.Overlay) (string, error) {
	if base == "" {
		return "", errors.New(errors.ErrInvalid,
			"Empty base command",
			"Pass the executable name as the base command")
	}
	if err := checkSafe(base); err != nil {
		return "", err
	}
	for _, a := range args {
		if err := checkSafe(a); err != nil {
			return "", err
		}
	}

	var parts []string

	for _, key := range overlay.EnvKeys() {
		if !validEnvKey(key) {
			return "", errors.New(errors.ErrInvalid,
				fmt.Sprintf("Invalid environment variable name %q", key),
				"Names must match [A-Za-z_][A-Za-z0-9_]*")
		}
		value, _ := overlay.Get(key)
		parts = append(parts, fmt.Sprintf("export %s=%s", key, util.ShellQuote(value)))
	}

	parts = append(parts, "cd "+util.ShellQuote(overlay.Cwd()))

	cmd := make([]string, 0, len(args)+1)
	cmd = append(cmd, util.ShellQuote(base))
	for _, a := range args {
		cmd = append(cmd, util.ShellQuote(a))
	}
	parts = append(parts, strings.Join(cmd, " "))

	return strings.Join(parts, " && "), nil
}

// checkSafe rejects values that cannot be represented inside single
// quotes at all.
func checkSafe(s string) error {
	if strings.ContainsRune(s, 0) {
		return errors.New(errors.ErrInvalid,
			"Argument contains a NUL byte",
			"NUL cannot be passed through a shell command line")
	}
	return nil
}

// validEnvKey reports whether key is a portable shell identifier. The
// base command is quoted by the caller's choice of name, but env keys
// land on the left of '=' unquoted, so they must be clean.
func validEnvKey(key string) bool {
	if key == "" {
		return false
	}
	for i, r := range key {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
