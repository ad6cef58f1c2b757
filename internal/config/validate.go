package config

import (
	"fmt"
	"strings"

	"github.com/rileyhilliard/rmac/internal/errors"
)

// Validate checks the config for errors and returns structured error
// messages.
func Validate(cfg *Config) error {
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but rmac only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Grab the latest rmac release")
	}

	for name, host := range cfg.Hosts {
		if err := validateHost(name, host); err != nil {
			return err
		}
	}

	if cfg.Default != "" {
		if _, ok := cfg.Hosts[cfg.Default]; !ok {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Default host '%s' is not defined under 'hosts:'", cfg.Default),
				"Add it, or point 'default:' at an existing host")
		}
	}

	if cfg.Timeout < 0 {
		return errors.New(errors.ErrConfig,
			"'timeout' cannot be negative",
			"Use a duration like '30s', or 0 for no bound")
	}

	switch cfg.Output.Color {
	case "", "auto", "always", "never":
	default:
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown color mode '%s'", cfg.Output.Color),
			"Use 'auto', 'always', or 'never'")
	}

	return nil
}

func validateHost(name string, host Host) error {
	if strings.ContainsAny(name, "@/ ") {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Host name '%s' contains invalid characters", name),
			"Host names are plain labels; put user@host strings under 'ssh:'")
	}

	if len(host.SSH) == 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Host '%s' has no 'ssh:' connection strings", name),
			"List at least one hostname, user@host, or SSH config alias")
	}
	for _, conn := range host.SSH {
		if strings.TrimSpace(conn) == "" {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Host '%s' has an empty ssh entry", name),
				"Remove the blank entry")
		}
	}

	if host.Dir != "" && !strings.HasPrefix(host.Dir, "/") && !strings.HasPrefix(host.Dir, "~") {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Host '%s' dir '%s' is not absolute", name, host.Dir),
			"Use an absolute path, or '~/...' for the login home")
	}

	for key := range host.Env {
		if !isEnvName(key) {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Host '%s' env key '%s' is not a valid variable name", name, key),
				"Keys must match [A-Za-z_][A-Za-z0-9_]*")
		}
	}

	return nil
}

func isEnvName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
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
