package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rileyhilliard/rmac/internal/config"
	"github.com/rileyhilliard/rmac/internal/errors"
	"github.com/rileyhilliard/rmac/internal/logger"
	"github.com/rileyhilliard/rmac/internal/remote"
	"github.com/rileyhilliard/rmac/internal/ui"
	"github.com/rileyhilliard/rmac/pkg/sshutil"
	"golang.org/x/term"
)

// dialTimeout bounds the TCP connect per SSH candidate.
const dialTimeout = 10 * time.Second

// openSession resolves the target host, dials it, and returns a live
// session plus a cleanup func. The --host flag may name an inventory
// entry or carry a raw SSH string; an unconfigured host still works for
// one-off use.
func openSession() (*remote.Session, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	ui.SetColorMode(cfg.Output.Color)

	host, err := resolveTarget(cfg)
	if err != nil {
		return nil, nil, err
	}

	opts := sshutil.Options{
		KeyPath:         host.Key,
		InsecureHostKey: insecureFlag,
	}
	if passwordFlag {
		pw, promptErr := promptPassword()
		if promptErr != nil {
			return nil, nil, promptErr
		}
		opts.Password = pw
	}

	dial := func() (sshutil.Transport, error) {
		var lastErr error
		for _, conn := range host.SSH {
			client, dialErr := sshutil.Dial(conn, dialTimeout, opts)
			if dialErr == nil {
				return client, nil
			}
			lastErr = dialErr
		}
		return nil, lastErr
	}

	session, err := remote.Open(dial, logger.Default())
	if err != nil {
		sshutil.CloseAgent()
		return nil, nil, err
	}

	session.Timeout = cfg.Timeout
	if timeoutFlag > 0 {
		session.Timeout = timeoutFlag
	}

	switch {
	case host.Dir == "" || host.Dir == "~":
		// probe already set cwd to the login home
	case strings.HasPrefix(host.Dir, "~/"):
		session.State.Cd(host.Dir[2:])
	default:
		session.State.Cd(host.Dir)
	}
	for k, v := range host.Env {
		session.State.Set(k, v)
	}

	cleanup := func() {
		session.Close()
		sshutil.CloseAgent()
	}
	return session, cleanup, nil
}

func loadConfig() (*config.Config, error) {
	path, err := config.Find(configFlag)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return config.DefaultConfig(), nil
	}
	return config.Load(path)
}

// resolveTarget maps --host to an inventory entry, falling back to
// treating the flag value as a literal SSH string.
func resolveTarget(cfg *config.Config) (config.Host, error) {
	if hostFlag != "" {
		if host, ok := cfg.Hosts[hostFlag]; ok {
			return host, nil
		}
		return config.Host{SSH: []string{hostFlag}}, nil
	}

	_, host, err := cfg.Resolve("")
	if err != nil {
		return config.Host{}, err
	}
	return host, nil
}

func promptPassword() (string, error) {
	if !ui.IsTerminal(os.Stdin) {
		return "", errors.New(errors.ErrInvalid,
			"--password needs an interactive terminal",
			"Use key-based auth for scripted runs")
	}

	fmt.Fprint(os.Stderr, "SSH password: ")
	pw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", errors.Wrap(err, "Couldn't read the password")
	}
	return string(pw), nil
}
