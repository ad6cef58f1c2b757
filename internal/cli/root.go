// Package cli wires the cobra command tree. Each command opens one
// session, runs its actions, renders the records, and exits; nothing
// stays resident.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/rileyhilliard/rmac/internal/errors"
	"github.com/spf13/cobra"
)

// Persistent flags shared by every command.
var (
	configFlag   string
	hostFlag     string
	timeoutFlag  time.Duration
	passwordFlag bool
	insecureFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "rmac",
	Short: "Inspect and control remote Linux hosts over SSH",
	Long: `rmac runs inspection and control commands on remote Linux hosts
over SSH and turns their output into structured records.

Hosts come from a .rmac.yaml inventory (see 'rmac init') or directly
from --host with an SSH string or ~/.ssh/config alias.

Examples:
  rmac init
  rmac info --host web1
  rmac ps --host admin@203.0.113.7
  rmac exec --host web1 -- systemctl status nginx`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&hostFlag, "host", "", "host name from config, or an SSH string")
	rootCmd.PersistentFlags().DurationVar(&timeoutFlag, "timeout", 0, "per-command timeout (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&passwordFlag, "password", false, "prompt for an SSH password")
	rootCmd.PersistentFlags().BoolVar(&insecureFlag, "insecure-host-key", false, "skip known_hosts verification")
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(exitCodeFor(err))
	}
}

// exitCodeFor maps the error taxonomy to shell exit codes so scripts
// can distinguish "host down" from "command failed".
func exitCodeFor(err error) int {
	switch {
	case errors.IsCode(err, errors.ErrConnection):
		return 3
	case errors.IsCode(err, errors.ErrTimeout):
		return 4
	case errors.IsCode(err, errors.ErrConfig), errors.IsCode(err, errors.ErrInvalid):
		return 2
	default:
		return 1
	}
}
