package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rileyhilliard/rmac/internal/errors"
	"github.com/rileyhilliard/rmac/internal/parsers"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	execCwd   string
	execParse string
)

// execCmd runs one arbitrary command through the engine and relays its
// output verbatim.
var execCmd = &cobra.Command{
	Use:   "exec [flags] -- <command> [args...]",
	Short: "Run one command on the remote host",
	Long: `Execute a single command on the remote host and print its output.

The command runs through the same pipeline as the structured commands:
arguments are shell-quoted individually, so remote shell expansion
never sees them.

With --parse, stdout is fed through the named family parser and the
typed record prints as YAML instead of raw text.

Examples:
  rmac exec -- uptime
  rmac exec --cwd /var/log -- tail -n 20 syslog
  rmac exec --host web1 -- systemctl status nginx
  rmac exec --parse free -- free -b`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var parse parsers.ParseFunc
		if execParse != "" {
			fn, ok := parsers.Lookup(execParse)
			if !ok {
				return errors.New(errors.ErrInvalid,
					"Unknown parser family: "+execParse,
					"Available families: "+strings.Join(parsers.Families(), ", "))
			}
			parse = fn
		}

		session, cleanup, err := openSession()
		if err != nil {
			return err
		}
		defer cleanup()

		if execCwd != "" {
			session.State.Cd(execCwd)
		}

		result, err := session.Do(context.Background(), args[0], args[1:]...)
		if err != nil {
			// A failed command still produced output worth relaying.
			if r, ok := errors.ResultOf(err); ok {
				fmt.Print(r.Stdout)
				fmt.Fprint(os.Stderr, r.Stderr)
			}
			return err
		}

		if parse != nil {
			record, err := parse(result.Stdout)
			if err != nil {
				return errors.WrapWithCode(err, errors.ErrParse,
					"Could not parse the command output as '"+execParse+"'",
					"Run without --parse to see the raw output")
			}
			rendered, err := yaml.Marshal(record)
			if err != nil {
				return errors.WrapWithCode(err, errors.ErrParse,
					"Could not render the parsed record", "")
			}
			fmt.Print(string(rendered))
			fmt.Fprint(os.Stderr, result.Stderr)
			return nil
		}

		fmt.Print(result.Stdout)
		fmt.Fprint(os.Stderr, result.Stderr)
		return nil
	},
}

func init() {
	execCmd.Flags().StringVar(&execCwd, "cwd", "", "working directory for the command")
	execCmd.Flags().StringVar(&execParse, "parse", "", "parse stdout with a family parser and print YAML")
	rootCmd.AddCommand(execCmd)
}
