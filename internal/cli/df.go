package cli

import (
	"context"
	"fmt"

	"github.com/rileyhilliard/rmac/internal/actions"
	"github.com/rileyhilliard/rmac/internal/ui"
	"github.com/spf13/cobra"
)

// dfCmd reports filesystem usage.
var dfCmd = &cobra.Command{
	Use:   "df [path...]",
	Short: "Show filesystem usage on the remote host",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, cleanup, err := openSession()
		if err != nil {
			return err
		}
		defer cleanup()

		usage, err := actions.Bind(session).FS().DiskUsage(context.Background(), args...)
		if err != nil {
			return err
		}

		fmt.Print(ui.RenderDiskUsage(usage))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dfCmd)
}
