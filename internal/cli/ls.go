package cli

import (
	"context"
	"fmt"

	"github.com/rileyhilliard/rmac/internal/actions"
	"github.com/rileyhilliard/rmac/internal/ui"
	"github.com/spf13/cobra"
)

// lsCmd lists a remote directory.
var lsCmd = &cobra.Command{
	Use:   "ls [dir]",
	Short: "List a directory on the remote host",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, cleanup, err := openSession()
		if err != nil {
			return err
		}
		defer cleanup()

		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}

		listing, err := actions.Bind(session).FS().List(context.Background(), dir)
		if err != nil {
			return err
		}

		fmt.Print(ui.RenderListing(listing))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lsCmd)
}
