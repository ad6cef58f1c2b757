package cli

import (
	"context"
	"fmt"

	"github.com/rileyhilliard/rmac/internal/actions"
	"github.com/rileyhilliard/rmac/internal/ui"
	"github.com/spf13/cobra"
)

// infoCmd summarizes host identity, uptime, load, and memory.
var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show host identity and vitals",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, cleanup, err := openSession()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx := context.Background()
		host := actions.Bind(session)

		uname, err := host.Sys().Uname(ctx)
		if err != nil {
			return err
		}
		osRelease, err := host.Sys().OSRelease(ctx)
		if err != nil {
			return err
		}
		uptime, err := host.Sys().Uptime(ctx)
		if err != nil {
			return err
		}
		load, err := host.Sys().LoadAverage(ctx)
		if err != nil {
			return err
		}
		mem, err := host.PS().Memory(ctx)
		if err != nil {
			return err
		}

		fmt.Print(ui.RenderHostInfo(uname, osRelease, uptime, load, mem))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
