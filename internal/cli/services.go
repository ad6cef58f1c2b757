package cli

import (
	"context"
	"fmt"

	"github.com/rileyhilliard/rmac/internal/actions"
	"github.com/rileyhilliard/rmac/internal/ui"
	"github.com/spf13/cobra"
)

var servicesActive bool

// servicesCmd lists systemd service units.
var servicesCmd = &cobra.Command{
	Use:   "services",
	Short: "List systemd services on the remote host",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, cleanup, err := openSession()
		if err != nil {
			return err
		}
		defer cleanup()

		units, err := actions.Bind(session).Service().List(context.Background())
		if err != nil {
			return err
		}

		if servicesActive {
			filtered := units.Units[:0]
			for _, u := range units.Units {
				if u.ActiveState == "active" {
					filtered = append(filtered, u)
				}
			}
			units.Units = filtered
			units.Count = len(filtered)
		}

		fmt.Print(ui.RenderServices(units))
		return nil
	},
}

func init() {
	servicesCmd.Flags().BoolVar(&servicesActive, "active", false, "show only active services")
	rootCmd.AddCommand(servicesCmd)
}
