package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/rileyhilliard/rmac/internal/actions"
	"github.com/rileyhilliard/rmac/internal/ui"
	"github.com/spf13/cobra"
)

var psTop int

// psCmd lists remote processes.
var psCmd = &cobra.Command{
	Use:   "ps",
	Short: "List processes on the remote host",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, cleanup, err := openSession()
		if err != nil {
			return err
		}
		defer cleanup()

		procs, err := actions.Bind(session).PS().List(context.Background())
		if err != nil {
			return err
		}

		if psTop > 0 && psTop < len(procs.Processes) {
			sort.SliceStable(procs.Processes, func(i, j int) bool {
				return procs.Processes[i].CPUPercent > procs.Processes[j].CPUPercent
			})
			procs.Processes = procs.Processes[:psTop]
			procs.Count = len(procs.Processes)
		}

		fmt.Print(ui.RenderProcesses(procs))
		return nil
	},
}

func init() {
	psCmd.Flags().IntVar(&psTop, "top", 0, "show only the N busiest processes by CPU")
	rootCmd.AddCommand(psCmd)
}
