package cli

import (
	"fmt"

	"github.com/rileyhilliard/rmac/internal/config"
	"github.com/spf13/cobra"
)

// initCmd writes a starter config file.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter .rmac.yaml",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configFlag
		if path == "" {
			path = config.ConfigFileName
		}
		if err := config.Init(path); err != nil {
			return err
		}
		fmt.Printf("Wrote %s — edit the hosts section, then try: rmac info\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
