package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JamesMcGahn/faster-folder/internal/deps"
)

func newDepsCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "deps",
		Short: "Check the external tools a run depends on",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}

			statuses := deps.CheckBinaries(deps.Requirements())
			statuses = append(statuses, deps.CheckDirectory(cfg.Paths.Directory))

			rows := make([][]string, 0, len(statuses))
			allOK := true
			for _, status := range statuses {
				state := "ok"
				if !status.Available {
					state = "missing"
					allOK = false
				}
				rows = append(rows, []string{status.Name, status.Command, state, status.Detail})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Dependency", "Resolved", "Status", "Detail"}, rows))
			if !allOK {
				return fmt.Errorf("one or more dependencies are unavailable")
			}
			return nil
		},
	}
}
