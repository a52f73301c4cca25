package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/mathdoc/internal/catalog"
)

func newCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean [exercise]",
		Short: "Delete catalogued figure files",
		Long:  "Clean deletes the figure files recorded for an exercise (all exercises when none is named) and removes them from the catalog.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var name string
			if len(args) == 1 {
				name = args[0]
			}

			cat, err := catalog.OpenFor(state.cfg.OutputDir)
			if err != nil {
				return sysError(fmt.Errorf("open catalog: %w", err))
			}
			defer cat.Close()

			removed, err := removeFigures(cat, state.cfg.OutputDir, name)
			if err != nil {
				return sysError(fmt.Errorf("clean: %w", err))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %d figure(s)\n", len(removed))
			return nil
		},
	}
}
