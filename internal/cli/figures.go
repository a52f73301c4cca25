package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/mathdoc/internal/catalog"
)

func newFiguresCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "figures [exercise]",
		Short: "List catalogued figures",
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

			recs, err := cat.List(name)
			if err != nil {
				return sysError(fmt.Errorf("list figures: %w", err))
			}

			if flags.jsonMode {
				return writeJSON(cmd, recs)
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "EXERCISE\tSEQ\tFILE\tRUN\tCREATED")
			for _, r := range recs {
				fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\n", r.Exercise, r.Seq, r.File, r.RunID, r.CreatedAt.Format(time.RFC3339))
			}
			return w.Flush()
		},
	}
}
