package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/mathdoc/internal/exercise"
)

type exerciseJSON struct {
	Name  string `json:"name"`
	Title string `json:"title"`
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available exercises",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all := exercise.All()
			if flags.jsonMode {
				out := make([]exerciseJSON, len(all))
				for i, e := range all {
					out[i] = exerciseJSON{Name: e.Name, Title: e.Title}
				}
				return writeJSON(cmd, out)
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tTITLE")
			for _, e := range all {
				fmt.Fprintf(w, "%s\t%s\n", e.Name, e.Title)
			}
			return w.Flush()
		},
	}
}

// writeJSON prints v as indented JSON.
func writeJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return sysError(fmt.Errorf("marshal output: %w", err))
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
