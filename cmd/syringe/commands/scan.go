package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func (c *CLI) newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "List the injectable types found in the compiled output",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := c.settings(cmd)
			if err != nil {
				return err
			}
			deps, _ := cmd.Flags().GetBool("deps")

			report, err := c.components.App.Scan(cmd.Context(), s.Layout, deps)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, candidate := range report.Candidates {
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", candidate.Name, candidate.Marker, candidate.Field, candidate.Origin)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d candidate(s), classes %s\n", len(report.Candidates), report.Fingerprint)
			return nil
		},
	}
	cmd.Flags().Bool("deps", false, "Also scan the dependency classpath")
	return cmd
}
