package cmd

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/tarush10000/Sooru-Demo/domain/plan"
	"github.com/tarush10000/Sooru-Demo/domain/share"
)

func newOptionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "List the plan options, export formats and share platforms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			table := tablewriter.NewWriter(out)
			table.Header("Field", "Label", "Options")
			for _, spec := range plan.Fields() {
				if err := table.Append(string(spec.Field), spec.Label, strings.Join(spec.Options, " | ")); err != nil {
					return err
				}
			}
			if err := table.Render(); err != nil {
				return err
			}

			fmt.Fprintln(out)
			exports := make([]string, 0, len(share.ExportOptions()))
			for _, o := range share.ExportOptions() {
				exports = append(exports, o.Label)
			}
			platforms := make([]string, 0, len(share.Platforms()))
			for _, p := range share.Platforms() {
				platforms = append(platforms, string(p))
			}
			fmt.Fprintf(out, "Export options:  %s\n", strings.Join(exports, ", "))
			fmt.Fprintf(out, "Share platforms: %s\n", strings.Join(platforms, ", "))
			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(newOptionsCmd())
}
