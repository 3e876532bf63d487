package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tarush10000/Sooru-Demo/domain/estimate"
	"github.com/tarush10000/Sooru-Demo/domain/plan"
	"github.com/tarush10000/Sooru-Demo/domain/share"
	"github.com/tarush10000/Sooru-Demo/internal/ui"
)

// estimateOutput is what --output json|yaml prints.
type estimateOutput struct {
	plan.Estimate `yaml:",inline"`
	Summary       string `json:"summary" yaml:"summary"`
}

func newEstimateCmd() *cobra.Command {
	var (
		details plan.Details
		output  string
		seed    uint64
		strict  bool
	)

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Print the cost breakdown and analysis for a plan",
		Long: `Compute the same estimate the cost step of the demo shows. Any field may be
left out; missing fields use the calculator defaults.

Examples:
  sooru estimate --rooms "4 Rooms" --style Modern --size "Large (2500-4000 sq ft)"
  sooru estimate --rooms 3 --output json --seed 7`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var src plan.RandSource
			if cmd.Flags().Changed("seed") {
				src = rand.New(rand.NewPCG(seed, seed))
			}

			svc := estimate.NewService(plan.NewAnalyzer(src), share.NewComposer(""), strict, cliLogger())
			est, err := svc.Estimate(cmd.Context(), details, estimate.SourceCLI)
			if err != nil {
				return err
			}
			summary, err := svc.Summary(est)
			if err != nil {
				return err
			}
			return writeEstimate(cmd.OutOrStdout(), output, estimateOutput{Estimate: est, Summary: summary})
		},
	}

	cmd.Flags().StringVar(&details.Rooms, "rooms", "", `number of rooms, e.g. "3 Rooms"`)
	cmd.Flags().StringVar(&details.Style, "style", "", "style preference: Modern, Traditional, Minimalist, Industrial")
	cmd.Flags().StringVar(&details.Budget, "budget", "", `budget range, e.g. "$100k - $200k"`)
	cmd.Flags().StringVar(&details.Size, "size", "", `house size, e.g. "Medium (1500-2500 sq ft)"`)
	cmd.Flags().StringVarP(&output, "output", "o", "table", "output format (table, json, yaml)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed the budget variance for repeatable output")
	cmd.Flags().BoolVar(&strict, "strict", false, "reject values that are not in the option catalog")
	return cmd
}

func writeEstimate(w io.Writer, format string, out estimateOutput) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return err
		}
		return enc.Close()
	case "table", "":
		color := colorEnabled()
		fmt.Fprintln(w, out.Summary)
		fmt.Fprint(w, ui.EstimateTable(out.Estimate, color, 0).Render())
		fmt.Fprint(w, ui.AnalysisTable(out.Analysis, color, 0).Render())
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want table, json or yaml)", format)
	}
}

func init() {
	rootCmd.AddCommand(newEstimateCmd())
}
