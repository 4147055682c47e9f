package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/AngleCut/internal/engine"
)

func newCompareCmd() *cobra.Command {
	var flags planFlags

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare what-if hardware scenarios for one run",
		Long: `Compare plans the same run under several hardware scenarios: the
requested hardware, shorter transportable stock, and a relaxed edge window.
The table shows how piece count, bracket count, and score shift.`,
		Example: `  anglecut compare --length 5072.5 --centres 300`,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := loggerFromContext(cmd.Context())

			req, err := flags.request(loadAppConfig(cmd))
			if err != nil {
				return err
			}

			scenarios := engine.BuildDefaultScenarios(req)
			log.Debug("comparing scenarios", "count", len(scenarios))
			results := engine.CompareScenarios(scenarios)

			rows := make([][]string, 0, len(results))
			for _, r := range results {
				if r.Err != nil {
					rows = append(rows, []string{r.Scenario.Name, "-", "-", "-", "error"})
					log.Error("scenario failed", "scenario", r.Scenario.Name, "error", r.Err)
					continue
				}
				rows = append(rows, []string{
					r.Scenario.Name,
					fmt.Sprintf("%d", r.PieceCount),
					fmt.Sprintf("%d", r.TotalBrackets),
					fmt.Sprintf("%d", r.UniqueLengths),
					fmt.Sprintf("%.0f", r.Score),
				})
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderComparison(rows))
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
