package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/piwi3910/AngleCut/internal/engine"
	"github.com/piwi3910/AngleCut/internal/export"
	"github.com/piwi3910/AngleCut/internal/importer"
)

func newBatchCmd() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "batch <file>",
		Short: "Plan every run in an imported CSV or Excel run list",
		Long: `Batch reads a run list from a CSV or Excel file and plans each row.
Columns are matched by header name (run length, centres, optional label and
max length); headerless files are read positionally.`,
		Args: cobra.ExactArgs(1),
		Example: `  anglecut batch runs.csv
  anglecut batch runs.xlsx --out-dir drawings/`,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := loggerFromContext(cmd.Context())

			imported := importer.ImportFile(args[0])
			for _, w := range imported.Warnings {
				log.Warn(w)
			}
			for _, e := range imported.Errors {
				log.Error(e)
			}
			if len(imported.Runs) == 0 {
				return fmt.Errorf("%s: no usable runs found", args[0])
			}
			log.Info("imported run list", "file", args[0], "runs", len(imported.Runs))

			failed := 0
			for _, run := range imported.Runs {
				result, err := engine.New(run.Request).Optimize()
				if err != nil {
					log.Error("planning failed", "run", run.Label, "error", err)
					failed++
					continue
				}

				fmt.Fprintln(cmd.OutOrStdout(), renderResult(run.Label, result))

				if outDir != "" {
					path := filepath.Join(outDir, slugify(run.Label)+".pdf")
					if err := export.ExportPDF(path, result, run.Request); err != nil {
						log.Error("export failed", "run", run.Label, "error", err)
						failed++
						continue
					}
					log.Info("exported drawing", "run", run.Label, "path", path)
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d run(s) failed", failed, len(imported.Runs))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&outDir, "out-dir", "", "write one cutting drawing PDF per run into this directory")
	return cmd
}

// slugify turns a run label into a safe file name.
func slugify(label string) string {
	mapped := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		case r == ' ' || r == '.':
			return '-'
		default:
			return -1
		}
	}, label)
	if mapped == "" {
		return "run"
	}
	return mapped
}
