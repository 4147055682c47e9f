package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/piwi3910/AngleCut/internal/engine"
	"github.com/piwi3910/AngleCut/internal/export"
	"github.com/piwi3910/AngleCut/internal/model"
	"github.com/piwi3910/AngleCut/internal/project"
)

// exportFlags collects the export destinations shared by plan and batch.
type exportFlags struct {
	pdf    string
	labels string
	xlsx   string
	chart  string
}

func (f *exportFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.pdf, "pdf", "", "write a cutting drawing PDF to this path")
	cmd.Flags().StringVar(&f.labels, "labels", "", "write a QR label sheet PDF to this path")
	cmd.Flags().StringVar(&f.xlsx, "xlsx", "", "write a cut list workbook to this path")
	cmd.Flags().StringVar(&f.chart, "chart", "", "write a score comparison chart (HTML) to this path")
}

// run executes the requested exports and records them in the app config.
func (f *exportFlags) run(cmd *cobra.Command, result model.RunResult, req model.RunRequest) error {
	log := loggerFromContext(cmd.Context())

	type job struct {
		path string
		fn   func(string) error
	}
	jobs := []job{
		{f.pdf, func(p string) error { return export.ExportPDF(p, result, req) }},
		{f.labels, func(p string) error { return export.ExportLabels(p, result) }},
		{f.xlsx, func(p string) error { return export.ExportExcel(p, result, req) }},
		{f.chart, func(p string) error { return export.ExportScoreChart(p, result) }},
	}

	var written []string
	for _, j := range jobs {
		if j.path == "" {
			continue
		}
		if err := j.fn(j.path); err != nil {
			return fmt.Errorf("export %s: %w", j.path, err)
		}
		log.Info("exported", "path", j.path)
		written = append(written, j.path)
	}

	if len(written) > 0 {
		configPath := project.DefaultConfigPath()
		config, err := project.LoadAppConfig(configPath)
		if err != nil {
			log.Warn("could not load app config", "error", err)
			return nil
		}
		for _, p := range written {
			config.AddRecentExport(p)
		}
		if err := project.SaveAppConfig(configPath, config); err != nil {
			log.Warn("could not save app config", "error", err)
		}
	}
	return nil
}

// planFlags are the run geometry flags shared by plan and compare.
type planFlags struct {
	length    float64
	centres   float64
	maxLength float64
	gap       float64
	minEdge   float64
	maxEdge   float64
	profile   string
}

func (f *planFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64VarP(&f.length, "length", "l", 0, "total run length in mm (required)")
	cmd.Flags().Float64VarP(&f.centres, "centres", "c", 0, "bracket centre-to-centre distance in mm")
	cmd.Flags().Float64Var(&f.maxLength, "max-length", 0, "longest manufacturable piece in mm")
	cmd.Flags().Float64Var(&f.gap, "gap", 0, "clearance between adjacent pieces in mm")
	cmd.Flags().Float64Var(&f.minEdge, "min-edge", 0, "minimum bracket distance from a piece end in mm")
	cmd.Flags().Float64Var(&f.maxEdge, "max-edge", 0, "maximum bracket distance from a piece end in mm")
	cmd.Flags().StringVarP(&f.profile, "profile", "p", "", "hardware profile name")
	_ = cmd.MarkFlagRequired("length")
}

// request builds a RunRequest from the flags, applying the hardware profile
// first so explicit flags win over profile values. An unset --centres falls
// back to the configured default.
func (f *planFlags) request(config model.AppConfig) (model.RunRequest, error) {
	centres := f.centres
	if centres == 0 {
		centres = config.DefaultCentres
	}

	req := model.RunRequest{
		TotalRunLength:  f.length,
		BracketCentres:  centres,
		MaxAngleLength:  f.maxLength,
		Gap:             f.gap,
		MinEdgeDistance: f.minEdge,
		MaxEdgeDistance: f.maxEdge,
	}

	if f.profile != "" {
		custom, err := project.LoadCustomProfiles(project.DefaultProfilesPath())
		if err != nil {
			return model.RunRequest{}, fmt.Errorf("load profiles: %w", err)
		}
		profile := project.ResolveProfile(f.profile, custom)
		profile.ApplyToRequest(&req)
	}

	req = req.WithDefaults()
	return req, req.Validate()
}

// loadAppConfig reads the saved preferences, falling back to the defaults
// when the file is missing or unreadable.
func loadAppConfig(cmd *cobra.Command) model.AppConfig {
	config, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		loggerFromContext(cmd.Context()).Warn("could not load app config", "error", err)
		return model.DefaultAppConfig()
	}
	return config
}

func newPlanCmd() *cobra.Command {
	var flags planFlags
	var exports exportFlags
	var showAll bool

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Plan the cut layout for a single run",
		Example: `  anglecut plan --length 2321 --centres 500
  anglecut plan -l 5072.5 -c 300 --max-edge 150 --pdf drawing.pdf`,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := loggerFromContext(cmd.Context())

			config := loadAppConfig(cmd)
			req, err := flags.request(config)
			if err != nil {
				return err
			}
			log.Debug("planning run",
				"length", req.TotalRunLength,
				"centres", req.BracketCentres,
				"maxLength", req.MaxAngleLength)

			result, err := engine.New(req).Optimize()
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderResult("Run", result))
			if showAll || config.ShowAllOptions {
				fmt.Fprintln(cmd.OutOrStdout(), renderOptions(result.AllOptions))
			}

			return exports.run(cmd, result, req)
		},
	}

	flags.register(cmd)
	exports.register(cmd)
	cmd.Flags().BoolVar(&showAll, "all", false, "list every candidate plan, not just the optimal one")
	return cmd
}

// renderOptions lists every ranked candidate plan on one line each.
func renderOptions(options []model.RunSegmentation) string {
	var b strings.Builder
	b.WriteString(styleTitle.Render(fmt.Sprintf("All %d candidate plan(s)", len(options))))
	for i, opt := range options {
		parts := make([]string, len(opt.Pieces))
		for j, p := range opt.Pieces {
			parts[j] = formatMM(p.Length)
		}
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("  %2d. [%s] %d brackets, score %.0f",
			i+1, strings.Join(parts, " + "), opt.TotalBrackets, opt.Score))
	}
	return b.String()
}
