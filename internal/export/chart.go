package export

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/piwi3910/AngleCut/internal/model"
)

// maxChartedOptions caps how many candidates the comparison chart shows;
// beyond this the tail is all heavily penalized layouts nobody would pick.
const maxChartedOptions = 25

// ExportScoreChart renders an HTML bar chart comparing the evaluated
// segmentations: score and bracket count per candidate, best first. Useful
// when reviewing why the optimizer rejected a visually appealing layout.
func ExportScoreChart(path string, result model.RunResult) error {
	if len(result.AllOptions) == 0 {
		return fmt.Errorf("no options to chart")
	}

	options := result.AllOptions
	if len(options) > maxChartedOptions {
		options = options[:maxChartedOptions]
	}

	labels := make([]string, len(options))
	scores := make([]opts.BarData, len(options))
	brackets := make([]opts.BarData, len(options))
	for i, seg := range options {
		labels[i] = candidateLabel(seg)
		scores[i] = opts.BarData{Value: seg.Score}
		brackets[i] = opts.BarData{Value: seg.TotalBrackets}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Run layout candidates",
			Subtitle: fmt.Sprintf("%d evaluated, lower score is better", len(result.AllOptions)),
		}),
	)
	bar.SetXAxis(labels).
		AddSeries("Score", scores).
		AddSeries("Brackets", brackets)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()

	return bar.Render(f)
}

// candidateLabel summarizes a segmentation as its piece lengths.
func candidateLabel(seg model.RunSegmentation) string {
	label := ""
	for i, p := range seg.Pieces {
		if i > 0 {
			label += "+"
		}
		label += trimmedMM(p.Length)
	}
	return label
}
