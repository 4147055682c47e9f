package engine

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/piwi3910/AngleCut/internal/model"
)

// ErrNoValidSegmentation signals that no candidate decomposition of the run
// into pieces and gaps reproduces the requested length.
var ErrNoValidSegmentation = errors.New("no valid segmentation")

// Optimizer plans how a run is cut into pieces and where brackets sit on
// each piece. Every call is a pure function over the request; concurrent
// optimizers need no coordination.
type Optimizer struct {
	Request model.RunRequest
}

func New(req model.RunRequest) *Optimizer {
	return &Optimizer{Request: req.WithDefaults()}
}

// Optimize generates candidate cutting plans from both strategies, realizes
// and scores each, and returns the lowest-scoring plan plus the full ranked
// list and a material summary.
func (o *Optimizer) Optimize() (model.RunResult, error) {
	req := o.Request.WithDefaults()
	if err := req.Validate(); err != nil {
		return model.RunResult{}, err
	}

	catalog := req.Catalog()

	candidates := combinations(req.TotalRunLength, catalog, req.Gap)
	candidates = append(candidates, customSplits(
		req.TotalRunLength, req.BracketCentres, req.MaxAngleLength, req.Gap, req.LengthIncrement)...)
	candidates = dedupeLengthLists(candidates)

	var options []model.RunSegmentation
	var firstErr error
	for _, lengths := range candidates {
		if maxLength(lengths) > req.MaxAngleLength+lengthTolerance {
			continue
		}
		seg, err := Assemble(lengths, req, catalog)
		if err != nil {
			// An infeasible candidate among feasible ones is dropped; the
			// error only surfaces when the inputs leave nothing buildable.
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if math.Abs(seg.TotalLength-req.TotalRunLength) > lengthTolerance {
			continue
		}
		seg.Score = Score(seg)
		options = append(options, seg)
	}

	if len(options) == 0 {
		if firstErr != nil {
			return model.RunResult{}, firstErr
		}
		return model.RunResult{}, fmt.Errorf("run %.2fmm at %.2fmm centres: %w",
			req.TotalRunLength, req.BracketCentres, ErrNoValidSegmentation)
	}

	// Stable sort keeps generation order among equal scores, so repeated
	// calls with identical input pick the identical optimal plan.
	sort.SliceStable(options, func(i, j int) bool {
		return options[i].Score < options[j].Score
	})

	return model.RunResult{
		Optimal:    options[0],
		AllOptions: options,
		Summary:    buildSummary(options[0]),
	}, nil
}

func maxLength(lengths []float64) float64 {
	longest := 0.0
	for _, l := range lengths {
		if l > longest {
			longest = l
		}
	}
	return longest
}

// buildSummary groups the optimal segmentation's pieces by length,
// longest first.
func buildSummary(seg model.RunSegmentation) model.MaterialSummary {
	summary := model.MaterialSummary{
		TotalPieces:   seg.PieceCount,
		TotalBrackets: seg.TotalBrackets,
	}

	for _, p := range seg.Pieces {
		summary.TotalAngleLength += p.Length
		found := false
		for i := range summary.Breakdown {
			if model.SameLength(summary.Breakdown[i].Length, p.Length) {
				summary.Breakdown[i].Count++
				found = true
				break
			}
		}
		if !found {
			summary.Breakdown = append(summary.Breakdown, model.LengthGroup{
				Length:     p.Length,
				Count:      1,
				IsStandard: p.IsStandard,
			})
		}
	}

	sort.SliceStable(summary.Breakdown, func(i, j int) bool {
		return summary.Breakdown[i].Length > summary.Breakdown[j].Length
	})
	return summary
}
