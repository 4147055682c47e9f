package engine

import "github.com/piwi3910/AngleCut/internal/model"

// Scoring weights. Bracket count dominates, average spacing breaks ties in
// favour of fewer-but-wider layouts, and unique piece lengths break the
// remaining ties in favour of fabrication simplicity.
const (
	bracketWeight = 1000.0
	spacingWeight = 10.0

	// spacingPivot anchors the spacing tie-break term. Spacings supplied by
	// the upstream structural search top out at 500mm today; a caller above
	// 600mm would invert this term, so treat the value as provisional until
	// the hardware range is confirmed.
	spacingPivot = 600.0
)

// Score reduces a segmentation to one comparable scalar; lower is better.
func Score(seg model.RunSegmentation) float64 {
	return float64(seg.TotalBrackets)*bracketWeight +
		(spacingPivot-seg.AverageSpacing)*spacingWeight +
		float64(seg.UniqueLengths)
}
