package engine

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/piwi3910/AngleCut/internal/model"
)

// maxRebalanceShift is how far forcing inner edges may move a piece's
// realized length before the rebalance is abandoned for that piece.
const maxRebalanceShift = 5.0

// Assemble turns a candidate piece-length list into a fully realized
// segmentation. Catalog lengths get standard geometry; anything else goes
// through the non-standard search. Non-standard pieces inside a multi-piece
// run then have their gap-facing edges forced to the inner-edge value so
// bracket rhythm carries across the cut. When forcing would shift a piece's
// realized length by more than 5mm the piece reverts to its symmetric
// layout and a warning is recorded; one imperfect joint never fails the
// whole plan.
func Assemble(lengths []float64, req model.RunRequest, catalog []float64) (model.RunSegmentation, error) {
	n := len(lengths)
	spacing := req.BracketCentres
	gap := req.Gap
	edges := req.Edges()
	inner := (spacing - gap) / 2

	seg := model.RunSegmentation{
		Pieces:     make([]model.AnglePiece, 0, n),
		PieceCount: n,
	}
	if n > 1 {
		seg.GapCount = n - 1
		seg.TotalGapDistance = float64(n-1) * gap
	}

	for i, length := range lengths {
		var piece model.AnglePiece
		if model.InCatalog(catalog, length) {
			piece = model.StandardPiece(length, spacing, gap)
		} else {
			var err error
			piece, err = model.NonStandardPiece(length, spacing, req.SlotPitch, edges)
			if err != nil {
				return model.RunSegmentation{}, err
			}
			if n > 1 {
				var warning string
				piece, warning = rebalanceEdges(piece, inner, i > 0, i < n-1)
				if warning != "" {
					seg.Warnings = append(seg.Warnings, warning)
				}
			}
		}
		seg.Pieces = append(seg.Pieces, piece)
	}

	seg.TotalLength = seg.TotalGapDistance
	spacings := make([]float64, n)
	weights := make([]float64, n)
	uniques := make(map[string]bool, n)
	for i, p := range seg.Pieces {
		seg.TotalLength += p.Length
		seg.TotalBrackets += p.BracketCount
		spacings[i] = p.Spacing
		weights[i] = float64(p.BracketCount - 1)
		uniques[fmt.Sprintf("%.2f", p.Length)] = true
	}
	seg.UniqueLengths = len(uniques)
	seg.AverageSpacing = stat.Mean(spacings, weights)

	return seg, nil
}

// rebalanceEdges forces the gap-facing edges of a non-standard piece to the
// inner-edge value. The cut length is fixed, so the check compares the
// length the forced layout implies against the intended length; a shift
// beyond maxRebalanceShift reverts the piece to its symmetric layout.
func rebalanceEdges(p model.AnglePiece, inner float64, leftInner, rightInner bool) (model.AnglePiece, string) {
	if !leftInner && !rightInner {
		return p, ""
	}

	start := p.StartOffset
	end := p.EndOffset()
	if leftInner {
		start = inner
	}
	if rightInner {
		end = inner
	}

	implied := start + float64(p.BracketCount-1)*p.Spacing + end
	if math.Abs(implied-p.Length) > maxRebalanceShift {
		return p, fmt.Sprintf(
			"piece %s (%.1fmm): aligning edges to the bracket rhythm would shift its length by %.1fmm, keeping symmetric edges",
			p.ID, p.Length, math.Abs(implied-p.Length))
	}

	p.StartOffset = start
	for i := range p.Positions {
		p.Positions[i] = start + float64(i)*p.Spacing
	}
	return p, ""
}
