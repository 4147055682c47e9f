package model

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidGeometry signals that no bracket layout exists for a piece
// within the bracket-count ceiling. It only occurs when the edge window
// contradicts the requested spacing.
var ErrInvalidGeometry = errors.New("no valid bracket geometry")

// maxBracketSearch caps the bracket-count search in NonStandardPiece.
const maxBracketSearch = 100

// StandardPiece computes bracket geometry for a catalog-length piece.
// Standard lengths divide evenly into whole bracket intervals, so both
// edge distances land on (spacing-gap)/2, the value that keeps bracket
// rhythm continuous across the gap to a neighbouring piece.
func StandardPiece(length, spacing, gap float64) AnglePiece {
	count := int(math.Round((length + gap) / spacing))
	start := spacing/2 - gap/2
	return AnglePiece{
		ID:           newPieceID(),
		Length:       length,
		BracketCount: count,
		Spacing:      spacing,
		StartOffset:  start,
		Positions:    bracketPositions(start, spacing, count),
		IsStandard:   true,
	}
}

// NonStandardPiece finds a bracket layout for an ad hoc length. Starting
// from the minimum count that respects maxSpacing, each count is tried
// first at exactly maxSpacing and then at the spacing rounded up to the
// hardware's slot pitch, with the leftover split symmetrically across both
// ends. A layout is accepted once the symmetric overhang falls inside the
// edge window. Counts above maxBracketSearch mean the window and spacing
// contradict each other, which is fatal.
func NonStandardPiece(length, maxSpacing, slotPitch float64, edges EdgeWindow) (AnglePiece, error) {
	if length <= 0 || maxSpacing <= 0 || slotPitch <= 0 {
		return AnglePiece{}, fmt.Errorf("piece %.2fmm at spacing %.2fmm: %w", length, maxSpacing, ErrInvalidGeometry)
	}

	count := int(math.Ceil(length / maxSpacing))
	if count < 2 {
		count = 2
	}

	for ; count <= maxBracketSearch; count++ {
		// Exact spacing with symmetric overhang.
		if over := (length - float64(count-1)*maxSpacing) / 2; edges.Contains(over) {
			return nonStandardLayout(length, maxSpacing, count, over), nil
		}

		// Brackets only reposition in whole slot steps, so fall back to the
		// continuous-rhythm spacing rounded up to the slot pitch.
		slotted := math.Ceil(length/float64(count)/slotPitch) * slotPitch
		if slotted <= maxSpacing {
			if over := (length - float64(count-1)*slotted) / 2; edges.Contains(over) {
				return nonStandardLayout(length, slotted, count, over), nil
			}
		}
	}

	return AnglePiece{}, fmt.Errorf("piece %.2fmm at max spacing %.2fmm, edges [%.1f, %.1f]: %w",
		length, maxSpacing, edges.Min, edges.Max, ErrInvalidGeometry)
}

func nonStandardLayout(length, spacing float64, count int, start float64) AnglePiece {
	return AnglePiece{
		ID:           newPieceID(),
		Length:       length,
		BracketCount: count,
		Spacing:      spacing,
		StartOffset:  start,
		Positions:    bracketPositions(start, spacing, count),
		IsStandard:   false,
	}
}

func bracketPositions(start, spacing float64, count int) []float64 {
	positions := make([]float64, count)
	for i := range positions {
		positions[i] = start + float64(i)*spacing
	}
	return positions
}

// ValidEdges reports whether both edge distances of a piece lie inside the
// window. Assembly uses this as a post-hoc check; the primary constraint
// handling lives in NonStandardPiece.
func ValidEdges(p AnglePiece, edges EdgeWindow) bool {
	if len(p.Positions) == 0 {
		return false
	}
	return edges.Contains(p.Positions[0]) && edges.Contains(p.EndOffset())
}
