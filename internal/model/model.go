package model

import (
	"fmt"
	"math"

	"github.com/google/uuid"
)

// Hardware family constants for the default wall-support angle system.
// These become per-profile values when an alternative hardware family is
// configured (see HardwareProfile).
const (
	DefaultGap             = 10.0   // Clearance between adjacent pieces (mm)
	SlotPitch              = 50.0   // Bracket slot repositioning granularity (mm)
	LengthIncrement        = 5.0    // Manufacturing length grid (mm)
	DefaultMaxAngleLength  = 1490.0 // Longest manufacturable piece (mm)
	DefaultMinEdgeDistance = 35.0   // Closest a bracket may sit to a piece end (mm)
)

// EdgeWindow is the allowed range for the distance between a piece's
// physical end and its nearest bracket.
type EdgeWindow struct {
	Min float64 `json:"min"` // mm
	Max float64 `json:"max"` // mm
}

// Contains reports whether d lies inside the window. A small tolerance
// absorbs float rounding from fractional-millimeter inputs.
func (w EdgeWindow) Contains(d float64) bool {
	const tol = 1e-6
	return d >= w.Min-tol && d <= w.Max+tol
}

// AnglePiece is a single manufacturable piece of angle with its bracket
// geometry. Positions are offsets from the piece start; Positions[0] equals
// StartOffset and consecutive positions differ by Spacing.
type AnglePiece struct {
	ID           string    `json:"id"`
	Length       float64   `json:"length"`        // mm
	BracketCount int       `json:"bracket_count"` // >= 2 for non-standard pieces
	Spacing      float64   `json:"spacing"`       // realized centre-to-centre distance (mm)
	StartOffset  float64   `json:"start_offset"`  // first bracket offset from piece start (mm)
	Positions    []float64 `json:"positions"`     // bracket offsets from piece start (mm)
	IsStandard   bool      `json:"is_standard"`
}

// EndOffset returns the distance from the last bracket to the piece end.
func (p AnglePiece) EndOffset() float64 {
	if len(p.Positions) == 0 {
		return p.Length
	}
	return p.Length - p.Positions[len(p.Positions)-1]
}

// newPieceID returns a short unique identifier for a piece.
func newPieceID() string {
	return uuid.New().String()[:8]
}

// RunSegmentation is one fully realized cutting plan for a run: an ordered
// piece sequence plus derived aggregates. Gaps sit between adjacent pieces,
// so GapCount is PieceCount-1 and TotalLength includes the gaps.
type RunSegmentation struct {
	Pieces           []AnglePiece `json:"pieces"`
	TotalLength      float64      `json:"total_length"` // pieces + gaps (mm)
	TotalBrackets    int          `json:"total_brackets"`
	PieceCount       int          `json:"piece_count"`
	GapCount         int          `json:"gap_count"`
	TotalGapDistance float64      `json:"total_gap_distance"` // mm
	AverageSpacing   float64      `json:"average_spacing"`    // bracket-interval-weighted mean (mm)
	UniqueLengths    int          `json:"unique_lengths"`
	Score            float64      `json:"score"`
	Warnings         []string     `json:"warnings,omitempty"`
}

// PieceLengths returns the ordered piece lengths of the segmentation.
func (s RunSegmentation) PieceLengths() []float64 {
	lengths := make([]float64, len(s.Pieces))
	for i, p := range s.Pieces {
		lengths[i] = p.Length
	}
	return lengths
}

// RunRequest describes a single run to lay out. Zero-valued optional fields
// are resolved by WithDefaults; fractional-millimeter lengths are accepted
// and propagated exactly.
type RunRequest struct {
	TotalRunLength  float64   `json:"total_run_length"`  // mm, > 0
	BracketCentres  float64   `json:"bracket_centres"`   // mm, > 0
	MaxAngleLength  float64   `json:"max_angle_length"`  // mm, default 1490
	Gap             float64   `json:"gap"`               // mm, default 10
	MinEdgeDistance float64   `json:"min_edge_distance"` // mm, default 35
	MaxEdgeDistance float64   `json:"max_edge_distance"` // mm, default 0.5 * BracketCentres
	SlotPitch       float64   `json:"slot_pitch"`        // mm, default 50
	LengthIncrement float64   `json:"length_increment"`  // mm, default 5
	StockLengths    []float64 `json:"stock_lengths,omitempty"` // catalog override, empty = standard table
}

// NewRunRequest builds a request for the default hardware family.
func NewRunRequest(totalRunLength, bracketCentres float64) RunRequest {
	return RunRequest{
		TotalRunLength: totalRunLength,
		BracketCentres: bracketCentres,
	}.WithDefaults()
}

// WithDefaults returns a copy with every unset optional field resolved.
func (r RunRequest) WithDefaults() RunRequest {
	if r.MaxAngleLength == 0 {
		r.MaxAngleLength = DefaultMaxAngleLength
	}
	if r.Gap == 0 {
		r.Gap = DefaultGap
	}
	if r.MinEdgeDistance == 0 {
		r.MinEdgeDistance = DefaultMinEdgeDistance
	}
	if r.MaxEdgeDistance == 0 {
		r.MaxEdgeDistance = r.BracketCentres / 2
	}
	if r.SlotPitch == 0 {
		r.SlotPitch = SlotPitch
	}
	if r.LengthIncrement == 0 {
		r.LengthIncrement = LengthIncrement
	}
	return r
}

// Edges returns the edge-distance window of the request.
func (r RunRequest) Edges() EdgeWindow {
	return EdgeWindow{Min: r.MinEdgeDistance, Max: r.MaxEdgeDistance}
}

// Validate checks the request for contradictory or missing values.
func (r RunRequest) Validate() error {
	if r.TotalRunLength <= 0 {
		return fmt.Errorf("total run length must be positive, got %.2fmm", r.TotalRunLength)
	}
	if r.BracketCentres <= 0 {
		return fmt.Errorf("bracket centres must be positive, got %.2fmm", r.BracketCentres)
	}
	if r.MaxAngleLength <= 0 {
		return fmt.Errorf("max angle length must be positive, got %.2fmm", r.MaxAngleLength)
	}
	if r.MinEdgeDistance > r.MaxEdgeDistance && r.MaxEdgeDistance > 0 {
		return fmt.Errorf("edge window is empty: min %.2fmm > max %.2fmm", r.MinEdgeDistance, r.MaxEdgeDistance)
	}
	if r.SlotPitch < 0 {
		return fmt.Errorf("slot pitch must be positive, got %.2fmm", r.SlotPitch)
	}
	if r.LengthIncrement < 0 {
		return fmt.Errorf("length increment must be positive, got %.2fmm", r.LengthIncrement)
	}
	return nil
}

// LengthGroup is one row of the material summary: how many pieces of a
// given length the optimal plan needs.
type LengthGroup struct {
	Length     float64 `json:"length"` // mm
	Count      int     `json:"count"`
	IsStandard bool    `json:"is_standard"`
}

// MaterialSummary aggregates the optimal segmentation for ordering.
type MaterialSummary struct {
	TotalAngleLength float64       `json:"total_angle_length"` // mm of angle to order (no gaps)
	TotalPieces      int           `json:"total_pieces"`
	TotalBrackets    int           `json:"total_brackets"`
	Breakdown        []LengthGroup `json:"breakdown"` // descending by length
}

// RunResult is the outcome of one optimization call.
type RunResult struct {
	Optimal    RunSegmentation   `json:"optimal"`
	AllOptions []RunSegmentation `json:"all_options"` // ascending by score
	Summary    MaterialSummary   `json:"summary"`
}

// SameLength compares two lengths on the hundredth-of-a-millimeter grid,
// which is finer than any input the importers or CLI accept.
func SameLength(a, b float64) bool {
	return math.Abs(a-b) < 0.005
}
