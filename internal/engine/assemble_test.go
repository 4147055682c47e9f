package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/AngleCut/internal/model"
)

// assembleRequest builds a defaulted request at 500mm centres for a total
// that the lengths under test reproduce.
func assembleRequest(total float64) model.RunRequest {
	return model.NewRunRequest(total, 500)
}

func TestAssemble_CatalogPlusRemainder(t *testing.T) {
	catalog := model.StandardLengths(500, 1490)

	seg, err := Assemble([]float64{1490, 821}, assembleRequest(2321), catalog)
	require.NoError(t, err)

	assert.InDelta(t, 2321, seg.TotalLength, 1e-9)
	assert.Equal(t, 5, seg.TotalBrackets)
	assert.Equal(t, 2, seg.PieceCount)
	assert.Equal(t, 1, seg.GapCount)
	assert.InDelta(t, 10, seg.TotalGapDistance, 1e-9)
	assert.Equal(t, 2, seg.UniqueLengths)
	assert.InDelta(t, 500, seg.AverageSpacing, 1e-9)

	require.Len(t, seg.Pieces, 2)
	assert.True(t, seg.Pieces[0].IsStandard)
	assert.False(t, seg.Pieces[1].IsStandard)
}

func TestAssemble_SinglePiece(t *testing.T) {
	catalog := model.StandardLengths(500, 1490)

	seg, err := Assemble([]float64{1490}, assembleRequest(1490), catalog)
	require.NoError(t, err)

	assert.Equal(t, 0, seg.GapCount)
	assert.Zero(t, seg.TotalGapDistance)
	assert.InDelta(t, 1490, seg.TotalLength, 1e-9)
	assert.Equal(t, 3, seg.TotalBrackets)
}

func TestAssemble_RebalanceAlignsGapFacingEdge(t *testing.T) {
	// The 985mm remainder's symmetric edge is 242.5mm; forcing the gap-facing
	// edge to the 245mm inner value shifts the implied length by only 2.5mm,
	// so the rebalance sticks.
	seg, err := Assemble([]float64{1490, 985}, assembleRequest(2485), []float64{1490})
	require.NoError(t, err)
	require.Empty(t, seg.Warnings)

	remainder := seg.Pieces[1]
	assert.InDelta(t, 245, remainder.StartOffset, 1e-9)
	assert.Equal(t, []float64{245, 745}, remainder.Positions)
	assert.InDelta(t, 240, remainder.EndOffset(), 1e-9)
}

func TestAssemble_RebalanceRevertsOnLargeShift(t *testing.T) {
	// The 821mm remainder sits at 160.5mm symmetric edges; aligning its
	// gap-facing edge to 245mm would imply a 905.5mm piece. The piece keeps
	// its symmetric layout and the plan carries a warning.
	seg, err := Assemble([]float64{1490, 821}, assembleRequest(2321), []float64{1490, 990})
	require.NoError(t, err)

	require.Len(t, seg.Warnings, 1)
	assert.Contains(t, seg.Warnings[0], "keeping symmetric edges")

	remainder := seg.Pieces[1]
	assert.InDelta(t, 160.5, remainder.StartOffset, 1e-9)
	assert.InDelta(t, 160.5, remainder.EndOffset(), 1e-9)
}

func TestAssemble_WeightedAverageSpacing(t *testing.T) {
	// A slotted 300mm remainder next to two 500mm standard pieces: the mean
	// weights each piece by its bracket interval count, not per piece.
	seg, err := Assemble([]float64{1490, 1490, 560}, assembleRequest(3560), []float64{1490, 990})
	require.NoError(t, err)

	// Standard pieces contribute two 500mm intervals each, the remainder a
	// single 300mm interval: (4*500 + 1*300) / 5.
	assert.InDelta(t, 460, seg.AverageSpacing, 1e-9)
}

func TestAssemble_InfeasiblePiece(t *testing.T) {
	req := assembleRequest(997)
	req.MinEdgeDistance = 249
	req.MaxEdgeDistance = 250

	_, err := Assemble([]float64{997}, req, []float64{1490, 990})
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidGeometry)
}
