package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRunRequest_AppliesDefaults(t *testing.T) {
	req := NewRunRequest(2321, 500)

	assert.Equal(t, 2321.0, req.TotalRunLength)
	assert.Equal(t, 500.0, req.BracketCentres)
	assert.Equal(t, DefaultMaxAngleLength, req.MaxAngleLength)
	assert.Equal(t, DefaultGap, req.Gap)
	assert.Equal(t, DefaultMinEdgeDistance, req.MinEdgeDistance)
	assert.Equal(t, 250.0, req.MaxEdgeDistance, "max edge defaults to half the centres")
	assert.Equal(t, SlotPitch, req.SlotPitch)
	assert.Equal(t, LengthIncrement, req.LengthIncrement)
}

func TestWithDefaults_KeepsExplicitValues(t *testing.T) {
	req := RunRequest{
		TotalRunLength:  1000,
		BracketCentres:  400,
		MaxAngleLength:  1190,
		Gap:             8,
		MinEdgeDistance: 40,
		MaxEdgeDistance: 180,
	}.WithDefaults()

	assert.Equal(t, 1190.0, req.MaxAngleLength)
	assert.Equal(t, 8.0, req.Gap)
	assert.Equal(t, 40.0, req.MinEdgeDistance)
	assert.Equal(t, 180.0, req.MaxEdgeDistance)
}

func TestValidate_RejectsBadRequests(t *testing.T) {
	cases := []struct {
		name string
		req  RunRequest
	}{
		{"zero run length", RunRequest{TotalRunLength: 0, BracketCentres: 500}.WithDefaults()},
		{"negative run length", RunRequest{TotalRunLength: -10, BracketCentres: 500}.WithDefaults()},
		{"zero centres", RunRequest{TotalRunLength: 1000, BracketCentres: 0}},
		{"empty edge window", RunRequest{
			TotalRunLength: 1000, BracketCentres: 500,
			MinEdgeDistance: 200, MaxEdgeDistance: 100,
		}.WithDefaults()},
		{"negative slot pitch", RunRequest{
			TotalRunLength: 1000, BracketCentres: 500, SlotPitch: -50,
		}.WithDefaults()},
		{"negative length increment", RunRequest{
			TotalRunLength: 1000, BracketCentres: 500, LengthIncrement: -5,
		}.WithDefaults()},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, tc.req.Validate())
		})
	}

	assert.NoError(t, NewRunRequest(1490, 500).Validate())
}

func TestEdgeWindow_Contains(t *testing.T) {
	w := EdgeWindow{Min: 35, Max: 250}

	assert.True(t, w.Contains(35))
	assert.True(t, w.Contains(250))
	assert.True(t, w.Contains(136.25))
	assert.False(t, w.Contains(34.9))
	assert.False(t, w.Contains(250.1))
}

func TestEdges_MatchesRequestWindow(t *testing.T) {
	req := NewRunRequest(5072.5, 300)
	req.MaxEdgeDistance = 150

	assert.Equal(t, EdgeWindow{Min: 35, Max: 150}, req.Edges())
}

func TestEndOffset(t *testing.T) {
	p := AnglePiece{Length: 1490, Positions: []float64{245, 745, 1245}}
	assert.InDelta(t, 245, p.EndOffset(), 1e-9)

	empty := AnglePiece{Length: 500}
	assert.Equal(t, 500.0, empty.EndOffset())
}

func TestPieceLengths(t *testing.T) {
	seg := RunSegmentation{Pieces: []AnglePiece{{Length: 1490}, {Length: 821}}}
	assert.Equal(t, []float64{1490, 821}, seg.PieceLengths())
}

func TestSameLength(t *testing.T) {
	assert.True(t, SameLength(1490, 1490))
	assert.True(t, SameLength(572.5, 572.5000001))
	assert.False(t, SameLength(1490, 1490.01))
}

func TestNewPieceID_ShortAndUnique(t *testing.T) {
	a := newPieceID()
	b := newPieceID()

	assert.Len(t, a, 8)
	assert.NotEqual(t, a, b)
}
