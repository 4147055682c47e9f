package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardLengths_CuratedSpacing(t *testing.T) {
	assert.Equal(t, []float64{1490, 990}, StandardLengths(500, 1490))
	assert.Equal(t, []float64{1490, 1190, 890, 590}, StandardLengths(300, 1490))
	assert.Equal(t, []float64{1390, 1040, 690}, StandardLengths(350, 1490))
}

func TestStandardLengths_MaxStockFiltersCatalog(t *testing.T) {
	// With 1190mm transportable stock the 1490 entries disappear.
	assert.Equal(t, []float64{990}, StandardLengths(500, 1190))
	assert.Equal(t, []float64{1190, 890, 590}, StandardLengths(300, 1190))
}

func TestStandardLengths_DerivedForUnknownSpacing(t *testing.T) {
	lengths := StandardLengths(475, 1490)
	require.NotEmpty(t, lengths)

	// k*475 - 10 for k = 3, 2; the single-bracket k=1 length is omitted.
	assert.Equal(t, []float64{1415, 940}, lengths)

	for i, l := range lengths {
		assert.LessOrEqual(t, l, 1490.0)
		assert.Greater(t, l, 0.0)
		assert.InDelta(t, 0, math.Mod(l, LengthIncrement), 1e-9, "length %.1f off the 5mm grid", l)
		if i > 0 {
			assert.Less(t, l, lengths[i-1], "lengths must be descending")
		}
	}
}

func TestStandardLengths_NonPositiveSpacing(t *testing.T) {
	assert.Empty(t, StandardLengths(0, 1490))
	assert.Empty(t, StandardLengths(-100, 1490))
}

func TestStandardLengths_NoSingleBracketStock(t *testing.T) {
	// Every derived length must divide into at least one full bracket
	// interval; a k=1 entry would assemble into a one-bracket piece.
	for _, spacing := range []float64{220, 475, 333, 600} {
		for _, l := range StandardLengths(spacing, 1490) {
			count := math.Round((l + DefaultGap) / spacing)
			assert.GreaterOrEqual(t, count, 2.0,
				"spacing %.0f produced single-bracket length %.0f", spacing, l)
		}
	}
}

func TestCatalog_OverrideFiltersAndSorts(t *testing.T) {
	req := RunRequest{
		TotalRunLength: 5000,
		BracketCentres: 500,
		StockLengths:   []float64{890, 1490, 2400, 1190, -5},
	}.WithDefaults()

	assert.Equal(t, []float64{1490, 1190, 890}, req.Catalog())
}

func TestCatalog_DefaultsToStandardTable(t *testing.T) {
	req := NewRunRequest(2321, 500)
	assert.Equal(t, StandardLengths(500, 1490), req.Catalog())
}

func TestInCatalog(t *testing.T) {
	catalog := []float64{1490, 990}

	assert.True(t, InCatalog(catalog, 1490))
	assert.True(t, InCatalog(catalog, 990.000001))
	assert.False(t, InCatalog(catalog, 821))
	assert.False(t, InCatalog(nil, 1490))
}
