package model

import (
	"math"
	"sort"
)

// standardLengthTable holds the hand-curated stock lengths for the bracket
// spacings the factory actually tools for. Each length follows
// L = k*centres - gap but short offcut-grade entries are omitted, matching
// manufacturing preference rather than the pure formula.
var standardLengthTable = map[float64][]float64{
	500: {1490, 990},
	450: {1340, 890},
	400: {1190, 790},
	350: {1390, 1040, 690},
	300: {1490, 1190, 890, 590},
	250: {1490, 1240, 990, 740, 490},
	200: {1390, 1190, 990, 790, 590},
}

// StandardLengths returns the manufacturable stock lengths for a bracket
// spacing, longest first. Known spacings come from the curated table;
// anything else falls back to the L = k*centres - gap ladder rounded to the
// 5mm manufacturing grid. All results lie in (0, maxStock].
func StandardLengths(spacing, maxStock float64) []float64 {
	if table, ok := standardLengthTable[spacing]; ok {
		lengths := make([]float64, 0, len(table))
		for _, l := range table {
			if l <= maxStock {
				lengths = append(lengths, l)
			}
		}
		return lengths
	}
	return derivedLengths(spacing, maxStock)
}

// derivedLengths computes catalog candidates for spacings the table does
// not cover. The ladder stops at k=2: a k=1 length carries a single
// bracket, and every manufactured piece needs at least two.
func derivedLengths(spacing, maxStock float64) []float64 {
	if spacing <= 0 {
		return nil
	}
	var lengths []float64
	for k := int((maxStock + DefaultGap) / spacing); k >= 2; k-- {
		l := float64(k)*spacing - DefaultGap
		if l <= 0 {
			continue
		}
		l = math.Round(l/LengthIncrement) * LengthIncrement
		if l <= 0 || l > maxStock {
			continue
		}
		lengths = append(lengths, l)
	}
	return lengths
}

// Catalog resolves the stock catalog for a request: an explicit override
// from a hardware profile when present, filtered to maxStock and sorted
// longest first, otherwise the standard table for the bracket spacing.
func (r RunRequest) Catalog() []float64 {
	if len(r.StockLengths) == 0 {
		return StandardLengths(r.BracketCentres, r.MaxAngleLength)
	}
	lengths := make([]float64, 0, len(r.StockLengths))
	for _, l := range r.StockLengths {
		if l > 0 && l <= r.MaxAngleLength {
			lengths = append(lengths, l)
		}
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(lengths)))
	return lengths
}

// InCatalog reports whether length matches one of the catalog lengths.
func InCatalog(catalog []float64, length float64) bool {
	for _, l := range catalog {
		if SameLength(l, length) {
			return true
		}
	}
	return false
}
