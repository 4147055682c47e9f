package engine

import (
	"fmt"
	"math"
)

// Custom split search bounds. Piece counts and bracket counts are explored
// in narrow windows around the arithmetic minimum, so the work stays
// polynomial in these constants regardless of run length.
const (
	customPieceWindow  = 3   // extra piece counts above the minimum
	maxCustomPieces    = 10  // hard cap on piece count
	bracketBandBelow   = 2   // bracket totals tried below the estimate
	bracketBandAbove   = 3   // bracket totals tried above the estimate
	minCustomPiece     = 150.0
	outerEdgeMin       = 35.0
	outerEdgeMaxFactor = 0.6 // of the bracket spacing
)

// customSplits derives piece-length lists directly from the run arithmetic
// for runs the catalog cannot cover well. Pieces adjacent to a cut receive
// the inner edge (spacing-gap)/2 on that side, which preserves bracket
// rhythm across the gap; the two run ends absorb the leftover as symmetric
// outer edges. Every kept list reproduces the run total exactly after
// snapping to the 5mm manufacturing grid.
func customSplits(total, spacing, maxStock, gap, increment float64) [][]float64 {
	nMin := int(math.Ceil(total / (maxStock + gap)))
	if nMin < 1 {
		nMin = 1
	}
	nMax := nMin + customPieceWindow
	if nMax > maxCustomPieces {
		nMax = maxCustomPieces
	}
	inner := (spacing - gap) / 2

	var out [][]float64
	for n := nMin; n <= nMax; n++ {
		avail := total - float64(n-1)*gap
		if avail <= 0 {
			continue
		}

		base := int(math.Ceil(avail / spacing))
		for k := base - bracketBandBelow; k <= base+bracketBandAbove; k++ {
			if k < 2*n {
				continue // every piece needs at least two brackets
			}
			if lengths, ok := rhythmSplit(n, k, avail, spacing, inner, maxStock, increment); ok {
				out = append(out, lengths)
			}
		}

		if lengths, ok := evenSplit(n, avail, maxStock, increment); ok {
			out = append(out, lengths)
		}
	}
	return dedupeLengthLists(out)
}

// rhythmSplit distributes k brackets over n pieces as evenly as possible
// (remainder brackets go to the first pieces) and derives each length from
// its edges plus whole bracket intervals. Returns false when the outer
// edges fall outside their window or snapping breaks the exact total.
func rhythmSplit(n, k int, avail, spacing, inner, maxStock, increment float64) ([]float64, bool) {
	outer := (avail - float64(k-n)*spacing - 2*float64(n-1)*inner) / 2
	if outer < outerEdgeMin || outer > outerEdgeMaxFactor*spacing {
		return nil, false
	}

	counts := make([]int, n)
	for i := range counts {
		counts[i] = k / n
		if i < k%n {
			counts[i]++
		}
	}

	lengths := make([]float64, n)
	for i, c := range counts {
		left, right := inner, inner
		if i == 0 {
			left = outer
		}
		if i == n-1 {
			right = outer
		}
		lengths[i] = left + float64(c-1)*spacing + right
	}

	return snapLengths(lengths, avail, maxStock, increment)
}

// evenSplit is the simpler fallback: equal pieces on the 5mm grid with the
// residue absorbed by the last piece.
func evenSplit(n int, avail, maxStock, increment float64) ([]float64, bool) {
	if n < 1 {
		return nil, false
	}
	equal := math.Round(avail/float64(n)/increment) * increment
	if equal <= minCustomPiece || equal > maxStock {
		return nil, false
	}

	lengths := make([]float64, n)
	sum := 0.0
	for i := 0; i < n-1; i++ {
		lengths[i] = equal
		sum += equal
	}
	last := avail - sum
	if last <= minCustomPiece || last > maxStock {
		return nil, false
	}
	lengths[n-1] = last
	return lengths, true
}

// snapLengths rounds raw lengths to 1mm, pushes the rounding residue into
// the longest piece, then snaps everything to the manufacturing grid. The
// candidate survives only if the snapped pieces still sum to the available
// length exactly and every piece is a legal stock length.
func snapLengths(lengths []float64, avail, maxStock, increment float64) ([]float64, bool) {
	snapped := make([]float64, len(lengths))
	sum := 0.0
	longest := 0
	for i, l := range lengths {
		snapped[i] = math.Round(l)
		sum += snapped[i]
		if snapped[i] > snapped[longest] {
			longest = i
		}
	}
	snapped[longest] += avail - sum

	sum = 0
	for i := range snapped {
		snapped[i] = math.Round(snapped[i]/increment) * increment
		sum += snapped[i]
	}
	if math.Abs(sum-avail) > lengthTolerance {
		return nil, false
	}
	for _, l := range snapped {
		if l <= minCustomPiece || l > maxStock {
			return nil, false
		}
	}
	return snapped, true
}

// dedupeLengthLists removes exact-duplicate piece-length lists, keeping
// first occurrences in order.
func dedupeLengthLists(lists [][]float64) [][]float64 {
	seen := make(map[string]bool, len(lists))
	kept := lists[:0]
	for _, lengths := range lists {
		key := lengthKey(lengths)
		if !seen[key] {
			seen[key] = true
			kept = append(kept, lengths)
		}
	}
	return kept
}

func lengthKey(lengths []float64) string {
	key := ""
	for _, l := range lengths {
		key += fmt.Sprintf("%.2f|", l)
	}
	return key
}
