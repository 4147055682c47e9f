// Package engine implements the run layout search: candidate generation,
// segmentation assembly, scoring and the optimizer entry point.
package engine

import "math"

// maxPiecesPerRun bounds the combination search depth. 50 pieces covers a
// 75m run of the shortest catalog stock, far beyond any single supplied run.
const maxPiecesPerRun = 50

// lengthTolerance absorbs float error when checking exact run totals.
const lengthTolerance = 1e-6

// minRemainderLength is the shortest final piece a combination branch may
// close with. It matches the custom strategy's piece floor; anything
// shorter has no room for two brackets at legal edge distances.
const minRemainderLength = 150.0

// combinations enumerates decompositions of the run into catalog lengths
// plus one free remainder piece. The depth-first search appends catalog
// lengths in non-increasing order (repeats allowed, earlier catalog entries
// never revisited) so permutations of the same multiset appear once. Every
// branch may also close by emitting whatever length remains, which is how
// runs that the catalog cannot cover exactly stay reachable.
func combinations(total float64, catalog []float64, gap float64) [][]float64 {
	if len(catalog) == 0 {
		return nil
	}
	largest := catalog[0]

	var out [][]float64
	var search func(remaining float64, partial []float64, from int)
	search = func(remaining float64, partial []float64, from int) {
		if len(partial) >= maxPiecesPerRun {
			return
		}

		// Close the branch: the remainder becomes the final piece.
		if remaining > minRemainderLength && remaining <= largest+lengthTolerance {
			candidate := make([]float64, len(partial)+1)
			copy(candidate, partial)
			candidate[len(partial)] = remaining
			out = append(out, candidate)
		}

		for i := from; i < len(catalog); i++ {
			l := catalog[i]
			if l+gap <= remaining+lengthTolerance {
				search(remaining-l-gap, append(partial, l), i)
			}
		}
	}
	search(total, make([]float64, 0, 8), 0)

	// Keep only decompositions whose pieces plus interior gaps reproduce
	// the run length exactly.
	kept := out[:0]
	for _, lengths := range out {
		if len(lengths) <= maxPiecesPerRun && sumsToRun(lengths, gap, total) {
			kept = append(kept, lengths)
		}
	}
	return kept
}

// sumsToRun reports whether the piece lengths plus one gap per interior
// joint equal the run total exactly.
func sumsToRun(lengths []float64, gap, total float64) bool {
	sum := gap * float64(len(lengths)-1)
	for _, l := range lengths {
		sum += l
	}
	return math.Abs(sum-total) < lengthTolerance
}
