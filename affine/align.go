package affine

import (
	"math"

	"github.com/alignkit/alignkit/scalar"
)

// Align computes the optimal global-alignment score of a against b under
// the affine gap model (Gotoh's three-matrix dynamic program).
// Returns (score, error).
//
// A nil opts uses DefaultOptions. Empty sequences are valid: aligning two
// empty sequences scores 0, and aligning an empty sequence against k
// elements scores the single gap run -GapOpen - (k-1)·GapContinue.
//
// Example:
//
//	score, err := affine.Align([]rune("AAAA"), []rune("AA"),
//		affine.Identity[rune](), nil)
func Align[T any](a, b []T, sim Similarity[T], opts *Options) (float64, error) {
	// Apply options or defaults
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if sim == nil {
		return 0, ErrNilSimilarity
	}
	if !isFinite(o.GapOpen) || !isFinite(o.GapContinue) {
		return 0, ErrBadPenalty
	}

	if o.MemoryMode == TwoRows {
		return alignRolling(a, b, sim, o), nil
	}

	return alignFull(a, b, sim, o), nil
}

// AlignStrings aligns two strings by code point, not byte, so multi-byte
// runes count as single elements.
func AlignStrings(a, b string, sim Similarity[rune], opts *Options) (float64, error) {
	return Align([]rune(a), []rune(b), sim, opts)
}

// Normalized computes Align(a, b) divided by the mean sequence length
// (len(a)+len(b))/2, so a perfect identity match of equal-length sequences
// normalizes to 1. Returns ErrEmptyInput when both sequences are empty.
func Normalized[T any](a, b []T, sim Similarity[T], opts *Options) (float64, error) {
	if len(a) == 0 && len(b) == 0 {
		return 0, ErrEmptyInput
	}

	score, err := Align(a, b, sim, opts)
	if err != nil {
		return 0, err
	}

	return score / (float64(len(a)+len(b)) / 2), nil
}

// alignFull runs the DP over three dense (n+1)×(m+1) grids.
//
// State meaning, for the length-i/length-j prefixes:
//
//	M[i][j] — best score given the alignment ends a[i-1] against b[j-1]
//	X[i][j] — best score given it ends a[i-1] against a gap
//	Y[i][j] — best score given it ends b[j-1] against a gap
//
// The true best prefix score is max(M,X,Y)[i][j] at every cell.
func alignFull[T any](a, b []T, sim Similarity[T], o Options) float64 {
	n, m := len(a), len(b)
	mm, xx, yy := newGrid(n+1, m+1), newGrid(n+1, m+1), newGrid(n+1, m+1)
	negInf := math.Inf(-1)

	// Boundary: against an empty prefix only one long gap run is feasible.
	// Cell (0,0) keeps its zero fill in all three grids — the "no prior
	// gap" base case that M[1][1] transitions from.
	for i := 1; i <= n; i++ {
		mm.set(i, 0, negInf)
		xx.set(i, 0, gapRun(i, o))
		yy.set(i, 0, negInf)
	}
	for j := 1; j <= m; j++ {
		mm.set(0, j, negInf)
		xx.set(0, j, negInf)
		yy.set(0, j, gapRun(j, o))
	}

	// Sweep. X extends only from M (open) or X (continue), never from Y,
	// and symmetrically for Y: a gap must close before switching sides.
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			best := scalar.Max3(mm.at(i-1, j-1), xx.at(i-1, j-1), yy.at(i-1, j-1))
			mm.set(i, j, satAdd(best, sim(a[i-1], b[j-1])))
			xx.set(i, j, scalar.Max2(
				satAdd(mm.at(i-1, j), -o.GapOpen),
				satAdd(xx.at(i-1, j), -o.GapContinue),
			))
			yy.set(i, j, scalar.Max2(
				satAdd(mm.at(i, j-1), -o.GapOpen),
				satAdd(yy.at(i, j-1), -o.GapContinue),
			))
		}
	}

	return scalar.Max3(mm.at(n, m), xx.at(n, m), yy.at(n, m))
}

// alignRolling is alignFull with O(m) storage: M and X keep two rows
// (the recurrences read row i-1), Y keeps one row updated in place (its
// recurrence only reads the current row). Scores are identical.
func alignRolling[T any](a, b []T, sim Similarity[T], o Options) float64 {
	n, m := len(a), len(b)
	negInf := math.Inf(-1)

	mPrev := make([]float64, m+1)
	mCurr := make([]float64, m+1)
	xPrev := make([]float64, m+1)
	xCurr := make([]float64, m+1)
	y := make([]float64, m+1)

	// Row 0; the zero values at index 0 are the (0,0) base case.
	for j := 1; j <= m; j++ {
		mPrev[j] = negInf
		xPrev[j] = negInf
		y[j] = gapRun(j, o)
	}

	for i := 1; i <= n; i++ {
		// diagY tracks Y[i-1][j-1] as y is overwritten left to right.
		diagY := y[0]
		mCurr[0] = negInf
		xCurr[0] = gapRun(i, o)
		y[0] = negInf
		for j := 1; j <= m; j++ {
			aboveY := y[j]
			best := scalar.Max3(mPrev[j-1], xPrev[j-1], diagY)
			mCurr[j] = satAdd(best, sim(a[i-1], b[j-1]))
			xCurr[j] = scalar.Max2(
				satAdd(mPrev[j], -o.GapOpen),
				satAdd(xPrev[j], -o.GapContinue),
			)
			y[j] = scalar.Max2(
				satAdd(mCurr[j-1], -o.GapOpen),
				satAdd(y[j-1], -o.GapContinue),
			)
			diagY = aboveY
		}
		mPrev, mCurr = mCurr, mPrev
		xPrev, xCurr = xCurr, xPrev
	}

	return scalar.Max3(mPrev[m], xPrev[m], y[m])
}

// gapRun is the affine penalty of a gap run of length k ≥ 1, negated for
// the maximizing DP: -GapOpen - (k-1)·GapContinue.
func gapRun(k int, o Options) float64 {
	return -o.GapOpen - float64(k-1)*o.GapContinue
}

// satAdd adds two scores with the -Inf infeasibility sentinel saturating:
// any sum involving -Inf stays -Inf and can never surface as NaN.
func satAdd(v, w float64) float64 {
	if math.IsInf(v, -1) || math.IsInf(w, -1) {
		return math.Inf(-1)
	}

	return v + w
}

// isFinite reports whether f is neither NaN nor ±Inf.
func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
