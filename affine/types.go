// Package affine: options, memory modes and error definitions for the
// affine-gap alignment engine.
package affine

import "errors"

// Sentinel errors for alignment execution.
var (
	// ErrNilSimilarity is returned when no similarity function is supplied.
	ErrNilSimilarity = errors.New("affine: similarity function is nil")

	// ErrBadPenalty is returned when a gap penalty is NaN or ±Inf.
	ErrBadPenalty = errors.New("affine: gap penalties must be finite")

	// ErrEmptyInput is returned by Normalized when both sequences are empty
	// (the normalization denominator would be zero).
	ErrEmptyInput = errors.New("affine: normalization requires at least one non-empty sequence")
)

// Similarity scores one pair of elements. Positive rewards a match, zero is
// neutral, negative penalizes a mismatch. The engine calls it once per cell
// and assumes it is side-effect-free; it may still close over state such as
// a substitution table.
type Similarity[T any] func(a, b T) float64

// MemoryMode controls how the engine stores its three DP matrices.
//
//   - FullMatrix — keep all three (n+1)×(m+1) matrices as flat row-major
//     buffers. Memory: O(N·M).
//   - TwoRows — keep only the previous and current row of each matrix.
//     Memory: O(M). Scores are identical; since no alignment path is ever
//     reconstructed there is no observable difference beyond memory use.
type MemoryMode int

const (
	// FullMatrix mode: dense flat buffers, O(N·M) memory.
	FullMatrix MemoryMode = iota

	// TwoRows mode: rolling rows, O(M) memory.
	TwoRows
)

// Options configures the alignment engine.
//
// Fields:
//   - GapOpen — penalty magnitude for starting a gap run. A lone
//     one-element gap costs exactly GapOpen.
//   - GapContinue — penalty magnitude for each additional element of a gap
//     run: a run of length k costs GapOpen + (k-1)·GapContinue.
//   - MemoryMode — FullMatrix or TwoRows storage.
//
// Both penalties are magnitudes: the engine negates them internally, so
// larger values mean harsher penalties. Negative magnitudes are accepted
// but invert the cost model (gaps become rewards) — the intent of such a
// configuration is undefined, and GapOpen ≥ GapContinue is the semantically
// sensible regime, though neither is validated.
type Options struct {
	GapOpen     float64
	GapContinue float64
	MemoryMode  MemoryMode
}

// DefaultOptions returns the default engine configuration:
// GapOpen=1, GapContinue=0.5, FullMatrix storage.
func DefaultOptions() Options {
	return Options{GapOpen: 1, GapContinue: 0.5, MemoryMode: FullMatrix}
}
