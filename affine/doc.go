// Package affine computes optimal global-alignment scores between two
// sequences under an affine gap penalty model (Gotoh's algorithm), with a
// pluggable elementwise similarity function and optional memory reduction.
//
// 🚀 What is affine-gap alignment?
//
//	A gap of k consecutive insertions or deletions costs
//	GapOpen + (k-1)·GapContinue rather than k independent penalties,
//	modeling indels as bursty events. It's the standard scoring model in:
//	  • DNA / protein sequence comparison
//	  • Record linkage & fuzzy string matching
//	  • Spelling correction & OCR post-processing
//
// ✨ Key features:
//   - three-matrix (M/X/Y) dynamic program: exact O(N·M) time
//   - FullMatrix mode: flat row-major buffers, O(N·M) memory
//   - TwoRows mode: rolling rows, O(M) memory (identical scores; choose
//     via MemoryMode)
//   - pluggable Similarity: identity, substitution tables, or any custom
//     (a, b) → float64 scorer
//   - Normalized variant for comparing scores across pairs of different
//     lengths
//
// ⚙️ Usage:
//
//	import "github.com/alignkit/alignkit/affine"
//
//	opts := affine.DefaultOptions() // GapOpen=1, GapContinue=0.5
//	score, err := affine.AlignStrings("GATTACA", "GCATGCU",
//		affine.Identity[rune](), &opts)
//
// Algorithm outline, with n = len(a), m = len(b):
//  1. Allocate three (n+1)×(m+1) score matrices M, X and Y.
//     M[i][j] — best score of the i/j prefixes ending in a substitution,
//     X[i][j] — ending with a[i-1] opposite a gap,
//     Y[i][j] — ending with b[j-1] opposite a gap.
//  2. Initialize row/column 0: the only feasible state against an empty
//     prefix is one long gap run, so X[i][0] (resp. Y[0][j]) carries the
//     affine run penalty and the other two states are -Inf (infeasible).
//  3. Sweep i=1..n, j=1..m:
//     M[i][j] = sim(a[i-1], b[j-1]) + max(M,X,Y)[i-1][j-1]
//     X[i][j] = max(M[i-1][j] - GapOpen, X[i-1][j] - GapContinue)
//     Y[i][j] = max(M[i][j-1] - GapOpen, Y[i][j-1] - GapContinue)
//     X never transitions from Y (and vice versa): an alignment cannot
//     flip gap orientation without closing the gap first, which is the
//     defining restriction of the affine model.
//  4. score = max(M[n][m], X[n][m], Y[n][m]).
//
// No alignment path is reconstructed — only the score is returned.
//
// Performance:
//
//   - Time:   O(N·M)
//   - Memory: O(N·M) (FullMatrix) or O(M) (TwoRows)
//
// See example_test.go for worked scenarios.
package affine
