// Package alignkit computes optimal global-alignment scores between
// sequences under an affine gap penalty model — opening a gap costs more
// than stretching one, which models insertions and deletions as bursty
// events rather than independent per-symbol accidents.
//
// 🚀 What is alignkit?
//
//	A small, pure-Go sequence-alignment library built around Gotoh's
//	three-matrix dynamic program:
//	  • Global affine-gap alignment scoring (Needleman–Wunsch + Gotoh)
//	  • Pluggable elementwise similarity (identity, substitution tables,
//	    or any custom scorer)
//	  • Full-matrix or rolling two-row memory modes
//	  • Normalized scores for cross-pair comparison
//
// ✨ Why choose alignkit?
//
//   - Minimal API – one engine, one options struct, clear naming
//   - Element-type agnostic – align runes, bytes, ints, or your own types
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic – same inputs, bit-identical score, every time
//
// Everything lives in two subpackages:
//
//	affine/ — the alignment engine, similarity scorers & options
//	scalar/ — generic 2/3-ary max & min helpers the engine builds on
//
// Quick example:
//
//	score, err := affine.AlignStrings("GATTACA", "GCATGCU",
//		affine.Identity[rune](), nil)
//	// score == 3.0 with the default gap penalties (open 1, continue 0.5)
//
// See each package's doc.go and example_test.go for details.
package alignkit
