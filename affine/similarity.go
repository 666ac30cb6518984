package affine

// Identity returns the simplest similarity: 1 when the two elements are
// equal, 0 otherwise.
func Identity[T comparable]() Similarity[T] {
	return func(a, b T) float64 {
		if a == b {
			return 1
		}

		return 0
	}
}

// Substitution returns a similarity backed by a substitution table, e.g. a
// BLOSUM-style scoring matrix. Pairs absent from the table (in either
// orientation) score def. The table is captured by reference and must not
// be mutated while the similarity is in use.
func Substitution[T comparable](table map[T]map[T]float64, def float64) Similarity[T] {
	return func(a, b T) float64 {
		if row, ok := table[a]; ok {
			if s, ok := row[b]; ok {
				return s
			}
		}

		return def
	}
}
