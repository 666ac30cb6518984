package affine

// grid is a row-major score matrix backed by a single flat slice, indexed
// as data[row*cols+col] for cache-friendly sweeps. Allocation zero-fills,
// which is exactly the (0,0) base case the engine needs: every state costs
// nothing before either sequence has been consumed.
//
// It is an internal value type without bounds checks; the DP sweep only
// ever touches indices it just initialized.
type grid struct {
	rows, cols int
	data       []float64
}

// newGrid allocates a rows×cols grid of zeros.
// Complexity: O(rows·cols) time and memory.
func newGrid(rows, cols int) grid {
	return grid{rows: rows, cols: cols, data: make([]float64, rows*cols)}
}

// at reads the value at (row, col).
func (g grid) at(row, col int) float64 {
	return g.data[row*g.cols+col]
}

// set writes v at (row, col).
func (g grid) set(row, col int, v float64) {
	g.data[row*g.cols+col] = v
}
