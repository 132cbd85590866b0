package obst

// Table allocation helpers. Each Solve call owns fresh tables; nothing
// here is ever shared or reused between invocations.

// newFloatTable allocates a size×size float64 grid zeroed out.
// Complexity: O(size²) time and memory.
func newFloatTable(size int) [][]float64 {
	t := make([][]float64, size)
	// Back all rows with one flat slice for cache friendliness,
	// mirroring a row-major dense matrix.
	flat := make([]float64, size*size)
	for i := range t {
		t[i] = flat[i*size : (i+1)*size : (i+1)*size]
	}

	return t
}

// newIntTable allocates a size×size int grid zeroed out.
// Complexity: O(size²) time and memory.
func newIntTable(size int) [][]int {
	t := make([][]int, size)
	flat := make([]int, size*size)
	for i := range t {
		t[i] = flat[i*size : (i+1)*size : (i+1)*size]
	}

	return t
}
