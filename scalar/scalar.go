package scalar

// Ordered is the constraint for all types the extremum helpers accept:
// every integer and float type plus strings, including named types with
// one of those underlying types.
type Ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 | ~string
}

// Max2 returns the larger of a and b. Ties keep a.
func Max2[T Ordered](a, b T) T {
	if b > a {
		return b
	}

	return a
}

// Max3 returns the largest of a, b and c. Ties keep the earlier operand.
func Max3[T Ordered](a, b, c T) T {
	return Max2(Max2(a, b), c)
}

// Min2 returns the smaller of a and b. Ties keep a.
func Min2[T Ordered](a, b T) T {
	if b < a {
		return b
	}

	return a
}

// Min3 returns the smallest of a, b and c. Ties keep the earlier operand.
func Min3[T Ordered](a, b, c T) T {
	return Min2(Min2(a, b), c)
}
