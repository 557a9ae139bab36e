package gen

// Bool generates booleans uniformly, shrinking toward false (the smaller
// counterexample by convention).
func Bool() Generator[bool] {
	return Map(IntRange(0, 1), func(v int) bool { return v == 1 })
}
