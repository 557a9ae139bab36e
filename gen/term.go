package gen

// Term generates an arbitrary JSON-like value: nil, a bool, an int, a
// short alphanumeric string, a list of terms, or a string-keyed map of
// terms. It is built on Recursive, so its depth is bounded logarithmically
// in size and it shrinks toward one of its leaf cases.
func Term() Generator[any] {
	leaf := OneOf[any](
		Const[any](nil),
		Map(Bool(), func(v bool) any { return v }),
		Map(Int(0), func(v int) any { return v }),
		Map(StringAlphaNum(LengthOpts{Max: 8, HasMax: true}), func(v string) any { return v }),
	)
	branch := func(sub Generator[any]) Generator[any] {
		listOpts := LengthOpts{Max: 4, HasMax: true}
		return OneOf[any](
			Map(ListOf(sub, listOpts), func(v []any) any { return v }),
			Map(MapOf(StringAlpha(LengthOpts{Min: 1, Max: 6, HasMin: true, HasMax: true}), sub, listOpts), func(v map[string]any) any { return v }),
		)
	}
	return Recursive(leaf, branch)
}
