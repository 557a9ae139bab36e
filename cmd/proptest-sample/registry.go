package main

import (
	"fmt"
	"sort"

	"github.com/lucaskalb/proptest/gen"
)

// registry holds every built-in generator the CLI can sample, each
// pre-mapped to a string so command plumbing never needs to know its
// underlying element type.
var registry map[string]gen.Generator[string]

func init() {
	registry = map[string]gen.Generator[string]{
		"int": gen.Map(gen.Int(0), func(n int) string {
			return fmt.Sprintf("%d", n)
		}),
		"bool": gen.Map(gen.Bool(), func(b bool) string {
			return fmt.Sprintf("%t", b)
		}),
		"string": gen.StringAlphaNum(gen.LengthOpts{Max: 16, HasMax: true}),
		"float": gen.Map(gen.Float64(gen.FloatOpts{}), func(f float64) string {
			return fmt.Sprintf("%g", f)
		}),
		"list-of-int": gen.Map(
			gen.ListOf(gen.Int(0), gen.LengthOpts{Max: 8, HasMax: true}),
			func(xs []int) string { return fmt.Sprintf("%v", xs) },
		),
	}
}

func generatorNames() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func lookupGenerator(name string) (gen.Generator[string], error) {
	g, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown generator %q, run 'proptest-sample list-generators' to see available names", name)
	}
	return g, nil
}
