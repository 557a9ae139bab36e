package gen

import (
	"github.com/lucaskalb/proptest/ltree"
	"github.com/lucaskalb/proptest/seed"
)

// FixedMap generates a map[K]V with exactly the keys present in fields,
// each value drawn from its own generator. The key set never shrinks;
// only values do, one component at a time.
func FixedMap[K comparable, V any](fields map[K]Generator[V]) Generator[map[K]V] {
	keys := make([]K, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	return From(func(s seed.Seed, sz Size) ltree.Tree[map[K]V] {
		trees := make(map[K]ltree.Tree[V], len(keys))
		cur := s
		for _, k := range keys {
			sk, rest := seed.Split(cur)
			cur = rest
			trees[k] = fields[k](sk, sz)
		}
		return fixedMapTree(keys, trees)
	})
}

func fixedMapTree[K comparable, V any](keys []K, trees map[K]ltree.Tree[V]) ltree.Tree[map[K]V] {
	root := make(map[K]V, len(keys))
	for _, k := range keys {
		root[k] = trees[k].Root
	}
	return ltree.Tree[map[K]V]{
		Root: root,
		Children: func(yield func(ltree.Tree[map[K]V]) bool) {
			for _, k := range keys {
				for c := range trees[k].Children {
					replaced := make(map[K]ltree.Tree[V], len(keys))
					for kk, vv := range trees {
						replaced[kk] = vv
					}
					replaced[k] = c
					if !yield(fixedMapTree(keys, replaced)) {
						return
					}
				}
			}
		},
	}
}

// OptionalMap generates a map[K]V whose required keys are always present
// and whose optional keys are independently included with roughly even
// odds. Shrinking tries dropping each present optional key before
// shrinking any value, then shrinks values in place; required keys are
// never dropped.
func OptionalMap[K comparable, V any](required map[K]Generator[V], optional map[K]Generator[V]) Generator[map[K]V] {
	return From(func(s seed.Seed, sz Size) ltree.Tree[map[K]V] {
		s1, s2 := seed.Split(s)
		reqKeys := make([]K, 0, len(required))
		for k := range required {
			reqKeys = append(reqKeys, k)
		}
		optKeys := make([]K, 0, len(optional))
		for k := range optional {
			optKeys = append(optKeys, k)
		}

		reqTrees := make(map[K]ltree.Tree[V], len(reqKeys))
		cur := s1
		for _, k := range reqKeys {
			sk, rest := seed.Split(cur)
			cur = rest
			reqTrees[k] = required[k](sk, sz)
		}

		present := make([]K, 0, len(optKeys))
		optTrees := make(map[K]ltree.Tree[V], len(optKeys))
		cur = s2
		for _, k := range optKeys {
			flip, rest1 := seed.Split(cur)
			sk, rest2 := seed.Split(rest1)
			cur = rest2
			if seed.UniformInRange(flip, 0, 1) == 1 {
				present = append(present, k)
				optTrees[k] = optional[k](sk, sz)
			}
		}
		return optionalMapTree(reqKeys, reqTrees, present, optTrees)
	})
}

func optionalMapTree[K comparable, V any](reqKeys []K, reqTrees map[K]ltree.Tree[V], present []K, optTrees map[K]ltree.Tree[V]) ltree.Tree[map[K]V] {
	root := make(map[K]V, len(reqKeys)+len(present))
	for _, k := range reqKeys {
		root[k] = reqTrees[k].Root
	}
	for _, k := range present {
		root[k] = optTrees[k].Root
	}
	return ltree.Tree[map[K]V]{
		Root: root,
		Children: func(yield func(ltree.Tree[map[K]V]) bool) {
			for i := len(present) - 1; i >= 0; i-- {
				reducedPresent := make([]K, 0, len(present)-1)
				reducedPresent = append(reducedPresent, present[:i]...)
				reducedPresent = append(reducedPresent, present[i+1:]...)
				if !yield(optionalMapTree(reqKeys, reqTrees, reducedPresent, optTrees)) {
					return
				}
			}
			for _, k := range reqKeys {
				for c := range reqTrees[k].Children {
					replaced := make(map[K]ltree.Tree[V], len(reqTrees))
					for kk, vv := range reqTrees {
						replaced[kk] = vv
					}
					replaced[k] = c
					if !yield(optionalMapTree(reqKeys, replaced, present, optTrees)) {
						return
					}
				}
			}
			for _, k := range present {
				for c := range optTrees[k].Children {
					replaced := make(map[K]ltree.Tree[V], len(optTrees))
					for kk, vv := range optTrees {
						replaced[kk] = vv
					}
					replaced[k] = c
					if !yield(optionalMapTree(reqKeys, reqTrees, present, replaced)) {
						return
					}
				}
			}
		},
	}
}

// MapOf generates a map[K]V with a variable number of entries, keys drawn
// from keyGen (retried on collision, as UniqListOf) and values from
// valGen. Shrinking drops entries first, then shrinks a surviving entry's
// value in place.
func MapOf[K comparable, V any](keyGen Generator[K], valGen Generator[V], opts LengthOpts) Generator[map[K]V] {
	return From(func(s seed.Seed, sz Size) ltree.Tree[map[K]V] {
		lo, hi := lengthBounds(opts, sz)
		s1, s2 := seed.Split(s)
		n := int(seed.UniformInRange(s1, int64(lo), int64(hi)))
		keys := make([]K, 0, n)
		vals := make([]ltree.Tree[V], 0, n)
		seen := make(map[K]struct{}, n)
		cur := s2
		for len(keys) < n {
			drew := false
			for attempt := 0; attempt < DefaultFilterRetries; attempt++ {
				sk, rest1 := seed.Split(cur)
				sv, rest2 := seed.Split(rest1)
				cur = rest2
				kt := keyGen(sk, sz)
				if _, dup := seen[kt.Root]; dup {
					continue
				}
				seen[kt.Root] = struct{}{}
				keys = append(keys, kt.Root)
				vals = append(vals, valGen(sv, sz))
				drew = true
				break
			}
			if !drew {
				panic(&TooManyDuplicatesError{Tries: DefaultFilterRetries, WantCount: n, GotCount: len(keys)})
			}
		}
		return mapOfTree(keys, vals, lo)
	})
}

func mapOfTree[K comparable, V any](keys []K, vals []ltree.Tree[V], minLen int) ltree.Tree[map[K]V] {
	root := make(map[K]V, len(keys))
	for i, k := range keys {
		root[k] = vals[i].Root
	}
	return ltree.Tree[map[K]V]{
		Root: root,
		Children: func(yield func(ltree.Tree[map[K]V]) bool) {
			L := len(keys)
			if L > minLen {
				for i := L - 1; i >= 0; i-- {
					rk := make([]K, 0, L-1)
					rk = append(rk, keys[:i]...)
					rk = append(rk, keys[i+1:]...)
					rv := make([]ltree.Tree[V], 0, L-1)
					rv = append(rv, vals[:i]...)
					rv = append(rv, vals[i+1:]...)
					if !yield(mapOfTree(rk, rv, minLen)) {
						return
					}
				}
			}
			for i := L - 1; i >= 0; i-- {
				for c := range vals[i].Children {
					rv := make([]ltree.Tree[V], L)
					copy(rv, vals)
					rv[i] = c
					if !yield(mapOfTree(keys, rv, minLen)) {
						return
					}
				}
			}
		},
	}
}

// KeyValue is one (key, value) pair produced by KeywordOf.
type KeyValue[V any] struct {
	Key   string
	Value V
}

// KeywordOf generates a variable-length list of (key, value) pairs — the
// keyword-list analogue of MapOf, built from a single value generator
// instead of a generator pair. Keys are unique within one generated list:
// drawn from keys when given (retried on collision, as MapOf), or
// otherwise generated as identifier atoms. Shrinking behaves as MapOf:
// entries drop first, then a surviving entry's value shrinks in place.
func KeywordOf[V any](valGen Generator[V], opts LengthOpts, keys ...string) Generator[[]KeyValue[V]] {
	var keyGen Generator[string]
	if len(keys) > 0 {
		keyGen = mustMemberOf(keys...)
	} else {
		keyGen = Atom(AtomKindIdentifier)
	}
	return From(func(s seed.Seed, sz Size) ltree.Tree[[]KeyValue[V]] {
		lo, hi := lengthBounds(opts, sz)
		s1, s2 := seed.Split(s)
		n := int(seed.UniformInRange(s1, int64(lo), int64(hi)))
		ks := make([]string, 0, n)
		vs := make([]ltree.Tree[V], 0, n)
		seen := make(map[string]struct{}, n)
		cur := s2
		for len(ks) < n {
			drew := false
			for attempt := 0; attempt < DefaultFilterRetries; attempt++ {
				sk, rest1 := seed.Split(cur)
				sv, rest2 := seed.Split(rest1)
				cur = rest2
				kt := keyGen(sk, sz)
				if _, dup := seen[kt.Root]; dup {
					continue
				}
				seen[kt.Root] = struct{}{}
				ks = append(ks, kt.Root)
				vs = append(vs, valGen(sv, sz))
				drew = true
				break
			}
			if !drew {
				panic(&TooManyDuplicatesError{Tries: DefaultFilterRetries, WantCount: n, GotCount: len(ks)})
			}
		}
		return keywordTree(ks, vs, lo)
	})
}

func keywordTree[V any](keys []string, vals []ltree.Tree[V], minLen int) ltree.Tree[[]KeyValue[V]] {
	root := make([]KeyValue[V], len(keys))
	for i, k := range keys {
		root[i] = KeyValue[V]{Key: k, Value: vals[i].Root}
	}
	return ltree.Tree[[]KeyValue[V]]{
		Root: root,
		Children: func(yield func(ltree.Tree[[]KeyValue[V]]) bool) {
			L := len(keys)
			if L > minLen {
				for i := L - 1; i >= 0; i-- {
					rk := make([]string, 0, L-1)
					rk = append(rk, keys[:i]...)
					rk = append(rk, keys[i+1:]...)
					rv := make([]ltree.Tree[V], 0, L-1)
					rv = append(rv, vals[:i]...)
					rv = append(rv, vals[i+1:]...)
					if !yield(keywordTree(rk, rv, minLen)) {
						return
					}
				}
			}
			for i := L - 1; i >= 0; i-- {
				for c := range vals[i].Children {
					rv := make([]ltree.Tree[V], L)
					copy(rv, vals)
					rv[i] = c
					if !yield(keywordTree(keys, rv, minLen)) {
						return
					}
				}
			}
		},
	}
}
