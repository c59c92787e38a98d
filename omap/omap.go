// Package omap supplies the ordered-mapping collaborator the ixfn
// combinators are demonstrated against: a sorted view over a Go map with
// indexed map, fold, and traverse primitives, plus the lifts that turn
// each primitive into a one-layer ixfn.Indexed traversal.
//
// The combinators never touch containers directly; they only consume
// wrappers built from primitives shaped like the ones here. Any container
// offering the same three shapes can take this package's place.
package omap

import (
	"iter"
	"slices"

	"golang.org/x/exp/constraints"

	"ixfn"
)

// Map is an ordered view over a native Go map. The map itself is an
// ordinary map value; ordering is a property of the traversal primitives,
// which always visit entries in ascending key order.
type Map[K constraints.Ordered, V any] map[K]V

// All returns the entries in ascending key order.
func (m Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range m.sortedKeys() {
			if !yield(k, m[k]) {
				return
			}
		}
	}
}

func (m Map[K, V]) sortedKeys() []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// IMap applies fn to every entry in ascending key order and returns a new
// Map holding the results under the same keys. The receiver is not
// modified.
func IMap[K constraints.Ordered, V, W any](m Map[K, V], fn func(K, V) W) Map[K, W] {
	out := make(Map[K, W], len(m))
	for k, v := range m.All() {
		out[k] = fn(k, v)
	}
	return out
}

// IFold reduces the map to a single value by applying fn to every entry in
// ascending key order and combining the results left-to-right with mon.
// An empty map folds to mon.Empty.
func IFold[K constraints.Ordered, V, M any](m Map[K, V], mon ixfn.Monoid[M], fn func(K, V) M) M {
	acc := mon.Empty
	for k, v := range m.All() {
		acc = mon.Combine(acc, fn(k, v))
	}
	return acc
}

// ITraverse applies the effectful fn to every entry in ascending key order,
// collecting the results under the same keys. The first error stops the
// traversal immediately: later entries are not visited and the partial
// result is discarded.
func ITraverse[K constraints.Ordered, V, W any](m Map[K, V], fn func(K, V) (W, error)) (Map[K, W], error) {
	out := make(Map[K, W], len(m))
	for _, k := range m.sortedKeys() {
		w, err := fn(k, m[k])
		if err != nil {
			return nil, err
		}
		out[k] = w
	}
	return out, nil
}
