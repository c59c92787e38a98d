package omap

import (
	"golang.org/x/exp/constraints"

	"ixfn"
)

// Mapped lifts IMap over one container layer into an indexed traversal.
//
// The wrapper's index is the layer's key, its action rewrites one element,
// and its result is a function from container to container. Stacking the
// result of one layer into the action slot of the layer above is what lets
// Mapped layers chain through ixfn.Compose and ixfn.ApplyWithIndex.
func Mapped[K constraints.Ordered, V, W any]() ixfn.Indexed[K, func(V) W, func(Map[K, V]) Map[K, W]] {
	return func(target ixfn.Target[K, func(V) W]) func(Map[K, V]) Map[K, W] {
		return func(m Map[K, V]) Map[K, W] {
			return IMap(m, func(k K, v V) W {
				return target(k)(v)
			})
		}
	}
}

// Folded lifts IFold over one container layer into an indexed traversal
// producing a summary value combined with mon.
func Folded[K constraints.Ordered, V, M any](mon ixfn.Monoid[M]) ixfn.Indexed[K, func(V) M, func(Map[K, V]) M] {
	return func(target ixfn.Target[K, func(V) M]) func(Map[K, V]) M {
		return func(m Map[K, V]) M {
			return IFold(m, mon, func(k K, v V) M {
				return target(k)(v)
			})
		}
	}
}

// Traversed lifts ITraverse over one container layer into an indexed
// traversal whose actions may fail.
//
// Because a nested Traversed layer's result type is itself an effectful
// function, stacked Traversed layers chain through ixfn.Compose exactly
// like Mapped ones, and an inner layer's error surfaces from the outer
// traversal unchanged.
func Traversed[K constraints.Ordered, V, W any]() ixfn.Indexed[K, func(V) (W, error), func(Map[K, V]) (Map[K, W], error)] {
	return func(target ixfn.Target[K, func(V) (W, error)]) func(Map[K, V]) (Map[K, W], error) {
		return func(m Map[K, V]) (Map[K, W], error) {
			return ITraverse(m, func(k K, v V) (W, error) {
				return target(k)(v)
			})
		}
	}
}
