/*
Package ixfn provides combinators for building indexed traversals:
traversals over nested containers that, at every leaf, know the full path
of keys that was taken to reach it.

This package is built around a single wrapper type, Indexed[I, A, R]: a
traversal that has been abstracted over the final "turn an index into a
per-element action" decision. An Indexed value does nothing until it is
resolved with a Target[I, A]; until then it can be composed with other
wrappers, and it is composition that accumulates the index.

Two composition modes are provided. Compose chains layers whose index
fragments share one type and are merged with an associative Monoid
(think: a path of keys, concatenated outer-to-inner). ApplyWithIndex
chains layers whose fragments have different types, by treating the outer
fragment as a curried constructor and applying it to the inner fragment,
which is how a three-level structure keyed by three different key types
ends up tagged with a single composite index record.

The remaining operations round out the algebra: Reindex changes a
wrapper's index type through a pure function, WithoutIndex lifts an
ordinary non-indexed function into a wrapper that always reports the
identity index, and ApplyVoidLeft/ApplyVoidRight bolt a plain function
onto either end of a wrapper without lifting it first.

Example of composing two homogeneous layers into one traversal whose
index is the path of keys:

	// One wrapper per nesting level, each reporting its key as a
	// one-element path.
	frag := func(k string) []string { return []string{k} }
	outer := ixfn.Reindex(frag, omap.Mapped[string, omap.Map[string, int], omap.Map[string, int]]())
	inner := ixfn.Reindex(frag, omap.Mapped[string, int, int]())

	// Chain them; paths concatenate outer-to-inner.
	path := ixfn.Path[string]()
	both := ixfn.Compose(path, outer, inner)

	// Resolve once, from the outside: the Target sees the full path.
	bump := both.Resolve(func(p []string) func(int) int {
		log.Println("visiting", p)
		return func(v int) int { return v + 1 }
	})

	updated := bump(nested)

The wrappers themselves never touch containers; they consume per-layer
primitives shaped like an indexed map, fold, or traverse, lifted by the
caller. The omap subpackage supplies such primitives, and their lifts,
for an ordered view over Go maps — see its documentation and the package
Example for a full three-level composition with a composite index type.

Resolving a wrapper is pure: the same Indexed value can be resolved many
times, with different Targets, and wrappers share no state. Failures are
the business of the action and result types the caller picks (for
example omap.Traversed's (value, error) actions); the combinators never
inspect, catch, or short-circuit on them.
*/
package ixfn
