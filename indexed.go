package ixfn

type (

	// Target resolves an index into the per-element action of a traversal.
	//
	// A Target is the last thing a composed traversal receives: by the time
	// it is called, the index carries the full path accumulated across every
	// composed layer.
	Target[I, A any] func(index I) A

	// Indexed is a traversal over one or more container layers that has been
	// abstracted over the final index-to-action decision.
	//
	// Instead of executing with a fixed per-element action, an Indexed value
	// waits for a Target. This inversion is what lets composition build the
	// index up incrementally from the inside out and fix the action once,
	// from the outside, when the chain is complete.
	//
	// I is the index type, A the per-element action supplied by the Target,
	// and R the value produced by running the traversal. An Indexed value is
	// opaque: two of them are interchangeable exactly when they behave the
	// same under Resolve.
	Indexed[I, A, R any] func(target Target[I, A]) R
)

// Resolve runs the traversal by supplying the final index-to-action
// function, producing the result. Resolving never mutates the wrapper;
// the same Indexed value can be resolved any number of times.
func (w Indexed[I, A, R]) Resolve(target Target[I, A]) R {
	return w(target)
}

// Compose chains two indexed traversals across nesting levels: outer walks
// the enclosing layer and inner walks the layer beneath it.
//
// At every leaf the outer fragment is captured first and combined with the
// inner fragment via m.Combine, outer on the left. Because m.Combine is
// associative, chains of three or more layers produce the same composite
// index no matter how the chain is parenthesized:
//
//	Compose(m, Compose(m, f, g), h) ~ Compose(m, f, Compose(m, g, h))
//
// The inner traversal's result type must be the outer traversal's action
// type; the signature enforces this at compile time.
func Compose[I, A, B, C any](m Monoid[I], outer Indexed[I, A, B], inner Indexed[I, C, A]) Indexed[I, C, B] {
	return func(target Target[I, C]) B {
		return outer(func(oi I) A {
			return inner(func(ii I) C {
				return target(m.Combine(oi, ii))
			})
		})
	}
}

// Identity is the unit of Compose: it contributes m.Empty as its index
// fragment and passes the target's action straight through, so composing
// with it on either side leaves a traversal behaviorally unchanged:
//
//	Compose(m, Identity[B](m), w) ~ w ~ Compose(m, w, Identity[A](m))
//
// The action type A cannot be inferred and must be supplied explicitly.
func Identity[A, I any](m Monoid[I]) Indexed[I, A, A] {
	return func(target Target[I, A]) A {
		return target(m.Empty)
	}
}

// Reindex transforms a traversal's index type by applying remap to every
// index before it reaches the target. Nothing else changes:
//
//	Reindex(g, Reindex(f, w)) ~ Reindex(func(i) { return g(f(i)) }, w)
//
// Its main use is folding heterogeneous per-layer key types into one
// caller-chosen composite index: remap a layer's key to a curried
// constructor of the composite type, then bind the remaining keys with
// ApplyWithIndex.
func Reindex[I, J, A, R any](remap func(I) J, w Indexed[I, A, R]) Indexed[J, A, R] {
	return func(target Target[J, A]) R {
		return w(func(i I) A {
			return target(remap(i))
		})
	}
}

// WithoutIndex lifts a plain function into an indexed traversal that
// ignores the index entirely: whatever Target it is resolved with is always
// consulted at m.Empty. It lets ordinary, non-indexed transformations
// participate in a composed chain where only some layers care about
// indices.
func WithoutIndex[I, A, B any](m Monoid[I], plain func(A) B) Indexed[I, A, B] {
	return func(target Target[I, A]) B {
		return plain(target(m.Empty))
	}
}
