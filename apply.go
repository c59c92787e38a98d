package ixfn

// ApplyWithIndex chains two indexed traversals by function application
// instead of an associative Combine: the outer layer's index fragment is
// itself a function, and it is applied to the inner layer's fragment to
// produce the composite index.
//
// This is how a composite index is built as a curried constructor applied
// successively to each layer's key, without requiring the index type to be
// a Monoid. Order matters: the outer operand's fragment must expect the
// inner operand's fragment as its next argument, which the signature
// enforces at compile time.
func ApplyWithIndex[I1, I2, A, B, C any](outer Indexed[func(I1) I2, B, C], inner Indexed[I1, A, B]) Indexed[I2, A, C] {
	return func(target Target[I2, A]) C {
		return outer(func(rest func(I1) I2) B {
			return inner(func(i I1) A {
				return target(rest(i))
			})
		})
	}
}

// ApplyVoidLeft composes a traversal with a plain, non-indexed function on
// its inner side: plain feeds the traversal's action-input position and the
// index passes through untouched.
//
// For any Monoid m over I it is observationally equal to
// Compose(m, w, WithoutIndex(m, plain)); it exists so that the plain side
// does not need lifting first, and so that no Monoid is needed at all.
func ApplyVoidLeft[I, A, B, C any](w Indexed[I, B, C], plain func(A) B) Indexed[I, A, C] {
	return func(target Target[I, A]) C {
		return w(func(i I) B {
			return plain(target(i))
		})
	}
}

// ApplyVoidRight composes a plain, non-indexed function onto a traversal's
// result: plain transforms the final result only, leaving index and
// action-input untouched.
//
// For any Monoid m over I it is observationally equal to
// Compose(m, WithoutIndex(m, plain), w).
func ApplyVoidRight[I, A, B, C any](plain func(B) C, w Indexed[I, A, B]) Indexed[I, A, C] {
	return func(target Target[I, A]) C {
		return plain(w(target))
	}
}
