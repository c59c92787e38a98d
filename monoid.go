package ixfn

// Monoid supplies the index-combination capability that Compose, Identity,
// and WithoutIndex require: an associative Combine with Empty as its
// identity on both sides. The library never inspects index values beyond
// handing them to Combine; what a sensible index looks like is entirely the
// caller's choice.
type Monoid[I any] struct {

	// Empty is the identity element of Combine.
	Empty I

	// Combine merges two index fragments, the outer layer's fragment first.
	// It must be associative.
	Combine func(a, b I) I
}

// Path is the Monoid over key paths: fragments are concatenated in
// outer-to-inner order, with the empty path as identity. Combine always
// allocates a fresh slice, so composite indices handed to a Target are
// safe to retain.
func Path[E any]() Monoid[[]E] {
	return Monoid[[]E]{
		Combine: func(a, b []E) []E {
			merged := make([]E, 0, len(a)+len(b))
			merged = append(merged, a...)
			return append(merged, b...)
		},
	}
}

// Joined is the Monoid over strings joined by sep. The empty string is the
// identity and never contributes a separator.
func Joined(sep string) Monoid[string] {
	return Monoid[string]{
		Combine: func(a, b string) string {
			if a == "" {
				return b
			}
			if b == "" {
				return a
			}
			return a + sep + b
		},
	}
}
