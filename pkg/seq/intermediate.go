package seq

import (
	"math/rand/v2"

	"github.com/vnykmshr/seqkit/pkg/common/validation"
)

// Filter returns a sequence of the elements matching the given predicate.
func (s Seq[T]) Filter(predicate func(T) bool) Seq[T] {
	return deferred(func(yield func(T) bool) {
		for v := range s.Values() {
			if predicate(v) && !yield(v) {
				return
			}
		}
	})
}

// Map returns a sequence of the results of applying fn to each element.
// For transformations that change the element type, use the package-level
// Map function.
func (s Seq[T]) Map(fn func(T) T) Seq[T] {
	return deferred(func(yield func(T) bool) {
		for v := range s.Values() {
			if !yield(fn(v)) {
				return
			}
		}
	})
}

// Drop returns a sequence skipping the first n elements. When n <= 0 the
// sequence is returned unchanged.
func (s Seq[T]) Drop(n int) Seq[T] {
	if n <= 0 {
		return s
	}
	return deferred(func(yield func(T) bool) {
		skipped := 0
		for v := range s.Values() {
			if skipped < n {
				skipped++
				continue
			}
			if !yield(v) {
				return
			}
		}
	})
}

// DropWhile returns a sequence skipping the leading elements for which the
// predicate holds. The first element failing the predicate is yielded, and
// the predicate is never evaluated again after its first false result.
func (s Seq[T]) DropWhile(predicate func(T) bool) Seq[T] {
	return deferred(func(yield func(T) bool) {
		dropping := true
		for v := range s.Values() {
			if dropping {
				if predicate(v) {
					continue
				}
				dropping = false
			}
			if !yield(v) {
				return
			}
		}
	})
}

// Take returns a sequence of at most the first n elements. Once n elements
// have been yielded the upstream is no longer pulled, so bounded takes over
// infinite sources terminate.
func (s Seq[T]) Take(n int) Seq[T] {
	return deferred(func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		taken := 0
		for v := range s.Values() {
			if !yield(v) {
				return
			}
			taken++
			if taken == n {
				return
			}
		}
	})
}

// TakeWhile returns a sequence of the leading elements for which the
// predicate holds, stopping the upstream at the first failure.
func (s Seq[T]) TakeWhile(predicate func(T) bool) Seq[T] {
	return deferred(func(yield func(T) bool) {
		for v := range s.Values() {
			if !predicate(v) {
				return
			}
			if !yield(v) {
				return
			}
		}
	})
}

// Chunked returns a sequence of consecutive chunks of the given size, in
// order. The final chunk may be shorter. Chunked panics with a
// *errors.ValidationError when size < 1; the argument is checked at call
// time, not at consumption time. A method form would instantiate Seq with
// []T and trip the compiler's instantiation-cycle check, so this is a
// package-level function like the other type-changing operations.
func Chunked[T any](s Seq[T], size int) Seq[[]T] {
	if err := validation.ValidatePositive("seq", "size", size); err != nil {
		panic(err)
	}
	return deferred(func(yield func([]T) bool) {
		chunk := make([]T, 0, size)
		for v := range s.Values() {
			chunk = append(chunk, v)
			if len(chunk) == size {
				if !yield(chunk) {
					return
				}
				chunk = make([]T, 0, size)
			}
		}
		if len(chunk) > 0 {
			yield(chunk)
		}
	})
}

// Enumerate returns a sequence pairing each element with its zero-based
// position. Package-level for the same reason as Chunked: Seq[Indexed[T]]
// cannot appear in a Seq[T] method signature.
func Enumerate[T any](s Seq[T]) Seq[Indexed[T]] {
	return deferred(func(yield func(Indexed[T]) bool) {
		i := 0
		for v := range s.Values() {
			if !yield(Indexed[T]{Index: i, Value: v}) {
				return
			}
			i++
		}
	})
}

// Shuffled eagerly materializes the sequence into a private copy and
// returns a uniformly random permutation of it. The caller's source is
// never mutated. A seeded rng makes the permutation reproducible; a nil
// rng uses the shared non-deterministic source.
func (s Seq[T]) Shuffled(rng *rand.Rand) Seq[T] {
	elems := s.ToSlice()
	swap := func(i, j int) { elems[i], elems[j] = elems[j], elems[i] }
	if rng == nil {
		rand.Shuffle(len(elems), swap)
	} else {
		rng.Shuffle(len(elems), swap)
	}
	return fromBacking(elems)
}

// Peek returns a sequence that invokes action on each element as it passes
// through, without modifying the sequence. The action runs lazily, only
// for elements actually pulled by a downstream consumer.
func (s Seq[T]) Peek(action func(T)) Seq[T] {
	return deferred(func(yield func(T) bool) {
		for v := range s.Values() {
			action(v)
			if !yield(v) {
				return
			}
		}
	})
}
