package seq

import (
	"cmp"
	"slices"
)

// Map returns a sequence of the results of applying fn to each element of s.
func Map[T, R any](s Seq[T], fn func(T) R) Seq[R] {
	return deferred(func(yield func(R) bool) {
		for v := range s.Values() {
			if !yield(fn(v)) {
				return
			}
		}
	})
}

// MapNotNil applies fn to each element and yields the dereferenced results,
// dropping elements for which fn returns nil.
func MapNotNil[T, R any](s Seq[T], fn func(T) *R) Seq[R] {
	return deferred(func(yield func(R) bool) {
		for v := range s.Values() {
			if r := fn(v); r != nil && !yield(*r) {
				return
			}
		}
	})
}

// FilterNotNil keeps the non-nil elements of a sequence of pointers,
// narrowing to a sequence of values.
func FilterNotNil[T any](s Seq[*T]) Seq[T] {
	return deferred(func(yield func(T) bool) {
		for v := range s.Values() {
			if v != nil && !yield(*v) {
				return
			}
		}
	})
}

// FilterIsInstance keeps the elements whose dynamic type is R, narrowing
// the element type.
func FilterIsInstance[R, T any](s Seq[T]) Seq[R] {
	return deferred(func(yield func(R) bool) {
		for v := range s.Values() {
			if r, ok := any(v).(R); ok && !yield(r) {
				return
			}
		}
	})
}

// FlatMap applies fn to each element and concatenates the resulting
// sequences in order.
func FlatMap[T, R any](s Seq[T], fn func(T) Seq[R]) Seq[R] {
	return deferred(func(yield func(R) bool) {
		for v := range s.Values() {
			for r := range fn(v).Values() {
				if !yield(r) {
					return
				}
			}
		}
	})
}

// Flatten concatenates a sequence of sequences in order.
func Flatten[T any](s Seq[Seq[T]]) Seq[T] {
	return deferred(func(yield func(T) bool) {
		for inner := range s.Values() {
			for v := range inner.Values() {
				if !yield(v) {
					return
				}
			}
		}
	})
}

// FlattenSlices concatenates a sequence of slices in order.
func FlattenSlices[T any](s Seq[[]T]) Seq[T] {
	return deferred(func(yield func(T) bool) {
		for inner := range s.Values() {
			for _, v := range inner {
				if !yield(v) {
					return
				}
			}
		}
	})
}

// Distinct yields each element the first time it is encountered, preserving
// first-seen order.
func Distinct[T comparable](s Seq[T]) Seq[T] {
	return DistinctBy(s, func(v T) T { return v })
}

// DistinctBy yields each element whose derived key has not been seen
// before, preserving the original element and first-seen order.
func DistinctBy[T any, K comparable](s Seq[T], key func(T) K) Seq[T] {
	return deferred(func(yield func(T) bool) {
		seen := make(map[K]struct{})
		for v := range s.Values() {
			k := key(v)
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			if !yield(v) {
				return
			}
		}
	})
}

// Sorted eagerly materializes s and returns a sequence over its elements in
// ascending natural order. The sort is stable and the result is re-iterable.
func Sorted[T cmp.Ordered](s Seq[T]) Seq[T] {
	return SortedBy(s, func(v T) T { return v })
}

// SortedDesc is Sorted in descending order.
func SortedDesc[T cmp.Ordered](s Seq[T]) Seq[T] {
	return SortedByDesc(s, func(v T) T { return v })
}

// SortedBy eagerly materializes s and returns a sequence sorted ascending
// by the derived key. Elements with equal keys keep their original relative
// order.
func SortedBy[T any, K cmp.Ordered](s Seq[T], key func(T) K) Seq[T] {
	elems := s.ToSlice()
	slices.SortStableFunc(elems, func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	})
	return fromBacking(elems)
}

// SortedByDesc is SortedBy in descending key order, still stable.
func SortedByDesc[T any, K cmp.Ordered](s Seq[T], key func(T) K) Seq[T] {
	elems := s.ToSlice()
	slices.SortStableFunc(elems, func(a, b T) int {
		return cmp.Compare(key(b), key(a))
	})
	return fromBacking(elems)
}
