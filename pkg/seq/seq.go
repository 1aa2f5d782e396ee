package seq

import "iter"

// Seq is a lazy sequence of elements. The zero value is an empty sequence.
//
// A Seq never evaluates its source at construction time. Intermediate
// operations return a new Seq wrapping a deferred stage; terminal
// operations drive the pipeline and produce a concrete value.
type Seq[T any] struct {
	src iter.Seq[T]

	// backing is set when the sequence is a direct view over an
	// already-materialized slice, enabling indexed access in Last.
	backing []T
	indexed bool
}

// Indexed pairs an element with its zero-based position, produced by
// Enumerate.
type Indexed[T any] struct {
	Index int
	Value T
}

// Entry is a key/value pair, produced by FromMapEntries and consumed by
// Associate-style collectors.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// FromSlice returns a sequence over the elements of items. The sequence is
// re-iterable and shares the caller's slice; it does not copy.
func FromSlice[T any](items []T) Seq[T] {
	return fromBacking(items)
}

// Of returns a sequence over the given values.
func Of[T any](items ...T) Seq[T] {
	return fromBacking(items)
}

// FromSeq wraps an iter.Seq producer. The resulting sequence is re-iterable
// exactly when the producer is.
func FromSeq[T any](src iter.Seq[T]) Seq[T] {
	return Seq[T]{src: src}
}

// FromChannel returns a single-pass sequence that receives from ch until it
// is closed. Stopping early leaves unread elements in the channel.
func FromChannel[T any](ch <-chan T) Seq[T] {
	return Seq[T]{src: func(yield func(T) bool) {
		for v := range ch {
			if !yield(v) {
				return
			}
		}
	}}
}

// FromMapKeys returns a sequence over the keys of m, in unspecified order.
func FromMapKeys[K comparable, V any](m map[K]V) Seq[K] {
	return Seq[K]{src: func(yield func(K) bool) {
		for k := range m {
			if !yield(k) {
				return
			}
		}
	}}
}

// FromMapValues returns a sequence over the values of m, in unspecified order.
func FromMapValues[K comparable, V any](m map[K]V) Seq[V] {
	return Seq[V]{src: func(yield func(V) bool) {
		for _, v := range m {
			if !yield(v) {
				return
			}
		}
	}}
}

// FromMapEntries returns a sequence over the entries of m, in unspecified order.
func FromMapEntries[K comparable, V any](m map[K]V) Seq[Entry[K, V]] {
	return Seq[Entry[K, V]]{src: func(yield func(Entry[K, V]) bool) {
		for k, v := range m {
			if !yield(Entry[K, V]{Key: k, Value: v}) {
				return
			}
		}
	}}
}

// FromString returns a sequence over the runes of s.
func FromString(s string) Seq[rune] {
	return Seq[rune]{src: func(yield func(rune) bool) {
		for _, r := range s {
			if !yield(r) {
				return
			}
		}
	}}
}

// Generate returns an infinite sequence produced by repeated calls to fn.
// Bound it with Take or TakeWhile before applying a terminal operation.
func Generate[T any](fn func() T) Seq[T] {
	return Seq[T]{src: func(yield func(T) bool) {
		for yield(fn()) {
		}
	}}
}

// Range returns the sequence of integers in the half-open interval
// [start, end). An empty sequence is returned when end <= start.
func Range(start, end int) Seq[int] {
	return Seq[int]{src: func(yield func(int) bool) {
		for i := start; i < end; i++ {
			if !yield(i) {
				return
			}
		}
	}}
}

// Empty returns an empty sequence.
func Empty[T any]() Seq[T] {
	return Seq[T]{}
}

// Values exposes the sequence as an iter.Seq for direct use with range.
func (s Seq[T]) Values() iter.Seq[T] {
	if s.src == nil {
		return func(func(T) bool) {}
	}
	return s.src
}

// fromBacking builds a slice-backed sequence, keeping the slice for the
// indexed Last fast path.
func fromBacking[T any](items []T) Seq[T] {
	return Seq[T]{
		src: func(yield func(T) bool) {
			for _, v := range items {
				if !yield(v) {
					return
				}
			}
		},
		backing: items,
		indexed: true,
	}
}

// deferred wraps a pipeline stage. Stages built on top of another sequence
// never retain the upstream's backing slice.
func deferred[T any](src iter.Seq[T]) Seq[T] {
	return Seq[T]{src: src}
}
