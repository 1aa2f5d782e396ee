package seq

import (
	"cmp"

	"github.com/vnykmshr/seqkit/pkg/common/validation"
)

// Curried operator constructors. Each binds everything except the source
// sequence and returns a reusable single-argument closure, so operators
// compose point-free, e.g. with the pipe package:
//
//	short := seq.Filtering(func(w string) bool { return len(w) < 4 })
//	first3 := seq.Taking[string](3)
//	result := pipe.Pipe2(words, short, first3).ToSlice()

// Filtering returns a closure applying Filter with the given predicate.
func Filtering[T any](predicate func(T) bool) func(Seq[T]) Seq[T] {
	return func(s Seq[T]) Seq[T] { return s.Filter(predicate) }
}

// Mapping returns a closure applying Map with the given transform.
func Mapping[T, R any](fn func(T) R) func(Seq[T]) Seq[R] {
	return func(s Seq[T]) Seq[R] { return Map(s, fn) }
}

// MappingNotNil returns a closure applying MapNotNil with the given transform.
func MappingNotNil[T, R any](fn func(T) *R) func(Seq[T]) Seq[R] {
	return func(s Seq[T]) Seq[R] { return MapNotNil(s, fn) }
}

// FlatMapping returns a closure applying FlatMap with the given transform.
func FlatMapping[T, R any](fn func(T) Seq[R]) func(Seq[T]) Seq[R] {
	return func(s Seq[T]) Seq[R] { return FlatMap(s, fn) }
}

// Dropping returns a closure applying Drop with the given count.
func Dropping[T any](n int) func(Seq[T]) Seq[T] {
	return func(s Seq[T]) Seq[T] { return s.Drop(n) }
}

// DroppingWhile returns a closure applying DropWhile with the given predicate.
func DroppingWhile[T any](predicate func(T) bool) func(Seq[T]) Seq[T] {
	return func(s Seq[T]) Seq[T] { return s.DropWhile(predicate) }
}

// Taking returns a closure applying Take with the given count.
func Taking[T any](n int) func(Seq[T]) Seq[T] {
	return func(s Seq[T]) Seq[T] { return s.Take(n) }
}

// TakingWhile returns a closure applying TakeWhile with the given predicate.
func TakingWhile[T any](predicate func(T) bool) func(Seq[T]) Seq[T] {
	return func(s Seq[T]) Seq[T] { return s.TakeWhile(predicate) }
}

// Chunking returns a closure applying Chunked with the given size. The size
// is validated when the closure is built, not when it is applied.
func Chunking[T any](size int) func(Seq[T]) Seq[[]T] {
	if err := validation.ValidatePositive("seq", "size", size); err != nil {
		panic(err)
	}
	return func(s Seq[T]) Seq[[]T] { return Chunked(s, size) }
}

// Enumerating returns a closure applying Enumerate.
func Enumerating[T any]() func(Seq[T]) Seq[Indexed[T]] {
	return func(s Seq[T]) Seq[Indexed[T]] { return Enumerate(s) }
}

// Peeking returns a closure applying Peek with the given action.
func Peeking[T any](action func(T)) func(Seq[T]) Seq[T] {
	return func(s Seq[T]) Seq[T] { return s.Peek(action) }
}

// SortingBy returns a closure applying SortedBy with the given key.
func SortingBy[T any, K cmp.Ordered](key func(T) K) func(Seq[T]) Seq[T] {
	return func(s Seq[T]) Seq[T] { return SortedBy(s, key) }
}

// SortingByDesc returns a closure applying SortedByDesc with the given key.
func SortingByDesc[T any, K cmp.Ordered](key func(T) K) func(Seq[T]) Seq[T] {
	return func(s Seq[T]) Seq[T] { return SortedByDesc(s, key) }
}

// DistinctingBy returns a closure applying DistinctBy with the given key.
func DistinctingBy[T any, K comparable](key func(T) K) func(Seq[T]) Seq[T] {
	return func(s Seq[T]) Seq[T] { return DistinctBy(s, key) }
}

// Associating returns a closure applying Associate with the given pair
// function.
func Associating[T any, K comparable, V any](fn func(T) (K, V)) func(Seq[T]) map[K]V {
	return func(s Seq[T]) map[K]V { return Associate(s, fn) }
}

// AssociatingBy returns a closure applying AssociateBy with the given key
// selector.
func AssociatingBy[T any, K comparable](keySelector func(T) K) func(Seq[T]) map[K]T {
	return func(s Seq[T]) map[K]T { return AssociateBy(s, keySelector) }
}

// AssociatingWith returns a closure applying AssociateWith with the given
// value selector.
func AssociatingWith[T comparable, V any](valueSelector func(T) V) func(Seq[T]) map[T]V {
	return func(s Seq[T]) map[T]V { return AssociateWith(s, valueSelector) }
}

// GroupingBy returns a closure applying GroupBy with the given key selector.
func GroupingBy[T any, K comparable](keySelector func(T) K) func(Seq[T]) map[K][]T {
	return func(s Seq[T]) map[K][]T { return GroupBy(s, keySelector) }
}

// Partitioning returns a closure applying Partition with the given
// predicate.
func Partitioning[T any](predicate func(T) bool) func(Seq[T]) ([]T, []T) {
	return func(s Seq[T]) ([]T, []T) { return s.Partition(predicate) }
}

// Reducing returns a closure applying ReduceOK with the given operation.
func Reducing[T any](op func(acc, v T) T) func(Seq[T]) (T, bool) {
	return func(s Seq[T]) (T, bool) { return s.ReduceOK(op) }
}

// JoiningToString returns a closure applying JoinToString with the given
// rendering options.
func JoiningToString[T any](separator, prefix, suffix string) func(Seq[T]) string {
	return func(s Seq[T]) string { return s.JoinToString(separator, prefix, suffix) }
}
