package seq

import "math/rand/v2"

// Package-level mirrors of the Seq methods, for callers composing
// operators as plain functions rather than through the fluent surface.

// Filter returns a sequence of the elements of s matching the predicate.
func Filter[T any](s Seq[T], predicate func(T) bool) Seq[T] {
	return s.Filter(predicate)
}

// Drop returns a sequence skipping the first n elements of s.
func Drop[T any](s Seq[T], n int) Seq[T] {
	return s.Drop(n)
}

// DropWhile returns a sequence skipping the leading elements of s for which
// the predicate holds.
func DropWhile[T any](s Seq[T], predicate func(T) bool) Seq[T] {
	return s.DropWhile(predicate)
}

// Take returns a sequence of at most the first n elements of s.
func Take[T any](s Seq[T], n int) Seq[T] {
	return s.Take(n)
}

// TakeWhile returns a sequence of the leading elements of s for which the
// predicate holds.
func TakeWhile[T any](s Seq[T], predicate func(T) bool) Seq[T] {
	return s.TakeWhile(predicate)
}

// Shuffled returns a random permutation of s; see Seq.Shuffled.
func Shuffled[T any](s Seq[T], rng *rand.Rand) Seq[T] {
	return s.Shuffled(rng)
}

// Peek invokes action on each element of s as it passes through.
func Peek[T any](s Seq[T], action func(T)) Seq[T] {
	return s.Peek(action)
}

// ToSlice materializes s into a slice.
func ToSlice[T any](s Seq[T]) []T {
	return s.ToSlice()
}

// Count returns the number of elements in s.
func Count[T any](s Seq[T]) int {
	return s.Count()
}

// All reports whether every element of s satisfies the predicate.
func All[T any](s Seq[T], predicate func(T) bool) bool {
	return s.All(predicate)
}

// Any reports whether at least one element of s satisfies the predicate.
func Any[T any](s Seq[T], predicate func(T) bool) bool {
	return s.Any(predicate)
}

// None reports whether no element of s satisfies the predicate.
func None[T any](s Seq[T], predicate func(T) bool) bool {
	return s.None(predicate)
}

// First returns the first element of s, failing on an empty sequence.
func First[T any](s Seq[T]) (T, error) {
	return s.First()
}

// FirstOK returns the first element of s, comma-ok form.
func FirstOK[T any](s Seq[T]) (T, bool) {
	return s.FirstOK()
}

// Last returns the last element of s, failing on an empty sequence.
func Last[T any](s Seq[T]) (T, error) {
	return s.Last()
}

// LastOK returns the last element of s, comma-ok form.
func LastOK[T any](s Seq[T]) (T, bool) {
	return s.LastOK()
}

// Single returns the sole element of s, failing on zero or multiple elements.
func Single[T any](s Seq[T]) (T, error) {
	return s.Single()
}

// SingleOK returns the sole element of s, comma-ok form.
func SingleOK[T any](s Seq[T]) (T, bool) {
	return s.SingleOK()
}

// Reduce folds s left to right, seeding with the first element.
func Reduce[T any](s Seq[T], op func(acc, v T) T) (T, error) {
	return s.Reduce(op)
}

// ReduceOK folds s left to right, comma-ok form.
func ReduceOK[T any](s Seq[T], op func(acc, v T) T) (T, bool) {
	return s.ReduceOK(op)
}

// ForEach invokes action on every element of s, in order.
func ForEach[T any](s Seq[T], action func(T)) {
	s.ForEach(action)
}

// JoinToString renders the elements of s; see Seq.JoinToString.
func JoinToString[T any](s Seq[T], separator, prefix, suffix string) string {
	return s.JoinToString(separator, prefix, suffix)
}

// Partition splits s by the predicate, preserving relative order in both
// halves.
func Partition[T any](s Seq[T], predicate func(T) bool) (match, rest []T) {
	return s.Partition(predicate)
}
