package seq

import (
	"cmp"

	"golang.org/x/exp/constraints"

	skerrors "github.com/vnykmshr/seqkit/pkg/common/errors"
)

// Addable constrains element types that support addition with themselves,
// covering the numeric kinds and strings.
type Addable interface {
	constraints.Integer | constraints.Float | constraints.Complex | ~string
}

// ToSet materializes the sequence into a set.
func ToSet[T comparable](s Seq[T]) map[T]struct{} {
	out := make(map[T]struct{})
	for v := range s.Values() {
		out[v] = struct{}{}
	}
	return out
}

// Associate maps each element to a key/value pair and merges the pairs into
// a map. On key collision the later pair silently overwrites the earlier.
func Associate[T any, K comparable, V any](s Seq[T], fn func(T) (K, V)) map[K]V {
	out := make(map[K]V)
	for e := range s.Values() {
		k, v := fn(e)
		out[k] = v
	}
	return out
}

// AssociateBy builds a map from derived key to original element, later
// collisions overwriting earlier ones.
func AssociateBy[T any, K comparable](s Seq[T], keySelector func(T) K) map[K]T {
	return Associate(s, func(v T) (K, T) { return keySelector(v), v })
}

// AssociateWith builds a map from original element to derived value.
func AssociateWith[T comparable, V any](s Seq[T], valueSelector func(T) V) map[T]V {
	return Associate(s, func(v T) (T, V) { return v, valueSelector(v) })
}

// GroupBy builds a map from derived key to the ordered list of all elements
// sharing that key, in encounter order.
func GroupBy[T any, K comparable](s Seq[T], keySelector func(T) K) map[K][]T {
	out := make(map[K][]T)
	for v := range s.Values() {
		k := keySelector(v)
		out[k] = append(out[k], v)
	}
	return out
}

// Max returns the maximum element by natural order, or an error wrapping
// ErrEmptySequence when the sequence is empty.
func Max[T cmp.Ordered](s Seq[T]) (T, error) {
	if v, ok := MaxOK(s); ok {
		return v, nil
	}
	var zero T
	return zero, opError("Max", skerrors.ErrEmptySequence)
}

// MaxOK is the lenient form of Max.
func MaxOK[T cmp.Ordered](s Seq[T]) (T, bool) {
	return s.ReduceOK(func(acc, v T) T {
		if v > acc {
			return v
		}
		return acc
	})
}

// Min returns the minimum element by natural order, or an error wrapping
// ErrEmptySequence when the sequence is empty.
func Min[T cmp.Ordered](s Seq[T]) (T, error) {
	if v, ok := MinOK(s); ok {
		return v, nil
	}
	var zero T
	return zero, opError("Min", skerrors.ErrEmptySequence)
}

// MinOK is the lenient form of Min.
func MinOK[T cmp.Ordered](s Seq[T]) (T, bool) {
	return s.ReduceOK(func(acc, v T) T {
		if v < acc {
			return v
		}
		return acc
	})
}

// MaxBy returns the element with the largest derived key, or an error
// wrapping ErrEmptySequence when the sequence is empty. When two elements
// produce an equal key, the later-encountered element wins.
func MaxBy[T any, K cmp.Ordered](s Seq[T], selector func(T) K) (T, error) {
	if v, ok := MaxByOK(s, selector); ok {
		return v, nil
	}
	var zero T
	return zero, opError("MaxBy", skerrors.ErrEmptySequence)
}

// MaxByOK is the lenient form of MaxBy. The equal-key tie-break keeps the
// later-encountered element: the fold only retains the accumulator while
// its key is strictly greater.
func MaxByOK[T any, K cmp.Ordered](s Seq[T], selector func(T) K) (T, bool) {
	var best T
	var bestKey K
	found := false
	for v := range s.Values() {
		k := selector(v)
		if found && bestKey > k {
			continue
		}
		best, bestKey, found = v, k, true
	}
	return best, found
}

// MinBy returns the element with the smallest derived key, or an error
// wrapping ErrEmptySequence when the sequence is empty. When two elements
// produce an equal key, the earlier-encountered element wins.
func MinBy[T any, K cmp.Ordered](s Seq[T], selector func(T) K) (T, error) {
	if v, ok := MinByOK(s, selector); ok {
		return v, nil
	}
	var zero T
	return zero, opError("MinBy", skerrors.ErrEmptySequence)
}

// MinByOK is the lenient form of MinBy. The equal-key tie-break keeps the
// earlier-encountered element: the fold replaces the accumulator only on a
// strictly smaller key. The asymmetry with MaxByOK is deliberate.
func MinByOK[T any, K cmp.Ordered](s Seq[T], selector func(T) K) (T, bool) {
	var best T
	var bestKey K
	found := false
	for v := range s.Values() {
		k := selector(v)
		if found && k >= bestKey {
			continue
		}
		best, bestKey, found = v, k, true
	}
	return best, found
}

// Sum adds all elements together, or returns an error wrapping
// ErrEmptySequence when the sequence is empty; no zero value is assumed.
func Sum[T Addable](s Seq[T]) (T, error) {
	if v, ok := SumOK(s); ok {
		return v, nil
	}
	var zero T
	return zero, opError("Sum", skerrors.ErrEmptySequence)
}

// SumOK is the lenient form of Sum.
func SumOK[T Addable](s Seq[T]) (T, bool) {
	return s.ReduceOK(func(acc, v T) T { return acc + v })
}
