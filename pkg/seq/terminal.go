package seq

import (
	"fmt"
	"strings"

	skerrors "github.com/vnykmshr/seqkit/pkg/common/errors"
)

func opError(operation string, cause error) error {
	return skerrors.NewOperationError("seq", operation, cause)
}

// ToSlice materializes the sequence into a freshly allocated slice.
func (s Seq[T]) ToSlice() []T {
	var out []T
	for v := range s.Values() {
		out = append(out, v)
	}
	return out
}

// Count consumes the sequence and returns the number of elements.
func (s Seq[T]) Count() int {
	n := 0
	for range s.Values() {
		n++
	}
	return n
}

// All reports whether every element satisfies the predicate. It is
// vacuously true for an empty sequence and stops at the first failure.
func (s Seq[T]) All(predicate func(T) bool) bool {
	for v := range s.Values() {
		if !predicate(v) {
			return false
		}
	}
	return true
}

// Any reports whether at least one element satisfies the predicate. It is
// false for an empty sequence and stops at the first match.
func (s Seq[T]) Any(predicate func(T) bool) bool {
	for v := range s.Values() {
		if predicate(v) {
			return true
		}
	}
	return false
}

// None reports whether no element satisfies the predicate.
func (s Seq[T]) None(predicate func(T) bool) bool {
	return !s.Any(predicate)
}

// First returns the first element, or an error wrapping ErrEmptySequence
// when the sequence is empty. At most one element is pulled.
func (s Seq[T]) First() (T, error) {
	if v, ok := s.FirstOK(); ok {
		return v, nil
	}
	var zero T
	return zero, opError("First", skerrors.ErrEmptySequence)
}

// FirstOK returns the first element and true, or the zero value and false
// when the sequence is empty.
func (s Seq[T]) FirstOK() (T, bool) {
	for v := range s.Values() {
		return v, true
	}
	var zero T
	return zero, false
}

// Last returns the last element, or an error wrapping ErrEmptySequence when
// the sequence is empty. Slice-backed sequences use indexed access instead
// of a full traversal.
func (s Seq[T]) Last() (T, error) {
	if v, ok := s.LastOK(); ok {
		return v, nil
	}
	var zero T
	return zero, opError("Last", skerrors.ErrEmptySequence)
}

// LastOK returns the last element and true, or the zero value and false
// when the sequence is empty.
func (s Seq[T]) LastOK() (T, bool) {
	if s.indexed {
		if len(s.backing) == 0 {
			var zero T
			return zero, false
		}
		return s.backing[len(s.backing)-1], true
	}
	var last T
	found := false
	for v := range s.Values() {
		last = v
		found = true
	}
	return last, found
}

// Single returns the sole element of the sequence. It returns an error
// wrapping ErrEmptySequence when the sequence is empty and one wrapping
// ErrMultipleElements when it has more than one element.
func (s Seq[T]) Single() (T, error) {
	var single T
	var zero T
	n := 0
	for v := range s.Values() {
		if n == 1 {
			n = 2
			break
		}
		single = v
		n = 1
	}
	switch n {
	case 0:
		return zero, opError("Single", skerrors.ErrEmptySequence)
	case 2:
		return zero, opError("Single", skerrors.ErrMultipleElements)
	}
	return single, nil
}

// SingleOK returns the sole element and true, or the zero value and false
// when the sequence is empty or has more than one element.
func (s Seq[T]) SingleOK() (T, bool) {
	var single T
	n := 0
	for v := range s.Values() {
		if n == 1 {
			n = 2
			break
		}
		single = v
		n = 1
	}
	if n != 1 {
		var zero T
		return zero, false
	}
	return single, true
}

// Reduce folds the sequence left to right with op, seeding the accumulator
// with the first element. It returns an error wrapping ErrEmptySequence
// when the sequence is empty; there is no identity value to fall back on.
func (s Seq[T]) Reduce(op func(acc, v T) T) (T, error) {
	if v, ok := s.ReduceOK(op); ok {
		return v, nil
	}
	var zero T
	return zero, opError("Reduce", skerrors.ErrEmptySequence)
}

// ReduceOK is the lenient form of Reduce, returning the zero value and
// false on an empty sequence.
func (s Seq[T]) ReduceOK(op func(acc, v T) T) (T, bool) {
	var acc T
	found := false
	for v := range s.Values() {
		if !found {
			acc = v
			found = true
			continue
		}
		acc = op(acc, v)
	}
	return acc, found
}

// ForEach invokes action on every element, in order.
func (s Seq[T]) ForEach(action func(T)) {
	for v := range s.Values() {
		action(v)
	}
}

// JoinToString renders every element with fmt.Sprint, interleaved with
// separator and wrapped in prefix and suffix.
func (s Seq[T]) JoinToString(separator, prefix, suffix string) string {
	var b strings.Builder
	b.WriteString(prefix)
	first := true
	for v := range s.Values() {
		if !first {
			b.WriteString(separator)
		}
		fmt.Fprint(&b, v)
		first = false
	}
	b.WriteString(suffix)
	return b.String()
}

// Partition splits the sequence in a single traversal into the elements
// satisfying the predicate and those that do not, each preserving the
// original relative order.
func (s Seq[T]) Partition(predicate func(T) bool) (match, rest []T) {
	for v := range s.Values() {
		if predicate(v) {
			match = append(match, v)
		} else {
			rest = append(rest, v)
		}
	}
	return match, rest
}
