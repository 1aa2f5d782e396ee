/*
Package seq provides a lazy, chainable API for processing sequences of
values in Go, modeled on Kotlin's Sequence type.

A Seq wraps any producer of elements and defers all computation until a
terminal operation drives it. Elements are pulled one at a time through the
chain of operators; no intermediate collections are built unless an
operator's contract requires materialization (sorting, shuffling).

Core Concepts:

A Seq[T] represents a sequence of elements supporting sequential operations.
Sequences are:
  - Lazy: intermediate operations build a deferred pipeline; elements are
    produced only when a terminal operation consumes the sequence
  - Immutable: operations return new sequences rather than modifying
    existing ones
  - Pull-based: evaluation is single-threaded and synchronous; each stage
    requests the next element from its upstream only when its own consumer
    asks for one

Basic Usage:

	evens := seq.FromSlice([]int{1, 2, 3, 4, 5, 6}).
		Filter(func(x int) bool { return x%2 == 0 }).
		Map(func(x int) int { return x * 10 }).
		ToSlice() // [20 40 60]

Sequence Creation:

	// From a slice (re-iterable, fast Last)
	s := seq.FromSlice([]string{"a", "b", "c"})

	// From values
	s := seq.Of(1, 2, 3)

	// From any iter.Seq producer
	s := seq.FromSeq(maps.Keys(m))

	// From a channel (single-pass)
	s := seq.FromChannel(ch)

	// Infinite generator
	n := 0
	s := seq.Generate(func() int { n++; return n })

	// Integer range [0, 10)
	s := seq.Range(0, 10)

Type-Changing Operations:

Go methods cannot introduce new type parameters, so operations that change
the element type, or that constrain it (ordering, hashing, addition), are
package-level functions taking the sequence explicitly:

	lengths := seq.Map(words, func(w string) int { return len(w) })
	byLen := seq.GroupBy(words, func(w string) int { return len(w) })
	total, err := seq.Sum(lengths)

Every method also has a package-level mirror, and operators taking a
function or argument have a curried form for point-free composition with
the pipe package:

	shorts := seq.Taking[string](3)(seq.Filtering(isShort)(words))

Strict and Lenient Terminals:

Terminal operations that need at least one element come in two forms: a
strict form returning (T, error) that fails with ErrEmptySequence (or
ErrMultipleElements for Single), and a lenient comma-ok form suffixed OK
returning (T, bool):

	v, err := s.First()   // error when empty
	v, ok := s.FirstOK()  // ok == false when empty

Single-Pass Sources:

A Seq built over a slice or map view may be iterated any number of times;
one built over a channel or one-shot generator yields nothing on a second
traversal. The library does not track or prevent double consumption; that
is the caller's responsibility.
*/
package seq
