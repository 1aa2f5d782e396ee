/*
Package seqkit provides a Go library for lazy, functional sequence
processing in the style of Kotlin's Sequence type.

Sequence operators (pkg/seq):
  - seq: the Seq[T] wrapper with chainable intermediate operations
    (filter, map, drop, take, chunked, distinct, sorted, shuffled)
    and terminal operations (collect, reduce, group, partition)
  - every operator is also available as a package-level function, with
    curried forms for point-free composition

Composition (pkg/pipe):
  - pipe: thread a value left-to-right through a chain of functions

Observability (pkg/metrics):
  - metrics: optional Prometheus instrumentation for sequence pipelines

Example usage:

	import "github.com/vnykmshr/seqkit/pkg/seq"

	evens := seq.FromSlice([]int{1, 2, 3, 4, 5, 6}).
		Filter(func(x int) bool { return x%2 == 0 }).
		Take(2).
		ToSlice() // [2 4]
*/
package seqkit
