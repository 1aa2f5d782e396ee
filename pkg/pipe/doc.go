// Package pipe composes single-argument functions into left-to-right
// pipelines.
//
// It pairs with the curried operator constructors in pkg/seq: each stage is
// a func(A) B, and PipeN threads a value through up to eight stages with
// full type inference at every step. Apply covers the homogeneous case where
// every stage preserves the value's type.
//
// Because Go has no variadic type parameters, one function is provided per
// arity rather than a single variadic combinator.
package pipe
