package pipe

// Apply threads v through each stage in order. All stages share one type,
// which keeps the arity open-ended.
func Apply[T any](v T, stages ...func(T) T) T {
	for _, stage := range stages {
		v = stage(v)
	}
	return v
}

// Pipe2 threads v through two stages.
func Pipe2[A, B, C any](v A, f1 func(A) B, f2 func(B) C) C {
	return f2(f1(v))
}

// Pipe3 threads v through three stages.
func Pipe3[A, B, C, D any](v A, f1 func(A) B, f2 func(B) C, f3 func(C) D) D {
	return f3(Pipe2(v, f1, f2))
}

// Pipe4 threads v through four stages.
func Pipe4[A, B, C, D, E any](v A, f1 func(A) B, f2 func(B) C, f3 func(C) D, f4 func(D) E) E {
	return f4(Pipe3(v, f1, f2, f3))
}

// Pipe5 threads v through five stages.
func Pipe5[A, B, C, D, E, F any](v A, f1 func(A) B, f2 func(B) C, f3 func(C) D, f4 func(D) E, f5 func(E) F) F {
	return f5(Pipe4(v, f1, f2, f3, f4))
}

// Pipe6 threads v through six stages.
func Pipe6[A, B, C, D, E, F, G any](v A, f1 func(A) B, f2 func(B) C, f3 func(C) D, f4 func(D) E, f5 func(E) F, f6 func(F) G) G {
	return f6(Pipe5(v, f1, f2, f3, f4, f5))
}

// Pipe7 threads v through seven stages.
func Pipe7[A, B, C, D, E, F, G, H any](v A, f1 func(A) B, f2 func(B) C, f3 func(C) D, f4 func(D) E, f5 func(E) F, f6 func(F) G, f7 func(G) H) H {
	return f7(Pipe6(v, f1, f2, f3, f4, f5, f6))
}

// Pipe8 threads v through eight stages.
func Pipe8[A, B, C, D, E, F, G, H, I any](v A, f1 func(A) B, f2 func(B) C, f3 func(C) D, f4 func(D) E, f5 func(E) F, f6 func(F) G, f7 func(G) H, f8 func(H) I) I {
	return f8(Pipe7(v, f1, f2, f3, f4, f5, f6, f7))
}

// Compose2 returns a single stage equivalent to f1 followed by f2, for
// building reusable pipelines without a starting value.
func Compose2[A, B, C any](f1 func(A) B, f2 func(B) C) func(A) C {
	return func(v A) C { return f2(f1(v)) }
}

// Compose3 returns a single stage equivalent to f1, f2, then f3.
func Compose3[A, B, C, D any](f1 func(A) B, f2 func(B) C, f3 func(C) D) func(A) D {
	return func(v A) D { return f3(f2(f1(v))) }
}
