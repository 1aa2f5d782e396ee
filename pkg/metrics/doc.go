// Package metrics provides Prometheus instrumentation for seqkit pipelines.
//
// Instrumentation is opt-in: the seq package never touches a registry on its
// own. Callers wrap a sequence with Instrument to count the items flowing
// through a named pipeline, and record whole-pipeline runs with
// Registry.ObservePipeline. Counting rides on seq.Peek, so an instrumented
// sequence stays lazy and adds no buffering.
//
// DefaultRegistry registers against prometheus.DefaultRegisterer at package
// load. Tests and embedders that need isolation should build their own
// Registry from a fresh prometheus.NewRegistry().
package metrics
