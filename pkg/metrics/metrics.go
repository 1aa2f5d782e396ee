package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vnykmshr/seqkit/pkg/seq"
)

// Registry holds all metric instances for seqkit pipelines.
type Registry struct {
	// SeqOperations counts terminal operations by name and pipeline.
	SeqOperations *prometheus.CounterVec

	// SeqItems counts items flowing through instrumented sequences.
	SeqItems *prometheus.CounterVec

	// SeqPipelines counts completed pipeline runs.
	SeqPipelines *prometheus.CounterVec

	// PipelineDuration tracks wall time of whole pipeline runs.
	PipelineDuration *prometheus.HistogramVec
}

// DefaultRegistry is the registry used when callers do not supply their own.
var DefaultRegistry *Registry

func init() {
	DefaultRegistry = NewRegistry(prometheus.DefaultRegisterer)
}

// NewRegistry creates a metrics registry with the given Prometheus registerer.
func NewRegistry(reg prometheus.Registerer) *Registry {
	return NewRegistryWithConfig(Config{Registry: reg, Namespace: DefaultNamespace})
}

// NewRegistryWithConfig creates a metrics registry from an explicit Config.
func NewRegistryWithConfig(cfg Config) *Registry {
	namespace := cfg.Namespace
	if namespace == "" {
		namespace = DefaultNamespace
	}
	registerer := cfg.Registry
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	if len(cfg.Labels) > 0 {
		registerer = prometheus.WrapRegistererWith(cfg.Labels, registerer)
	}
	factory := promauto.With(registerer)

	return &Registry{
		SeqOperations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "seq",
				Name:      "operations_total",
				Help:      "Total number of terminal operations executed",
			},
			[]string{"operation", "pipeline"},
		),

		SeqItems: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "seq",
				Name:      "items_total",
				Help:      "Total number of items flowing through instrumented sequences",
			},
			[]string{"pipeline"},
		),

		SeqPipelines: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "seq",
				Name:      "pipelines_total",
				Help:      "Total number of completed pipeline runs",
			},
			[]string{"pipeline"},
		),

		PipelineDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "seq",
				Name:      "pipeline_duration_seconds",
				Help:      "Wall time of whole pipeline runs",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"pipeline"},
		),
	}
}

// Instrument wraps s so every item pulled through it increments the
// pipeline's item counter on r. The wrapped sequence is as lazy as the
// original.
func Instrument[T any](r *Registry, pipeline string, s seq.Seq[T]) seq.Seq[T] {
	if r == nil {
		r = DefaultRegistry
	}
	items := r.SeqItems.WithLabelValues(pipeline)
	return s.Peek(func(T) { items.Inc() })
}

// CountOp records one execution of a terminal operation for the pipeline.
func (r *Registry) CountOp(operation, pipeline string) {
	r.SeqOperations.WithLabelValues(operation, pipeline).Inc()
}

// ObservePipeline runs fn as a complete pipeline run, counting it and
// recording its duration.
func (r *Registry) ObservePipeline(pipeline string, fn func()) {
	start := time.Now()
	fn()
	r.PipelineDuration.WithLabelValues(pipeline).Observe(time.Since(start).Seconds())
	r.SeqPipelines.WithLabelValues(pipeline).Inc()
}
