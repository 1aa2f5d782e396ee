package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// DefaultNamespace is the namespace used for all seqkit metrics unless a
// Config overrides it.
const DefaultNamespace = "seqkit"

// Config holds configuration for metrics collection.
type Config struct {
	// Registry is the Prometheus registerer to use. If nil, uses
	// prometheus.DefaultRegisterer.
	Registry prometheus.Registerer

	// Namespace overrides the default "seqkit" namespace.
	Namespace string

	// Labels are constant labels added to all metrics.
	Labels prometheus.Labels
}

// DefaultConfig returns a default metrics configuration.
func DefaultConfig() Config {
	return Config{
		Registry:  prometheus.DefaultRegisterer,
		Namespace: DefaultNamespace,
		Labels:    nil,
	}
}
