package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/vnykmshr/seqkit/internal/testutil"
	"github.com/vnykmshr/seqkit/pkg/seq"
)

func newTestRegistry() *Registry {
	return NewRegistry(prometheus.NewRegistry())
}

func TestInstrumentCountsItems(t *testing.T) {
	reg := newTestRegistry()

	s := Instrument(reg, "squares", seq.FromSlice([]int{1, 2, 3}))

	// Nothing is counted until a terminal pulls.
	got := promtestutil.ToFloat64(reg.SeqItems.WithLabelValues("squares"))
	testutil.AssertEqual(t, got, 0.0)

	_ = s.ToSlice()

	got = promtestutil.ToFloat64(reg.SeqItems.WithLabelValues("squares"))
	testutil.AssertEqual(t, got, 3.0)
}

func TestInstrumentCountsOnlyPulledItems(t *testing.T) {
	reg := newTestRegistry()

	s := Instrument(reg, "bounded", seq.Range(0, 100)).Take(4)
	_ = s.ToSlice()

	got := promtestutil.ToFloat64(reg.SeqItems.WithLabelValues("bounded"))
	testutil.AssertEqual(t, got, 4.0)
}

func TestInstrumentIsReiterable(t *testing.T) {
	reg := newTestRegistry()

	s := Instrument(reg, "twice", seq.Of("a", "b"))
	_ = s.ToSlice()
	_ = s.ToSlice()

	got := promtestutil.ToFloat64(reg.SeqItems.WithLabelValues("twice"))
	testutil.AssertEqual(t, got, 4.0)
}

func TestCountOp(t *testing.T) {
	reg := newTestRegistry()

	reg.CountOp("ToSlice", "squares")
	reg.CountOp("ToSlice", "squares")
	reg.CountOp("Count", "squares")

	testutil.AssertEqual(t, promtestutil.ToFloat64(reg.SeqOperations.WithLabelValues("ToSlice", "squares")), 2.0)
	testutil.AssertEqual(t, promtestutil.ToFloat64(reg.SeqOperations.WithLabelValues("Count", "squares")), 1.0)
}

func TestObservePipeline(t *testing.T) {
	reg := newTestRegistry()

	ran := false
	reg.ObservePipeline("report", func() { ran = true })

	testutil.AssertEqual(t, ran, true)
	testutil.AssertEqual(t, promtestutil.ToFloat64(reg.SeqPipelines.WithLabelValues("report")), 1.0)

	if n := promtestutil.CollectAndCount(reg.PipelineDuration); n != 1 {
		t.Errorf("expected 1 duration series, got %d", n)
	}
}

func TestNewRegistryWithConfig(t *testing.T) {
	base := prometheus.NewRegistry()
	reg := NewRegistryWithConfig(Config{
		Registry:  base,
		Namespace: "custom",
		Labels:    prometheus.Labels{"app": "demo"},
	})

	reg.CountOp("Count", "p")

	families, err := base.Gather()
	testutil.AssertNoError(t, err)

	found := false
	for _, mf := range families {
		if mf.GetName() == "custom_seq_operations_total" {
			found = true
			for _, lp := range mf.GetMetric()[0].GetLabel() {
				if lp.GetName() == "app" {
					testutil.AssertEqual(t, lp.GetValue(), "demo")
				}
			}
		}
	}
	if !found {
		t.Error("expected custom_seq_operations_total to be registered")
	}
}

func TestInstrumentNilRegistryFallsBack(t *testing.T) {
	s := Instrument[int](nil, "fallback", seq.Of(1))
	testutil.AssertEqual(t, s.Count(), 1)
}
