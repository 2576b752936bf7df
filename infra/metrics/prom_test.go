package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	coremetrics "github.com/kilianp07/pawpal/core/metrics"
)

func TestPromSink_RecordPlan(t *testing.T) {
	reg := prometheus.NewRegistry()
	sinkIf, err := NewPromSinkWithRegistry(coremetrics.Config{}, reg)
	if err != nil {
		t.Fatalf("create sink: %v", err)
	}
	sink, ok := sinkIf.(*PromSink)
	if !ok {
		t.Fatalf("expected PromSink")
	}

	rec := coremetrics.PlanRecord{
		Owner:                "Sarah",
		Policy:               "priority_first",
		ScheduledCount:       3,
		RejectedCount:        1,
		TimeUsedMinutes:      55,
		TimeAvailableMinutes: 60,
		EfficiencyPercent:    91.7,
		GeneratedAt:          time.Now(),
	}
	if err := sink.RecordPlan(rec); err != nil {
		t.Fatalf("record error: %v", err)
	}

	expected := `
# HELP pawpal_plans_total Total number of generated daily plans
# TYPE pawpal_plans_total counter
pawpal_plans_total{policy="priority_first"} 1
`
	if err := testutil.CollectAndCompare(sink.plans, strings.NewReader(expected)); err != nil {
		t.Errorf("unexpected metrics: %v", err)
	}
	if got := testutil.ToFloat64(sink.scheduled); got != 3 {
		t.Errorf("scheduled counter = %v, want 3", got)
	}
	if got := testutil.ToFloat64(sink.rejected); got != 1 {
		t.Errorf("rejected counter = %v, want 1", got)
	}
	if got := testutil.ToFloat64(sink.efficiency); got != 91.7 {
		t.Errorf("efficiency gauge = %v, want 91.7", got)
	}
}

func TestPromSink_DoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := NewPromSinkWithRegistry(coremetrics.Config{}, reg); err != nil {
		t.Fatalf("first registration: %v", err)
	}
	if _, err := NewPromSinkWithRegistry(coremetrics.Config{}, reg); err != nil {
		t.Fatalf("second registration should reuse collectors: %v", err)
	}
}

func TestMultiSinkForwards(t *testing.T) {
	reg := prometheus.NewRegistry()
	prom, err := NewPromSinkWithRegistry(coremetrics.Config{}, reg)
	if err != nil {
		t.Fatalf("create sink: %v", err)
	}
	multi := NewMultiSink(coremetrics.NopSink{}, prom)
	if err := multi.RecordPlan(coremetrics.PlanRecord{Policy: "by_pet", ScheduledCount: 2}); err != nil {
		t.Fatalf("record: %v", err)
	}
	if got := testutil.ToFloat64(prom.(*PromSink).scheduled); got != 2 {
		t.Fatalf("scheduled counter = %v, want 2", got)
	}
}
