package metrics

import (
	coremetrics "github.com/kilianp07/pawpal/core/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// PromSink records planning runs in Prometheus metrics.
type PromSink struct {
	plans      *prometheus.CounterVec
	scheduled  prometheus.Counter
	rejected   prometheus.Counter
	efficiency prometheus.Gauge
}

// NewPromSink registers planning metrics on the default Prometheus
// registerer. The metrics server should be started separately using
// cfg.PrometheusPort.
func NewPromSink(cfg coremetrics.Config) (coremetrics.Sink, error) {
	return NewPromSinkWithRegistry(cfg, prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(cfg coremetrics.Config, reg prometheus.Registerer) (coremetrics.Sink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	plans := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pawpal_plans_total",
		Help: "Total number of generated daily plans",
	}, []string{"policy"})
	scheduled := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pawpal_tasks_scheduled_total",
		Help: "Total number of tasks packed into plans",
	})
	rejected := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pawpal_tasks_rejected_total",
		Help: "Total number of tasks that did not fit the time budget",
	})
	efficiency := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "pawpal_plan_efficiency_percent",
		Help: "Share of the time budget used by the most recent plan",
	})

	if err := reg.Register(plans); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			plans = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(scheduled); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			scheduled = are.ExistingCollector.(prometheus.Counter)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(rejected); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			rejected = are.ExistingCollector.(prometheus.Counter)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(efficiency); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			efficiency = are.ExistingCollector.(prometheus.Gauge)
		} else {
			return nil, err
		}
	}

	return &PromSink{plans: plans, scheduled: scheduled, rejected: rejected, efficiency: efficiency}, nil
}

// RecordPlan updates the counters and the efficiency gauge.
func (s *PromSink) RecordPlan(rec coremetrics.PlanRecord) error {
	s.plans.WithLabelValues(rec.Policy).Inc()
	s.scheduled.Add(float64(rec.ScheduledCount))
	s.rejected.Add(float64(rec.RejectedCount))
	s.efficiency.Set(rec.EfficiencyPercent)
	return nil
}
