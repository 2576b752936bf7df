package metrics

import "time"

// PlanRecord captures one planning run for observability purposes.
type PlanRecord struct {
	Owner                string
	Policy               string
	ScheduledCount       int
	RejectedCount        int
	TimeUsedMinutes      int
	TimeAvailableMinutes int
	EfficiencyPercent    float64
	GeneratedAt          time.Time
}

// Sink records planning results.
type Sink interface {
	RecordPlan(rec PlanRecord) error
}

// NopSink discards all records.
type NopSink struct{}

func (NopSink) RecordPlan(PlanRecord) error { return nil }

// Config holds metrics backend settings.
type Config struct {
	// PrometheusEnabled turns the Prometheus sink and /metrics server on.
	PrometheusEnabled bool `json:"prometheus_enabled"`
	// PrometheusPort is the listen address of the metrics server, e.g. ":9090".
	PrometheusPort string `json:"prometheus_port"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.PrometheusPort == "" {
		c.PrometheusPort = ":9090"
	}
}
