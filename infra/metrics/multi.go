package metrics

import coremetrics "github.com/kilianp07/pawpal/core/metrics"

// MultiSink fans plan records out to multiple sinks.
type MultiSink struct {
	Sinks []coremetrics.Sink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...coremetrics.Sink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordPlan forwards the record to all sinks, returning the first
// error encountered.
func (m *MultiSink) RecordPlan(rec coremetrics.PlanRecord) error {
	for _, s := range m.Sinks {
		if err := s.RecordPlan(rec); err != nil {
			return err
		}
	}
	return nil
}
