package app

import (
	"context"
	"fmt"
	"time"

	"github.com/kilianp07/pawpal/config"
	coremetrics "github.com/kilianp07/pawpal/core/metrics"
	"github.com/kilianp07/pawpal/core/model"
	"github.com/kilianp07/pawpal/core/planner"
	"github.com/kilianp07/pawpal/infra/logger"
	"github.com/kilianp07/pawpal/infra/metrics"
	"github.com/kilianp07/pawpal/internal/eventbus"
)

// Service wires the planner, the event bus and the metrics sink.
type Service struct {
	cfg     *config.Config
	planner *planner.Planner
	bus     *eventbus.Bus
	sink    coremetrics.Sink
	log     logger.Logger
	done    chan struct{}
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")

	var sink coremetrics.Sink = coremetrics.NopSink{}
	if cfg.Metrics.PrometheusEnabled {
		s, err := metrics.NewPromSink(cfg.Metrics)
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sink = s
	}

	svc := &Service{
		cfg:     cfg,
		planner: planner.New(cfg.Planner.Core(), logg),
		bus:     eventbus.New(),
		sink:    sink,
		log:     logg,
		done:    make(chan struct{}),
	}
	go svc.recordLoop(svc.bus.Subscribe())
	return svc, nil
}

// recordLoop forwards plan events to the metrics sink until the bus is
// closed.
func (s *Service) recordLoop(events <-chan eventbus.PlanEvent) {
	defer close(s.done)
	for ev := range events {
		rec := coremetrics.PlanRecord{
			Owner:                ev.Owner,
			Policy:               ev.Policy,
			ScheduledCount:       ev.Scheduled,
			RejectedCount:        ev.Rejected,
			TimeUsedMinutes:      ev.TimeUsedMinutes,
			TimeAvailableMinutes: ev.TimeAvailableMinutes,
			EfficiencyPercent:    ev.EfficiencyPercent,
			GeneratedAt:          ev.GeneratedAt,
		}
		if err := s.sink.RecordPlan(rec); err != nil {
			s.log.Errorf("record plan: %v", err)
		}
	}
}

// GeneratePlan runs the planning pipeline for the owner on the given
// date and publishes a plan event.
func (s *Service) GeneratePlan(owner *model.Owner, date time.Time) (planner.Plan, error) {
	dayStart, err := s.cfg.Planner.DayStartOn(date)
	if err != nil {
		return planner.Plan{}, err
	}
	plan, err := s.planner.GeneratePlan(owner, dayStart)
	if err != nil {
		return planner.Plan{}, err
	}
	s.bus.Publish(eventbus.PlanEvent{
		Owner:                owner.Name(),
		Policy:               s.cfg.Planner.Policy,
		Scheduled:            len(plan.Scheduled),
		Rejected:             len(plan.Rejected),
		TimeUsedMinutes:      plan.Stats.TimeUsedMinutes,
		TimeAvailableMinutes: plan.Stats.TimeAvailableMinutes,
		EfficiencyPercent:    plan.Stats.EfficiencyPercent,
		GeneratedAt:          time.Now(),
	})
	return plan, nil
}

// DetectConflicts checks the tasks with the configured advisory
// setting.
func (s *Service) DetectConflicts(tasks []*model.Task) []planner.Conflict {
	return s.planner.Conflicts(tasks)
}

// ServeMetrics blocks serving the Prometheus endpoint until ctx is
// canceled. It is a no-op when Prometheus is disabled.
func (s *Service) ServeMetrics(ctx context.Context) error {
	if !s.cfg.Metrics.PrometheusEnabled {
		<-ctx.Done()
		return nil
	}
	return metrics.StartPromServer(ctx, s.cfg.Metrics.PrometheusPort)
}

// Close shuts the event bus down and waits for pending records to be
// flushed.
func (s *Service) Close() error {
	s.bus.Close()
	<-s.done
	return nil
}
