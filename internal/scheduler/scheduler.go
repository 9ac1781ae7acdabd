package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/nddiaye/centerpointe/internal/config"
	"github.com/nddiaye/centerpointe/internal/metrics"
	"github.com/nddiaye/centerpointe/internal/simulation"
)

// Scheduler manages scheduled tasks.
type Scheduler struct {
	cron   *cron.Cron
	engine *simulation.Engine
	cfg    config.Config
	logger *zap.Logger
}

// NewScheduler creates a new scheduler instance. The cron runs in the
// configured reporting timezone so the morning report lands before opening,
// falling back to local time when the zone cannot be loaded.
func NewScheduler(cfg config.Config, engine *simulation.Engine, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	location, err := time.LoadLocation(cfg.Reporting.Timezone)
	if err != nil {
		logger.Warn("unknown reporting timezone, using local time",
			zap.String("timezone", cfg.Reporting.Timezone), zap.Error(err))
		location = time.Local
	}

	return &Scheduler{
		cron:   cron.New(cron.WithLocation(location)),
		engine: engine,
		cfg:    cfg,
		logger: logger,
	}
}

// Start starts the scheduler.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler", zap.String("schedule", s.cfg.Reporting.CronSchedule))

	_, err := s.cron.AddFunc(s.cfg.Reporting.CronSchedule, s.publishMorningReport)
	if err != nil {
		s.logger.Error("failed to schedule morning report", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

// publishMorningReport computes today's projected demand and staffing, logs
// the headline numbers and refreshes the exported gauges.
func (s *Scheduler) publishMorningReport() {
	record, err := s.engine.Compute(time.Now().UTC(), "", "")
	if err != nil {
		s.logger.Error("failed to compute morning report", zap.Error(err))
		return
	}

	metrics.ProjectedTransactions.Set(float64(record.Transactions.Total))
	metrics.ProjectedLaborHours.Set(record.TotalLaborHours)

	s.logger.Info("morning report",
		zap.String("date", record.DateString),
		zap.String("academic_period", record.Period.Name),
		zap.String("weather", string(record.Environment.Weather)),
		zap.String("campus_event", string(record.Environment.Event)),
		zap.Int("total_transactions", record.Transactions.Total),
		zap.Float64("estimated_revenue", record.Transactions.Revenue.DailyRevenue),
		zap.Float64("total_labor_hours", record.TotalLaborHours),
		zap.Float64("capacity_utilization", record.CapacityUtilization))
}
