package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const refreshTimeout = 2 * time.Minute

// Refresher regenerates cached dashboard data.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Scheduler manages scheduled tasks.
type Scheduler struct {
	cron      *cron.Cron
	schedule  string
	refresher Refresher
	logger    *zap.Logger
}

// NewScheduler creates a scheduler that refreshes on the given standard
// five-field cron schedule, evaluated in location.
func NewScheduler(schedule string, location *time.Location, refresher Refresher, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if location == nil {
		location = time.UTC
	}

	return &Scheduler{
		cron:      cron.New(cron.WithLocation(location)),
		schedule:  schedule,
		refresher: refresher,
		logger:    logger,
	}
}

// Start registers the refresh job and starts the scheduler.
func (s *Scheduler) Start() error {
	s.logger.Info("starting scheduler", zap.String("schedule", s.schedule))

	if _, err := s.cron.AddFunc(s.schedule, s.refresh); err != nil {
		return fmt.Errorf("schedule snapshot refresh: %w", err)
	}

	s.cron.Start()
	return nil
}

// Stop stops the scheduler and waits for a running refresh to finish.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	<-s.cron.Stop().Done()
}

// Entries reports how many jobs are registered.
func (s *Scheduler) Entries() int {
	return len(s.cron.Entries())
}

func (s *Scheduler) refresh() {
	s.logger.Info("refreshing snapshot")
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	if err := s.refresher.Refresh(ctx); err != nil {
		s.logger.Error("failed to refresh snapshot", zap.Error(err))
	}
}
