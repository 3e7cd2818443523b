package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/i474232898/weather-lookup/internal/session"
)

// Target is what the scheduler refreshes. *session.Session satisfies it.
type Target interface {
	LastQuery() string
	SubmitSync(ctx context.Context, text string) (session.Snapshot, bool)
}

// Scheduler periodically resubmits the last accepted query so the displayed
// reading stays current.
type Scheduler struct {
	scheduler *gocron.Scheduler
	target    Target
	interval  time.Duration
	timeout   time.Duration
	logger    *slog.Logger
}

// New creates a new Scheduler. An interval <= 0 disables refreshing.
func New(target Target, interval time.Duration, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		target:    target,
		interval:  interval,
		timeout:   30 * time.Second,
		logger:    logger,
	}
}

// Start schedules the refresh job and starts the underlying scheduler.
func (s *Scheduler) Start() error {
	if s.interval <= 0 {
		s.logger.Info("scheduler: refresh disabled")
		return nil
	}

	_, err := s.scheduler.Every(s.interval).WaitForSchedule().SingletonMode().Do(s.refresh)
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	s.logger.Info("scheduler: refresh enabled", "interval", s.interval.String())
	return nil
}

func (s *Scheduler) refresh() {
	query := s.target.LastQuery()
	if query == "" {
		s.logger.Debug("scheduler: nothing to refresh")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	snap, _ := s.target.SubmitSync(ctx, query)
	s.logger.Debug("scheduler: refreshed reading", "query", query, "state", string(snap.State), "error", snap.Error)
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil && s.scheduler.IsRunning() {
		s.scheduler.Stop()
	}
}
