package country

import (
	"context"
	"countryfx/internal/domain"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/sirupsen/logrus"
)

type BatchRefresher interface {
	Refresh(ctx context.Context) (domain.RefreshResult, error)
}

type Scheduler struct {
	refresher       BatchRefresher
	refreshInterval time.Duration
	// -----
	sched gocron.Scheduler
}

// Start schedules periodic refreshes. A non-positive interval leaves the scheduler disabled.
func (s *Scheduler) Start(ctx context.Context) error {
	if s.refreshInterval <= 0 {
		logrus.Info("Periodic refresh disabled")
		return nil
	}

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}
	s.sched = scheduler

	job := func(jobCtx context.Context) {
		if _, refreshErr := s.refresher.Refresh(jobCtx); refreshErr != nil {
			logrus.WithError(refreshErr).Error("Periodic refresh failed")
		}
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(s.refreshInterval),
		gocron.NewTask(job),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return err
	}

	scheduler.Start()

	go func() {
		<-ctx.Done()
		if sdErr := s.Shutdown(); sdErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", sdErr)
		}
	}()
	return nil
}

func (s *Scheduler) Shutdown() error {
	if s.sched == nil {
		return nil
	}
	err := s.sched.Shutdown()
	s.sched = nil
	return err
}

func NewScheduler(refresher BatchRefresher, refreshInterval time.Duration) *Scheduler {
	return &Scheduler{refresher: refresher, refreshInterval: refreshInterval}
}
