package cronjob

import (
	"context"
	"log"
	"time"

	"github.com/GoSim-25-26J-441/project-verification/internal/verification/domain"
	"github.com/robfig/cron/v3"
)

// StatsSource is satisfied by the verification service.
type StatsSource interface {
	Stats(ctx context.Context) (domain.Stats, error)
}

// Scheduler periodically logs a snapshot of registry counts.
type Scheduler struct {
	cron   *cron.Cron
	source StatsSource
}

func NewScheduler(source StatsSource) *Scheduler {
	return &Scheduler{
		cron:   cron.New(cron.WithSeconds()),
		source: source,
	}
}

// Start registers the snapshot job on the given six-field cron spec and starts the scheduler.
func (s *Scheduler) Start(spec string) error {
	if _, err := s.cron.AddFunc(spec, func() { s.Snapshot(context.Background()) }); err != nil {
		return err
	}

	log.Printf("Cron scheduler started (registry snapshot %q)", spec)
	s.cron.Start()
	return nil
}

// Stop waits for a running snapshot to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

// Snapshot logs the current per-status counts once.
func (s *Scheduler) Snapshot(ctx context.Context) (domain.Stats, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	stats, err := s.source.Stats(ctx)
	if err != nil {
		log.Printf("[error] operation=snapshot error=%v", err)
		return stats, err
	}

	log.Printf("[info] operation=snapshot total=%d pending=%d approved=%d rejected=%d",
		stats.Total, stats.Pending, stats.Approved, stats.Rejected)
	return stats, nil
}
