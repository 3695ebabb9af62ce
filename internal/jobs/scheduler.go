package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// StagingPurger removes staged uploads abandoned after a failed submit.
type StagingPurger interface {
	Purge(ctx context.Context, now time.Time) (int, error)
}

// ActivityPruner drops activity entries older than a cutoff.
type ActivityPruner interface {
	PruneBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type Scheduler struct {
	cron      *cron.Cron
	staging   StagingPurger
	activity  ActivityPruner
	retention time.Duration
	log       zerolog.Logger
}

// NewScheduler accepts nil collaborators; their jobs are then not scheduled.
func NewScheduler(staging StagingPurger, activity ActivityPruner, retention time.Duration, log zerolog.Logger) *Scheduler {
	c := cron.New(cron.WithSeconds())
	return &Scheduler{
		cron:      c,
		staging:   staging,
		activity:  activity,
		retention: retention,
		log:       log,
	}
}

func (s *Scheduler) Start() error {
	if s.staging != nil {
		if _, err := s.cron.AddFunc("0 */15 * * * *", s.purgeStaging); err != nil {
			return err
		}
	}
	if s.activity != nil && s.retention > 0 {
		if _, err := s.cron.AddFunc("0 30 3 * * *", s.pruneActivity); err != nil { // daily, off-peak
			return err
		}
	}

	s.cron.Start()
	return nil
}

// Stop waits for running jobs until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
		s.log.Warn().Msg("scheduler stop timed out")
	}
}

// Entries is the number of scheduled jobs.
func (s *Scheduler) Entries() int {
	return len(s.cron.Entries())
}

func (s *Scheduler) purgeStaging() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	removed, err := s.staging.Purge(ctx, time.Now())
	if err != nil {
		s.log.Error().Err(err).Int("removed", removed).Msg("purge staged uploads failed")
		return
	}
	if removed > 0 {
		s.log.Info().Int("removed", removed).Msg("purged staged uploads")
	}
}

func (s *Scheduler) pruneActivity() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	removed, err := s.activity.PruneBefore(ctx, time.Now().Add(-s.retention))
	if err != nil {
		s.log.Error().Err(err).Msg("prune activity failed")
		return
	}
	s.log.Info().Int64("removed", removed).Msg("pruned activity log")
}
