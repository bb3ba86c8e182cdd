// Package jobs runs the periodic background work of the API with cron:
// TMDB catalog sync, leaderboard snapshots and rate limiter housekeeping.
package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// MovieSyncer imports the TMDB genre list and movie categories.
type MovieSyncer interface {
	SyncGenres(ctx context.Context) (int, error)
	Populate(ctx context.Context) (int, error)
}

// LeaderboardSnapshotter stores the current rankings.
type LeaderboardSnapshotter interface {
	SnapshotLeaderboards(ctx context.Context) (int, error)
}

// Sweeper drops idle state and reports how much was removed.
type Sweeper interface {
	Sweep() int
}

// Config holds cron expressions. An empty expression disables the job.
type Config struct {
	MovieSyncCron   string
	LeaderboardCron string
	SweepCron       string
	Location        *time.Location
}

// Scheduler owns the cron runner and the job dependencies.
type Scheduler struct {
	cron        *cron.Cron
	cfg         Config
	movies      MovieSyncer
	leaderboard LeaderboardSnapshotter
	sweeper     Sweeper
	log         logrus.FieldLogger
}

// NewScheduler creates a scheduler. Runs of the same job never overlap and panics are recovered.
func NewScheduler(cfg Config, movies MovieSyncer, leaderboard LeaderboardSnapshotter, sweeper Sweeper, log logrus.FieldLogger) *Scheduler {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	log = log.WithField("component", "jobs")
	cl := cron.PrintfLogger(log)
	return &Scheduler{
		cron: cron.New(
			cron.WithLocation(cfg.Location),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		cfg:         cfg,
		movies:      movies,
		leaderboard: leaderboard,
		sweeper:     sweeper,
		log:         log,
	}
}

// Start registers the configured jobs and starts the runner. Jobs stop receiving
// new runs once ctx is cancelled or Stop is called.
func (s *Scheduler) Start(ctx context.Context) error {
	jobs := []struct {
		name string
		spec string
		run  func(context.Context)
	}{
		{"movie_sync", s.cfg.MovieSyncCron, s.SyncMovies},
		{"leaderboard_snapshot", s.cfg.LeaderboardCron, s.SnapshotLeaderboards},
		{"rate_limit_sweep", s.cfg.SweepCron, s.sweep},
	}

	for _, j := range jobs {
		if j.spec == "" {
			s.log.WithField("job", j.name).Info("job disabled")
			continue
		}
		run := j.run
		if _, err := s.cron.AddFunc(j.spec, func() { run(ctx) }); err != nil {
			return fmt.Errorf("schedule %s %q: %w", j.name, j.spec, err)
		}
		s.log.WithFields(logrus.Fields{"job": j.name, "spec": j.spec}).Info("job scheduled")
	}

	s.cron.Start()
	s.log.WithField("timezone", s.cfg.Location.String()).Info("scheduler started")
	return nil
}

// Stop stops the runner and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.log.Info("scheduler stopped")
}

// SyncMovies refreshes genres and imports the TMDB category lists.
func (s *Scheduler) SyncMovies(ctx context.Context) {
	start := time.Now()
	entry := s.log.WithField("job", "movie_sync")

	genres, err := s.movies.SyncGenres(ctx)
	if err != nil {
		entry.WithError(err).WithField("status", "failed").Error("genre sync failed")
		return
	}
	inserted, err := s.movies.Populate(ctx)
	if err != nil {
		entry.WithError(err).WithField("status", "failed").Error("movie populate failed")
		return
	}
	entry.WithFields(logrus.Fields{
		"status":      "done",
		"genres":      genres,
		"inserted":    inserted,
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("movie sync finished")
}

// SnapshotLeaderboards stores the current rankings.
func (s *Scheduler) SnapshotLeaderboards(ctx context.Context) {
	start := time.Now()
	entry := s.log.WithField("job", "leaderboard_snapshot")

	n, err := s.leaderboard.SnapshotLeaderboards(ctx)
	if err != nil {
		entry.WithError(err).WithField("status", "failed").Error("leaderboard snapshot failed")
		return
	}
	entry.WithFields(logrus.Fields{
		"status":      "done",
		"rows":        n,
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("leaderboard snapshot stored")
}

func (s *Scheduler) sweep(context.Context) {
	if s.sweeper == nil {
		return
	}
	if n := s.sweeper.Sweep(); n > 0 {
		s.log.WithFields(logrus.Fields{"job": "rate_limit_sweep", "removed": n}).Debug("idle rate limiters removed")
	}
}
