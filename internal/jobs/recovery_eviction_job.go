package jobs

import (
	"context"
	"log/slog"

	"servicebooking/internal/pkg/recovery"

	"github.com/robfig/cron/v3"
)

// RecoveryEvictionJob sweeps expired account recovery codes out of the store.
// Runs every minute; codes also expire lazily on verification, so the sweep
// only bounds memory.
type RecoveryEvictionJob struct {
	store  *recovery.Store
	cron   *cron.Cron
	logger *slog.Logger
}

// NewRecoveryEvictionJob creates the eviction job for the given store.
func NewRecoveryEvictionJob(store *recovery.Store, logger *slog.Logger) *RecoveryEvictionJob {
	return &RecoveryEvictionJob{
		store:  store,
		cron:   cron.New(),
		logger: logger.With("component", "recovery_eviction_job"),
	}
}

// Start begins the eviction sweep on a one-minute schedule.
func (j *RecoveryEvictionJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		if evicted := j.store.Evict(); evicted > 0 {
			j.logger.InfoContext(context.Background(), "Expired recovery codes evicted", "count", evicted)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Recovery eviction job started (running every minute)")
	return nil
}

// Stop stops the eviction job.
func (j *RecoveryEvictionJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Recovery eviction job stopped")
}
