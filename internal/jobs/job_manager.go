package jobs

import (
	"fmt"
	"log/slog"

	"servicebooking/internal/pkg/recovery"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	recoveryEvictionJob *RecoveryEvictionJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(recoveryStore *recovery.Store, logger *slog.Logger) *JobManager {
	return &JobManager{
		recoveryEvictionJob: NewRecoveryEvictionJob(recoveryStore, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.recoveryEvictionJob.Start(); err != nil {
		return fmt.Errorf("failed to start recovery eviction job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.recoveryEvictionJob.Stop()
}
