package jobs

import (
	"context"
	"time"

	"digishield-backend/internal/config"
	"digishield-backend/internal/logger"
	"digishield-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	media  service.MediaService
	config *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(media service.MediaService, cfg *config.Config) *JobRunner {
	return &JobRunner{media: media, config: cfg}
}

// Config exposes the runner's configuration to the scheduler
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// SyncMedia scans the public asset directory and registers new images.
func (jr *JobRunner) SyncMedia() {
	jr.runWithRecovery("SyncMedia", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		result, err := jr.media.Sync(ctx)
		if err != nil {
			logger.Error("Media sync failed", "error", err)
			return
		}
		logger.Info("Media sync result", "scanned", result.Scanned, "inserted", result.Inserted)
	})
}
