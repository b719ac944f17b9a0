package jobs

import (
	"github.com/sametkarakasoglu-wq/filoooo-web/internal/config"
	"github.com/sametkarakasoglu-wq/filoooo-web/internal/logger"
	"github.com/sametkarakasoglu-wq/filoooo-web/internal/repository/memory"
	"github.com/sametkarakasoglu-wq/filoooo-web/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	store    *memory.Store
	services *Services
	config   *config.Config
}

// Services holds all service dependencies needed by jobs
type Services struct {
	Dashboard service.DashboardService
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(store *memory.Store, services *Services, cfg *config.Config) *JobRunner {
	return &JobRunner{
		store:    store,
		services: services,
		config:   cfg,
	}
}

// Config exposes the runner's configuration to the scheduler.
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
