package jobs

import (
	"fmt"
	"log/slog"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/domain/services"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	outboxRelayJob      *OutboxRelayJob
	delayedShipmentsJob *DelayedShipmentsJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	relayHandler OutboxRelayer,
	relayCommand commands.RelayOutboxCommand,
	lister ShipmentLister,
	statistics services.ShipmentStatistics,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		outboxRelayJob:      NewOutboxRelayJob(relayHandler, relayCommand, logger),
		delayedShipmentsJob: NewDelayedShipmentsJob(lister, statistics, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.outboxRelayJob.Start(); err != nil {
		return fmt.Errorf("failed to start outbox relay job: %w", err)
	}

	if err := jm.delayedShipmentsJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.outboxRelayJob.Stop()
		return fmt.Errorf("failed to start delayed shipments job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.delayedShipmentsJob.Stop()
	jm.outboxRelayJob.Stop()
}
