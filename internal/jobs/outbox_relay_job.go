package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/metrics"
)

const OutboxRelaySchedule = "* * * * * *"

// OutboxRelayer relays one batch of outbox messages.
type OutboxRelayer interface {
	Handle(ctx context.Context, cmd commands.RelayOutboxCommand) (int, error)
}

// OutboxRelayJob publishes pending outbox messages every second.
type OutboxRelayJob struct {
	handler OutboxRelayer
	cmd     commands.RelayOutboxCommand
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOutboxRelayJob creates the relay job. Each run publishes at most one
// batch of cmd.BatchSize() messages.
func NewOutboxRelayJob(handler OutboxRelayer, cmd commands.RelayOutboxCommand, logger *slog.Logger) *OutboxRelayJob {
	return &OutboxRelayJob{
		handler: handler,
		cmd:     cmd,
		cron:    cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:  logger.With("component", "outbox_relay_job"),
	}
}

// Start schedules the job.
func (j *OutboxRelayJob) Start() error {
	if _, err := j.cron.AddFunc(OutboxRelaySchedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox relay job started", "schedule", OutboxRelaySchedule)
	return nil
}

// Run relays one batch.
func (j *OutboxRelayJob) Run(ctx context.Context) {
	relayed, err := j.handler.Handle(ctx, j.cmd)
	if err != nil {
		metrics.OutboxRelayErrorsTotal.Inc()
		j.logger.ErrorContext(ctx, "Outbox relay job failed", "error", err)
		return
	}

	if relayed > 0 {
		metrics.OutboxPublishedTotal.Add(float64(relayed))
		j.logger.DebugContext(ctx, "Outbox messages relayed", "count", relayed)
	}
}

// Stop stops the scheduler and waits for a running batch to finish.
func (j *OutboxRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Outbox relay job stopped")
}
