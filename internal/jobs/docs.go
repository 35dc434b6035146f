// Package jobs provides scheduled background tasks for the courier service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OutboxRelayJob - Runs every second to publish pending outbox messages
// 2. DelayedShipmentsJob - Runs every minute to count and log delayed shipments
//
// # Usage
//
// Jobs are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(relayHandler, relayCommand, listHandler, statistics, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged and counted; the next tick retries. The relay
// publishes before it marks messages, so a failed run may publish a batch
// again (at-least-once delivery).
package jobs
