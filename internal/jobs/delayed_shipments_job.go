package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"courier/internal/core/application/usecases/queries"
	"courier/internal/core/domain/model/shipment"
	"courier/internal/core/domain/services"
	"courier/internal/metrics"
)

const DelayedShipmentsSchedule = "0 * * * * *"

// ShipmentLister lists shipments matching a query.
type ShipmentLister interface {
	Handle(ctx context.Context, query queries.ListShipmentsQuery) ([]*shipment.Shipment, error)
}

// DelayedShipmentsJob scans the registry every minute, publishes the number
// of delayed shipments as a gauge and logs each one.
type DelayedShipmentsJob struct {
	lister     ShipmentLister
	statistics services.ShipmentStatistics
	cron       *cron.Cron
	logger     *slog.Logger
}

func NewDelayedShipmentsJob(
	lister ShipmentLister,
	statistics services.ShipmentStatistics,
	logger *slog.Logger,
) *DelayedShipmentsJob {
	return &DelayedShipmentsJob{
		lister:     lister,
		statistics: statistics,
		cron:       cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:     logger.With("component", "delayed_shipments_job"),
	}
}

func (j *DelayedShipmentsJob) Start() error {
	if _, err := j.cron.AddFunc(DelayedShipmentsSchedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delayed shipments job started", "schedule", DelayedShipmentsSchedule)
	return nil
}

// Run performs one scan and returns the delayed shipments it found.
func (j *DelayedShipmentsJob) Run(ctx context.Context) []*shipment.Shipment {
	query, err := queries.NewListShipmentsQuery(shipment.Filter{})
	if err != nil {
		j.logger.ErrorContext(ctx, "Delayed shipments job failed", "error", err)
		return nil
	}

	all, err := j.lister.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Delayed shipments job failed", "error", err)
		return nil
	}

	delayed := j.statistics.Delayed(all)
	metrics.DelayedShipments.Set(float64(len(delayed)))

	for _, s := range delayed {
		j.logger.WarnContext(ctx, "Shipment is delayed",
			"shipment_id", s.ID().String(),
			"status", s.Status().String(),
			"created_at", s.CreatedAt(),
			"updated_at", s.UpdatedAt(),
		)
	}
	return delayed
}

func (j *DelayedShipmentsJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Delayed shipments job stopped")
}
