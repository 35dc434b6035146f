package postgres

import (
	"fmt"

	"gorm.io/gorm"

	"courier/internal/adapters/out/postgres/outboxrepo"
	"courier/internal/adapters/out/postgres/shipmentrepo"
)

// Migrate creates or updates the shipments, tracking_history and
// outbox_messages tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&shipmentrepo.ShipmentDTO{},
		&shipmentrepo.TrackingHistoryDTO{},
		&outboxrepo.MessageDTO{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
