package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/domain/model/shipment"
	"courier/internal/pkg/errs"
)

func TestNewUpdateShipmentStatusCommand(t *testing.T) {
	t.Run("should keep input", func(t *testing.T) {
		cmd, err := commands.NewUpdateShipmentStatusCommand(5, shipment.Delivered, true)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, shipment.ID(5), cmd.ShipmentID())
		assert.Equal(t, shipment.Delivered, cmd.Status())
		assert.True(t, cmd.Paid())
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		_, err := commands.NewUpdateShipmentStatusCommand(5, shipment.Unknown, false)

		assert.ErrorIs(t, err, errs.ErrStatusIsInvalid)
	})

	t.Run("should reject invalid id", func(t *testing.T) {
		_, err := commands.NewUpdateShipmentStatusCommand(0, shipment.Delivered, false)

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail validation for zero value", func(t *testing.T) {
		var cmd commands.UpdateShipmentStatusCommand

		assert.ErrorIs(t, cmd.Validate(), commands.ErrUpdateShipmentStatusCommandIsNotConstructed)
	})
}
