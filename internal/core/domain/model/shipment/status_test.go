package shipment_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courier/internal/core/domain/model/shipment"
	"courier/internal/pkg/errs"
)

func TestParseStatus(t *testing.T) {
	for _, status := range shipment.Statuses() {
		t.Run(status.String(), func(t *testing.T) {
			parsed, err := shipment.ParseStatus(status.String())

			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		})
	}

	t.Run("should reject unknown names", func(t *testing.T) {
		for _, name := range []string{"", "UNKNOWN", "delivered", "LOST", " DELIVERED"} {
			_, err := shipment.ParseStatus(name)

			assert.ErrorIs(t, err, errs.ErrStatusIsInvalid, name)
		}
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should reject zero value", func(t *testing.T) {
		assert.ErrorIs(t, shipment.Unknown.Validate(), errs.ErrStatusIsInvalid)
	})

	t.Run("should reject out of range value", func(t *testing.T) {
		assert.ErrorIs(t, shipment.Status(99).Validate(), errs.ErrStatusIsInvalid)
		assert.Equal(t, "UNKNOWN", shipment.Status(99).String())
	})
}

func TestStatus_Classification(t *testing.T) {
	tests := []struct {
		status       shipment.Status
		terminal     bool
		inTransit    bool
		canBeDelayed bool
	}{
		{shipment.PendingPickup, false, false, true},
		{shipment.PickedUp, false, true, true},
		{shipment.InTransit, false, true, true},
		{shipment.OutForDelivery, false, true, false},
		{shipment.Delivered, true, false, false},
		{shipment.Cancelled, true, false, false},
		{shipment.Returned, true, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			assert.Equal(t, tt.terminal, tt.status.IsTerminal())
			assert.Equal(t, tt.inTransit, tt.status.IsInTransit())
			assert.Equal(t, tt.canBeDelayed, tt.status.CanBeDelayed())
		})
	}
}

func TestStatus_ValidateTransition(t *testing.T) {
	t.Run("should allow any move from a non-terminal status", func(t *testing.T) {
		for _, from := range shipment.Statuses() {
			if from.IsTerminal() {
				continue
			}
			for _, to := range shipment.Statuses() {
				assert.NoError(t, from.ValidateTransition(to), "%s -> %s", from, to)
			}
		}
	})

	t.Run("should lock terminal statuses", func(t *testing.T) {
		for _, from := range []shipment.Status{shipment.Delivered, shipment.Cancelled, shipment.Returned} {
			for _, to := range shipment.Statuses() {
				err := from.ValidateTransition(to)
				if to == from {
					assert.NoError(t, err)
					continue
				}
				assert.ErrorIs(t, err, errs.ErrStatusIsInvalid, "%s -> %s", from, to)
			}
		}
	})

	t.Run("should reject unknown target", func(t *testing.T) {
		assert.ErrorIs(t, shipment.PendingPickup.ValidateTransition(shipment.Unknown), errs.ErrStatusIsInvalid)
	})
}

func TestStatus_Text(t *testing.T) {
	t.Run("should encode as wire name in JSON", func(t *testing.T) {
		data, err := json.Marshal(map[string]shipment.Status{"status": shipment.OutForDelivery})

		require.NoError(t, err)
		assert.JSONEq(t, `{"status":"OUT_FOR_DELIVERY"}`, string(data))
	})

	t.Run("should decode wire name", func(t *testing.T) {
		var got struct {
			Status shipment.Status `json:"status"`
		}

		require.NoError(t, json.Unmarshal([]byte(`{"status":"RETURNED"}`), &got))
		assert.Equal(t, shipment.Returned, got.Status)
	})

	t.Run("should fail to decode unknown name", func(t *testing.T) {
		var got struct {
			Status shipment.Status `json:"status"`
		}

		err := json.Unmarshal([]byte(`{"status":"LOST"}`), &got)

		assert.ErrorIs(t, err, errs.ErrStatusIsInvalid)
	})
}
