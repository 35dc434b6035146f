package eventlog_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courier/internal/adapters/out/eventlog"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/outbox"
	"courier/internal/core/domain/model/shipment"
)

func TestPublisher_Publish(t *testing.T) {
	t.Run("should log one line per message", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewJSONHandler(&buf, nil))

		c, err := kernel.NewContact("Sam", "+15550100", "", "1 Main St", "Springfield", "12345")
		require.NoError(t, err)
		w, err := kernel.NewWeight(decimal.RequireFromString("1"))
		require.NoError(t, err)
		d, err := kernel.ParseDimensions("10x10x10")
		require.NoError(t, err)
		p, err := shipment.NewParcel("Gloves", w, d)
		require.NoError(t, err)
		s, err := shipment.NewShipment(12, 7, c, c, p, "", decimal.RequireFromString("7.50"),
			time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC))
		require.NoError(t, err)
		m, err := outbox.NewShipmentCreated(s)
		require.NoError(t, err)

		require.NoError(t, eventlog.NewPublisher(logger).Publish(t.Context(), m))

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "event published", line["msg"])
		assert.Equal(t, "EventLogPublisher", line["component"])
		assert.Equal(t, "shipment.created", line["event_type"])
		assert.Equal(t, "000012", line["shipment_id"])
		assert.Equal(t, m.ID().String(), line["event_id"])
	})
}
