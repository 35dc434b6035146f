package memory_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/shipment"
)

var createdAt = time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)

func newShipment(t *testing.T, id shipment.ID, clientID int64, recipient string) *shipment.Shipment {
	t.Helper()

	sender, err := kernel.NewContact("Sam Sender", "+15550100", "", "1 Main St", "Springfield", "12345")
	require.NoError(t, err)
	to, err := kernel.NewContact(recipient, "+15550101", "", "2 Oak Ave", "Shelbyville", "54321")
	require.NoError(t, err)
	w, err := kernel.NewWeight(decimal.RequireFromString("2.5"))
	require.NoError(t, err)
	d, err := kernel.ParseDimensions("30x20x15")
	require.NoError(t, err)
	p, err := shipment.NewParcel("Books", w, d)
	require.NoError(t, err)

	s, err := shipment.NewShipment(id, clientID, sender, to, p, "", decimal.RequireFromString("11.25"), createdAt)
	require.NoError(t, err)
	return s
}
