package shipment_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/shipment"
)

var createdAt = time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)

func contact(t *testing.T, name string) kernel.Contact {
	t.Helper()
	c, err := kernel.NewContact(name, "+15550100", "", "1 Main St", "Springfield", "12345")
	require.NoError(t, err)
	return c
}

func parcel(t *testing.T) shipment.Parcel {
	t.Helper()
	w, err := kernel.NewWeight(decimal.RequireFromString("2.5"))
	require.NoError(t, err)
	d, err := kernel.ParseDimensions("30x20x15")
	require.NoError(t, err)
	p, err := shipment.NewParcel("Books", w, d)
	require.NoError(t, err)
	return p
}

func newShipment(t *testing.T, id shipment.ID, recipient string) *shipment.Shipment {
	t.Helper()
	s, err := shipment.NewShipment(
		id, 7,
		contact(t, "Sam Sender"), contact(t, recipient),
		parcel(t), "Leave at the door",
		decimal.RequireFromString("11.25"),
		createdAt,
	)
	require.NoError(t, err)
	return s
}
