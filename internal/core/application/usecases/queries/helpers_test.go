package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/shipment"
)

type MockShipmentReader struct{ mock.Mock }

func (m *MockShipmentReader) Get(ctx context.Context, id shipment.ID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentReader) List(ctx context.Context, f shipment.Filter) ([]*shipment.Shipment, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*shipment.Shipment), args.Error(1)
}

var created = time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC)

func newShipment(t *testing.T, id shipment.ID, clientID int64, charge string) *shipment.Shipment {
	t.Helper()
	c, err := kernel.NewContact("Rita", "+15550100", "", "1 Main St", "Springfield", "12345")
	require.NoError(t, err)
	w, err := kernel.NewWeight(decimal.NewFromInt(1))
	require.NoError(t, err)
	d, err := kernel.NewDimensions(10, 10, 10)
	require.NoError(t, err)
	p, err := shipment.NewParcel("Box", w, d)
	require.NoError(t, err)
	s, err := shipment.NewShipment(id, clientID, c, c, p, "", decimal.RequireFromString(charge), created)
	require.NoError(t, err)
	return s
}
