package queries_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courier/internal/core/application/usecases/queries"
	"courier/internal/core/domain/model/shipment"
	"courier/internal/pkg/errs"
)

func TestGetShipmentHistoryQueryHandler_Handle(t *testing.T) {
	t.Run("should return history newest first", func(t *testing.T) {
		ctx := t.Context()
		s := newShipment(t, 4, 7, "10")
		require.NoError(t, s.ApplyStatus(shipment.PickedUp, false, created.Add(time.Hour)))
		require.NoError(t, s.ApplyStatus(shipment.InTransit, false, created.Add(2*time.Hour)))

		reader := new(MockShipmentReader)
		reader.On("Get", ctx, shipment.ID(4)).Return(s, nil).Once()
		query, err := queries.NewGetShipmentHistoryQuery(4, nil)
		require.NoError(t, err)

		resp, err := queries.NewGetShipmentHistoryQueryHandler(reader).Handle(ctx, query)

		require.NoError(t, err)
		assert.Same(t, s, resp.Shipment)
		require.Len(t, resp.History, 3)
		assert.Equal(t, shipment.InTransit, resp.History[0].Status())
		assert.Equal(t, shipment.PendingPickup, resp.History[2].Status())
		reader.AssertExpectations(t)
	})

	t.Run("should propagate not found", func(t *testing.T) {
		ctx := t.Context()
		reader := new(MockShipmentReader)
		reader.On("Get", ctx, shipment.ID(9)).Return(nil, errs.NewObjectNotFoundError("shipment", shipment.ID(9))).Once()
		query, err := queries.NewGetShipmentHistoryQuery(9, nil)
		require.NoError(t, err)

		_, err = queries.NewGetShipmentHistoryQueryHandler(reader).Handle(ctx, query)

		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should hide shipments of other clients", func(t *testing.T) {
		ctx := t.Context()
		reader := new(MockShipmentReader)
		reader.On("Get", ctx, shipment.ID(4)).Return(newShipment(t, 4, 7, "10"), nil).Once()
		other := int64(8)
		query, err := queries.NewGetShipmentHistoryQuery(4, &other)
		require.NoError(t, err)

		_, err = queries.NewGetShipmentHistoryQueryHandler(reader).Handle(ctx, query)

		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should reject invalid id", func(t *testing.T) {
		_, err := queries.NewGetShipmentHistoryQuery(0, nil)

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
