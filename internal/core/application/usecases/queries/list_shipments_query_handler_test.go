package queries_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courier/internal/core/application/usecases/queries"
	"courier/internal/core/domain/model/shipment"
	"courier/internal/pkg/errs"
)

func TestListShipmentsQueryHandler_Handle(t *testing.T) {
	t.Run("should pass filter to the registry", func(t *testing.T) {
		ctx := t.Context()
		delivered := shipment.Delivered
		filter := shipment.Filter{Search: "rita", Status: &delivered}
		list := []*shipment.Shipment{newShipment(t, 2, 7, "10"), newShipment(t, 1, 7, "10")}

		reader := new(MockShipmentReader)
		reader.On("List", ctx, filter).Return(list, nil).Once()
		query, err := queries.NewListShipmentsQuery(filter)
		require.NoError(t, err)

		got, err := queries.NewListShipmentsQueryHandler(reader).Handle(ctx, query)

		require.NoError(t, err)
		assert.Equal(t, list, got)
		reader.AssertExpectations(t)
	})

	t.Run("should return empty slice when nothing matches", func(t *testing.T) {
		ctx := t.Context()
		reader := new(MockShipmentReader)
		reader.On("List", ctx, shipment.Filter{}).Return(nil, nil).Once()
		query, err := queries.NewListShipmentsQuery(shipment.Filter{})
		require.NoError(t, err)

		got, err := queries.NewListShipmentsQueryHandler(reader).Handle(ctx, query)

		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("should reject unknown status filter", func(t *testing.T) {
		unknown := shipment.Unknown

		_, err := queries.NewListShipmentsQuery(shipment.Filter{Status: &unknown})

		assert.ErrorIs(t, err, errs.ErrStatusIsInvalid)
	})
}
