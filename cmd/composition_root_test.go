package cmd_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courier/cmd"
	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/application/usecases/queries"
	"courier/internal/core/domain/model/shipment"
	"courier/internal/core/domain/services"
)

func memoryConfig() cmd.Config {
	return cmd.Config{
		HTTPPort:        "8080",
		Storage:         cmd.StorageMemory,
		JWTSecret:       "secret",
		FeeSchedule:     services.DefaultFeeSchedule(),
		DelayThreshold:  services.DefaultDelayThreshold,
		OutboxBatchSize: 10,
	}
}

func TestCompositionRoot(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("should wire in-memory storage end to end", func(t *testing.T) {
		root, err := cmd.NewCompositionRoot(memoryConfig(), nil, logger)
		require.NoError(t, err)
		t.Cleanup(func() { _ = root.Close() })

		createCommand, err := commands.NewCreateShipmentCommand(
			3,
			commands.ContactDetails{Name: "Sam", Phone: "1", Address: "a", City: "c", PostalCode: "p"},
			commands.ContactDetails{Name: "Rita", Phone: "2", Address: "b", City: "d", PostalCode: "q"},
			"Books", decimal.RequireFromString("1"), "10x10x10", "",
		)
		require.NoError(t, err)
		create := root.CreateCreateShipmentCommandHandler()
		created, err := create.Handle(t.Context(), createCommand)
		require.NoError(t, err)

		query, err := queries.NewListShipmentsQuery(shipment.Filter{})
		require.NoError(t, err)
		list, err := root.CreateListShipmentsQueryHandler().Handle(t.Context(), query)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, created.ID(), list[0].ID())

		relayCommand, err := commands.NewRelayOutboxCommand(10)
		require.NoError(t, err)
		relayed, err := root.CreateRelayOutboxCommandHandler().Handle(t.Context(), relayCommand)
		require.NoError(t, err)
		assert.Equal(t, 1, relayed)
	})

	t.Run("should serve health through the router", func(t *testing.T) {
		root, err := cmd.NewCompositionRoot(memoryConfig(), nil, logger)
		require.NoError(t, err)

		router, err := root.CreateRouter()
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("should build and stop the job manager", func(t *testing.T) {
		root, err := cmd.NewCompositionRoot(memoryConfig(), nil, logger)
		require.NoError(t, err)

		manager, err := root.CreateJobManager()
		require.NoError(t, err)
		require.NoError(t, manager.StartAll())

		done := make(chan struct{})
		go func() {
			manager.StopAll()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatal("jobs did not stop")
		}
	})

	t.Run("should require a database for postgres storage", func(t *testing.T) {
		config := memoryConfig()
		config.Storage = cmd.StoragePostgres

		_, err := cmd.NewCompositionRoot(config, nil, logger)
		require.Error(t, err)
	})

	t.Run("should reject an invalid fee schedule", func(t *testing.T) {
		config := memoryConfig()
		config.FeeSchedule.VolumetricDivisor = 0

		_, err := cmd.NewCompositionRoot(config, nil, logger)
		require.Error(t, err)
	})
}
