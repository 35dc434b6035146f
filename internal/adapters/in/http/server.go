package http

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/application/usecases/queries"
	"courier/internal/core/domain/model/shipment"
	"courier/api/servers"
	"courier/internal/metrics"
	"courier/internal/pkg/errs"
)

var _ servers.ServerInterface = (*Server)(nil)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createShipmentHandler commands.CreateShipmentCommandHandler
	updateShipmentHandler commands.UpdateShipmentStatusCommandHandler

	// Query handlers
	calculateFeeHandler       queries.CalculateFeeQueryHandler
	getShipmentHistoryHandler queries.GetShipmentHistoryQueryHandler
	listShipmentsHandler      queries.ListShipmentsQueryHandler
	getShipmentStatsHandler   queries.GetShipmentStatsQueryHandler

	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createShipmentHandler commands.CreateShipmentCommandHandler,
	updateShipmentHandler commands.UpdateShipmentStatusCommandHandler,
	calculateFeeHandler queries.CalculateFeeQueryHandler,
	getShipmentHistoryHandler queries.GetShipmentHistoryQueryHandler,
	listShipmentsHandler queries.ListShipmentsQueryHandler,
	getShipmentStatsHandler queries.GetShipmentStatsQueryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		createShipmentHandler:     createShipmentHandler,
		updateShipmentHandler:     updateShipmentHandler,
		calculateFeeHandler:       calculateFeeHandler,
		getShipmentHistoryHandler: getShipmentHistoryHandler,
		listShipmentsHandler:      listShipmentsHandler,
		getShipmentStatsHandler:   getShipmentStatsHandler,
		logger:                    logger.With("component", "HTTPServer"),
	}
}

// CreateShipment handles POST /api/v1/shipments. The owner is the caller.
func (s *Server) CreateShipment(ctx echo.Context) error {
	const operation = "createShipment"

	actor, err := requireRole(ctx, RoleUser, RoleAdmin)
	if err != nil {
		return err
	}

	var req servers.CreateShipmentJSONRequestBody
	if err = s.bind(ctx, &req); err != nil {
		return s.fail(ctx, operation, err)
	}

	cmd, err := commands.NewCreateShipmentCommand(
		actor.ID,
		commands.ContactDetails{
			Name:       req.SenderName,
			Phone:      req.SenderPhone,
			Address:    req.SenderAddress,
			City:       req.SenderCity,
			PostalCode: req.SenderPostalCode,
		},
		commands.ContactDetails{
			Name:       req.RecipientName,
			Phone:      req.RecipientPhone,
			Email:      deref(req.RecipientEmail),
			Address:    req.RecipientAddress,
			City:       req.RecipientCity,
			PostalCode: req.RecipientPostalCode,
		},
		req.PackageDescription,
		decimal.NewFromFloat(req.Weight),
		req.Dimensions,
		deref(req.SpecialInstructions),
	)
	if err != nil {
		return s.fail(ctx, operation, err)
	}

	created, err := s.createShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, operation, err)
	}
	metrics.ShipmentsCreatedTotal.Inc()

	return ctx.JSON(http.StatusCreated, servers.ShipmentEnvelope{
		Body:    toShipment(created),
		Message: "Shipment created successfully",
	})
}

// ListShipments handles GET /api/v1/shipments. Non-admin callers only see
// their own shipments.
func (s *Server) ListShipments(ctx echo.Context, params servers.ListShipmentsParams) error {
	const operation = "listShipments"

	actor, err := requireRole(ctx, RoleUser, RoleAdmin)
	if err != nil {
		return err
	}

	filter, err := toFilter(params.Search, params.Status)
	if err != nil {
		return s.fail(ctx, operation, err)
	}
	if !actor.IsAdmin() {
		filter.ClientID = &actor.ID
	}

	query, err := queries.NewListShipmentsQuery(filter)
	if err != nil {
		return s.fail(ctx, operation, err)
	}

	found, err := s.listShipmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, operation, err)
	}

	response := make([]servers.Shipment, len(found))
	for i, item := range found {
		response[i] = toShipment(item)
	}

	return ctx.JSON(http.StatusOK, servers.ShipmentListEnvelope{
		Body:    response,
		Message: "Shipments retrieved successfully",
	})
}

// GetShipmentStats handles GET /api/v1/shipments/stats.
func (s *Server) GetShipmentStats(ctx echo.Context, params servers.GetShipmentStatsParams) error {
	const operation = "getShipmentStats"

	if _, err := requireRole(ctx, RoleAdmin); err != nil {
		return err
	}

	filter, err := toFilter(params.Search, params.Status)
	if err != nil {
		return s.fail(ctx, operation, err)
	}

	query, err := queries.NewGetShipmentStatsQuery(filter)
	if err != nil {
		return s.fail(ctx, operation, err)
	}

	stats, err := s.getShipmentStatsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, operation, err)
	}

	return ctx.JSON(http.StatusOK, servers.StatsEnvelope{
		Body: servers.Stats{
			Total:     stats.Total,
			Delivered: stats.Delivered,
			InTransit: stats.InTransit,
			Delayed:   stats.Delayed,
			Revenue:   stats.Revenue.InexactFloat64(),
		},
		Message: "Statistics retrieved successfully",
	})
}

// CalculateFee handles POST /api/v1/shipments/calculate-fee.
func (s *Server) CalculateFee(ctx echo.Context) error {
	const operation = "calculateFee"

	if _, err := requireRole(ctx, RoleUser, RoleAdmin); err != nil {
		return err
	}

	var req servers.CalculateFeeJSONRequestBody
	if err := s.bind(ctx, &req); err != nil {
		return s.fail(ctx, operation, err)
	}

	query, err := queries.NewCalculateFeeQuery(decimal.NewFromFloat(req.Weight), req.Dimensions)
	if err != nil {
		return s.fail(ctx, operation, err)
	}

	fee, err := s.calculateFeeHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, operation, err)
	}

	return ctx.JSON(http.StatusOK, servers.FeeEnvelope{
		Body:    servers.Fee{DeliveryFee: fee.InexactFloat64()},
		Message: "Fee calculated successfully",
	})
}

// GetShipmentHistory handles GET /api/v1/shipments/{id}/history. Another
// client's shipment is reported as not found.
func (s *Server) GetShipmentHistory(ctx echo.Context, id servers.ShipmentID) error {
	const operation = "getShipmentHistory"

	actor, err := requireRole(ctx, RoleUser, RoleAdmin)
	if err != nil {
		return err
	}

	var owner *int64
	if !actor.IsAdmin() {
		owner = &actor.ID
	}

	query, err := queries.NewGetShipmentHistoryQuery(shipment.ID(id), owner)
	if err != nil {
		return s.fail(ctx, operation, err)
	}

	response, err := s.getShipmentHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, operation, err)
	}

	return ctx.JSON(http.StatusOK, servers.ShipmentHistoryEnvelope{
		Body:    toShipmentHistory(response),
		Message: "Shipment history retrieved successfully",
	})
}

// UpdateShipment handles PATCH /api/v1/shipments/{id}.
func (s *Server) UpdateShipment(ctx echo.Context, id servers.ShipmentID) error {
	const operation = "updateShipment"

	if _, err := requireRole(ctx, RoleAdmin); err != nil {
		return err
	}

	var req servers.UpdateShipmentJSONRequestBody
	if err := s.bind(ctx, &req); err != nil {
		return s.fail(ctx, operation, err)
	}

	status, err := shipment.ParseStatus(req.CurrentStatus)
	if err != nil {
		return s.fail(ctx, operation, err)
	}

	cmd, err := commands.NewUpdateShipmentStatusCommand(shipment.ID(id), status, *req.PaymentStatus)
	if err != nil {
		return s.fail(ctx, operation, err)
	}

	updated, err := s.updateShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, operation, err)
	}
	metrics.StatusTransitionsTotal.WithLabelValues(updated.Status().String()).Inc()

	return ctx.JSON(http.StatusOK, servers.ShipmentEnvelope{
		Body:    toShipment(updated),
		Message: "Shipment updated successfully",
	})
}

func (s *Server) bind(ctx echo.Context, req any) error {
	if err := ctx.Bind(req); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("request body", err)
	}
	return ctx.Validate(req)
}

func toFilter(search *string, status *string) (shipment.Filter, error) {
	filter := shipment.Filter{Search: deref(search)}
	if raw := deref(status); raw != "" {
		parsed, err := shipment.ParseStatus(raw)
		if err != nil {
			return shipment.Filter{}, err
		}
		filter.Status = &parsed
	}
	return filter, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
