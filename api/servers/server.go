package servers

import (
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"

	"courier/api"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// List shipments; non-admin callers see only their own
	// (GET /api/v1/shipments)
	ListShipments(ctx echo.Context, params ListShipmentsParams) error
	// Create a shipment
	// (POST /api/v1/shipments)
	CreateShipment(ctx echo.Context) error
	// Quote the delivery fee without creating a shipment
	// (POST /api/v1/shipments/calculate-fee)
	CalculateFee(ctx echo.Context) error
	// Dashboard statistics over the matching shipments (admin)
	// (GET /api/v1/shipments/stats)
	GetShipmentStats(ctx echo.Context, params GetShipmentStatsParams) error
	// Change status and payment flag (admin)
	// (PATCH /api/v1/shipments/{id})
	UpdateShipment(ctx echo.Context, id ShipmentID) error
	// Shipment with its tracking history, newest first
	// (GET /api/v1/shipments/{id}/history)
	GetShipmentHistory(ctx echo.Context, id ShipmentID) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// ListShipments converts echo context to params.
func (w *ServerInterfaceWrapper) ListShipments(ctx echo.Context) error {
	var err error

	ctx.Set(BearerAuthScopes, []string{})

	// Parameter object where we will unmarshal all parameters from the context
	var params ListShipmentsParams
	// ------------- Optional query parameter "search" -------------

	err = runtime.BindQueryParameter("form", true, false, "search", ctx.QueryParams(), &params.Search)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter search: %s", err))
	}

	// ------------- Optional query parameter "status" -------------

	err = runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListShipments(ctx, params)
	return err
}

// CreateShipment converts echo context to params.
func (w *ServerInterfaceWrapper) CreateShipment(ctx echo.Context) error {
	var err error

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateShipment(ctx)
	return err
}

// CalculateFee converts echo context to params.
func (w *ServerInterfaceWrapper) CalculateFee(ctx echo.Context) error {
	var err error

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CalculateFee(ctx)
	return err
}

// GetShipmentStats converts echo context to params.
func (w *ServerInterfaceWrapper) GetShipmentStats(ctx echo.Context) error {
	var err error

	ctx.Set(BearerAuthScopes, []string{})

	// Parameter object where we will unmarshal all parameters from the context
	var params GetShipmentStatsParams
	// ------------- Optional query parameter "search" -------------

	err = runtime.BindQueryParameter("form", true, false, "search", ctx.QueryParams(), &params.Search)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter search: %s", err))
	}

	// ------------- Optional query parameter "status" -------------

	err = runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetShipmentStats(ctx, params)
	return err
}

// UpdateShipment converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateShipment(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id ShipmentID

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.UpdateShipment(ctx, id)
	return err
}

// GetShipmentHistory converts echo context to params.
func (w *ServerInterfaceWrapper) GetShipmentHistory(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id ShipmentID

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetShipmentHistory(ctx, id)
	return err
}

// EchoRouter is a simple interface which specifies echo.Route addition functions which
// are present on both echo.Echo and echo.Group, since we want to allow using
// either of them for path registration
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// Registers handlers, and prepends BaseURL to the paths, so that the paths
// can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {

	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/api/v1/shipments", wrapper.ListShipments)
	router.POST(baseURL+"/api/v1/shipments", wrapper.CreateShipment)
	router.POST(baseURL+"/api/v1/shipments/calculate-fee", wrapper.CalculateFee)
	router.GET(baseURL+"/api/v1/shipments/stats", wrapper.GetShipmentStats)
	router.PATCH(baseURL+"/api/v1/shipments/:id", wrapper.UpdateShipment)
	router.GET(baseURL+"/api/v1/shipments/:id/history", wrapper.GetShipmentHistory)

}

// GetSwagger returns the parsed api/openapi.yaml document.
func GetSwagger() (swagger *openapi3.T, err error) {
	loader := openapi3.NewLoader()
	swagger, err = loader.LoadFromData(api.Spec)
	if err != nil {
		return nil, fmt.Errorf("error loading Swagger: %w", err)
	}
	return swagger, nil
}
