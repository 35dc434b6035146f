// Package servers holds the request and response types, parameter binding and
// route registration for the HTTP API described in api/openapi.yaml.
//
// The package is maintained by hand in the layout oapi-codegen produces for
// echo servers. Route registration is checked against the document by
// TestRegisterHandlers_MatchesDocument, so adding an operation to
// openapi.yaml without wiring it here fails the build's tests.
package servers

import (
	"time"
)

const (
	BearerAuthScopes = "bearerAuth.Scopes"
)

// Defines values for TrackingStatus.
const (
	CANCELLED      TrackingStatus = "CANCELLED"
	DELIVERED      TrackingStatus = "DELIVERED"
	INTRANSIT      TrackingStatus = "IN_TRANSIT"
	OUTFORDELIVERY TrackingStatus = "OUT_FOR_DELIVERY"
	PENDINGPICKUP  TrackingStatus = "PENDING_PICKUP"
	PICKEDUP       TrackingStatus = "PICKED_UP"
	RETURNED       TrackingStatus = "RETURNED"
)

// CalculateFeeRequest defines model for CalculateFeeRequest.
type CalculateFeeRequest struct {
	Dimensions string  `json:"dimensions" validate:"required"`
	Weight     float64 `json:"weight" validate:"gt=0"`
}

// CreateShipmentRequest defines model for CreateShipmentRequest.
type CreateShipmentRequest struct {
	Dimensions          string  `json:"dimensions" validate:"required"`
	PackageDescription  string  `json:"packageDescription" validate:"required"`
	RecipientAddress    string  `json:"recipientAddress" validate:"required"`
	RecipientCity       string  `json:"recipientCity" validate:"required"`
	RecipientEmail      *string `json:"recipientEmail,omitempty" validate:"omitempty,email"`
	RecipientName       string  `json:"recipientName" validate:"required"`
	RecipientPhone      string  `json:"recipientPhone" validate:"required"`
	RecipientPostalCode string  `json:"recipientPostalCode" validate:"required"`
	SenderAddress       string  `json:"senderAddress" validate:"required"`
	SenderCity          string  `json:"senderCity" validate:"required"`
	SenderName          string  `json:"senderName" validate:"required"`
	SenderPhone         string  `json:"senderPhone" validate:"required"`
	SenderPostalCode    string  `json:"senderPostalCode" validate:"required"`
	SpecialInstructions *string `json:"specialInstructions,omitempty" validate:"omitempty,max=500"`
	Weight              float64 `json:"weight" validate:"gt=0"`
}

// ErrorEnvelope defines model for ErrorEnvelope.
type ErrorEnvelope struct {
	Body    interface{} `json:"body"`
	Message string      `json:"message"`
}

// Fee defines model for Fee.
type Fee struct {
	DeliveryFee float64 `json:"deliveryFee"`
}

// FeeEnvelope defines model for FeeEnvelope.
type FeeEnvelope struct {
	Body    Fee    `json:"body"`
	Message string `json:"message"`
}

// HistoryRecord defines model for HistoryRecord.
type HistoryRecord struct {
	CreatedAt  time.Time      `json:"createdAt"`
	Id         int64          `json:"id"`
	ShipmentId int64          `json:"shipmentId"`
	Status     TrackingStatus `json:"status"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}

// Shipment defines model for Shipment.
type Shipment struct {
	ClientId            int64          `json:"clientId"`
	CreatedAt           time.Time      `json:"createdAt"`
	CurrentStatus       TrackingStatus `json:"currentStatus"`
	DeliveryCharge      float64        `json:"deliveryCharge"`
	Dimensions          string         `json:"dimensions"`
	Id                  int64          `json:"id"`
	PackageDescription  string         `json:"packageDescription"`
	PaymentStatus       bool           `json:"paymentStatus"`
	RecipientAddress    string         `json:"recipientAddress"`
	RecipientCity       string         `json:"recipientCity"`
	RecipientEmail      string         `json:"recipientEmail"`
	RecipientName       string         `json:"recipientName"`
	RecipientPhone      string         `json:"recipientPhone"`
	RecipientPostalCode string         `json:"recipientPostalCode"`
	SenderAddress       string         `json:"senderAddress"`
	SenderCity          string         `json:"senderCity"`
	SenderName          string         `json:"senderName"`
	SenderPhone         string         `json:"senderPhone"`
	SenderPostalCode    string         `json:"senderPostalCode"`
	SpecialInstructions string         `json:"specialInstructions"`
	UpdatedAt           time.Time      `json:"updatedAt"`
	Weight              float64        `json:"weight"`
}

// ShipmentEnvelope defines model for ShipmentEnvelope.
type ShipmentEnvelope struct {
	Body    Shipment `json:"body"`
	Message string   `json:"message"`
}

// ShipmentHistory defines model for ShipmentHistory.
type ShipmentHistory struct {
	Shipment
	TrackingHistory []HistoryRecord `json:"trackingHistory"`
}

// ShipmentHistoryEnvelope defines model for ShipmentHistoryEnvelope.
type ShipmentHistoryEnvelope struct {
	Body    ShipmentHistory `json:"body"`
	Message string          `json:"message"`
}

// ShipmentListEnvelope defines model for ShipmentListEnvelope.
type ShipmentListEnvelope struct {
	Body    []Shipment `json:"body"`
	Message string     `json:"message"`
}

// Stats defines model for Stats.
type Stats struct {
	Delayed   int     `json:"delayed"`
	Delivered int     `json:"delivered"`
	InTransit int     `json:"inTransit"`
	Revenue   float64 `json:"revenue"`
	Total     int     `json:"total"`
}

// StatsEnvelope defines model for StatsEnvelope.
type StatsEnvelope struct {
	Body    Stats  `json:"body"`
	Message string `json:"message"`
}

// TrackingStatus defines model for TrackingStatus.
type TrackingStatus string

// UpdateShipmentRequest defines model for UpdateShipmentRequest.
type UpdateShipmentRequest struct {
	CurrentStatus string `json:"currentStatus" validate:"required"`
	PaymentStatus *bool  `json:"paymentStatus" validate:"required"`
}

// Search defines model for Search.
type Search = string

// ShipmentID defines model for ShipmentID.
type ShipmentID = int64

// Status defines model for Status.
type Status = string

// ListShipmentsParams defines parameters for ListShipments.
type ListShipmentsParams struct {
	Search *Search `form:"search,omitempty" json:"search,omitempty"`
	Status *Status `form:"status,omitempty" json:"status,omitempty"`
}

// GetShipmentStatsParams defines parameters for GetShipmentStats.
type GetShipmentStatsParams struct {
	Search *Search `form:"search,omitempty" json:"search,omitempty"`
	Status *Status `form:"status,omitempty" json:"status,omitempty"`
}

// CreateShipmentJSONRequestBody defines body for CreateShipment for application/json ContentType.
type CreateShipmentJSONRequestBody = CreateShipmentRequest

// CalculateFeeJSONRequestBody defines body for CalculateFee for application/json ContentType.
type CalculateFeeJSONRequestBody = CalculateFeeRequest

// UpdateShipmentJSONRequestBody defines body for UpdateShipment for application/json ContentType.
type UpdateShipmentJSONRequestBody = UpdateShipmentRequest
