// Package shipmentrepo persists the Shipment aggregate with GORM: one row in
// shipments and one row per ledger record in tracking_history.
package shipmentrepo

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/shipment"
)

// ShipmentDTO is the shipments table row.
type ShipmentDTO struct {
	ID                  int64           `gorm:"primaryKey;autoIncrement"`
	ClientID            int64           `gorm:"not null;index"`
	Sender              ContactDTO      `gorm:"embedded;embeddedPrefix:sender_"`
	Recipient           ContactDTO      `gorm:"embedded;embeddedPrefix:recipient_"`
	PackageDescription  string          `gorm:"not null"`
	PackageWeight       decimal.Decimal `gorm:"type:numeric;not null"`
	PackageDimensions   string          `gorm:"type:varchar(64);not null"`
	SpecialInstructions string          `gorm:"type:varchar(500);not null;default:''"`
	CurrentStatus       string          `gorm:"type:varchar(32);not null;index"`
	DeliveryCharge      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PaymentStatus       bool            `gorm:"not null;default:false"`
	CreatedAt           time.Time       `gorm:"not null;autoCreateTime:false"`
	UpdatedAt           time.Time       `gorm:"not null;autoUpdateTime:false"`
	Version             int64           `gorm:"not null"`

	TrackingHistory []TrackingHistoryDTO `gorm:"foreignKey:ShipmentID;constraint:OnDelete:CASCADE"`
}

func (ShipmentDTO) TableName() string {
	return "shipments"
}

// ContactDTO is embedded twice in ShipmentDTO, as sender_* and recipient_*.
type ContactDTO struct {
	Name       string `gorm:"not null"`
	Phone      string `gorm:"not null"`
	Email      string `gorm:"not null;default:''"`
	Address    string `gorm:"not null"`
	City       string `gorm:"not null"`
	PostalCode string `gorm:"not null"`
}

// TrackingHistoryDTO is one immutable ledger row.
type TrackingHistoryDTO struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	ShipmentID int64     `gorm:"not null;index"`
	Status     string    `gorm:"type:varchar(32);not null"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime:false"`
}

func (TrackingHistoryDTO) TableName() string {
	return "tracking_history"
}

func fromDomain(s *shipment.Shipment) ShipmentDTO {
	return ShipmentDTO{
		ID:                  int64(s.ID()),
		ClientID:            s.ClientID(),
		Sender:              contactFromDomain(s.Sender()),
		Recipient:           contactFromDomain(s.Recipient()),
		PackageDescription:  s.Parcel().Description(),
		PackageWeight:       s.Parcel().Weight().Kilograms(),
		PackageDimensions:   s.Parcel().Dimensions().String(),
		SpecialInstructions: s.SpecialInstructions(),
		CurrentStatus:       s.Status().String(),
		DeliveryCharge:      s.DeliveryCharge(),
		PaymentStatus:       s.IsPaid(),
		CreatedAt:           s.CreatedAt(),
		UpdatedAt:           s.UpdatedAt(),
		Version:             s.Version(),
	}
}

func contactFromDomain(c kernel.Contact) ContactDTO {
	return ContactDTO{
		Name:       c.Name(),
		Phone:      c.Phone(),
		Email:      c.Email(),
		Address:    c.Address(),
		City:       c.City(),
		PostalCode: c.PostalCode(),
	}
}

func recordsFromDomain(shipmentID shipment.ID, records []shipment.Record) []TrackingHistoryDTO {
	dtos := make([]TrackingHistoryDTO, 0, len(records))
	for _, r := range records {
		dtos = append(dtos, TrackingHistoryDTO{
			ShipmentID: int64(shipmentID),
			Status:     r.Status().String(),
			CreatedAt:  r.CreatedAt(),
		})
	}
	return dtos
}

// toDomain rebuilds the aggregate with RestoreShipment. dto.TrackingHistory
// must be loaded in insertion order.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	sender, senderErr := contactToDomain(dto.Sender)
	recipient, recipientErr := contactToDomain(dto.Recipient)
	weight, weightErr := kernel.NewWeight(dto.PackageWeight)
	dims, dimsErr := kernel.ParseDimensions(dto.PackageDimensions)
	status, statusErr := shipment.ParseStatus(dto.CurrentStatus)
	if err := errors.Join(senderErr, recipientErr, weightErr, dimsErr, statusErr); err != nil {
		return nil, err
	}

	parcel, err := shipment.NewParcel(dto.PackageDescription, weight, dims)
	if err != nil {
		return nil, err
	}

	records := make([]shipment.Record, 0, len(dto.TrackingHistory))
	for _, r := range dto.TrackingHistory {
		recordStatus, err := shipment.ParseStatus(r.Status)
		if err != nil {
			return nil, err
		}
		record, err := shipment.RestoreRecord(r.ID, recordStatus, r.CreatedAt)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return shipment.RestoreShipment(shipment.State{
		ID:                  shipment.ID(dto.ID),
		ClientID:            dto.ClientID,
		Sender:              sender,
		Recipient:           recipient,
		Parcel:              parcel,
		SpecialInstructions: dto.SpecialInstructions,
		Status:              status,
		DeliveryCharge:      dto.DeliveryCharge,
		Paid:                dto.PaymentStatus,
		CreatedAt:           dto.CreatedAt,
		UpdatedAt:           dto.UpdatedAt,
		Version:             dto.Version,
		History:             records,
	})
}

func contactToDomain(dto ContactDTO) (kernel.Contact, error) {
	return kernel.NewContact(dto.Name, dto.Phone, dto.Email, dto.Address, dto.City, dto.PostalCode)
}
