package http

import (
	"courier/internal/core/application/usecases/queries"
	"courier/internal/core/domain/model/shipment"
	"courier/api/servers"
)

func toShipment(s *shipment.Shipment) servers.Shipment {
	sender, recipient, parcel := s.Sender(), s.Recipient(), s.Parcel()

	return servers.Shipment{
		Id:                  int64(s.ID()),
		ClientId:            s.ClientID(),
		SenderName:          sender.Name(),
		SenderPhone:         sender.Phone(),
		SenderAddress:       sender.Address(),
		SenderCity:          sender.City(),
		SenderPostalCode:    sender.PostalCode(),
		RecipientName:       recipient.Name(),
		RecipientPhone:      recipient.Phone(),
		RecipientEmail:      recipient.Email(),
		RecipientAddress:    recipient.Address(),
		RecipientCity:       recipient.City(),
		RecipientPostalCode: recipient.PostalCode(),
		PackageDescription:  parcel.Description(),
		Weight:              parcel.Weight().Kilograms().InexactFloat64(),
		Dimensions:          parcel.Dimensions().String(),
		SpecialInstructions: s.SpecialInstructions(),
		CurrentStatus:       servers.TrackingStatus(s.Status().String()),
		DeliveryCharge:      s.DeliveryCharge().InexactFloat64(),
		PaymentStatus:       s.IsPaid(),
		CreatedAt:           s.CreatedAt(),
		UpdatedAt:           s.UpdatedAt(),
	}
}

// Records are never modified, so updatedAt mirrors createdAt.
func toShipmentHistory(response queries.GetShipmentHistoryQueryResponse) servers.ShipmentHistory {
	records := make([]servers.HistoryRecord, len(response.History))
	for i, r := range response.History {
		records[i] = servers.HistoryRecord{
			Id:         r.ID(),
			ShipmentId: int64(response.Shipment.ID()),
			Status:     servers.TrackingStatus(r.Status().String()),
			CreatedAt:  r.CreatedAt(),
			UpdatedAt:  r.CreatedAt(),
		}
	}

	return servers.ShipmentHistory{
		Shipment:        toShipment(response.Shipment),
		TrackingHistory: records,
	}
}
