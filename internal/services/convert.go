package services

import (
	"github.com/tamstreatsandsweets/connect-api-examples/internal/commerce"
	"github.com/tamstreatsandsweets/connect-api-examples/internal/models"
)

func orderFromAPI(order commerce.Order) models.Order {
	fulfillments := make([]models.Fulfillment, len(order.Fulfillments))
	for i, fulfillment := range order.Fulfillments {
		fulfillments[i] = fulfillmentFromAPI(fulfillment)
	}

	lineItems := make([]models.LineItem, len(order.LineItems))
	for i, item := range order.LineItems {
		lineItems[i] = models.LineItem{
			Name:       item.Name,
			Quantity:   item.Quantity,
			TotalMoney: moneyFromAPI(item.TotalMoney),
		}
	}

	return models.Order{
		ID:           order.ID,
		LocationID:   order.LocationID,
		Version:      order.Version,
		TotalMoney:   moneyFromAPI(order.TotalMoney),
		Fulfillments: fulfillments,
		LineItems:    lineItems,
		TenderCount:  len(order.Tenders),
	}
}

func fulfillmentFromAPI(fulfillment commerce.Fulfillment) models.Fulfillment {
	result := models.Fulfillment{
		UID:   fulfillment.UID,
		Type:  models.FulfillmentType(fulfillment.Type),
		State: models.FulfillmentState(fulfillment.State),
	}

	if fulfillment.PickupDetails != nil {
		result.Pickup = &models.PickupDetails{
			Recipient: recipientFromAPI(fulfillment.PickupDetails.Recipient),
			PickupAt:  fulfillment.PickupDetails.PickupAt,
		}
	}

	if fulfillment.ShipmentDetails != nil {
		result.Shipment = &models.DeliveryDetails{
			Recipient:         recipientFromAPI(fulfillment.ShipmentDetails.Recipient),
			Address:           addressFromAPI(fulfillment.ShipmentDetails.Recipient.Address),
			ExpectedShippedAt: fulfillment.ShipmentDetails.ExpectedShippedAt,
		}
	}

	return result
}

func recipientFromAPI(recipient commerce.Recipient) models.Recipient {
	return models.Recipient{
		DisplayName: recipient.DisplayName,
		PhoneNumber: recipient.PhoneNumber,
		Email:       recipient.Email,
	}
}

func addressFromAPI(address *commerce.Address) models.Address {
	if address == nil {
		return models.Address{}
	}

	return models.Address{
		Line1:      address.AddressLine1,
		Locality:   address.Locality,
		District:   address.AdministrativeDistrictLevel1,
		PostalCode: address.PostalCode,
	}
}

func moneyFromAPI(money commerce.Money) models.Money {
	return models.Money{Amount: money.Amount, Currency: money.Currency}
}

func locationFromAPI(location commerce.Location) models.Location {
	return models.Location{
		ID:       location.ID,
		Name:     location.Name,
		Timezone: location.Timezone,
	}
}

func recipientToAPI(recipient models.Recipient) commerce.Recipient {
	return commerce.Recipient{
		DisplayName: recipient.DisplayName,
		PhoneNumber: recipient.PhoneNumber,
		Email:       recipient.Email,
	}
}
