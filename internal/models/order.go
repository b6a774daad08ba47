package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrUnknownFulfillmentType = errors.New("unknown fulfillment type")

type FulfillmentType string

const (
	FulfillmentTypePickup   FulfillmentType = "PICKUP"
	FulfillmentTypeShipment FulfillmentType = "SHIPMENT"
)

// ParseFulfillmentType maps raw form input onto the closed set of
// fulfillment types. Unrecognized values are rejected instead of being
// coerced to a default.
func ParseFulfillmentType(raw string) (FulfillmentType, error) {
	switch FulfillmentType(strings.ToUpper(strings.TrimSpace(raw))) {
	case FulfillmentTypePickup:
		return FulfillmentTypePickup, nil
	case FulfillmentTypeShipment:
		return FulfillmentTypeShipment, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFulfillmentType, raw)
	}
}

type FulfillmentState string

const FulfillmentStateProposed FulfillmentState = "PROPOSED"

// Money is an amount in the smallest denomination of its currency.
type Money struct {
	Amount   int64
	Currency string
}

// Display formats the amount in major units, e.g. 1550 USD -> "15.50 USD".
func (m Money) Display() string {
	amount := decimal.NewFromInt(m.Amount).Shift(-2)
	return fmt.Sprintf("%s %s", amount.StringFixed(2), m.Currency)
}

type Recipient struct {
	DisplayName string
	PhoneNumber string
	Email       string
}

type Address struct {
	Line1      string
	Locality   string
	District   string
	PostalCode string
}

type PickupDetails struct {
	Recipient Recipient
	PickupAt  string
}

type DeliveryDetails struct {
	Recipient         Recipient
	Address           Address
	ExpectedShippedAt string
}

type Fulfillment struct {
	UID      string
	Type     FulfillmentType
	State    FulfillmentState
	Pickup   *PickupDetails
	Shipment *DeliveryDetails
}

type LineItem struct {
	Name       string
	Quantity   string
	TotalMoney Money
}

type Order struct {
	ID           string
	LocationID   string
	Version      int64
	TotalMoney   Money
	Fulfillments []Fulfillment
	LineItems    []LineItem
	TenderCount  int
}

// HasFulfillment reports whether fulfillment details were already collected
// for the order.
func (o Order) HasFulfillment() bool {
	return len(o.Fulfillments) > 0
}

// Paid reports whether the order carries at least one tender.
func (o Order) Paid() bool {
	return o.TenderCount > 0
}

type Location struct {
	ID       string
	Name     string
	Timezone string
}

// OrderSummary bundles the order with the location it belongs to, which is
// what every page of the flow renders from.
type OrderSummary struct {
	Order    Order
	Location Location
}
