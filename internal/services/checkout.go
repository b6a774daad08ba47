package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/tamstreatsandsweets/connect-api-examples/internal/commerce"
	"github.com/tamstreatsandsweets/connect-api-examples/internal/logger"
	"github.com/tamstreatsandsweets/connect-api-examples/internal/models"
	"go.uber.org/zap"
)

var (
	ErrOrderNotFound = errors.New("order was not found")
	ErrOrderNotPaid  = errors.New("order is not paid")
)

// CheckoutService collects fulfillment details for an order and exposes
// the order summaries the pages render from.
type CheckoutService struct {
	client checkoutClient
}

type checkoutClient interface {
	BatchRetrieveOrders(ctx context.Context, locationID string, orderIDs []string) ([]commerce.Order, error)

	UpdateOrder(ctx context.Context, locationID, orderID string, update commerce.OrderUpdate) (*commerce.Order, error)

	RetrieveLocation(ctx context.Context, locationID string) (*commerce.Location, error)
}

func NewCheckoutService(client checkoutClient) *CheckoutService {
	return &CheckoutService{client: client}
}

// fetchOrder always goes to the API so callers work with the latest order
// version, never a cached one.
func (c *CheckoutService) fetchOrder(ctx context.Context, orderID, locationID string) (*commerce.Order, error) {
	orders, err := c.client.BatchRetrieveOrders(ctx, locationID, []string{orderID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve order: %w", err)
	}

	if len(orders) == 0 {
		return nil, ErrOrderNotFound
	}

	return &orders[0], nil
}

// GetOrderSummary fetches the order together with its location.
func (c *CheckoutService) GetOrderSummary(ctx context.Context, orderID, locationID string) (*models.OrderSummary, error) {
	order, err := c.fetchOrder(ctx, orderID, locationID)
	if err != nil {
		return nil, err
	}

	location, err := c.client.RetrieveLocation(ctx, locationID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve location: %w", err)
	}

	return &models.OrderSummary{
		Order:    orderFromAPI(*order),
		Location: locationFromAPI(*location),
	}, nil
}

// ApplyPickupDetails attaches a PICKUP fulfillment to the order.
func (c *CheckoutService) ApplyPickupDetails(ctx context.Context, orderID, locationID string, details models.PickupDetails) error {
	fulfillment := commerce.Fulfillment{
		Type:  string(models.FulfillmentTypePickup),
		State: string(models.FulfillmentStateProposed),
		PickupDetails: &commerce.PickupDetails{
			Recipient: recipientToAPI(details.Recipient),
			PickupAt:  details.PickupAt,
		},
	}

	return c.applyFulfillment(ctx, orderID, locationID, fulfillment)
}

// ApplyDeliveryDetails attaches a SHIPMENT fulfillment to the order.
func (c *CheckoutService) ApplyDeliveryDetails(ctx context.Context, orderID, locationID string, details models.DeliveryDetails) error {
	recipient := recipientToAPI(details.Recipient)
	recipient.Address = &commerce.Address{
		AddressLine1:                 details.Address.Line1,
		Locality:                     details.Address.Locality,
		AdministrativeDistrictLevel1: details.Address.District,
		PostalCode:                   details.Address.PostalCode,
	}

	fulfillment := commerce.Fulfillment{
		Type:  string(models.FulfillmentTypeShipment),
		State: string(models.FulfillmentStateProposed),
		ShipmentDetails: &commerce.ShipmentDetails{
			Recipient:         recipient,
			ExpectedShippedAt: details.ExpectedShippedAt,
		},
	}

	return c.applyFulfillment(ctx, orderID, locationID, fulfillment)
}

// applyFulfillment re-fetches the order and submits a single-fulfillment
// update against its latest version. When the order already has a
// fulfillment its uid is reused, so the update replaces it instead of
// appending a second one.
func (c *CheckoutService) applyFulfillment(ctx context.Context, orderID, locationID string, fulfillment commerce.Fulfillment) error {
	order, err := c.fetchOrder(ctx, orderID, locationID)
	if err != nil {
		return err
	}

	if len(order.Fulfillments) > 0 {
		fulfillment.UID = order.Fulfillments[0].UID
	}

	update := commerce.OrderUpdate{
		Fulfillments:   []commerce.Fulfillment{fulfillment},
		Version:        order.Version,
		IdempotencyKey: NewIdempotencyKey(),
	}

	if _, err := c.client.UpdateOrder(ctx, order.LocationID, order.ID, update); err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}

	logger.Log.Info("updated order fulfillment",
		zap.String("orderID", order.ID),
		zap.String("type", fulfillment.Type),
	)

	return nil
}

// ConfirmOrder returns the summary of a paid order. An order with no
// tenders is not confirmable.
func (c *CheckoutService) ConfirmOrder(ctx context.Context, orderID, locationID string) (*models.OrderSummary, error) {
	summary, err := c.GetOrderSummary(ctx, orderID, locationID)
	if err != nil {
		return nil, err
	}

	if !summary.Order.Paid() {
		return nil, ErrOrderNotPaid
	}

	return summary, nil
}
